package dataset

// Platform tags are an open set: the scraper records whatever the store
// reports, and newer exports have grown tags older code never saw. Unknown
// tags must still render, so lookups always fall back to the raw tag.
var platformLabels = map[string]string{
	"PC":      "PC",
	"Windows": "PC",
	"Mac":     "Mac",
	"Android": "Android",
	"iOS":     "iOS",
}

func PlatformLabel(tag string) string {
	label, ok := platformLabels[tag]
	if ok {
		return label
	}
	if tag == "" {
		return "Unknown"
	}
	return tag
}
