package timeline

import (
	"strings"

	"freegames-backend/lib/dataset"

	"github.com/antzucaro/matchr"
)

// suggestThreshold is the minimum JaroWinkler similarity before a name is
// offered as a "did you mean" correction on an empty result set.
const suggestThreshold = 0.78

// Suggest picks the game name closest to a search term that matched
// nothing. Returns "" when nothing is close enough.
func Suggest(term string, games []dataset.GameRecord) string {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return ""
	}

	var bestName string
	var bestScore float64
	for _, g := range games {
		name := strings.ToLower(g.Name)
		score := matchr.JaroWinkler(term, name, false)
		// a term is usually a fragment, so also try it against the
		// name's leading word
		if first, _, found := strings.Cut(name, " "); found {
			wordScore := matchr.JaroWinkler(term, first, false)
			if wordScore > score {
				score = wordScore
			}
		}
		if score > bestScore {
			bestScore = score
			bestName = g.Name
		}
	}

	if bestScore < suggestThreshold {
		return ""
	}
	return bestName
}
