package timeline

import (
	"net/url"
	"strings"
)

// The query keys the site exposes. Anything else in the URL is someone
// else's (utm tags and the like) and is left alone on decode.
const (
	querySearch = "search"
	queryYear   = "year"
	querySort   = "sort"
)

// EncodeQuery serializes a filter state into a query string, omitting
// every field that equals its default so shared URLs stay minimal. The
// default state encodes to "".
func EncodeQuery(state FilterState) string {
	state = state.Normalize()
	v := url.Values{}
	if strings.TrimSpace(state.Search) != "" {
		v.Set(querySearch, state.Search)
	}
	if state.Year != YearAll {
		v.Set(queryYear, state.Year)
	}
	if state.Sort != SortNewest {
		v.Set(querySort, string(state.Sort))
	}
	return v.Encode()
}

// DecodeQuery is the inverse of EncodeQuery. Missing keys become
// defaults, unknown keys are ignored and malformed values are repaired
// rather than failing navigation.
func DecodeQuery(raw string) FilterState {
	raw = strings.TrimPrefix(raw, "?")
	// a partially malformed query still yields the keys that did parse
	v, _ := url.ParseQuery(raw)

	state := FilterState{
		Search: v.Get(querySearch),
		Year:   v.Get(queryYear),
		Sort:   SortOrder(v.Get(querySort)),
	}
	return state.Normalize()
}
