package miscutils

import (
	"maps"
	"net/url"
	"slices"
)

// MustParseURL parses the given string as a URL. It panics upon error.
// It is meant for values that were already validated at startup, like the base URL.
func MustParseURL(u string) *url.URL {
	parsed, err := url.Parse(u)
	if err != nil {
		panic("error in url.Parse call: " + err.Error())
	}
	return parsed
}

// SortedKeys returns the keys of the map in lexical order.
func SortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
