// Package qs serializes loosely typed parameter maps into URL query strings.
package qs

import (
	"fmt"
	"net/url"
)

// Encode serializes the given params into a "key=value&key=value" query string.
//
// Supported value types are string, []string and nil. A nil value (or a nil slice) omits the pair
// entirely, while an empty string is kept and encodes as "key=". Slices expand into repeated keys in
// slice order. Any other type is formatted with fmt.Sprint so that Encode never fails.
//
// Keys are emitted in sorted order, as done by url.Values.Encode.
func Encode(params map[string]any) string {
	values := url.Values{}
	for key, value := range params {
		switch v := value.(type) {
		case nil:
			continue
		case string:
			values.Add(key, v)
		case []string:
			for _, item := range v {
				values.Add(key, item)
			}
		default:
			values.Add(key, fmt.Sprint(v))
		}
	}

	return values.Encode()
}

// Optional returns nil for an empty string, so that Encode omits the pair.
func Optional(s string) any {
	if s == "" {
		return nil
	}
	return s
}
