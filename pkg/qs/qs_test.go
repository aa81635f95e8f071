package qs

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	for _, tc := range []struct {
		name     string
		input    map[string]any
		expected string
	}{
		{
			name:     "Empty map",
			input:    map[string]any{},
			expected: "",
		},
		{
			name:     "Plain strings are sorted by key",
			input:    map[string]any{"scope": "openid", "client_id": "abc", "response_type": "code"},
			expected: "client_id=abc&response_type=code&scope=openid",
		},
		{
			name:     "Nil values are omitted",
			input:    map[string]any{"scope": nil, "client_id": "abc"},
			expected: "client_id=abc",
		},
		{
			name:     "Nil slice is omitted",
			input:    map[string]any{"scope": []string(nil), "client_id": "abc"},
			expected: "client_id=abc",
		},
		{
			name:     "Empty string is kept",
			input:    map[string]any{"scope": ""},
			expected: "scope=",
		},
		{
			name:     "Slices expand to repeated keys in order",
			input:    map[string]any{"scope": []string{"b", "a", "c"}},
			expected: "scope=b&scope=a&scope=c",
		},
		{
			name:     "Reserved characters are escaped",
			input:    map[string]any{"redirect_uri": "https://app.com/cb?x=1&y=2"},
			expected: "redirect_uri=" + url.QueryEscape("https://app.com/cb?x=1&y=2"),
		},
		{
			name:     "Other types are formatted",
			input:    map[string]any{"max_age": 10, "force": true},
			expected: "force=true&max_age=10",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, Encode(tc.input))
		})
	}
}

func TestOptional(t *testing.T) {
	require.Nil(t, Optional(""))
	require.Equal(t, "x", Optional("x"))

	// Used together with Encode, an empty optional must disappear.
	require.Equal(t, "a=1", Encode(map[string]any{"a": "1", "b": Optional("")}))
}
