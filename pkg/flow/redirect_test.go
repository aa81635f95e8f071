package flow

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithQuery(t *testing.T) {
	for _, tc := range []struct {
		target   string
		expected string
	}{
		{target: "/", expected: "/?a=1"},
		{target: "/path?x=y", expected: "/path?x=y&a=1"},
		{target: "/path?", expected: "/path?a=1"},
		{target: "/path?x=y&", expected: "/path?x=y&a=1"},
		{target: "/path#frag", expected: "/path?a=1#frag"},
		{target: "https://app.com/p?x=y#f#g", expected: "https://app.com/p?x=y&a=1#f#g"},
	} {
		require.Equal(t, tc.expected, withQuery(tc.target, "a=1"), "target %q", tc.target)
	}
}

func TestFinalRedirects(t *testing.T) {
	require.Equal(t, "/?error=access+denied", errorRedirect("", "access denied"))
	require.Equal(t, "/a?error=x#b", errorRedirect("/a__HASH__b", "x"))
	require.Equal(t, "/a?x=1&y=2&name=n+1&provider=google&status=success#b",
		successRedirect("/a?x=1__AND__y=2__HASH__b", "n 1", "google"))
}
