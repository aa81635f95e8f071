package flow

import (
	"net/url"
	"strings"

	"github.com/shivanshkc/integrator/pkg/link"
	"github.com/shivanshkc/integrator/pkg/provider"
)

// DefaultRedirect is used when no redirect was supplied.
const DefaultRedirect = "/"

// finalRedirect restores an escaped redirect and falls back to DefaultRedirect.
func finalRedirect(escaped string) string {
	if escaped == "" {
		return DefaultRedirect
	}
	return link.UnescapeRedirect(escaped)
}

// withQuery appends an encoded query to target, before any fragment.
func withQuery(target, query string) string {
	base, fragment, hasFragment := strings.Cut(target, "#")

	switch {
	case !strings.Contains(base, "?"):
		base += "?"
	case !strings.HasSuffix(base, "?") && !strings.HasSuffix(base, "&"):
		base += "&"
	}
	base += query

	if hasFragment {
		return base + "#" + fragment
	}
	return base
}

// successRedirect is {redirect}?name={name}&provider={provider}&status=success.
func successRedirect(escaped, name string, id provider.ID) string {
	return withQuery(finalRedirect(escaped),
		"name="+url.QueryEscape(name)+"&provider="+url.QueryEscape(string(id))+"&status=success")
}

// errorRedirect is {redirect}?error={code}.
func errorRedirect(escaped, code string) string {
	return withQuery(finalRedirect(escaped), "error="+url.QueryEscape(code))
}
