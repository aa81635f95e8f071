// Package link renders the URLs that start an integration flow.
package link

import (
	"errors"
	"net/url"
	"strings"

	"github.com/shivanshkc/integrator/pkg/provider"
)

const (
	// HashPlaceholder stands for "#" inside a redirect parameter.
	HashPlaceholder = "__HASH__"
	// AndPlaceholder stands for "&" inside a redirect parameter.
	AndPlaceholder = "__AND__"
)

// ErrMissingParams is returned when the provider, name or redirect is empty.
var ErrMissingParams = errors.New("provider, name and redirect are required")

// Params are the inputs of Build.
type Params struct {
	Provider provider.ID
	Name     string
	Redirect string
	// BasePath is prepended to the route, for hosts that mount the integration routes elsewhere.
	BasePath string
}

// Build returns {base_path}/api/auth/integration/{provider}?name={name}&redirect={redirect}.
func Build(p Params) (string, error) {
	if p.Provider == "" || p.Name == "" || p.Redirect == "" {
		return "", ErrMissingParams
	}

	basePath := strings.TrimSuffix(p.BasePath, "/")
	return basePath + provider.CallbackPathPrefix + string(p.Provider) +
		"?name=" + url.QueryEscape(p.Name) +
		"&redirect=" + url.QueryEscape(EscapeRedirect(p.Redirect)), nil
}

// EscapeRedirect replaces the characters that cannot travel inside a nested query value.
func EscapeRedirect(redirect string) string {
	redirect = strings.ReplaceAll(redirect, "#", HashPlaceholder)
	return strings.ReplaceAll(redirect, "&", AndPlaceholder)
}

// UnescapeRedirect reverses EscapeRedirect.
func UnescapeRedirect(redirect string) string {
	redirect = strings.ReplaceAll(redirect, HashPlaceholder, "#")
	return strings.ReplaceAll(redirect, AndPlaceholder, "&")
}
