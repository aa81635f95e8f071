package handler

import (
	"errors"
	"net/url"
	"regexp"
	"strings"
)

var (
	errInvalidProvider = errors.New("provider must be upto 20 characters and must include only a-z, 0-9, - and _")
	errInvalidRedirect = errors.New("redirect must be upto 2000 characters and a valid url or path")
	errInvalidName     = errors.New("name must be upto 100 characters")
)

var (
	providerRegex = regexp.MustCompile(`^[a-z0-9_-]+$`)
)

// validateProvider validates the provider name parameter when received from an external user.
func validateProvider(p string) error {
	if len(p) == 0 || len(p) > 20 {
		return errInvalidProvider
	}

	if !providerRegex.MatchString(p) {
		return errInvalidProvider
	}

	return nil
}

// validateName validates the integration name. Its presence is checked by the orchestrator.
func validateName(name string) error {
	if len(name) > 100 {
		return errInvalidName
	}
	return nil
}

// validateRedirect validates the escaped redirect parameter. An empty value is allowed.
func validateRedirect(u string) error {
	if u == "" {
		return nil
	}

	if len(u) > 2000 {
		return errInvalidRedirect
	}

	if _, err := url.ParseRequestURI(u); err != nil {
		return errInvalidRedirect
	}

	return nil
}

// isAllowedRedirect reports whether an unescaped redirect may be used at the end of a flow.
//
// Relative paths always stay on this application. Absolute URLs must match the scheme and host of
// one of the allowed URLs exactly and stay under its path, unless no URL is configured at all.
func isAllowedRedirect(redirect string, allowed []string) bool {
	if redirect == "" || len(allowed) == 0 {
		return true
	}

	parsed, err := url.Parse(redirect)
	if err != nil {
		return false
	}
	// A scheme-relative "//host/path" carries a host and still leaves the application.
	if !parsed.IsAbs() && parsed.Host == "" {
		return true
	}
	// Userinfo can make a listed host read like the start of another one.
	if parsed.User != nil {
		return false
	}

	for _, entry := range allowed {
		if matchesAllowed(parsed, entry) {
			return true
		}
	}
	return false
}

// matchesAllowed compares scheme and host exactly and requires the path to sit on a segment boundary.
func matchesAllowed(redirect *url.URL, entry string) bool {
	allowed, err := url.Parse(entry)
	if err != nil || allowed.Host == "" {
		return false
	}

	if !strings.EqualFold(redirect.Scheme, allowed.Scheme) || !strings.EqualFold(redirect.Host, allowed.Host) {
		return false
	}

	base := strings.TrimSuffix(allowed.Path, "/")
	return base == "" || redirect.Path == base || strings.HasPrefix(redirect.Path, base+"/")
}
