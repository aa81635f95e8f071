package provider

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownProvider is returned when no adapter is registered for an ID.
	ErrUnknownProvider = errors.New("unknown provider")
	// ErrDuplicateProvider is returned when an adapter is registered twice.
	ErrDuplicateProvider = errors.New("duplicate provider registration")
	// ErrMissingCredentials is returned when base_url, client_id or client_secret is empty.
	ErrMissingCredentials = errors.New("missing provider credentials")
	// ErrExchange is the root of all token exchange failures.
	ErrExchange = errors.New("token exchange failed")
)

// ExchangeError describes a failed token exchange. It matches ErrExchange with errors.Is.
type ExchangeError struct {
	Provider ID
	// StatusCode is zero when the request did not complete.
	StatusCode int
	// Body is the raw response body, if one was read.
	Body string
	Err  error
}

func (e *ExchangeError) Error() string {
	msg := fmt.Sprintf("%s: %s", ErrExchange, e.Provider)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(": status %d", e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ExchangeError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrExchange}
	}
	return []error{ErrExchange, e.Err}
}
