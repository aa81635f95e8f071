// Package errutils provides HTTP-aware error values.
package errutils

import (
	"errors"
	"net/http"
)

// HTTPError is an error that knows which HTTP status it maps to.
type HTTPError struct {
	// Status is the HTTP status code.
	Status int `json:"-"`
	// Code is the status text, for example "Bad Request".
	Code string `json:"code"`
	// Reason is a human-readable explanation. It is optional.
	Reason string `json:"reason,omitempty"`
}

func (h *HTTPError) Error() string {
	if h.Reason == "" {
		return h.Code
	}
	return h.Code + ": " + h.Reason
}

// WithReasonStr returns a copy of the error with the given reason.
func (h *HTTPError) WithReasonStr(reason string) *HTTPError {
	clone := *h
	clone.Reason = reason
	return &clone
}

// WithReasonErr returns a copy of the error with the given error's message as the reason.
func (h *HTTPError) WithReasonErr(err error) *HTTPError {
	if err == nil {
		return h.WithReasonStr("")
	}
	return h.WithReasonStr(err.Error())
}

// ToHTTPError converts any error to an HTTPError. Unknown errors become 500.
func ToHTTPError(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return InternalServerError()
}

// newHTTPError creates an HTTPError with the standard status text as the code.
func newHTTPError(status int) *HTTPError {
	return &HTTPError{Status: status, Code: http.StatusText(status)}
}

// BadRequest is for invalid request parameters.
func BadRequest() *HTTPError { return newHTTPError(http.StatusBadRequest) }

// NotFound is for unknown routes and resources.
func NotFound() *HTTPError { return newHTTPError(http.StatusNotFound) }

// InternalServerError is for everything unexpected.
func InternalServerError() *HTTPError { return newHTTPError(http.StatusInternalServerError) }
