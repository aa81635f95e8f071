package httputils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/shivanshkc/integrator/internal/utils/errutils"
)

// Write writes the given status, headers and JSON body to the response.
// A nil body writes no content.
func Write(w http.ResponseWriter, status int, headers map[string]string, body any) {
	for key, value := range headers {
		w.Header().Set(key, value)
	}

	if body == nil {
		w.WriteHeader(status)
		return
	}

	encoded, err := json.Marshal(body)
	if err != nil {
		slog.Error("error in json.Marshal call", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(encoded); err != nil {
		slog.Error("error in ResponseWriter.Write call", "err", err)
	}
}

// WriteErr writes the given error as a JSON response, with the status it maps to.
func WriteErr(w http.ResponseWriter, err error) {
	httpErr := errutils.ToHTTPError(err)
	Write(w, httpErr.Status, nil, httpErr)
}

// Redirect writes a 302 to the given location along with any extra headers.
func Redirect(w http.ResponseWriter, location string, headers map[string]string) {
	all := map[string]string{"Location": location}
	for key, value := range headers {
		all[key] = value
	}
	Write(w, http.StatusFound, all, nil)
}

// Is2xx reports whether the status code is a success code.
func Is2xx(status int) bool {
	return status >= 200 && status < 300
}

// RoundTripFunc is used to override the client transport if needed.
// This func implements http.RoundTripper interface.
type RoundTripFunc func(req *http.Request) *http.Response

// RoundTrip will execute the round tripper func.
func (f RoundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req), nil
}

// RoundTripperJSON returns a round tripper that delivers the given response as the response body.
func RoundTripperJSON(status int, response any) (RoundTripFunc, error) {
	var marshalled []byte
	var err error

	switch asserted := response.(type) {
	case []byte:
		marshalled = asserted
	case string:
		marshalled = []byte(asserted)
	default:
		marshalled, err = json.Marshal(response)
		if err != nil {
			return nil, fmt.Errorf("error in json.Marshal call: %w", err)
		}
	}

	return func(req *http.Request) *http.Response {
		return &http.Response{
			StatusCode: status,
			Body:       io.NopCloser(bytes.NewReader(marshalled)),
			Header:     http.Header{"Content-Type": []string{"application/json"}},
		}
	}, nil
}

// IsHTTPS reports whether the given URL uses the https scheme.
func IsHTTPS(url string) bool {
	return strings.HasPrefix(url, "https://")
}
