// Package flowstate persists the values an authorization attempt needs across the
// redirect to the third-party consent screen.
//
// A Store is bound to a single HTTP request. The backend behind it is chosen by the host:
// plain cookies, a signed cookie, or a server-side table keyed by a session cookie.
package flowstate

import (
	"context"
	"net/http"
	"time"
)

// FlowState is the pending authorization attempt of one caller session.
type FlowState struct {
	Name         string `json:"name"`
	Redirect     string `json:"redirect"`
	CodeVerifier string `json:"code_verifier"`
}

// IsZero reports whether no value is set.
func (f FlowState) IsZero() bool {
	return f == FlowState{}
}

// Store reads and writes the FlowState of one caller.
//
// Load returns a zero FlowState, and no error, when nothing is pending.
// Save overwrites whatever was pending.
type Store interface {
	Load(ctx context.Context) (FlowState, error)
	Save(ctx context.Context, state FlowState) error
	Clear(ctx context.Context) error
}

// Factory binds a Store to the given request and response.
type Factory func(w http.ResponseWriter, r *http.Request) Store

// Options are shared by the cookie based backends.
type Options struct {
	// TTL bounds how long a pending flow survives. It becomes the cookie Max-Age.
	TTL time.Duration
	// Secure marks the cookies as HTTPS-only.
	Secure bool
	// Path of the cookies. Defaults to "/".
	Path string
}

// DefaultTTL is used when Options.TTL is not positive.
const DefaultTTL = 10 * time.Minute

func (o Options) withDefaults() Options {
	if o.TTL <= 0 {
		o.TTL = DefaultTTL
	}
	if o.Path == "" {
		o.Path = "/"
	}
	return o
}

// cookie creates a flow cookie with the configured attributes.
func (o Options) cookie(name, value string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     o.Path,
		MaxAge:   int(o.TTL / time.Second),
		Secure:   o.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// expired creates a cookie that removes the named one from the browser.
func (o Options) expired(name string) *http.Cookie {
	c := o.cookie(name, "")
	c.MaxAge = -1
	return c
}

// requestState remembers what the current request wrote, so that a Load after a Save or Clear
// in the same request sees the new value instead of the incoming cookies.
type requestState struct {
	written bool
	state   FlowState
}

func (r *requestState) remember(state FlowState) {
	r.written, r.state = true, state
}
