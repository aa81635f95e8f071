package flowstate

import (
	"context"
	"errors"
	"net/http"
	"net/url"
)

// Names of the cookies written by the cookie backend.
const (
	CookieName         = "name"
	CookieRedirect     = "redirect"
	CookieCodeVerifier = "code_verifier"
)

// CookieFactory stores the three values in three separate cookies.
func CookieFactory(opts Options) Factory {
	opts = opts.withDefaults()
	return func(w http.ResponseWriter, r *http.Request) Store {
		return &cookieStore{w: w, r: r, opts: opts}
	}
}

type cookieStore struct {
	w    http.ResponseWriter
	r    *http.Request
	opts Options
	requestState
}

func (c *cookieStore) Load(_ context.Context) (FlowState, error) {
	if c.written {
		return c.state, nil
	}

	var state FlowState
	var err error
	if state.Name, err = c.read(CookieName); err != nil {
		return FlowState{}, err
	}
	if state.Redirect, err = c.read(CookieRedirect); err != nil {
		return FlowState{}, err
	}
	if state.CodeVerifier, err = c.read(CookieCodeVerifier); err != nil {
		return FlowState{}, err
	}
	return state, nil
}

func (c *cookieStore) Save(_ context.Context, state FlowState) error {
	// Values are query-escaped because a redirect may carry bytes that are illegal in cookies.
	http.SetCookie(c.w, c.opts.cookie(CookieName, url.QueryEscape(state.Name)))
	http.SetCookie(c.w, c.opts.cookie(CookieRedirect, url.QueryEscape(state.Redirect)))
	http.SetCookie(c.w, c.opts.cookie(CookieCodeVerifier, url.QueryEscape(state.CodeVerifier)))
	c.remember(state)
	return nil
}

func (c *cookieStore) Clear(_ context.Context) error {
	for _, name := range []string{CookieName, CookieRedirect, CookieCodeVerifier} {
		http.SetCookie(c.w, c.opts.expired(name))
	}
	c.remember(FlowState{})
	return nil
}

// read returns the unescaped value of the named cookie, or "" if it is absent.
func (c *cookieStore) read(name string) (string, error) {
	cookie, err := c.r.Cookie(name)
	if errors.Is(err, http.ErrNoCookie) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	value, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		// A mangled cookie is treated like a missing one.
		return "", nil
	}
	return value, nil
}
