package flowstate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwt"
)

// SignedCookieName is the cookie written by the signed backend.
const SignedCookieName = "flow_state"

// Claim names inside the signed token.
const (
	claimName         = "name"
	claimRedirect     = "redirect"
	claimCodeVerifier = "code_verifier"
)

// ErrEmptySigningKey is returned by SignedFactory when no key is given.
var ErrEmptySigningKey = errors.New("signing key is empty")

// SignedFactory stores the state in one cookie holding an HS256 JWT.
// Tampered and expired tokens load as if nothing was pending.
func SignedFactory(key []byte, opts Options) (Factory, error) {
	if len(key) == 0 {
		return nil, ErrEmptySigningKey
	}

	opts = opts.withDefaults()
	return func(w http.ResponseWriter, r *http.Request) Store {
		return &signedStore{w: w, r: r, key: key, opts: opts}
	}, nil
}

type signedStore struct {
	w    http.ResponseWriter
	r    *http.Request
	key  []byte
	opts Options
	requestState
}

func (s *signedStore) Load(ctx context.Context) (FlowState, error) {
	if s.written {
		return s.state, nil
	}

	cookie, err := s.r.Cookie(SignedCookieName)
	if errors.Is(err, http.ErrNoCookie) {
		return FlowState{}, nil
	}
	if err != nil {
		return FlowState{}, err
	}

	token, err := jwt.Parse([]byte(cookie.Value), jwt.WithKey(jwa.HS256(), s.key), jwt.WithValidate(true))
	if err != nil {
		slog.DebugContext(ctx, "discarding invalid flow state token", "err", err)
		return FlowState{}, nil
	}

	var state FlowState
	// Missing claims simply stay empty.
	_ = token.Get(claimName, &state.Name)
	_ = token.Get(claimRedirect, &state.Redirect)
	_ = token.Get(claimCodeVerifier, &state.CodeVerifier)
	return state, nil
}

func (s *signedStore) Save(_ context.Context, state FlowState) error {
	token, err := jwt.NewBuilder().
		Claim(claimName, state.Name).
		Claim(claimRedirect, state.Redirect).
		Claim(claimCodeVerifier, state.CodeVerifier).
		IssuedAt(time.Now()).
		Expiration(time.Now().Add(s.opts.TTL)).
		Build()
	if err != nil {
		return fmt.Errorf("error in jwt.Builder.Build call: %w", err)
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256(), s.key))
	if err != nil {
		return fmt.Errorf("error in jwt.Sign call: %w", err)
	}

	http.SetCookie(s.w, s.opts.cookie(SignedCookieName, string(signed)))
	s.remember(state)
	return nil
}

func (s *signedStore) Clear(_ context.Context) error {
	http.SetCookie(s.w, s.opts.expired(SignedCookieName))
	s.remember(FlowState{})
	return nil
}
