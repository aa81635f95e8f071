package flowstate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// SessionCookieName is the cookie written by the server-side backend.
const SessionCookieName = "flow_session"

// keyPrefix namespaces flow states inside a shared KV.
const keyPrefix = "flowstate:"

// KV is a minimal key-value store with TTL support.
// Missing or expired keys are reported as (nil, false, nil).
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// KVFactory keeps the state server-side in kv, referenced by an opaque session cookie.
func KVFactory(kv KV, opts Options) Factory {
	opts = opts.withDefaults()
	return func(w http.ResponseWriter, r *http.Request) Store {
		return &kvStore{w: w, r: r, kv: kv, opts: opts}
	}
}

type kvStore struct {
	w    http.ResponseWriter
	r    *http.Request
	kv   KV
	opts Options
	requestState

	// sessionID is set once the current request has issued or read a session id.
	sessionID string
}

func (k *kvStore) Load(ctx context.Context) (FlowState, error) {
	if k.written {
		return k.state, nil
	}

	sid := k.incomingSession()
	if sid == "" {
		return FlowState{}, nil
	}

	value, found, err := k.kv.Get(ctx, keyPrefix+sid)
	if err != nil {
		return FlowState{}, fmt.Errorf("error in kv.Get call: %w", err)
	}
	if !found {
		return FlowState{}, nil
	}

	var state FlowState
	if err := json.Unmarshal(value, &state); err != nil {
		return FlowState{}, fmt.Errorf("error in json.Unmarshal call: %w", err)
	}
	return state, nil
}

func (k *kvStore) Save(ctx context.Context, state FlowState) error {
	sid := k.sessionID
	if sid == "" {
		sid = k.incomingSession()
	}
	if sid == "" {
		sid = uuid.NewString()
	}

	value, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("error in json.Marshal call: %w", err)
	}
	if err := k.kv.Set(ctx, keyPrefix+sid, value, k.opts.TTL); err != nil {
		return fmt.Errorf("error in kv.Set call: %w", err)
	}

	k.sessionID = sid
	http.SetCookie(k.w, k.opts.cookie(SessionCookieName, sid))
	k.remember(state)
	return nil
}

func (k *kvStore) Clear(ctx context.Context) error {
	sid := k.sessionID
	if sid == "" {
		sid = k.incomingSession()
	}

	if sid != "" {
		if err := k.kv.Del(ctx, keyPrefix+sid); err != nil {
			return fmt.Errorf("error in kv.Del call: %w", err)
		}
	}

	http.SetCookie(k.w, k.opts.expired(SessionCookieName))
	k.remember(FlowState{})
	return nil
}

// incomingSession returns the session id carried by the request, if it is a valid uuid.
func (k *kvStore) incomingSession() string {
	cookie, err := k.r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}

	parsed, err := uuid.Parse(cookie.Value)
	if err != nil {
		return ""
	}
	return parsed.String()
}
