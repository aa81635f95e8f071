package provider

import (
	"fmt"
	"slices"
)

// Registry maps provider IDs to their adapters.
//
// A Registry is not safe for concurrent registration. Register everything at startup and only read
// afterwards.
type Registry struct {
	adapters map[ID]Adapter
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{adapters: make(map[ID]Adapter)}
}

// DefaultRegistry returns a registry holding every built-in adapter.
func DefaultRegistry(opts ...Option) *Registry {
	r := NewRegistry()
	for _, a := range Builtin(opts...) {
		// IDs of the built-in adapters are unique, so this cannot fail.
		_ = r.Register(a)
	}
	return r
}

// Builtin returns a new instance of every built-in adapter.
func Builtin(opts ...Option) []Adapter {
	return []Adapter{
		NewAccuranker(opts...),
		NewAzure(opts...),
		NewClickUp(opts...),
		NewDiscord(opts...),
		NewFacebook(opts...),
		NewGitHub(opts...),
		NewGoogle(opts...),
		NewKlaviyo(opts...),
		NewLinkedIn(opts...),
		NewNotion(opts...),
		NewPinterest(opts...),
		NewReddit(opts...),
		NewSlack(opts...),
		NewSnapchat(opts...),
		NewSpotify(opts...),
		NewTikTok(opts...),
		NewTrustpilot(opts...),
	}
}

// Register adds an adapter to the registry.
func (r *Registry) Register(a Adapter) error {
	id := a.ID()
	if _, exists := r.adapters[id]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateProvider, id)
	}
	r.adapters[id] = a
	return nil
}

// Get returns the adapter for the given ID.
func (r *Registry) Get(id ID) (Adapter, error) {
	a, ok := r.adapters[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, id)
	}
	return a, nil
}

// IDs returns the sorted list of registered provider IDs.
func (r *Registry) IDs() []ID {
	ids := make([]ID, 0, len(r.adapters))
	for id := range r.adapters {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
