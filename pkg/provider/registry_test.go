package provider

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	require.Empty(t, r.IDs())

	google := NewGoogle()
	require.NoError(t, r.Register(google))
	require.ErrorIs(t, r.Register(NewGoogle()), ErrDuplicateProvider)

	got, err := r.Get(Google)
	require.NoError(t, err)
	require.Same(t, google, got)

	_, err = r.Get("myspace")
	require.ErrorIs(t, err, ErrUnknownProvider)
}

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()

	require.Equal(t, []ID{
		Accuranker, Azure, ClickUp, Discord, Facebook, GitHub, Google, Klaviyo, LinkedIn,
		Notion, Pinterest, Reddit, Slack, Snapchat, Spotify, TikTok, Trustpilot,
	}, r.IDs())

	for _, id := range r.IDs() {
		a, err := r.Get(id)
		require.NoError(t, err)
		require.Equal(t, id, a.ID())
	}
}
