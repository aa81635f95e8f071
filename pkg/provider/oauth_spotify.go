package provider

import (
	"golang.org/x/oauth2"
)

const (
	spotifyAuthURL  = "https://accounts.spotify.com/authorize"
	spotifyTokenURL = "https://accounts.spotify.com/api/token"
)

// NewSpotify returns the Spotify adapter.
//
// Read documentation here: https://developer.spotify.com/documentation/web-api/tutorials/code-flow
func NewSpotify(opts ...Option) *OAuth {
	return NewOAuth(Endpoint{
		Provider:  Spotify,
		AuthURL:   spotifyAuthURL,
		TokenURL:  spotifyTokenURL,
		AuthStyle: oauth2.AuthStyleInHeader,
	}, opts...)
}
