package provider

import (
	"golang.org/x/oauth2"
)

const (
	snapchatAuthURL  = "https://accounts.snapchat.com/login/oauth2/authorize"
	snapchatTokenURL = "https://accounts.snapchat.com/login/oauth2/access_token"
)

// NewSnapchat returns the Snapchat adapter.
//
// Read documentation here: https://developers.snap.com/snap-kit/login-kit/overview
func NewSnapchat(opts ...Option) *OAuth {
	return NewOAuth(Endpoint{
		Provider:  Snapchat,
		AuthURL:   snapchatAuthURL,
		TokenURL:  snapchatTokenURL,
		AuthStyle: oauth2.AuthStyleInParams,
	}, opts...)
}
