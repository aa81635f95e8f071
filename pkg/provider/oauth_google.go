package provider

import (
	"golang.org/x/oauth2"
)

const (
	googleAuthURL  = "https://accounts.google.com/o/oauth2/v2/auth"
	googleTokenURL = "https://oauth2.googleapis.com/token"
)

// NewGoogle returns the Google adapter.
//
// Read documentation here: https://developers.google.com/identity/protocols/oauth2/web-server
func NewGoogle(opts ...Option) *OAuth {
	return NewOAuth(Endpoint{
		Provider:  Google,
		AuthURL:   googleAuthURL,
		TokenURL:  googleTokenURL,
		AuthStyle: oauth2.AuthStyleInParams,
	}, opts...)
}
