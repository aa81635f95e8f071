package provider

import (
	"golang.org/x/oauth2"
)

const (
	facebookAuthURL  = "https://www.facebook.com/v20.0/dialog/oauth"
	facebookTokenURL = "https://graph.facebook.com/v20.0/oauth/access_token"
)

// NewFacebook returns the Facebook adapter, pinned to Graph API v20.0.
//
// Read documentation here: https://developers.facebook.com/docs/facebook-login/guides/advanced/manual-flow
func NewFacebook(opts ...Option) *OAuth {
	return NewOAuth(Endpoint{
		Provider:  Facebook,
		AuthURL:   facebookAuthURL,
		TokenURL:  facebookTokenURL,
		AuthStyle: oauth2.AuthStyleInParams,
	}, opts...)
}
