package provider

import (
	"golang.org/x/oauth2"
)

const (
	redditAuthURL  = "https://www.reddit.com/api/v1/authorize"
	redditTokenURL = "https://www.reddit.com/api/v1/access_token"
)

// redditDefaultState is sent because Reddit rejects authorize requests without a state parameter.
// Integrations may override it through their options.
const redditDefaultState = "integration"

// NewReddit returns the Reddit adapter.
//
// Read documentation here: https://github.com/reddit-archive/reddit/wiki/OAuth2
func NewReddit(opts ...Option) *OAuth {
	return NewOAuth(Endpoint{
		Provider:   Reddit,
		AuthURL:    redditAuthURL,
		TokenURL:   redditTokenURL,
		AuthStyle:  oauth2.AuthStyleInHeader,
		PKCE:       true,
		AuthParams: map[string]string{"state": redditDefaultState},
	}, opts...)
}
