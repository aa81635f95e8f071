package provider

import (
	"golang.org/x/oauth2"
)

const (
	gitHubAuthURL  = "https://github.com/login/oauth/authorize"
	gitHubTokenURL = "https://github.com/login/oauth/access_token"
)

// NewGitHub returns the GitHub adapter.
//
// GitHub answers form-encoded bodies unless asked for JSON, and reports a bad code with a 200 and an
// "error" field.
//
// Read documentation here: https://docs.github.com/en/apps/oauth-apps/building-oauth-apps/authorizing-oauth-apps
func NewGitHub(opts ...Option) *OAuth {
	return NewOAuth(Endpoint{
		Provider:  GitHub,
		AuthURL:   gitHubAuthURL,
		TokenURL:  gitHubTokenURL,
		AuthStyle: oauth2.AuthStyleInParams,
	}, opts...)
}
