package provider

import (
	"golang.org/x/oauth2"
)

const (
	trustpilotAuthURL  = "https://authenticate.trustpilot.com"
	trustpilotTokenURL = "https://api.trustpilot.com/v1/oauth/oauth-business-users-for-applications/accesstoken"
)

// NewTrustpilot returns the Trustpilot adapter.
//
// Read documentation here: https://developers.trustpilot.com/authentication
func NewTrustpilot(opts ...Option) *OAuth {
	return NewOAuth(Endpoint{
		Provider:  Trustpilot,
		AuthURL:   trustpilotAuthURL,
		TokenURL:  trustpilotTokenURL,
		AuthStyle: oauth2.AuthStyleInHeader,
		PKCE:      true,
	}, opts...)
}
