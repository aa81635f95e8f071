package provider

import (
	"golang.org/x/oauth2"
)

const (
	linkedInAuthURL  = "https://www.linkedin.com/oauth/v2/authorization"
	linkedInTokenURL = "https://www.linkedin.com/oauth/v2/accessToken"
)

// NewLinkedIn returns the LinkedIn adapter.
//
// Read documentation here: https://learn.microsoft.com/en-us/linkedin/shared/authentication/authorization-code-flow
func NewLinkedIn(opts ...Option) *OAuth {
	return NewOAuth(Endpoint{
		Provider:  LinkedIn,
		AuthURL:   linkedInAuthURL,
		TokenURL:  linkedInTokenURL,
		AuthStyle: oauth2.AuthStyleInParams,
	}, opts...)
}
