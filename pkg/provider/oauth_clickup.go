package provider

import (
	"golang.org/x/oauth2"
)

const (
	clickUpAuthURL  = "https://app.clickup.com/api"
	clickUpTokenURL = "https://api.clickup.com/api/v2/oauth/token"
)

// NewClickUp returns the ClickUp adapter.
//
// Read documentation here: https://clickup.com/api/developer-portal/authentication
func NewClickUp(opts ...Option) *OAuth {
	return NewOAuth(Endpoint{
		Provider:  ClickUp,
		AuthURL:   clickUpAuthURL,
		TokenURL:  clickUpTokenURL,
		AuthStyle: oauth2.AuthStyleInParams,
	}, opts...)
}
