package provider

import (
	"golang.org/x/oauth2"
)

const (
	klaviyoAuthURL  = "https://www.klaviyo.com/oauth/authorize"
	klaviyoTokenURL = "https://a.klaviyo.com/oauth/token"
)

// NewKlaviyo returns the Klaviyo adapter.
//
// Read documentation here: https://developers.klaviyo.com/en/docs/set_up_oauth
func NewKlaviyo(opts ...Option) *OAuth {
	return NewOAuth(Endpoint{
		Provider:  Klaviyo,
		AuthURL:   klaviyoAuthURL,
		TokenURL:  klaviyoTokenURL,
		AuthStyle: oauth2.AuthStyleInHeader,
		PKCE:      true,
	}, opts...)
}
