package provider

import (
	"golang.org/x/oauth2"
)

const (
	pinterestAuthURL  = "https://www.pinterest.com/oauth/"
	pinterestTokenURL = "https://api.pinterest.com/v5/oauth/token"
)

// NewPinterest returns the Pinterest adapter.
//
// Read documentation here: https://developers.pinterest.com/docs/getting-started/authentication
func NewPinterest(opts ...Option) *OAuth {
	return NewOAuth(Endpoint{
		Provider:  Pinterest,
		AuthURL:   pinterestAuthURL,
		TokenURL:  pinterestTokenURL,
		AuthStyle: oauth2.AuthStyleInHeader,
	}, opts...)
}
