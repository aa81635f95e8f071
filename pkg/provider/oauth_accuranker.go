package provider

import (
	"golang.org/x/oauth2"
)

const (
	accurankerAuthURL  = "https://app.accuranker.com/oauth/authorize/"
	accurankerTokenURL = "https://app.accuranker.com/oauth/token/"
)

// NewAccuranker returns the Accuranker adapter.
//
// Read documentation here: https://app.accuranker.com/api/docs
func NewAccuranker(opts ...Option) *OAuth {
	return NewOAuth(Endpoint{
		Provider:  Accuranker,
		AuthURL:   accurankerAuthURL,
		TokenURL:  accurankerTokenURL,
		AuthStyle: oauth2.AuthStyleInHeader,
		PKCE:      true,
	}, opts...)
}
