package provider

import (
	"golang.org/x/oauth2"
)

const (
	tikTokAuthURL  = "https://www.tiktok.com/v2/auth/authorize"
	tikTokTokenURL = "https://open.tiktokapis.com/v2/oauth/token/"
)

// NewTikTok returns the TikTok adapter.
//
// TikTok calls the client id "client_key", both on the authorize URL and in the token request.
//
// Read documentation here: https://developers.tiktok.com/doc/oauth-user-access-token-management
func NewTikTok(opts ...Option) *OAuth {
	return NewOAuth(Endpoint{
		Provider:    TikTok,
		AuthURL:     tikTokAuthURL,
		TokenURL:    tikTokTokenURL,
		ClientIDKey: "client_key",
		AuthStyle:   oauth2.AuthStyleInParams,
		PKCE:        true,
	}, opts...)
}
