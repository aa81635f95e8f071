package provider

import (
	"golang.org/x/oauth2"
)

const (
	discordAuthURL  = "https://discord.com/oauth2/authorize"
	discordTokenURL = "https://discord.com/api/oauth2/token"
)

// NewDiscord returns the Discord adapter.
//
// Read documentation here: https://discord.com/developers/docs/topics/oauth2
func NewDiscord(opts ...Option) *OAuth {
	return NewOAuth(Endpoint{
		Provider:  Discord,
		AuthURL:   discordAuthURL,
		TokenURL:  discordTokenURL,
		AuthStyle: oauth2.AuthStyleInParams,
	}, opts...)
}
