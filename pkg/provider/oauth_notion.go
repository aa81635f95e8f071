package provider

import (
	"golang.org/x/oauth2"
)

const (
	notionAuthURL  = "https://api.notion.com/v1/oauth/authorize"
	notionTokenURL = "https://api.notion.com/v1/oauth/token"
)

// NewNotion returns the Notion adapter.
//
// Notion requires owner=user on the authorize URL for public integrations.
//
// Read documentation here: https://developers.notion.com/docs/authorization
func NewNotion(opts ...Option) *OAuth {
	return NewOAuth(Endpoint{
		Provider:   Notion,
		AuthURL:    notionAuthURL,
		TokenURL:   notionTokenURL,
		AuthStyle:  oauth2.AuthStyleInHeader,
		AuthParams: map[string]string{"owner": "user"},
	}, opts...)
}
