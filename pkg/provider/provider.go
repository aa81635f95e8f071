// Package provider contains the OAuth2 authorization-code adapters for every supported third party.
//
// Each adapter knows how to build its provider's authorize URL and how to exchange an authorization
// code for tokens, including the provider's quirks: non-standard client id keys, HTTP Basic
// credentials, PKCE and response formats.
package provider

import (
	"context"
)

// ID identifies a provider. It is also the last path segment of the integration route.
type ID string

// Supported providers.
const (
	Accuranker ID = "accuranker"
	Azure      ID = "azure"
	ClickUp    ID = "click-up"
	Discord    ID = "discord"
	Facebook   ID = "facebook"
	GitHub     ID = "github"
	Google     ID = "google"
	Klaviyo    ID = "klaviyo"
	LinkedIn   ID = "linkedin"
	Notion     ID = "notion"
	Pinterest  ID = "pinterest"
	Reddit     ID = "reddit"
	Slack      ID = "slack"
	Snapchat   ID = "snapchat"
	Spotify    ID = "spotify"
	TikTok     ID = "tiktok"
	Trustpilot ID = "trustpilot"
)

// CallbackPathPrefix is the path under which every provider redirects back to the application.
const CallbackPathPrefix = "/api/auth/integration/"

// Adapter represents an OAuth provider.
type Adapter interface {
	// ID of the provider.
	ID() ID

	// AuthorizeURL returns the URL of the provider's consent page.
	// It performs no network call.
	AuthorizeURL(params AuthorizeParams) string

	// ExchangeToken converts the authorization code to tokens.
	// The returned tokens are always tagged with the provider ID.
	ExchangeToken(ctx context.Context, params ExchangeParams) (Tokens, error)
}

// AuthorizeParams are the inputs of Adapter.AuthorizeURL.
type AuthorizeParams struct {
	ClientID string
	BaseURL  string
	Scope    string
	// CodeChallenge is only used by providers that require PKCE.
	CodeChallenge string
	// Options are provider specific query parameters, merged verbatim into the URL.
	Options map[string]string
}

// ExchangeParams are the inputs of Adapter.ExchangeToken.
type ExchangeParams struct {
	Code         string
	BaseURL      string
	ClientID     string
	ClientSecret string
	// CodeVerifier is only sent by providers that require PKCE.
	CodeVerifier string
}

// RedirectURI returns the redirect_uri registered with the provider: base_url + "/api/auth/integration/{id}".
func RedirectURI(baseURL string, id ID) string {
	return baseURL + CallbackPathPrefix + string(id)
}

// Tokens is the decoded token response of a provider, tagged with the "provider" key.
//
// The shape is provider specific and is not normalized.
type Tokens map[string]any

// Provider returns the provider that issued these tokens.
func (t Tokens) Provider() ID {
	id, _ := t["provider"].(string)
	return ID(id)
}

// AccessToken returns the "access_token" field, if present.
func (t Tokens) AccessToken() string {
	s, _ := t["access_token"].(string)
	return s
}

// RefreshToken returns the "refresh_token" field, if present.
func (t Tokens) RefreshToken() string {
	s, _ := t["refresh_token"].(string)
	return s
}

// WithProvider returns a copy of the tokens tagged with the given provider.
func (t Tokens) WithProvider(id ID) Tokens {
	tagged := make(Tokens, len(t)+1)
	for k, v := range t {
		tagged[k] = v
	}
	tagged["provider"] = string(id)
	return tagged
}
