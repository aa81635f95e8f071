package provider

import (
	"golang.org/x/oauth2"
)

const (
	azureAuthURL  = "https://login.microsoftonline.com/common/oauth2/v2.0/authorize"
	azureTokenURL = "https://login.microsoftonline.com/common/oauth2/v2.0/token"
)

// NewAzure returns the Azure adapter.
//
// Read documentation here: https://learn.microsoft.com/en-us/entra/identity-platform/v2-oauth2-auth-code-flow
func NewAzure(opts ...Option) *OAuth {
	return NewOAuth(Endpoint{
		Provider:  Azure,
		AuthURL:   azureAuthURL,
		TokenURL:  azureTokenURL,
		AuthStyle: oauth2.AuthStyleInParams,
	}, opts...)
}
