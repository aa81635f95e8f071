package flow

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/shivanshkc/integrator/pkg/provider"
)

// Callback receives the tokens of a successful exchange. It is owned by the host application,
// typically to persist the tokens. It is invoked at most once per completed flow.
type Callback func(ctx context.Context, tokens provider.Tokens) error

// AuthConfig is the process-wide configuration of the orchestrator.
type AuthConfig struct {
	// BaseURL is the absolute origin of this application, used to build redirect URIs.
	BaseURL   string
	Providers []ProviderConfig
}

// ProviderConfig holds the credentials of one provider and the integrations enabled on it.
type ProviderConfig struct {
	Provider     provider.ID
	ClientID     string
	ClientSecret string
	Integrations []IntegrationConfig
}

// IntegrationConfig is a named use of a provider, for example "user_info" on Google.
type IntegrationConfig struct {
	Name string
	// Options are provider specific authorize parameters such as "scope".
	Options  map[string]string
	Callback Callback
}

// ConfigError lists everything wrong with an AuthConfig.
// It indicates a deployment mistake and should stop the process.
type ConfigError struct {
	Problems []string
}

func (c *ConfigError) Error() string {
	return "invalid auth config: " + strings.Join(c.Problems, "; ")
}

// Validate checks that the config can serve every flow it declares.
// Providers are checked against the registry when it is not nil.
func (a AuthConfig) Validate(registry *provider.Registry) error {
	var problems []string
	addf := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if a.BaseURL == "" {
		addf("base_url is required")
	} else if parsed, err := url.Parse(a.BaseURL); err != nil || parsed.Scheme == "" || parsed.Host == "" {
		addf("base_url %q must be an absolute URL", a.BaseURL)
	}

	seenProviders := map[provider.ID]bool{}
	for i, p := range a.Providers {
		if p.Provider == "" {
			addf("providers[%d]: provider is required", i)
			continue
		}
		if seenProviders[p.Provider] {
			addf("providers[%d]: duplicate provider %q", i, p.Provider)
		}
		seenProviders[p.Provider] = true

		if registry != nil {
			if _, err := registry.Get(p.Provider); err != nil {
				addf("providers[%d]: %v", i, err)
			}
		}
		if p.ClientID == "" {
			addf("%s: client_id is required", p.Provider)
		}
		if p.ClientSecret == "" {
			addf("%s: client_secret is required", p.Provider)
		}

		seenNames := map[string]bool{}
		for j, integration := range p.Integrations {
			if integration.Name == "" {
				addf("%s: integrations[%d]: name is required", p.Provider, j)
				continue
			}
			if seenNames[integration.Name] {
				addf("%s: duplicate integration %q", p.Provider, integration.Name)
			}
			seenNames[integration.Name] = true

			if integration.Callback == nil {
				addf("%s/%s: callback is required", p.Provider, integration.Name)
			}
		}
	}

	if len(problems) > 0 {
		return &ConfigError{Problems: problems}
	}
	return nil
}
