package flow

import (
	"errors"
	"fmt"

	"github.com/shivanshkc/integrator/pkg/provider"
)

var (
	// ErrUnknownProvider is returned by Resolve when the provider is not configured.
	ErrUnknownProvider = errors.New("provider is not configured")
	// ErrUnknownIntegration is returned by Resolve when the provider has no integration with the name.
	ErrUnknownIntegration = errors.New("integration is not configured")
)

// Resolve finds the provider and integration configuration for a request.
func Resolve(cfg AuthConfig, id provider.ID, name string) (ProviderConfig, IntegrationConfig, error) {
	for _, p := range cfg.Providers {
		if p.Provider != id {
			continue
		}
		for _, integration := range p.Integrations {
			if integration.Name == name {
				return p, integration, nil
			}
		}
		return ProviderConfig{}, IntegrationConfig{}, fmt.Errorf("%w: %s/%s", ErrUnknownIntegration, id, name)
	}
	return ProviderConfig{}, IntegrationConfig{}, fmt.Errorf("%w: %s", ErrUnknownProvider, id)
}
