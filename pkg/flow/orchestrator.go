// Package flow drives the two phases of an OAuth2 authorization-code flow.
//
// Every request to the integration route is handled from scratch: the initiate phase persists a
// FlowState and redirects to the provider, the callback phase reads it back, exchanges the code
// and hands the tokens to the integration's callback. Nothing is kept in memory between the two,
// so any instance can complete a flow started by another.
package flow

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shivanshkc/integrator/pkg/flowstate"
	"github.com/shivanshkc/integrator/pkg/pkce"
	"github.com/shivanshkc/integrator/pkg/provider"
)

// Request carries the inputs of the integration route.
type Request struct {
	// Provider is the path segment of the route.
	Provider provider.ID
	// Name and Redirect are only trusted on initiate.
	Name     string
	Redirect string
	// Code and Error are set by the provider on its redirect back.
	Code  string
	Error string
}

// Orchestrator handles integration requests. It is safe for concurrent use.
type Orchestrator struct {
	config   AuthConfig
	registry *provider.Registry
	// generate is swapped in tests.
	generate func() pkce.Pair
}

// New validates the config against the registry and returns an Orchestrator.
// The returned error is a *ConfigError.
// A nil registry means provider.DefaultRegistry.
func New(cfg AuthConfig, registry *provider.Registry) (*Orchestrator, error) {
	if registry == nil {
		registry = provider.DefaultRegistry()
	}
	if err := cfg.Validate(registry); err != nil {
		return nil, err
	}

	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	return &Orchestrator{config: cfg, registry: registry, generate: pkce.Generate}, nil
}

// Handle runs the transition selected by the request and never panics on provider failures.
//
// A request with "error" is a denial, a request with "code" is a callback,
// anything else initiates a new flow.
func (o *Orchestrator) Handle(ctx context.Context, store flowstate.Store, req Request) Outcome {
	var outcome Outcome
	switch {
	case req.Error != "":
		outcome = o.deny(ctx, store, req)
	case req.Code != "":
		outcome = o.callback(ctx, store, req)
	default:
		outcome = o.initiate(ctx, store, req)
	}

	if outcome.Err != nil {
		slog.WarnContext(ctx, "integration flow failed", "phase", outcome.Phase, "provider", req.Provider,
			"kind", outcome.Err.Kind, "code", outcome.Err.Code, "err", outcome.Err)
	} else {
		slog.InfoContext(ctx, "integration flow step completed", "phase", outcome.Phase, "provider", req.Provider)
	}
	return outcome
}

// initiate persists the flow state and redirects to the provider's consent page.
//
// The state is written before the request is validated, so a failed initiate still replaces
// whatever flow was pending for this session.
func (o *Orchestrator) initiate(ctx context.Context, store flowstate.Store, req Request) Outcome {
	fail := func(err *Error) Outcome {
		return Outcome{Phase: PhaseInitiate, Redirect: errorRedirect(req.Redirect, err.Code), Err: err}
	}

	pair := o.generate()
	state := flowstate.FlowState{Name: req.Name, Redirect: req.Redirect, CodeVerifier: pair.Verifier}
	if err := store.Save(ctx, state); err != nil {
		return fail(&Error{Kind: StateUnavailable, Code: CodeStateUnavailable, Message: "failed to save flow state", Cause: err})
	}

	if req.Name == "" {
		return fail(&Error{Kind: UnresolvedIntegration, Code: CodeNameRequired, Message: "name is required"})
	}

	adapter, providerCfg, integration, err := o.resolve(req.Provider, req.Name)
	if err != nil {
		return fail(&Error{Kind: UnresolvedIntegration, Code: CodeInvalidIntegration, Message: "invalid integration", Cause: err})
	}

	authURL := adapter.AuthorizeURL(provider.AuthorizeParams{
		ClientID:      providerCfg.ClientID,
		BaseURL:       o.config.BaseURL,
		Scope:         integration.Options["scope"],
		CodeChallenge: pair.Challenge,
		Options:       integration.Options,
	})
	return Outcome{Phase: PhaseInitiate, Redirect: authURL}
}

// deny clears the flow state and forwards the provider's error to the host.
// The state is cleared even when it could not be loaded.
func (o *Orchestrator) deny(ctx context.Context, store flowstate.Store, req Request) Outcome {
	state, loadErr := store.Load(ctx)

	if err := store.Clear(ctx); err != nil {
		slog.ErrorContext(ctx, "error in store.Clear call", "err", err)
	}

	if loadErr != nil {
		return Outcome{Phase: PhaseDenied, Redirect: errorRedirect("", CodeStateUnavailable),
			Err: &Error{Kind: StateUnavailable, Code: CodeStateUnavailable, Message: "failed to load flow state", Cause: loadErr}}
	}

	return Outcome{Phase: PhaseDenied, Redirect: errorRedirect(state.Redirect, req.Error),
		Err: &Error{Kind: ThirdPartyDenied, Code: req.Error, Message: "provider denied the authorization"}}
}

// callback exchanges the code using the persisted state and hands the tokens to the integration.
// Name and redirect of the incoming request are ignored.
func (o *Orchestrator) callback(ctx context.Context, store flowstate.Store, req Request) Outcome {
	state, err := store.Load(ctx)
	if err != nil {
		return Outcome{Phase: PhaseCallback, Redirect: errorRedirect("", CodeStateUnavailable),
			Err: &Error{Kind: StateUnavailable, Code: CodeStateUnavailable, Message: "failed to load flow state", Cause: err}}
	}

	fail := func(err *Error) Outcome {
		return Outcome{Phase: PhaseCallback, Redirect: errorRedirect(state.Redirect, err.Code), Err: err}
	}

	if state.Name == "" {
		return fail(&Error{Kind: UnresolvedIntegration, Code: CodeNameRequired, Message: "name is required"})
	}

	adapter, providerCfg, integration, err := o.resolve(req.Provider, state.Name)
	if err != nil {
		return fail(&Error{Kind: UnresolvedIntegration, Code: CodeInvalidIntegration, Message: "invalid integration", Cause: err})
	}

	// A started exchange runs to completion even if the browser goes away.
	ctx = context.WithoutCancel(ctx)

	tokens, err := adapter.ExchangeToken(ctx, provider.ExchangeParams{
		Code:         req.Code,
		BaseURL:      o.config.BaseURL,
		ClientID:     providerCfg.ClientID,
		ClientSecret: providerCfg.ClientSecret,
		CodeVerifier: state.CodeVerifier,
	})
	if err != nil {
		return fail(&Error{Kind: ExchangeFailure, Code: CodeExchangeFailed, Message: "token exchange failed", Cause: err})
	}

	tokens = tokens.WithProvider(req.Provider)
	if err := integration.Callback(ctx, tokens); err != nil {
		return fail(&Error{Kind: ExchangeFailure, Code: CodeExchangeFailed, Message: "integration callback failed", Cause: err})
	}

	// The tokens are already delivered, so a failed clear only leaves a stale flow behind.
	if err := store.Clear(ctx); err != nil {
		slog.ErrorContext(ctx, "error in store.Clear call", "err", err)
	}

	return Outcome{Phase: PhaseCallback, Redirect: successRedirect(state.Redirect, state.Name, req.Provider), Tokens: tokens}
}

// resolve finds the configuration and the adapter for the given provider and integration.
func (o *Orchestrator) resolve(id provider.ID, name string) (provider.Adapter, ProviderConfig, IntegrationConfig, error) {
	providerCfg, integration, err := Resolve(o.config, id, name)
	if err != nil {
		return nil, ProviderConfig{}, IntegrationConfig{}, err
	}

	adapter, err := o.registry.Get(id)
	if err != nil {
		return nil, ProviderConfig{}, IntegrationConfig{}, errors.Join(ErrUnknownProvider, err)
	}
	return adapter, providerCfg, integration, nil
}
