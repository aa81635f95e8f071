package flow

import (
	"github.com/shivanshkc/integrator/pkg/provider"
)

// Phase is the transition a request triggered.
type Phase string

const (
	// PhaseInitiate starts a flow and redirects to the provider.
	PhaseInitiate Phase = "initiate"
	// PhaseDenied handles a provider redirect carrying "error".
	PhaseDenied Phase = "denied"
	// PhaseCallback handles a provider redirect carrying "code".
	PhaseCallback Phase = "callback"
)

// Kind classifies a failed outcome.
type Kind string

const (
	// UnresolvedIntegration covers a missing name, an unknown provider and an unknown integration.
	UnresolvedIntegration Kind = "unresolved_integration"
	// ThirdPartyDenied is a provider redirect carrying "error" instead of "code".
	ThirdPartyDenied Kind = "third_party_denied"
	// ExchangeFailure covers failed token exchanges and failed host callbacks.
	ExchangeFailure Kind = "exchange_failure"
	// StateUnavailable means the flow state backend could not be read or written.
	StateUnavailable Kind = "state_unavailable"
)

// Error codes placed in the "error" query parameter of final redirects.
// A denied flow forwards the provider's own code instead.
const (
	CodeNameRequired       = "name_required"
	CodeInvalidIntegration = "invalid_integration"
	CodeExchangeFailed     = "exchange_failed"
	CodeStateUnavailable   = "state_unavailable"
)

// Error is the failure variant of an Outcome.
type Error struct {
	Kind Kind
	// Code is forwarded to the final redirect.
	Code    string
	Message string
	// Cause is kept for logging. It is never shown to the browser.
	Cause error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Outcome is the result of handling one request.
//
// Redirect is always set: the provider's consent page when an initiate succeeds,
// otherwise the host's final redirect carrying either the success or the error status.
type Outcome struct {
	Phase    Phase
	Redirect string
	// Tokens are only set after a successful callback.
	Tokens provider.Tokens
	Err    *Error
}

// OK reports whether the outcome is a success.
func (o Outcome) OK() bool {
	return o.Err == nil
}
