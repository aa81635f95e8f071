package handler

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shivanshkc/integrator/internal/config"
	"github.com/shivanshkc/integrator/internal/utils/errutils"
	"github.com/shivanshkc/integrator/internal/utils/httputils"
	"github.com/shivanshkc/integrator/internal/utils/miscutils"
	"github.com/shivanshkc/integrator/pkg/flow"
	"github.com/shivanshkc/integrator/pkg/flowstate"
)

// Orchestrator runs the integration flow. It is implemented by *flow.Orchestrator.
type Orchestrator interface {
	Handle(ctx context.Context, store flowstate.Store, req flow.Request) flow.Outcome
}

// Handler encapsulates all REST handlers.
type Handler struct {
	config       config.Config
	baseURL      *url.URL
	orchestrator Orchestrator
	flowStates   flowstate.Factory
}

// NewHandler creates a new Handler instance.
// It panics if the configured base URL cannot be parsed.
func NewHandler(config config.Config, orchestrator Orchestrator, flowStates flowstate.Factory) *Handler {
	return &Handler{
		config:       config,
		baseURL:      miscutils.MustParseURL(config.Application.BaseURL),
		orchestrator: orchestrator,
		flowStates:   flowStates,
	}
}

// NotFound handler can be used to serve any unrecognized routes.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	httputils.WriteErr(w, errutils.NotFound())
}

// Health returns 200 if everything is running fine.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	info := map[string]string{"name": h.config.Application.Name}
	httputils.Write(w, http.StatusOK, nil, info)
}
