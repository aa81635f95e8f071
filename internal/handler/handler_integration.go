package handler

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"

	"github.com/shivanshkc/integrator/internal/utils/errutils"
	"github.com/shivanshkc/integrator/internal/utils/httputils"
	"github.com/shivanshkc/integrator/pkg/flow"
	"github.com/shivanshkc/integrator/pkg/link"
	"github.com/shivanshkc/integrator/pkg/provider"
)

var errRedirectNotAllowed = errutils.BadRequest().WithReasonStr("redirect is not allowed")

// Integration serves both phases of an integration flow on the same route.
//
// Without "code" or "error" it starts a flow and redirects to the provider's consent page.
// The provider redirects back to it with "code" or "error", and the caller ends on its own redirect.
func (h *Handler) Integration(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Provider is a path parameter and so it will always be present.
	providerName := mux.Vars(r)["provider"]
	query := r.URL.Query()

	req := flow.Request{
		Provider: provider.ID(providerName),
		Name:     query.Get("name"),
		Redirect: query.Get("redirect"),
		Code:     query.Get("code"),
		Error:    query.Get("error"),
	}

	// Provider name validation.
	if err := validateProvider(providerName); err != nil {
		slog.ErrorContext(ctx, "invalid provider", "value", providerName, "error", err)
		httputils.WriteErr(w, errutils.BadRequest().WithReasonErr(err))
		return
	}

	// Caller supplied values only matter when a flow is started.
	if req.Code == "" && req.Error == "" {
		if err := validateName(req.Name); err != nil {
			slog.ErrorContext(ctx, "invalid name", "error", err)
			httputils.WriteErr(w, errutils.BadRequest().WithReasonErr(err))
			return
		}

		if err := validateRedirect(req.Redirect); err != nil {
			slog.ErrorContext(ctx, "invalid redirect", "value", req.Redirect, "error", err)
			httputils.WriteErr(w, errutils.BadRequest().WithReasonErr(err))
			return
		}

		if !isAllowedRedirect(link.UnescapeRedirect(req.Redirect), h.config.AllowedRedirectURLs) {
			slog.ErrorContext(ctx, "request contains unknown redirect", "value", req.Redirect)
			httputils.WriteErr(w, errRedirectNotAllowed)
			return
		}
	}

	store := h.flowStates(w, r)
	outcome := h.orchestrator.Handle(ctx, store, req)

	// Clearing after a failed callback is a deployment choice.
	if !outcome.OK() && outcome.Phase == flow.PhaseCallback && h.config.FlowState.ClearOnFailure {
		if err := store.Clear(ctx); err != nil {
			slog.ErrorContext(ctx, "error in store.Clear call", "error", err)
		}
	}

	// The provider's consent page.
	if outcome.OK() && outcome.Phase == flow.PhaseInitiate {
		httputils.Redirect(w, outcome.Redirect, map[string]string{
			// The following headers make sure that the browser is not allowed to render the page
			// in a <frame>, <iframe>, <embed> or <object> tag.
			"X-Frame-Options":         "DENY",
			"Content-Security-Policy": "frame-ancestors 'none'",
		})
		return
	}

	// The host application's page, carrying the status of the flow.
	httputils.Redirect(w, h.resolve(outcome.Redirect), nil)
}

// resolve makes a relative final redirect absolute, against the application base URL.
func (h *Handler) resolve(redirect string) string {
	parsed, err := url.Parse(redirect)
	if err != nil || parsed.IsAbs() {
		return redirect
	}
	return h.baseURL.ResolveReference(parsed).String()
}
