package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/shivanshkc/integrator/internal/utils/errutils"
	"github.com/shivanshkc/integrator/internal/utils/httputils"
	"github.com/shivanshkc/integrator/pkg/link"
	"github.com/shivanshkc/integrator/pkg/provider"
)

// linkResponse is the body of the Link handler.
type linkResponse struct {
	URL string `json:"url"`
}

// Link renders the absolute URL that starts a flow, for UIs that cannot build it themselves.
func (h *Handler) Link(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	providerName := query.Get("provider")
	if err := validateProvider(providerName); err != nil {
		slog.ErrorContext(ctx, "invalid provider", "value", providerName, "error", err)
		httputils.WriteErr(w, errutils.BadRequest().WithReasonErr(err))
		return
	}

	redirect := query.Get("redirect")
	if !isAllowedRedirect(redirect, h.config.AllowedRedirectURLs) {
		slog.ErrorContext(ctx, "request contains unknown redirect", "value", redirect)
		httputils.WriteErr(w, errRedirectNotAllowed)
		return
	}

	built, err := link.Build(link.Params{
		Provider: provider.ID(providerName),
		Name:     query.Get("name"),
		Redirect: redirect,
		BasePath: h.config.Application.BaseURL,
	})
	if err != nil {
		if errors.Is(err, link.ErrMissingParams) {
			httputils.WriteErr(w, errutils.BadRequest().WithReasonErr(err))
			return
		}
		slog.ErrorContext(ctx, "error in link.Build call", "error", err)
		httputils.WriteErr(w, errutils.InternalServerError())
		return
	}

	httputils.Write(w, http.StatusOK, nil, linkResponse{URL: built})
}
