// Package sink provides the integration callbacks that can be selected from the config file.
package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/shivanshkc/integrator/internal/config"
	"github.com/shivanshkc/integrator/internal/utils/httputils"
	"github.com/shivanshkc/integrator/internal/utils/miscutils"
	"github.com/shivanshkc/integrator/pkg/flow"
	"github.com/shivanshkc/integrator/pkg/provider"
)

// Callback types accepted by FromConfig.
const (
	TypeLog     = "log"
	TypeWebhook = "webhook"
)

// Log returns a callback that only logs which token fields were received. Values are never logged.
func Log() flow.Callback {
	return func(ctx context.Context, tokens provider.Tokens) error {
		slog.InfoContext(ctx, "tokens received", "provider", tokens.Provider(),
			"fields", miscutils.SortedKeys(tokens))
		return nil
	}
}

// Webhook returns a callback that POSTs the tokens as JSON to the given URL.
// Any non-2xx response fails the flow.
func Webhook(url string, client *http.Client) flow.Callback {
	if client == nil {
		client = &http.Client{}
	}

	return func(ctx context.Context, tokens provider.Tokens) error {
		body, err := json.Marshal(tokens)
		if err != nil {
			return fmt.Errorf("error in json.Marshal call: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("error in http.NewRequestWithContext call: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		res, err := client.Do(req)
		if err != nil {
			return fmt.Errorf("error in client.Do call: %w", err)
		}
		// Close response body upon return.
		defer func() { _ = res.Body.Close() }()

		if !httputils.Is2xx(res.StatusCode) {
			resBody, _ := io.ReadAll(io.LimitReader(res.Body, 1<<10))
			slog.ErrorContext(ctx, "webhook call failed", "code", res.StatusCode, "body", string(resBody))
			return fmt.Errorf("webhook returned status %d", res.StatusCode)
		}
		return nil
	}
}

// FromConfig returns the callback described by the config. An empty type means Log.
func FromConfig(cfg config.Callback, client *http.Client) (flow.Callback, error) {
	switch cfg.Type {
	case "", TypeLog:
		return Log(), nil
	case TypeWebhook:
		if cfg.URL == "" {
			return nil, errors.New("webhook callback requires a url")
		}
		return Webhook(cfg.URL, client), nil
	default:
		return nil, fmt.Errorf("unknown callback type: %q", cfg.Type)
	}
}
