package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2"

	"github.com/shivanshkc/integrator/internal/utils/httputils"
	"github.com/shivanshkc/integrator/pkg/pkce"
	"github.com/shivanshkc/integrator/pkg/qs"
)

// maxErrorBody caps how much of a failed response body is kept for logging.
const maxErrorBody = 4 << 10

// Endpoint describes how a provider implements the authorization-code flow.
type Endpoint struct {
	Provider ID
	// AuthURL is the provider's consent page.
	AuthURL string
	// TokenURL is the provider's code-to-token endpoint.
	TokenURL string
	// ClientIDKey is the name of the client id parameter. Defaults to "client_id".
	ClientIDKey string
	// AuthStyle selects how the client credentials are sent to TokenURL.
	// oauth2.AuthStyleInParams places them in the form body,
	// oauth2.AuthStyleInHeader sends them as an HTTP Basic Authorization header.
	AuthStyle oauth2.AuthStyle
	// PKCE enables code_challenge in the authorize URL and code_verifier in the exchange.
	PKCE bool
	// AuthParams are static authorize parameters. Integration options override them.
	AuthParams map[string]string
	// Check optionally rejects a 2xx token response, for providers that report errors in-band.
	Check func(Tokens) error
}

// Option configures an OAuth adapter.
type Option func(*OAuth)

// WithHTTPClient sets the client used for token exchanges.
// Its Timeout is the only deadline applied to the exchange call.
func WithHTTPClient(client *http.Client) Option {
	return func(o *OAuth) {
		if client != nil {
			o.httpClient = client
		}
	}
}

// OAuth is the Adapter implementation shared by all built-in providers.
type OAuth struct {
	endpoint   Endpoint
	httpClient *http.Client
}

// NewOAuth creates an adapter for the given endpoint.
func NewOAuth(endpoint Endpoint, opts ...Option) *OAuth {
	if endpoint.ClientIDKey == "" {
		endpoint.ClientIDKey = "client_id"
	}

	o := &OAuth{endpoint: endpoint, httpClient: &http.Client{}}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *OAuth) ID() ID {
	return o.endpoint.Provider
}

// Endpoint returns the provider description of this adapter.
func (o *OAuth) Endpoint() Endpoint {
	return o.endpoint
}

func (o *OAuth) AuthorizeURL(p AuthorizeParams) string {
	params := map[string]any{
		"response_type": "code",
		"scope":         qs.Optional(p.Scope),
	}
	for k, v := range o.endpoint.AuthParams {
		params[k] = v
	}
	for k, v := range p.Options {
		params[k] = v
	}

	// These keys are owned by the adapter and cannot be overridden by options.
	params[o.endpoint.ClientIDKey] = p.ClientID
	params["redirect_uri"] = RedirectURI(p.BaseURL, o.endpoint.Provider)
	if o.endpoint.PKCE {
		params["code_challenge_method"] = pkce.Method
		params["code_challenge"] = qs.Optional(p.CodeChallenge)
	} else {
		delete(params, "code_challenge_method")
		delete(params, "code_challenge")
	}

	return o.endpoint.AuthURL + "?" + qs.Encode(params)
}

func (o *OAuth) ExchangeToken(ctx context.Context, p ExchangeParams) (Tokens, error) {
	if p.BaseURL == "" || p.ClientID == "" || p.ClientSecret == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingCredentials, o.endpoint.Provider)
	}

	// Request body.
	form := url.Values{}
	form.Set("code", p.Code)
	form.Set("redirect_uri", RedirectURI(p.BaseURL, o.endpoint.Provider))
	form.Set("grant_type", "authorization_code")
	if o.endpoint.PKCE && p.CodeVerifier != "" {
		form.Set("code_verifier", p.CodeVerifier)
	}
	if o.endpoint.AuthStyle != oauth2.AuthStyleInHeader {
		form.Set(o.endpoint.ClientIDKey, p.ClientID)
		form.Set("client_secret", p.ClientSecret)
	}

	// The exchange must not be abandoned halfway because the browser went away,
	// otherwise an issued code could be consumed without the callback ever being invoked.
	ctx = context.WithoutCancel(ctx)

	// Form the HTTP request.
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.endpoint.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, o.fail(0, "", fmt.Errorf("error in http.NewRequestWithContext call: %w", err))
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	if o.endpoint.AuthStyle == oauth2.AuthStyleInHeader {
		req.SetBasicAuth(p.ClientID, p.ClientSecret)
	}

	// Execute request.
	res, err := o.httpClient.Do(req)
	if err != nil {
		return nil, o.fail(0, "", fmt.Errorf("error in httpClient.Do call: %w", err))
	}
	// Close response body upon return.
	defer func() { _ = res.Body.Close() }()

	// Check if the request failed.
	if !httputils.Is2xx(res.StatusCode) {
		// Read response body only for logging.
		resBody, err := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
		if err != nil {
			resBody = []byte("error in io.ReadAll call: " + err.Error())
		}
		slog.ErrorContext(ctx, "token request failed", "provider", o.endpoint.Provider,
			"code", res.StatusCode, "body", string(resBody))
		return nil, o.fail(res.StatusCode, string(resBody), nil)
	}

	// Decode the success response.
	var tokens Tokens
	if err := json.NewDecoder(res.Body).Decode(&tokens); err != nil {
		return nil, o.fail(res.StatusCode, "", fmt.Errorf("error in json Decode call: %w", err))
	}
	if tokens == nil {
		return nil, o.fail(res.StatusCode, "", errors.New("empty token response"))
	}

	// Some providers answer 200 with an OAuth error body.
	if code, _ := tokens["error"].(string); code != "" {
		return nil, o.fail(res.StatusCode, "", fmt.Errorf("provider returned error: %s", code))
	}
	if o.endpoint.Check != nil {
		if err := o.endpoint.Check(tokens); err != nil {
			return nil, o.fail(res.StatusCode, "", err)
		}
	}

	return tokens.WithProvider(o.endpoint.Provider), nil
}

// fail builds an ExchangeError for this adapter.
func (o *OAuth) fail(status int, body string, err error) error {
	return &ExchangeError{Provider: o.endpoint.Provider, StatusCode: status, Body: body, Err: err}
}
