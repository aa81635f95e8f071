package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const mockYAML = `
application:
  name: integrator-test
  base_url: https://integrator.app.com
logger:
  level: debug
allowed_redirect_urls:
  - https://app.com
flow_state:
  driver: signed
  ttl: 5m
  signing_key: ${TEST_SIGNING_KEY}
providers:
  - provider: google
    client_id: google-id
    client_secret: ${TEST_GOOGLE_SECRET}
    integrations:
      - name: user_info
        options:
          scope: openid email
          access_type: offline
        callback:
          type: webhook
          url: https://app.com/hooks/tokens
`

// writeConfig writes the content to a temporary file and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "configs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	t.Setenv("TEST_SIGNING_KEY", "super-secret")
	t.Setenv("TEST_GOOGLE_SECRET", "google-secret")
	t.Setenv("INTEGRATOR_HTTP_SERVER_ADDR", "0.0.0.0:9090")
	t.Setenv("INTEGRATOR_FLOW_STATE_SECURE", "true")

	cfg, err := LoadFile(writeConfig(t, mockYAML))
	require.NoError(t, err)

	require.Equal(t, "integrator-test", cfg.Application.Name)
	require.Equal(t, "https://integrator.app.com", cfg.Application.BaseURL)
	require.Equal(t, "0.0.0.0:9090", cfg.HTTPServer.Addr)
	require.Equal(t, "debug", cfg.Logger.Level)
	require.Equal(t, []string{"https://app.com"}, cfg.AllowedRedirectURLs)

	require.Equal(t, DriverSigned, cfg.FlowState.Driver)
	require.Equal(t, 5*time.Minute, cfg.FlowState.TTL)
	require.Equal(t, "super-secret", cfg.FlowState.SigningKey)
	require.True(t, cfg.FlowState.Secure)
	require.True(t, cfg.FlowState.ClearOnFailure, "default must apply")
	require.Equal(t, 30*time.Second, cfg.HTTPClient.Timeout)

	require.Len(t, cfg.Providers, 1)
	google := cfg.Providers[0]
	require.Equal(t, "google", google.Provider)
	require.Equal(t, "google-secret", google.ClientSecret)
	require.Len(t, google.Integrations, 1)
	require.Equal(t, "user_info", google.Integrations[0].Name)
	require.Equal(t, map[string]string{"scope": "openid email", "access_type": "offline"}, google.Integrations[0].Options)
	require.Equal(t, Callback{Type: "webhook", URL: "https://app.com/hooks/tokens"}, google.Integrations[0].Callback)
}

func TestLoadFile_Errors(t *testing.T) {
	for _, tc := range []struct {
		name    string
		content string
	}{
		{name: "Missing base_url", content: "application:\n  name: x\n"},
		{name: "Unknown driver", content: "application:\n  base_url: http://x\nflow_state:\n  driver: disk\n"},
		{name: "Signed driver without key", content: "application:\n  base_url: http://x\nflow_state:\n  driver: signed\n"},
		{name: "Redis driver without addr", content: "application:\n  base_url: http://x\nflow_state:\n  driver: redis\n"},
		{name: "Postgres driver without url", content: "application:\n  base_url: http://x\nflow_state:\n  driver: postgres\n"},
		{
			name:    "Webhook without url",
			content: "application:\n  base_url: http://x\nproviders:\n  - provider: google\n    integrations:\n      - name: a\n        callback:\n          type: webhook\n",
		},
		{name: "Malformed YAML", content: "application: [\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadFile(writeConfig(t, tc.content))
			require.Error(t, err)
		})
	}

	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestDefaultPath(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	require.Equal(t, defaultPath, DefaultPath())

	t.Setenv(EnvConfigPath, "/etc/integrator.yaml")
	require.Equal(t, "/etc/integrator.yaml", DefaultPath())
}

func TestLoadMock(t *testing.T) {
	require.NoError(t, LoadMock().Validate())
}
