package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shivanshkc/integrator/internal/config"
	"github.com/shivanshkc/integrator/pkg/flow"
	"github.com/shivanshkc/integrator/pkg/flowstate"
	"github.com/shivanshkc/integrator/pkg/provider"
)

func TestRootCommand(t *testing.T) {
	require.Equal(t, "integrator", rootCmd.Use)
	require.True(t, rootCmd.SilenceUsage)

	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	require.True(t, names["serve"])
	require.True(t, names["link"])
}

func TestLinkCommand(t *testing.T) {
	out := &bytes.Buffer{}
	cmd := newLinkCmd()
	cmd.SetOut(out)
	cmd.SetArgs([]string{"--provider", "google", "--name", "user_info", "--redirect", "/settings#apps",
		"--base-path", "https://integrator.app.com"})

	require.NoError(t, cmd.Execute())
	require.Equal(t, "https://integrator.app.com/api/auth/integration/google?name=user_info&redirect=%2Fsettings__HASH__apps",
		strings.TrimSpace(out.String()))

	cmd = newLinkCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--provider", "google"})
	require.Error(t, cmd.Execute())
}

func TestBuildAuthConfig(t *testing.T) {
	conf := config.LoadMock()

	authConfig, err := buildAuthConfig(conf, http.DefaultClient)
	require.NoError(t, err)
	require.Equal(t, conf.Application.BaseURL, authConfig.BaseURL)
	require.Len(t, authConfig.Providers, 1)
	require.Equal(t, provider.Google, authConfig.Providers[0].Provider)
	require.NotNil(t, authConfig.Providers[0].Integrations[0].Callback)

	// The built config must be accepted by the orchestrator.
	_, err = flow.New(authConfig, nil)
	require.NoError(t, err)

	conf.Providers[0].Integrations[0].Callback = config.Callback{Type: "email"}
	_, err = buildAuthConfig(conf, http.DefaultClient)
	require.Error(t, err)
}

func TestBuildFlowStates(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	for _, driver := range []string{config.DriverCookie, config.DriverSigned, config.DriverMemory} {
		t.Run(driver, func(t *testing.T) {
			conf := config.LoadMock()
			conf.FlowState.Driver = driver
			conf.FlowState.SigningKey = "signing-key"

			factory, closeFn, err := buildFlowStates(ctx, conf)
			require.NoError(t, err)
			defer closeFn()

			store := factory(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
			require.NoError(t, store.Save(ctx, flowstate.FlowState{Name: "user_info"}))
			state, err := store.Load(ctx)
			require.NoError(t, err)
			require.Equal(t, "user_info", state.Name)
		})
	}

	conf := config.LoadMock()
	conf.FlowState.Driver = "disk"
	_, _, err := buildFlowStates(ctx, conf)
	require.Error(t, err)

	conf.FlowState.Driver = config.DriverSigned
	conf.FlowState.SigningKey = ""
	_, _, err = buildFlowStates(ctx, conf)
	require.Error(t, err)
}
