package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/shivanshkc/integrator/internal/config"
	"github.com/shivanshkc/integrator/internal/database"
	"github.com/shivanshkc/integrator/internal/handler"
	httpserver "github.com/shivanshkc/integrator/internal/http"
	"github.com/shivanshkc/integrator/internal/middleware"
	"github.com/shivanshkc/integrator/internal/repository"
	"github.com/shivanshkc/integrator/internal/sink"
	memorystore "github.com/shivanshkc/integrator/internal/storage/memory"
	redisstore "github.com/shivanshkc/integrator/internal/storage/redis"
	"github.com/shivanshkc/integrator/internal/utils/httputils"
	"github.com/shivanshkc/integrator/pkg/flow"
	"github.com/shivanshkc/integrator/pkg/flowstate"
	"github.com/shivanshkc/integrator/pkg/logger"
	"github.com/shivanshkc/integrator/pkg/provider"
)

// janitorInterval is how often expired server-side flow states are removed.
const janitorInterval = time.Minute

func newServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the integration HTTP server",
		Long: `Loads the config file, connects the configured flow state backend and serves the
integration routes until SIGINT or SIGTERM is received.

The config path defaults to $` + config.EnvConfigPath + `, then to configs/configs.yaml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if configPath == "" {
				configPath = config.DefaultPath()
			}
			return runServe(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path of the YAML config file")
	return cmd
}

// runServe wires every dependency and blocks until the server stops.
func runServe(ctx context.Context, configPath string) error {
	// Initialize basic dependencies.
	conf, err := config.LoadFile(configPath)
	if err != nil {
		return fmt.Errorf("error in config.LoadFile call: %w", err)
	}
	logger.Init(os.Stdout, conf.Logger.Level, conf.Logger.Pretty)

	// Token exchanges and webhooks share one client.
	client := &http.Client{Timeout: conf.HTTPClient.Timeout}
	registry := provider.DefaultRegistry(provider.WithHTTPClient(client))

	authConfig, err := buildAuthConfig(conf, client)
	if err != nil {
		return err
	}

	orchestrator, err := flow.New(authConfig, registry)
	if err != nil {
		return fmt.Errorf("error in flow.New call: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	flowStates, closeFlowStates, err := buildFlowStates(ctx, conf)
	if err != nil {
		return err
	}
	defer closeFlowStates()

	// Initialize the HTTP server.
	server := &httpserver.Server{
		Config:     conf,
		Middleware: middleware.Middleware{AllowedOrigin: conf.CORS.AllowedOrigin},
		Handler:    handler.NewHandler(conf, orchestrator, flowStates),
	}

	// This is a blocking call.
	return server.Start()
}

// buildAuthConfig converts the provider section of the config, binding every integration to its callback.
func buildAuthConfig(conf config.Config, client *http.Client) (flow.AuthConfig, error) {
	authConfig := flow.AuthConfig{BaseURL: conf.Application.BaseURL}

	for _, p := range conf.Providers {
		providerConfig := flow.ProviderConfig{
			Provider:     provider.ID(p.Provider),
			ClientID:     p.ClientID,
			ClientSecret: p.ClientSecret,
		}

		for _, integration := range p.Integrations {
			callback, err := sink.FromConfig(integration.Callback, client)
			if err != nil {
				return flow.AuthConfig{}, fmt.Errorf("%s/%s: %w", p.Provider, integration.Name, err)
			}

			providerConfig.Integrations = append(providerConfig.Integrations, flow.IntegrationConfig{
				Name:     integration.Name,
				Options:  integration.Options,
				Callback: callback,
			})
		}

		authConfig.Providers = append(authConfig.Providers, providerConfig)
	}

	return authConfig, nil
}

// buildFlowStates connects the configured flow state backend.
// The returned func releases its connections. Background sweeps stop with the context.
func buildFlowStates(ctx context.Context, conf config.Config) (flowstate.Factory, func(), error) {
	// Cookies are always secure behind an https base URL.
	opts := flowstate.Options{
		TTL:    conf.FlowState.TTL,
		Secure: conf.FlowState.Secure || httputils.IsHTTPS(conf.Application.BaseURL),
	}
	noop := func() {}

	switch conf.FlowState.Driver {
	case config.DriverCookie:
		return flowstate.CookieFactory(opts), noop, nil

	case config.DriverSigned:
		factory, err := flowstate.SignedFactory([]byte(conf.FlowState.SigningKey), opts)
		if err != nil {
			return nil, nil, fmt.Errorf("error in flowstate.SignedFactory call: %w", err)
		}
		return factory, noop, nil

	case config.DriverMemory:
		kv := memorystore.NewKV()
		go kv.Run(ctx, memorystore.DefaultSweepInterval)
		return flowstate.KVFactory(kv, opts), noop, nil

	case config.DriverRedis:
		client, err := redisstore.Connect(ctx, conf.Redis.Addr, conf.Redis.Password, conf.Redis.DB)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if err := client.Close(); err != nil {
				slog.Error("error in redis Close call", "err", err)
			}
		}
		return flowstate.KVFactory(redisstore.NewKV(client), opts), closeFn, nil

	case config.DriverPostgres:
		db, err := database.Connect(ctx, conf.Database.URL)
		if err != nil {
			return nil, nil, err
		}
		if err := database.Migrate(db); err != nil {
			_ = db.Close()
			return nil, nil, err
		}

		repo := repository.NewRepository(db)
		go repository.RunJanitor(ctx, repo, janitorInterval)

		closeFn := func() {
			if err := db.Close(); err != nil {
				slog.Error("error in db.Close call", "err", err)
			}
		}
		return flowstate.KVFactory(repo, opts), closeFn, nil

	default:
		return nil, nil, fmt.Errorf("unknown flow state driver: %q", conf.FlowState.Driver)
	}
}
