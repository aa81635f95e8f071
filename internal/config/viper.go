package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, for example INTEGRATOR_HTTP_SERVER_ADDR.
const EnvPrefix = "INTEGRATOR"

// EnvConfigPath names the environment variable holding the config file path.
const EnvConfigPath = EnvPrefix + "_CONFIG"

// defaultPath is used when neither a flag nor EnvConfigPath gives a path.
const defaultPath = "configs/configs.yaml"

// DefaultPath returns the config path from the environment, or the default one.
func DefaultPath() string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path
	}
	return defaultPath
}

// loadWithViper reads the YAML file, expands ${VAR} references, applies environment overrides and
// decodes everything into a Config.
func loadWithViper(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("error in os.ReadFile call: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigType("yaml")
	if err := v.ReadConfig(strings.NewReader(os.ExpandEnv(string(raw)))); err != nil {
		return Config{}, fmt.Errorf("error in viper.ReadConfig call: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	hooks := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))

	var cfg Config
	if err := v.Unmarshal(&cfg, hooks); err != nil {
		return Config{}, fmt.Errorf("error in viper.Unmarshal call: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// setDefaults registers every scalar key, which also makes it overridable through the environment.
func setDefaults(v *viper.Viper) {
	v.SetDefault("application.name", "integrator")
	v.SetDefault("application.base_url", "")
	v.SetDefault("application.pprof", false)
	v.SetDefault("http_server.addr", "localhost:8080")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.pretty", false)
	v.SetDefault("cors.allowed_origin", "*")
	v.SetDefault("allowed_redirect_urls", []string{})
	v.SetDefault("flow_state.driver", DriverCookie)
	v.SetDefault("flow_state.ttl", "10m")
	v.SetDefault("flow_state.secure", false)
	v.SetDefault("flow_state.signing_key", "")
	v.SetDefault("flow_state.clear_on_failure", true)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("database.url", "")
	v.SetDefault("http_client.timeout", "30s")
}

// Validate checks the settings that the config loader owns.
// Provider settings are validated when the orchestrator is built.
func (c Config) Validate() error {
	var errs []error

	if c.Application.BaseURL == "" {
		errs = append(errs, errors.New("application.base_url is required"))
	}

	drivers := []string{DriverCookie, DriverSigned, DriverMemory, DriverRedis, DriverPostgres}
	if !slices.Contains(drivers, c.FlowState.Driver) {
		errs = append(errs, fmt.Errorf("flow_state.driver must be one of %v, got %q", drivers, c.FlowState.Driver))
	}
	if c.FlowState.Driver == DriverSigned && c.FlowState.SigningKey == "" {
		errs = append(errs, errors.New("flow_state.signing_key is required by the signed driver"))
	}
	if c.FlowState.Driver == DriverRedis && c.Redis.Addr == "" {
		errs = append(errs, errors.New("redis.addr is required by the redis driver"))
	}
	if c.FlowState.Driver == DriverPostgres && c.Database.URL == "" {
		errs = append(errs, errors.New("database.url is required by the postgres driver"))
	}

	for i, p := range c.Providers {
		for j, integration := range p.Integrations {
			switch integration.Callback.Type {
			case "", "log":
			case "webhook":
				if integration.Callback.URL == "" {
					errs = append(errs, fmt.Errorf("providers[%d].integrations[%d].callback.url is required by the webhook callback", i, j))
				}
			default:
				errs = append(errs, fmt.Errorf("providers[%d].integrations[%d].callback.type %q is unknown", i, j, integration.Callback.Type))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
