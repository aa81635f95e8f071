package config

import (
	"time"
)

// Config represents the configs model.
type Config struct {
	// Application is the model of application configs.
	Application struct {
		// Name of the application.
		Name string `mapstructure:"name"`
		// BaseURL of the application. Every provider redirects back to it.
		// It can be http://localhost:8080 during development and https://domain.com in production.
		BaseURL string `mapstructure:"base_url"`
		// PProf enables the /debug/pprof routes.
		PProf bool `mapstructure:"pprof"`
	} `mapstructure:"application"`

	// HTTPServer is the model of the HTTP Server configs.
	HTTPServer struct {
		// Addr is the address of the HTTP server.
		Addr string `mapstructure:"addr"`
	} `mapstructure:"http_server"`

	// Logger is the model of the application logger configs.
	Logger struct {
		// Level of the logger.
		Level string `mapstructure:"level"`
		// Pretty is a flag that dictates whether the log output should be pretty (human-readable).
		Pretty bool `mapstructure:"pretty"`
	} `mapstructure:"logger"`

	CORS struct {
		// AllowedOrigin is sent as Access-Control-Allow-Origin. Empty means "*".
		AllowedOrigin string `mapstructure:"allowed_origin"`
	} `mapstructure:"cors"`

	// AllowedRedirectURLs lists the origins, optionally with a path, that a flow may redirect to once complete.
	// Relative paths are always allowed. An empty list allows everything.
	AllowedRedirectURLs []string `mapstructure:"allowed_redirect_urls"`

	// FlowState configures where pending flows are kept between the two phases.
	FlowState struct {
		// Driver is one of cookie, signed, memory, redis or postgres.
		Driver string `mapstructure:"driver"`
		// TTL is how long a pending flow survives.
		TTL time.Duration `mapstructure:"ttl"`
		// Secure marks the flow cookies as HTTPS-only.
		Secure bool `mapstructure:"secure"`
		// SigningKey is the HMAC key of the signed driver.
		SigningKey string `mapstructure:"signing_key"`
		// ClearOnFailure clears the pending flow when its callback phase fails.
		ClearOnFailure bool `mapstructure:"clear_on_failure"`
	} `mapstructure:"flow_state"`

	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	} `mapstructure:"redis"`

	Database struct {
		// URL is a postgres connection string.
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`

	HTTPClient struct {
		// Timeout bounds every token exchange call.
		Timeout time.Duration `mapstructure:"timeout"`
	} `mapstructure:"http_client"`

	// Providers holds the credentials and integrations of every enabled provider.
	Providers []Provider `mapstructure:"providers"`
}

// Provider is the config of one OAuth provider.
type Provider struct {
	Provider     string        `mapstructure:"provider"`
	ClientID     string        `mapstructure:"client_id"`
	ClientSecret string        `mapstructure:"client_secret"`
	Integrations []Integration `mapstructure:"integrations"`
}

// Integration is a named use of a provider.
type Integration struct {
	Name string `mapstructure:"name"`
	// Options are merged into the authorize URL. Keys are lower-cased by the loader.
	Options  map[string]string `mapstructure:"options"`
	Callback Callback          `mapstructure:"callback"`
}

// Callback selects what happens to the tokens of a completed flow.
type Callback struct {
	// Type is "log" or "webhook".
	Type string `mapstructure:"type"`
	// URL is the webhook target.
	URL string `mapstructure:"url"`
}

// Supported flow state drivers.
const (
	DriverCookie   = "cookie"
	DriverSigned   = "signed"
	DriverMemory   = "memory"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

// Load loads and returns the config value.
// It panics if the config cannot be loaded, as the application cannot run without it.
func Load() Config {
	cfg, err := LoadFile(DefaultPath())
	if err != nil {
		panic("error in config.LoadFile call: " + err.Error())
	}
	return cfg
}

// LoadFile loads the config from the given YAML file, with environment overrides.
func LoadFile(path string) (Config, error) {
	return loadWithViper(path)
}

// LoadMock provides a mock instance of the config for testing purposes.
func LoadMock() Config {
	cfg := Config{}

	cfg.Application.Name = "example-application"
	cfg.Application.BaseURL = "http://localhost:8080"
	cfg.HTTPServer.Addr = "localhost:8080"

	cfg.Logger.Level = "debug"
	cfg.Logger.Pretty = true

	cfg.CORS.AllowedOrigin = "*"
	cfg.AllowedRedirectURLs = []string{"http://localhost:3000"}

	cfg.FlowState.Driver = DriverCookie
	cfg.FlowState.TTL = 10 * time.Minute
	cfg.FlowState.ClearOnFailure = true

	cfg.HTTPClient.Timeout = 30 * time.Second

	cfg.Providers = []Provider{{
		Provider:     "google",
		ClientID:     "mock-client-id",
		ClientSecret: "mock-client-secret",
		Integrations: []Integration{{
			Name:     "user_info",
			Options:  map[string]string{"scope": "openid email profile"},
			Callback: Callback{Type: "log"},
		}},
	}}

	return cfg
}
