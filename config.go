package omniagentpay

import (
	"strconv"
	"time"

	"github.com/spf13/viper"
)

// Environment variables read by LoadConfig.
const (
	EnvAPIKey    = "OMNIAGENTPAY_API_KEY"
	EnvBaseURL   = "OMNIAGENTPAY_BASE_URL"
	EnvTimeoutMS = "OMNIAGENTPAY_TIMEOUT_MS"
)

// Config is client configuration loaded from the environment.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// LoadConfig reads client configuration from the environment. Unset variables
// take the client defaults. A timeout that is not an integer number of
// milliseconds is a configuration error.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("OMNIAGENTPAY")
	v.AutomaticEnv()

	v.SetDefault("base_url", defaultBaseURL)
	v.SetDefault("timeout_ms", strconv.FormatInt(defaultTimeout.Milliseconds(), 10))

	cfg := &Config{
		APIKey:  v.GetString("api_key"),
		BaseURL: v.GetString("base_url"),
		Timeout: defaultTimeout,
	}

	raw := v.GetString("timeout_ms")
	ms, err := strconv.Atoi(raw)
	if err != nil {
		return nil, NewConfigurationError(EnvTimeoutMS+" must be an integer number of milliseconds", map[string]any{
			"value": raw,
		}).WithCause(err)
	}
	if ms > 0 {
		cfg.Timeout = time.Duration(ms) * time.Millisecond
	}

	return cfg, nil
}

// Options returns the client options equivalent to cfg.
func (c *Config) Options() []Option {
	return []Option{
		WithBaseURL(c.BaseURL),
		WithTimeout(c.Timeout),
	}
}

// NewFromEnv creates a client from LoadConfig. opts are applied after the
// environment, so they take precedence.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return New(cfg.APIKey, append(cfg.Options(), opts...)...)
}
