package omniagentpay

import (
	"context"
	"encoding/json"
	"time"

	"github.com/omniagentpay/client-go/internal/api"
)

// Client is the OmniAgentPay API client.
//
// A Client is immutable after New and safe for concurrent use. Every method
// issues at most one HTTP request and never retries.
type Client struct {
	apiClient *api.Client
}

// New creates a client authenticated with apiKey.
// An empty apiKey fails with a configuration error matching ErrMissingAPIKey
// before any I/O.
func New(apiKey string, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		baseURL: defaultBaseURL,
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := buildAPIClient(apiKey, cfg)
	if err != nil {
		return nil, err
	}

	return &Client{apiClient: apiClient}, nil
}

// buildAPIClient creates and configures an API client from the given config.
func buildAPIClient(apiKey string, cfg *clientConfig) (*api.Client, error) {
	if apiKey == "" {
		return nil, newMissingAPIKeyError()
	}

	apiOpts := []api.Option{
		api.WithBaseURL(cfg.baseURL),
		api.WithTimeout(cfg.timeout),
	}
	if cfg.httpClient != nil {
		apiOpts = append(apiOpts, api.WithHTTPClient(cfg.httpClient))
	}
	if len(cfg.headers) > 0 {
		apiOpts = append(apiOpts, api.WithHeaders(cfg.headers))
	}
	if cfg.logger != nil {
		apiOpts = append(apiOpts, api.WithLogger(cfg.logger))
	}
	if cfg.tracerProvider != nil {
		apiOpts = append(apiOpts, api.WithTracerProvider(cfg.tracerProvider))
	}
	if cfg.metricsRegisterer != nil {
		metrics, err := api.NewMetrics(cfg.metricsRegisterer)
		if err != nil {
			return nil, NewConfigurationError("failed to register metrics: "+err.Error(), nil).WithCause(err)
		}
		apiOpts = append(apiOpts, api.WithMetrics(metrics))
	}

	return api.New(apiKey, apiOpts...)
}

// BaseURL returns the API base URL.
func (c *Client) BaseURL() string {
	return c.apiClient.BaseURL()
}

// Timeout returns the per-request timeout.
func (c *Client) Timeout() time.Duration {
	return c.apiClient.Timeout()
}

// Execute sends a raw request to path (relative to the base URL) and returns the
// JSON body. body, if non-nil, is encoded as JSON. headers are merged over the
// defaults, except Authorization which is always the client's bearer token.
//
// A successful response with an empty body returns nil. Failures are network
// errors; see Error.
func (c *Client) Execute(ctx context.Context, method, path string, body any, headers map[string]string) (json.RawMessage, error) {
	return c.apiClient.Execute(ctx, method, path, body, headers)
}
