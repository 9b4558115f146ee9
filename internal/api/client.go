package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/omniagentpay/client-go/internal/apierrors"
)

const (
	// DefaultBaseURL is the production API endpoint.
	DefaultBaseURL = "https://api.omniagentpay.xyz"
	// DefaultTimeout bounds a single request/response cycle.
	DefaultTimeout = 30 * time.Second

	// HeaderRequestID carries the per-request correlation id.
	HeaderRequestID = "X-Request-Id"

	tracerName = "github.com/omniagentpay/client-go"
)

// Client is the HTTP API client.
type Client struct {
	baseURL      string
	apiKey       string
	timeout      time.Duration
	httpClient   *http.Client
	headers      map[string]string
	logger       *zap.Logger
	tracer       trace.Tracer
	propagator   propagation.TextMapPropagator
	metrics      *Metrics
	newRequestID func() string
}

// Option configures the API client.
type Option func(*Client)

// WithBaseURL sets the base URL.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithHeaders adds headers sent on every request.
func WithHeaders(headers map[string]string) Option {
	return func(c *Client) {
		for k, v := range headers {
			c.headers[k] = v
		}
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithTracerProvider sets the OpenTelemetry tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Client) {
		c.tracer = tp.Tracer(tracerName)
	}
}

// WithPropagator sets the propagator used to inject trace context into requests.
func WithPropagator(p propagation.TextMapPropagator) Option {
	return func(c *Client) {
		c.propagator = p
	}
}

// WithMetrics enables request metrics.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// New creates a new API client.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, apierrors.NewConfigurationError(apierrors.ErrMissingAPIKey.Error(), nil).
			WithCause(apierrors.ErrMissingAPIKey)
	}

	c := &Client{
		baseURL:      DefaultBaseURL,
		apiKey:       apiKey,
		timeout:      DefaultTimeout,
		httpClient:   &http.Client{},
		headers:      make(map[string]string),
		logger:       zap.NewNop(),
		tracer:       otel.GetTracerProvider().Tracer(tracerName),
		propagator:   propagation.TraceContext{},
		newRequestID: uuid.NewString,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{}
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}

	return c, nil
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Timeout returns the configured per-request timeout.
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// Execute performs one request and returns the raw JSON body.
//
// A nil RawMessage with a nil error means the server answered 2xx with an
// empty body. A non-empty body that is not JSON yields a network error
// matching apierrors.ErrInvalidResponse.
func (c *Client) Execute(ctx context.Context, method, path string, body any, headers map[string]string) (json.RawMessage, error) {
	resp, err := c.roundTrip(ctx, method, path, body, headers)
	if err != nil {
		return nil, err
	}
	if resp.empty() {
		return nil, nil
	}
	if !json.Valid(resp.body) {
		return nil, resp.invalid(fmt.Sprintf("invalid JSON response: HTTP %d", resp.status), nil)
	}
	return json.RawMessage(resp.body), nil
}

// Do performs one request and decodes the JSON body into result.
// With a nil result the body is ignored, so empty responses are accepted.
func (c *Client) Do(ctx context.Context, method, path string, body, result any) error {
	resp, err := c.roundTrip(ctx, method, path, body, nil)
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}
	if resp.empty() {
		return resp.invalid("empty response body", nil)
	}
	if err := json.Unmarshal(resp.body, result); err != nil {
		return resp.invalid(fmt.Sprintf("invalid JSON response: %v", err), err)
	}
	return nil
}

// response is a fully read successful response.
type response struct {
	status    int
	url       string
	requestID string
	body      []byte
}

func (r *response) empty() bool {
	return len(bytes.TrimSpace(r.body)) == 0
}

func (r *response) invalid(message string, cause error) error {
	e := apierrors.NewNetworkError(message, r.status, r.url, map[string]any{"body": truncate(string(r.body), maxDetailBody)})
	e.Network.RequestID = r.requestID
	if cause != nil {
		return e.WithCause(fmt.Errorf("%w: %w", apierrors.ErrInvalidResponse, cause))
	}
	return e.WithCause(apierrors.ErrInvalidResponse)
}

// roundTrip sends one request bounded by the client timeout and reads the full
// body before the timer is released. Every failure is a network *apierrors.Error.
func (c *Client) roundTrip(parent context.Context, method, path string, body any, headers map[string]string) (resp *response, err error) {
	url := c.baseURL + path
	header := c.buildHeaders(headers)
	requestID := header.Get(HeaderRequestID)

	ctx, cancel := context.WithTimeout(parent, c.timeout)
	defer cancel()

	ctx, span := c.tracer.Start(ctx, "omniagentpay "+method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.full", url),
			attribute.String("omniagentpay.request_id", requestID),
		),
	)

	status := 0
	start := time.Now()
	defer func() {
		c.finish(span, method, url, requestID, status, time.Since(start), err)
	}()

	var bodyReader io.Reader
	if body != nil {
		data, marshalErr := json.Marshal(body)
		if marshalErr != nil {
			return nil, c.transportError(parent, ctx, url, requestID,
				fmt.Errorf("failed to marshal request body: %w", marshalErr))
		}
		bodyReader = bytes.NewReader(data)
	}

	req, reqErr := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if reqErr != nil {
		return nil, c.transportError(parent, ctx, url, requestID, reqErr)
	}
	req.Header = header
	c.propagator.Inject(ctx, propagation.HeaderCarrier(req.Header))

	httpResp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return nil, c.transportError(parent, ctx, url, requestID, doErr)
	}
	defer httpResp.Body.Close()

	data, readErr := io.ReadAll(httpResp.Body)
	if readErr != nil {
		return nil, c.transportError(parent, ctx, url, requestID, readErr)
	}
	// Recorded only once the body is in; a body cut short is a transport failure.
	status = httpResp.StatusCode

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return nil, httpError(httpResp, data, url, requestID)
	}

	return &response{
		status:    httpResp.StatusCode,
		url:       url,
		requestID: requestID,
		body:      data,
	}, nil
}

// buildHeaders merges default, client-wide and per-call headers in that order.
// Authorization is applied last so it is always the configured bearer token.
func (c *Client) buildHeaders(headers map[string]string) http.Header {
	h := make(http.Header)
	h.Set("Content-Type", "application/json")
	h.Set("Accept", "application/json")
	h.Set(HeaderRequestID, c.newRequestID())
	for k, v := range c.headers {
		h.Set(k, v)
	}
	for k, v := range headers {
		h.Set(k, v)
	}
	h.Set("Authorization", "Bearer "+c.apiKey)
	return h
}

// transportError classifies a failure that produced no HTTP status.
// Only the client's own timer yields the timeout message; a caller cancellation
// is reported with the underlying context error.
func (c *Client) transportError(parent, ctx context.Context, url, requestID string, err error) error {
	var e *apierrors.Error
	switch {
	case parent.Err() == nil && errors.Is(ctx.Err(), context.DeadlineExceeded):
		e = apierrors.NewNetworkError(
			fmt.Sprintf("Request timeout after %dms", c.timeout.Milliseconds()), 0, url, nil,
		).WithCause(fmt.Errorf("%w: %w", apierrors.ErrTimeout, context.DeadlineExceeded))
	default:
		message := err.Error()
		if message == "" {
			message = "Unknown network error"
		}
		e = apierrors.NewNetworkError(message, 0, url, nil).WithCause(err)
	}
	e.Network.RequestID = requestID
	return e
}

func (c *Client) finish(span trace.Span, method, url, requestID string, status int, elapsed time.Duration, err error) {
	defer span.End()

	if status != 0 {
		span.SetAttributes(attribute.Int("http.response.status_code", status))
	}
	c.metrics.observe(method, outcome(status, err), elapsed)

	fields := []zap.Field{
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", status),
		zap.Duration("duration", elapsed),
		zap.String("request_id", requestID),
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logger.Warn("omniagentpay request failed", append(fields, zap.Error(err))...)
		return
	}
	span.SetStatus(codes.Ok, "")
	c.logger.Debug("omniagentpay request", fields...)
}

const maxDetailBody = 512

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
