// Package api provides HTTP client functionality for communicating with the
// OmniAgentPay API. It handles authentication, request/response serialization,
// the per-request timeout and the conversion of every failure into an
// *apierrors.Error.
//
// # Client Creation
//
// [New] takes the API key and functional options. The key is sent as a bearer
// token in the Authorization header of every request and cannot be overridden
// by caller-supplied headers.
//
// # Request Lifecycle
//
// Each call makes exactly one attempt. The request is bound to a context with
// the client timeout; the timer is released on every path and an expired
// request is abandoned by the transport. Outcomes:
//
//   - 2xx: the body is decoded (or returned raw by [Client.Execute]).
//   - non-2xx: a network error carrying the status, the URL and the parsed
//     error envelope; the envelope "message" becomes the error message.
//   - timeout: a network error "Request timeout after <ms>ms" with no status.
//   - anything else: a network error with the underlying message.
//
// There is no retry. Resilience policy belongs to the caller, who can inspect
// IsRateLimited and IsServerError on the returned error.
//
// # Observability
//
// Requests are logged through zap (no-op by default), traced with
// OpenTelemetry and, when [WithMetrics] is set, counted in Prometheus.
//
// # Thread Safety
//
// The [Client] type is immutable after construction and safe for concurrent
// use.
package api
