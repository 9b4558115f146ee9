package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/omniagentpay/client-go/internal/apierrors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New("test-key", append([]Option{WithBaseURL(server.URL)}, opts...)...)
	require.NoError(t, err)
	return client
}

func TestNew_MissingAPIKey(t *testing.T) {
	t.Parallel()

	client, err := New("")
	require.Error(t, err)
	assert.Nil(t, client)
	assert.Equal(t, "apiKey is required", err.Error())
	assert.ErrorIs(t, err, apierrors.ErrConfiguration)
	assert.ErrorIs(t, err, apierrors.ErrMissingAPIKey)
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	client, err := New("k")
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, client.BaseURL())
	assert.Equal(t, DefaultTimeout, client.Timeout())
}

func TestNew_ZeroValuesFallBackToDefaults(t *testing.T) {
	t.Parallel()

	client, err := New("k", WithBaseURL(""), WithTimeout(0), WithHTTPClient(nil), WithLogger(nil))
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, client.BaseURL())
	assert.Equal(t, DefaultTimeout, client.Timeout())
	assert.NotNil(t, client.httpClient)
	assert.NotNil(t, client.logger)
}

func TestDo_Headers(t *testing.T) {
	t.Parallel()

	var got http.Header
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`{}`))
	}, WithHeaders(map[string]string{
		"X-Custom":      "yes",
		"Authorization": "Bearer spoofed",
	}))

	var out map[string]any
	require.NoError(t, client.Do(context.Background(), http.MethodGet, "/networks", nil, &out))

	assert.Equal(t, "Bearer test-key", got.Get("Authorization"))
	assert.Equal(t, "application/json", got.Get("Content-Type"))
	assert.Equal(t, "application/json", got.Get("Accept"))
	assert.Equal(t, "yes", got.Get("X-Custom"))
	assert.NotEmpty(t, got.Get(HeaderRequestID))
}

func TestExecute_CallHeadersCannotOverrideAuthorization(t *testing.T) {
	t.Parallel()

	var auth, extra string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		extra = r.Header.Get("X-Extra")
		w.Write([]byte(`{"ok":true}`))
	})

	raw, err := client.Execute(context.Background(), http.MethodGet, "/x", nil, map[string]string{
		"Authorization": "Bearer other",
		"X-Extra":       "1",
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(raw))
	assert.Equal(t, "Bearer test-key", auth)
	assert.Equal(t, "1", extra)
}

func TestDo_RequestIDIsUniquePerRequest(t *testing.T) {
	t.Parallel()

	ids := make(chan string, 2)
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		ids <- r.Header.Get(HeaderRequestID)
		w.Write([]byte(`{}`))
	})

	for i := 0; i < 2; i++ {
		require.NoError(t, client.Do(context.Background(), http.MethodGet, "/networks", nil, nil))
	}
	first, second := <-ids, <-ids
	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}

func TestDo_BodyPassthrough(t *testing.T) {
	t.Parallel()

	var method, path string
	var body map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Write([]byte(`{"success":true,"status":"completed","amount":"10.5"}`))
	})

	var out struct {
		Success bool   `json:"success"`
		Status  string `json:"status"`
		Amount  string `json:"amount"`
	}
	err := client.Do(context.Background(), http.MethodPost, "/payments/pay",
		map[string]string{"wallet_id": "w1", "amount": "10.5"}, &out)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "/payments/pay", path)
	assert.Equal(t, map[string]any{"wallet_id": "w1", "amount": "10.5"}, body)
	assert.True(t, out.Success)
	assert.Equal(t, "completed", out.Status)
	assert.Equal(t, "10.5", out.Amount)
}

func TestDo_GetSendsNoBody(t *testing.T) {
	t.Parallel()

	var length int
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		length = len(data)
		w.Write([]byte(`[]`))
	})

	var out []any
	require.NoError(t, client.Do(context.Background(), http.MethodGet, "/wallets", nil, &out))
	assert.Zero(t, length)
	assert.Empty(t, out)
}

func TestDo_HTTPErrorWithEnvelope(t *testing.T) {
	t.Parallel()

	var url string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"wallet not found","code":"not_found"}`))
	})
	url = client.BaseURL() + "/wallets/w1"

	err := client.Do(context.Background(), http.MethodGet, "/wallets/w1", nil, &map[string]any{})
	require.Error(t, err)

	e, ok := apierrors.AsError(err)
	require.True(t, ok)
	assert.Equal(t, apierrors.KindNetwork, e.Kind)
	assert.Equal(t, "wallet not found", e.Message)
	assert.Equal(t, 404, e.StatusCode())
	assert.Equal(t, url, e.Network.URL)
	assert.NotEmpty(t, e.Network.RequestID)
	assert.Equal(t, map[string]any{"message": "wallet not found", "code": "not_found"}, e.Details)
	assert.False(t, e.IsRateLimited())
	assert.False(t, e.IsServerError())
}

func TestDo_HTTPErrorWithoutEnvelope(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`<html>oops</html>`))
	})

	err := client.Do(context.Background(), http.MethodGet, "/networks", nil, nil)
	require.Error(t, err)

	e, ok := apierrors.AsError(err)
	require.True(t, ok)
	assert.Equal(t, "HTTP 500: Internal Server Error", e.Message)
	assert.Equal(t, 500, e.StatusCode())
	assert.Empty(t, e.Details)
	assert.True(t, e.IsServerError())
	assert.ErrorIs(t, err, apierrors.ErrServerError)
}

func TestDo_HTTPErrorNonStringMessage(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"message":42}`))
	})

	err := client.Do(context.Background(), http.MethodGet, "/networks", nil, nil)
	require.Error(t, err)
	assert.Equal(t, "HTTP 429: Too Many Requests", err.Error())
	assert.ErrorIs(t, err, apierrors.ErrRateLimited)
}

func TestDo_Timeout(t *testing.T) {
	t.Parallel()

	serverCancelled := make(chan struct{})
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
			close(serverCancelled)
		case <-time.After(5 * time.Second):
		}
	}, WithTimeout(50*time.Millisecond))

	start := time.Now()
	err := client.Do(context.Background(), http.MethodGet, "/networks", nil, nil)
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.Less(t, elapsed, 2*time.Second)

	e, ok := apierrors.AsError(err)
	require.True(t, ok)
	assert.Equal(t, "Request timeout after 50ms", e.Message)
	assert.Equal(t, 0, e.StatusCode())
	assert.ErrorIs(t, err, apierrors.ErrNetwork)
	assert.ErrorIs(t, err, apierrors.ErrTimeout)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	select {
	case <-serverCancelled:
	case <-time.After(2 * time.Second):
		t.Fatal("server did not observe the abandoned request")
	}
}

func TestDo_CallerCancellation(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	err := client.Do(ctx, http.MethodGet, "/networks", nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, apierrors.ErrNetwork)
	assert.NotErrorIs(t, err, apierrors.ErrTimeout)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotContains(t, err.Error(), "Request timeout")
}

func TestDo_ConnectionFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	client, err := New("k", WithBaseURL(url))
	require.NoError(t, err)

	err = client.Do(context.Background(), http.MethodGet, "/networks", nil, nil)
	require.Error(t, err)

	e, ok := apierrors.AsError(err)
	require.True(t, ok)
	assert.Equal(t, apierrors.KindNetwork, e.Kind)
	assert.Equal(t, 0, e.StatusCode())
	assert.NotEmpty(t, e.Message)
	assert.Equal(t, url+"/networks", e.Network.URL)
}

func TestDo_MarshalFailure(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	})

	err := client.Do(context.Background(), http.MethodPost, "/x", map[string]any{"ch": make(chan int)}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, apierrors.ErrNetwork)
	assert.Contains(t, err.Error(), "failed to marshal request body")
	assert.Zero(t, calls.Load())
}

func TestDo_EmptyBody(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, client.Do(context.Background(), http.MethodPost, "/guards/budget", nil, nil))

	var out map[string]any
	err := client.Do(context.Background(), http.MethodGet, "/networks", nil, &out)
	require.Error(t, err)
	assert.Equal(t, "empty response body", err.Error())
	assert.ErrorIs(t, err, apierrors.ErrInvalidResponse)
	e, ok := apierrors.AsError(err)
	require.True(t, ok)
	assert.Equal(t, 200, e.StatusCode())
	assert.Equal(t, "", e.Details["body"])

	raw, err := client.Execute(context.Background(), http.MethodGet, "/networks", nil, nil)
	require.NoError(t, err)
	assert.Nil(t, raw, "empty body is a nil RawMessage")
}

func TestDo_InvalidJSON(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})

	var out map[string]any
	err := client.Do(context.Background(), http.MethodGet, "/networks", nil, &out)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "invalid JSON response: "))
	assert.ErrorIs(t, err, apierrors.ErrInvalidResponse)

	e, _ := apierrors.AsError(err)
	assert.Equal(t, "not json", e.Details["body"])

	_, err = client.Execute(context.Background(), http.MethodGet, "/networks", nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, apierrors.ErrInvalidResponse)
}

func TestDo_LogsFailures(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.DebugLevel)
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/fail" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Write([]byte(`{}`))
	}, WithLogger(zap.New(core)))

	require.NoError(t, client.Do(context.Background(), http.MethodGet, "/ok", nil, nil))
	require.Error(t, client.Do(context.Background(), http.MethodGet, "/fail", nil, nil))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "omniagentpay request", entries[0].Message)
	assert.Equal(t, "omniagentpay request failed", entries[1].Message)

	fields := entries[1].ContextMap()
	assert.Equal(t, int64(400), fields["status"])
	assert.Equal(t, "GET", fields["method"])
	for _, e := range entries {
		for _, f := range e.Context {
			assert.NotContains(t, f.String, "test-key")
		}
	}
}

func TestTransportError_UnknownMessage(t *testing.T) {
	t.Parallel()

	client, err := New("k")
	require.NoError(t, err)

	err = client.transportError(context.Background(), context.Background(), "u", "rid", errors.New(""))
	assert.Equal(t, "Unknown network error", err.Error())
}
