package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/omniagentpay/client-go/internal/apierrors"
)

// httpError converts a non-2xx response into a network error.
func httpError(resp *http.Response, body []byte, url, requestID string) error {
	envelope := parseEnvelope(body)

	message, _ := envelope["message"].(string)
	if message == "" {
		message = fmt.Sprintf("HTTP %d: %s", resp.StatusCode, statusText(resp))
	}

	e := apierrors.NewNetworkError(message, resp.StatusCode, url, envelope)
	e.Network.RequestID = requestID
	return e
}

// parseEnvelope decodes an error body. Anything that is not a JSON object
// degrades to an empty map.
func parseEnvelope(body []byte) map[string]any {
	var envelope map[string]any
	if err := json.Unmarshal(body, &envelope); err != nil || envelope == nil {
		return map[string]any{}
	}
	return envelope
}

// statusText returns the reason phrase sent by the server, falling back to
// the standard text for the code.
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}

// outcome labels a finished request for metrics.
func outcome(status int, err error) string {
	switch {
	case errors.Is(err, apierrors.ErrTimeout):
		return "timeout"
	case status == 0 && err != nil:
		return "error"
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
