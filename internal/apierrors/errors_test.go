package apierrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	sentinels := []error{
		ErrConfiguration, ErrValidation, ErrNetwork, ErrWallet, ErrPayment, ErrGuard,
		ErrInsufficientBalance, ErrRateLimited, ErrServerError, ErrTimeout,
		ErrMissingAPIKey, ErrInvalidResponse, ErrIntentNotFound,
	}
	for _, s := range sentinels {
		require.NotNil(t, s)
		assert.NotEmpty(t, s.Error())
	}
}

func TestError_Is(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		target   error
		expected bool
	}{
		{"configuration", NewConfigurationError("bad", nil), ErrConfiguration, true},
		{"validation", NewValidationError("bad", nil), ErrValidation, true},
		{"validation is not network", NewValidationError("bad", nil), ErrNetwork, false},
		{"network", NewNetworkError("boom", 500, "u", nil), ErrNetwork, true},
		{"wallet", NewWalletError("w", "w1", nil), ErrWallet, true},
		{"payment", NewPaymentError("p", "0xabc", "1", nil), ErrPayment, true},
		{"guard is payment", NewGuardError("g", "budget", "over", "", "", nil), ErrPayment, true},
		{"guard", NewGuardError("g", "budget", "over", "", "", nil), ErrGuard, true},
		{"payment is not guard", NewPaymentError("p", "", "", nil), ErrGuard, false},
		{"insufficient is payment", NewInsufficientBalanceError("i", "1", "2", "", nil), ErrPayment, true},
		{"insufficient", NewInsufficientBalanceError("i", "1", "2", "", nil), ErrInsufficientBalance, true},
		{"429 rate limited", NewNetworkError("slow down", 429, "u", nil), ErrRateLimited, true},
		{"503 server error", NewNetworkError("down", 503, "u", nil), ErrServerError, true},
		{"404 not server error", NewNetworkError("missing", 404, "u", nil), ErrServerError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errors.Is(tt.err, tt.target))
		})
	}
}

func TestError_Predicates(t *testing.T) {
	tests := []struct {
		status      int
		rateLimited bool
		serverError bool
	}{
		{0, false, false},
		{400, false, false},
		{429, true, false},
		{499, false, false},
		{500, false, true},
		{599, false, true},
		{600, false, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("status %d", tt.status), func(t *testing.T) {
			err := NewNetworkError("x", tt.status, "https://api.example.com/x", nil)
			assert.Equal(t, tt.rateLimited, err.IsRateLimited())
			assert.Equal(t, tt.serverError, err.IsServerError())
		})
	}

	t.Run("non network kinds", func(t *testing.T) {
		err := NewValidationError("x", nil)
		assert.False(t, err.IsRateLimited())
		assert.False(t, err.IsServerError())
		assert.Zero(t, err.StatusCode())
	})
}

func TestGuardError_String(t *testing.T) {
	err := NewGuardError("blocked", "budget", "daily limit exceeded", "0xabc", "50", nil)
	assert.Equal(t, "[budget] daily limit exceeded", err.Error())
	assert.Equal(t, "0xabc", err.Payment.Recipient)
	assert.Equal(t, "50", err.Payment.Amount)
}

func TestInsufficientBalanceError(t *testing.T) {
	t.Run("decimal shortfall", func(t *testing.T) {
		err := NewInsufficientBalanceError("not enough funds", "10.10", "25.30", "w1", nil)
		assert.Equal(t, "15.2", err.Balance.Shortfall)
		assert.Equal(t, "not enough funds | Balance: 10.10, Required: 25.30, Shortfall: 15.2", err.Error())
		assert.Equal(t, "25.30", err.Payment.Amount)
		require.NotNil(t, err.Wallet)
		assert.Equal(t, "w1", err.Wallet.WalletID)
	})

	t.Run("no float rounding", func(t *testing.T) {
		err := NewInsufficientBalanceError("x", "0.1", "0.3", "", nil)
		assert.Equal(t, "0.2", err.Balance.Shortfall)
		assert.Nil(t, err.Wallet)
	})

	t.Run("unparseable amounts", func(t *testing.T) {
		err := NewInsufficientBalanceError("x", "abc", "1", "", nil)
		assert.Empty(t, err.Balance.Shortfall)
	})
}

func TestError_JSONKeepsKind(t *testing.T) {
	original := NewGuardError("blocked", "rate_limit", "too many payments", "0xabc", "5", map[string]any{"window": "1m"})

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Error
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, KindGuard, decoded.Kind)
	assert.True(t, errors.Is(&decoded, ErrGuard))
	assert.Equal(t, original.Error(), decoded.Error())
	assert.Equal(t, "1m", decoded.Details["window"])
}

func TestError_Unwrap(t *testing.T) {
	root := errors.New("connection refused")
	err := NewNetworkError("connection refused", 0, "https://api.example.com", nil).WithCause(fmt.Errorf("dial: %w", root))

	assert.True(t, errors.Is(err, root))
	assert.True(t, errors.Is(err, ErrNetwork))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(fmt.Errorf("wrapped: %w", NewValidationError("x", nil))))
	assert.Equal(t, Kind(""), KindOf(errors.New("plain")))
	assert.Equal(t, Kind(""), KindOf(nil))
}

func TestAsNetworkError(t *testing.T) {
	netErr := NewNetworkError("payment declined", 402, "https://api.example.com/payments/pay", nil)
	guardErr := NewGuardError("blocked", "budget", "limit", "", "", nil).WithCause(netErr)

	found, ok := AsNetworkError(guardErr)
	require.True(t, ok)
	assert.Same(t, netErr, found)
	assert.Equal(t, 402, found.StatusCode())

	_, ok = AsNetworkError(NewValidationError("x", nil))
	assert.False(t, ok)
}

func TestError_ImplementsMarker(t *testing.T) {
	var err error = NewWalletError("frozen", "w1", nil)
	_, ok := err.(OmniAgentPayError)
	assert.True(t, ok)
	assert.Equal(t, "frozen", err.Error())

	empty := &Error{Kind: KindWallet}
	assert.Equal(t, "wallet error", empty.Error())
}
