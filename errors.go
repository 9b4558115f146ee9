package omniagentpay

import (
	"github.com/shopspring/decimal"

	"github.com/omniagentpay/client-go/internal/apierrors"
)

// Error is the single error type returned by the client. Kind discriminates
// the variant; the variant payload (Network, Wallet, Payment, Guard, Balance)
// is set according to Kind.
type Error = apierrors.Error

// Kind discriminates error variants.
type Kind = apierrors.Kind

// Error kinds.
const (
	KindConfiguration       = apierrors.KindConfiguration
	KindValidation          = apierrors.KindValidation
	KindNetwork             = apierrors.KindNetwork
	KindWallet              = apierrors.KindWallet
	KindPayment             = apierrors.KindPayment
	KindGuard               = apierrors.KindGuard
	KindInsufficientBalance = apierrors.KindInsufficientBalance
)

// Error payloads.
type (
	NetworkFailure = apierrors.NetworkFailure
	WalletFailure  = apierrors.WalletFailure
	PaymentFailure = apierrors.PaymentFailure
	GuardFailure   = apierrors.GuardFailure
	BalanceFailure = apierrors.BalanceFailure
)

// OmniAgentPayError is implemented by all SDK errors.
type OmniAgentPayError = apierrors.OmniAgentPayError

// Sentinel errors for errors.Is() checks
var (
	// ErrConfiguration matches configuration errors.
	ErrConfiguration = apierrors.ErrConfiguration

	// ErrValidation matches validation errors. They are returned before any request is sent.
	ErrValidation = apierrors.ErrValidation

	// ErrNetwork matches network errors, including HTTP status failures.
	ErrNetwork = apierrors.ErrNetwork

	// ErrWallet matches wallet errors.
	ErrWallet = apierrors.ErrWallet

	// ErrPayment matches payment errors, including guard and insufficient balance errors.
	ErrPayment = apierrors.ErrPayment

	// ErrGuard matches payments blocked by a guard.
	ErrGuard = apierrors.ErrGuard

	// ErrInsufficientBalance matches payments rejected for lack of funds.
	ErrInsufficientBalance = apierrors.ErrInsufficientBalance

	// ErrRateLimited matches network errors with status 429.
	ErrRateLimited = apierrors.ErrRateLimited

	// ErrServerError matches network errors with a 5xx status.
	ErrServerError = apierrors.ErrServerError

	// ErrTimeout matches requests abandoned because the client timeout fired.
	ErrTimeout = apierrors.ErrTimeout

	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = apierrors.ErrMissingAPIKey

	// ErrInvalidResponse matches successful responses whose body is empty or not JSON.
	ErrInvalidResponse = apierrors.ErrInvalidResponse

	// ErrIntentNotFound is returned when a payment intent lookup yields nothing.
	ErrIntentNotFound = apierrors.ErrIntentNotFound
)

// NewConfigurationError creates a configuration error.
func NewConfigurationError(message string, details map[string]any) *Error {
	return apierrors.NewConfigurationError(message, details)
}

// NewValidationError creates a validation error.
func NewValidationError(message string, details map[string]any) *Error {
	return apierrors.NewValidationError(message, details)
}

// NewNetworkError creates a network error. A statusCode of 0 means no response
// was received.
func NewNetworkError(message string, statusCode int, url string, details map[string]any) *Error {
	return apierrors.NewNetworkError(message, statusCode, url, details)
}

// NewWalletError creates a wallet error.
func NewWalletError(message, walletID string, details map[string]any) *Error {
	return apierrors.NewWalletError(message, walletID, details)
}

// NewPaymentError creates a payment error.
func NewPaymentError(message, recipient, amount string, details map[string]any) *Error {
	return apierrors.NewPaymentError(message, recipient, amount, details)
}

// NewGuardError creates an error for a payment blocked by a guard.
func NewGuardError(message, guardName, reason, recipient, amount string, details map[string]any) *Error {
	return apierrors.NewGuardError(message, guardName, reason, recipient, amount, details)
}

// NewInsufficientBalanceError creates an insufficient balance error. The
// shortfall is requiredAmount - currentBalance.
func NewInsufficientBalanceError(message, currentBalance, requiredAmount, walletID string, details map[string]any) *Error {
	return apierrors.NewInsufficientBalanceError(message, currentBalance, requiredAmount, walletID, details)
}

// AsError returns the outermost *Error in err's chain.
func AsError(err error) (*Error, bool) {
	return apierrors.AsError(err)
}

// KindOf returns the kind of the outermost *Error in err's chain, or "" if
// err is not an SDK error.
func KindOf(err error) Kind {
	return apierrors.KindOf(err)
}

func newMissingAPIKeyError() *Error {
	return NewConfigurationError(ErrMissingAPIKey.Error(), nil).WithCause(ErrMissingAPIKey)
}

const (
	defaultGuardMessage   = "Payment blocked by guard"
	defaultBalanceMessage = "Insufficient balance"
)

// paymentError reinterprets the failure of a payment call. An error envelope
// naming the guard that blocked the payment becomes a guard error; one that
// reports the current balance and the required amount becomes an insufficient
// balance error. The original network error remains the cause.
func paymentError(err error, walletID, recipient, amount string) error {
	netErr, ok := apierrors.AsNetworkError(err)
	if !ok || len(netErr.Details) == 0 {
		return err
	}
	details := netErr.Details
	message := envelopeString(details, "message")

	guardName := envelopeString(details, "guard_name", "guardName")
	reason := envelopeString(details, "reason")
	if guardName != "" && reason != "" {
		if message == "" {
			message = defaultGuardMessage
		}
		return NewGuardError(message, guardName, reason, recipient, amount, details).WithCause(err)
	}

	current := envelopeString(details, "current_balance", "currentBalance")
	required := envelopeString(details, "required_amount", "requiredAmount")
	if current != "" && required != "" {
		if message == "" {
			message = defaultBalanceMessage
		}
		e := NewInsufficientBalanceError(message, current, required, walletID, details)
		e.Payment.Recipient = recipient
		return e.WithCause(err)
	}

	return err
}

// envelopeString returns the first of keys present in the envelope as a string.
// JSON numbers are rendered in decimal notation.
func envelopeString(envelope map[string]any, keys ...string) string {
	for _, key := range keys {
		switch v := envelope[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return decimal.NewFromFloat(v).String()
		}
	}
	return ""
}
