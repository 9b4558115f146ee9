// Package apierrors provides the shared error taxonomy for the OmniAgentPay client.
//
// Every failure surfaced by the client is an *Error. The Kind field is the
// discriminant; kind-specific data lives in the optional payload structs so
// the error keeps its shape after a JSON round trip.
package apierrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Kind discriminates error variants.
type Kind string

const (
	KindConfiguration       Kind = "configuration"
	KindValidation          Kind = "validation"
	KindNetwork             Kind = "network"
	KindWallet              Kind = "wallet"
	KindPayment             Kind = "payment"
	KindGuard               Kind = "guard"
	KindInsufficientBalance Kind = "insufficient_balance"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrConfiguration matches every configuration error.
	ErrConfiguration = errors.New("configuration error")

	// ErrValidation matches every validation error.
	ErrValidation = errors.New("validation error")

	// ErrNetwork matches every network error.
	ErrNetwork = errors.New("network error")

	// ErrWallet matches every wallet error.
	ErrWallet = errors.New("wallet error")

	// ErrPayment matches payment errors, including guard and insufficient balance errors.
	ErrPayment = errors.New("payment error")

	// ErrGuard matches errors raised when a guard blocks a payment.
	ErrGuard = errors.New("payment blocked by guard")

	// ErrInsufficientBalance matches insufficient balance errors.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrRateLimited matches network errors with HTTP status 429.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrServerError matches network errors with an HTTP 5xx status.
	ErrServerError = errors.New("server error")

	// ErrTimeout is wrapped by network errors produced when the request timeout fires.
	ErrTimeout = errors.New("request timed out")

	// ErrMissingAPIKey is wrapped by the configuration error returned for an empty API key.
	ErrMissingAPIKey = errors.New("apiKey is required")

	// ErrInvalidResponse is wrapped by network errors for a successful status whose
	// body is empty or not JSON.
	ErrInvalidResponse = errors.New("invalid response body")

	// ErrIntentNotFound is wrapped by the payment error returned when the server
	// answers a payment intent lookup with null.
	ErrIntentNotFound = errors.New("payment intent not found")
)

// OmniAgentPayError is implemented by all SDK errors.
type OmniAgentPayError interface {
	error
	OmniAgentPayError() // marker method
}

// NetworkFailure is the payload of a network error.
type NetworkFailure struct {
	// StatusCode is the HTTP status, or 0 when no response was received.
	StatusCode int    `json:"statusCode,omitempty"`
	URL        string `json:"url,omitempty"`
	RequestID  string `json:"requestId,omitempty"`
}

// WalletFailure is the payload of a wallet error.
type WalletFailure struct {
	WalletID string `json:"walletId,omitempty"`
}

// PaymentFailure is the payload shared by payment, guard and insufficient balance errors.
type PaymentFailure struct {
	Recipient string `json:"recipient,omitempty"`
	Amount    string `json:"amount,omitempty"`
}

// GuardFailure is the payload of a guard error.
type GuardFailure struct {
	GuardName string `json:"guardName"`
	Reason    string `json:"reason"`
}

// BalanceFailure is the payload of an insufficient balance error.
type BalanceFailure struct {
	CurrentBalance string `json:"currentBalance"`
	RequiredAmount string `json:"requiredAmount"`
	// Shortfall is RequiredAmount - CurrentBalance. Empty if either side is not a decimal.
	Shortfall string `json:"shortfall,omitempty"`
}

// Error is the single error type returned by the SDK.
type Error struct {
	Kind    Kind           `json:"kind"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`

	Network *NetworkFailure `json:"network,omitempty"`
	Wallet  *WalletFailure  `json:"wallet,omitempty"`
	Payment *PaymentFailure `json:"payment,omitempty"`
	Guard   *GuardFailure   `json:"guard,omitempty"`
	Balance *BalanceFailure `json:"balance,omitempty"`

	// Err is the underlying cause, if any. It is not serialized.
	Err error `json:"-"`
}

func (e *Error) Error() string {
	switch {
	case e.Kind == KindGuard && e.Guard != nil:
		return fmt.Sprintf("[%s] %s", e.Guard.GuardName, e.Guard.Reason)
	case e.Kind == KindInsufficientBalance && e.Balance != nil:
		return fmt.Sprintf("%s | Balance: %s, Required: %s, Shortfall: %s",
			e.Message, e.Balance.CurrentBalance, e.Balance.RequiredAmount, e.Balance.Shortfall)
	case e.Message != "":
		return e.Message
	}
	return fmt.Sprintf("%s error", e.Kind)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// OmniAgentPayError implements the OmniAgentPayError interface.
func (e *Error) OmniAgentPayError() {}

// Is implements errors.Is for sentinel error matching.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrConfiguration:
		return e.Kind == KindConfiguration
	case ErrValidation:
		return e.Kind == KindValidation
	case ErrNetwork:
		return e.Kind == KindNetwork
	case ErrWallet:
		return e.Kind == KindWallet
	case ErrPayment:
		return e.Kind == KindPayment || e.Kind == KindGuard || e.Kind == KindInsufficientBalance
	case ErrGuard:
		return e.Kind == KindGuard
	case ErrInsufficientBalance:
		return e.Kind == KindInsufficientBalance
	case ErrRateLimited:
		return e.IsRateLimited()
	case ErrServerError:
		return e.IsServerError()
	}
	return false
}

// StatusCode returns the HTTP status of a network error, or 0 when absent.
func (e *Error) StatusCode() int {
	if e.Kind != KindNetwork || e.Network == nil {
		return 0
	}
	return e.Network.StatusCode
}

// IsRateLimited reports whether the server answered 429.
func (e *Error) IsRateLimited() bool {
	return e.StatusCode() == 429
}

// IsServerError reports whether the server answered with a 5xx status.
func (e *Error) IsServerError() bool {
	code := e.StatusCode()
	return code >= 500 && code < 600
}

// WithCause sets the underlying error and returns e.
func (e *Error) WithCause(err error) *Error {
	e.Err = err
	return e
}

// NewConfigurationError creates a configuration error.
func NewConfigurationError(message string, details map[string]any) *Error {
	return &Error{Kind: KindConfiguration, Message: message, Details: details}
}

// NewValidationError creates a validation error.
func NewValidationError(message string, details map[string]any) *Error {
	return &Error{Kind: KindValidation, Message: message, Details: details}
}

// NewNetworkError creates a network error. A statusCode of 0 means no response was received.
func NewNetworkError(message string, statusCode int, url string, details map[string]any) *Error {
	return &Error{
		Kind:    KindNetwork,
		Message: message,
		Details: details,
		Network: &NetworkFailure{StatusCode: statusCode, URL: url},
	}
}

// NewWalletError creates a wallet error.
func NewWalletError(message, walletID string, details map[string]any) *Error {
	return &Error{
		Kind:    KindWallet,
		Message: message,
		Details: details,
		Wallet:  &WalletFailure{WalletID: walletID},
	}
}

// NewPaymentError creates a payment error.
func NewPaymentError(message, recipient, amount string, details map[string]any) *Error {
	return &Error{
		Kind:    KindPayment,
		Message: message,
		Details: details,
		Payment: &PaymentFailure{Recipient: recipient, Amount: amount},
	}
}

// NewGuardError creates an error for a payment blocked by a guard.
func NewGuardError(message, guardName, reason, recipient, amount string, details map[string]any) *Error {
	return &Error{
		Kind:    KindGuard,
		Message: message,
		Details: details,
		Payment: &PaymentFailure{Recipient: recipient, Amount: amount},
		Guard:   &GuardFailure{GuardName: guardName, Reason: reason},
	}
}

// NewInsufficientBalanceError creates an insufficient balance error.
// The shortfall is computed with decimal arithmetic.
func NewInsufficientBalanceError(message, currentBalance, requiredAmount, walletID string, details map[string]any) *Error {
	e := &Error{
		Kind:    KindInsufficientBalance,
		Message: message,
		Details: details,
		Payment: &PaymentFailure{Amount: requiredAmount},
		Balance: &BalanceFailure{
			CurrentBalance: currentBalance,
			RequiredAmount: requiredAmount,
			Shortfall:      shortfall(currentBalance, requiredAmount),
		},
	}
	if walletID != "" {
		e.Wallet = &WalletFailure{WalletID: walletID}
	}
	return e
}

func shortfall(currentBalance, requiredAmount string) string {
	balance, err := decimal.NewFromString(currentBalance)
	if err != nil {
		return ""
	}
	required, err := decimal.NewFromString(requiredAmount)
	if err != nil {
		return ""
	}
	return required.Sub(balance).String()
}

// AsError returns the outermost *Error in err's chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf returns the kind of the outermost *Error in err's chain, or "" if there is none.
func KindOf(err error) Kind {
	if e, ok := AsError(err); ok {
		return e.Kind
	}
	return ""
}

// AsNetworkError returns the first network *Error in err's chain.
// Guard and insufficient balance errors interpreted from an HTTP failure keep
// the original network error as their cause.
func AsNetworkError(err error) (*Error, bool) {
	for err != nil {
		if e, ok := err.(*Error); ok && e.Kind == KindNetwork {
			return e, true
		}
		err = errors.Unwrap(err)
	}
	return nil, false
}
