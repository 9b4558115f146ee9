package omniagentpay

import (
	"context"

	"github.com/omniagentpay/client-go/internal/api"
)

// SimulateParams are the parameters of Simulate.
type SimulateParams struct {
	WalletID    string `json:"wallet_id" validate:"required"`
	Recipient   string `json:"recipient" validate:"required"`
	Amount      Amount `json:"amount" validate:"required,amount"`
	WalletSetID string `json:"wallet_set_id,omitempty"`
}

// Simulate checks guards and routing for a payment and estimates its fee
// without executing it.
func (c *Client) Simulate(ctx context.Context, params SimulateParams) (*SimulationResult, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	var result SimulationResult
	err := c.apiClient.SimulatePayment(ctx, &api.SimulatePaymentRequest{
		WalletID:    params.WalletID,
		Recipient:   params.Recipient,
		Amount:      params.Amount.String(),
		WalletSetID: params.WalletSetID,
	}, &result)
	if err != nil {
		return nil, err
	}

	result.GuardsThatWouldPass = nonNil(result.GuardsThatWouldPass)
	result.GuardsThatWouldFail = nonNil(result.GuardsThatWouldFail)
	return &result, nil
}

// PayParams are the parameters of Pay.
type PayParams struct {
	WalletID  string `json:"wallet_id" validate:"required"`
	Recipient string `json:"recipient" validate:"required"`
	Amount    Amount `json:"amount" validate:"required,amount"`

	DestinationChain Network  `json:"destination_chain,omitempty"`
	WalletSetID      string   `json:"wallet_set_id,omitempty"`
	Purpose          string   `json:"purpose,omitempty"`
	IdempotencyKey   string   `json:"idempotency_key,omitempty"`
	FeeLevel         FeeLevel `json:"fee_level,omitempty" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
	SkipGuards       bool     `json:"skip_guards"`

	Metadata map[string]any `json:"metadata,omitempty"`

	// WaitForCompletion makes the server hold the response until the payment
	// settles or TimeoutSeconds elapses. The client timeout still applies.
	WaitForCompletion bool `json:"wait_for_completion"`
	TimeoutSeconds    int  `json:"timeout_seconds,omitempty" validate:"gte=0"`
}

// Pay executes a payment with automatic routing.
//
// A payment blocked by a guard fails with an error matching ErrGuard; one
// rejected for lack of funds matches ErrInsufficientBalance. Both also match
// ErrPayment.
func (c *Client) Pay(ctx context.Context, params PayParams) (*PaymentResult, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	var result PaymentResult
	err := c.apiClient.Pay(ctx, &api.PayRequest{
		WalletID:          params.WalletID,
		Recipient:         params.Recipient,
		Amount:            params.Amount.String(),
		DestinationChain:  string(params.DestinationChain),
		WalletSetID:       params.WalletSetID,
		Purpose:           params.Purpose,
		IdempotencyKey:    params.IdempotencyKey,
		FeeLevel:          string(params.FeeLevel),
		SkipGuards:        params.SkipGuards,
		Metadata:          params.Metadata,
		WaitForCompletion: params.WaitForCompletion,
		TimeoutSeconds:    params.TimeoutSeconds,
	}, &result)
	if err != nil {
		return nil, paymentError(err, params.WalletID, params.Recipient, params.Amount.String())
	}
	return &result, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
