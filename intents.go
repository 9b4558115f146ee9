package omniagentpay

import (
	"context"

	"github.com/omniagentpay/client-go/internal/api"
)

// CreatePaymentIntentParams are the parameters of CreatePaymentIntent.
type CreatePaymentIntentParams struct {
	WalletID       string `json:"wallet_id" validate:"required"`
	Recipient      string `json:"recipient" validate:"required"`
	Amount         Amount `json:"amount" validate:"required,amount"`
	Purpose        string `json:"purpose,omitempty"`
	IdempotencyKey string `json:"idempotency_key,omitempty"`
}

// CreatePaymentIntent stages a payment that must be confirmed with
// ConfirmPaymentIntent before it executes.
func (c *Client) CreatePaymentIntent(ctx context.Context, params CreatePaymentIntentParams) (*PaymentIntent, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	var intent PaymentIntent
	err := c.apiClient.CreateIntent(ctx, &api.CreateIntentRequest{
		WalletID:       params.WalletID,
		Recipient:      params.Recipient,
		Amount:         params.Amount.String(),
		Purpose:        params.Purpose,
		IdempotencyKey: params.IdempotencyKey,
	}, &intent)
	if err != nil {
		return nil, paymentError(err, params.WalletID, params.Recipient, params.Amount.String())
	}
	return &intent, nil
}

// ConfirmPaymentIntent confirms and executes a payment intent.
func (c *Client) ConfirmPaymentIntent(ctx context.Context, intentID string) (*PaymentResult, error) {
	if err := requireID("intent_id", intentID); err != nil {
		return nil, err
	}

	var result PaymentResult
	if err := c.apiClient.ConfirmIntent(ctx, intentID, &result); err != nil {
		return nil, paymentError(err, "", "", "")
	}
	return &result, nil
}

// GetPaymentIntent retrieves a payment intent. If the server has no such
// intent the error matches ErrIntentNotFound.
func (c *Client) GetPaymentIntent(ctx context.Context, intentID string) (*PaymentIntent, error) {
	if err := requireID("intent_id", intentID); err != nil {
		return nil, err
	}

	var intent *PaymentIntent
	if err := c.apiClient.GetIntent(ctx, intentID, &intent); err != nil {
		return nil, err
	}
	if intent == nil {
		return nil, NewPaymentError("payment intent not found", "", "", map[string]any{
			"intent_id": intentID,
		}).WithCause(ErrIntentNotFound)
	}
	return intent, nil
}

// CancelPaymentIntent cancels a payment intent that has not been confirmed.
func (c *Client) CancelPaymentIntent(ctx context.Context, intentID string) (*PaymentIntent, error) {
	if err := requireID("intent_id", intentID); err != nil {
		return nil, err
	}

	var intent PaymentIntent
	if err := c.apiClient.CancelIntent(ctx, intentID, &intent); err != nil {
		return nil, err
	}
	return &intent, nil
}
