package omniagentpay

import (
	"context"

	"github.com/omniagentpay/client-go/internal/api"
)

// Default guard names.
const (
	DefaultBudgetGuardName    = "budget"
	DefaultSingleTxGuardName  = "single_tx"
	DefaultRecipientGuardName = "recipient"
	DefaultRateLimitGuardName = "rate_limit"
	DefaultConfirmGuardName   = "confirm"

	// DefaultGuardToken is the token checked by CheckGuard when none is given.
	DefaultGuardToken = "USDC"
)

// ListGuards lists the names of the guards registered for a wallet.
func (c *Client) ListGuards(ctx context.Context, walletID string) ([]string, error) {
	if err := requireID("wallet_id", walletID); err != nil {
		return nil, err
	}
	return c.listGuards(ctx, api.WalletTarget(walletID))
}

// ListGuardsForSet lists the names of the guards registered for a wallet set.
func (c *Client) ListGuardsForSet(ctx context.Context, walletSetID string) ([]string, error) {
	if err := requireID("wallet_set_id", walletSetID); err != nil {
		return nil, err
	}
	return c.listGuards(ctx, api.WalletSetTarget(walletSetID))
}

func (c *Client) listGuards(ctx context.Context, target api.GuardTarget) ([]string, error) {
	var names []string
	if err := c.apiClient.ListGuards(ctx, target, &names); err != nil {
		return nil, err
	}
	return nonNil(names), nil
}

// BudgetGuardParams configure a budget guard. Unset limits are not enforced.
type BudgetGuardParams struct {
	DailyLimit  Amount `json:"daily_limit,omitempty" validate:"omitempty,amount"`
	HourlyLimit Amount `json:"hourly_limit,omitempty" validate:"omitempty,amount"`
	TotalLimit  Amount `json:"total_limit,omitempty" validate:"omitempty,amount"`
	Name        string `json:"name,omitempty"`
}

// AddBudgetGuard caps the amount a wallet can spend per hour, per day and in
// total.
func (c *Client) AddBudgetGuard(ctx context.Context, walletID string, params BudgetGuardParams) error {
	if err := requireID("wallet_id", walletID); err != nil {
		return err
	}
	return c.addBudgetGuard(ctx, api.WalletTarget(walletID), params)
}

// AddBudgetGuardForSet adds a budget guard to every wallet in a set.
func (c *Client) AddBudgetGuardForSet(ctx context.Context, walletSetID string, params BudgetGuardParams) error {
	if err := requireID("wallet_set_id", walletSetID); err != nil {
		return err
	}
	return c.addBudgetGuard(ctx, api.WalletSetTarget(walletSetID), params)
}

func (c *Client) addBudgetGuard(ctx context.Context, target api.GuardTarget, params BudgetGuardParams) error {
	if err := validateParams(params); err != nil {
		return err
	}
	return c.apiClient.AddGuard(ctx, api.GuardBudget, &api.BudgetGuardRequest{
		GuardTarget: target,
		DailyLimit:  params.DailyLimit.String(),
		HourlyLimit: params.HourlyLimit.String(),
		TotalLimit:  params.TotalLimit.String(),
		Name:        orDefault(params.Name, DefaultBudgetGuardName),
	})
}

// SingleTxGuardParams configure a single transaction guard.
type SingleTxGuardParams struct {
	MaxAmount Amount `json:"max_amount" validate:"required,amount"`
	MinAmount Amount `json:"min_amount,omitempty" validate:"omitempty,amount"`
	Name      string `json:"name,omitempty"`
}

// AddSingleTxGuard bounds the amount of each payment from a wallet.
func (c *Client) AddSingleTxGuard(ctx context.Context, walletID string, params SingleTxGuardParams) error {
	if err := requireID("wallet_id", walletID); err != nil {
		return err
	}
	return c.addSingleTxGuard(ctx, api.WalletTarget(walletID), params)
}

// AddSingleTxGuardForSet adds a single transaction guard to every wallet in a set.
func (c *Client) AddSingleTxGuardForSet(ctx context.Context, walletSetID string, params SingleTxGuardParams) error {
	if err := requireID("wallet_set_id", walletSetID); err != nil {
		return err
	}
	return c.addSingleTxGuard(ctx, api.WalletSetTarget(walletSetID), params)
}

func (c *Client) addSingleTxGuard(ctx context.Context, target api.GuardTarget, params SingleTxGuardParams) error {
	if err := validateParams(params); err != nil {
		return err
	}
	return c.apiClient.AddGuard(ctx, api.GuardSingleTx, &api.SingleTxGuardRequest{
		GuardTarget: target,
		MaxAmount:   params.MaxAmount.String(),
		MinAmount:   params.MinAmount.String(),
		Name:        orDefault(params.Name, DefaultSingleTxGuardName),
	})
}

// RecipientGuardParams configure a recipient guard. Mode defaults to
// RecipientWhitelist.
type RecipientGuardParams struct {
	Mode      RecipientMode `json:"mode,omitempty" validate:"omitempty,oneof=whitelist blacklist"`
	Addresses []string      `json:"addresses,omitempty"`
	Patterns  []string      `json:"patterns,omitempty"`
	Domains   []string      `json:"domains,omitempty"`
	Name      string        `json:"name,omitempty"`
}

// AddRecipientGuard allows or denies payments from a wallet by recipient
// address, address pattern or domain.
func (c *Client) AddRecipientGuard(ctx context.Context, walletID string, params RecipientGuardParams) error {
	if err := requireID("wallet_id", walletID); err != nil {
		return err
	}
	return c.addRecipientGuard(ctx, api.WalletTarget(walletID), params)
}

// AddRecipientGuardForSet adds a recipient guard to every wallet in a set.
func (c *Client) AddRecipientGuardForSet(ctx context.Context, walletSetID string, params RecipientGuardParams) error {
	if err := requireID("wallet_set_id", walletSetID); err != nil {
		return err
	}
	return c.addRecipientGuard(ctx, api.WalletSetTarget(walletSetID), params)
}

func (c *Client) addRecipientGuard(ctx context.Context, target api.GuardTarget, params RecipientGuardParams) error {
	if err := validateParams(params); err != nil {
		return err
	}
	return c.apiClient.AddGuard(ctx, api.GuardRecipient, &api.RecipientGuardRequest{
		GuardTarget: target,
		Mode:        orDefault(string(params.Mode), string(RecipientWhitelist)),
		Addresses:   params.Addresses,
		Patterns:    params.Patterns,
		Domains:     params.Domains,
		Name:        orDefault(params.Name, DefaultRecipientGuardName),
	})
}

// RateLimitGuardParams configure a rate limit guard. Zero counts are not
// enforced.
type RateLimitGuardParams struct {
	MaxPerMinute int    `json:"max_per_minute,omitempty" validate:"gte=0"`
	MaxPerHour   int    `json:"max_per_hour,omitempty" validate:"gte=0"`
	MaxPerDay    int    `json:"max_per_day,omitempty" validate:"gte=0"`
	Name         string `json:"name,omitempty"`
}

// AddRateLimitGuard limits how many payments a wallet can make per minute,
// hour and day.
func (c *Client) AddRateLimitGuard(ctx context.Context, walletID string, params RateLimitGuardParams) error {
	if err := requireID("wallet_id", walletID); err != nil {
		return err
	}
	return c.addRateLimitGuard(ctx, api.WalletTarget(walletID), params)
}

// AddRateLimitGuardForSet adds a rate limit guard to every wallet in a set.
func (c *Client) AddRateLimitGuardForSet(ctx context.Context, walletSetID string, params RateLimitGuardParams) error {
	if err := requireID("wallet_set_id", walletSetID); err != nil {
		return err
	}
	return c.addRateLimitGuard(ctx, api.WalletSetTarget(walletSetID), params)
}

func (c *Client) addRateLimitGuard(ctx context.Context, target api.GuardTarget, params RateLimitGuardParams) error {
	if err := validateParams(params); err != nil {
		return err
	}
	return c.apiClient.AddGuard(ctx, api.GuardRateLimit, &api.RateLimitGuardRequest{
		GuardTarget:  target,
		MaxPerMinute: params.MaxPerMinute,
		MaxPerHour:   params.MaxPerHour,
		MaxPerDay:    params.MaxPerDay,
		Name:         orDefault(params.Name, DefaultRateLimitGuardName),
	})
}

// ConfirmGuardParams configure a confirmation guard.
type ConfirmGuardParams struct {
	// Threshold is the amount above which payments need confirmation.
	Threshold     Amount `json:"threshold,omitempty" validate:"omitempty,amount"`
	AlwaysConfirm bool   `json:"always_confirm"`
	Name          string `json:"name,omitempty"`
}

// AddConfirmGuard requires explicit confirmation of payments from a wallet.
func (c *Client) AddConfirmGuard(ctx context.Context, walletID string, params ConfirmGuardParams) error {
	if err := requireID("wallet_id", walletID); err != nil {
		return err
	}
	return c.addConfirmGuard(ctx, api.WalletTarget(walletID), params)
}

// AddConfirmGuardForSet adds a confirmation guard to every wallet in a set.
func (c *Client) AddConfirmGuardForSet(ctx context.Context, walletSetID string, params ConfirmGuardParams) error {
	if err := requireID("wallet_set_id", walletSetID); err != nil {
		return err
	}
	return c.addConfirmGuard(ctx, api.WalletSetTarget(walletSetID), params)
}

func (c *Client) addConfirmGuard(ctx context.Context, target api.GuardTarget, params ConfirmGuardParams) error {
	if err := validateParams(params); err != nil {
		return err
	}
	return c.apiClient.AddGuard(ctx, api.GuardConfirm, &api.ConfirmGuardRequest{
		GuardTarget:   target,
		Threshold:     params.Threshold.String(),
		AlwaysConfirm: params.AlwaysConfirm,
		Name:          orDefault(params.Name, DefaultConfirmGuardName),
	})
}

// GuardCheckParams are the parameters of CheckGuard.
type GuardCheckParams struct {
	Amount    Amount `json:"amount" validate:"required,amount"`
	Token     string `json:"token,omitempty"`
	Recipient string `json:"recipient,omitempty"`
	WalletID  string `json:"wallet_id,omitempty"`
}

// CheckGuard reports whether a payment would pass the registered guards.
// Token defaults to DefaultGuardToken.
func (c *Client) CheckGuard(ctx context.Context, params GuardCheckParams) (*GuardCheckResult, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	var result GuardCheckResult
	err := c.apiClient.CheckGuards(ctx, &api.GuardCheckRequest{
		Amount:    params.Amount.String(),
		Token:     orDefault(params.Token, DefaultGuardToken),
		Recipient: params.Recipient,
		WalletID:  params.WalletID,
	}, &result)
	if err != nil {
		return nil, err
	}
	result.Guards = nonNil(result.Guards)
	return &result, nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
