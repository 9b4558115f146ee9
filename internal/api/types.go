package api

// Request bodies use the snake_case keys of the wire format. Amounts are
// decimal strings.

// SimulatePaymentRequest is the body of POST /payments/simulate.
type SimulatePaymentRequest struct {
	WalletID    string `json:"wallet_id"`
	Recipient   string `json:"recipient"`
	Amount      string `json:"amount"`
	WalletSetID string `json:"wallet_set_id,omitempty"`
}

// PayRequest is the body of POST /payments/pay.
type PayRequest struct {
	WalletID          string         `json:"wallet_id"`
	Recipient         string         `json:"recipient"`
	Amount            string         `json:"amount"`
	DestinationChain  string         `json:"destination_chain,omitempty"`
	WalletSetID       string         `json:"wallet_set_id,omitempty"`
	Purpose           string         `json:"purpose,omitempty"`
	IdempotencyKey    string         `json:"idempotency_key,omitempty"`
	FeeLevel          string         `json:"fee_level,omitempty"`
	SkipGuards        bool           `json:"skip_guards"`
	Metadata          map[string]any `json:"metadata,omitempty"`
	WaitForCompletion bool           `json:"wait_for_completion"`
	TimeoutSeconds    int            `json:"timeout_seconds,omitempty"`
}

// CreateIntentRequest is the body of POST /intents.
type CreateIntentRequest struct {
	WalletID       string `json:"wallet_id"`
	Recipient      string `json:"recipient"`
	Amount         string `json:"amount"`
	Purpose        string `json:"purpose,omitempty"`
	IdempotencyKey string `json:"idempotency_key,omitempty"`
}

// CreateWalletRequest is the body of POST /wallets.
type CreateWalletRequest struct {
	Blockchain  string `json:"blockchain,omitempty"`
	WalletSetID string `json:"wallet_set_id,omitempty"`
	AccountType string `json:"account_type,omitempty"`
	Name        string `json:"name,omitempty"`
}

// CreateWalletSetRequest is the body of POST /wallet-sets.
type CreateWalletSetRequest struct {
	Name string `json:"name,omitempty"`
}

// GuardTarget scopes a guard to a wallet or to a wallet set.
// Exactly one of the fields is set.
type GuardTarget struct {
	WalletID    string `json:"wallet_id,omitempty"`
	WalletSetID string `json:"wallet_set_id,omitempty"`
}

func (t GuardTarget) guardTarget() GuardTarget {
	return t
}

// WalletTarget scopes a guard to a single wallet.
func WalletTarget(walletID string) GuardTarget {
	return GuardTarget{WalletID: walletID}
}

// WalletSetTarget scopes a guard to every wallet in a set.
func WalletSetTarget(walletSetID string) GuardTarget {
	return GuardTarget{WalletSetID: walletSetID}
}

// GuardRequest is implemented by every guard creation body.
type GuardRequest interface {
	guardTarget() GuardTarget
}

// BudgetGuardRequest is the body of POST /guards/budget[/set].
type BudgetGuardRequest struct {
	GuardTarget
	DailyLimit  string `json:"daily_limit,omitempty"`
	HourlyLimit string `json:"hourly_limit,omitempty"`
	TotalLimit  string `json:"total_limit,omitempty"`
	Name        string `json:"name"`
}

// SingleTxGuardRequest is the body of POST /guards/single-tx[/set].
type SingleTxGuardRequest struct {
	GuardTarget
	MaxAmount string `json:"max_amount"`
	MinAmount string `json:"min_amount,omitempty"`
	Name      string `json:"name"`
}

// RecipientGuardRequest is the body of POST /guards/recipient[/set].
type RecipientGuardRequest struct {
	GuardTarget
	Mode      string   `json:"mode"`
	Addresses []string `json:"addresses,omitempty"`
	Patterns  []string `json:"patterns,omitempty"`
	Domains   []string `json:"domains,omitempty"`
	Name      string   `json:"name"`
}

// RateLimitGuardRequest is the body of POST /guards/rate-limit[/set].
type RateLimitGuardRequest struct {
	GuardTarget
	MaxPerMinute int    `json:"max_per_minute,omitempty"`
	MaxPerHour   int    `json:"max_per_hour,omitempty"`
	MaxPerDay    int    `json:"max_per_day,omitempty"`
	Name         string `json:"name"`
}

// ConfirmGuardRequest is the body of POST /guards/confirm[/set].
type ConfirmGuardRequest struct {
	GuardTarget
	Threshold     string `json:"threshold,omitempty"`
	AlwaysConfirm bool   `json:"always_confirm"`
	Name          string `json:"name"`
}

// GuardCheckRequest is the body of POST /guards/check.
type GuardCheckRequest struct {
	Amount    string `json:"amount"`
	Token     string `json:"token"`
	Recipient string `json:"recipient,omitempty"`
	WalletID  string `json:"wallet_id,omitempty"`
}

// GuardType names a guard creation endpoint.
type GuardType string

// Guard endpoints.
const (
	GuardBudget    GuardType = "budget"
	GuardSingleTx  GuardType = "single-tx"
	GuardRecipient GuardType = "recipient"
	GuardRateLimit GuardType = "rate-limit"
	GuardConfirm   GuardType = "confirm"
)

// BalanceResponse is the body of GET /wallets/{id}/balance.
type BalanceResponse struct {
	Balance *string `json:"balance"`
}
