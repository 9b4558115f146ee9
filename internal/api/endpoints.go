package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// SimulatePayment dry-runs a payment against guards and routing.
func (c *Client) SimulatePayment(ctx context.Context, req *SimulatePaymentRequest, result any) error {
	return c.Do(ctx, http.MethodPost, "/payments/simulate", req, result)
}

// Pay executes a payment.
func (c *Client) Pay(ctx context.Context, req *PayRequest, result any) error {
	return c.Do(ctx, http.MethodPost, "/payments/pay", req, result)
}

// CreateIntent creates a payment intent.
func (c *Client) CreateIntent(ctx context.Context, req *CreateIntentRequest, result any) error {
	return c.Do(ctx, http.MethodPost, "/intents", req, result)
}

// ConfirmIntent confirms and executes a payment intent.
func (c *Client) ConfirmIntent(ctx context.Context, intentID string, result any) error {
	path := fmt.Sprintf("/intents/%s/confirm", url.PathEscape(intentID))
	return c.Do(ctx, http.MethodPost, path, nil, result)
}

// GetIntent retrieves a payment intent.
func (c *Client) GetIntent(ctx context.Context, intentID string, result any) error {
	path := fmt.Sprintf("/intents/%s", url.PathEscape(intentID))
	return c.Do(ctx, http.MethodGet, path, nil, result)
}

// CancelIntent cancels a payment intent.
func (c *Client) CancelIntent(ctx context.Context, intentID string, result any) error {
	path := fmt.Sprintf("/intents/%s/cancel", url.PathEscape(intentID))
	return c.Do(ctx, http.MethodPost, path, nil, result)
}

// GetBalance retrieves the balance of a wallet.
func (c *Client) GetBalance(ctx context.Context, walletID string) (*BalanceResponse, error) {
	path := fmt.Sprintf("/wallets/%s/balance", url.PathEscape(walletID))
	var result BalanceResponse
	if err := c.Do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListWallets lists wallets, optionally filtered by wallet set.
func (c *Client) ListWallets(ctx context.Context, walletSetID string, result any) error {
	query := url.Values{}
	if walletSetID != "" {
		query.Set("wallet_set_id", walletSetID)
	}
	return c.Do(ctx, http.MethodGet, withQuery("/wallets", query), nil, result)
}

// CreateWallet creates a wallet.
func (c *Client) CreateWallet(ctx context.Context, req *CreateWalletRequest, result any) error {
	return c.Do(ctx, http.MethodPost, "/wallets", req, result)
}

// GetWallet retrieves a wallet.
func (c *Client) GetWallet(ctx context.Context, walletID string, result any) error {
	path := fmt.Sprintf("/wallets/%s", url.PathEscape(walletID))
	return c.Do(ctx, http.MethodGet, path, nil, result)
}

// CreateWalletSet creates a wallet set.
func (c *Client) CreateWalletSet(ctx context.Context, req *CreateWalletSetRequest, result any) error {
	return c.Do(ctx, http.MethodPost, "/wallet-sets", req, result)
}

// ListWalletSets lists wallet sets.
func (c *Client) ListWalletSets(ctx context.Context, result any) error {
	return c.Do(ctx, http.MethodGet, "/wallet-sets", nil, result)
}

// ListTransactions lists transactions, optionally filtered by wallet and blockchain.
func (c *Client) ListTransactions(ctx context.Context, walletID, blockchain string, result any) error {
	query := url.Values{}
	if walletID != "" {
		query.Set("wallet_id", walletID)
	}
	if blockchain != "" {
		query.Set("blockchain", blockchain)
	}
	return c.Do(ctx, http.MethodGet, withQuery("/transactions", query), nil, result)
}

// ExplainTransaction retrieves a human-readable explanation of a transaction.
func (c *Client) ExplainTransaction(ctx context.Context, txID string, result any) error {
	path := fmt.Sprintf("/ledger/transactions/%s/explain", url.PathEscape(txID))
	return c.Do(ctx, http.MethodGet, path, nil, result)
}

// ListGuards lists guard names registered for a wallet or wallet set.
func (c *Client) ListGuards(ctx context.Context, target GuardTarget, result any) error {
	query := url.Values{}
	if target.WalletSetID != "" {
		query.Set("wallet_set_id", target.WalletSetID)
	} else {
		query.Set("wallet_id", target.WalletID)
	}
	return c.Do(ctx, http.MethodGet, withQuery("/guards", query), nil, result)
}

// AddGuard registers a guard. Wallet-set scoped requests go to the /set variant
// of the endpoint. The response body is not inspected.
func (c *Client) AddGuard(ctx context.Context, guardType GuardType, req GuardRequest) error {
	path := "/guards/" + string(guardType)
	if req.guardTarget().WalletSetID != "" {
		path += "/set"
	}
	return c.Do(ctx, http.MethodPost, path, req, nil)
}

// CheckGuards evaluates guards for a prospective payment.
func (c *Client) CheckGuards(ctx context.Context, req *GuardCheckRequest, result any) error {
	return c.Do(ctx, http.MethodPost, "/guards/check", req, result)
}

// ListNetworks lists supported networks.
func (c *Client) ListNetworks(ctx context.Context, result any) error {
	return c.Do(ctx, http.MethodGet, "/networks", nil, result)
}

func withQuery(path string, query url.Values) string {
	if len(query) == 0 {
		return path
	}
	return path + "?" + query.Encode()
}
