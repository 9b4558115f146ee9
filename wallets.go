package omniagentpay

import (
	"context"

	"github.com/omniagentpay/client-go/internal/api"
)

// GetBalance returns the USDC balance of a wallet as a decimal string.
func (c *Client) GetBalance(ctx context.Context, walletID string) (string, error) {
	if err := requireID("wallet_id", walletID); err != nil {
		return "", err
	}

	resp, err := c.apiClient.GetBalance(ctx, walletID)
	if err != nil {
		return "", err
	}
	if resp.Balance == nil {
		return "", NewWalletError("balance missing from response", walletID, nil)
	}
	return *resp.Balance, nil
}

// ListWalletsParams are the parameters of ListWallets.
type ListWalletsParams struct {
	// WalletSetID restricts the listing to one wallet set.
	WalletSetID string `json:"wallet_set_id,omitempty"`
}

// ListWallets lists wallets.
func (c *Client) ListWallets(ctx context.Context, params ListWalletsParams) ([]WalletInfo, error) {
	var wallets []WalletInfo
	if err := c.apiClient.ListWallets(ctx, params.WalletSetID, &wallets); err != nil {
		return nil, err
	}
	return nonNil(wallets), nil
}

// CreateWalletParams are the parameters of CreateWallet. All fields are
// optional; the server applies its defaults.
type CreateWalletParams struct {
	Blockchain  Network     `json:"blockchain,omitempty"`
	WalletSetID string      `json:"wallet_set_id,omitempty"`
	AccountType AccountType `json:"account_type,omitempty" validate:"omitempty,oneof=SCA EOA"`
	Name        string      `json:"name,omitempty"`
}

// CreateWallet creates a wallet.
func (c *Client) CreateWallet(ctx context.Context, params CreateWalletParams) (*WalletInfo, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	var wallet WalletInfo
	err := c.apiClient.CreateWallet(ctx, &api.CreateWalletRequest{
		Blockchain:  string(params.Blockchain),
		WalletSetID: params.WalletSetID,
		AccountType: string(params.AccountType),
		Name:        params.Name,
	}, &wallet)
	if err != nil {
		return nil, err
	}
	return &wallet, nil
}

// GetWallet retrieves a wallet.
func (c *Client) GetWallet(ctx context.Context, walletID string) (*WalletInfo, error) {
	if err := requireID("wallet_id", walletID); err != nil {
		return nil, err
	}

	var wallet WalletInfo
	if err := c.apiClient.GetWallet(ctx, walletID, &wallet); err != nil {
		return nil, err
	}
	return &wallet, nil
}

// CreateWalletSetParams are the parameters of CreateWalletSet.
type CreateWalletSetParams struct {
	Name string `json:"name,omitempty"`
}

// CreateWalletSet creates a wallet set.
func (c *Client) CreateWalletSet(ctx context.Context, params CreateWalletSetParams) (*WalletSetInfo, error) {
	var set WalletSetInfo
	if err := c.apiClient.CreateWalletSet(ctx, &api.CreateWalletSetRequest{Name: params.Name}, &set); err != nil {
		return nil, err
	}
	return &set, nil
}

// ListWalletSets lists wallet sets.
func (c *Client) ListWalletSets(ctx context.Context) ([]WalletSetInfo, error) {
	var sets []WalletSetInfo
	if err := c.apiClient.ListWalletSets(ctx, &sets); err != nil {
		return nil, err
	}
	return nonNil(sets), nil
}
