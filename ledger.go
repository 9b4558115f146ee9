package omniagentpay

import "context"

// ListTransactionsParams are the parameters of ListTransactions.
type ListTransactionsParams struct {
	WalletID   string  `json:"wallet_id,omitempty"`
	Blockchain Network `json:"blockchain,omitempty"`
}

// ListTransactions lists transactions, optionally filtered by wallet and
// blockchain.
func (c *Client) ListTransactions(ctx context.Context, params ListTransactionsParams) ([]TransactionInfo, error) {
	var txs []TransactionInfo
	if err := c.apiClient.ListTransactions(ctx, params.WalletID, string(params.Blockchain), &txs); err != nil {
		return nil, err
	}
	return nonNil(txs), nil
}

// ExplainTransaction returns a human-readable explanation of a transaction.
func (c *Client) ExplainTransaction(ctx context.Context, txID string) (*TransactionExplanation, error) {
	if err := requireID("tx_id", txID); err != nil {
		return nil, err
	}

	var explanation TransactionExplanation
	if err := c.apiClient.ExplainTransaction(ctx, txID, &explanation); err != nil {
		return nil, err
	}
	return &explanation, nil
}
