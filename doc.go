// Package omniagentpay provides a Go client SDK for OmniAgentPay, a payment
// API for wallets, payment intents, spending guards, a transaction ledger and
// multi-chain networks.
//
// Basic usage:
//
//	client, err := omniagentpay.New("your-api-key")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := client.Pay(ctx, omniagentpay.PayParams{
//	    WalletID:  "wallet-id",
//	    Recipient: "0xabc...",
//	    Amount:    "25.00",
//	})
//	if errors.Is(err, omniagentpay.ErrGuard) {
//	    // blocked by a guard
//	}
//
// Every method sends at most one request and never retries. Failures are
// returned as *Error; use errors.Is with the Err* sentinels, or KindOf, to
// branch on the kind. Validation errors are returned before any request is
// sent.
//
// Amounts are decimal strings (see Amount) and are sent as JSON strings.
package omniagentpay
