package omniagentpay

// Network identifies a blockchain network.
type Network string

// Supported networks.
const (
	NetworkETH          Network = "ETH"
	NetworkETHSepolia   Network = "ETH-SEPOLIA"
	NetworkAVAX         Network = "AVAX"
	NetworkAVAXFuji     Network = "AVAX-FUJI"
	NetworkMATIC        Network = "MATIC"
	NetworkMATICAmoy    Network = "MATIC-AMOY"
	NetworkSOL          Network = "SOL"
	NetworkSOLDevnet    Network = "SOL-DEVNET"
	NetworkARB          Network = "ARB"
	NetworkARBSepolia   Network = "ARB-SEPOLIA"
	NetworkBASE         Network = "BASE"
	NetworkBASESepolia  Network = "BASE-SEPOLIA"
	NetworkOP           Network = "OP"
	NetworkOPSepolia    Network = "OP-SEPOLIA"
	NetworkNEAR         Network = "NEAR"
	NetworkNEARTestnet  Network = "NEAR-TESTNET"
	NetworkAPTOS        Network = "APTOS"
	NetworkAPTOSTestnet Network = "APTOS-TESTNET"
	NetworkUNI          Network = "UNI"
	NetworkUNISepolia   Network = "UNI-SEPOLIA"
	NetworkMONAD        Network = "MONAD"
	NetworkMONADTestnet Network = "MONAD-TESTNET"
	NetworkARCTestnet   Network = "ARC-TESTNET"
	NetworkEVM          Network = "EVM"
	NetworkEVMTestnet   Network = "EVM-TESTNET"
)

// PaymentMethod is the route chosen for a payment.
type PaymentMethod string

const (
	PaymentMethodX402       PaymentMethod = "x402"
	PaymentMethodTransfer   PaymentMethod = "transfer"
	PaymentMethodCrosschain PaymentMethod = "crosschain"
)

// PaymentStatus is the state of an executed payment.
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusCompleted  PaymentStatus = "completed"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusCancelled  PaymentStatus = "cancelled"
	PaymentStatusBlocked    PaymentStatus = "blocked"
)

// PaymentIntentStatus is the lifecycle state of a payment intent.
type PaymentIntentStatus string

const (
	IntentRequiresConfirmation PaymentIntentStatus = "requires_confirmation"
	IntentProcessing           PaymentIntentStatus = "processing"
	IntentSucceeded            PaymentIntentStatus = "succeeded"
	IntentCanceled             PaymentIntentStatus = "canceled"
	IntentFailed               PaymentIntentStatus = "failed"
)

// WalletState is the operational state of a wallet.
type WalletState string

const (
	WalletLive   WalletState = "LIVE"
	WalletFrozen WalletState = "FROZEN"
)

// AccountType is the on-chain account model of a wallet.
type AccountType string

const (
	AccountSCA AccountType = "SCA" // smart contract account
	AccountEOA AccountType = "EOA" // externally owned account
)

// CustodyType identifies who controls a wallet set's keys.
type CustodyType string

const (
	CustodyDeveloper CustodyType = "DEVELOPER"
	CustodyEndUser   CustodyType = "ENDUSER"
)

// FeeLevel is the network fee priority of a payment.
type FeeLevel string

const (
	FeeLow    FeeLevel = "LOW"
	FeeMedium FeeLevel = "MEDIUM"
	FeeHigh   FeeLevel = "HIGH"
)

// RecipientMode selects how a recipient guard treats its list.
type RecipientMode string

const (
	RecipientWhitelist RecipientMode = "whitelist"
	RecipientBlacklist RecipientMode = "blacklist"
)

// WalletSetInfo describes a wallet set.
type WalletSetInfo struct {
	ID          string      `json:"id"`
	Name        string      `json:"name,omitempty"`
	CustodyType CustodyType `json:"custodyType"`
	CreateDate  string      `json:"createDate"`
	UpdateDate  string      `json:"updateDate"`
}

// WalletInfo describes a wallet.
type WalletInfo struct {
	ID          string      `json:"id"`
	Address     string      `json:"address"`
	Blockchain  string      `json:"blockchain"`
	State       WalletState `json:"state"`
	WalletSetID string      `json:"walletSetId"`
	CustodyType CustodyType `json:"custodyType"`
	AccountType AccountType `json:"accountType"`
	Name        string      `json:"name,omitempty"`
	CreateDate  string      `json:"createDate,omitempty"`
	UpdateDate  string      `json:"updateDate,omitempty"`
}

// TransactionInfo describes a transaction.
type TransactionInfo struct {
	ID                 string   `json:"id"`
	State              string   `json:"state"`
	Blockchain         string   `json:"blockchain,omitempty"`
	TxHash             string   `json:"txHash,omitempty"`
	WalletID           string   `json:"walletId,omitempty"`
	SourceAddress      string   `json:"sourceAddress,omitempty"`
	DestinationAddress string   `json:"destinationAddress,omitempty"`
	TokenID            string   `json:"tokenId,omitempty"`
	Amounts            []string `json:"amounts"`
	FeeLevel           FeeLevel `json:"feeLevel,omitempty"`
	CreateDate         string   `json:"createDate,omitempty"`
	UpdateDate         string   `json:"updateDate,omitempty"`
	ErrorReason        string   `json:"errorReason,omitempty"`
}

// PaymentIntent is a staged payment awaiting confirmation.
type PaymentIntent struct {
	ID           string              `json:"id"`
	WalletID     string              `json:"walletId"`
	Recipient    string              `json:"recipient"`
	Amount       string              `json:"amount"`
	Currency     string              `json:"currency"`
	Status       PaymentIntentStatus `json:"status"`
	CreatedAt    string              `json:"createdAt"`
	ExpiresAt    string              `json:"expiresAt,omitempty"`
	Metadata     map[string]any      `json:"metadata"`
	ClientSecret string              `json:"clientSecret,omitempty"`
}

// PaymentResult is the outcome of an executed payment.
type PaymentResult struct {
	Success       bool           `json:"success"`
	TransactionID string         `json:"transactionId,omitempty"`
	BlockchainTx  string         `json:"blockchainTx,omitempty"`
	Amount        string         `json:"amount"`
	Recipient     string         `json:"recipient"`
	Method        PaymentMethod  `json:"method"`
	Status        PaymentStatus  `json:"status"`
	GuardsPassed  []string       `json:"guardsPassed"`
	Error         string         `json:"error,omitempty"`
	Metadata      map[string]any `json:"metadata"`
}

// SimulationResult is the outcome of a simulated payment.
type SimulationResult struct {
	WouldSucceed        bool          `json:"wouldSucceed"`
	Route               PaymentMethod `json:"route"`
	GuardsThatWouldPass []string      `json:"guardsThatWouldPass"`
	GuardsThatWouldFail []string      `json:"guardsThatWouldFail"`
	EstimatedFee        string        `json:"estimatedFee,omitempty"`
	Reason              string        `json:"reason,omitempty"`
	IntentID            string        `json:"intentId,omitempty"`
}

// GuardCheck is one entry of a guard check.
type GuardCheck struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Reason string `json:"reason,omitempty"`
}

// GuardCheckResult is the outcome of checking guards for a prospective payment.
type GuardCheckResult struct {
	Allowed bool         `json:"allowed"`
	Guards  []GuardCheck `json:"guards"`
}

// TransactionExplanation is a human-readable account of a transaction.
type TransactionExplanation struct {
	Explanation string         `json:"explanation"`
	Details     map[string]any `json:"details"`
}
