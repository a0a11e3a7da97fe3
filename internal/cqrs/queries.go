package cqrs

// CheckBalanceQuery resolves the account behind a private key and reads its
// balance and recent history.
type CheckBalanceQuery struct {
	PrivateKey string
}

// TransactionStatusQuery looks up a previously submitted transaction.
type TransactionStatusQuery struct {
	TransactionID string
}

// AccountExistsQuery probes the ledger for an account ID.
type AccountExistsQuery struct {
	AccountID string
}
