// Package ledger is the seam between the wallet services and the Hedera
// network. Services depend on the Client interface; the SDK-backed
// implementation lives in hedera.go.
package ledger

import (
	"context"
	"time"

	"github.com/alvinthemax/hedera-wallet/internal/keys"
	"github.com/alvinthemax/hedera-wallet/internal/models"
)

// Leg is one debit or credit of a transfer under construction. A valid
// transfer's legs sum to zero.
type Leg struct {
	Account       models.AccountIdentity
	AmountTinybar int64
}

// TransferParams describes a fully validated transfer ready to sign and
// submit. TransactionID is generated by the caller so a retry can reuse it.
type TransferParams struct {
	Legs          []Leg
	Memo          string
	TransactionID string
	SenderKey     keys.Material
}

// Receipt is the terminal consensus outcome of a transaction.
type Receipt struct {
	Status     string
	StatusCode uint32
}

// Record is the detailed transaction record, fetched best-effort after the
// receipt.
type Record struct {
	FeeTinybar         int64
	Memo               string
	ConsensusTimestamp time.Time
	Transfers          []models.TransferLeg
}

// AccountDetails is the answer to an account-info query.
type AccountDetails struct {
	AccountID      string
	BalanceTinybar int64
	Deleted        bool
	Key            string
}

// Client is the subset of ledger operations the wallet needs. It is
// implemented by the Hedera SDK adapter and mocked in service tests.
type Client interface {
	// Network reports the environment label the client was built for.
	Network() string
	// NewTransactionID generates a fresh transaction identifier scoped to
	// the sender. Local operation, no network I/O.
	NewTransactionID(sender models.AccountIdentity) (string, error)
	// ResolveAccount looks up the authoritative identity for a provisional
	// one. Failure means the account is not visible on the ledger yet.
	ResolveAccount(ctx context.Context, id models.AccountIdentity) (models.AccountIdentity, error)
	// Balance returns the account balance in tinybars.
	Balance(ctx context.Context, id models.AccountIdentity) (int64, error)
	// RecentTransfers returns up to limit most recent transfer records.
	RecentTransfers(ctx context.Context, id models.AccountIdentity, limit int) ([]models.TransferRecord, error)
	// AccountDetails queries account info for an exists probe.
	AccountDetails(ctx context.Context, accountID string) (*AccountDetails, error)
	// SubmitTransfer signs and submits the transfer, returning the
	// transaction ID the network accepted it under.
	SubmitTransfer(ctx context.Context, p TransferParams) (string, error)
	// Receipt waits for the terminal status of a transaction.
	Receipt(ctx context.Context, transactionID string) (*Receipt, error)
	// Record fetches the full transaction record.
	Record(ctx context.Context, transactionID string) (*Record, error)
	Close() error
}

var explorerBases = map[string]string{
	"mainnet":    "https://hashscan.io/mainnet/transaction/",
	"testnet":    "https://hashscan.io/testnet/transaction/",
	"previewnet": "https://hashscan.io/previewnet/transaction/",
}

// ExplorerURL builds a human-followable link for a transaction on a
// recognized network. Unrecognized network labels yield no link.
func ExplorerURL(network, transactionID string) (string, bool) {
	base, ok := explorerBases[network]
	if !ok {
		return "", false
	}
	return base + transactionID, true
}
