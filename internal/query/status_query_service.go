package query

import (
	"context"
	"log"
	"time"

	"github.com/alvinthemax/hedera-wallet/internal/cqrs"
	"github.com/alvinthemax/hedera-wallet/internal/hbar"
	"github.com/alvinthemax/hedera-wallet/internal/ledger"
	"github.com/alvinthemax/hedera-wallet/internal/models"
	"github.com/alvinthemax/hedera-wallet/internal/wallet"
)

// StatusQueryService reports the consensus status of a previously submitted
// transaction by re-querying the ledger; nothing is read from local state.
type StatusQueryService struct {
	ledger ledger.Client
}

func NewStatusQueryService(l ledger.Client) *StatusQueryService {
	return &StatusQueryService{ledger: l}
}

// CheckTransactionStatus fetches the receipt and, best-effort, the full
// record. Record failure degrades to receipt-only data with RecordAvailable
// unset instead of failing the lookup.
func (s *StatusQueryService) CheckTransactionStatus(q cqrs.TransactionStatusQuery) (*models.StatusRecord, error) {
	if q.TransactionID == "" {
		return nil, wallet.NewError(wallet.MissingTransactionID)
	}

	ctx := context.Background()
	receipt, err := s.ledger.Receipt(ctx, q.TransactionID)
	if err != nil {
		return nil, wallet.Translate(err)
	}

	status := &models.StatusRecord{
		TransactionID: q.TransactionID,
		Status:        receipt.Status,
		StatusCode:    receipt.StatusCode,
		Transfers:     []models.TransferLeg{},
	}

	record, err := s.ledger.Record(ctx, q.TransactionID)
	if err != nil {
		log.Printf("Could not fetch transaction record for %s: %v", q.TransactionID, err)
		return status, nil
	}

	status.RecordAvailable = true
	status.FeeHbar = hbar.ToHbar(record.FeeTinybar)
	status.Memo = record.Memo
	status.Transfers = record.Transfers
	if !record.ConsensusTimestamp.IsZero() {
		status.ConsensusTimestamp = record.ConsensusTimestamp.UTC().Format(time.RFC3339Nano)
	}
	return status, nil
}
