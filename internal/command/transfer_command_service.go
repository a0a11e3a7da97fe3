package command

import (
	"context"
	"log"
	"time"

	"github.com/alvinthemax/hedera-wallet/internal/cqrs"
	"github.com/alvinthemax/hedera-wallet/internal/events"
	"github.com/alvinthemax/hedera-wallet/internal/hbar"
	"github.com/alvinthemax/hedera-wallet/internal/keys"
	"github.com/alvinthemax/hedera-wallet/internal/ledger"
	"github.com/alvinthemax/hedera-wallet/internal/models"
	"github.com/alvinthemax/hedera-wallet/internal/repository"
	"github.com/alvinthemax/hedera-wallet/internal/wallet"
)

// Reserver is the idempotency store used to pin a transaction ID to a retry
// key before submission.
type Reserver interface {
	Reserve(ctx context.Context, key, transactionID string, ttl time.Duration) (string, bool, error)
}

// TransferCommandService builds, signs and submits transfers. All input
// validation happens before the first network call; submission mutates ledger
// state exactly once per accepted transaction ID.
type TransferCommandService struct {
	ledger    ledger.Client
	idem      Reserver
	publisher *events.Publisher
}

func NewTransferCommandService(l ledger.Client, idem Reserver, publisher *events.Publisher) *TransferCommandService {
	return &TransferCommandService{ledger: l, idem: idem, publisher: publisher}
}

// SendTransfer validates the command, constructs a two-leg transfer and
// submits it, waiting for the receipt's terminal status. The record fetch for
// the actual fee is best-effort; on failure the default fee estimate is
// substituted and the result flagged.
func (s *TransferCommandService) SendTransfer(cmd cqrs.SendTransferCommand) (*models.TransferResult, error) {
	if cmd.PrivateKey == "" || cmd.Recipient == "" || cmd.AmountHbar == 0 {
		return nil, wallet.NewError(wallet.MissingField)
	}
	if cmd.AmountHbar < 0 {
		return nil, wallet.NewError(wallet.NonPositiveAmount)
	}
	recipient, ok := models.ParseAccountIdentity(cmd.Recipient)
	if !ok {
		return nil, wallet.NewError(wallet.InvalidRecipientFormat)
	}
	if len(cmd.Memo) > 100 {
		return nil, wallet.NewError(wallet.MemoTooLong)
	}
	material, err := keys.Validate(cmd.PrivateKey)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	sender := material.ProvisionalIdentity()
	amountTinybar := hbar.FromHbar(cmd.AmountHbar)

	txID, err := s.ledger.NewTransactionID(sender)
	if err != nil {
		return nil, wallet.Translate(err)
	}

	// Pin the transaction ID to the idempotency key so a retried call reuses
	// it; the ledger deduplicates identical IDs, so the worst case of a
	// timed-out submission is a status check, not a second debit.
	replay := false
	if cmd.IdempotencyKey != "" && s.idem != nil {
		reserved, fresh, rerr := s.idem.Reserve(ctx, cmd.IdempotencyKey, txID, repository.ReservationTTL)
		switch {
		case rerr != nil:
			log.Printf("Idempotency reservation unavailable: %v", rerr)
		case !fresh:
			txID = reserved
			replay = true
		}
	}

	if replay {
		if receipt, rerr := s.ledger.Receipt(ctx, txID); rerr == nil {
			// The earlier submission already reached consensus.
			return s.buildResult(ctx, txID, receipt, sender, cmd, amountTinybar), nil
		}
	}

	memo := cmd.Memo
	if len(memo) > 100 {
		memo = memo[:100]
	}

	submittedID, err := s.ledger.SubmitTransfer(ctx, ledger.TransferParams{
		Legs: []ledger.Leg{
			{Account: sender, AmountTinybar: -amountTinybar},
			{Account: recipient, AmountTinybar: amountTinybar},
		},
		Memo:          memo,
		TransactionID: txID,
		SenderKey:     material,
	})
	if err != nil {
		return nil, wallet.Translate(err)
	}
	log.Printf("Transfer submitted: %s (%s -> %s)", submittedID, keys.Mask(sender.String(), 6), cmd.Recipient)

	if perr := s.publisher.Publish(ctx, events.TransferEventsStream, events.TransferSubmitted, events.TransferSubmittedEvent{
		TransactionID: submittedID,
		Sender:        sender.String(),
		Recipient:     cmd.Recipient,
		Amount:        cmd.AmountHbar,
		Network:       s.ledger.Network(),
	}); perr != nil {
		log.Printf("Failed to publish transfer.submitted event: %v", perr)
	}

	receipt, err := s.ledger.Receipt(ctx, submittedID)
	if err != nil {
		return nil, wallet.Translate(err)
	}

	result := s.buildResult(ctx, submittedID, receipt, sender, cmd, amountTinybar)

	if perr := s.publisher.Publish(ctx, events.TransferEventsStream, events.TransferCompleted, events.TransferCompletedEvent{
		TransactionID: result.TransactionID,
		Status:        result.Status,
		Fee:           result.FeeHbar,
	}); perr != nil {
		log.Printf("Failed to publish transfer.completed event: %v", perr)
	}

	return result, nil
}

// buildResult assembles the immutable TransferResult, fetching the record for
// the actual fee and consensus timestamp. Record failure degrades to the
// default fee with FeeEstimated set.
func (s *TransferCommandService) buildResult(ctx context.Context, txID string, receipt *ledger.Receipt, sender models.AccountIdentity, cmd cqrs.SendTransferCommand, amountTinybar int64) *models.TransferResult {
	feeHbar := hbar.DefaultFeeHbar
	feeEstimated := true
	consensus := ""
	if record, err := s.ledger.Record(ctx, txID); err == nil {
		feeHbar = hbar.ToHbar(record.FeeTinybar)
		feeEstimated = false
		if !record.ConsensusTimestamp.IsZero() {
			consensus = record.ConsensusTimestamp.UTC().Format(time.RFC3339Nano)
		}
	} else {
		log.Printf("Could not fetch transaction record for %s: %v", txID, err)
	}

	network := s.ledger.Network()
	result := &models.TransferResult{
		TransactionID:      txID,
		Status:             receipt.Status,
		StatusCode:         receipt.StatusCode,
		Sender:             sender.String(),
		SenderProvisional:  sender.Provisional,
		Recipient:          cmd.Recipient,
		AmountHbar:         cmd.AmountHbar,
		AmountTinybar:      amountTinybar,
		Memo:               cmd.Memo,
		FeeHbar:            feeHbar,
		FeeEstimated:       feeEstimated,
		TotalCostHbar:      cmd.AmountHbar + feeHbar,
		ConsensusTimestamp: consensus,
		Network:            network,
		Timestamp:          time.Now().UTC(),
	}
	if url, ok := ledger.ExplorerURL(network, txID); ok {
		result.ExplorerURL = url
	}
	return result
}

// EstimateFee validates the key and computes the client-side fee model. No
// network call is made.
func (s *TransferCommandService) EstimateFee(cmd cqrs.EstimateFeeCommand) (*models.FeeEstimate, error) {
	if _, err := keys.Validate(cmd.PrivateKey); err != nil {
		return nil, err
	}
	if cmd.AmountHbar <= 0 {
		return nil, wallet.NewError(wallet.NonPositiveAmount)
	}
	estimate := hbar.EstimateFee(cmd.AmountHbar)
	return &estimate, nil
}
