package query

import (
	"context"
	"log"
	"time"

	"github.com/alvinthemax/hedera-wallet/internal/cqrs"
	"github.com/alvinthemax/hedera-wallet/internal/hbar"
	"github.com/alvinthemax/hedera-wallet/internal/keys"
	"github.com/alvinthemax/hedera-wallet/internal/ledger"
	"github.com/alvinthemax/hedera-wallet/internal/models"
	"github.com/alvinthemax/hedera-wallet/internal/wallet"
)

const historyLimit = 5

// BalanceQueryService resolves the account behind a private key and reads
// its balance and recent transfers. Read-only and safe to retry; snapshots
// are rebuilt on every call.
type BalanceQueryService struct {
	ledger ledger.Client
}

func NewBalanceQueryService(l ledger.Client) *BalanceQueryService {
	return &BalanceQueryService{ledger: l}
}

// CheckBalance validates the key, prefers a ledger-resolved identity over the
// provisional derivation, and returns a snapshot. History is supplementary:
// a failed history fetch yields an empty list with HistoryAvailable unset,
// never a failed balance result.
func (s *BalanceQueryService) CheckBalance(q cqrs.CheckBalanceQuery) (*models.AccountSnapshot, error) {
	material, err := keys.Validate(q.PrivateKey)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	account := material.ProvisionalIdentity()
	if resolved, rerr := s.ledger.ResolveAccount(ctx, account); rerr == nil {
		account = resolved
	} else {
		// Not fatal: the account may simply not be visible on the ledger
		// yet. The snapshot stays flagged as provisional.
		log.Printf("Account not resolvable on ledger, using derived identity: %v", rerr)
	}

	balanceTinybar, err := s.ledger.Balance(ctx, account)
	if err != nil {
		return nil, wallet.Translate(err)
	}

	history := []models.TransferRecord{}
	historyAvailable := false
	if records, herr := s.ledger.RecentTransfers(ctx, account, historyLimit); herr == nil {
		history = records
		historyAvailable = true
	} else {
		log.Printf("Could not fetch transfer history for %s: %v", keys.Mask(account.String(), 6), herr)
	}

	return &models.AccountSnapshot{
		Account:          account,
		AccountID:        account.String(),
		BalanceHbar:      hbar.ToHbar(balanceTinybar),
		BalanceTinybar:   balanceTinybar,
		PublicKey:        material.Public.String(),
		RecentTransfers:  history,
		HistoryAvailable: historyAvailable,
		Network:          s.ledger.Network(),
		Timestamp:        time.Now().UTC(),
	}, nil
}

// CheckAccountExists probes the ledger for an account ID. Not-found family
// answers are a successful "does not exist", not an error.
func (s *BalanceQueryService) CheckAccountExists(q cqrs.AccountExistsQuery) (*models.AccountDetails, error) {
	if v := models.ValidateAccountIDFormat(q.AccountID); !v.Valid {
		return nil, wallet.NewError(wallet.InvalidAccount).WithDetails(v.Reason)
	}

	details, err := s.ledger.AccountDetails(context.Background(), q.AccountID)
	if err != nil {
		translated := wallet.Translate(err)
		switch translated.Kind {
		case wallet.AccountNotFound, wallet.InvalidAccount, wallet.AccountDeleted:
			return &models.AccountDetails{Exists: false, AccountID: q.AccountID}, nil
		}
		return nil, translated
	}

	return &models.AccountDetails{
		Exists:      true,
		AccountID:   details.AccountID,
		BalanceHbar: hbar.ToHbar(details.BalanceTinybar),
		Deleted:     details.Deleted,
		Key:         details.Key,
	}, nil
}
