package query

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alvinthemax/hedera-wallet/internal/cqrs"
	"github.com/alvinthemax/hedera-wallet/internal/ledger"
	"github.com/alvinthemax/hedera-wallet/internal/models"
	"github.com/alvinthemax/hedera-wallet/internal/wallet"
)

// DER-encoded ed25519 private key used only for offline parsing in tests.
const testKey = "302e020100300506032b657004220420e5e05f31a3b0ea80c92fe18ed0e01c117bb6f0d9dad18e84502906ff06bf8ee6"

// ---- mock ledger ----

type mockLedger struct {
	calls      int
	resolveFn  func(models.AccountIdentity) (models.AccountIdentity, error)
	balanceFn  func(models.AccountIdentity) (int64, error)
	transferFn func(models.AccountIdentity, int) ([]models.TransferRecord, error)
	detailsFn  func(string) (*ledger.AccountDetails, error)
	receiptFn  func(string) (*ledger.Receipt, error)
	recordFn   func(string) (*ledger.Record, error)
}

func (m *mockLedger) Network() string { return "testnet" }

func (m *mockLedger) NewTransactionID(models.AccountIdentity) (string, error) {
	return "0.0.1002@1700000000.123456789", nil
}

func (m *mockLedger) ResolveAccount(_ context.Context, id models.AccountIdentity) (models.AccountIdentity, error) {
	m.calls++
	if m.resolveFn != nil {
		return m.resolveFn(id)
	}
	return models.AccountIdentity{Shard: 0, Realm: 0, Num: 777}, nil
}

func (m *mockLedger) Balance(_ context.Context, id models.AccountIdentity) (int64, error) {
	m.calls++
	if m.balanceFn != nil {
		return m.balanceFn(id)
	}
	return 0, fmt.Errorf("not configured")
}

func (m *mockLedger) RecentTransfers(_ context.Context, id models.AccountIdentity, limit int) ([]models.TransferRecord, error) {
	m.calls++
	if m.transferFn != nil {
		return m.transferFn(id, limit)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockLedger) AccountDetails(_ context.Context, accountID string) (*ledger.AccountDetails, error) {
	m.calls++
	if m.detailsFn != nil {
		return m.detailsFn(accountID)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockLedger) SubmitTransfer(_ context.Context, p ledger.TransferParams) (string, error) {
	m.calls++
	return "", fmt.Errorf("not configured")
}

func (m *mockLedger) Receipt(_ context.Context, transactionID string) (*ledger.Receipt, error) {
	m.calls++
	if m.receiptFn != nil {
		return m.receiptFn(transactionID)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockLedger) Record(_ context.Context, transactionID string) (*ledger.Record, error) {
	m.calls++
	if m.recordFn != nil {
		return m.recordFn(transactionID)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockLedger) Close() error { return nil }

func kindOf(t *testing.T, err error) wallet.Kind {
	t.Helper()
	var typed *wallet.Error
	if !errors.As(err, &typed) {
		t.Fatalf("expected a typed error, got %v", err)
	}
	return typed.Kind
}

// ---- balance tests ----

func TestCheckBalanceResolvedIdentity(t *testing.T) {
	ml := &mockLedger{
		balanceFn: func(id models.AccountIdentity) (int64, error) {
			if id.Num != 777 {
				t.Errorf("balance queried for %s, want the resolved identity", id)
			}
			return 123_456_789, nil
		},
		transferFn: func(models.AccountIdentity, int) ([]models.TransferRecord, error) {
			return []models.TransferRecord{
				{TransactionID: "0.0.777@1700000000.1", Type: "TRANSFER", AmountHbar: 1.5, Timestamp: time.Now()},
			}, nil
		},
	}
	svc := NewBalanceQueryService(ml)

	snapshot, err := svc.CheckBalance(cqrs.CheckBalanceQuery{PrivateKey: testKey})
	if err != nil {
		t.Fatalf("CheckBalance: %v", err)
	}
	if snapshot.Account.Provisional {
		t.Error("resolved identity must not be flagged provisional")
	}
	if snapshot.AccountID != "0.0.777" {
		t.Errorf("account id = %q, want 0.0.777", snapshot.AccountID)
	}
	if snapshot.BalanceTinybar != 123_456_789 {
		t.Errorf("tinybar balance = %d", snapshot.BalanceTinybar)
	}
	if snapshot.BalanceHbar != 1.23456789 {
		t.Errorf("balance = %v, want 1.23456789", snapshot.BalanceHbar)
	}
	if !snapshot.HistoryAvailable || len(snapshot.RecentTransfers) != 1 {
		t.Errorf("history = %v (available %v)", snapshot.RecentTransfers, snapshot.HistoryAvailable)
	}
	if snapshot.Network != "testnet" {
		t.Errorf("network = %q", snapshot.Network)
	}
}

func TestCheckBalanceFallsBackToProvisionalIdentity(t *testing.T) {
	ml := &mockLedger{
		resolveFn: func(models.AccountIdentity) (models.AccountIdentity, error) {
			return models.AccountIdentity{}, errors.New("ACCOUNT_ID_DOES_NOT_EXIST")
		},
		balanceFn: func(id models.AccountIdentity) (int64, error) {
			if !id.Provisional {
				t.Error("fallback must query with the provisional identity")
			}
			return 0, nil
		},
		transferFn: func(models.AccountIdentity, int) ([]models.TransferRecord, error) {
			return []models.TransferRecord{}, nil
		},
	}
	svc := NewBalanceQueryService(ml)

	snapshot, err := svc.CheckBalance(cqrs.CheckBalanceQuery{PrivateKey: testKey})
	if err != nil {
		t.Fatalf("resolution failure must be soft, got %v", err)
	}
	if !snapshot.Account.Provisional {
		t.Error("snapshot must stay flagged provisional after a failed resolution")
	}
}

func TestCheckBalanceHistoryFailureIsNotFatal(t *testing.T) {
	ml := &mockLedger{
		balanceFn: func(models.AccountIdentity) (int64, error) { return 500, nil },
		transferFn: func(models.AccountIdentity, int) ([]models.TransferRecord, error) {
			return nil, errors.New("COST_ANSWER query failed")
		},
	}
	svc := NewBalanceQueryService(ml)

	snapshot, err := svc.CheckBalance(cqrs.CheckBalanceQuery{PrivateKey: testKey})
	if err != nil {
		t.Fatalf("history failure must not fail the balance check, got %v", err)
	}
	if snapshot.HistoryAvailable {
		t.Error("failed history fetch must clear HistoryAvailable")
	}
	if snapshot.RecentTransfers == nil || len(snapshot.RecentTransfers) != 0 {
		t.Errorf("history = %#v, want an empty list", snapshot.RecentTransfers)
	}
}

func TestCheckBalanceErrors(t *testing.T) {
	t.Run("bad key, no network call", func(t *testing.T) {
		ml := &mockLedger{}
		svc := NewBalanceQueryService(ml)
		_, err := svc.CheckBalance(cqrs.CheckBalanceQuery{PrivateKey: "garbage"})
		if got := kindOf(t, err); got != wallet.MalformedKey {
			t.Errorf("kind = %s", got)
		}
		if ml.calls != 0 {
			t.Errorf("key failure issued %d network calls", ml.calls)
		}
	})
	t.Run("balance query failure is translated", func(t *testing.T) {
		ml := &mockLedger{
			balanceFn: func(models.AccountIdentity) (int64, error) {
				return 0, errors.New("INVALID_ACCOUNT_ID")
			},
		}
		svc := NewBalanceQueryService(ml)
		_, err := svc.CheckBalance(cqrs.CheckBalanceQuery{PrivateKey: testKey})
		if got := kindOf(t, err); got != wallet.InvalidAccount {
			t.Errorf("kind = %s", got)
		}
	})
}

// ---- account exists tests ----

func TestCheckAccountExists(t *testing.T) {
	t.Run("format failure, no network call", func(t *testing.T) {
		ml := &mockLedger{}
		svc := NewBalanceQueryService(ml)
		_, err := svc.CheckAccountExists(cqrs.AccountExistsQuery{AccountID: "0.0.-5"})
		if got := kindOf(t, err); got != wallet.InvalidAccount {
			t.Errorf("kind = %s", got)
		}
		if ml.calls != 0 {
			t.Errorf("format failure issued %d network calls", ml.calls)
		}
	})
	t.Run("not found is a successful negative answer", func(t *testing.T) {
		ml := &mockLedger{
			detailsFn: func(string) (*ledger.AccountDetails, error) {
				return nil, errors.New("ACCOUNT_ID_DOES_NOT_EXIST")
			},
		}
		svc := NewBalanceQueryService(ml)
		details, err := svc.CheckAccountExists(cqrs.AccountExistsQuery{AccountID: "0.0.404"})
		if err != nil {
			t.Fatalf("not-found must not be an error, got %v", err)
		}
		if details.Exists {
			t.Error("account must be reported as missing")
		}
	})
	t.Run("existing account", func(t *testing.T) {
		ml := &mockLedger{
			detailsFn: func(string) (*ledger.AccountDetails, error) {
				return &ledger.AccountDetails{AccountID: "0.0.500", BalanceTinybar: 200_000_000}, nil
			},
		}
		svc := NewBalanceQueryService(ml)
		details, err := svc.CheckAccountExists(cqrs.AccountExistsQuery{AccountID: "0.0.500"})
		if err != nil {
			t.Fatalf("CheckAccountExists: %v", err)
		}
		if !details.Exists || details.BalanceHbar != 2 {
			t.Errorf("details = %+v", details)
		}
	})
	t.Run("network failure stays an error", func(t *testing.T) {
		ml := &mockLedger{
			detailsFn: func(string) (*ledger.AccountDetails, error) {
				return nil, errors.New("context deadline exceeded")
			},
		}
		svc := NewBalanceQueryService(ml)
		_, err := svc.CheckAccountExists(cqrs.AccountExistsQuery{AccountID: "0.0.500"})
		if got := kindOf(t, err); got != wallet.NetworkError {
			t.Errorf("kind = %s", got)
		}
	})
}

// ---- status tests ----

func TestCheckTransactionStatus(t *testing.T) {
	t.Run("empty id, no query", func(t *testing.T) {
		ml := &mockLedger{}
		svc := NewStatusQueryService(ml)
		_, err := svc.CheckTransactionStatus(cqrs.TransactionStatusQuery{})
		if got := kindOf(t, err); got != wallet.MissingTransactionID {
			t.Errorf("kind = %s", got)
		}
		if ml.calls != 0 {
			t.Errorf("empty id issued %d network calls", ml.calls)
		}
	})
	t.Run("receipt and record", func(t *testing.T) {
		consensus := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		ml := &mockLedger{
			receiptFn: func(string) (*ledger.Receipt, error) {
				return &ledger.Receipt{Status: "SUCCESS", StatusCode: 22}, nil
			},
			recordFn: func(string) (*ledger.Record, error) {
				return &ledger.Record{
					FeeTinybar:         55_000,
					Memo:               "rent",
					ConsensusTimestamp: consensus,
					Transfers: []models.TransferLeg{
						{AccountID: "0.0.1002", AmountTinybar: -100_055_000, AmountHbar: -1.00055},
						{AccountID: "0.0.500", AmountTinybar: 100_000_000, AmountHbar: 1},
					},
				}, nil
			},
		}
		svc := NewStatusQueryService(ml)
		record, err := svc.CheckTransactionStatus(cqrs.TransactionStatusQuery{TransactionID: "0.0.1002@1700000000.123456789"})
		if err != nil {
			t.Fatalf("CheckTransactionStatus: %v", err)
		}
		if !record.RecordAvailable {
			t.Error("record was fetched, RecordAvailable must be set")
		}
		if record.FeeHbar != 0.00055 || record.Memo != "rent" || len(record.Transfers) != 2 {
			t.Errorf("record = %+v", record)
		}
		if record.ConsensusTimestamp == "" {
			t.Error("expected a consensus timestamp")
		}
	})
	t.Run("record failure degrades to receipt-only", func(t *testing.T) {
		ml := &mockLedger{
			receiptFn: func(string) (*ledger.Receipt, error) {
				return &ledger.Receipt{Status: "SUCCESS", StatusCode: 22}, nil
			},
			recordFn: func(string) (*ledger.Record, error) {
				return nil, errors.New("RECORD_NOT_FOUND")
			},
		}
		svc := NewStatusQueryService(ml)
		record, err := svc.CheckTransactionStatus(cqrs.TransactionStatusQuery{TransactionID: "0.0.1002@1700000000.123456789"})
		if err != nil {
			t.Fatalf("record failure must not fail the lookup, got %v", err)
		}
		if record.RecordAvailable {
			t.Error("RecordAvailable must be clear when the record fetch failed")
		}
		if record.Status != "SUCCESS" {
			t.Errorf("status = %s", record.Status)
		}
		if len(record.Transfers) != 0 {
			t.Errorf("transfers = %v, want empty", record.Transfers)
		}
	})
	t.Run("receipt failure is translated", func(t *testing.T) {
		ml := &mockLedger{
			receiptFn: func(string) (*ledger.Receipt, error) {
				return nil, errors.New(`invalid transaction id "nope"`)
			},
		}
		svc := NewStatusQueryService(ml)
		_, err := svc.CheckTransactionStatus(cqrs.TransactionStatusQuery{TransactionID: "nope"})
		if got := kindOf(t, err); got != wallet.InvalidTransaction {
			t.Errorf("kind = %s", got)
		}
	})
}
