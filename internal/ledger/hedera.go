package ledger

import (
	"context"
	"fmt"
	"log"
	"strings"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"

	"github.com/alvinthemax/hedera-wallet/internal/hbar"
	"github.com/alvinthemax/hedera-wallet/internal/models"
)

// HederaClient implements Client on top of the Hedera Go SDK. A client is
// cheap to construct and holds no per-operation state; the SDK manages node
// selection and gRPC channels internally.
type HederaClient struct {
	client  *hedera.Client
	network string
}

// NewHederaClient selects the network by environment label, defaulting to
// mainnet, and sets the operator pair when one is configured. An operator
// that fails to parse is logged and skipped rather than fatal.
func NewHederaClient(network, operatorID, operatorKey string) *HederaClient {
	label := strings.ToLower(network)
	var client *hedera.Client
	switch label {
	case "testnet":
		client = hedera.ClientForTestnet()
	case "previewnet":
		client = hedera.ClientForPreviewnet()
	default:
		label = "mainnet"
		client = hedera.ClientForMainnet()
	}

	if operatorID != "" && operatorKey != "" {
		id, err := hedera.AccountIDFromString(operatorID)
		if err != nil {
			log.Printf("Warning: operator account ID not usable: %v", err)
			return &HederaClient{client: client, network: label}
		}
		key, err := hedera.PrivateKeyFromString(operatorKey)
		if err != nil {
			log.Printf("Warning: operator key not usable, continuing without operator")
			return &HederaClient{client: client, network: label}
		}
		client.SetOperator(id, key)
	}

	return &HederaClient{client: client, network: label}
}

func (h *HederaClient) Network() string {
	return h.network
}

func (h *HederaClient) Close() error {
	return h.client.Close()
}

func toAccountID(id models.AccountIdentity) (hedera.AccountID, error) {
	if id.AliasKey != "" {
		pub, err := hedera.PublicKeyFromString(id.AliasKey)
		if err != nil {
			return hedera.AccountID{}, fmt.Errorf("invalid account alias key: %w", err)
		}
		return *pub.ToAccountID(id.Shard, id.Realm), nil
	}
	return hedera.AccountID{Shard: id.Shard, Realm: id.Realm, Account: id.Num}, nil
}

func (h *HederaClient) NewTransactionID(sender models.AccountIdentity) (string, error) {
	id, err := toAccountID(sender)
	if err != nil {
		return "", err
	}
	return hedera.TransactionIDGenerate(id).String(), nil
}

func (h *HederaClient) ResolveAccount(ctx context.Context, id models.AccountIdentity) (models.AccountIdentity, error) {
	accountID, err := toAccountID(id)
	if err != nil {
		return models.AccountIdentity{}, err
	}
	info, err := hedera.NewAccountInfoQuery().
		SetAccountID(accountID).
		Execute(h.client)
	if err != nil {
		return models.AccountIdentity{}, err
	}
	return models.AccountIdentity{
		Shard: info.AccountID.Shard,
		Realm: info.AccountID.Realm,
		Num:   info.AccountID.Account,
	}, nil
}

func (h *HederaClient) Balance(ctx context.Context, id models.AccountIdentity) (int64, error) {
	accountID, err := toAccountID(id)
	if err != nil {
		return 0, err
	}
	balance, err := hedera.NewAccountBalanceQuery().
		SetAccountID(accountID).
		Execute(h.client)
	if err != nil {
		return 0, err
	}
	return balance.Hbars.AsTinybar(), nil
}

func (h *HederaClient) RecentTransfers(ctx context.Context, id models.AccountIdentity, limit int) ([]models.TransferRecord, error) {
	accountID, err := toAccountID(id)
	if err != nil {
		return nil, err
	}
	records, err := hedera.NewAccountRecordsQuery().
		SetAccountID(accountID).
		Execute(h.client)
	if err != nil {
		return nil, err
	}
	if len(records) > limit {
		records = records[:limit]
	}
	out := make([]models.TransferRecord, 0, len(records))
	for _, r := range records {
		var amountTinybar int64
		if len(r.Transfers) > 0 {
			amountTinybar = r.Transfers[0].Amount.AsTinybar()
			if amountTinybar < 0 {
				amountTinybar = -amountTinybar
			}
		}
		out = append(out, models.TransferRecord{
			TransactionID: r.TransactionID.String(),
			Type:          "TRANSFER",
			AmountHbar:    hbar.ToHbar(amountTinybar),
			Timestamp:     r.ConsensusTimestamp,
		})
	}
	return out, nil
}

func (h *HederaClient) AccountDetails(ctx context.Context, accountID string) (*AccountDetails, error) {
	id, err := hedera.AccountIDFromString(accountID)
	if err != nil {
		return nil, fmt.Errorf("INVALID_ACCOUNT_ID: %w", err)
	}
	info, err := hedera.NewAccountInfoQuery().
		SetAccountID(id).
		Execute(h.client)
	if err != nil {
		return nil, err
	}
	return &AccountDetails{
		AccountID:      info.AccountID.String(),
		BalanceTinybar: info.Balance.AsTinybar(),
		Deleted:        info.IsDeleted,
		Key:            fmt.Sprintf("%v", info.Key),
	}, nil
}

func (h *HederaClient) SubmitTransfer(ctx context.Context, p TransferParams) (string, error) {
	tx := hedera.NewTransferTransaction()
	for _, leg := range p.Legs {
		accountID, err := toAccountID(leg.Account)
		if err != nil {
			return "", err
		}
		tx.AddHbarTransfer(accountID, hedera.HbarFromTinybar(leg.AmountTinybar))
	}

	memo := p.Memo
	if len(memo) > 100 {
		memo = memo[:100]
	}
	tx.SetTransactionMemo(memo)

	if p.TransactionID != "" {
		txID, err := hedera.TransactionIdFromString(p.TransactionID)
		if err != nil {
			return "", fmt.Errorf("invalid transaction id %q: %w", p.TransactionID, err)
		}
		tx.SetTransactionID(txID)
	}

	frozen, err := tx.FreezeWith(h.client)
	if err != nil {
		return "", err
	}
	resp, err := frozen.Sign(p.SenderKey.Private).Execute(h.client)
	if err != nil {
		return "", err
	}
	return resp.TransactionID.String(), nil
}

func (h *HederaClient) Receipt(ctx context.Context, transactionID string) (*Receipt, error) {
	txID, err := hedera.TransactionIdFromString(transactionID)
	if err != nil {
		return nil, fmt.Errorf("invalid transaction id %q: %w", transactionID, err)
	}
	receipt, err := hedera.NewTransactionReceiptQuery().
		SetTransactionID(txID).
		Execute(h.client)
	if err != nil {
		return nil, err
	}
	return &Receipt{
		Status:     receipt.Status.String(),
		StatusCode: uint32(receipt.Status),
	}, nil
}

func (h *HederaClient) Record(ctx context.Context, transactionID string) (*Record, error) {
	txID, err := hedera.TransactionIdFromString(transactionID)
	if err != nil {
		return nil, fmt.Errorf("invalid transaction id %q: %w", transactionID, err)
	}
	record, err := hedera.NewTransactionRecordQuery().
		SetTransactionID(txID).
		Execute(h.client)
	if err != nil {
		return nil, err
	}
	legs := make([]models.TransferLeg, 0, len(record.Transfers))
	for _, t := range record.Transfers {
		tinybar := t.Amount.AsTinybar()
		legs = append(legs, models.TransferLeg{
			AccountID:     t.AccountID.String(),
			AmountHbar:    hbar.ToHbar(tinybar),
			AmountTinybar: tinybar,
		})
	}
	return &Record{
		FeeTinybar:         feeTinybar(record.TransactionFee),
		Memo:               record.TransactionMemo,
		ConsensusTimestamp: record.ConsensusTimestamp,
		Transfers:          legs,
	}, nil
}

func feeTinybar(fee hedera.Hbar) int64 {
	t := fee.AsTinybar()
	if t < 0 {
		return 0
	}
	return t
}
