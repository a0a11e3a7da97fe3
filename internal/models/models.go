package models

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// MaxAccountNum bounds the numeric component of an account ID to 10 digits.
const MaxAccountNum uint64 = 9_999_999_999

var accountIDPattern = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)$`)

// AccountIdentity identifies an on-ledger account. When no ledger-confirmed
// number is known, AliasKey carries the public key the identity was derived
// from and Provisional is set; callers must prefer a resolved identity.
type AccountIdentity struct {
	Shard       uint64 `json:"shard"`
	Realm       uint64 `json:"realm"`
	Num         uint64 `json:"num"`
	AliasKey    string `json:"aliasKey,omitempty"`
	Provisional bool   `json:"provisional"`
}

func (id AccountIdentity) String() string {
	if id.AliasKey != "" {
		return fmt.Sprintf("%d.%d.%s", id.Shard, id.Realm, id.AliasKey)
	}
	return fmt.Sprintf("%d.%d.%d", id.Shard, id.Realm, id.Num)
}

// AccountIDValidation is the result of a format-only account ID check.
type AccountIDValidation struct {
	Valid  bool   `json:"valid"`
	Shard  string `json:"shard,omitempty"`
	Realm  string `json:"realm,omitempty"`
	Num    string `json:"num,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// ValidateAccountIDFormat checks the shard.realm.number form without touching
// the network. The numeric component is capped at ten digits.
func ValidateAccountIDFormat(accountID string) AccountIDValidation {
	if accountID == "" {
		return AccountIDValidation{Valid: false, Reason: "account ID is required"}
	}
	m := accountIDPattern.FindStringSubmatch(accountID)
	if m == nil {
		return AccountIDValidation{Valid: false, Reason: "account ID must use the shard.realm.number format, e.g. 0.0.1234567"}
	}
	num, err := strconv.ParseUint(m[3], 10, 64)
	if err != nil || num > MaxAccountNum {
		return AccountIDValidation{Valid: false, Reason: "account number is too large"}
	}
	return AccountIDValidation{Valid: true, Shard: m[1], Realm: m[2], Num: m[3]}
}

// ParseAccountIdentity converts a shard.realm.number string into an
// AccountIdentity. The bool reports whether the input was well formed.
func ParseAccountIdentity(accountID string) (AccountIdentity, bool) {
	v := ValidateAccountIDFormat(accountID)
	if !v.Valid {
		return AccountIdentity{}, false
	}
	shard, _ := strconv.ParseUint(v.Shard, 10, 64)
	realm, _ := strconv.ParseUint(v.Realm, 10, 64)
	num, _ := strconv.ParseUint(v.Num, 10, 64)
	return AccountIdentity{Shard: shard, Realm: realm, Num: num}, true
}

// TransferRecord is one entry of an account's recent transfer history.
type TransferRecord struct {
	TransactionID string    `json:"transactionId"`
	Type          string    `json:"type"`
	AmountHbar    float64   `json:"amount"`
	Timestamp     time.Time `json:"timestamp"`
}

// AccountSnapshot is the result of a balance query. It is rebuilt on every
// call and never cached.
type AccountSnapshot struct {
	Account          AccountIdentity  `json:"account"`
	AccountID        string           `json:"accountId"`
	BalanceHbar      float64          `json:"balance"`
	BalanceTinybar   int64            `json:"tinybarBalance"`
	PublicKey        string           `json:"publicKey"`
	RecentTransfers  []TransferRecord `json:"recentTransactions"`
	HistoryAvailable bool             `json:"historyAvailable"`
	Network          string           `json:"network"`
	Timestamp        time.Time        `json:"timestamp"`
}

// TransferLeg is a single debit or credit within a transaction.
type TransferLeg struct {
	AccountID     string  `json:"accountId"`
	AmountHbar    float64 `json:"amount"`
	AmountTinybar int64   `json:"amountTinybar"`
}

// TransferResult describes a submitted transfer once its receipt is known.
// Immutable after construction.
type TransferResult struct {
	TransactionID      string    `json:"transactionId"`
	Status             string    `json:"status"`
	StatusCode         uint32    `json:"statusCode"`
	Sender             string    `json:"sender"`
	SenderProvisional  bool      `json:"senderProvisional"`
	Recipient          string    `json:"recipient"`
	AmountHbar         float64   `json:"amount"`
	AmountTinybar      int64     `json:"amountTinybar"`
	Memo               string    `json:"memo"`
	FeeHbar            float64   `json:"transactionFee"`
	FeeEstimated       bool      `json:"feeEstimated"`
	TotalCostHbar      float64   `json:"totalCost"`
	ConsensusTimestamp string    `json:"consensusTimestamp,omitempty"`
	Network            string    `json:"network"`
	ExplorerURL        string    `json:"explorerUrl,omitempty"`
	Timestamp          time.Time `json:"timestamp"`
}

// StatusRecord reports the consensus status of a previously submitted
// transaction, re-queried from the ledger rather than local state. Fee, memo
// and legs are only present when the record fetch succeeded.
type StatusRecord struct {
	TransactionID      string        `json:"transactionId"`
	Status             string        `json:"status"`
	StatusCode         uint32        `json:"statusCode"`
	ConsensusTimestamp string        `json:"consensusTimestamp,omitempty"`
	FeeHbar            float64       `json:"transactionFee"`
	Memo               string        `json:"memo"`
	Transfers          []TransferLeg `json:"transfers"`
	RecordAvailable    bool          `json:"recordAvailable"`
}

// AccountDetails answers an account-exists probe.
type AccountDetails struct {
	Exists      bool    `json:"exists"`
	AccountID   string  `json:"accountId"`
	BalanceHbar float64 `json:"balance,omitempty"`
	Deleted     bool    `json:"isDeleted,omitempty"`
	Key         string  `json:"key,omitempty"`
}

// FeeBreakdown itemizes a fee estimate.
type FeeBreakdown struct {
	BaseFeeHbar    float64 `json:"baseFee"`
	AmountFeeHbar  float64 `json:"amountFee"`
	NetworkFeeHbar float64 `json:"networkFee"`
}

// FeeEstimate is a client-side approximation of the cost of a transfer.
type FeeEstimate struct {
	EstimatedFeeHbar  float64      `json:"estimatedFee"`
	MinFeeHbar        float64      `json:"minFee"`
	TotalRequiredHbar float64      `json:"totalRequired"`
	Breakdown         FeeBreakdown `json:"breakdown"`
}
