// Package wallet defines the closed set of error kinds every operation in
// this service reports, and the translator that maps ledger-client failures
// onto them.
package wallet

import "fmt"

// Kind is a stable, machine-readable error category.
type Kind string

const (
	MalformedKey           Kind = "MALFORMED_KEY"
	UnsupportedKeyFormat   Kind = "UNSUPPORTED_KEY_FORMAT"
	MissingField           Kind = "MISSING_FIELD"
	NonPositiveAmount      Kind = "NON_POSITIVE_AMOUNT"
	InvalidRecipientFormat Kind = "INVALID_RECIPIENT_FORMAT"
	MemoTooLong            Kind = "MEMO_TOO_LONG"
	AccountNotFound        Kind = "ACCOUNT_NOT_FOUND"
	InvalidTransaction     Kind = "INVALID_TRANSACTION"
	NetworkError           Kind = "NETWORK_ERROR"
	Unauthorized           Kind = "UNAUTHORIZED"
	InsufficientBalance    Kind = "INSUFFICIENT_BALANCE"
	InvalidAccount         Kind = "INVALID_ACCOUNT"
	AccountDeleted         Kind = "ACCOUNT_DELETED"
	InvalidSignature       Kind = "INVALID_SIGNATURE"
	TransactionExpired     Kind = "TRANSACTION_EXPIRED"
	MissingTransactionID   Kind = "MISSING_TRANSACTION_ID"
	UnknownError           Kind = "UNKNOWN_ERROR"
)

var messages = map[Kind]string{
	MalformedKey:           "Private key is not valid",
	UnsupportedKeyFormat:   "Private key format is not supported",
	MissingField:           "All fields are required",
	NonPositiveAmount:      "Amount must be greater than 0",
	InvalidRecipientFormat: "Recipient address is not valid. Use the format: 0.0.1234567",
	MemoTooLong:            "Memo must not exceed 100 characters",
	AccountNotFound:        "Account not found. Check the private key or create the account first",
	InvalidTransaction:     "Transaction is not valid. Check the network configuration",
	NetworkError:           "Network connection failed. Check your internet connection",
	Unauthorized:           "Not authorized for this operation",
	InsufficientBalance:    "Balance is not sufficient for the transfer and fee",
	InvalidAccount:         "Sender or recipient address is not valid",
	AccountDeleted:         "Sender or recipient account has been deleted",
	InvalidSignature:       "Signature is not valid. The private key may be wrong",
	TransactionExpired:     "Transaction expired. Try again",
	MissingTransactionID:   "Transaction ID is required",
	UnknownError:           "The operation failed",
}

// Error is the typed failure every operation returns across the module
// boundary. Details carries the raw underlying message and must be stripped
// before leaving a production deployment.
type Error struct {
	Kind    Kind   `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func (e *Error) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewError builds an Error of the given kind with its stock message.
func NewError(kind Kind) *Error {
	return &Error{Kind: kind, Message: messages[kind]}
}

// WithDetails attaches the raw underlying error text.
func (e *Error) WithDetails(details string) *Error {
	e.Details = details
	return e
}

// Sanitized returns a copy safe for production responses: message and code
// only, no raw detail.
func (e *Error) Sanitized() *Error {
	return &Error{Kind: e.Kind, Message: e.Message}
}
