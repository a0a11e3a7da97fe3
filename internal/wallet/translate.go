package wallet

import (
	"errors"
	"strings"
)

// classification rules, checked in order; first match wins. The more specific
// ledger status codes come before the broad network and not-found buckets.
var rules = []struct {
	needle string
	kind   Kind
}{
	{"INSUFFICIENT_ACCOUNT_BALANCE", InsufficientBalance},
	{"INSUFFICIENT_PAYER_BALANCE", InsufficientBalance},
	{"ACCOUNT_DELETED", AccountDeleted},
	{"INVALID_SIGNATURE", InvalidSignature},
	{"TRANSACTION_EXPIRED", TransactionExpired},
	{"INVALID_ACCOUNT_ID", InvalidAccount},
	{"ACCOUNT_ID_DOES_NOT_EXIST", AccountNotFound},
	{"INVALID_TRANSACTION", InvalidTransaction},
	{"invalid transaction id", InvalidTransaction},
	{"UNAUTHORIZED", Unauthorized},
	{"NOT_FOUND", AccountNotFound},
	{"NETWORK_ERROR", NetworkError},
	{"timeout", NetworkError},
	{"deadline exceeded", NetworkError},
	{"connection refused", NetworkError},
	{"no healthy node", NetworkError},
}

// Translate classifies a ledger-client error into the closed kind set. An
// error that is already a *Error passes through unchanged; anything
// unrecognized becomes UnknownError. The raw message is always attached as
// Details; the response layer strips it in production.
func Translate(err error) *Error {
	if err == nil {
		return nil
	}
	var typed *Error
	if errors.As(err, &typed) {
		return typed
	}
	msg := err.Error()
	for _, r := range rules {
		if containsFold(msg, r.needle) {
			return NewError(r.kind).WithDetails(msg)
		}
	}
	return NewError(UnknownError).WithDetails(msg)
}

func containsFold(s, needle string) bool {
	if strings.Contains(s, needle) {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(needle))
}
