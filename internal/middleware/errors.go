package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alvinthemax/hedera-wallet/internal/wallet"
)

// statusFor maps error kinds onto HTTP status codes. Validation kinds are
// client errors; ledger outcomes map to the closest HTTP semantics.
func statusFor(kind wallet.Kind) int {
	switch kind {
	case wallet.MalformedKey, wallet.UnsupportedKeyFormat, wallet.MissingField,
		wallet.NonPositiveAmount, wallet.InvalidRecipientFormat, wallet.MemoTooLong,
		wallet.MissingTransactionID, wallet.InvalidTransaction, wallet.InvalidAccount,
		wallet.TransactionExpired:
		return http.StatusBadRequest
	case wallet.AccountNotFound:
		return http.StatusNotFound
	case wallet.AccountDeleted:
		return http.StatusGone
	case wallet.InsufficientBalance:
		return http.StatusUnprocessableEntity
	case wallet.Unauthorized:
		return http.StatusUnauthorized
	case wallet.InvalidSignature:
		return http.StatusForbidden
	case wallet.NetworkError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// RespondWithWalletError writes a typed error as a tagged failure body.
// Outside development the raw detail is stripped before serialization.
func RespondWithWalletError(c *gin.Context, err error, development bool) {
	var typed *wallet.Error
	if !errors.As(err, &typed) {
		typed = wallet.Translate(err)
	}
	body := typed
	if !development {
		body = typed.Sanitized()
	}
	resp := gin.H{
		"success":   false,
		"error":     body.Message,
		"errorCode": body.Kind,
	}
	if body.Details != "" {
		resp["details"] = body.Details
	}
	c.JSON(statusFor(typed.Kind), resp)
}
