package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alvinthemax/hedera-wallet/internal/cqrs"
	"github.com/alvinthemax/hedera-wallet/internal/hbar"
	"github.com/alvinthemax/hedera-wallet/internal/middleware"
	"github.com/alvinthemax/hedera-wallet/internal/models"
)

// TransferCommander defines the write-side operations used by WalletHandler.
type TransferCommander interface {
	SendTransfer(cqrs.SendTransferCommand) (*models.TransferResult, error)
	EstimateFee(cqrs.EstimateFeeCommand) (*models.FeeEstimate, error)
}

// WalletQuerier defines the read-side operations used by WalletHandler.
type WalletQuerier interface {
	CheckBalance(cqrs.CheckBalanceQuery) (*models.AccountSnapshot, error)
	CheckAccountExists(cqrs.AccountExistsQuery) (*models.AccountDetails, error)
	CheckTransactionStatus(cqrs.TransactionStatusQuery) (*models.StatusRecord, error)
}

type WalletHandler struct {
	commands    TransferCommander
	queries     WalletQuerier
	development bool
}

type CheckBalanceRequest struct {
	PrivateKey string `json:"privateKey" validate:"required"`
}

type SendTransferRequest struct {
	PrivateKey     string  `json:"privateKey" validate:"required"`
	Recipient      string  `json:"recipient" validate:"required"`
	Amount         float64 `json:"amount" validate:"required,gt=0"`
	Memo           string  `json:"memo" validate:"max=100"`
	IdempotencyKey string  `json:"idempotencyKey"`
}

type EstimateFeeRequest struct {
	PrivateKey string  `json:"privateKey" validate:"required"`
	Amount     float64 `json:"amount" validate:"required,gt=0"`
}

func NewWalletHandler(commands TransferCommander, queries WalletQuerier, development bool) *WalletHandler {
	return &WalletHandler{commands: commands, queries: queries, development: development}
}

func (h *WalletHandler) CheckBalance(c *gin.Context) {
	var req CheckBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	snapshot, err := h.queries.CheckBalance(cqrs.CheckBalanceQuery{PrivateKey: req.PrivateKey})
	if err != nil {
		middleware.RespondWithWalletError(c, err, h.development)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

func (h *WalletHandler) SendTransfer(c *gin.Context) {
	var req SendTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	result, err := h.commands.SendTransfer(cqrs.SendTransferCommand{
		PrivateKey:     req.PrivateKey,
		Recipient:      req.Recipient,
		AmountHbar:     req.Amount,
		Memo:           req.Memo,
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		middleware.RespondWithWalletError(c, err, h.development)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *WalletHandler) EstimateFee(c *gin.Context) {
	var req EstimateFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	estimate, err := h.commands.EstimateFee(cqrs.EstimateFeeCommand{
		PrivateKey: req.PrivateKey,
		AmountHbar: req.Amount,
	})
	if err != nil {
		// Callers still get a usable number on failure.
		c.JSON(http.StatusBadRequest, gin.H{
			"success":      false,
			"error":        "Could not estimate transaction fee",
			"estimatedFee": hbar.FallbackEstimateHbar,
		})
		return
	}
	c.JSON(http.StatusOK, estimate)
}

func (h *WalletHandler) GetTransactionStatus(c *gin.Context) {
	record, err := h.queries.CheckTransactionStatus(cqrs.TransactionStatusQuery{
		TransactionID: c.Param("transactionId"),
	})
	if err != nil {
		middleware.RespondWithWalletError(c, err, h.development)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *WalletHandler) GetAccount(c *gin.Context) {
	details, err := h.queries.CheckAccountExists(cqrs.AccountExistsQuery{
		AccountID: c.Param("accountId"),
	})
	if err != nil {
		middleware.RespondWithWalletError(c, err, h.development)
		return
	}
	c.JSON(http.StatusOK, details)
}

// ValidateAccount is format-only: no ledger query is issued.
func (h *WalletHandler) ValidateAccount(c *gin.Context) {
	c.JSON(http.StatusOK, models.ValidateAccountIDFormat(c.Param("accountId")))
}
