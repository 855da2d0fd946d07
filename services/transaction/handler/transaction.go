package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/nusabank/transaction-core/internal/pkg/models"
	"github.com/nusabank/transaction-core/services/transaction"
)

// TransactionHandler exposes the transaction core over HTTP. It is thin
// delivery glue: all business rules live behind the use case.
type TransactionHandler struct {
	transactionUC transaction.TransactionUseCase
	accountRepo   transaction.AccountRepo
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionUC transaction.TransactionUseCase, accountRepo transaction.AccountRepo) *TransactionHandler {
	return &TransactionHandler{
		transactionUC: transactionUC,
		accountRepo:   accountRepo,
	}
}

type processTransactionRequest struct {
	FromAccount  string `json:"from_account"`
	ToAccount    string `json:"to_account"`
	Amount       string `json:"amount"`
	Currency     string `json:"currency"`
	Description  string `json:"description"`
	Type         string `json:"type"`
	Urgent       bool   `json:"urgent"`
	ApprovalCode string `json:"approval_code"`
	UserID       string `json:"user_id"`
	SessionID    string `json:"session_id"`
}

// ProcessTransaction handles transaction processing requests
func (h *TransactionHandler) ProcessTransaction(c echo.Context) error {
	var body processTransactionRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request payload"})
	}

	amount, err := decimal.NewFromString(body.Amount)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "amount must be a decimal number"})
	}

	req, err := models.NewTransactionRequestBuilder().
		FromAccount(body.FromAccount).
		ToAccount(body.ToAccount).
		Amount(amount).
		Currency(body.Currency).
		Description(body.Description).
		Type(models.TransactionType(body.Type)).
		Urgent(body.Urgent).
		ApprovalCode(body.ApprovalCode).
		UserID(body.UserID).
		IPAddress(c.RealIP()).
		UserAgent(c.Request().UserAgent()).
		SessionID(body.SessionID).
		Build()
	if err != nil {
		var validationErr *models.ValidationError
		if errors.As(err, &validationErr) {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": validationErr.Message,
				"field": validationErr.Field,
			})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	result, err := h.transactionUC.ProcessTransaction(c.Request().Context(), req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "transaction processing failed"})
	}

	switch result.Status {
	case models.ProcessStatusCompleted:
		return c.JSON(http.StatusCreated, result)
	case models.ProcessStatusPendingApproval:
		return c.JSON(http.StatusAccepted, result)
	default:
		return c.JSON(http.StatusUnprocessableEntity, result)
	}
}

// GetAccount handles account lookup requests
func (h *TransactionHandler) GetAccount(c echo.Context) error {
	accountNumber := c.Param("number")

	account, err := h.accountRepo.GetByAccountNumber(c.Request().Context(), accountNumber)
	if err != nil {
		if errors.Is(err, transaction.ErrAccountNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "account not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "account lookup failed"})
	}

	return c.JSON(http.StatusOK, account)
}
