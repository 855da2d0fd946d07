package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/nusabank/transaction-core/internal/pkg/models"
	"github.com/nusabank/transaction-core/services/transaction"
)

// processState tracks where a request is in its lifecycle. Transitions only
// move forward; REJECTED is reachable from any pre-commit state and FAILED
// only after balances were applied.
type processState string

const (
	stateReceived        processState = "RECEIVED"
	stateValidated       processState = "VALIDATED"
	stateAuthorized      processState = "AUTHORIZED"
	stateBalancesApplied processState = "BALANCES_APPLIED"
	statePersisted       processState = "PERSISTED"
	stateNotified        processState = "NOTIFIED"
	stateRejected        processState = "REJECTED"
	stateFailed          processState = "FAILED"
)

// ProcessTransaction runs a validated request through the processing state
// machine. It returns a ProcessResult for every business outcome (completed,
// pending approval, rejected); the error return is reserved for system
// failures, after which the account state has been left unchanged.
func (uc *TransactionUC) ProcessTransaction(ctx context.Context, req *models.TransactionRequest) (*models.ProcessResult, error) {
	log := uc.log.WithFields(logrus.Fields{
		"type":         req.Type(),
		"from_account": req.FromAccount(),
		"to_account":   req.ToAccount(),
		"amount":       req.Amount().String(),
		"currency":     req.Currency(),
	})
	log.WithField("state", stateReceived).Info("processing transaction request")

	// RECEIVED -> VALIDATED
	if err := uc.validator.Validate(ctx, req); err != nil {
		log.WithField("state", stateRejected).WithError(err).Info("request rejected by validator")
		return rejected(models.RejectionValidatorRejected, err.Error()), nil
	}
	log.WithField("state", stateValidated).Debug("business rules validated")

	// VALIDATED -> AUTHORIZED
	if req.RequiresApproval() {
		log.WithField("state", stateValidated).Info("large non-urgent transaction deferred for approval")
		return &models.ProcessResult{
			Status:  models.ProcessStatusPendingApproval,
			Request: req,
			Reason:  "transaction requires manual approval",
		}, nil
	}
	// An approval code, when required, is guaranteed present by construction.

	if err := uc.checkLimits(ctx, req); err != nil {
		switch {
		case errors.Is(err, transaction.ErrDailyLimitExceeded):
			log.WithField("state", stateRejected).Info("daily limit exceeded")
			return rejected(models.RejectionDailyLimitExceeded, err.Error()), nil
		case errors.Is(err, transaction.ErrMonthlyLimitExceeded):
			log.WithField("state", stateRejected).Info("monthly limit exceeded")
			return rejected(models.RejectionMonthlyLimitExceeded, err.Error()), nil
		default:
			return nil, fmt.Errorf("limit check failed: %w", err)
		}
	}
	log.WithField("state", stateAuthorized).Debug("transaction authorized")

	// AUTHORIZED -> BALANCES_APPLIED
	deltas, err := uc.planDeltas(ctx, req)
	if err != nil {
		if result, ok := rejectionFor(err); ok {
			log.WithField("state", stateRejected).WithError(err).Info("request rejected")
			return result, nil
		}
		return nil, fmt.Errorf("account lookup failed: %w", err)
	}

	balances, err := uc.accountRepo.ApplyDeltas(ctx, deltas...)
	if err != nil {
		// The store re-checks funds and status under its own lock, so a
		// concurrent debit can still surface a rejection here.
		if result, ok := rejectionFor(err); ok {
			log.WithField("state", stateRejected).WithError(err).Info("request rejected applying balances")
			return result, nil
		}
		return nil, fmt.Errorf("balance update failed: %w", err)
	}
	log.WithField("state", stateBalancesApplied).Debug("balances applied")

	txn := uc.buildTransaction(req, balances)

	// BALANCES_APPLIED -> PERSISTED
	if err := uc.transactionRepo.Save(ctx, txn); err != nil {
		return nil, uc.compensate(ctx, log, deltas, err)
	}
	log.WithFields(logrus.Fields{"state": statePersisted, "transaction_id": txn.ID}).Debug("transaction persisted")

	// PERSISTED -> NOTIFIED
	uc.notify(ctx, log, txn)
	log.WithFields(logrus.Fields{"state": stateNotified, "transaction_id": txn.ID}).Info("transaction completed")

	return &models.ProcessResult{
		Status:      models.ProcessStatusCompleted,
		Transaction: txn,
	}, nil
}

// planDeltas resolves the accounts a request touches, verifies they are
// active and funded, and produces the balance deltas to apply per type:
// DEPOSIT credits the destination, WITHDRAWAL and PAYMENT debit the source,
// REFUND credits the source, TRANSFER debits the source and credits the
// destination as one unit.
func (uc *TransactionUC) planDeltas(ctx context.Context, req *models.TransactionRequest) ([]models.BalanceDelta, error) {
	amount := req.Amount()

	switch req.Type() {
	case models.TransactionTypeDeposit:
		if _, err := uc.activeAccount(ctx, req.ToAccount()); err != nil {
			return nil, err
		}
		return []models.BalanceDelta{{AccountNumber: req.ToAccount(), Amount: amount}}, nil

	case models.TransactionTypeWithdrawal, models.TransactionTypePayment:
		source, err := uc.activeAccount(ctx, req.FromAccount())
		if err != nil {
			return nil, err
		}
		if !source.HasSufficientFunds(amount) {
			return nil, transaction.ErrInsufficientFunds
		}
		return []models.BalanceDelta{{AccountNumber: req.FromAccount(), Amount: amount.Neg()}}, nil

	case models.TransactionTypeRefund:
		if _, err := uc.activeAccount(ctx, req.FromAccount()); err != nil {
			return nil, err
		}
		return []models.BalanceDelta{{AccountNumber: req.FromAccount(), Amount: amount}}, nil

	case models.TransactionTypeTransfer:
		source, err := uc.activeAccount(ctx, req.FromAccount())
		if err != nil {
			return nil, err
		}
		if _, err := uc.activeAccount(ctx, req.ToAccount()); err != nil {
			return nil, err
		}
		if !source.HasSufficientFunds(amount) {
			return nil, transaction.ErrInsufficientFunds
		}
		return []models.BalanceDelta{
			{AccountNumber: req.FromAccount(), Amount: amount.Neg()},
			{AccountNumber: req.ToAccount(), Amount: amount},
		}, nil

	default:
		// Unreachable for requests built through the builder.
		return nil, fmt.Errorf("unsupported transaction type %q", req.Type())
	}
}

func (uc *TransactionUC) activeAccount(ctx context.Context, accountNumber string) (*models.Account, error) {
	if accountNumber == "" {
		return nil, transaction.ErrAccountNotFound
	}
	account, err := uc.accountRepo.GetByAccountNumber(ctx, accountNumber)
	if err != nil {
		return nil, err
	}
	if !account.IsActive() {
		return nil, transaction.ErrAccountInactive
	}
	return account, nil
}

func (uc *TransactionUC) buildTransaction(req *models.TransactionRequest, balances map[string]decimal.Decimal) *models.Transaction {
	txn := &models.Transaction{
		ID:          uuid.New().String(),
		FromAccount: req.FromAccount(),
		ToAccount:   req.ToAccount(),
		Amount:      req.Amount(),
		Currency:    req.Currency(),
		Type:        req.Type(),
		Description: req.Description(),
		UserID:      req.UserID(),
		IPAddress:   req.IPAddress(),
		Status:      models.TransactionStatusCompleted,
		CreatedAt:   time.Now().UTC(),
	}
	if balance, ok := balances[req.FromAccount()]; ok {
		txn.SourceBalance = balance
	}
	if balance, ok := balances[req.ToAccount()]; ok {
		txn.DestinationBalance = balance
	}
	return txn
}

// compensate reverts applied balance deltas after a persistence failure so
// balances and transaction history never diverge. The returned error reports
// a system failure the caller may retry; the core itself never retries.
func (uc *TransactionUC) compensate(ctx context.Context, log *logrus.Entry, deltas []models.BalanceDelta, saveErr error) error {
	inverse := make([]models.BalanceDelta, len(deltas))
	for i, d := range deltas {
		inverse[i] = d.Inverse()
	}

	if _, err := uc.accountRepo.ApplyDeltas(ctx, inverse...); err != nil {
		log.WithFields(logrus.Fields{"state": stateFailed}).
			WithError(err).
			Error("compensation failed after persistence error; balances and history may diverge")
		return fmt.Errorf("transaction persistence failed and compensation failed: %v (persistence: %w)", err, saveErr)
	}

	log.WithField("state", stateFailed).WithError(saveErr).Error("transaction persistence failed; balances compensated")
	return fmt.Errorf("transaction persistence failed: %w", saveErr)
}

// notify delivers the post-commit notifications. Failures are logged and
// never change the outcome of the already-committed transaction.
func (uc *TransactionUC) notify(ctx context.Context, log *logrus.Entry, txn *models.Transaction) {
	timeout := time.Duration(uc.cfg.Transaction.NotificationTimeout) * time.Second
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	notifyCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := uc.notifier.SendTransactionConfirmation(notifyCtx, txn); err != nil {
		log.WithError(err).Warn("failed to send transaction confirmation")
	}

	if txn.Amount.GreaterThan(uc.cfg.Transaction.LargeAmountAlert) {
		if err := uc.notifier.SendLargeTransactionAlert(notifyCtx, txn); err != nil {
			log.WithError(err).Warn("failed to send large transaction alert")
		}
	}
}

func rejected(code, reason string) *models.ProcessResult {
	return &models.ProcessResult{
		Status:     models.ProcessStatusRejected,
		ReasonCode: code,
		Reason:     reason,
	}
}

// rejectionFor maps store-level sentinel errors onto typed rejections.
// Anything else is a system failure and is passed through.
func rejectionFor(err error) (*models.ProcessResult, bool) {
	switch {
	case errors.Is(err, transaction.ErrAccountNotFound):
		return rejected(models.RejectionAccountNotFound, err.Error()), true
	case errors.Is(err, transaction.ErrAccountInactive):
		return rejected(models.RejectionAccountInactive, err.Error()), true
	case errors.Is(err, transaction.ErrInsufficientFunds):
		return rejected(models.RejectionInsufficientFunds, err.Error()), true
	default:
		return nil, false
	}
}
