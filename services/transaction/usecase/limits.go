package usecase

import (
	"context"
	"fmt"

	"github.com/nusabank/transaction-core/internal/pkg/models"
	"github.com/nusabank/transaction-core/services/transaction"
)

// checkLimits gates a request on the account's historical daily and monthly
// totals for the same transaction type. Totals are scoped to the source
// account. A non-positive configured limit disables that check.
func (uc *TransactionUC) checkLimits(ctx context.Context, req *models.TransactionRequest) error {
	amount := req.Amount()
	accountNumber := req.FromAccount()

	if limit := uc.cfg.Transaction.DailyLimit; limit.IsPositive() {
		dailyTotal, err := uc.transactionRepo.GetDailyTotal(ctx, accountNumber, req.Type())
		if err != nil {
			return fmt.Errorf("failed to read daily total: %w", err)
		}
		if dailyTotal.Add(amount).GreaterThan(limit) {
			return transaction.ErrDailyLimitExceeded
		}
	}

	if limit := uc.cfg.Transaction.MonthlyLimit; limit.IsPositive() {
		monthlyTotal, err := uc.transactionRepo.GetMonthlyTotal(ctx, accountNumber, req.Type())
		if err != nil {
			return fmt.Errorf("failed to read monthly total: %w", err)
		}
		if monthlyTotal.Add(amount).GreaterThan(limit) {
			return transaction.ErrMonthlyLimitExceeded
		}
	}

	return nil
}
