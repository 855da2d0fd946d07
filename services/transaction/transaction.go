package transaction

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/nusabank/transaction-core/internal/pkg/models"
)

// AccountRepo defines the interface for account store operations
type AccountRepo interface {
	// GetByAccountNumber returns the account or ErrAccountNotFound
	GetByAccountNumber(ctx context.Context, accountNumber string) (*models.Account, error)
	// Save creates or replaces an account record (provisioning, not balance movement)
	Save(ctx context.Context, account *models.Account) error
	// ApplyDeltas applies one or more balance adjustments as a single atomic
	// unit: either every delta is applied or none is visible. A debit that
	// would take a balance below zero fails the whole batch with
	// ErrInsufficientFunds. Implementations must serialize concurrent calls
	// touching the same account, acquiring per-account locks in ascending
	// account-number order. Returns the post-application balances keyed by
	// account number.
	ApplyDeltas(ctx context.Context, deltas ...models.BalanceDelta) (map[string]decimal.Decimal, error)
}

// TransactionRepo defines the interface for transaction store operations
type TransactionRepo interface {
	Save(ctx context.Context, txn *models.Transaction) error
	// GetDailyTotal returns the sum of completed transactions for the account
	// and type since the start of the current day (UTC)
	GetDailyTotal(ctx context.Context, accountNumber string, txType models.TransactionType) (decimal.Decimal, error)
	// GetMonthlyTotal returns the sum of completed transactions for the
	// account and type since the start of the current month (UTC)
	GetMonthlyTotal(ctx context.Context, accountNumber string, txType models.TransactionType) (decimal.Decimal, error)
}

// TransactionValidator checks business rules before a request is processed.
// A nil return means the request passed; a non-nil error is surfaced to the
// caller unchanged as the rejection reason.
type TransactionValidator interface {
	Validate(ctx context.Context, req *models.TransactionRequest) error
}

// Notifier delivers post-commit notifications. Calls are best-effort: a
// failure here never rolls back a committed transaction.
type Notifier interface {
	SendTransactionConfirmation(ctx context.Context, txn *models.Transaction) error
	SendLargeTransactionAlert(ctx context.Context, txn *models.Transaction) error
}

// TransactionUseCase defines the interface for the transaction orchestrator
type TransactionUseCase interface {
	ProcessTransaction(ctx context.Context, req *models.TransactionRequest) (*models.ProcessResult, error)
}
