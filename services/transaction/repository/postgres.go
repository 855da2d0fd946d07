package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/nusabank/transaction-core/internal/pkg/models"
	"github.com/nusabank/transaction-core/services/transaction"
)

// PostgresAccountRepo is the production account store. Balance movements are
// conditional updates guarded by the account row lock, so concurrent debits
// and credits against the same account never lose an update.
type PostgresAccountRepo struct {
	db *sqlx.DB
}

// NewPostgresAccountRepo creates a new postgres-backed account repository
func NewPostgresAccountRepo(db *sqlx.DB) *PostgresAccountRepo {
	return &PostgresAccountRepo{db: db}
}

// GetByAccountNumber retrieves an account by its account number
func (r *PostgresAccountRepo) GetByAccountNumber(ctx context.Context, accountNumber string) (*models.Account, error) {
	query := `
		SELECT account_number, holder_id, type, status, balance, created_at, updated_at
		FROM accounts
		WHERE account_number = $1
	`

	var account models.Account
	if err := r.db.GetContext(ctx, &account, query, accountNumber); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, transaction.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

// Save creates or replaces an account record
func (r *PostgresAccountRepo) Save(ctx context.Context, account *models.Account) error {
	now := time.Now().UTC()
	if account.CreatedAt.IsZero() {
		account.CreatedAt = now
	}
	account.UpdatedAt = now

	query := `
		INSERT INTO accounts (account_number, holder_id, type, status, balance, created_at, updated_at)
		VALUES (:account_number, :holder_id, :type, :status, :balance, :created_at, :updated_at)
		ON CONFLICT (account_number) DO UPDATE SET
			holder_id = EXCLUDED.holder_id,
			type = EXCLUDED.type,
			status = EXCLUDED.status,
			balance = EXCLUDED.balance,
			updated_at = EXCLUDED.updated_at
	`
	if _, err := r.db.NamedExecContext(ctx, query, account); err != nil {
		return fmt.Errorf("failed to save account: %w", err)
	}
	return nil
}

// ApplyDeltas applies the batch inside a single database transaction. Rows
// are updated in ascending account-number order so concurrent batches take
// row locks in the same order. The balance condition rides on the UPDATE
// itself; a batch that cannot fully apply is rolled back.
func (r *PostgresAccountRepo) ApplyDeltas(ctx context.Context, deltas ...models.BalanceDelta) (map[string]decimal.Decimal, error) {
	ordered := make([]models.BalanceDelta, len(deltas))
	copy(ordered, deltas)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].AccountNumber < ordered[j].AccountNumber
	})

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	update := `
		UPDATE accounts
		SET balance = balance + $2, updated_at = $3
		WHERE account_number = $1
		  AND status = $4
		  AND balance + $2 >= 0
		RETURNING balance
	`

	now := time.Now().UTC()
	balances := make(map[string]decimal.Decimal, len(ordered))
	for _, d := range ordered {
		var balance decimal.Decimal
		err := tx.QueryRowxContext(ctx, update, d.AccountNumber, d.Amount, now, models.AccountStatusActive).Scan(&balance)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, r.classifyRejection(ctx, tx, d)
			}
			return nil, fmt.Errorf("failed to update balance: %w", err)
		}
		balances[d.AccountNumber] = balance
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit balance update: %w", err)
	}
	return balances, nil
}

// classifyRejection distinguishes why a conditional update matched no row
func (r *PostgresAccountRepo) classifyRejection(ctx context.Context, tx *sqlx.Tx, d models.BalanceDelta) error {
	var status models.AccountStatus
	err := tx.QueryRowxContext(ctx,
		`SELECT status FROM accounts WHERE account_number = $1`, d.AccountNumber).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return transaction.ErrAccountNotFound
		}
		return fmt.Errorf("failed to inspect account: %w", err)
	}
	if status != models.AccountStatusActive {
		return transaction.ErrAccountInactive
	}
	return transaction.ErrInsufficientFunds
}

// PostgresTransactionRepo is the production transaction store. Daily and
// monthly aggregates optionally go through a short-TTL cache.
type PostgresTransactionRepo struct {
	db    *sqlx.DB
	cache *AggregateCache
}

// NewPostgresTransactionRepo creates a new postgres-backed transaction
// repository. cache may be nil.
func NewPostgresTransactionRepo(db *sqlx.DB, cache *AggregateCache) *PostgresTransactionRepo {
	return &PostgresTransactionRepo{db: db, cache: cache}
}

// Save persists a transaction record
func (r *PostgresTransactionRepo) Save(ctx context.Context, txn *models.Transaction) error {
	query := `
		INSERT INTO transactions (id, from_account, to_account, amount, currency, type,
			description, user_id, ip_address, source_balance, destination_balance,
			status, created_at
		) VALUES (:id, :from_account, :to_account, :amount, :currency, :type,
			:description, :user_id, :ip_address, :source_balance, :destination_balance,
			:status, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, txn); err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	if r.cache != nil {
		r.cache.Invalidate(ctx, txn.FromAccount, txn.Type)
	}
	return nil
}

// GetDailyTotal returns the completed-transaction total for the account and
// type since the start of the current UTC day
func (r *PostgresTransactionRepo) GetDailyTotal(ctx context.Context, accountNumber string, txType models.TransactionType) (decimal.Decimal, error) {
	now := time.Now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return r.totalSince(ctx, periodDaily, accountNumber, txType, dayStart)
}

// GetMonthlyTotal returns the completed-transaction total for the account and
// type since the start of the current UTC month
func (r *PostgresTransactionRepo) GetMonthlyTotal(ctx context.Context, accountNumber string, txType models.TransactionType) (decimal.Decimal, error) {
	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return r.totalSince(ctx, periodMonthly, accountNumber, txType, monthStart)
}

func (r *PostgresTransactionRepo) totalSince(ctx context.Context, period string, accountNumber string, txType models.TransactionType, since time.Time) (decimal.Decimal, error) {
	if r.cache != nil {
		if total, ok := r.cache.Get(ctx, period, accountNumber, txType); ok {
			return total, nil
		}
	}

	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE from_account = $1 AND type = $2 AND status = $3 AND created_at >= $4
	`

	var total decimal.Decimal
	err := r.db.QueryRowxContext(ctx, query, accountNumber, txType, models.TransactionStatusCompleted, since).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum transactions: %w", err)
	}

	if r.cache != nil {
		r.cache.Set(ctx, period, accountNumber, txType, total)
	}
	return total, nil
}
