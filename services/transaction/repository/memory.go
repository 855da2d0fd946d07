package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nusabank/transaction-core/internal/pkg/models"
	"github.com/nusabank/transaction-core/services/transaction"
)

// MemoryAccountRepo is an in-memory account store used by tests and local
// bootstrap. Each account carries its own lock; ApplyDeltas acquires locks in
// ascending account-number order so opposing transfers between the same pair
// of accounts cannot deadlock.
type MemoryAccountRepo struct {
	mu       sync.RWMutex
	accounts map[string]*memoryAccount
}

type memoryAccount struct {
	mu      sync.Mutex
	account models.Account
}

// NewMemoryAccountRepo creates an empty in-memory account repository
func NewMemoryAccountRepo() *MemoryAccountRepo {
	return &MemoryAccountRepo{accounts: make(map[string]*memoryAccount)}
}

// GetByAccountNumber returns a copy of the stored account
func (r *MemoryAccountRepo) GetByAccountNumber(ctx context.Context, accountNumber string) (*models.Account, error) {
	r.mu.RLock()
	entry, ok := r.accounts[accountNumber]
	r.mu.RUnlock()
	if !ok {
		return nil, transaction.ErrAccountNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	account := entry.account
	return &account, nil
}

// Save creates or replaces an account record
func (r *MemoryAccountRepo) Save(ctx context.Context, account *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry, ok := r.accounts[account.AccountNumber]; ok {
		entry.mu.Lock()
		entry.account = *account
		entry.mu.Unlock()
		return nil
	}
	r.accounts[account.AccountNumber] = &memoryAccount{account: *account}
	return nil
}

// ApplyDeltas applies the batch atomically: all account locks are held for
// the duration, every precondition is checked before the first mutation, and
// a failure leaves every balance untouched.
func (r *MemoryAccountRepo) ApplyDeltas(ctx context.Context, deltas ...models.BalanceDelta) (map[string]decimal.Decimal, error) {
	ordered := make([]models.BalanceDelta, len(deltas))
	copy(ordered, deltas)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].AccountNumber < ordered[j].AccountNumber
	})

	// A batch may carry several deltas for the same account; each account's
	// lock must still be taken exactly once.
	r.mu.RLock()
	byNumber := make(map[string]*memoryAccount, len(ordered))
	entries := make([]*memoryAccount, 0, len(ordered))
	for _, d := range ordered {
		if _, ok := byNumber[d.AccountNumber]; ok {
			continue
		}
		entry, ok := r.accounts[d.AccountNumber]
		if !ok {
			r.mu.RUnlock()
			return nil, transaction.ErrAccountNotFound
		}
		byNumber[d.AccountNumber] = entry
		entries = append(entries, entry)
	}
	r.mu.RUnlock()

	for _, entry := range entries {
		entry.mu.Lock()
	}
	defer func() {
		for _, entry := range entries {
			entry.mu.Unlock()
		}
	}()

	// Precondition pass before any mutation.
	pending := make(map[string]decimal.Decimal, len(byNumber))
	for _, d := range ordered {
		account := &byNumber[d.AccountNumber].account
		if !account.IsActive() {
			return nil, transaction.ErrAccountInactive
		}
		next := account.Balance
		if prior, ok := pending[d.AccountNumber]; ok {
			next = prior
		}
		next = next.Add(d.Amount)
		if next.IsNegative() {
			return nil, transaction.ErrInsufficientFunds
		}
		pending[d.AccountNumber] = next
	}

	now := time.Now().UTC()
	balances := make(map[string]decimal.Decimal, len(pending))
	for _, entry := range entries {
		account := &entry.account
		account.Balance = pending[account.AccountNumber]
		account.UpdatedAt = now
		balances[account.AccountNumber] = account.Balance
	}
	return balances, nil
}

// MemoryTransactionRepo is an in-memory transaction store with aggregate
// totals, used by tests and local bootstrap.
type MemoryTransactionRepo struct {
	mu           sync.RWMutex
	transactions map[string]*models.Transaction
}

// NewMemoryTransactionRepo creates an empty in-memory transaction repository
func NewMemoryTransactionRepo() *MemoryTransactionRepo {
	return &MemoryTransactionRepo{transactions: make(map[string]*models.Transaction)}
}

// Save stores a transaction record
func (r *MemoryTransactionRepo) Save(ctx context.Context, txn *models.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *txn
	r.transactions[txn.ID] = &stored
	return nil
}

// GetByID returns a stored transaction record
func (r *MemoryTransactionRepo) GetByID(ctx context.Context, id string) (*models.Transaction, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	txn, ok := r.transactions[id]
	if !ok {
		return nil, false
	}
	copied := *txn
	return &copied, true
}

// GetDailyTotal sums completed transactions for the account and type since
// the start of the current UTC day
func (r *MemoryTransactionRepo) GetDailyTotal(ctx context.Context, accountNumber string, txType models.TransactionType) (decimal.Decimal, error) {
	now := time.Now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return r.totalSince(accountNumber, txType, dayStart), nil
}

// GetMonthlyTotal sums completed transactions for the account and type since
// the start of the current UTC month
func (r *MemoryTransactionRepo) GetMonthlyTotal(ctx context.Context, accountNumber string, txType models.TransactionType) (decimal.Decimal, error) {
	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return r.totalSince(accountNumber, txType, monthStart), nil
}

func (r *MemoryTransactionRepo) totalSince(accountNumber string, txType models.TransactionType, since time.Time) decimal.Decimal {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := decimal.Zero
	for _, txn := range r.transactions {
		if txn.FromAccount != accountNumber || txn.Type != txType {
			continue
		}
		if txn.Status != models.TransactionStatusCompleted {
			continue
		}
		if txn.CreatedAt.Before(since) {
			continue
		}
		total = total.Add(txn.Amount)
	}
	return total
}
