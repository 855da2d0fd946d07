package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nusabank/transaction-core/internal/pkg/models"
	"github.com/nusabank/transaction-core/services/transaction"
)

func seedAccount(t *testing.T, repo *MemoryAccountRepo, number string, balance int64, status models.AccountStatus) {
	t.Helper()
	err := repo.Save(context.Background(), &models.Account{
		AccountNumber: number,
		Type:          models.AccountTypeChecking,
		Status:        status,
		Balance:       decimal.NewFromInt(balance),
	})
	require.NoError(t, err)
}

func TestMemoryAccountRepo_GetByAccountNumber(t *testing.T) {
	repo := NewMemoryAccountRepo()
	seedAccount(t, repo, "ACC0000001", 1000, models.AccountStatusActive)

	account, err := repo.GetByAccountNumber(context.Background(), "ACC0000001")
	require.NoError(t, err)
	assert.True(t, account.Balance.Equal(decimal.NewFromInt(1000)))

	// Mutating the returned copy must not touch the store.
	account.Balance = decimal.Zero
	stored, err := repo.GetByAccountNumber(context.Background(), "ACC0000001")
	require.NoError(t, err)
	assert.True(t, stored.Balance.Equal(decimal.NewFromInt(1000)))

	_, err = repo.GetByAccountNumber(context.Background(), "ACC9999999")
	assert.ErrorIs(t, err, transaction.ErrAccountNotFound)
}

func TestMemoryAccountRepo_ApplyDeltas_TransferConservesMoney(t *testing.T) {
	repo := NewMemoryAccountRepo()
	seedAccount(t, repo, "ACC0000001", 1000, models.AccountStatusActive)
	seedAccount(t, repo, "ACC0000002", 500, models.AccountStatusActive)

	balances, err := repo.ApplyDeltas(context.Background(),
		models.BalanceDelta{AccountNumber: "ACC0000001", Amount: decimal.NewFromInt(-250)},
		models.BalanceDelta{AccountNumber: "ACC0000002", Amount: decimal.NewFromInt(250)},
	)

	require.NoError(t, err)
	assert.True(t, balances["ACC0000001"].Equal(decimal.NewFromInt(750)))
	assert.True(t, balances["ACC0000002"].Equal(decimal.NewFromInt(750)))
}

func TestMemoryAccountRepo_ApplyDeltas_InsufficientFundsLeavesBalancesUntouched(t *testing.T) {
	repo := NewMemoryAccountRepo()
	seedAccount(t, repo, "ACC0000001", 100, models.AccountStatusActive)
	seedAccount(t, repo, "ACC0000002", 500, models.AccountStatusActive)

	_, err := repo.ApplyDeltas(context.Background(),
		models.BalanceDelta{AccountNumber: "ACC0000001", Amount: decimal.NewFromInt(-250)},
		models.BalanceDelta{AccountNumber: "ACC0000002", Amount: decimal.NewFromInt(250)},
	)
	assert.ErrorIs(t, err, transaction.ErrInsufficientFunds)

	source, err := repo.GetByAccountNumber(context.Background(), "ACC0000001")
	require.NoError(t, err)
	assert.True(t, source.Balance.Equal(decimal.NewFromInt(100)))

	dest, err := repo.GetByAccountNumber(context.Background(), "ACC0000002")
	require.NoError(t, err)
	assert.True(t, dest.Balance.Equal(decimal.NewFromInt(500)))
}

func TestMemoryAccountRepo_ApplyDeltas_InactiveAccount(t *testing.T) {
	repo := NewMemoryAccountRepo()
	seedAccount(t, repo, "ACC0000001", 1000, models.AccountStatusActive)
	seedAccount(t, repo, "ACC0000002", 500, models.AccountStatusSuspended)

	_, err := repo.ApplyDeltas(context.Background(),
		models.BalanceDelta{AccountNumber: "ACC0000001", Amount: decimal.NewFromInt(-100)},
		models.BalanceDelta{AccountNumber: "ACC0000002", Amount: decimal.NewFromInt(100)},
	)
	assert.ErrorIs(t, err, transaction.ErrAccountInactive)
}

func TestMemoryAccountRepo_ApplyDeltas_MissingAccount(t *testing.T) {
	repo := NewMemoryAccountRepo()
	seedAccount(t, repo, "ACC0000001", 1000, models.AccountStatusActive)

	_, err := repo.ApplyDeltas(context.Background(),
		models.BalanceDelta{AccountNumber: "ACC0000001", Amount: decimal.NewFromInt(-100)},
		models.BalanceDelta{AccountNumber: "ACC9999999", Amount: decimal.NewFromInt(100)},
	)
	assert.ErrorIs(t, err, transaction.ErrAccountNotFound)
}

func TestMemoryAccountRepo_ApplyDeltas_RepeatedAccountApplies(t *testing.T) {
	repo := NewMemoryAccountRepo()
	seedAccount(t, repo, "ACC0000001", 100, models.AccountStatusActive)

	done := make(chan struct{})
	var balances map[string]decimal.Decimal
	var err error
	go func() {
		defer close(done)
		balances, err = repo.ApplyDeltas(context.Background(),
			models.BalanceDelta{AccountNumber: "ACC0000001", Amount: decimal.NewFromInt(-10)},
			models.BalanceDelta{AccountNumber: "ACC0000001", Amount: decimal.NewFromInt(-10)},
		)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("ApplyDeltas did not return for a batch containing the same account twice")
	}

	require.NoError(t, err)
	assert.True(t, balances["ACC0000001"].Equal(decimal.NewFromInt(80)))

	account, err := repo.GetByAccountNumber(context.Background(), "ACC0000001")
	require.NoError(t, err)
	assert.True(t, account.Balance.Equal(decimal.NewFromInt(80)))
}

func TestMemoryAccountRepo_ApplyDeltas_RepeatedAccountInBatch(t *testing.T) {
	repo := NewMemoryAccountRepo()
	seedAccount(t, repo, "ACC0000001", 100, models.AccountStatusActive)

	// Two debits that are individually covered but not jointly.
	_, err := repo.ApplyDeltas(context.Background(),
		models.BalanceDelta{AccountNumber: "ACC0000001", Amount: decimal.NewFromInt(-80)},
		models.BalanceDelta{AccountNumber: "ACC0000001", Amount: decimal.NewFromInt(-80)},
	)
	assert.ErrorIs(t, err, transaction.ErrInsufficientFunds)

	account, err := repo.GetByAccountNumber(context.Background(), "ACC0000001")
	require.NoError(t, err)
	assert.True(t, account.Balance.Equal(decimal.NewFromInt(100)))
}

func TestMemoryAccountRepo_ConcurrentOpposingTransfers(t *testing.T) {
	repo := NewMemoryAccountRepo()
	seedAccount(t, repo, "ACC0000001", 1000, models.AccountStatusActive)
	seedAccount(t, repo, "ACC0000002", 500, models.AccountStatusActive)

	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			_, err := repo.ApplyDeltas(context.Background(),
				models.BalanceDelta{AccountNumber: "ACC0000001", Amount: decimal.NewFromInt(-1)},
				models.BalanceDelta{AccountNumber: "ACC0000002", Amount: decimal.NewFromInt(1)},
			)
			assert.NoError(t, err)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			_, err := repo.ApplyDeltas(context.Background(),
				models.BalanceDelta{AccountNumber: "ACC0000002", Amount: decimal.NewFromInt(-1)},
				models.BalanceDelta{AccountNumber: "ACC0000001", Amount: decimal.NewFromInt(1)},
			)
			assert.NoError(t, err)
		}
	}()
	wg.Wait()

	source, err := repo.GetByAccountNumber(context.Background(), "ACC0000001")
	require.NoError(t, err)
	dest, err := repo.GetByAccountNumber(context.Background(), "ACC0000002")
	require.NoError(t, err)

	// Equal numbers of opposing transfers cancel out; the total is conserved.
	assert.True(t, source.Balance.Equal(decimal.NewFromInt(1000)))
	assert.True(t, dest.Balance.Equal(decimal.NewFromInt(500)))
}

func TestMemoryTransactionRepo_SaveAndGetByID(t *testing.T) {
	repo := NewMemoryTransactionRepo()
	txn := &models.Transaction{
		ID:          "txn-1",
		FromAccount: "ACC0000001",
		Amount:      decimal.NewFromInt(100),
		Type:        models.TransactionTypePayment,
		Status:      models.TransactionStatusCompleted,
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, repo.Save(context.Background(), txn))

	stored, ok := repo.GetByID(context.Background(), "txn-1")
	require.True(t, ok)
	assert.Equal(t, txn.ID, stored.ID)
	assert.True(t, stored.Amount.Equal(decimal.NewFromInt(100)))

	_, ok = repo.GetByID(context.Background(), "txn-missing")
	assert.False(t, ok)
}

func TestMemoryTransactionRepo_Totals(t *testing.T) {
	repo := NewMemoryTransactionRepo()
	now := time.Now().UTC()
	records := []*models.Transaction{
		{ID: "t1", FromAccount: "ACC0000001", Amount: decimal.NewFromInt(100), Type: models.TransactionTypePayment, Status: models.TransactionStatusCompleted, CreatedAt: now},
		{ID: "t2", FromAccount: "ACC0000001", Amount: decimal.NewFromInt(50), Type: models.TransactionTypePayment, Status: models.TransactionStatusCompleted, CreatedAt: now},
		// Different type, different account, non-completed, and stale records
		// are all excluded from the payment totals.
		{ID: "t3", FromAccount: "ACC0000001", Amount: decimal.NewFromInt(999), Type: models.TransactionTypeDeposit, Status: models.TransactionStatusCompleted, CreatedAt: now},
		{ID: "t4", FromAccount: "ACC0000002", Amount: decimal.NewFromInt(999), Type: models.TransactionTypePayment, Status: models.TransactionStatusCompleted, CreatedAt: now},
		{ID: "t5", FromAccount: "ACC0000001", Amount: decimal.NewFromInt(999), Type: models.TransactionTypePayment, Status: models.TransactionStatusFailed, CreatedAt: now},
		{ID: "t6", FromAccount: "ACC0000001", Amount: decimal.NewFromInt(999), Type: models.TransactionTypePayment, Status: models.TransactionStatusCompleted, CreatedAt: now.AddDate(0, -2, 0)},
	}
	for _, txn := range records {
		require.NoError(t, repo.Save(context.Background(), txn))
	}

	daily, err := repo.GetDailyTotal(context.Background(), "ACC0000001", models.TransactionTypePayment)
	require.NoError(t, err)
	assert.True(t, daily.Equal(decimal.NewFromInt(150)))

	monthly, err := repo.GetMonthlyTotal(context.Background(), "ACC0000001", models.TransactionTypePayment)
	require.NoError(t, err)
	assert.True(t, monthly.Equal(decimal.NewFromInt(150)))
}
