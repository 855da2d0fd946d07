package usecase

import (
	"github.com/nusabank/transaction-core/internal/pkg/logger"
	"github.com/nusabank/transaction-core/internal/pkg/models"
	"github.com/nusabank/transaction-core/services/transaction"
)

// TransactionUC implements the transaction.TransactionUseCase interface. It
// is constructed once with its collaborators and holds no mutable state of
// its own; every request is processed independently.
type TransactionUC struct {
	cfg             *models.Config
	accountRepo     transaction.AccountRepo
	transactionRepo transaction.TransactionRepo
	validator       transaction.TransactionValidator
	notifier        transaction.Notifier
	log             *logger.AppLogger
}

// NewTransactionUC creates a new transaction orchestrator
func NewTransactionUC(
	cfg *models.Config,
	accountRepo transaction.AccountRepo,
	transactionRepo transaction.TransactionRepo,
	validator transaction.TransactionValidator,
	notifier transaction.Notifier,
	log *logger.AppLogger,
) *TransactionUC {
	return &TransactionUC{
		cfg:             cfg,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		validator:       validator,
		notifier:        notifier,
		log:             log,
	}
}
