package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus is the persisted state of a transaction record
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "PENDING"
	TransactionStatusCompleted TransactionStatus = "COMPLETED"
	TransactionStatusFailed    TransactionStatus = "FAILED"
	TransactionStatusCancelled TransactionStatus = "CANCELLED"
)

// Transaction is the persisted record of a committed money movement. It is
// created by the orchestrator once every check has passed and is never
// rewritten destructively afterwards.
type Transaction struct {
	ID          string          `json:"id" db:"id"`
	FromAccount string          `json:"from_account" db:"from_account"`
	ToAccount   string          `json:"to_account,omitempty" db:"to_account"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	Currency    string          `json:"currency" db:"currency"`
	Type        TransactionType `json:"type" db:"type"`
	Description string          `json:"description" db:"description"`
	UserID      string          `json:"user_id" db:"user_id"`
	IPAddress   string          `json:"ip_address" db:"ip_address"`

	// Balance snapshots taken immediately after the deltas were applied.
	// DestinationBalance is only meaningful for transfers and deposits.
	SourceBalance      decimal.Decimal `json:"source_balance" db:"source_balance"`
	DestinationBalance decimal.Decimal `json:"destination_balance" db:"destination_balance"`

	Status    TransactionStatus `json:"status" db:"status"`
	CreatedAt time.Time         `json:"created_at" db:"created_at"`
}

// ProcessStatus is the caller-visible outcome of a processing attempt
type ProcessStatus string

const (
	// ProcessStatusCompleted means balances were applied and the record persisted
	ProcessStatusCompleted ProcessStatus = "COMPLETED"
	// ProcessStatusPendingApproval means the request is well formed but deferred
	// for manual authorization; nothing was committed
	ProcessStatusPendingApproval ProcessStatus = "PENDING_APPROVAL"
	// ProcessStatusRejected means a business rule turned the request away;
	// nothing was committed
	ProcessStatusRejected ProcessStatus = "REJECTED"
)

// Rejection reason codes carried on rejected results
const (
	RejectionValidatorRejected    = "VALIDATOR_REJECTED"
	RejectionInsufficientFunds    = "INSUFFICIENT_FUNDS"
	RejectionDailyLimitExceeded   = "DAILY_LIMIT_EXCEEDED"
	RejectionMonthlyLimitExceeded = "MONTHLY_LIMIT_EXCEEDED"
	RejectionAccountNotFound      = "ACCOUNT_NOT_FOUND"
	RejectionAccountInactive      = "ACCOUNT_INACTIVE"
)

// ProcessResult is what a caller receives for every non-failing attempt:
// success with the committed transaction, a pending-approval marker, or a
// typed rejection. System failures travel on the error return instead.
type ProcessResult struct {
	Status      ProcessStatus       `json:"status"`
	Transaction *Transaction        `json:"transaction,omitempty"`
	Request     *TransactionRequest `json:"-"`
	ReasonCode  string              `json:"reason_code,omitempty"`
	Reason      string              `json:"reason,omitempty"`
}
