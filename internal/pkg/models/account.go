package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType classifies a bank account
type AccountType string

const (
	AccountTypeChecking   AccountType = "CHECKING"
	AccountTypeSavings    AccountType = "SAVINGS"
	AccountTypeBusiness   AccountType = "BUSINESS"
	AccountTypeInvestment AccountType = "INVESTMENT"
)

// AccountStatus is the lifecycle state of an account. Only ACTIVE accounts
// may participate in transactions.
type AccountStatus string

const (
	AccountStatusActive    AccountStatus = "ACTIVE"
	AccountStatusSuspended AccountStatus = "SUSPENDED"
	AccountStatusClosed    AccountStatus = "CLOSED"
	AccountStatusPending   AccountStatus = "PENDING"
)

// Account represents a bank account. The balance is owned by the account
// store; after any committed transaction it is never negative.
type Account struct {
	AccountNumber string          `json:"account_number" db:"account_number"`
	HolderID      string          `json:"holder_id" db:"holder_id"`
	Type          AccountType     `json:"type" db:"type"`
	Status        AccountStatus   `json:"status" db:"status"`
	Balance       decimal.Decimal `json:"balance" db:"balance"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
}

// IsActive reports whether the account may participate in transactions
func (a *Account) IsActive() bool {
	return a.Status == AccountStatusActive
}

// HasSufficientFunds reports whether the current balance covers amount
func (a *Account) HasSufficientFunds(amount decimal.Decimal) bool {
	return amount.GreaterThanOrEqual(decimal.Zero) && amount.LessThanOrEqual(a.Balance)
}

// BalanceDelta is a single balance adjustment to apply to an account.
// A negative amount debits the account, a positive amount credits it.
type BalanceDelta struct {
	AccountNumber string
	Amount        decimal.Decimal
}

// Inverse returns the compensating delta that undoes this one
func (d BalanceDelta) Inverse() BalanceDelta {
	return BalanceDelta{AccountNumber: d.AccountNumber, Amount: d.Amount.Neg()}
}
