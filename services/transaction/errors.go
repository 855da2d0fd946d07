package transaction

import "errors"

// Business rejections. These never leak store implementation detail and are
// mapped to rejection reason codes by the orchestrator.
var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrAccountInactive      = errors.New("account is not active")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrDailyLimitExceeded   = errors.New("daily transaction limit exceeded")
	ErrMonthlyLimitExceeded = errors.New("monthly transaction limit exceeded")
)
