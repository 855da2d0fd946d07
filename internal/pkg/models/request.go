package models

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// TransactionType identifies the kind of money movement being requested
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "DEPOSIT"
	TransactionTypeWithdrawal TransactionType = "WITHDRAWAL"
	TransactionTypeTransfer   TransactionType = "TRANSFER"
	TransactionTypePayment    TransactionType = "PAYMENT"
	TransactionTypeRefund     TransactionType = "REFUND"
)

// DefaultCurrency is applied by the builder when no currency is supplied
const DefaultCurrency = "IDR"

var (
	accountNumberPattern = regexp.MustCompile(`^[A-Z0-9]{10}$`)
	currencyPattern      = regexp.MustCompile(`^[A-Z]{3}$`)
	ipAddressPattern     = regexp.MustCompile(`^(?:[0-9]{1,3}\.){3}[0-9]{1,3}$`)
)

var (
	maxTransactionAmount = decimal.NewFromInt(1000000)
	approvalThreshold    = decimal.NewFromInt(10000)
)

// ValidationError describes a single field-level violation found while
// building a TransactionRequest
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// TransactionRequest is an immutable, validated description of a requested
// money movement. Instances are only obtainable through the builder's Build
// call, so a request that exists is a request that passed validation.
type TransactionRequest struct {
	fromAccount  string
	toAccount    string
	amount       decimal.Decimal
	currency     string
	description  string
	txType       TransactionType
	urgent       bool
	approvalCode string
	userID       string
	ipAddress    string
	userAgent    string
	sessionID    string
}

func (r *TransactionRequest) FromAccount() string { return r.fromAccount }

func (r *TransactionRequest) ToAccount() string { return r.toAccount }

func (r *TransactionRequest) Amount() decimal.Decimal { return r.amount }

func (r *TransactionRequest) Currency() string { return r.currency }

func (r *TransactionRequest) Description() string { return r.description }

func (r *TransactionRequest) Type() TransactionType { return r.txType }

func (r *TransactionRequest) Urgent() bool { return r.urgent }

func (r *TransactionRequest) ApprovalCode() string { return r.approvalCode }

func (r *TransactionRequest) UserID() string { return r.userID }

func (r *TransactionRequest) IPAddress() string { return r.ipAddress }

func (r *TransactionRequest) UserAgent() string { return r.userAgent }

func (r *TransactionRequest) SessionID() string { return r.sessionID }

// RequiresApproval reports whether this request must be routed to a deferred
// manual approval path instead of being committed immediately: large amount
// and not flagged urgent.
func (r *TransactionRequest) RequiresApproval() bool {
	return r.amount.GreaterThan(approvalThreshold) && !r.urgent
}

// RequiresApprovalCode reports whether an out-of-band approval code must
// already be attached: large amount and flagged urgent. Its absence is a
// construction failure, never an orchestration failure.
func (r *TransactionRequest) RequiresApprovalCode() bool {
	return r.amount.GreaterThan(approvalThreshold) && r.urgent
}

func (r *TransactionRequest) String() string {
	return fmt.Sprintf("TransactionRequest{type=%s, amount=%s %s, from=%s, to=%s, urgent=%t}",
		r.txType, r.amount, r.currency, r.fromAccount, r.toAccount, r.urgent)
}

// TransactionRequestBuilder assembles a TransactionRequest through fluent
// setters. Build runs full validation and either returns a valid request or
// the first violation it finds.
type TransactionRequestBuilder struct {
	req TransactionRequest
}

// NewTransactionRequestBuilder creates a builder with the default currency set
func NewTransactionRequestBuilder() *TransactionRequestBuilder {
	return &TransactionRequestBuilder{
		req: TransactionRequest{currency: DefaultCurrency},
	}
}

func (b *TransactionRequestBuilder) FromAccount(accountNumber string) *TransactionRequestBuilder {
	b.req.fromAccount = accountNumber
	return b
}

func (b *TransactionRequestBuilder) ToAccount(accountNumber string) *TransactionRequestBuilder {
	b.req.toAccount = accountNumber
	return b
}

func (b *TransactionRequestBuilder) Amount(amount decimal.Decimal) *TransactionRequestBuilder {
	b.req.amount = amount
	return b
}

func (b *TransactionRequestBuilder) Currency(currency string) *TransactionRequestBuilder {
	if currency != "" {
		b.req.currency = currency
	}
	return b
}

func (b *TransactionRequestBuilder) Description(description string) *TransactionRequestBuilder {
	b.req.description = description
	return b
}

func (b *TransactionRequestBuilder) Type(txType TransactionType) *TransactionRequestBuilder {
	b.req.txType = txType
	return b
}

func (b *TransactionRequestBuilder) Urgent(urgent bool) *TransactionRequestBuilder {
	b.req.urgent = urgent
	return b
}

func (b *TransactionRequestBuilder) ApprovalCode(code string) *TransactionRequestBuilder {
	b.req.approvalCode = code
	return b
}

func (b *TransactionRequestBuilder) UserID(userID string) *TransactionRequestBuilder {
	b.req.userID = userID
	return b
}

func (b *TransactionRequestBuilder) IPAddress(ipAddress string) *TransactionRequestBuilder {
	b.req.ipAddress = ipAddress
	return b
}

func (b *TransactionRequestBuilder) UserAgent(userAgent string) *TransactionRequestBuilder {
	b.req.userAgent = userAgent
	return b
}

func (b *TransactionRequestBuilder) SessionID(sessionID string) *TransactionRequestBuilder {
	b.req.sessionID = sessionID
	return b
}

// Build validates the assembled request and returns it. Any violation fails
// the whole construction; no partially-valid request escapes.
func (b *TransactionRequestBuilder) Build() (*TransactionRequest, error) {
	req := b.req

	if err := validateAccountNumber(req.fromAccount, "from_account"); err != nil {
		return nil, err
	}
	if err := validateAmount(req.amount); err != nil {
		return nil, err
	}
	if err := validateCurrency(req.currency); err != nil {
		return nil, err
	}
	if err := validateDescription(req.description); err != nil {
		return nil, err
	}
	if req.txType == "" {
		return nil, &ValidationError{Field: "type", Message: "transaction type is required"}
	}
	switch req.txType {
	case TransactionTypeDeposit, TransactionTypeWithdrawal, TransactionTypeTransfer,
		TransactionTypePayment, TransactionTypeRefund:
	default:
		return nil, &ValidationError{Field: "type", Message: fmt.Sprintf("unsupported transaction type %q", req.txType)}
	}
	if strings.TrimSpace(req.userID) == "" {
		return nil, &ValidationError{Field: "user_id", Message: "user ID is required"}
	}
	if err := validateIPAddress(req.ipAddress); err != nil {
		return nil, err
	}

	if req.txType == TransactionTypeTransfer {
		if err := validateAccountNumber(req.toAccount, "to_account"); err != nil {
			return nil, err
		}
		if req.fromAccount == req.toAccount {
			return nil, &ValidationError{Field: "to_account", Message: "cannot transfer to the same account"}
		}
	}

	if req.RequiresApprovalCode() && strings.TrimSpace(req.approvalCode) == "" {
		return nil, &ValidationError{Field: "approval_code", Message: "approval code required for large urgent transactions"}
	}

	return &req, nil
}

func validateAccountNumber(accountNumber, field string) error {
	if accountNumber == "" {
		return &ValidationError{Field: field, Message: "account number is required"}
	}
	if !accountNumberPattern.MatchString(accountNumber) {
		return &ValidationError{Field: field, Message: "account number must be 10 uppercase alphanumeric characters"}
	}
	return nil
}

func validateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return &ValidationError{Field: "amount", Message: "amount must be positive"}
	}
	if amount.GreaterThan(maxTransactionAmount) {
		return &ValidationError{Field: "amount", Message: "amount cannot exceed 1,000,000"}
	}
	return nil
}

func validateCurrency(currency string) error {
	if currency == "" {
		return &ValidationError{Field: "currency", Message: "currency is required"}
	}
	if !currencyPattern.MatchString(currency) {
		return &ValidationError{Field: "currency", Message: "currency must be a 3-letter ISO code"}
	}
	return nil
}

func validateDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return &ValidationError{Field: "description", Message: "description is required"}
	}
	if utf8.RuneCountInString(description) > 255 {
		return &ValidationError{Field: "description", Message: "description cannot exceed 255 characters"}
	}
	return nil
}

func validateIPAddress(ipAddress string) error {
	if ipAddress == "" {
		return &ValidationError{Field: "ip_address", Message: "IP address is required"}
	}
	if !ipAddressPattern.MatchString(ipAddress) {
		return &ValidationError{Field: "ip_address", Message: "invalid IP address format"}
	}
	return nil
}
