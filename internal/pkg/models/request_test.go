package models

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBuilder() *TransactionRequestBuilder {
	return NewTransactionRequestBuilder().
		FromAccount("ACC0000001").
		Amount(decimal.NewFromInt(100)).
		Description("grocery payment").
		Type(TransactionTypePayment).
		UserID("user-123").
		IPAddress("203.0.113.10")
}

func TestTransactionRequestBuilder_Valid(t *testing.T) {
	req, err := validBuilder().Build()

	require.NoError(t, err)
	assert.Equal(t, "ACC0000001", req.FromAccount())
	assert.True(t, req.Amount().Equal(decimal.NewFromInt(100)))
	assert.Equal(t, DefaultCurrency, req.Currency())
	assert.Equal(t, TransactionTypePayment, req.Type())
	assert.False(t, req.Urgent())
}

func TestTransactionRequestBuilder_Validation(t *testing.T) {
	tests := []struct {
		name      string
		configure func(*TransactionRequestBuilder)
		wantField string
	}{
		{
			name:      "missing from account",
			configure: func(b *TransactionRequestBuilder) { b.FromAccount("") },
			wantField: "from_account",
		},
		{
			name:      "lowercase account number",
			configure: func(b *TransactionRequestBuilder) { b.FromAccount("acc0000001") },
			wantField: "from_account",
		},
		{
			name:      "account number wrong length",
			configure: func(b *TransactionRequestBuilder) { b.FromAccount("ACC001") },
			wantField: "from_account",
		},
		{
			name:      "zero amount",
			configure: func(b *TransactionRequestBuilder) { b.Amount(decimal.Zero) },
			wantField: "amount",
		},
		{
			name:      "negative amount",
			configure: func(b *TransactionRequestBuilder) { b.Amount(decimal.NewFromInt(-5)) },
			wantField: "amount",
		},
		{
			name:      "amount just over the maximum",
			configure: func(b *TransactionRequestBuilder) { b.Amount(decimal.RequireFromString("1000000.01")) },
			wantField: "amount",
		},
		{
			name:      "invalid currency code",
			configure: func(b *TransactionRequestBuilder) { b.Currency("rupiah") },
			wantField: "currency",
		},
		{
			name:      "blank description",
			configure: func(b *TransactionRequestBuilder) { b.Description("   ") },
			wantField: "description",
		},
		{
			name:      "description too long",
			configure: func(b *TransactionRequestBuilder) { b.Description(strings.Repeat("x", 256)) },
			wantField: "description",
		},
		{
			name:      "missing type",
			configure: func(b *TransactionRequestBuilder) { b.Type("") },
			wantField: "type",
		},
		{
			name:      "unknown type",
			configure: func(b *TransactionRequestBuilder) { b.Type("WIRE") },
			wantField: "type",
		},
		{
			name:      "blank user id",
			configure: func(b *TransactionRequestBuilder) { b.UserID("  ") },
			wantField: "user_id",
		},
		{
			name:      "missing ip address",
			configure: func(b *TransactionRequestBuilder) { b.IPAddress("") },
			wantField: "ip_address",
		},
		{
			name:      "malformed ip address",
			configure: func(b *TransactionRequestBuilder) { b.IPAddress("not-an-ip") },
			wantField: "ip_address",
		},
		{
			name: "transfer without destination",
			configure: func(b *TransactionRequestBuilder) {
				b.Type(TransactionTypeTransfer)
			},
			wantField: "to_account",
		},
		{
			name: "transfer to the same account",
			configure: func(b *TransactionRequestBuilder) {
				b.Type(TransactionTypeTransfer).ToAccount("ACC0000001")
			},
			wantField: "to_account",
		},
		{
			name: "large urgent without approval code",
			configure: func(b *TransactionRequestBuilder) {
				b.Amount(decimal.NewFromInt(10001)).Urgent(true)
			},
			wantField: "approval_code",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBuilder()
			tt.configure(b)

			req, err := b.Build()

			assert.Nil(t, req)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestTransactionRequestBuilder_MultibyteDescription(t *testing.T) {
	// 200 characters but well over 255 bytes; the limit counts characters.
	req, err := validBuilder().Description(strings.Repeat("é", 200)).Build()

	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("é", 200), req.Description())

	_, err = validBuilder().Description(strings.Repeat("é", 256)).Build()
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "description", vErr.Field)
}

func TestTransactionRequestBuilder_AmountBoundary(t *testing.T) {
	req, err := validBuilder().Amount(decimal.RequireFromString("1000000.00")).
		Urgent(true).ApprovalCode("APPR-12345").
		Build()

	require.NoError(t, err)
	assert.True(t, req.Amount().Equal(decimal.NewFromInt(1000000)))
}

func TestTransactionRequestBuilder_EmptyCurrencyKeepsDefault(t *testing.T) {
	req, err := validBuilder().Currency("").Build()

	require.NoError(t, err)
	assert.Equal(t, DefaultCurrency, req.Currency())
}

func TestTransactionRequest_ApprovalPredicates(t *testing.T) {
	largeDeferred, err := validBuilder().Amount(decimal.NewFromInt(10001)).Build()
	require.NoError(t, err)
	assert.True(t, largeDeferred.RequiresApproval())
	assert.False(t, largeDeferred.RequiresApprovalCode())

	largeUrgent, err := validBuilder().Amount(decimal.NewFromInt(10001)).
		Urgent(true).ApprovalCode("APPR-12345").
		Build()
	require.NoError(t, err)
	assert.False(t, largeUrgent.RequiresApproval())
	assert.True(t, largeUrgent.RequiresApprovalCode())

	atThreshold, err := validBuilder().Amount(decimal.NewFromInt(10000)).Build()
	require.NoError(t, err)
	assert.False(t, atThreshold.RequiresApproval())
	assert.False(t, atThreshold.RequiresApprovalCode())
}

func TestTransactionRequest_TransferToDistinctAccount(t *testing.T) {
	req, err := validBuilder().
		Type(TransactionTypeTransfer).
		ToAccount("ACC0000002").
		Build()

	require.NoError(t, err)
	assert.Equal(t, "ACC0000002", req.ToAccount())
}

func TestBalanceDelta_Inverse(t *testing.T) {
	debit := BalanceDelta{AccountNumber: "ACC0000001", Amount: decimal.NewFromInt(-250)}
	credit := debit.Inverse()

	assert.Equal(t, debit.AccountNumber, credit.AccountNumber)
	assert.True(t, debit.Amount.Add(credit.Amount).IsZero())
}
