package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nusabank/transaction-core/internal/pkg/logger"
)

func fastConfig() Config {
	return Config{
		MaxRetries: 3,
		BaseDelay:  time.Millisecond,
		MaxDelay:   5 * time.Millisecond,
		Multiplier: 2.0,
	}
}

func TestRetrier_SucceedsAfterFailures(t *testing.T) {
	r := New(fastConfig(), logger.NewTestLogger())

	calls := 0
	err := r.Execute(context.Background(), "connect", func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("connection refused")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetrier_ExhaustsAttempts(t *testing.T) {
	r := New(fastConfig(), logger.NewTestLogger())

	calls := 0
	err := r.Execute(context.Background(), "connect", func(ctx context.Context) error {
		calls++
		return errors.New("connection refused")
	})

	require.Error(t, err)
	assert.Equal(t, 4, calls)
	assert.Contains(t, err.Error(), "connect failed after 4 attempts")
}

func TestRetrier_StopsOnCancelledContext(t *testing.T) {
	r := New(fastConfig(), logger.NewTestLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := r.Execute(ctx, "connect", func(ctx context.Context) error {
		t.Fatal("function must not run with a cancelled context")
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
}
