package server

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/nusabank/transaction-core/internal/pkg/logger"
)

func TestNewGracefulServer(t *testing.T) {
	e := echo.New()
	gs := NewGracefulServer(e, logger.NewTestLogger(), 8080, 0)

	assert.NotNil(t, gs)
	assert.Equal(t, 30*time.Second, gs.shutdownTimeout)
}

func TestGracefulServer_Shutdown(t *testing.T) {
	e := echo.New()
	gs := NewGracefulServer(e, logger.NewTestLogger(), 0, time.Second)

	// Shutting down a server that never started should still succeed.
	assert.NoError(t, gs.Shutdown())
}

func TestShutdownManager(t *testing.T) {
	sm := NewShutdownManager(logger.NewTestLogger())

	var order []int
	sm.Register(func(ctx context.Context) error {
		order = append(order, 1)
		return nil
	})
	sm.Register(func(ctx context.Context) error {
		order = append(order, 2)
		return errors.New("cleanup failed")
	})
	sm.Register(func(ctx context.Context) error {
		order = append(order, 3)
		return nil
	})

	sm.Shutdown(context.Background())

	// A failing component must not stop the remaining cleanups.
	assert.Equal(t, []int{1, 2, 3}, order)
}
