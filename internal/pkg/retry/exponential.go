package retry

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/nusabank/transaction-core/internal/pkg/logger"
)

// Config holds retry configuration
type Config struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
	Multiplier float64
	Jitter     bool
}

// DefaultConfig returns the retry configuration used for startup dependencies
func DefaultConfig() Config {
	return Config{
		MaxRetries: 5,
		BaseDelay:  200 * time.Millisecond,
		MaxDelay:   10 * time.Second,
		Multiplier: 2.0,
		Jitter:     true,
	}
}

// Retrier executes functions with exponential backoff between attempts
type Retrier struct {
	config Config
	log    *logger.AppLogger
}

// New creates a retrier with the given configuration
func New(config Config, log *logger.AppLogger) *Retrier {
	return &Retrier{config: config, log: log}
}

// NewWithDefaults creates a retrier with the default configuration
func NewWithDefaults(log *logger.AppLogger) *Retrier {
	return New(DefaultConfig(), log)
}

// Execute runs fn until it succeeds, the attempts are exhausted, or the
// context is cancelled
func (r *Retrier) Execute(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt <= r.config.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := fn(ctx)
		if err == nil {
			if attempt > 0 {
				r.log.WithFields(logrus.Fields{
					"operation": name,
					"attempt":   attempt + 1,
				}).Info("operation succeeded after retries")
			}
			return nil
		}
		lastErr = err

		if attempt == r.config.MaxRetries {
			break
		}

		delay := r.calculateDelay(attempt)
		r.log.WithFields(logrus.Fields{
			"operation": name,
			"attempt":   attempt + 1,
			"delay_ms":  delay.Milliseconds(),
		}).WithError(err).Warn("operation failed, retrying")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", name, r.config.MaxRetries+1, lastErr)
}

func (r *Retrier) calculateDelay(attempt int) time.Duration {
	delay := float64(r.config.BaseDelay) * math.Pow(r.config.Multiplier, float64(attempt))
	if delay > float64(r.config.MaxDelay) {
		delay = float64(r.config.MaxDelay)
	}
	if r.config.Jitter {
		delay += delay * 0.1 * rand.Float64()
	}
	return time.Duration(delay)
}
