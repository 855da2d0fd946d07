package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nusabank/transaction-core/internal/pkg/database"
	"github.com/nusabank/transaction-core/internal/pkg/logger"
	"github.com/nusabank/transaction-core/internal/pkg/models"
)

const (
	periodDaily   = "daily"
	periodMonthly = "monthly"

	aggregateCacheTTL = time.Minute
)

// AggregateCache keeps recently computed daily/monthly totals in Redis so
// the limit gate does not hit the database on every request. Entries are
// short lived and invalidated whenever a new transaction lands for the
// account and type. Cache errors degrade to a miss.
type AggregateCache struct {
	client *database.RedisClient
	log    *logger.AppLogger
}

// NewAggregateCache creates a new aggregate total cache
func NewAggregateCache(client *database.RedisClient, log *logger.AppLogger) *AggregateCache {
	return &AggregateCache{client: client, log: log}
}

func aggregateKey(period, accountNumber string, txType models.TransactionType) string {
	return fmt.Sprintf("txn:agg:%s:%s:%s", period, accountNumber, txType)
}

// Get returns a cached total, reporting whether the key was present
func (c *AggregateCache) Get(ctx context.Context, period, accountNumber string, txType models.TransactionType) (decimal.Decimal, bool) {
	raw, err := c.client.Get(ctx, aggregateKey(period, accountNumber, txType))
	if err != nil {
		return decimal.Zero, false
	}
	total, err := decimal.NewFromString(raw)
	if err != nil {
		c.log.WithError(err).Warn("discarding malformed cached aggregate")
		return decimal.Zero, false
	}
	return total, true
}

// Set caches a computed total with a short TTL
func (c *AggregateCache) Set(ctx context.Context, period, accountNumber string, txType models.TransactionType, total decimal.Decimal) {
	key := aggregateKey(period, accountNumber, txType)
	if err := c.client.Set(ctx, key, total.String(), aggregateCacheTTL); err != nil {
		c.log.WithError(err).Warn("failed to cache aggregate total")
	}
}

// Invalidate drops the cached totals for an account and type
func (c *AggregateCache) Invalidate(ctx context.Context, accountNumber string, txType models.TransactionType) {
	keys := []string{
		aggregateKey(periodDaily, accountNumber, txType),
		aggregateKey(periodMonthly, accountNumber, txType),
	}
	if err := c.client.Delete(ctx, keys...); err != nil {
		c.log.WithError(err).Warn("failed to invalidate aggregate cache")
	}
}
