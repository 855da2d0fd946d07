package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	_ "github.com/jackc/pgx/v4/stdlib" // database/sql driver for sqlx
	"github.com/jmoiron/sqlx"

	"github.com/nusabank/transaction-core/internal/pkg/models"
)

// PostgresClient represents a PostgreSQL database client. It exposes both the
// pgx pool (health checks, admin queries) and an sqlx handle over the pgx
// stdlib driver for the repositories.
type PostgresClient struct {
	pool *pgxpool.Pool
	db   *sqlx.DB
}

// NewPostgresClient creates a new PostgreSQL client
func NewPostgresClient(config models.DatabaseConfig) (*PostgresClient, error) {
	connString := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		config.Username,
		config.Password,
		config.Host,
		config.Port,
		config.Database,
		config.SSLMode,
	)

	poolConfig, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres config: %w", err)
	}

	if config.MaxConns > 0 {
		poolConfig.MaxConns = int32(config.MaxConns)
	}
	if config.IdleConns > 0 {
		poolConfig.MinConns = int32(config.IdleConns)
	}
	poolConfig.MaxConnLifetime = 1 * time.Hour
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.ConnectConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	db, err := sqlx.ConnectContext(ctx, "pgx", connString)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to open sqlx connection: %w", err)
	}
	if config.MaxConns > 0 {
		db.SetMaxOpenConns(config.MaxConns)
	}
	if config.IdleConns > 0 {
		db.SetMaxIdleConns(config.IdleConns)
	}

	return &PostgresClient{pool: pool, db: db}, nil
}

// GetPool returns the underlying connection pool
func (p *PostgresClient) GetPool() *pgxpool.Pool {
	return p.pool
}

// GetDB returns the sqlx handle used by the repositories
func (p *PostgresClient) GetDB() *sqlx.DB {
	return p.db
}

// Ping verifies the connection is still healthy
func (p *PostgresClient) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// Close closes the database connections
func (p *PostgresClient) Close() {
	p.pool.Close()
	if p.db != nil {
		_ = p.db.Close()
	}
}
