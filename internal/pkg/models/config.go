package models

import "github.com/shopspring/decimal"

// Config represents application configuration
type Config struct {
	App         AppConfig
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	NSQ         NSQConfig
	Logger      LoggerConfig
	Transaction TransactionConfig
	Security    SecurityConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ producer configuration and notification topics
type NSQConfig struct {
	Address           string
	ConfirmationTopic string
	LargeAlertTopic   string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// TransactionConfig contains the limit policy applied by the orchestrator.
// Daily and monthly limits are scoped per source account and transaction type.
type TransactionConfig struct {
	DailyLimit          decimal.Decimal
	MonthlyLimit        decimal.Decimal
	LargeAmountAlert    decimal.Decimal
	NotificationTimeout int // seconds
}

// SecurityConfig contains knobs for the security validator
type SecurityConfig struct {
	BlockedIPs         []string
	MaxUserAgentLen    int
	MinApprovalCodeLen int
}
