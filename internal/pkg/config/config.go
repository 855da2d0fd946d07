package config

import (
	"log"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/nusabank/transaction-core/internal/pkg/models"
)

// InitConfig loads configuration from an optional config file plus the
// environment. Environment variables win over the file; keys use dots in the
// file ("database.host") and underscores in the environment ("DATABASE_HOST").
func InitConfig(configPath string) *models.Config {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			log.Printf("error reading config file %s: %v", configPath, err)
		}
	}

	return loadConfig(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "transaction-core")
	v.SetDefault("app.environment", "local")
	v.SetDefault("app.debug", true)
	v.SetDefault("app.version", "dev")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 15)
	v.SetDefault("server.write_timeout", 15)
	v.SetDefault("server.shutdown_timeout", 30)

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.idle_conns", 2)

	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("nsq.confirmation_topic", "transaction.completed")
	v.SetDefault("nsq.large_alert_topic", "transaction.large_alert")

	v.SetDefault("logger.level", "info")

	v.SetDefault("transaction.daily_limit", "10000")
	v.SetDefault("transaction.monthly_limit", "50000")
	v.SetDefault("transaction.large_amount_alert", "10000")
	v.SetDefault("transaction.notification_timeout", 2)

	v.SetDefault("security.max_user_agent_len", 512)
	v.SetDefault("security.min_approval_code_len", 6)
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	configs.App.Name = v.GetString("app.name")
	configs.App.Environment = v.GetString("app.environment")
	configs.App.Debug = v.GetBool("app.debug")
	configs.App.Version = v.GetString("app.version")

	configs.Server.Host = v.GetString("server.host")
	configs.Server.Port = v.GetInt("server.port")
	configs.Server.ReadTimeout = v.GetInt("server.read_timeout")
	configs.Server.WriteTimeout = v.GetInt("server.write_timeout")
	configs.Server.ShutdownTimeout = v.GetInt("server.shutdown_timeout")

	configs.Database.Driver = v.GetString("database.driver")
	configs.Database.Host = v.GetString("database.host")
	configs.Database.Port = v.GetInt("database.port")
	configs.Database.Username = v.GetString("database.username")
	configs.Database.Password = v.GetString("database.password")
	configs.Database.Database = v.GetString("database.database")
	configs.Database.SSLMode = v.GetString("database.ssl_mode")
	configs.Database.MaxConns = v.GetInt("database.max_conns")
	configs.Database.IdleConns = v.GetInt("database.idle_conns")

	configs.Redis.Host = v.GetString("redis.host")
	configs.Redis.Port = v.GetInt("redis.port")
	configs.Redis.Password = v.GetString("redis.password")
	configs.Redis.DB = v.GetInt("redis.db")
	configs.Redis.PoolSize = v.GetInt("redis.pool_size")

	configs.NSQ.Address = v.GetString("nsq.address")
	configs.NSQ.ConfirmationTopic = v.GetString("nsq.confirmation_topic")
	configs.NSQ.LargeAlertTopic = v.GetString("nsq.large_alert_topic")

	configs.Logger.Level = v.GetString("logger.level")
	configs.Logger.FilePath = v.GetString("logger.file_path")

	configs.Transaction.DailyLimit = getDecimal(v, "transaction.daily_limit")
	configs.Transaction.MonthlyLimit = getDecimal(v, "transaction.monthly_limit")
	configs.Transaction.LargeAmountAlert = getDecimal(v, "transaction.large_amount_alert")
	configs.Transaction.NotificationTimeout = v.GetInt("transaction.notification_timeout")

	configs.Security.BlockedIPs = v.GetStringSlice("security.blocked_ips")
	configs.Security.MaxUserAgentLen = v.GetInt("security.max_user_agent_len")
	configs.Security.MinApprovalCodeLen = v.GetInt("security.min_approval_code_len")

	return configs
}

// getDecimal parses a config value into an exact decimal. Malformed input is
// logged and yields zero.
func getDecimal(v *viper.Viper, key string) decimal.Decimal {
	raw := v.GetString(key)
	d, err := decimal.NewFromString(raw)
	if err != nil {
		log.Printf("invalid decimal for %s: %q", key, raw)
		return decimal.Zero
	}
	return d
}
