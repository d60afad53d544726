package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App      ApplicationConfig
	Log      LogConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Ledger   LedgerConfig
	Notify   NotifyConfig
}

type ApplicationConfig struct {
	Port            string
	GinMode         string
	ShutdownTimeout time.Duration
	StoreDriver     string // postgres | memory
	AutoMigrate     bool
}

type LogConfig struct {
	Level      string
	FilePath   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type LedgerConfig struct {
	QuoteTTL        time.Duration
	QuoteRetention  time.Duration
	AvailabilityTTL time.Duration
}

type NotifyConfig struct {
	Queue             string // redis | memory
	BufferSize        int
	ClaimMinIdleTime  time.Duration
	MaxRetryCount     int
	GmailClientID     string
	GmailClientSecret string
	GmailRefreshToken string
	GmailSender       string
}

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
	QueueRedis          = "redis"
	QueueMemory         = "memory"
)

var AppConfig *Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("STORE_DRIVER", StoreDriverPostgres)
	v.SetDefault("AUTO_MIGRATE", true)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE", "")
	v.SetDefault("LOG_MAX_SIZE_MB", 10)
	v.SetDefault("LOG_MAX_BACKUPS", 7)
	v.SetDefault("LOG_MAX_AGE_DAYS", 28)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "postgres")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 25)
	v.SetDefault("DB_MIN_CONNS", 5)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("QUOTE_TTL", "15m")
	v.SetDefault("QUOTE_RETENTION", "24h")
	v.SetDefault("AVAILABILITY_TTL", "10m")

	v.SetDefault("NOTIFY_QUEUE", QueueRedis)
	v.SetDefault("NOTIFY_BUFFER_SIZE", 1024)
	v.SetDefault("NOTIFY_CLAIM_MIN_IDLE", "5s")
	v.SetDefault("NOTIFY_MAX_RETRY", 5)
	v.SetDefault("GMAIL_CLIENT_ID", "")
	v.SetDefault("GMAIL_CLIENT_SECRET", "")
	v.SetDefault("GMAIL_REFRESH_TOKEN", "")
	v.SetDefault("GMAIL_SENDER", "")
}

// LoadConfig 讀取 .env（若存在）與環境變數，環境變數優先
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	cfg := fromViper(v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	AppConfig = cfg
	return AppConfig, nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		App: ApplicationConfig{
			Port:            v.GetString("PORT"),
			GinMode:         v.GetString("GIN_MODE"),
			ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
			StoreDriver:     strings.ToLower(v.GetString("STORE_DRIVER")),
			AutoMigrate:     v.GetBool("AUTO_MIGRATE"),
		},
		Log: LogConfig{
			Level:      v.GetString("LOG_LEVEL"),
			FilePath:   v.GetString("LOG_FILE"),
			MaxSizeMB:  v.GetInt("LOG_MAX_SIZE_MB"),
			MaxBackups: v.GetInt("LOG_MAX_BACKUPS"),
			MaxAgeDays: v.GetInt("LOG_MAX_AGE_DAYS"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSL_MODE"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
			MinConns: v.GetInt32("DB_MIN_CONNS"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Ledger: LedgerConfig{
			QuoteTTL:        v.GetDuration("QUOTE_TTL"),
			QuoteRetention:  v.GetDuration("QUOTE_RETENTION"),
			AvailabilityTTL: v.GetDuration("AVAILABILITY_TTL"),
		},
		Notify: NotifyConfig{
			Queue:             strings.ToLower(v.GetString("NOTIFY_QUEUE")),
			BufferSize:        v.GetInt("NOTIFY_BUFFER_SIZE"),
			ClaimMinIdleTime:  v.GetDuration("NOTIFY_CLAIM_MIN_IDLE"),
			MaxRetryCount:     v.GetInt("NOTIFY_MAX_RETRY"),
			GmailClientID:     v.GetString("GMAIL_CLIENT_ID"),
			GmailClientSecret: v.GetString("GMAIL_CLIENT_SECRET"),
			GmailRefreshToken: v.GetString("GMAIL_REFRESH_TOKEN"),
			GmailSender:       v.GetString("GMAIL_SENDER"),
		},
	}
}

func (c *Config) Validate() error {
	switch c.App.StoreDriver {
	case StoreDriverPostgres, StoreDriverMemory:
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.App.StoreDriver)
	}
	switch c.Notify.Queue {
	case QueueRedis, QueueMemory:
	default:
		return fmt.Errorf("unsupported NOTIFY_QUEUE %q", c.Notify.Queue)
	}
	if c.Ledger.QuoteTTL <= 0 {
		return fmt.Errorf("QUOTE_TTL must be positive, got %s", c.Ledger.QuoteTTL)
	}
	if c.Ledger.QuoteRetention < c.Ledger.QuoteTTL {
		return fmt.Errorf("QUOTE_RETENTION (%s) must not be shorter than QUOTE_TTL (%s)", c.Ledger.QuoteRetention, c.Ledger.QuoteTTL)
	}
	return nil
}

// GmailEnabled 三個憑證都有設定時才啟用 Gmail 寄信
func (c NotifyConfig) GmailEnabled() bool {
	return c.GmailClientID != "" && c.GmailClientSecret != "" && c.GmailRefreshToken != ""
}

func LoadTestConfig() *Config {
	v := viper.New()
	setDefaults(v)
	v.Set("DB_PORT", "5433") // 測試 DB 用 5433 port
	v.Set("DB_NAME", "test_db")
	v.Set("REDIS_PORT", "6380") // 測試 Redis 用 6380 port
	v.Set("REDIS_DB", 1)
	v.AutomaticEnv()
	return fromViper(v)
}
