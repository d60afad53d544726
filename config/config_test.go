package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, StoreDriverPostgres, cfg.App.StoreDriver)
		assert.Equal(t, 10*time.Second, cfg.App.ShutdownTimeout)
		assert.Equal(t, 15*time.Minute, cfg.Ledger.QuoteTTL)
		assert.Equal(t, 24*time.Hour, cfg.Ledger.QuoteRetention)
		assert.Equal(t, QueueRedis, cfg.Notify.Queue)
		assert.False(t, cfg.Notify.GmailEnabled())
		assert.Same(t, cfg, AppConfig)
	})

	t.Run("Environment overrides", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "MEMORY")
		t.Setenv("NOTIFY_QUEUE", "memory")
		t.Setenv("QUOTE_TTL", "5m")
		t.Setenv("DB_MAX_CONNS", "50")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, StoreDriverMemory, cfg.App.StoreDriver)
		assert.Equal(t, QueueMemory, cfg.Notify.Queue)
		assert.Equal(t, 5*time.Minute, cfg.Ledger.QuoteTTL)
		assert.Equal(t, int32(50), cfg.Database.MaxConns)
	})

	t.Run("Failed - retention shorter than ttl", func(t *testing.T) {
		t.Setenv("QUOTE_TTL", "2h")
		t.Setenv("QUOTE_RETENTION", "1h")

		_, err := LoadConfig()
		assert.ErrorContains(t, err, "QUOTE_RETENTION")
	})

	t.Run("Failed - unknown store driver", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "mongo")

		_, err := LoadConfig()
		assert.ErrorContains(t, err, "STORE_DRIVER")
	})
}

func TestGmailEnabled(t *testing.T) {
	n := NotifyConfig{GmailClientID: "id", GmailClientSecret: "secret"}
	assert.False(t, n.GmailEnabled())

	n.GmailRefreshToken = "token"
	assert.True(t, n.GmailEnabled())
}

func TestLoadTestConfig(t *testing.T) {
	cfg := LoadTestConfig()
	assert.Equal(t, "5433", cfg.Database.Port)
	assert.Equal(t, "test_db", cfg.Database.DBName)
	assert.Equal(t, "6380", cfg.Redis.Port)
	assert.Equal(t, 1, cfg.Redis.DB)
}
