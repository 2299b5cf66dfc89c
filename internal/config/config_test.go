package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shopconnect/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	for _, name := range []string{"PORT", "DB_DSN", "LOG_FILE", "SHOP_ID"} {
		t.Setenv(name, "")
	}

	cfg := config.Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "shopconnect.db", cfg.DBDSN)
	assert.Empty(t, cfg.LogFile, "no log file unless explicitly configured")
	assert.Equal(t, "oxbaseshop", cfg.ShopID)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DSN", ":memory:")
	t.Setenv("LOG_FILE", "/var/log/shopconnect.log")
	t.Setenv("SHOP_ID", "2")

	cfg := config.Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, ":memory:", cfg.DBDSN)
	assert.Equal(t, "/var/log/shopconnect.log", cfg.LogFile)
	assert.Equal(t, "2", cfg.ShopID)
}
