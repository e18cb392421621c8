package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("LISTING_SOURCE", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("PG_DSN", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Listing.Source)
	assert.Equal(t, 50000.0, cfg.Listing.DefaultMaxPrice)
	assert.Equal(t, 5*time.Minute, cfg.Listing.ReloadInterval)
	assert.False(t, cfg.Telegram.Enabled)
	assert.Contains(t, cfg.GetPostgreSQLDSN(), "dbname=roomfinder")
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("LISTING_SOURCE", "file")
	t.Setenv("LISTING_DEFAULT_MAX_PRICE", "8000")
	t.Setenv("LISTING_RELOAD_INTERVAL", "30s")
	t.Setenv("TELEGRAM_BOT_TOKEN", "token")
	t.Setenv("TELEGRAM_ADMIN_CHAT_ID", "-100123")
	t.Setenv("DATABASE_URL", "postgres://u:p@db/rooms")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "file", cfg.Listing.Source)
	assert.Equal(t, 8000.0, cfg.Listing.DefaultMaxPrice)
	assert.Equal(t, 30*time.Second, cfg.Listing.ReloadInterval)
	assert.True(t, cfg.Telegram.Enabled)
	assert.Equal(t, int64(-100123), cfg.Telegram.AdminChatID)
	assert.Equal(t, "postgres://u:p@db/rooms", cfg.GetPostgreSQLDSN())
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("LISTING_SOURCE", "")
	t.Setenv("SERVER_PORT", "eighty")
	t.Setenv("LISTING_CACHE_TTL", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5*time.Minute, cfg.Listing.CacheTTL)
}

func TestLoad_InvalidSource(t *testing.T) {
	t.Setenv("LISTING_SOURCE", "firebase")

	_, err := Load()
	assert.Error(t, err)
}
