package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GOPHSHOP_JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "gophshop.db", cfg.DBPath)
	assert.Equal(t, time.Hour, cfg.AccessTokenTTL)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GOPHSHOP_JWT_SECRET", "test-secret")
	t.Setenv("GOPHSHOP_ADDR", ":9191")
	t.Setenv("GOPHSHOP_DB_PATH", "/tmp/shop.db")
	t.Setenv("GOPHSHOP_TOKEN_TTL", "30m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9191", cfg.Addr)
	assert.Equal(t, "/tmp/shop.db", cfg.DBPath)
	assert.Equal(t, 30*time.Minute, cfg.AccessTokenTTL)
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("GOPHSHOP_JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GOPHSHOP_JWT_SECRET")
}

func TestLoad_InvalidTTL(t *testing.T) {
	t.Setenv("GOPHSHOP_JWT_SECRET", "test-secret")
	t.Setenv("GOPHSHOP_TOKEN_TTL", "-5m")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TTL")
}
