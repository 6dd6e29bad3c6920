package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "solid-go", cfg.App.Name)
	assert.Equal(t, EnvDevelopment, cfg.App.Environment)
	assert.Equal(t, StorageMemory, cfg.App.Storage)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.False(t, cfg.Redis.Enabled)
	assert.InDelta(t, 10, cfg.Pricing.DefaultPercent, 1e-9)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_PostgresRequiresURL(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "postgres")
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoad_InvalidBackend(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "cloud")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORAGE_BACKEND")
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9999")
	t.Setenv("DISCOUNT_PERCENT", "25")
	t.Setenv("REDIS_ENABLED", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9999, cfg.HTTP.Port)
	assert.InDelta(t, 25, cfg.Pricing.DefaultPercent, 1e-9)
	assert.True(t, cfg.Redis.Enabled)
}

func TestValidate_PercentRange(t *testing.T) {
	t.Setenv("DISCOUNT_PERCENT", "150")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DISCOUNT_PERCENT")
}
