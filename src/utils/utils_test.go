package utils

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "table", cfg.OutputFormat)
	assert.False(t, cfg.StrictBounds)
	assert.False(t, cfg.CacheEnabled)
	assert.Equal(t, "redis", cfg.CacheURLScheme)
	assert.Equal(t, "localhost:6379", cfg.CacheAddr())
	assert.Equal(t, 24*time.Hour, cfg.CacheTTL)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("OUTPUT_FORMAT", "json")
	t.Setenv("STRICT_BOUNDS", "true")
	t.Setenv("CACHE_URL_SCHEME", "valkey")
	t.Setenv("CACHE_CLUSTER_URL", "cache.internal")
	t.Setenv("CACHE_PORT", "6380")
	t.Setenv("CACHE_TTL", "90s")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.OutputFormat)
	assert.True(t, cfg.StrictBounds)
	assert.Equal(t, "valkey", cfg.CacheURLScheme)
	assert.Equal(t, "cache.internal:6380", cfg.CacheAddr())
	assert.Equal(t, 90*time.Second, cfg.CacheTTL)
}

func TestLoadConfig_DotenvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("CACHE_DB=3\n"), 0o644))
	// registered so the variable set by godotenv is restored afterwards
	t.Setenv("CACHE_DB", "")
	require.NoError(t, os.Unsetenv("CACHE_DB"))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.CacheDB)
}

func TestLoadConfig_InvalidValue(t *testing.T) {
	t.Setenv("CACHE_TTL", "soon")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(&Config{LogLevel: "debug"})
	require.NoError(t, err)
	assert.True(t, logger.Desugar().Core().Enabled(-1))

	logger, err = NewLogger(&Config{LogLevel: "error", Environment: "local"})
	require.NoError(t, err)
	assert.False(t, logger.Desugar().Core().Enabled(0))

	_, err = NewLogger(&Config{LogLevel: "loud"})
	assert.Error(t, err)
}

func TestLoggerContext(t *testing.T) {
	ctx := context.Background()
	assert.NotNil(t, LoggerFromCtx(ctx))

	logger := NewNopLogger()
	ctx = LoggerWithCtx(ctx, logger)
	assert.Same(t, logger, LoggerFromCtx(ctx))
	assert.Equal(t, ctx, LoggerWithCtx(ctx, logger))

	child := GetChildLogger(logger, map[string]string{"request_id": "abc"})
	assert.NotSame(t, logger, child)
}
