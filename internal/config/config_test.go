package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "file::memory:")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("KAFKA_BROKERS", " a:9092, ,b:9092")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "catalog", cfg.ServiceName)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 60*time.Second, cfg.CategoryCacheTTL)
	assert.Equal(t, []string{"a:9092", "b:9092"}, cfg.KafkaBrokers)
	assert.Empty(t, cfg.RedisURL)
}

func TestFromEnv_MissingRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "secret")

	_, err := FromEnv()
	assert.Error(t, err)

	require.NoError(t, os.Unsetenv("DATABASE_URL"))
	_, err = FromEnv()
	assert.Error(t, err)
}
