package config

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	env, err := loadFrom(viper.New())
	require.NoError(t, err)

	assert.Equal(t, ":8000", env.AppAddr)
	assert.Equal(t, "info", env.LogLevel)
	assert.Equal(t, []string{"*"}, env.CORSAllowedOrigins)
	assert.Equal(t, HistoryStoreMemory, env.HistoryStore)
	assert.Equal(t, 100, env.HistoryLimit)
	assert.Equal(t, 30*time.Minute, env.ItineraryCacheTTL)
	assert.Equal(t, 365, env.MaxTripDays)
	assert.Equal(t, "tourist_guide:history", env.RedisHistoryKey)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_ADDR", ":9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, http://127.0.0.1:5173,")
	t.Setenv("HISTORY_STORE", "Redis")
	t.Setenv("HISTORY_LIMIT", "10")
	t.Setenv("ITINERARY_CACHE_TTL", "5m")
	t.Setenv("MAX_TRIP_DAYS", "30")

	env, err := loadFrom(viper.New())
	require.NoError(t, err)

	assert.Equal(t, ":9090", env.AppAddr)
	assert.Equal(t, []string{"http://localhost:5173", "http://127.0.0.1:5173"}, env.CORSAllowedOrigins)
	assert.Equal(t, HistoryStoreRedis, env.HistoryStore)
	assert.Equal(t, 10, env.HistoryLimit)
	assert.Equal(t, 5*time.Minute, env.ItineraryCacheTTL)
	assert.Equal(t, 30, env.MaxTripDays)
}

func TestLoadRejectsBadStore(t *testing.T) {
	t.Setenv("HISTORY_STORE", "postgres")
	_, err := loadFrom(viper.New())
	assert.ErrorContains(t, err, "unknown HISTORY_STORE")

	t.Setenv("HISTORY_STORE", "mysql")
	_, err = loadFrom(viper.New())
	assert.ErrorContains(t, err, "MYSQL_DSN is required")
}

func TestNewRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	rdb, err := NewRedis(t.Context(), Env{RedisAddr: mr.Addr()})
	require.NoError(t, err)
	defer rdb.Close()

	mr.Close()
	_, err = NewRedis(t.Context(), Env{RedisAddr: mr.Addr()})
	assert.Error(t, err)
}
