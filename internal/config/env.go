package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	HistoryStoreMemory = "memory"
	HistoryStoreMySQL  = "mysql"
	HistoryStoreRedis  = "redis"
)

type Env struct {
	AppAddr            string
	GinMode            string
	LogLevel           string
	LogFormat          string
	CORSAllowedOrigins []string

	HistoryStore string
	HistoryLimit int

	MySQLDSN string

	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	RedisHistoryKey string

	ItineraryCacheTTL time.Duration
	MaxTripDays       int
}

// LoadEnv reads .env (when present) and the process environment.
func LoadEnv() (Env, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return Env{}, fmt.Errorf("load .env: %w", err)
		}
	}
	return loadFrom(viper.New())
}

func loadFrom(v *viper.Viper) (Env, error) {
	v.AutomaticEnv()
	v.SetDefault("APP_ADDR", ":8000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("HISTORY_STORE", HistoryStoreMemory)
	v.SetDefault("HISTORY_LIMIT", 100)
	v.SetDefault("REDIS_ADDR", "127.0.0.1:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_HISTORY_KEY", "tourist_guide:history")
	v.SetDefault("ITINERARY_CACHE_TTL", "30m")
	v.SetDefault("MAX_TRIP_DAYS", 365)

	env := Env{
		AppAddr:            strings.TrimSpace(v.GetString("APP_ADDR")),
		GinMode:            strings.TrimSpace(v.GetString("GIN_MODE")),
		LogLevel:           strings.ToLower(strings.TrimSpace(v.GetString("LOG_LEVEL"))),
		LogFormat:          strings.ToLower(strings.TrimSpace(v.GetString("LOG_FORMAT"))),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		HistoryStore:       strings.ToLower(strings.TrimSpace(v.GetString("HISTORY_STORE"))),
		HistoryLimit:       v.GetInt("HISTORY_LIMIT"),
		MySQLDSN:           strings.TrimSpace(v.GetString("MYSQL_DSN")),
		RedisAddr:          strings.TrimSpace(v.GetString("REDIS_ADDR")),
		RedisPassword:      v.GetString("REDIS_PASSWORD"),
		RedisDB:            v.GetInt("REDIS_DB"),
		RedisHistoryKey:    strings.TrimSpace(v.GetString("REDIS_HISTORY_KEY")),
		ItineraryCacheTTL:  v.GetDuration("ITINERARY_CACHE_TTL"),
		MaxTripDays:        v.GetInt("MAX_TRIP_DAYS"),
	}

	if err := env.validate(); err != nil {
		return Env{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return env, nil
}

func (e Env) validate() error {
	switch e.HistoryStore {
	case HistoryStoreMemory:
	case HistoryStoreMySQL:
		if e.MySQLDSN == "" {
			return fmt.Errorf("MYSQL_DSN is required when HISTORY_STORE=mysql")
		}
	case HistoryStoreRedis:
		if e.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required when HISTORY_STORE=redis")
		}
	default:
		return fmt.Errorf("unknown HISTORY_STORE %q", e.HistoryStore)
	}
	if e.HistoryLimit < 0 {
		return fmt.Errorf("HISTORY_LIMIT must not be negative")
	}
	if e.ItineraryCacheTTL <= 0 {
		return fmt.Errorf("ITINERARY_CACHE_TTL must be positive")
	}
	return nil
}

func splitList(raw string) []string {
	out := []string{}
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			out = append(out, o)
		}
	}
	return out
}
