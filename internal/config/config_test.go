package config_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dungeon-runner/internal/clients/weather"
	"github.com/KirkDiggler/dungeon-runner/internal/config"
	"github.com/KirkDiggler/dungeon-runner/internal/errors"
)

func env(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.LoadFrom(env(nil))
	require.NoError(t, err)

	assert.Equal(t, 50051, cfg.GRPCPort)
	assert.Equal(t, ":9090", cfg.MetricsAddr)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 6*time.Hour, cfg.RunSessionTTL)
	assert.Equal(t, weather.DefaultBaseURL, cfg.WeatherBaseURL)
	assert.Equal(t, 5*time.Second, cfg.WeatherTimeout)
	assert.Equal(t, 10*time.Minute, cfg.WeatherCacheTTL)
	assert.Equal(t, 256, cfg.WeatherCacheSize)
	assert.True(t, cfg.SeedOnStart)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := config.LoadFrom(env(map[string]string{
		config.EnvGRPCPort:      "6000",
		config.EnvRedisAddr:     "redis:6380",
		config.EnvRunSessionTTL: "90m",
		config.EnvSeedOnStart:   "false",
		config.EnvLogFormat:     "json",
	}))
	require.NoError(t, err)

	assert.Equal(t, 6000, cfg.GRPCPort)
	assert.Equal(t, "redis:6380", cfg.RedisAddr)
	assert.Equal(t, 90*time.Minute, cfg.RunSessionTTL)
	assert.False(t, cfg.SeedOnStart)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadReportsEveryBadValue(t *testing.T) {
	_, err := config.LoadFrom(env(map[string]string{
		config.EnvGRPCPort:       "grpc",
		config.EnvWeatherTimeout: "soon",
		config.EnvSeedOnStart:    "maybe",
	}))
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), config.EnvGRPCPort)
	assert.Contains(t, err.Error(), config.EnvWeatherTimeout)
	assert.Contains(t, err.Error(), config.EnvSeedOnStart)
}

func TestValidateTags(t *testing.T) {
	testCases := []struct {
		name   string
		values map[string]string
		field  string
	}{
		{"port out of range", map[string]string{config.EnvGRPCPort: "70000"}, "GRPCPort"},
		{"redis without port", map[string]string{config.EnvRedisAddr: "localhost"}, "RedisAddr"},
		{"bad log level", map[string]string{config.EnvLogLevel: "loud"}, "LogLevel"},
		{"tiny session ttl", map[string]string{config.EnvRunSessionTTL: "5s"}, "RunSessionTTL"},
		{"cache size zero", map[string]string{config.EnvWeatherCacheSize: "0"}, "WeatherCacheSize"},
		{"not a url", map[string]string{config.EnvWeatherBaseURL: "open meteo"}, "WeatherBaseURL"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.LoadFrom(env(tc.values))
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{LogLevel: "warn", LogFormat: "json"}
	logger := cfg.NewLogger(&buf)

	logger.Info("hidden")
	logger.Warn("shown", "player_id", "p1")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "shown", line["msg"])
	assert.Equal(t, "p1", line["player_id"])
}
