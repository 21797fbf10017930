// Package config reads server settings from the environment
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/dungeon-runner/internal/clients/weather"
	"github.com/KirkDiggler/dungeon-runner/internal/errors"
)

// Environment variable names
const (
	EnvGRPCPort         = "GRPC_PORT"
	EnvMetricsAddr      = "METRICS_ADDR"
	EnvRedisAddr        = "REDIS_ADDR"
	EnvRunSessionTTL    = "RUN_SESSION_TTL"
	EnvWeatherBaseURL   = "WEATHER_BASE_URL"
	EnvWeatherTimeout   = "WEATHER_TIMEOUT"
	EnvWeatherCacheTTL  = "WEATHER_CACHE_TTL"
	EnvWeatherCacheSize = "WEATHER_CACHE_SIZE"
	EnvSeedOnStart      = "SEED_ON_START"
	EnvLogLevel         = "LOG_LEVEL"
	EnvLogFormat        = "LOG_FORMAT"
)

// Config holds the server configuration
type Config struct {
	GRPCPort    int    `validate:"min=1,max=65535"`
	MetricsAddr string `validate:"required"`
	RedisAddr   string `validate:"required,hostname_port"`

	RunSessionTTL time.Duration `validate:"min=1m"`

	WeatherBaseURL   string        `validate:"required,url"`
	WeatherTimeout   time.Duration `validate:"min=100ms"`
	WeatherCacheTTL  time.Duration `validate:"min=0"`
	WeatherCacheSize int           `validate:"min=1"`

	SeedOnStart bool

	LogLevel  string `validate:"oneof=debug info warn error"`
	LogFormat string `validate:"oneof=text json"`
}

// Load reads .env if present, then the process environment
func Load() (*Config, error) {
	// a missing .env is fine, real env vars win anyway
	_ = godotenv.Load()
	return LoadFrom(os.LookupEnv)
}

// LoadFrom builds a Config from lookup, applying defaults for unset keys.
// Every bad value is reported in one InvalidArgument error.
func LoadFrom(lookup func(string) (string, bool)) (*Config, error) {
	r := &reader{lookup: lookup, vb: errors.NewValidationBuilder()}

	cfg := &Config{
		GRPCPort:         r.integer(EnvGRPCPort, 50051),
		MetricsAddr:      r.text(EnvMetricsAddr, ":9090"),
		RedisAddr:        r.text(EnvRedisAddr, "localhost:6379"),
		RunSessionTTL:    r.period(EnvRunSessionTTL, 6*time.Hour),
		WeatherBaseURL:   r.text(EnvWeatherBaseURL, weather.DefaultBaseURL),
		WeatherTimeout:   r.period(EnvWeatherTimeout, 5*time.Second),
		WeatherCacheTTL:  r.period(EnvWeatherCacheTTL, 10*time.Minute),
		WeatherCacheSize: r.integer(EnvWeatherCacheSize, 256),
		SeedOnStart:      r.flag(EnvSeedOnStart, true),
		LogLevel:         r.text(EnvLogLevel, "info"),
		LogFormat:        r.text(EnvLogFormat, "text"),
	}

	if err := r.vb.Build(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = validator.New()

// Validate checks the struct tags and folds failures into a single error
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.Wrap(err, "failed to validate config")
	}

	vb := errors.NewValidationBuilder()
	for _, fe := range fieldErrs {
		if fe.Param() != "" {
			vb.Fieldf(fe.Field(), "failed %s=%s", fe.Tag(), fe.Param())
		} else {
			vb.Fieldf(fe.Field(), "failed %s", fe.Tag())
		}
	}
	return vb.Build()
}

type reader struct {
	lookup func(string) (string, bool)
	vb     *errors.ValidationBuilder
}

func (r *reader) text(key, def string) string {
	if v, ok := r.lookup(key); ok && v != "" {
		return v
	}
	return def
}

func (r *reader) integer(key string, def int) int {
	v, ok := r.lookup(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.vb.Fieldf(key, "not an integer: %q", v)
		return def
	}
	return n
}

func (r *reader) period(key string, def time.Duration) time.Duration {
	v, ok := r.lookup(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		r.vb.Fieldf(key, "not a duration: %q", v)
		return def
	}
	return d
}

func (r *reader) flag(key string, def bool) bool {
	v, ok := r.lookup(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		r.vb.Fieldf(key, "not a boolean: %q", v)
		return def
	}
	return b
}
