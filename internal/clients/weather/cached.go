package weather

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/KirkDiggler/dungeon-runner/internal/errors"
)

// CachedConfig configures the caching wrapper
type CachedConfig struct {
	Client Client
	// Size is the maximum number of cached coordinates (defaults to 256)
	Size int
	// TTL is how long a reading stays fresh (defaults to 10 minutes)
	TTL time.Duration
}

// Validate validates the CachedConfig and sets defaults
func (cfg *CachedConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	if cfg.Size <= 0 {
		cfg.Size = 256
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 10 * time.Minute
	}
	return nil
}

// cachedClient remembers readings per coordinate, rounded to roughly a
// kilometre. Absent readings and errors are not cached.
type cachedClient struct {
	next Client
	lru  *expirable.LRU[string, float64]
}

// NewCached wraps a Client with an expiring LRU cache
func NewCached(cfg *CachedConfig) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cachedClient{
		next: cfg.Client,
		lru:  expirable.NewLRU[string, float64](cfg.Size, nil, cfg.TTL),
	}, nil
}

func cacheKey(lat, lon float64) string {
	return fmt.Sprintf("%.2f,%.2f", lat, lon)
}

func (c *cachedClient) CurrentTemperature(ctx context.Context, lat, lon float64) (*float64, error) {
	key := cacheKey(lat, lon)
	if t, ok := c.lru.Get(key); ok {
		return &t, nil
	}

	reading, err := c.next.CurrentTemperature(ctx, lat, lon)
	if err != nil {
		return nil, err
	}
	if reading != nil {
		c.lru.Add(key, *reading)
	}
	return reading, nil
}
