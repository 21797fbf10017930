package descriptors

import (
	"context"
	"encoding/json"

	"github.com/KirkDiggler/dungeon-runner/internal/entities/gear"
	"github.com/KirkDiggler/dungeon-runner/internal/errors"
	redisclient "github.com/KirkDiggler/dungeon-runner/internal/redis"
)

// Key is the redis list holding the vocabulary
const Key = "descriptors:catalog"

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the redis descriptor repository
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a redis-backed descriptor repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Replace(ctx context.Context, input ReplaceInput) (*ReplaceOutput, error) {
	if len(input.Descriptors) == 0 {
		return nil, errors.InvalidArgument("at least one descriptor is required")
	}

	values := make([]interface{}, 0, len(input.Descriptors))
	for _, d := range input.Descriptors {
		data, err := json.Marshal(d)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal descriptor %q", d.Text)
		}
		values = append(values, data)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, Key)
	pipe.RPush(ctx, Key, values...)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to store descriptors")
	}

	return &ReplaceOutput{Count: len(values)}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	raw, err := r.client.LRange(ctx, Key, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list descriptors")
	}
	if len(raw) == 0 {
		return nil, errors.NotFound("no descriptors stored")
	}

	out := make([]gear.Descriptor, 0, len(raw))
	for i, entry := range raw {
		var d gear.Descriptor
		if err := json.Unmarshal([]byte(entry), &d); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal descriptor %d", i)
		}
		out = append(out, d)
	}

	return &ListOutput{Descriptors: out}, nil
}
