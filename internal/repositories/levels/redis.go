package levels

import (
	"context"
	"encoding/json"
	"fmt"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/dungeon-runner/internal/engine"
	"github.com/KirkDiggler/dungeon-runner/internal/entities/dungeon"
	"github.com/KirkDiggler/dungeon-runner/internal/errors"
	redisclient "github.com/KirkDiggler/dungeon-runner/internal/redis"
)

const (
	levelKeyPrefix = "level:"

	// IndexKey is a sorted set of level ids scored by ordinal
	IndexKey = "levels:index"

	errLevelIDEmpty = "level ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the redis level repository
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

// NewRedis creates a redis-backed level repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if err := engine.ValidateLevel(input.Level); err != nil {
		return nil, err
	}
	if input.Level.ID == "" {
		return nil, errors.InvalidArgument(errLevelIDEmpty)
	}

	data, err := json.Marshal(input.Level)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal level %s", input.Level.ID)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, GetKey(input.Level.ID), data, 0)
	pipe.ZAdd(ctx, IndexKey, redis.Z{Score: float64(input.Level.Ordinal), Member: input.Level.ID})
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to store level %s", input.Level.ID)
	}

	return &PutOutput{Level: input.Level}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errLevelIDEmpty)
	}

	result, err := r.client.Get(ctx, GetKey(input.ID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("level %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get level %s", input.ID)
	}

	var level dungeon.Level
	if err := json.Unmarshal([]byte(result), &level); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal level %s", input.ID)
	}

	return &GetOutput{Level: &level}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.ZRange(ctx, IndexKey, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list level ids")
	}
	if len(ids) == 0 {
		return &ListOutput{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = GetKey(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load levels")
	}

	out := make([]*dungeon.Level, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// index entry without a level body
			continue
		}
		var level dungeon.Level
		if err := json.Unmarshal([]byte(raw), &level); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal level %s", ids[i])
		}
		out = append(out, &level)
	}

	return &ListOutput{Levels: out}, nil
}

// GetKey returns the redis key for a level
func GetKey(id string) string {
	return fmt.Sprintf("%s%s", levelKeyPrefix, id)
}
