package journal

import (
	"context"
	"encoding/json"
	"fmt"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/dungeon-runner/internal/entities/dungeon"
	"github.com/KirkDiggler/dungeon-runner/internal/errors"
	redisclient "github.com/KirkDiggler/dungeon-runner/internal/redis"
)

const (
	recordKeyPrefix = "journal:record:"
	playerKeyPrefix = "journal:player:"

	errRecordIDEmpty = "record ID cannot be empty"
	errPlayerIDEmpty = "player ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the redis journal repository
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

// NewRedis creates a redis-backed journal repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Append(ctx context.Context, input AppendInput) (*AppendOutput, error) {
	record := input.Record
	if record == nil {
		return nil, errors.InvalidArgument("record is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ID", record.ID, vb)
	errors.ValidateRequired("PlayerID", record.PlayerID, vb)
	if record.CompletedAt.IsZero() {
		vb.RequiredField("CompletedAt")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	data, err := json.Marshal(record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal record %s", record.ID)
	}

	stored, err := r.client.SetNX(ctx, recordKey(record.ID), data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store record %s", record.ID)
	}
	if !stored {
		return nil, errors.AlreadyExistsf("record %s already exists", record.ID)
	}

	score := float64(record.CompletedAt.UnixMilli())
	if err := r.client.ZAdd(ctx, PlayerKey(record.PlayerID), redis.Z{Score: score, Member: record.ID}).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to index record %s", record.ID)
	}

	return &AppendOutput{Record: record}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errRecordIDEmpty)
	}

	result, err := r.client.Get(ctx, recordKey(input.ID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("record %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get record %s", input.ID)
	}

	var record dungeon.Record
	if err := json.Unmarshal([]byte(result), &record); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal record %s", input.ID)
	}

	return &GetOutput{Record: &record}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	ids, err := r.client.ZRevRange(ctx, PlayerKey(input.PlayerID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list records for player %s", input.PlayerID)
	}
	if len(ids) == 0 {
		return &ListOutput{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = recordKey(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load records for player %s", input.PlayerID)
	}

	records := make([]*dungeon.Record, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var record dungeon.Record
		if err := json.Unmarshal([]byte(raw), &record); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal record %s", ids[i])
		}
		records = append(records, &record)
	}

	return &ListOutput{Records: records}, nil
}

func recordKey(id string) string {
	return recordKeyPrefix + id
}

// PlayerKey returns the sorted set indexing a player's records
func PlayerKey(playerID string) string {
	return fmt.Sprintf("%s%s", playerKeyPrefix, playerID)
}
