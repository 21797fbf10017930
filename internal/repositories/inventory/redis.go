package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/dungeon-runner/internal/entities/gear"
	"github.com/KirkDiggler/dungeon-runner/internal/errors"
	redisclient "github.com/KirkDiggler/dungeon-runner/internal/redis"
)

const (
	inventoryKeyPrefix = "inventory:player:"

	errPlayerIDEmpty = "player ID cannot be empty"
	errItemIDEmpty   = "item ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the redis inventory repository
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

// NewRedis creates a redis-backed inventory repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func validateItemRef(playerID, itemID string) error {
	vb := errors.NewValidationBuilder()
	if playerID == "" {
		vb.Field("PlayerID", errPlayerIDEmpty)
	}
	if itemID == "" {
		vb.Field("ItemID", errItemIDEmpty)
	}
	return vb.Build()
}

func (r *redisRepository) Add(ctx context.Context, input AddInput) (*AddOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}
	if len(input.Items) == 0 {
		return nil, errors.InvalidArgument("at least one item is required")
	}

	fields := make([]interface{}, 0, 2*len(input.Items))
	for i, item := range input.Items {
		if item == nil || item.ID == "" {
			return nil, errors.InvalidArgumentf("item %d has no id", i)
		}
		if item.PlayerID != input.PlayerID {
			return nil, errors.InvalidArgumentf("item %s belongs to %q, not %q", item.ID, item.PlayerID, input.PlayerID)
		}
		if !item.Slot.IsValid() {
			return nil, errors.InvalidArgumentf("item %s has invalid slot %q", item.ID, item.Slot)
		}
		data, err := json.Marshal(item)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal item %s", item.ID)
		}
		fields = append(fields, item.ID, data)
	}

	if err := r.client.HSet(ctx, GetKey(input.PlayerID), fields...).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store items for player %s", input.PlayerID)
	}

	return &AddOutput{Items: input.Items}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateItemRef(input.PlayerID, input.ItemID); err != nil {
		return nil, err
	}

	result, err := r.client.HGet(ctx, GetKey(input.PlayerID), input.ItemID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("item %s not found for player %s", input.ItemID, input.PlayerID)
		}
		return nil, errors.Wrapf(err, "failed to get item %s", input.ItemID)
	}

	item, err := decodeItem(result)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Item: item}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	raw, err := r.client.HGetAll(ctx, GetKey(input.PlayerID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list items for player %s", input.PlayerID)
	}

	items, err := decodeItems(raw)
	if err != nil {
		return nil, err
	}
	return &ListOutput{Items: items}, nil
}

func (r *redisRepository) Count(ctx context.Context, input CountInput) (*CountOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	n, err := r.client.HLen(ctx, GetKey(input.PlayerID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to count items for player %s", input.PlayerID)
	}
	return &CountOutput{Count: int(n)}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateItemRef(input.PlayerID, input.ItemID); err != nil {
		return nil, err
	}

	removed, err := r.client.HDel(ctx, GetKey(input.PlayerID), input.ItemID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete item %s", input.ItemID)
	}
	if removed == 0 {
		return nil, errors.NotFoundf("item %s not found for player %s", input.ItemID, input.PlayerID)
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) Equip(ctx context.Context, input EquipInput) (*EquipOutput, error) {
	if err := validateItemRef(input.PlayerID, input.ItemID); err != nil {
		return nil, err
	}

	key := GetKey(input.PlayerID)
	out := &EquipOutput{}

	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		raw, err := tx.HGetAll(ctx, key).Result()
		if err != nil {
			return errors.Wrapf(err, "failed to load inventory for player %s", input.PlayerID)
		}
		items, err := decodeItems(raw)
		if err != nil {
			return err
		}

		var target, previous *gear.Item
		for _, item := range items {
			if item.ID == input.ItemID {
				target = item
			}
		}
		if target == nil {
			return errors.NotFoundf("item %s not found for player %s", input.ItemID, input.PlayerID)
		}
		for _, item := range items {
			if item.ID != target.ID && item.Slot == target.Slot && item.Equipped {
				previous = item
			}
		}

		target.Equipped = true
		fields, err := encodeFields(target)
		if err != nil {
			return err
		}
		if previous != nil {
			previous.Equipped = false
			more, err := encodeFields(previous)
			if err != nil {
				return err
			}
			fields = append(fields, more...)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, fields...)
			return nil
		})
		if err != nil {
			return err
		}

		out.Item = target
		out.Unequipped = previous
		return nil
	}, key)

	switch {
	case err == nil:
		return out, nil
	case errors.Is(err, redis.TxFailedErr):
		return nil, errors.Unavailablef("inventory for player %s changed during equip, retry", input.PlayerID)
	default:
		var domainErr *errors.Error
		if errors.As(err, &domainErr) {
			return nil, domainErr
		}
		return nil, errors.Wrapf(err, "failed to equip item %s", input.ItemID)
	}
}

func encodeFields(item *gear.Item) ([]interface{}, error) {
	data, err := json.Marshal(item)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal item %s", item.ID)
	}
	return []interface{}{item.ID, data}, nil
}

func decodeItem(raw string) (*gear.Item, error) {
	var item gear.Item
	if err := json.Unmarshal([]byte(raw), &item); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal item")
	}
	return &item, nil
}

func decodeItems(raw map[string]string) ([]*gear.Item, error) {
	items := make([]*gear.Item, 0, len(raw))
	for _, v := range raw {
		item, err := decodeItem(v)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.Before(items[j].CreatedAt)
		}
		return items[i].ID < items[j].ID
	})
	return items, nil
}

// GetKey returns the redis hash holding a player's items
func GetKey(playerID string) string {
	return fmt.Sprintf("%s%s", inventoryKeyPrefix, playerID)
}
