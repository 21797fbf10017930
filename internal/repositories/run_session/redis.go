package runsession

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/dungeon-runner/internal/errors"
	"github.com/KirkDiggler/dungeon-runner/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/dungeon-runner/internal/redis"
)

const (
	// Key pattern: run_session:{player_id}
	sessionKeyPrefix = "run_session:"

	// DefaultTTL covers an ultramarathon with room to spare
	DefaultTTL = 6 * time.Hour

	errSessionNil     = "session cannot be nil"
	errPlayerIDEmpty  = "player ID cannot be empty"
	errLevelIDEmpty   = "level ID cannot be empty"
	errSessionExpired = "session has already expired"
)

// Config holds the configuration for the redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a redis repository for run sessions
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}
	if input.LevelID == "" {
		return nil, errors.InvalidArgument(errLevelIDEmpty)
	}

	now := r.clock.Now()
	ttl := input.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	session := &Session{
		PlayerID:  input.PlayerID,
		LevelID:   input.LevelID,
		StartedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal session")
	}

	// a stale session past its ExpiresAt no longer blocks a new run
	if _, err := r.Get(ctx, GetInput{PlayerID: input.PlayerID}); err == nil {
		return nil, errors.AlreadyExistsf("player %s already has a run in progress", input.PlayerID)
	} else if !errors.IsNotFound(err) {
		return nil, err
	}

	created, err := r.client.SetNX(ctx, buildKey(input.PlayerID), sessionJSON, ttl).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to store session in redis")
	}
	if !created {
		return nil, errors.AlreadyExistsf("player %s already has a run in progress", input.PlayerID)
	}

	return &CreateOutput{Session: session}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	key := buildKey(input.PlayerID)

	sessionJSON, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no run in progress for player %s", input.PlayerID)
		}
		return nil, errors.Wrap(err, "failed to get session from redis")
	}

	var session Session
	if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal session")
	}

	if r.clock.Now().After(session.ExpiresAt) {
		_ = r.client.Del(ctx, key)
		return nil, errors.NotFoundf("run for player %s has expired", input.PlayerID)
	}

	return &GetOutput{Session: &session}, nil
}

func (r *redisRepository) Update(ctx context.Context, session *Session) error {
	if session == nil {
		return errors.InvalidArgument(errSessionNil)
	}
	if session.PlayerID == "" {
		return errors.InvalidArgument(errPlayerIDEmpty)
	}

	now := r.clock.Now()
	if now.After(session.ExpiresAt) {
		return errors.FailedPrecondition(errSessionExpired)
	}

	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "failed to marshal session")
	}

	err = r.client.Set(ctx, buildKey(session.PlayerID), sessionJSON, session.ExpiresAt.Sub(now)).Err()
	if err != nil {
		return errors.Wrap(err, "failed to update session in redis")
	}

	return nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	removed, err := r.client.Del(ctx, buildKey(input.PlayerID)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete session from redis")
	}

	return &DeleteOutput{Deleted: removed > 0}, nil
}

func buildKey(playerID string) string {
	return sessionKeyPrefix + playerID
}
