package runsession_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dungeon-runner/internal/entities/dungeon"
	"github.com/KirkDiggler/dungeon-runner/internal/errors"
	"github.com/KirkDiggler/dungeon-runner/internal/pkg/clock"
	"github.com/KirkDiggler/dungeon-runner/internal/redis"
	runsession "github.com/KirkDiggler/dungeon-runner/internal/repositories/run_session"
	"github.com/KirkDiggler/dungeon-runner/internal/testutils"
)

const testPlayerID = "player_123"

type RedisRunSessionTestSuite struct {
	suite.Suite
	client  redis.Client
	server  *miniredis.Miniredis
	cleanup func()
	clock   *clock.Manual
	repo    runsession.Repository
	ctx     context.Context
}

func TestRedisRunSessionSuite(t *testing.T) {
	suite.Run(t, new(RedisRunSessionTestSuite))
}

func (s *RedisRunSessionTestSuite) SetupTest() {
	s.client, s.server, s.cleanup = testutils.CreateTestRedis(s.T())
	s.clock = clock.NewManual(time.Date(2024, 6, 1, 7, 0, 0, 0, time.UTC))
	s.ctx = context.Background()

	repo, err := runsession.NewRedisRepository(&runsession.Config{Client: s.client, Clock: s.clock})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRunSessionTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRunSessionTestSuite) TestNewRedisRepository() {
	_, err := runsession.NewRedisRepository(nil)
	s.Error(err)

	_, err = runsession.NewRedisRepository(&runsession.Config{Clock: s.clock})
	s.Require().Error(err)
	s.Contains(err.Error(), "redis client is required")

	_, err = runsession.NewRedisRepository(&runsession.Config{Client: s.client})
	s.Require().Error(err)
	s.Contains(err.Error(), "clock is required")
}

func (s *RedisRunSessionTestSuite) TestCreateAndGet() {
	out, err := s.repo.Create(s.ctx, runsession.CreateInput{PlayerID: testPlayerID, LevelID: "cave-crawl"})
	s.Require().NoError(err)
	s.Equal(s.clock.Now(), out.Session.StartedAt)
	s.Equal(s.clock.Now().Add(runsession.DefaultTTL), out.Session.ExpiresAt)
	s.False(out.Session.Paused())

	got, err := s.repo.Get(s.ctx, runsession.GetInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.Equal(out.Session, got.Session)
	s.Equal(runsession.DefaultTTL, s.server.TTL("run_session:"+testPlayerID))
}

func (s *RedisRunSessionTestSuite) TestCreateOnePerPlayer() {
	_, err := s.repo.Create(s.ctx, runsession.CreateInput{PlayerID: testPlayerID, LevelID: "cave-crawl"})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, runsession.CreateInput{PlayerID: testPlayerID, LevelID: "bloodbath"})
	s.True(errors.IsAlreadyExists(err))
}

func (s *RedisRunSessionTestSuite) TestCreateValidation() {
	_, err := s.repo.Create(s.ctx, runsession.CreateInput{LevelID: "cave-crawl"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, runsession.CreateInput{PlayerID: testPlayerID})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRunSessionTestSuite) TestExpiredSessionIsGone() {
	_, err := s.repo.Create(s.ctx, runsession.CreateInput{PlayerID: testPlayerID, LevelID: "cave-crawl", TTL: time.Minute})
	s.Require().NoError(err)

	s.clock.Advance(2 * time.Minute)

	_, err = s.repo.Get(s.ctx, runsession.GetInput{PlayerID: testPlayerID})
	s.True(errors.IsNotFound(err))

	// the stale session does not block a new run
	_, err = s.repo.Create(s.ctx, runsession.CreateInput{PlayerID: testPlayerID, LevelID: "cave-crawl"})
	s.NoError(err)
}

func (s *RedisRunSessionTestSuite) TestUpdateKeepsExpiry() {
	out, err := s.repo.Create(s.ctx, runsession.CreateInput{PlayerID: testPlayerID, LevelID: "cave-crawl", TTL: time.Hour})
	s.Require().NoError(err)

	s.clock.Advance(10 * time.Minute)
	session := out.Session
	session.Trace = append(session.Trace, dungeon.Point{Latitude: 51.5, Longitude: -0.12})
	session.Skips = []int{0}
	s.Require().NoError(s.repo.Update(s.ctx, session))

	got, err := s.repo.Get(s.ctx, runsession.GetInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.Equal(session.Trace, got.Session.Trace)
	s.Equal([]int{0}, got.Session.Skips)
	s.Equal(50*time.Minute, s.server.TTL("run_session:"+testPlayerID))
}

func (s *RedisRunSessionTestSuite) TestUpdateExpired() {
	out, err := s.repo.Create(s.ctx, runsession.CreateInput{PlayerID: testPlayerID, LevelID: "cave-crawl", TTL: time.Minute})
	s.Require().NoError(err)

	s.clock.Advance(time.Hour)
	s.True(errors.IsFailedPrecondition(s.repo.Update(s.ctx, out.Session)))
	s.True(errors.IsInvalidArgument(s.repo.Update(s.ctx, nil)))
}

func (s *RedisRunSessionTestSuite) TestDelete() {
	_, err := s.repo.Create(s.ctx, runsession.CreateInput{PlayerID: testPlayerID, LevelID: "cave-crawl"})
	s.Require().NoError(err)

	out, err := s.repo.Delete(s.ctx, runsession.DeleteInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.True(out.Deleted)

	out, err = s.repo.Delete(s.ctx, runsession.DeleteInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.False(out.Deleted)
}
