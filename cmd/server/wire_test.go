package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/protobuf/types/known/structpb"

	weathermock "github.com/KirkDiggler/dungeon-runner/internal/clients/weather/mock"
	"github.com/KirkDiggler/dungeon-runner/internal/config"
	"github.com/KirkDiggler/dungeon-runner/internal/errors"
	"github.com/KirkDiggler/dungeon-runner/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/dungeon-runner/internal/redis"
	"github.com/KirkDiggler/dungeon-runner/internal/testutils"
)

type WiringTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockWeather *weathermock.MockClient
	client      redisclient.Client
	cleanup     func()
	cfg         *config.Config
	ctx         context.Context
}

func TestWiringSuite(t *testing.T) {
	suite.Run(t, new(WiringTestSuite))
}

func (s *WiringTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockWeather = weathermock.NewMockClient(s.ctrl)
	s.client, s.cleanup = testutils.CreateTestRedisClient(s.T())
	s.ctx = context.Background()

	cfg, err := config.LoadFrom(func(string) (string, bool) { return "", false })
	s.Require().NoError(err)
	s.cfg = cfg
}

func (s *WiringTestSuite) TearDownTest() {
	s.cleanup()
	s.ctrl.Finish()
}

func (s *WiringTestSuite) build() *services {
	svc, err := buildServices(s.ctx, s.cfg, &dependencies{
		Redis:   s.client,
		Roller:  testutils.MaxRoller{},
		Weather: s.mockWeather,
		Clock:   clock.New(),
	})
	s.Require().NoError(err)
	s.T().Cleanup(svc.close)
	return svc
}

func (s *WiringTestSuite) request(fields map[string]interface{}) *structpb.Struct {
	req, err := structpb.NewStruct(fields)
	s.Require().NoError(err)
	return req
}

func (s *WiringTestSuite) TestSeedOnStartServesLevels() {
	svc := s.build()

	resp, err := svc.handler.ListLevels(s.ctx, &structpb.Struct{})
	s.Require().NoError(err)

	levels := resp.GetFields()["levels"].GetListValue().GetValues()
	s.Len(levels, 13)
	first := levels[0].GetStructValue().GetFields()
	s.Equal("dungeon-farm", first["id"].GetStringValue())
	s.Equal(1.0, first["ordinal"].GetNumberValue())
}

func (s *WiringTestSuite) TestEmptyStoreWithoutSeedingFails() {
	s.cfg.SeedOnStart = false

	_, err := buildServices(s.ctx, s.cfg, &dependencies{
		Redis:   s.client,
		Roller:  testutils.MaxRoller{},
		Weather: s.mockWeather,
		Clock:   clock.New(),
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *WiringTestSuite) TestSeedStoreIsRepeatable() {
	repos, err := newRepositories(s.client, clock.New())
	s.Require().NoError(err)

	first, err := seedStore(s.ctx, repos)
	s.Require().NoError(err)
	second, err := seedStore(s.ctx, repos)
	s.Require().NoError(err)
	s.Equal(first, second)
	s.Equal(406, first.Descriptors)
	s.Equal(13, first.Levels)
}

func (s *WiringTestSuite) TestCompletedRunLandsInInventoryAndJournal() {
	svc := s.build()
	player := map[string]interface{}{"player_id": "player-1"}

	resp, err := svc.handler.GrantStarterKit(s.ctx, s.request(player))
	s.Require().NoError(err)
	s.True(resp.GetFields()["granted"].GetBoolValue())
	s.Len(resp.GetFields()["items"].GetListValue().GetValues(), 12)

	resp, err = svc.handler.CompleteRun(s.ctx, s.request(map[string]interface{}{
		"player_id":       "player-1",
		"level_id":        "cave-crawl",
		"elapsed":         "1:00:00",
		"distance_meters": 8000,
		"temperature_f":   70,
	}))
	s.Require().NoError(err)

	record := resp.GetFields()["record"].GetStructValue().GetFields()
	item := resp.GetFields()["item"].GetStructValue().GetFields()
	s.Equal("success", record["outcome"].GetStringValue())
	s.Equal("Fine", record["weather"].GetStringValue())
	s.Equal("1:00:00", record["elapsed"].GetStringValue())
	s.Positive(record["reward_points"].GetNumberValue())
	s.Equal(record["reward_points"].GetNumberValue(), item["points"].GetNumberValue())
	s.Equal(item["id"].GetStringValue(), record["reward_item_id"].GetStringValue())
	s.Equal("Source: Cave Crawl [success]", item["description"].GetStringValue())

	resp, err = svc.handler.ListItems(s.ctx, s.request(player))
	s.Require().NoError(err)
	s.Len(resp.GetFields()["items"].GetListValue().GetValues(), 13)

	resp, err = svc.handler.ListJournal(s.ctx, s.request(player))
	s.Require().NoError(err)
	s.Len(resp.GetFields()["records"].GetListValue().GetValues(), 1)

	resp, err = svc.handler.GrantStarterKit(s.ctx, s.request(player))
	s.Require().NoError(err)
	s.False(resp.GetFields()["granted"].GetBoolValue())
}

func (s *WiringTestSuite) TestTrackedRun() {
	svc := s.build()
	player := map[string]interface{}{"player_id": "runner"}

	_, err := svc.handler.StartRun(s.ctx, s.request(map[string]interface{}{
		"player_id": "runner", "level_id": "dungeon-farm",
	}))
	s.Require().NoError(err)

	for _, lat := range []float64{51.5, 51.501, 51.502} {
		_, err = svc.handler.RecordPoint(s.ctx, s.request(map[string]interface{}{
			"player_id": "runner", "lat": lat, "lon": -0.12,
		}))
		s.Require().NoError(err)
	}

	temperature := 33.0
	s.mockWeather.EXPECT().
		CurrentTemperature(gomock.Any(), 51.502, -0.12).
		Return(&temperature, nil)

	resp, err := svc.handler.FinishRun(s.ctx, s.request(player))
	s.Require().NoError(err)

	s.InDelta(222, resp.GetFields()["distance_meters"].GetNumberValue(), 1)
	record := resp.GetFields()["run"].GetStructValue().GetFields()["record"].GetStructValue().GetFields()
	s.Equal("Glacial", record["weather"].GetStringValue())
	s.Equal("success", record["outcome"].GetStringValue())

	_, err = svc.handler.FinishRun(s.ctx, s.request(player))
	s.Error(err, "the session is closed")
}
