package dungeon_test

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/dungeon-runner/internal/engine"
	enginemock "github.com/KirkDiggler/dungeon-runner/internal/engine/mock"
	"github.com/KirkDiggler/dungeon-runner/internal/entities/dungeon"
	"github.com/KirkDiggler/dungeon-runner/internal/entities/gear"
	"github.com/KirkDiggler/dungeon-runner/internal/errors"
	dungeonorchestrator "github.com/KirkDiggler/dungeon-runner/internal/orchestrators/dungeon"
	"github.com/KirkDiggler/dungeon-runner/internal/pkg/clock"
	"github.com/KirkDiggler/dungeon-runner/internal/pkg/idgen"
	"github.com/KirkDiggler/dungeon-runner/internal/repositories/inventory"
	inventorymock "github.com/KirkDiggler/dungeon-runner/internal/repositories/inventory/mock"
	"github.com/KirkDiggler/dungeon-runner/internal/repositories/journal"
	journalmock "github.com/KirkDiggler/dungeon-runner/internal/repositories/journal/mock"
	"github.com/KirkDiggler/dungeon-runner/internal/repositories/levels"
	levelsmock "github.com/KirkDiggler/dungeon-runner/internal/repositories/levels/mock"
	"github.com/KirkDiggler/dungeon-runner/internal/testutils"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockLevelRepo     *levelsmock.MockRepository
	mockInventoryRepo *inventorymock.MockRepository
	mockJournalRepo   *journalmock.MockRepository
	mockEngine        *enginemock.MockEngine
	bus               events.EventBus
	published         []events.Event
	now               time.Time
	orchestrator      dungeonorchestrator.Service
	ctx               context.Context

	playerID string
	level    dungeon.Level
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockLevelRepo = levelsmock.NewMockRepository(s.ctrl)
	s.mockInventoryRepo = inventorymock.NewMockRepository(s.ctrl)
	s.mockJournalRepo = journalmock.NewMockRepository(s.ctrl)
	s.mockEngine = enginemock.NewMockEngine(s.ctrl)
	s.ctx = context.Background()
	s.now = time.Date(2024, 6, 1, 7, 30, 0, 0, time.UTC)
	s.playerID = "player-123"
	s.level = testutils.LevelEscape

	s.published = nil
	s.bus = events.NewBus()
	record := func(_ context.Context, e events.Event) error {
		s.published = append(s.published, e)
		return nil
	}
	s.bus.SubscribeFunc(dungeon.EventRunCompleted, 0, record)
	s.bus.SubscribeFunc(gear.EventItemForged, 0, record)

	orchestrator, err := dungeonorchestrator.NewOrchestrator(&dungeonorchestrator.Config{
		LevelRepo:     s.mockLevelRepo,
		InventoryRepo: s.mockInventoryRepo,
		JournalRepo:   s.mockJournalRepo,
		Engine:        s.mockEngine,
		EventBus:      s.bus,
		Clock:         clock.NewManual(s.now),
		ItemIDGen:     idgen.NewSequential(idgen.PrefixItem),
		RecordIDGen:   idgen.NewSequential(idgen.PrefixRecord),
	})
	s.Require().NoError(err)
	s.orchestrator = orchestrator
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) expectLevel() {
	level := s.level
	s.mockLevelRepo.EXPECT().
		Get(s.ctx, levels.GetInput{ID: s.level.ID}).
		Return(&levels.GetOutput{Level: &level}, nil)
}

func (s *OrchestratorTestSuite) expectScoring(outcome dungeon.Outcome, temperature *float64, points int) {
	level := s.level
	s.mockEngine.EXPECT().
		ClassifyRun(&engine.ClassifyRunInput{Level: &level, ElapsedSeconds: 1800, DistanceMeters: 5000}).
		Return(&engine.ClassifyRunOutput{Outcome: outcome, Shape: dungeon.ShapeTimeDistancePace, PaceKmh: 10}, nil)
	s.mockEngine.EXPECT().
		ScoreRun(&engine.ScoreRunInput{
			Level:          &level,
			ElapsedSeconds: 1800,
			DistanceMeters: 5000,
			Outcome:        outcome,
			TemperatureF:   temperature,
		}).
		Return(&engine.ScoreRunOutput{
			Weather:           dungeon.WeatherHot,
			WeatherMultiplier: 1.2,
			Reward:            &engine.Reward{PaceKmh: 10, Points: points},
		}, nil)
}

func (s *OrchestratorTestSuite) TestNewOrchestrator_MissingDependencies() {
	_, err := dungeonorchestrator.NewOrchestrator(&dungeonorchestrator.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "LevelRepo")
	s.Contains(err.Error(), "EventBus")

	_, err = dungeonorchestrator.NewOrchestrator(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestCompleteRun_Rewarded() {
	temperature := 90.0
	s.expectLevel()
	s.expectScoring(dungeon.OutcomeSuccess, &temperature, 2880)

	s.mockEngine.EXPECT().
		ForgeItem(&engine.ForgeItemInput{Points: 2880}).
		Return(&engine.ForgeItemOutput{
			Slot:  gear.SlotHead,
			Name:  "Bear's Cowl",
			Stats: gear.Stats{Strength: 960, Intelligence: 1920},
		}, nil)

	expectedItem := &gear.Item{
		ID:          "item_1",
		PlayerID:    s.playerID,
		Slot:        gear.SlotHead,
		Name:        "Bear's Cowl",
		Description: "Source: Escape of the Crumbling Ruins [success]",
		Stats:       gear.Stats{Strength: 960, Intelligence: 1920},
		Points:      2880,
		CreatedAt:   s.now,
	}
	s.mockInventoryRepo.EXPECT().
		Add(s.ctx, inventory.AddInput{PlayerID: s.playerID, Items: []*gear.Item{expectedItem}}).
		Return(&inventory.AddOutput{Items: []*gear.Item{expectedItem}}, nil)

	var journaled *dungeon.Record
	s.mockJournalRepo.EXPECT().
		Append(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input journal.AppendInput) (*journal.AppendOutput, error) {
			journaled = input.Record
			return &journal.AppendOutput{Record: input.Record}, nil
		})

	trace := []dungeon.Point{{Latitude: 51.5, Longitude: -0.12}, {Latitude: 51.51, Longitude: -0.12}}
	out, err := s.orchestrator.CompleteRun(s.ctx, &dungeonorchestrator.CompleteRunInput{
		PlayerID:       s.playerID,
		LevelID:        s.level.ID,
		ElapsedSeconds: 1800,
		DistanceMeters: 5000,
		TemperatureF:   &temperature,
		Trace:          trace,
	})
	s.Require().NoError(err)

	s.Equal(expectedItem, out.Item)
	s.Equal(dungeon.ShapeTimeDistancePace, out.Shape)
	s.Equal(2880, out.Reward.Points)

	s.Same(journaled, out.Record)
	s.Equal("run_1", out.Record.ID)
	s.Equal(s.now, out.Record.CompletedAt)
	s.Equal(s.level.Name, out.Record.LevelName)
	s.Equal(dungeon.OutcomeSuccess, out.Record.Outcome)
	s.Equal(dungeon.WeatherHot, out.Record.Weather)
	s.Equal(10.0, out.Record.PaceKmh)
	s.Equal("item_1", out.Record.RewardItemID)
	s.Equal("Bear's Cowl (2880)", out.Record.RewardText)
	s.Equal(trace, out.Record.Trace)

	s.Require().Len(s.published, 2)
	s.Equal(dungeon.EventRunCompleted, s.published[0].Type())
	s.Same(out.Record, s.published[0].Source())
	s.Equal(gear.EventItemForged, s.published[1].Type())
	s.Same(out.Item, s.published[1].Target())
}

func (s *OrchestratorTestSuite) TestCompleteRun_Unrewarded() {
	s.expectLevel()
	s.expectScoring(dungeon.OutcomeFailure, nil, 1008)

	s.mockJournalRepo.EXPECT().
		Append(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input journal.AppendInput) (*journal.AppendOutput, error) {
			return &journal.AppendOutput{Record: input.Record}, nil
		})

	out, err := s.orchestrator.CompleteRun(s.ctx, &dungeonorchestrator.CompleteRunInput{
		PlayerID:       s.playerID,
		LevelID:        s.level.ID,
		ElapsedSeconds: 1800,
		DistanceMeters: 5000,
		Unrewarded:     true,
	})
	s.Require().NoError(err)

	s.Nil(out.Item)
	s.Empty(out.Record.RewardItemID)
	s.Equal(dungeonorchestrator.NoRewardText, out.Record.RewardText)
	s.Equal(1008, out.Record.RewardPoints)

	s.Require().Len(s.published, 1)
	s.Equal(dungeon.EventRunCompleted, s.published[0].Type())
	s.Nil(s.published[0].Target())
}

func (s *OrchestratorTestSuite) TestCompleteRun_LevelNotFound() {
	s.mockLevelRepo.EXPECT().
		Get(s.ctx, levels.GetInput{ID: "missing"}).
		Return(nil, errors.NotFound("level not found"))

	out, err := s.orchestrator.CompleteRun(s.ctx, &dungeonorchestrator.CompleteRunInput{
		PlayerID: s.playerID,
		LevelID:  "missing",
	})
	s.Nil(out)
	s.True(errors.IsNotFound(err))
	s.Contains(err.Error(), "failed to get level missing")
}

func (s *OrchestratorTestSuite) TestCompleteRun_DomainErrorsPassThrough() {
	s.expectLevel()
	shapeErr := errors.UnrecognizedConstraintShape(s.level.ID, 1800, 0, 0)
	s.mockEngine.EXPECT().ClassifyRun(gomock.Any()).Return(nil, shapeErr)

	_, err := s.orchestrator.CompleteRun(s.ctx, &dungeonorchestrator.CompleteRunInput{
		PlayerID:       s.playerID,
		LevelID:        s.level.ID,
		ElapsedSeconds: 1800,
		DistanceMeters: 5000,
	})
	s.Equal(shapeErr, err)
	s.Empty(s.published)
}

func (s *OrchestratorTestSuite) TestCompleteRun_ForgeNoMatchAbortsBeforeJournal() {
	s.expectLevel()
	s.expectScoring(dungeon.OutcomeSuccess, nil, 100)
	noMatch := errors.NoMatch(string(gear.RoleTypeNoun), []string{"blunt"})
	s.mockEngine.EXPECT().ForgeItem(gomock.Any()).Return(nil, noMatch)

	_, err := s.orchestrator.CompleteRun(s.ctx, &dungeonorchestrator.CompleteRunInput{
		PlayerID:       s.playerID,
		LevelID:        s.level.ID,
		ElapsedSeconds: 1800,
		DistanceMeters: 5000,
	})
	s.True(errors.IsNoMatch(err))
}

func (s *OrchestratorTestSuite) TestCompleteRun_JournalFailureStoresNoItem() {
	input := &dungeonorchestrator.CompleteRunInput{
		PlayerID:       s.playerID,
		LevelID:        s.level.ID,
		ElapsedSeconds: 1800,
		DistanceMeters: 5000,
	}
	forged := &engine.ForgeItemOutput{Slot: gear.SlotFeet, Name: "Swift Boots", Stats: gear.Stats{Agility: 50}}

	var stored []string
	s.mockInventoryRepo.EXPECT().
		Add(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in inventory.AddInput) (*inventory.AddOutput, error) {
			for _, item := range in.Items {
				stored = append(stored, item.ID)
			}
			return &inventory.AddOutput{Items: in.Items}, nil
		}).
		AnyTimes()

	// First attempt: the journal is down
	s.expectLevel()
	s.expectScoring(dungeon.OutcomeSuccess, nil, 50)
	s.mockEngine.EXPECT().ForgeItem(&engine.ForgeItemInput{Points: 50}).Return(forged, nil)
	s.mockJournalRepo.EXPECT().
		Append(s.ctx, gomock.Any()).
		Return(nil, errors.Unavailablef("journal unavailable"))

	_, err := s.orchestrator.CompleteRun(s.ctx, input)
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
	s.Empty(stored)
	s.Empty(s.published)

	// Retry succeeds and pays out once
	s.expectLevel()
	s.expectScoring(dungeon.OutcomeSuccess, nil, 50)
	s.mockEngine.EXPECT().ForgeItem(&engine.ForgeItemInput{Points: 50}).Return(forged, nil)
	s.mockJournalRepo.EXPECT().
		Append(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in journal.AppendInput) (*journal.AppendOutput, error) {
			return &journal.AppendOutput{Record: in.Record}, nil
		})

	out, err := s.orchestrator.CompleteRun(s.ctx, input)
	s.Require().NoError(err)
	s.Equal([]string{out.Item.ID}, stored)
	s.Equal(out.Item.ID, out.Record.RewardItemID)
}

func (s *OrchestratorTestSuite) TestCompleteRun_InventoryFailureAfterJournal() {
	s.expectLevel()
	s.expectScoring(dungeon.OutcomeSuccess, nil, 50)
	s.mockEngine.EXPECT().
		ForgeItem(gomock.Any()).
		Return(&engine.ForgeItemOutput{Slot: gear.SlotFeet, Name: "Swift Boots"}, nil)

	gomock.InOrder(
		s.mockJournalRepo.EXPECT().
			Append(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, in journal.AppendInput) (*journal.AppendOutput, error) {
				return &journal.AppendOutput{Record: in.Record}, nil
			}),
		s.mockInventoryRepo.EXPECT().
			Add(s.ctx, gomock.Any()).
			Return(nil, errors.Unavailablef("inventory unavailable")),
	)

	_, err := s.orchestrator.CompleteRun(s.ctx, &dungeonorchestrator.CompleteRunInput{
		PlayerID:       s.playerID,
		LevelID:        s.level.ID,
		ElapsedSeconds: 1800,
		DistanceMeters: 5000,
	})
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
	s.Contains(err.Error(), "run_1")
	s.Empty(s.published)
}

func (s *OrchestratorTestSuite) TestCompleteRun_Validation() {
	_, err := s.orchestrator.CompleteRun(s.ctx, &dungeonorchestrator.CompleteRunInput{
		ElapsedSeconds: -1,
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "PlayerID")
	s.Contains(err.Error(), "LevelID")
	s.Contains(err.Error(), "ElapsedSeconds")

	_, err = s.orchestrator.CompleteRun(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestListLevels() {
	farm, escape := testutils.LevelFarm, testutils.LevelEscape
	s.mockLevelRepo.EXPECT().
		List(s.ctx, levels.ListInput{}).
		Return(&levels.ListOutput{Levels: []*dungeon.Level{&farm, &escape}}, nil)

	out, err := s.orchestrator.ListLevels(s.ctx, &dungeonorchestrator.ListLevelsInput{})
	s.Require().NoError(err)
	s.Equal([]*dungeon.Level{&farm, &escape}, out.Levels)
}

func (s *OrchestratorTestSuite) TestListJournal() {
	records := []*dungeon.Record{{ID: "run_2"}, {ID: "run_1"}}
	s.mockJournalRepo.EXPECT().
		List(s.ctx, journal.ListInput{PlayerID: s.playerID, Limit: 10}).
		Return(&journal.ListOutput{Records: records}, nil)

	out, err := s.orchestrator.ListJournal(s.ctx, &dungeonorchestrator.ListJournalInput{
		PlayerID: s.playerID,
		Limit:    10,
	})
	s.Require().NoError(err)
	s.Equal(records, out.Records)
}

func (s *OrchestratorTestSuite) TestListJournal_InvalidInput() {
	_, err := s.orchestrator.ListJournal(s.ctx, &dungeonorchestrator.ListJournalInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.ListJournal(s.ctx, &dungeonorchestrator.ListJournalInput{PlayerID: s.playerID, Limit: -1})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.ListJournal(s.ctx, &dungeonorchestrator.ListJournalInput{
		PlayerID: s.playerID,
		Limit:    journal.MaxLimit + 1,
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "Limit")

	_, err = s.orchestrator.ListJournal(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
