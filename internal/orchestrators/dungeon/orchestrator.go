// Package dungeon implements the dungeon orchestrator: it scores finished
// runs, forges their reward items and keeps the player's journal
package dungeon

//go:generate mockgen -destination=mock/mock_service.go -package=dungeonmock github.com/KirkDiggler/dungeon-runner/internal/orchestrators/dungeon Service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/dungeon-runner/internal/engine"
	"github.com/KirkDiggler/dungeon-runner/internal/entities/dungeon"
	"github.com/KirkDiggler/dungeon-runner/internal/entities/gear"
	"github.com/KirkDiggler/dungeon-runner/internal/errors"
	"github.com/KirkDiggler/dungeon-runner/internal/pkg/clock"
	"github.com/KirkDiggler/dungeon-runner/internal/pkg/idgen"
	"github.com/KirkDiggler/dungeon-runner/internal/repositories/inventory"
	"github.com/KirkDiggler/dungeon-runner/internal/repositories/journal"
	"github.com/KirkDiggler/dungeon-runner/internal/repositories/levels"
)

// NoRewardText is the journal reward text of an unrewarded run
const NoRewardText = "No reward"

// Service defines the interface for dungeon operations
type Service interface {
	ListLevels(ctx context.Context, input *ListLevelsInput) (*ListLevelsOutput, error)

	// CompleteRun classifies and scores a run, forges its reward and
	// journals it
	CompleteRun(ctx context.Context, input *CompleteRunInput) (*CompleteRunOutput, error)

	ListJournal(ctx context.Context, input *ListJournalInput) (*ListJournalOutput, error)
}

// Config holds the dependencies for the dungeon orchestrator
type Config struct {
	LevelRepo     levels.Repository
	InventoryRepo inventory.Repository
	JournalRepo   journal.Repository
	Engine        engine.Engine
	EventBus      events.EventBus
	Clock         clock.Clock
	ItemIDGen     idgen.Generator
	RecordIDGen   idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.LevelRepo == nil {
		vb.RequiredField("LevelRepo")
	}
	if c.InventoryRepo == nil {
		vb.RequiredField("InventoryRepo")
	}
	if c.JournalRepo == nil {
		vb.RequiredField("JournalRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.ItemIDGen == nil {
		vb.RequiredField("ItemIDGen")
	}
	if c.RecordIDGen == nil {
		vb.RequiredField("RecordIDGen")
	}

	return vb.Build()
}

type orchestrator struct {
	levelRepo     levels.Repository
	inventoryRepo inventory.Repository
	journalRepo   journal.Repository
	engine        engine.Engine
	eventBus      events.EventBus
	clock         clock.Clock
	itemIDGen     idgen.Generator
	recordIDGen   idgen.Generator
}

// NewOrchestrator creates a new dungeon orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		levelRepo:     cfg.LevelRepo,
		inventoryRepo: cfg.InventoryRepo,
		journalRepo:   cfg.JournalRepo,
		engine:        cfg.Engine,
		eventBus:      cfg.EventBus,
		clock:         cfg.Clock,
		itemIDGen:     cfg.ItemIDGen,
		recordIDGen:   cfg.RecordIDGen,
	}, nil
}

// ListLevels returns every level in ordinal order
func (o *orchestrator) ListLevels(ctx context.Context, _ *ListLevelsInput) (*ListLevelsOutput, error) {
	out, err := o.levelRepo.List(ctx, levels.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list levels")
	}

	return &ListLevelsOutput{Levels: out.Levels}, nil
}

// CompleteRun runs the reward pipeline for one finished run
func (o *orchestrator) CompleteRun(ctx context.Context, input *CompleteRunInput) (*CompleteRunOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("PlayerID", input.PlayerID, vb)
	errors.ValidateRequired("LevelID", input.LevelID, vb)
	errors.ValidateNonNegative("ElapsedSeconds", input.ElapsedSeconds, vb)
	errors.ValidateNonNegative("DistanceMeters", input.DistanceMeters, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	levelOut, err := o.levelRepo.Get(ctx, levels.GetInput{ID: input.LevelID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get level %s", input.LevelID)
	}
	level := levelOut.Level

	classified, err := o.engine.ClassifyRun(&engine.ClassifyRunInput{
		Level:          level,
		ElapsedSeconds: input.ElapsedSeconds,
		DistanceMeters: input.DistanceMeters,
	})
	if err != nil {
		return nil, err
	}

	scored, err := o.engine.ScoreRun(&engine.ScoreRunInput{
		Level:          level,
		ElapsedSeconds: input.ElapsedSeconds,
		DistanceMeters: input.DistanceMeters,
		Outcome:        classified.Outcome,
		TemperatureF:   input.TemperatureF,
	})
	if err != nil {
		return nil, err
	}

	now := o.clock.Now()

	var item *gear.Item
	if !input.Unrewarded {
		item, err = o.forge(input.PlayerID, level, classified.Outcome, scored.Reward.Points)
		if err != nil {
			return nil, err
		}
	}

	record := &dungeon.Record{
		ID:             o.recordIDGen.Generate(),
		PlayerID:       input.PlayerID,
		CompletedAt:    now,
		LevelID:        level.ID,
		LevelName:      level.Name,
		Outcome:        classified.Outcome,
		DistanceMeters: input.DistanceMeters,
		ElapsedSeconds: input.ElapsedSeconds,
		PaceKmh:        classified.PaceKmh,
		Weather:        scored.Weather,
		RewardPoints:   scored.Reward.Points,
		RewardText:     NoRewardText,
		Trace:          input.Trace,
		Skips:          input.Skips,
	}
	if item != nil {
		record.RewardItemID = item.ID
		record.RewardText = fmt.Sprintf("%s (%d)", item.Name, item.Points)
	}

	// Journal before storing the item: a failed journal write must leave
	// no item behind.
	if _, err := o.journalRepo.Append(ctx, journal.AppendInput{Record: record}); err != nil {
		return nil, errors.Wrap(err, "failed to journal run")
	}
	if item != nil {
		if _, err := o.inventoryRepo.Add(ctx, inventory.AddInput{
			PlayerID: input.PlayerID,
			Items:    []*gear.Item{item},
		}); err != nil {
			return nil, errors.Wrapf(err, "failed to store reward item for run %s", record.ID)
		}
	}

	o.publish(ctx, record, item)

	slog.Info("run completed",
		"player_id", input.PlayerID,
		"level_id", level.ID,
		"outcome", classified.Outcome,
		"weather", scored.Weather,
		"points", scored.Reward.Points,
		"reward", record.RewardText)

	return &CompleteRunOutput{
		Record: record,
		Item:   item,
		Shape:  classified.Shape,
		Reward: scored.Reward,
	}, nil
}

// forge composes a reward item for the run
func (o *orchestrator) forge(
	playerID string,
	level *dungeon.Level,
	outcome dungeon.Outcome,
	points int,
) (*gear.Item, error) {
	forged, err := o.engine.ForgeItem(&engine.ForgeItemInput{Points: points})
	if err != nil {
		return nil, err
	}

	item := &gear.Item{
		ID:          o.itemIDGen.Generate(),
		PlayerID:    playerID,
		Slot:        forged.Slot,
		Name:        forged.Name,
		Description: fmt.Sprintf("Source: %s [%s]", level.Name, outcome),
		Stats:       forged.Stats,
		Points:      points,
		CreatedAt:   o.clock.Now(),
	}

	return item, nil
}

// publish announces the run. Handler failures are logged, the run is
// already journaled.
func (o *orchestrator) publish(ctx context.Context, record *dungeon.Record, item *gear.Item) {
	var target core.Entity
	if item != nil {
		target = item
	}

	if err := o.eventBus.Publish(ctx, events.NewGameEvent(dungeon.EventRunCompleted, record, target)); err != nil {
		slog.Warn("failed to publish event", "type", dungeon.EventRunCompleted, "error", err)
	}
	if item == nil {
		return
	}
	if err := o.eventBus.Publish(ctx, events.NewGameEvent(gear.EventItemForged, record, item)); err != nil {
		slog.Warn("failed to publish event", "type", gear.EventItemForged, "error", err)
	}
}

// ListJournal returns the player's records, newest first
func (o *orchestrator) ListJournal(ctx context.Context, input *ListJournalInput) (*ListJournalOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("PlayerID", input.PlayerID, vb)
	errors.ValidateRange("Limit", input.Limit, 0, journal.MaxLimit, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.journalRepo.List(ctx, journal.ListInput{
		PlayerID: input.PlayerID,
		Limit:    input.Limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list journal")
	}

	return &ListJournalOutput{Records: out.Records}, nil
}
