// Package run implements the run orchestrator for tracking a run point by
// point until it is finished and scored
package run

//go:generate mockgen -destination=mock/mock_service.go -package=runmock github.com/KirkDiggler/dungeon-runner/internal/orchestrators/run Service

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/dungeon-runner/internal/clients/weather"
	"github.com/KirkDiggler/dungeon-runner/internal/engine"
	"github.com/KirkDiggler/dungeon-runner/internal/errors"
	dungeonorchestrator "github.com/KirkDiggler/dungeon-runner/internal/orchestrators/dungeon"
	"github.com/KirkDiggler/dungeon-runner/internal/pkg/clock"
	"github.com/KirkDiggler/dungeon-runner/internal/repositories/levels"
	runsession "github.com/KirkDiggler/dungeon-runner/internal/repositories/run_session"
)

// Service defines the interface for tracked run operations
type Service interface {
	StartRun(ctx context.Context, input *StartRunInput) (*StartRunOutput, error)
	RecordPoint(ctx context.Context, input *RecordPointInput) (*RecordPointOutput, error)
	PauseRun(ctx context.Context, input *PauseRunInput) (*PauseRunOutput, error)
	ResumeRun(ctx context.Context, input *ResumeRunInput) (*ResumeRunOutput, error)

	// FinishRun measures the trace and hands the run to the dungeon
	// orchestrator. A run without a single point earns no item.
	FinishRun(ctx context.Context, input *FinishRunInput) (*FinishRunOutput, error)
}

// Config holds the dependencies for the run orchestrator
type Config struct {
	SessionRepo runsession.Repository
	LevelRepo   levels.Repository
	Dungeon     dungeonorchestrator.Service
	Weather     weather.Client
	Clock       clock.Clock

	// SessionTTL bounds how long a run may stay open, zero means
	// runsession.DefaultTTL
	SessionTTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.SessionRepo == nil {
		vb.RequiredField("SessionRepo")
	}
	if c.LevelRepo == nil {
		vb.RequiredField("LevelRepo")
	}
	if c.Dungeon == nil {
		vb.RequiredField("Dungeon")
	}
	if c.Weather == nil {
		vb.RequiredField("Weather")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.SessionTTL < 0 {
		vb.InvalidField("SessionTTL", "cannot be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	sessionRepo runsession.Repository
	levelRepo   levels.Repository
	dungeon     dungeonorchestrator.Service
	weather     weather.Client
	clock       clock.Clock
	sessionTTL  time.Duration
}

// NewOrchestrator creates a new run orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		sessionRepo: cfg.SessionRepo,
		levelRepo:   cfg.LevelRepo,
		dungeon:     cfg.Dungeon,
		weather:     cfg.Weather,
		clock:       cfg.Clock,
		sessionTTL:  cfg.SessionTTL,
	}, nil
}

// StartRun opens a session against an existing level
func (o *orchestrator) StartRun(ctx context.Context, input *StartRunInput) (*StartRunOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("PlayerID", input.PlayerID, vb)
	errors.ValidateRequired("LevelID", input.LevelID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if _, err := o.levelRepo.Get(ctx, levels.GetInput{ID: input.LevelID}); err != nil {
		return nil, errors.Wrapf(err, "failed to get level %s", input.LevelID)
	}

	out, err := o.sessionRepo.Create(ctx, runsession.CreateInput{
		PlayerID: input.PlayerID,
		LevelID:  input.LevelID,
		TTL:      o.sessionTTL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to start run")
	}

	slog.Info("run started", "player_id", input.PlayerID, "level_id", input.LevelID)

	return &StartRunOutput{Session: out.Session}, nil
}

// RecordPoint appends a location to the trace. Points are dropped while
// paused and when they repeat the previous point.
func (o *orchestrator) RecordPoint(ctx context.Context, input *RecordPointInput) (*RecordPointOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("PlayerID", input.PlayerID, vb)
	errors.ValidateLatLon("Point", input.Point.Latitude, input.Point.Longitude, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	session, err := o.getSession(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	if session.Paused() {
		return &RecordPointOutput{Session: session}, nil
	}
	if n := len(session.Trace); n > 0 && session.Trace[n-1] == input.Point {
		return &RecordPointOutput{Session: session}, nil
	}

	session.Trace = append(session.Trace, input.Point)
	if err := o.sessionRepo.Update(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to record point")
	}

	return &RecordPointOutput{Session: session, Recorded: true}, nil
}

// PauseRun stops the clock and marks the last point so the gap to the
// next point is not counted as distance
func (o *orchestrator) PauseRun(ctx context.Context, input *PauseRunInput) (*PauseRunOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	session, err := o.getSession(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}
	if session.Paused() {
		return nil, errors.FailedPreconditionf("run for player %s is already paused", input.PlayerID)
	}

	if last := len(session.Trace) - 1; last >= 0 {
		if n := len(session.Skips); n == 0 || session.Skips[n-1] != last {
			session.Skips = append(session.Skips, last)
		}
	}
	now := o.clock.Now()
	session.PausedAt = &now

	if err := o.sessionRepo.Update(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to pause run")
	}

	slog.Debug("run paused", "player_id", input.PlayerID, "points", len(session.Trace))

	return &PauseRunOutput{Session: session}, nil
}

// ResumeRun restarts the clock
func (o *orchestrator) ResumeRun(ctx context.Context, input *ResumeRunInput) (*ResumeRunOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	session, err := o.getSession(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}
	if !session.Paused() {
		return nil, errors.FailedPreconditionf("run for player %s is not paused", input.PlayerID)
	}

	o.closePause(session)

	if err := o.sessionRepo.Update(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to resume run")
	}

	slog.Debug("run resumed", "player_id", input.PlayerID, "paused_seconds", session.PausedSeconds)

	return &ResumeRunOutput{Session: session}, nil
}

// FinishRun scores the session and closes it
func (o *orchestrator) FinishRun(ctx context.Context, input *FinishRunInput) (*FinishRunOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	session, err := o.getSession(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}
	if session.Paused() {
		o.closePause(session)
	}

	elapsed := int(o.clock.Now().Sub(session.StartedAt)/time.Second) - session.PausedSeconds
	if elapsed < 0 {
		elapsed = 0
	}
	distance := engine.TraceDistance(session.Trace, session.Skips)

	var temperature *float64
	unrewarded := len(session.Trace) == 0
	if !unrewarded {
		last := session.Trace[len(session.Trace)-1]
		temperature = weather.Lookup(ctx, o.weather, last.Latitude, last.Longitude)
	}

	result, err := o.dungeon.CompleteRun(ctx, &dungeonorchestrator.CompleteRunInput{
		PlayerID:       session.PlayerID,
		LevelID:        session.LevelID,
		ElapsedSeconds: elapsed,
		DistanceMeters: distance,
		TemperatureF:   temperature,
		Trace:          session.Trace,
		Skips:          session.Skips,
		Unrewarded:     unrewarded,
	})
	if err != nil {
		return nil, err
	}

	if _, err := o.sessionRepo.Delete(ctx, runsession.DeleteInput{PlayerID: input.PlayerID}); err != nil {
		slog.Warn("failed to close run session", "player_id", input.PlayerID, "error", err)
	}

	return &FinishRunOutput{
		ElapsedSeconds: elapsed,
		DistanceMeters: distance,
		Result:         result,
	}, nil
}

func (o *orchestrator) getSession(ctx context.Context, playerID string) (*runsession.Session, error) {
	out, err := o.sessionRepo.Get(ctx, runsession.GetInput{PlayerID: playerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get run")
	}
	return out.Session, nil
}

func (o *orchestrator) closePause(session *runsession.Session) {
	paused := o.clock.Now().Sub(*session.PausedAt)
	if paused > 0 {
		session.PausedSeconds += int(paused / time.Second)
	}
	session.PausedAt = nil
}
