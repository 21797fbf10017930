package run

import (
	"github.com/KirkDiggler/dungeon-runner/internal/entities/dungeon"
	dungeonorchestrator "github.com/KirkDiggler/dungeon-runner/internal/orchestrators/dungeon"
	runsession "github.com/KirkDiggler/dungeon-runner/internal/repositories/run_session"
)

// StartRunInput defines the request for starting a tracked run
type StartRunInput struct {
	PlayerID string
	LevelID  string
}

// StartRunOutput defines the response for starting a tracked run
type StartRunOutput struct {
	Session *runsession.Session
}

// RecordPointInput is one location sample
type RecordPointInput struct {
	PlayerID string
	Point    dungeon.Point
}

// RecordPointOutput reports whether the point made it onto the trace
type RecordPointOutput struct {
	Session  *runsession.Session
	Recorded bool
}

// PauseRunInput defines the request for pausing a run
type PauseRunInput struct {
	PlayerID string
}

// PauseRunOutput defines the response for pausing a run
type PauseRunOutput struct {
	Session *runsession.Session
}

// ResumeRunInput defines the request for resuming a run
type ResumeRunInput struct {
	PlayerID string
}

// ResumeRunOutput defines the response for resuming a run
type ResumeRunOutput struct {
	Session *runsession.Session
}

// FinishRunInput defines the request for finishing a run
type FinishRunInput struct {
	PlayerID string
}

// FinishRunOutput carries the scored run
type FinishRunOutput struct {
	ElapsedSeconds int
	DistanceMeters int
	Result         *dungeonorchestrator.CompleteRunOutput
}
