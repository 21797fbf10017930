package dungeon

import (
	"github.com/KirkDiggler/dungeon-runner/internal/engine"
	"github.com/KirkDiggler/dungeon-runner/internal/entities/dungeon"
	"github.com/KirkDiggler/dungeon-runner/internal/entities/gear"
)

// ListLevelsInput defines the request for listing levels
type ListLevelsInput struct{}

// ListLevelsOutput defines the response for listing levels
type ListLevelsOutput struct {
	Levels []*dungeon.Level
}

// CompleteRunInput is a measured run ready to be scored.
// TemperatureF is nil when no reading could be taken.
type CompleteRunInput struct {
	PlayerID       string
	LevelID        string
	ElapsedSeconds int
	DistanceMeters int
	TemperatureF   *float64
	Trace          []dungeon.Point
	Skips          []int

	// Unrewarded journals the run without forging an item
	Unrewarded bool
}

// CompleteRunOutput defines the response for completing a run
type CompleteRunOutput struct {
	Record *dungeon.Record
	Item   *gear.Item // nil when unrewarded
	Shape  dungeon.Shape
	Reward *engine.Reward
}

// ListJournalInput defines the request for a player's journal
type ListJournalInput struct {
	PlayerID string
	Limit    int // zero means journal.DefaultLimit
}

// ListJournalOutput defines the response for a player's journal
type ListJournalOutput struct {
	Records []*dungeon.Record
}
