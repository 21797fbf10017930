package dungeon

import (
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// RecordEntityType is the core.Entity type reported by journal records
const RecordEntityType = "dungeon_record"

// Point is one sampled location of a run
type Point struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
	Elevation float64 `json:"ele"`
}

// Record is a journal entry for one completed run
type Record struct {
	ID             string    `json:"id"`
	PlayerID       string    `json:"player_id"`
	CompletedAt    time.Time `json:"completed_at"`
	LevelID        string    `json:"level_id"`
	LevelName      string    `json:"level_name"`
	Outcome        Outcome   `json:"outcome"`
	DistanceMeters int       `json:"distance_meters"`
	ElapsedSeconds int       `json:"elapsed_seconds"`
	PaceKmh        float64   `json:"pace_kmh"`
	Weather        Weather   `json:"weather"`
	RewardPoints   int       `json:"reward_points"`
	RewardItemID   string    `json:"reward_item_id,omitempty"`
	RewardText     string    `json:"reward_text"`
	Trace          []Point   `json:"trace,omitempty"`
	Skips          []int     `json:"skips,omitempty"`
}

var _ core.Entity = (*Record)(nil)

// GetID implements core.Entity
func (r *Record) GetID() string {
	return r.ID
}

// GetType implements core.Entity
func (r *Record) GetType() string {
	return RecordEntityType
}

// EventRunCompleted is published with the Record as source once a run is
// journaled. The forged item, if any, is the target.
const EventRunCompleted = "dungeon.run_completed"
