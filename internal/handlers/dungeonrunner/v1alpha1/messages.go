package v1alpha1

import (
	"bytes"
	"encoding/json"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/dungeon-runner/internal/engine"
	"github.com/KirkDiggler/dungeon-runner/internal/entities/dungeon"
	"github.com/KirkDiggler/dungeon-runner/internal/entities/gear"
	"github.com/KirkDiggler/dungeon-runner/internal/errors"
	runsession "github.com/KirkDiggler/dungeon-runner/internal/repositories/run_session"
)

// Requests

// PlayerRequest is the request of every call that only names a player
type PlayerRequest struct {
	PlayerID string `json:"player_id"`
}

// CompleteRunRequest scores a run measured elsewhere. Elapsed may be given
// in seconds or as "mm:ss" / "hh:mm:ss".
type CompleteRunRequest struct {
	PlayerID       string          `json:"player_id"`
	LevelID        string          `json:"level_id"`
	ElapsedSeconds int             `json:"elapsed_seconds,omitempty"`
	Elapsed        string          `json:"elapsed,omitempty"`
	DistanceMeters int             `json:"distance_meters"`
	TemperatureF   *float64        `json:"temperature_f,omitempty"`
	Trace          []dungeon.Point `json:"trace,omitempty"`
	Skips          []int           `json:"skips,omitempty"`
	Unrewarded     bool            `json:"unrewarded,omitempty"`
}

// StartRunRequest opens a tracked run
type StartRunRequest struct {
	PlayerID string `json:"player_id"`
	LevelID  string `json:"level_id"`
}

// RecordPointRequest is one location sample
type RecordPointRequest struct {
	PlayerID  string  `json:"player_id"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
	Elevation float64 `json:"ele,omitempty"`
}

// ListJournalRequest pages a player's journal
type ListJournalRequest struct {
	PlayerID string `json:"player_id"`
	Limit    int    `json:"limit,omitempty"`
}

// ListItemsRequest lists a player's items
type ListItemsRequest struct {
	PlayerID string `json:"player_id"`
	Slot     string `json:"slot,omitempty"`
}

// ItemRequest names one of a player's items
type ItemRequest struct {
	PlayerID string `json:"player_id"`
	ItemID   string `json:"item_id"`
}

// Responses

// LevelsResponse lists levels
type LevelsResponse struct {
	Levels []*dungeon.Level `json:"levels"`
}

// RecordView is a journal record with its elapsed time formatted
type RecordView struct {
	*dungeon.Record
	Elapsed string `json:"elapsed"`
}

// RewardView breaks down a reward
type RewardView struct {
	PaceKmh          float64 `json:"pace_kmh"`
	Base             float64 `json:"base"`
	RandomMultiplier float64 `json:"random_multiplier"`
	TotalMultiplier  float64 `json:"total_multiplier"`
	Points           int     `json:"points"`
}

// CompleteRunResponse is a scored run
type CompleteRunResponse struct {
	Record *RecordView   `json:"record"`
	Item   *gear.Item    `json:"item,omitempty"`
	Shape  dungeon.Shape `json:"shape"`
	Reward *RewardView   `json:"reward"`
}

// SessionResponse returns the tracked run
type SessionResponse struct {
	Session *runsession.Session `json:"session"`
}

// RecordPointResponse reports whether the point was kept
type RecordPointResponse struct {
	Recorded bool `json:"recorded"`
	Points   int  `json:"points"`
	Paused   bool `json:"paused"`
}

// FinishRunResponse is the measured and scored run
type FinishRunResponse struct {
	ElapsedSeconds int                  `json:"elapsed_seconds"`
	DistanceMeters int                  `json:"distance_meters"`
	Run            *CompleteRunResponse `json:"run"`
}

// JournalResponse lists journal records
type JournalResponse struct {
	Records []*RecordView `json:"records"`
}

// ItemsResponse lists items
type ItemsResponse struct {
	Items []*gear.Item `json:"items"`
}

// EquipItemResponse returns the equipped item and the one it replaced
type EquipItemResponse struct {
	Item       *gear.Item `json:"item"`
	Unequipped *gear.Item `json:"unequipped,omitempty"`
}

// GrantStarterKitResponse lists the granted items
type GrantStarterKitResponse struct {
	Granted bool         `json:"granted"`
	Items   []*gear.Item `json:"items"`
}

// LoadoutResponse is the equipped item per slot and the summed stats
type LoadoutResponse struct {
	Equipped map[gear.SlotType]*gear.Item `json:"equipped"`
	Stats    gear.Stats                   `json:"stats"`
}

// Decode fills v from a request struct. Unknown fields are rejected.
func Decode(in *structpb.Struct, v interface{}) error {
	if in == nil {
		in = &structpb.Struct{}
	}
	data, err := in.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "failed to read request")
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.InvalidArgumentf("malformed request: %v", err)
	}
	return nil
}

// Encode converts v into a response struct
func Encode(v interface{}) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}

	out := &structpb.Struct{}
	if err := out.UnmarshalJSON(data); err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	return out, nil
}

func newRecordView(record *dungeon.Record) *RecordView {
	if record == nil {
		return nil
	}
	return &RecordView{Record: record, Elapsed: engine.FormatElapsed(record.ElapsedSeconds)}
}

func newRewardView(reward *engine.Reward) *RewardView {
	if reward == nil {
		return nil
	}
	return &RewardView{
		PaceKmh:          reward.PaceKmh,
		Base:             reward.Base,
		RandomMultiplier: reward.RandomMultiplier,
		TotalMultiplier:  reward.TotalMultiplier,
		Points:           reward.Points,
	}
}
