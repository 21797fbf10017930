// Package runsession stores the in-progress tracked run of each player
package runsession

import (
	"context"
	"time"

	"github.com/KirkDiggler/dungeon-runner/internal/entities/dungeon"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=runsessionmock github.com/KirkDiggler/dungeon-runner/internal/repositories/run_session Repository

// Session is a run being tracked point by point. A player has at most one.
type Session struct {
	PlayerID string `json:"player_id"`
	LevelID  string `json:"level_id"`

	StartedAt time.Time `json:"started_at"`

	// PausedAt is set while the run is paused
	PausedAt *time.Time `json:"paused_at,omitempty"`

	// PausedSeconds accumulates finished pauses
	PausedSeconds int `json:"paused_seconds"`

	Trace []dungeon.Point `json:"trace,omitempty"`

	// Skips are trace indices whose following segment spans a pause
	Skips []int `json:"skips,omitempty"`

	ExpiresAt time.Time `json:"expires_at"`
}

// Paused reports whether the run is currently paused
func (s *Session) Paused() bool {
	return s.PausedAt != nil
}

// CreateInput starts a session
type CreateInput struct {
	PlayerID string
	LevelID  string
	TTL      time.Duration // zero means DefaultTTL
}

// CreateOutput holds the new session
type CreateOutput struct {
	Session *Session
}

// GetInput selects a player's session
type GetInput struct {
	PlayerID string
}

// GetOutput holds the session
type GetOutput struct {
	Session *Session
}

// DeleteInput selects a player's session
type DeleteInput struct {
	PlayerID string
}

// DeleteOutput reports whether a session was removed
type DeleteOutput struct {
	Deleted bool
}

// Repository defines storage for run sessions
type Repository interface {
	// Create starts a session
	// Returns errors.AlreadyExists if the player already has one
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a player's session
	// Returns errors.NotFound if there is none or it expired
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces a session, keeping its expiry
	Update(ctx context.Context, session *Session) error

	// Delete removes a player's session
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
