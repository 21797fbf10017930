// Package journal stores completed run records per player
package journal

//go:generate mockgen -destination=mock/mock_repository.go -package=journalmock github.com/KirkDiggler/dungeon-runner/internal/repositories/journal Repository

import (
	"context"

	"github.com/KirkDiggler/dungeon-runner/internal/entities/dungeon"
)

// DefaultLimit bounds List when no limit is given
const DefaultLimit = 50

// MaxLimit is the largest page a caller may ask for
const MaxLimit = 500

// Repository defines the interface for journal persistence
type Repository interface {
	// Append stores a record and indexes it by completion time
	// Returns errors.AlreadyExists if the record id is taken
	Append(ctx context.Context, input AppendInput) (*AppendOutput, error)

	// Get retrieves a record by id
	// Returns errors.NotFound if the record doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns a player's records, newest first
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// AppendInput holds the record to store
type AppendInput struct {
	Record *dungeon.Record
}

// AppendOutput echoes the stored record
type AppendOutput struct {
	Record *dungeon.Record
}

// GetInput identifies a record
type GetInput struct {
	ID string
}

// GetOutput holds the record
type GetOutput struct {
	Record *dungeon.Record
}

// ListInput selects a player's records. Limit <= 0 means DefaultLimit.
type ListInput struct {
	PlayerID string
	Limit    int
}

// ListOutput holds the records, newest first
type ListOutput struct {
	Records []*dungeon.Record
}
