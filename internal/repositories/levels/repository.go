// Package levels stores the level catalog
package levels

//go:generate mockgen -destination=mock/mock_repository.go -package=levelsmock github.com/KirkDiggler/dungeon-runner/internal/repositories/levels Repository

import (
	"context"

	"github.com/KirkDiggler/dungeon-runner/internal/entities/dungeon"
)

// Repository defines level storage
type Repository interface {
	// Put stores or replaces a level
	// Returns errors.InvalidArgument for negative constraints
	// Returns errors.FailedPrecondition (UNRECOGNIZED_CONSTRAINT_SHAPE) when
	// the constraints match no supported shape
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// Get retrieves a level by id
	// Returns errors.NotFound if the level doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns every level in ordinal order
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// PutInput holds the level to store
type PutInput struct {
	Level *dungeon.Level
}

// PutOutput echoes the stored level
type PutOutput struct {
	Level *dungeon.Level
}

// GetInput identifies a level
type GetInput struct {
	ID string
}

// GetOutput holds the level
type GetOutput struct {
	Level *dungeon.Level
}

// ListInput is empty; the catalog is global
type ListInput struct{}

// ListOutput holds the levels in ordinal order
type ListOutput struct {
	Levels []*dungeon.Level
}
