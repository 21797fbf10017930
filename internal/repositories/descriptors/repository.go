// Package descriptors stores the name vocabulary as one ordered list
package descriptors

//go:generate mockgen -destination=mock/mock_repository.go -package=descriptorsmock github.com/KirkDiggler/dungeon-runner/internal/repositories/descriptors Repository

import (
	"context"

	"github.com/KirkDiggler/dungeon-runner/internal/entities/gear"
)

// Repository defines descriptor storage. Order is preserved because
// selection replays depend on it.
type Repository interface {
	// Replace swaps the whole vocabulary in one transaction
	Replace(ctx context.Context, input ReplaceInput) (*ReplaceOutput, error)

	// List returns the vocabulary in stored order
	// Returns errors.NotFound when nothing has been stored
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// ReplaceInput holds the new vocabulary
type ReplaceInput struct {
	Descriptors []gear.Descriptor
}

// ReplaceOutput reports how many entries were stored
type ReplaceOutput struct {
	Count int
}

// ListInput is empty; the vocabulary is global
type ListInput struct{}

// ListOutput holds the stored vocabulary
type ListOutput struct {
	Descriptors []gear.Descriptor
}
