// Package inventory stores each player's items
package inventory

//go:generate mockgen -destination=mock/mock_repository.go -package=inventorymock github.com/KirkDiggler/dungeon-runner/internal/repositories/inventory Repository

import (
	"context"

	"github.com/KirkDiggler/dungeon-runner/internal/entities/gear"
)

// Repository defines the interface for item persistence
type Repository interface {
	// Add stores new items for one player
	// Returns errors.InvalidArgument when items are missing ids or owners
	Add(ctx context.Context, input AddInput) (*AddOutput, error)

	// Get retrieves one item
	// Returns errors.NotFound if the player has no such item
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns a player's items, oldest first
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Count returns how many items a player holds
	Count(ctx context.Context, input CountInput) (*CountOutput, error)

	// Delete removes an item
	// Returns errors.NotFound if the player has no such item
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// Equip marks an item equipped and unequips whatever held its slot,
	// in one transaction
	// Returns errors.NotFound if the player has no such item
	// Returns errors.Unavailable if the inventory changed mid-swap
	Equip(ctx context.Context, input EquipInput) (*EquipOutput, error)
}

// AddInput holds items that all belong to PlayerID
type AddInput struct {
	PlayerID string
	Items    []*gear.Item
}

// AddOutput reports the stored items
type AddOutput struct {
	Items []*gear.Item
}

// GetInput identifies an item
type GetInput struct {
	PlayerID string
	ItemID   string
}

// GetOutput holds the item
type GetOutput struct {
	Item *gear.Item
}

// ListInput selects a player's items
type ListInput struct {
	PlayerID string
}

// ListOutput holds the items
type ListOutput struct {
	Items []*gear.Item
}

// CountInput selects a player
type CountInput struct {
	PlayerID string
}

// CountOutput holds the item count
type CountOutput struct {
	Count int
}

// DeleteInput identifies an item
type DeleteInput struct {
	PlayerID string
	ItemID   string
}

// DeleteOutput is empty on success
type DeleteOutput struct{}

// EquipInput identifies the item to equip
type EquipInput struct {
	PlayerID string
	ItemID   string
}

// EquipOutput holds the equipped item and the one it replaced, if any
type EquipOutput struct {
	Item       *gear.Item
	Unequipped *gear.Item
}
