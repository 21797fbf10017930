package inventory

import (
	"github.com/KirkDiggler/dungeon-runner/internal/entities/gear"
)

// ListItemsInput defines the request for listing a player's items
type ListItemsInput struct {
	PlayerID string
	Slot     gear.SlotType // empty lists every slot
}

// ListItemsOutput defines the response for listing a player's items
type ListItemsOutput struct {
	Items []*gear.Item
}

// EquipItemInput defines the request for equipping an item
type EquipItemInput struct {
	PlayerID string
	ItemID   string
}

// EquipItemOutput returns the equipped item and the one it replaced, if any
type EquipItemOutput struct {
	Item       *gear.Item
	Unequipped *gear.Item
}

// DiscardItemInput defines the request for discarding an item
type DiscardItemInput struct {
	PlayerID string
	ItemID   string
}

// DiscardItemOutput defines the response for discarding an item
type DiscardItemOutput struct{}

// GrantStarterKitInput defines the request for granting the starter kit
type GrantStarterKitInput struct {
	PlayerID string
}

// GrantStarterKitOutput lists the granted items. Granted is false when the
// player already owned items and nothing was added.
type GrantStarterKitOutput struct {
	Items   []*gear.Item
	Granted bool
}

// GetLoadoutInput defines the request for a player's loadout
type GetLoadoutInput struct {
	PlayerID string
}

// GetLoadoutOutput is the equipped item per slot and their summed stats
type GetLoadoutOutput struct {
	Equipped map[gear.SlotType]*gear.Item
	Stats    gear.Stats
}
