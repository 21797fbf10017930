// Package inventory implements the inventory orchestrator for managing a
// player's gear
package inventory

//go:generate mockgen -destination=mock/mock_service.go -package=inventorymock github.com/KirkDiggler/dungeon-runner/internal/orchestrators/inventory Service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/dungeon-runner/internal/entities/gear"
	"github.com/KirkDiggler/dungeon-runner/internal/errors"
	"github.com/KirkDiggler/dungeon-runner/internal/pkg/clock"
	"github.com/KirkDiggler/dungeon-runner/internal/pkg/idgen"
	inventoryrepo "github.com/KirkDiggler/dungeon-runner/internal/repositories/inventory"
	"github.com/KirkDiggler/dungeon-runner/internal/seed"
)

// Service defines the interface for inventory operations
type Service interface {
	ListItems(ctx context.Context, input *ListItemsInput) (*ListItemsOutput, error)

	// EquipItem equips an item, unequipping whatever held its slot
	EquipItem(ctx context.Context, input *EquipItemInput) (*EquipItemOutput, error)

	// DiscardItem removes an unequipped item
	DiscardItem(ctx context.Context, input *DiscardItemInput) (*DiscardItemOutput, error)

	// GrantStarterKit gives a player with no items the starter kit
	GrantStarterKit(ctx context.Context, input *GrantStarterKitInput) (*GrantStarterKitOutput, error)

	GetLoadout(ctx context.Context, input *GetLoadoutInput) (*GetLoadoutOutput, error)
}

// Config holds the dependencies for the inventory orchestrator
type Config struct {
	InventoryRepo inventoryrepo.Repository
	Clock         clock.Clock

	// StarterKit defaults to the embedded seed kit
	StarterKit []seed.StarterItem
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.InventoryRepo == nil {
		vb.RequiredField("InventoryRepo")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	for i, item := range c.StarterKit {
		if !item.Slot.IsValid() {
			vb.Fieldf(fmt.Sprintf("StarterKit[%d]", i), "invalid slot %q", item.Slot)
		}
	}

	return vb.Build()
}

type orchestrator struct {
	inventoryRepo inventoryrepo.Repository
	clock         clock.Clock
	starterKit    []seed.StarterItem
}

// NewOrchestrator creates a new inventory orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	kit := cfg.StarterKit
	if kit == nil {
		var err error
		kit, err = seed.StarterKit()
		if err != nil {
			return nil, errors.Wrap(err, "failed to load starter kit")
		}
	}

	return &orchestrator{
		inventoryRepo: cfg.InventoryRepo,
		clock:         cfg.Clock,
		starterKit:    kit,
	}, nil
}

func validateItemRef(playerID, itemID string) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("PlayerID", playerID, vb)
	errors.ValidateRequired("ItemID", itemID, vb)
	return vb.Build()
}

// ListItems returns a player's items, optionally for one slot
func (o *orchestrator) ListItems(ctx context.Context, input *ListItemsInput) (*ListItemsOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}
	if input.Slot != "" && !input.Slot.IsValid() {
		return nil, errors.InvalidArgumentf("invalid slot %q", input.Slot)
	}

	out, err := o.inventoryRepo.List(ctx, inventoryrepo.ListInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list items")
	}

	if input.Slot == "" {
		return &ListItemsOutput{Items: out.Items}, nil
	}

	items := make([]*gear.Item, 0, len(out.Items))
	for _, item := range out.Items {
		if item.Slot == input.Slot {
			items = append(items, item)
		}
	}
	return &ListItemsOutput{Items: items}, nil
}

// EquipItem equips an item
func (o *orchestrator) EquipItem(ctx context.Context, input *EquipItemInput) (*EquipItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateItemRef(input.PlayerID, input.ItemID); err != nil {
		return nil, err
	}

	out, err := o.inventoryRepo.Equip(ctx, inventoryrepo.EquipInput{
		PlayerID: input.PlayerID,
		ItemID:   input.ItemID,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to equip item %s", input.ItemID)
	}

	slog.Debug("item equipped", "player_id", input.PlayerID, "item_id", input.ItemID, "slot", out.Item.Slot)

	return &EquipItemOutput{Item: out.Item, Unequipped: out.Unequipped}, nil
}

// DiscardItem deletes an item the player is not wearing
func (o *orchestrator) DiscardItem(ctx context.Context, input *DiscardItemInput) (*DiscardItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateItemRef(input.PlayerID, input.ItemID); err != nil {
		return nil, err
	}

	got, err := o.inventoryRepo.Get(ctx, inventoryrepo.GetInput{
		PlayerID: input.PlayerID,
		ItemID:   input.ItemID,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get item %s", input.ItemID)
	}
	if got.Item.Equipped {
		return nil, errors.FailedPreconditionf("item %s is equipped", input.ItemID)
	}

	if _, err := o.inventoryRepo.Delete(ctx, inventoryrepo.DeleteInput{
		PlayerID: input.PlayerID,
		ItemID:   input.ItemID,
	}); err != nil {
		return nil, errors.Wrapf(err, "failed to discard item %s", input.ItemID)
	}

	return &DiscardItemOutput{}, nil
}

// GrantStarterKit adds the starter kit to an empty inventory. Starter item
// ids are fixed per kit entry so a repeated grant overwrites rather than
// duplicates.
func (o *orchestrator) GrantStarterKit(ctx context.Context, input *GrantStarterKitInput) (*GrantStarterKitOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	count, err := o.inventoryRepo.Count(ctx, inventoryrepo.CountInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to count items")
	}
	if count.Count > 0 {
		return &GrantStarterKitOutput{}, nil
	}

	now := o.clock.Now()
	items := make([]*gear.Item, 0, len(o.starterKit))
	for i, entry := range o.starterKit {
		items = append(items, &gear.Item{
			ID:          StarterItemID(i),
			PlayerID:    input.PlayerID,
			Slot:        entry.Slot,
			Name:        entry.Name,
			Description: entry.Description,
			Stats:       entry.Stats,
			Points:      entry.Stats.Sum(),
			Equipped:    entry.Equipped,
			CreatedAt:   now,
		})
	}

	if _, err := o.inventoryRepo.Add(ctx, inventoryrepo.AddInput{
		PlayerID: input.PlayerID,
		Items:    items,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to grant starter kit")
	}

	slog.Info("starter kit granted", "player_id", input.PlayerID, "items", len(items))

	return &GrantStarterKitOutput{Items: items, Granted: true}, nil
}

// StarterItemID is the id of the i-th starter kit entry
func StarterItemID(i int) string {
	return fmt.Sprintf("%s_starter_%02d", idgen.PrefixItem, i+1)
}

// GetLoadout collects the equipped items
func (o *orchestrator) GetLoadout(ctx context.Context, input *GetLoadoutInput) (*GetLoadoutOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	out, err := o.inventoryRepo.List(ctx, inventoryrepo.ListInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list items")
	}

	loadout := &GetLoadoutOutput{Equipped: make(map[gear.SlotType]*gear.Item)}
	for _, item := range out.Items {
		if !item.Equipped {
			continue
		}
		if held, ok := loadout.Equipped[item.Slot]; ok {
			slog.Warn("slot equipped twice", "player_id", input.PlayerID, "slot", item.Slot,
				"kept", held.ID, "ignored", item.ID)
			continue
		}
		loadout.Equipped[item.Slot] = item
		loadout.Stats = loadout.Stats.Add(item.Stats)
	}

	return loadout, nil
}
