package testutils

import (
	"github.com/KirkDiggler/dungeon-runner/internal/entities/dungeon"
	"github.com/KirkDiggler/dungeon-runner/internal/entities/gear"
)

// TestDescriptors is a small catalog covering every role and the head and
// sharp slots. Catalog order matters for scripted rolls:
//
//	type_noun/head:   Cowl, Crown
//	type_noun/sharp:  Dagger
//	style_noun/all:   Bear, Owl
//	style_adjective:  Dark (all), Padded (armour), Serrated (sharp),
//	                  Balanced (weapon), Ribbed (chest, never eligible)
func TestDescriptors() []gear.Descriptor {
	return []gear.Descriptor{
		{Text: "Cowl", Role: gear.RoleTypeNoun, Category: "head", Bias: gear.Bias{Intelligence: 10}},
		{Text: "Crown", Role: gear.RoleTypeNoun, Category: "head", Bias: gear.Bias{Strength: 7, Damage: 3}},
		{Text: "Dagger", Role: gear.RoleTypeNoun, Category: "sharp", Bias: gear.Bias{Damage: 10}},
		{Text: "Bear", Role: gear.RoleStyleNoun, Category: gear.CategoryAll, Bias: gear.Bias{Strength: 5}},
		{Text: "Owl", Role: gear.RoleStyleNoun, Category: gear.CategoryAll, Bias: gear.Bias{Intelligence: 5}},
		{Text: "Dark", Role: gear.RoleStyleAdjective, Category: gear.CategoryAll, Bias: gear.Bias{Damage: 10}},
		{Text: "Padded", Role: gear.RoleStyleAdjective, Category: gear.CategoryArmour, Bias: gear.Bias{Armour: 10}},
		{Text: "Serrated", Role: gear.RoleStyleAdjective, Category: "sharp", Bias: gear.Bias{Damage: 5}},
		{Text: "Balanced", Role: gear.RoleStyleAdjective, Category: gear.CategoryWeapon, Bias: gear.Bias{Agility: 5}},
		{Text: "Ribbed", Role: gear.RoleStyleAdjective, Category: "chest", Bias: gear.Bias{Armour: 10}},
	}
}

// Level fixtures, one per recognized shape
var (
	LevelFarm = dungeon.Level{
		ID: "dungeon-farm", Name: "Dungeon Farm", RewardMultiplier: 1,
	}
	LevelCaveCrawl = dungeon.Level{
		ID: "cave-crawl", Name: "Cave Crawl", Ordinal: 2,
		DistanceRequiredMeters: 8000, RewardMultiplier: 1.1,
	}
	LevelForbiddenTomb = dungeon.Level{
		ID: "forbidden-tomb", Name: "Forbidden Tomb", Ordinal: 3,
		TimeLimitSeconds: 1800, PaceRequiredKmh: 7, RewardMultiplier: 1.2,
	}
	LevelEscape = dungeon.Level{
		ID: "escape-of-the-crumbling-ruins", Name: "Escape of the Crumbling Ruins", Ordinal: 7,
		TimeLimitSeconds: 1800, DistanceRequiredMeters: 5000, PaceRequiredKmh: 10, RewardMultiplier: 1.5,
	}
)

// TestLevels returns copies of the level fixtures in ordinal order
func TestLevels() []dungeon.Level {
	return []dungeon.Level{LevelFarm, LevelCaveCrawl, LevelForbiddenTomb, LevelEscape}
}

// CreateTestItem creates an unequipped item with sensible defaults
func CreateTestItem(id, playerID string, slot gear.SlotType) *gear.Item {
	return &gear.Item{
		ID:       id,
		PlayerID: playerID,
		Slot:     slot,
		Name:     "Owl's Dark Cowl",
		Stats:    gear.Stats{Damage: 4, Intelligence: 6},
		Points:   10,
	}
}
