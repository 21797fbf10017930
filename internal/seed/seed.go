// Package seed loads the bundled game content: the descriptor vocabulary,
// the level list and the starter kit.
package seed

import (
	"embed"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/dungeon-runner/internal/entities/dungeon"
	"github.com/KirkDiggler/dungeon-runner/internal/entities/gear"
	"github.com/KirkDiggler/dungeon-runner/internal/errors"
)

//go:embed data/*.yaml
var data embed.FS

const (
	descriptorsFile = "data/descriptors.yaml"
	levelsFile      = "data/levels.yaml"
	starterKitFile  = "data/starter_kit.yaml"
)

// channels are listed armour, damage, strength, agility, intelligence
type channels []int

func (c channels) valid() bool { return len(c) == 5 }

type descriptorRow struct {
	Text     string   `yaml:"text"`
	Role     string   `yaml:"role"`
	Category string   `yaml:"category"`
	Bias     channels `yaml:"bias"`
}

// StarterItem is a starter kit entry before it has an owner
type StarterItem struct {
	Name        string
	Slot        gear.SlotType
	Stats       gear.Stats
	Description string
	Equipped    bool
}

type starterRow struct {
	Name        string   `yaml:"name"`
	Slot        string   `yaml:"slot"`
	Stats       channels `yaml:"stats"`
	Description string   `yaml:"description"`
	Equipped    bool     `yaml:"equipped"`
}

// Descriptors returns the bundled vocabulary in file order
func Descriptors() ([]gear.Descriptor, error) {
	var rows []descriptorRow
	if err := decode(descriptorsFile, &rows); err != nil {
		return nil, err
	}

	out := make([]gear.Descriptor, 0, len(rows))
	for i, row := range rows {
		if !row.Bias.valid() {
			return nil, errors.InvalidArgumentf("%s entry %d (%q) needs five bias values", descriptorsFile, i, row.Text)
		}
		out = append(out, gear.Descriptor{
			Text:     row.Text,
			Role:     gear.Role(row.Role),
			Category: row.Category,
			Bias: gear.Bias{
				Armour:       row.Bias[0],
				Damage:       row.Bias[1],
				Strength:     row.Bias[2],
				Agility:      row.Bias[3],
				Intelligence: row.Bias[4],
			},
		})
	}
	return out, nil
}

// Levels returns the bundled levels. Ordinals follow file order from 1.
func Levels() ([]dungeon.Level, error) {
	var levels []dungeon.Level
	if err := decode(levelsFile, &levels); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(levels))
	for i := range levels {
		if levels[i].ID == "" {
			return nil, errors.InvalidArgumentf("%s entry %d has no id", levelsFile, i)
		}
		if _, ok := seen[levels[i].ID]; ok {
			return nil, errors.AlreadyExistsf("%s repeats level %q", levelsFile, levels[i].ID)
		}
		seen[levels[i].ID] = struct{}{}
		levels[i].Ordinal = i + 1
	}
	return levels, nil
}

// StarterKit returns the items granted to a new player
func StarterKit() ([]StarterItem, error) {
	var rows []starterRow
	if err := decode(starterKitFile, &rows); err != nil {
		return nil, err
	}

	out := make([]StarterItem, 0, len(rows))
	for i, row := range rows {
		slot, ok := gear.SlotFromString(row.Slot)
		if !ok {
			return nil, errors.InvalidArgumentf("%s entry %d has unknown slot %q", starterKitFile, i, row.Slot)
		}
		if !row.Stats.valid() {
			return nil, errors.InvalidArgumentf("%s entry %d (%q) needs five stat values", starterKitFile, i, row.Name)
		}
		out = append(out, StarterItem{
			Name: row.Name,
			Slot: slot,
			Stats: gear.Stats{
				Armour:       row.Stats[0],
				Damage:       row.Stats[1],
				Strength:     row.Stats[2],
				Agility:      row.Stats[3],
				Intelligence: row.Stats[4],
			},
			Description: row.Description,
			Equipped:    row.Equipped,
		})
	}
	return out, nil
}

func decode(name string, out any) error {
	raw, err := data.ReadFile(name)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", name)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return errors.InvalidArgumentf("failed to parse %s: %v", name, err)
	}
	return nil
}
