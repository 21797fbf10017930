package engine

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/dungeon-runner/internal/entities/gear"
	"github.com/KirkDiggler/dungeon-runner/internal/errors"
)

// Catalog is the read-only descriptor vocabulary.
// It is safe for concurrent use once built.
type Catalog struct {
	entries []gear.Descriptor
	byRole  map[gear.Role][]int
}

// NewCatalog validates and indexes descriptors, keeping their order
func NewCatalog(entries []gear.Descriptor) (*Catalog, error) {
	vb := errors.NewValidationBuilder()
	c := &Catalog{
		entries: make([]gear.Descriptor, len(entries)),
		byRole:  make(map[gear.Role][]int),
	}
	copy(c.entries, entries)

	for i, entry := range c.entries {
		field := entryField(i)
		if entry.Text == "" {
			vb.Field(field, "text is required")
		}
		if !entry.Role.IsValid() {
			vb.Fieldf(field, "unknown role %q", entry.Role)
		}
		if entry.Category == "" {
			vb.Field(field, "category is required")
		}
		if entry.Bias.HasNegative() {
			vb.Field(field, "bias channels must not be negative")
		}
		c.byRole[entry.Role] = append(c.byRole[entry.Role], i)
	}

	if err := vb.Build(); err != nil {
		return nil, errors.Wrap(err, "invalid descriptor catalog")
	}

	return c, nil
}

func entryField(i int) string {
	return fmt.Sprintf("descriptors[%d]", i)
}

// Len returns the number of descriptors
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns a copy of the descriptors in load order
func (c *Catalog) Entries() []gear.Descriptor {
	out := make([]gear.Descriptor, len(c.entries))
	copy(out, c.entries)
	return out
}

// Candidates returns every descriptor of the role whose category is in
// the acceptable set, in catalog order.
func (c *Catalog) Candidates(role gear.Role, categories []string) []gear.Descriptor {
	accept := make(map[string]struct{}, len(categories))
	for _, category := range categories {
		accept[category] = struct{}{}
	}

	var out []gear.Descriptor
	for _, idx := range c.byRole[role] {
		if _, ok := accept[c.entries[idx].Category]; ok {
			out = append(out, c.entries[idx])
		}
	}
	return out
}

// Select draws one matching descriptor uniformly. Every candidate entry has
// the same chance regardless of which category it matched.
func (c *Catalog) Select(roller dice.Roller, role gear.Role, categories []string) (gear.Descriptor, error) {
	if len(categories) == 0 {
		return gear.Descriptor{}, errors.InvalidArgument("at least one category is required")
	}

	candidates := c.Candidates(role, categories)
	if len(candidates) == 0 {
		return gear.Descriptor{}, errors.NoMatch(role.String(), categories)
	}

	idx, err := pick(roller, len(candidates))
	if err != nil {
		return gear.Descriptor{}, err
	}
	return candidates[idx], nil
}

// pick returns a uniform index in [0, n)
func pick(roller dice.Roller, n int) (int, error) {
	roll, err := roller.Roll(n)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to roll d%d", n)
	}
	if roll < 1 || roll > n {
		return 0, errors.Internalf("roller returned %d outside 1..%d", roll, n)
	}
	return roll - 1, nil
}
