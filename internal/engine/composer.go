package engine

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/dungeon-runner/internal/entities/gear"
	"github.com/KirkDiggler/dungeon-runner/internal/errors"
)

// Template is one of the six name layouts
type Template int

// Name templates. The numeric values are the rolled template index.
const (
	TemplateOwnerAdjective Template = iota // {noun}'s {adj} {type}
	TemplateAdjectiveOwner                 // {adj} {noun}'s {type}
	TemplateAdjectiveOfThe                 // {adj} {type} of the {noun}
	TemplateOwner                          // {noun}'s {type}
	TemplateOfThe                          // {type} of the {noun}
	TemplateAdjective                      // {adj} {type}

	templateCount = 6
)

// UsesStyleNoun reports whether the template draws a style noun
func (t Template) UsesStyleNoun() bool {
	return t != TemplateAdjective
}

// UsesStyleAdjective reports whether the template draws a style adjective
func (t Template) UsesStyleAdjective() bool {
	return t != TemplateOwner && t != TemplateOfThe
}

// Format lays out the drawn words. Unused words are ignored.
func (t Template) Format(typeNoun, styleNoun, styleAdjective string) string {
	switch t {
	case TemplateOwnerAdjective:
		return fmt.Sprintf("%s's %s %s", styleNoun, styleAdjective, typeNoun)
	case TemplateAdjectiveOwner:
		return fmt.Sprintf("%s %s's %s", styleAdjective, styleNoun, typeNoun)
	case TemplateAdjectiveOfThe:
		return fmt.Sprintf("%s %s of the %s", styleAdjective, typeNoun, styleNoun)
	case TemplateOwner:
		return fmt.Sprintf("%s's %s", styleNoun, typeNoun)
	case TemplateOfThe:
		return fmt.Sprintf("%s of the %s", typeNoun, styleNoun)
	default:
		return fmt.Sprintf("%s %s", styleAdjective, typeNoun)
	}
}

// Composition is a composed name and the descriptors drawn for it, in
// draw order.
type Composition struct {
	Name     string
	Template Template
	Drawn    []gear.Descriptor
}

// AdjectiveCategories returns the categories a style adjective may match
// for the slot. Armour never uses its slot-specific category.
func AdjectiveCategories(slot gear.SlotType) []string {
	if slot.IsWeapon() {
		return []string{gear.CategoryAll, slot.String(), gear.CategoryWeapon}
	}
	return []string{gear.CategoryAll, gear.CategoryArmour}
}

// Compose draws a type noun for the slot, rolls a template and draws the
// modifiers that template needs.
func Compose(catalog *Catalog, roller dice.Roller, slot gear.SlotType) (*Composition, error) {
	if !slot.IsValid() {
		return nil, errors.InvalidArgumentf("unknown slot %q", slot)
	}

	typeNoun, err := catalog.Select(roller, gear.RoleTypeNoun, []string{slot.String()})
	if err != nil {
		return nil, err
	}

	idx, err := pick(roller, templateCount)
	if err != nil {
		return nil, err
	}
	template := Template(idx)

	composition := &Composition{
		Template: template,
		Drawn:    []gear.Descriptor{typeNoun},
	}

	var styleNoun, styleAdjective string
	if template.UsesStyleNoun() {
		noun, err := catalog.Select(roller, gear.RoleStyleNoun, []string{gear.CategoryAll})
		if err != nil {
			return nil, err
		}
		styleNoun = noun.Text
		composition.Drawn = append(composition.Drawn, noun)
	}
	if template.UsesStyleAdjective() {
		adjective, err := catalog.Select(roller, gear.RoleStyleAdjective, AdjectiveCategories(slot))
		if err != nil {
			return nil, err
		}
		styleAdjective = adjective.Text
		composition.Drawn = append(composition.Drawn, adjective)
	}

	composition.Name = template.Format(typeNoun.Text, styleNoun, styleAdjective)
	return composition, nil
}
