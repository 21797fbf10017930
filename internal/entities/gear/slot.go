// Package gear holds the equipment vocabulary: slots, name descriptors and
// generated items.
package gear

// SlotType is the equipment position an item occupies
type SlotType string

// Armour slots
const (
	SlotHead      SlotType = "head"
	SlotShoulders SlotType = "shoulders"
	SlotChest     SlotType = "chest"
	SlotHands     SlotType = "hands"
	SlotFeet      SlotType = "feet"
	SlotLegs      SlotType = "legs"
)

// Weapon slots
const (
	SlotSharp  SlotType = "sharp"
	SlotBlunt  SlotType = "blunt"
	SlotRanged SlotType = "ranged"
)

// String returns the string representation of the slot
func (s SlotType) String() string {
	return string(s)
}

// IsValid checks if the slot is one of the nine known slots
func (s SlotType) IsValid() bool {
	return s.IsArmour() || s.IsWeapon()
}

// IsWeapon reports whether the slot holds a weapon
func (s SlotType) IsWeapon() bool {
	switch s {
	case SlotSharp, SlotBlunt, SlotRanged:
		return true
	default:
		return false
	}
}

// IsArmour reports whether the slot holds armour
func (s SlotType) IsArmour() bool {
	switch s {
	case SlotHead, SlotShoulders, SlotChest, SlotHands, SlotFeet, SlotLegs:
		return true
	default:
		return false
	}
}

// AllSlots returns every slot in display order. The order is stable and
// is used for uniform slot draws.
func AllSlots() []SlotType {
	return []SlotType{
		SlotHead,
		SlotShoulders,
		SlotChest,
		SlotHands,
		SlotFeet,
		SlotLegs,
		SlotSharp,
		SlotBlunt,
		SlotRanged,
	}
}

// SlotFromString converts a string to a SlotType.
// Returns the slot and true if valid, empty slot and false if invalid
func SlotFromString(s string) (SlotType, bool) {
	slot := SlotType(s)
	if slot.IsValid() {
		return slot, true
	}
	return "", false
}
