package gear

import (
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// EntityType is the core.Entity type reported by items
const EntityType = "gear_item"

// Stats is the derived five-channel stat vector of an item
type Stats struct {
	Armour       int `json:"armour"`
	Damage       int `json:"damage"`
	Strength     int `json:"strength"`
	Agility      int `json:"agility"`
	Intelligence int `json:"intelligence"`
}

// Sum adds the five stats together
func (s Stats) Sum() int {
	return s.Armour + s.Damage + s.Strength + s.Agility + s.Intelligence
}

// Add returns the channel-wise sum of two stat vectors
func (s Stats) Add(other Stats) Stats {
	return Stats{
		Armour:       s.Armour + other.Armour,
		Damage:       s.Damage + other.Damage,
		Strength:     s.Strength + other.Strength,
		Agility:      s.Agility + other.Agility,
		Intelligence: s.Intelligence + other.Intelligence,
	}
}

// Item is a piece of equipment owned by a player
type Item struct {
	ID          string    `json:"id"`
	PlayerID    string    `json:"player_id"`
	Slot        SlotType  `json:"slot"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Stats       Stats     `json:"stats"`
	Points      int       `json:"points"`
	Equipped    bool      `json:"equipped"`
	CreatedAt   time.Time `json:"created_at"`
}

var _ core.Entity = (*Item)(nil)

// GetID implements core.Entity
func (i *Item) GetID() string {
	return i.ID
}

// GetType implements core.Entity
func (i *Item) GetType() string {
	return EntityType
}

// EventItemForged is published with the new Item as target
const EventItemForged = "gear.item_forged"
