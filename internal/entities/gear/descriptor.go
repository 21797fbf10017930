package gear

// Role is the grammatical role a descriptor plays in an item name
type Role string

// Descriptor roles
const (
	RoleTypeNoun       Role = "type_noun"
	RoleStyleNoun      Role = "style_noun"
	RoleStyleAdjective Role = "style_adjective"
)

// Match categories that are not slots
const (
	CategoryAll    = "all"
	CategoryArmour = "armour"
	CategoryWeapon = "weapon"
)

// IsValid checks the role is known
func (r Role) IsValid() bool {
	switch r {
	case RoleTypeNoun, RoleStyleNoun, RoleStyleAdjective:
		return true
	default:
		return false
	}
}

// String returns the string representation of the role
func (r Role) String() string {
	return string(r)
}

// Bias weights the five stat channels a descriptor pushes an item towards
type Bias struct {
	Armour       int `json:"armour"`
	Damage       int `json:"damage"`
	Strength     int `json:"strength"`
	Agility      int `json:"agility"`
	Intelligence int `json:"intelligence"`
}

// Add returns the channel-wise sum of two biases
func (b Bias) Add(other Bias) Bias {
	return Bias{
		Armour:       b.Armour + other.Armour,
		Damage:       b.Damage + other.Damage,
		Strength:     b.Strength + other.Strength,
		Agility:      b.Agility + other.Agility,
		Intelligence: b.Intelligence + other.Intelligence,
	}
}

// Total sums all five channels
func (b Bias) Total() int {
	return b.Armour + b.Damage + b.Strength + b.Agility + b.Intelligence
}

// HasNegative reports whether any channel is below zero
func (b Bias) HasNegative() bool {
	return b.Armour < 0 || b.Damage < 0 || b.Strength < 0 || b.Agility < 0 || b.Intelligence < 0
}

// Descriptor is one vocabulary fragment of the name catalog.
// Category is a slot name, "all", "armour" or "weapon".
type Descriptor struct {
	Text     string `json:"text"`
	Role     Role   `json:"role"`
	Category string `json:"category"`
	Bias     Bias   `json:"bias"`
}
