// Package dungeon holds the run side of the game: levels, outcomes,
// weather and journal records.
package dungeon

// Shape names a recognized combination of set level constraints
type Shape string

// Level shapes. A constraint is "set" when it is non-zero.
const (
	ShapeUnconstrained    Shape = "unconstrained"
	ShapeDistanceOnly     Shape = "distance_only"
	ShapeTimeDistancePace Shape = "time_distance_pace"
	ShapeTimePace         Shape = "time_pace"
	ShapeUnrecognized     Shape = "unrecognized"
)

const neutralMultiplier = 1.0

// Level is a named run template with its constraints and reward multiplier.
// Zero means unset for the three constraint fields.
type Level struct {
	ID                     string  `json:"id" yaml:"id"`
	Name                   string  `json:"name" yaml:"name"`
	Ordinal                int     `json:"ordinal" yaml:"-"`
	TimeLimitSeconds       int     `json:"time_limit_seconds" yaml:"time_limit_seconds"`
	DistanceRequiredMeters int     `json:"distance_required_meters" yaml:"distance_required_meters"`
	PaceRequiredKmh        float64 `json:"pace_required_kmh" yaml:"pace_required_kmh"`
	RewardMultiplier       float64 `json:"reward_multiplier" yaml:"reward_multiplier"`
}

// Shape classifies which constraints are set
func (l *Level) Shape() Shape {
	timeSet := l.TimeLimitSeconds != 0
	distanceSet := l.DistanceRequiredMeters != 0
	paceSet := l.PaceRequiredKmh != 0

	switch {
	case !timeSet && !distanceSet && !paceSet:
		return ShapeUnconstrained
	case !timeSet && distanceSet && !paceSet:
		return ShapeDistanceOnly
	case timeSet && distanceSet && paceSet:
		return ShapeTimeDistancePace
	case timeSet && !distanceSet && paceSet:
		return ShapeTimePace
	default:
		return ShapeUnrecognized
	}
}

// Multiplier returns the reward multiplier. Stored levels always carry a
// positive one.
func (l *Level) Multiplier() float64 {
	return l.RewardMultiplier
}
