// Package engine is the reward core: descriptor selection, name
// composition, stat normalization, outcome rules, weather and the reward
// point pipeline. Every random draw goes through an injected dice.Roller.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/dungeon-runner/internal/engine Engine

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/dungeon-runner/internal/entities/dungeon"
	"github.com/KirkDiggler/dungeon-runner/internal/entities/gear"
	"github.com/KirkDiggler/dungeon-runner/internal/errors"
)

// Engine runs the rules for a finished run
type Engine interface {
	// ClassifyRun checks a run against its level
	ClassifyRun(input *ClassifyRunInput) (*ClassifyRunOutput, error)

	// ScoreRun maps the weather and computes the reward point budget
	ScoreRun(input *ScoreRunInput) (*ScoreRunOutput, error)

	// ForgeItem composes a named item and spreads the points over its stats
	ForgeItem(input *ForgeItemInput) (*ForgeItemOutput, error)
}

// ClassifyRunInput is a measured run against a level
type ClassifyRunInput struct {
	Level          *dungeon.Level
	ElapsedSeconds int
	DistanceMeters int
}

// ClassifyRunOutput is the run's outcome
type ClassifyRunOutput struct {
	Outcome dungeon.Outcome
	Shape   dungeon.Shape
	PaceKmh float64
}

// ScoreRunInput carries the classified run and the resolved temperature.
// A nil temperature means the lookup was unavailable.
type ScoreRunInput struct {
	Level          *dungeon.Level
	ElapsedSeconds int
	DistanceMeters int
	Outcome        dungeon.Outcome
	TemperatureF   *float64
}

// ScoreRunOutput breaks down the reward
type ScoreRunOutput struct {
	Weather           dungeon.Weather
	WeatherMultiplier float64
	Reward            *Reward
}

// ForgeItemInput asks for an item worth Points. An empty Slot is drawn
// uniformly from all nine slots.
type ForgeItemInput struct {
	Slot   gear.SlotType
	Points int
}

// ForgeItemOutput is the forged item's shape, before it has an owner
type ForgeItemOutput struct {
	Slot        gear.SlotType
	Name        string
	Template    Template
	Stats       gear.Stats
	Descriptors []gear.Descriptor
}

// Config holds the engine dependencies
type Config struct {
	Catalog *Catalog
	Roller  dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	return vb.Build()
}

type engine struct {
	catalog *Catalog
	roller  dice.Roller
}

// New creates an engine over a validated catalog
func New(cfg *Config) (Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &engine{
		catalog: cfg.Catalog,
		roller:  cfg.Roller,
	}, nil
}

func validateMeasurements(elapsed, distance int) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateNonNegative("ElapsedSeconds", elapsed, vb)
	errors.ValidateNonNegative("DistanceMeters", distance, vb)
	return vb.Build()
}

func (e *engine) ClassifyRun(input *ClassifyRunInput) (*ClassifyRunOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateMeasurements(input.ElapsedSeconds, input.DistanceMeters); err != nil {
		return nil, err
	}

	outcome, err := Classify(input.Level, input.ElapsedSeconds, input.DistanceMeters)
	if err != nil {
		return nil, err
	}

	return &ClassifyRunOutput{
		Outcome: outcome,
		Shape:   input.Level.Shape(),
		PaceKmh: Pace(input.ElapsedSeconds, input.DistanceMeters),
	}, nil
}

func (e *engine) ScoreRun(input *ScoreRunInput) (*ScoreRunOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := ValidateLevel(input.Level); err != nil {
		return nil, err
	}

	weather, weatherMultiplier := MapWeather(input.TemperatureF)

	reward, err := CalculateReward(e.roller, RewardInput{
		ElapsedSeconds:    input.ElapsedSeconds,
		DistanceMeters:    input.DistanceMeters,
		Outcome:           input.Outcome,
		LevelMultiplier:   input.Level.Multiplier(),
		WeatherMultiplier: weatherMultiplier,
	})
	if err != nil {
		return nil, err
	}

	return &ScoreRunOutput{
		Weather:           weather,
		WeatherMultiplier: weatherMultiplier,
		Reward:            reward,
	}, nil
}

func (e *engine) ForgeItem(input *ForgeItemInput) (*ForgeItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	slot := input.Slot
	if slot == "" {
		slots := gear.AllSlots()
		idx, err := pick(e.roller, len(slots))
		if err != nil {
			return nil, err
		}
		slot = slots[idx]
	}

	composition, err := Compose(e.catalog, e.roller, slot)
	if err != nil {
		return nil, err
	}

	stats, err := Normalize(composition.Drawn, input.Points)
	if err != nil {
		return nil, err
	}

	return &ForgeItemOutput{
		Slot:        slot,
		Name:        composition.Name,
		Template:    composition.Template,
		Stats:       stats,
		Descriptors: composition.Drawn,
	}, nil
}
