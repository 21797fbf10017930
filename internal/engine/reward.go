package engine

import (
	"math"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/dungeon-runner/internal/entities/dungeon"
	"github.com/KirkDiggler/dungeon-runner/internal/errors"
)

const (
	// Success draws 10..13 tenths, failure 7..10 tenths.
	successRollFloor = 9
	failureRollFloor = 6
	multiplierSides  = 4

	// FailurePenalty scales every failed run's multiplier
	FailurePenalty = 0.9
)

// RewardInput holds the measured run and the multipliers around it
type RewardInput struct {
	ElapsedSeconds    int
	DistanceMeters    int
	Outcome           dungeon.Outcome
	LevelMultiplier   float64
	WeatherMultiplier float64
}

// Reward breaks down how the point budget was reached
type Reward struct {
	PaceKmh          float64
	Base             float64
	RandomMultiplier float64
	TotalMultiplier  float64
	Points           int
}

// CalculateReward turns a run into an integer point budget.
// Points never go below zero.
func CalculateReward(roller dice.Roller, input RewardInput) (*Reward, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateNonNegative("ElapsedSeconds", input.ElapsedSeconds, vb)
	errors.ValidateNonNegative("DistanceMeters", input.DistanceMeters, vb)
	if input.LevelMultiplier <= 0 {
		vb.Field("LevelMultiplier", "must be positive")
	}
	if input.WeatherMultiplier <= 0 {
		vb.Field("WeatherMultiplier", "must be positive")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	floor := successRollFloor
	penalty := 1.0
	switch input.Outcome {
	case dungeon.OutcomeSuccess:
	case dungeon.OutcomeFailure:
		floor = failureRollFloor
		penalty = FailurePenalty
	default:
		return nil, errors.InvalidArgumentf("unknown outcome %q", input.Outcome)
	}

	roll, err := roller.Roll(multiplierSides)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll reward multiplier")
	}

	reward := &Reward{
		PaceKmh:          Pace(input.ElapsedSeconds, input.DistanceMeters),
		RandomMultiplier: float64(floor+roll) / 10,
	}
	reward.Base = reward.PaceKmh * (float64(input.DistanceMeters) / 10.0)
	reward.TotalMultiplier = reward.RandomMultiplier * penalty * input.LevelMultiplier * input.WeatherMultiplier
	reward.Points = int(math.Max(0, math.Round(reward.Base*reward.TotalMultiplier)))

	return reward, nil
}
