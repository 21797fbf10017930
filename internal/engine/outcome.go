package engine

import (
	"github.com/KirkDiggler/dungeon-runner/internal/entities/dungeon"
	"github.com/KirkDiggler/dungeon-runner/internal/errors"
)

// Pace returns km/h, or 0 when no time has elapsed
func Pace(elapsedSeconds, distanceMeters int) float64 {
	if elapsedSeconds <= 0 {
		return 0
	}
	return (float64(distanceMeters) / 1000) / (float64(elapsedSeconds) / 3600)
}

// ValidateLevel rejects levels whose constraints match no supported shape
func ValidateLevel(level *dungeon.Level) error {
	if level == nil {
		return errors.InvalidArgument("level is required")
	}
	if level.TimeLimitSeconds < 0 || level.DistanceRequiredMeters < 0 || level.PaceRequiredKmh < 0 {
		return errors.InvalidArgumentf("level %q has negative constraints", level.ID)
	}
	if level.Shape() == dungeon.ShapeUnrecognized {
		return errors.UnrecognizedConstraintShape(level.ID,
			level.TimeLimitSeconds, level.DistanceRequiredMeters, level.PaceRequiredKmh)
	}
	if level.RewardMultiplier <= 0 {
		return errors.InvalidArgumentf("level %q reward multiplier must be positive, got %g",
			level.ID, level.RewardMultiplier)
	}
	return nil
}

// Classify decides whether a run met its level. Zero elapsed time is
// treated as one second so pace stays finite.
func Classify(level *dungeon.Level, elapsedSeconds, distanceMeters int) (dungeon.Outcome, error) {
	if err := ValidateLevel(level); err != nil {
		return "", err
	}
	if elapsedSeconds == 0 {
		elapsedSeconds = 1
	}

	pace := Pace(elapsedSeconds, distanceMeters)
	coveredDistance := distanceMeters >= level.DistanceRequiredMeters
	withinLimit := elapsedSeconds <= level.TimeLimitSeconds
	heldPace := pace >= level.PaceRequiredKmh && elapsedSeconds >= level.TimeLimitSeconds

	var success bool
	switch level.Shape() {
	case dungeon.ShapeUnconstrained:
		success = true
	case dungeon.ShapeDistanceOnly:
		success = coveredDistance
	case dungeon.ShapeTimeDistancePace:
		success = (coveredDistance && withinLimit) || heldPace
	case dungeon.ShapeTimePace:
		success = heldPace
	}

	if success {
		return dungeon.OutcomeSuccess, nil
	}
	return dungeon.OutcomeFailure, nil
}
