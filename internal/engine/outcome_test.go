package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dungeon-runner/internal/engine"
	"github.com/KirkDiggler/dungeon-runner/internal/entities/dungeon"
	"github.com/KirkDiggler/dungeon-runner/internal/errors"
	"github.com/KirkDiggler/dungeon-runner/internal/testutils"
)

func TestPace(t *testing.T) {
	assert.Equal(t, 0.0, engine.Pace(0, 5000))
	assert.Equal(t, 0.0, engine.Pace(0, 0))
	assert.Equal(t, 5.0, engine.Pace(3600, 5000))
	assert.Equal(t, 12.0, engine.Pace(1800, 6000))
}

func TestClassify(t *testing.T) {
	testCases := []struct {
		name     string
		level    dungeon.Level
		elapsed  int
		distance int
		want     dungeon.Outcome
	}{
		{"distance met", testutils.LevelCaveCrawl, 1000, 8000, dungeon.OutcomeSuccess},
		{"distance short by a metre", testutils.LevelCaveCrawl, 1000, 7999, dungeon.OutcomeFailure},
		{"farm always succeeds", testutils.LevelFarm, 0, 0, dungeon.OutcomeSuccess},
		{"farm with a real run", testutils.LevelFarm, 4000, 100, dungeon.OutcomeSuccess},

		// 1800s / 5000m / 10km/h
		{"finished within the cap", testutils.LevelEscape, 1700, 5000, dungeon.OutcomeSuccess},
		{"finished exactly on the cap", testutils.LevelEscape, 1800, 5000, dungeon.OutcomeSuccess},
		{"over the cap holding pace", testutils.LevelEscape, 2000, 5600, dungeon.OutcomeSuccess},
		{"over the cap too slow", testutils.LevelEscape, 2000, 5000, dungeon.OutcomeFailure},
		{"stopped early and short", testutils.LevelEscape, 1000, 4000, dungeon.OutcomeFailure},

		// 1800s / 7km/h
		{"held pace for the time", testutils.LevelForbiddenTomb, 1800, 3500, dungeon.OutcomeSuccess},
		{"fast but stopped early", testutils.LevelForbiddenTomb, 1000, 3000, dungeon.OutcomeFailure},
		{"long but too slow", testutils.LevelForbiddenTomb, 3600, 6000, dungeon.OutcomeFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			level := tc.level
			got, err := engine.Classify(&level, tc.elapsed, tc.distance)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestClassifyZeroElapsedIsClamped(t *testing.T) {
	// a one second run covering 100m is 360km/h, comfortably above pace
	level := dungeon.Level{ID: "sprint", TimeLimitSeconds: 1, PaceRequiredKmh: 5, RewardMultiplier: 1}
	got, err := engine.Classify(&level, 0, 100)
	require.NoError(t, err)
	assert.Equal(t, dungeon.OutcomeSuccess, got)
}

func TestClassifyRejectsUnrecognizedShapes(t *testing.T) {
	levels := []dungeon.Level{
		{ID: "time-only", TimeLimitSeconds: 600},
		{ID: "pace-only", PaceRequiredKmh: 8},
		{ID: "time-distance", TimeLimitSeconds: 600, DistanceRequiredMeters: 1000},
		{ID: "distance-pace", DistanceRequiredMeters: 1000, PaceRequiredKmh: 8},
	}

	for _, level := range levels {
		t.Run(level.ID, func(t *testing.T) {
			_, err := engine.Classify(&level, 100, 100)
			require.Error(t, err)
			assert.True(t, errors.IsUnrecognizedConstraintShape(err))
		})
	}
}

func TestValidateLevel(t *testing.T) {
	assert.NoError(t, engine.ValidateLevel(&testutils.LevelEscape))
	assert.True(t, errors.IsInvalidArgument(engine.ValidateLevel(nil)))
	assert.True(t, errors.IsInvalidArgument(engine.ValidateLevel(&dungeon.Level{DistanceRequiredMeters: -5})))
}

func TestValidateLevelRequiresPositiveMultiplier(t *testing.T) {
	for _, multiplier := range []float64{0, -1.5} {
		level := testutils.LevelCaveCrawl
		level.RewardMultiplier = multiplier

		err := engine.ValidateLevel(&level)
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
		assert.Contains(t, err.Error(), "cave-crawl")
	}
}
