package dungeon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/dungeon-runner/internal/entities/dungeon"
)

func TestLevelShape(t *testing.T) {
	testCases := []struct {
		name  string
		level dungeon.Level
		want  dungeon.Shape
	}{
		{"farm", dungeon.Level{}, dungeon.ShapeUnconstrained},
		{"distance only", dungeon.Level{DistanceRequiredMeters: 8000}, dungeon.ShapeDistanceOnly},
		{
			"time distance pace",
			dungeon.Level{TimeLimitSeconds: 3600, DistanceRequiredMeters: 5000, PaceRequiredKmh: 5},
			dungeon.ShapeTimeDistancePace,
		},
		{"time pace", dungeon.Level{TimeLimitSeconds: 1800, PaceRequiredKmh: 7}, dungeon.ShapeTimePace},
		{"time only", dungeon.Level{TimeLimitSeconds: 1800}, dungeon.ShapeUnrecognized},
		{"pace only", dungeon.Level{PaceRequiredKmh: 7}, dungeon.ShapeUnrecognized},
		{"time distance", dungeon.Level{TimeLimitSeconds: 60, DistanceRequiredMeters: 1}, dungeon.ShapeUnrecognized},
		{"distance pace", dungeon.Level{DistanceRequiredMeters: 1, PaceRequiredKmh: 1}, dungeon.ShapeUnrecognized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.level.Shape())
		})
	}
}

func TestLevelMultiplier(t *testing.T) {
	assert.Equal(t, 1.65, (&dungeon.Level{RewardMultiplier: 1.65}).Multiplier())
}

func TestWeatherMultiplierIsSymmetric(t *testing.T) {
	assert.Equal(t, dungeon.WeatherScorching.Multiplier(), dungeon.WeatherGlacial.Multiplier())
	assert.Equal(t, dungeon.WeatherHot.Multiplier(), dungeon.WeatherFrosty.Multiplier())
	assert.Equal(t, dungeon.WeatherWarm.Multiplier(), dungeon.WeatherCold.Multiplier())
	assert.Equal(t, 1.0, dungeon.WeatherFine.Multiplier())
	assert.Equal(t, 1.0, dungeon.WeatherUnavailable.Multiplier())
	assert.Equal(t, 1.0, dungeon.Weather("Foggy").Multiplier())
}
