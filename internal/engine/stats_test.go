package engine_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dungeon-runner/internal/engine"
	"github.com/KirkDiggler/dungeon-runner/internal/entities/gear"
	"github.com/KirkDiggler/dungeon-runner/internal/errors"
)

func TestNormalize(t *testing.T) {
	drawn := []gear.Descriptor{
		{Text: "Cowl", Bias: gear.Bias{Intelligence: 10}},
		{Text: "Bear", Bias: gear.Bias{Strength: 5}},
		{Text: "Padded", Bias: gear.Bias{Armour: 10}},
	}

	testCases := []struct {
		name   string
		points int
		want   gear.Stats
	}{
		{"even split", 100, gear.Stats{Armour: 40, Strength: 20, Intelligence: 40}},
		{"rounds each channel", 7, gear.Stats{Armour: 3, Strength: 1, Intelligence: 3}},
		{"exact shares", 5, gear.Stats{Armour: 2, Strength: 1, Intelligence: 2}},
		{"zero points", 0, gear.Stats{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stats, err := engine.Normalize(drawn, tc.points)
			require.NoError(t, err)
			assert.Equal(t, tc.want, stats)
		})
	}
}

func TestNormalizeDegenerateBias(t *testing.T) {
	_, err := engine.Normalize([]gear.Descriptor{{Text: "Tomahawk"}}, 50)
	require.Error(t, err)
	assert.True(t, errors.IsDegenerateBias(err))

	_, err = engine.Normalize(nil, 50)
	assert.True(t, errors.IsDegenerateBias(err))
}

func TestNormalizeRejectsNegativePoints(t *testing.T) {
	_, err := engine.Normalize([]gear.Descriptor{{Bias: gear.Bias{Armour: 1}}}, -1)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestNormalizeSumStaysNearBudget(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	channel := func() int { return rng.Intn(11) }

	for i := 0; i < 2000; i++ {
		var drawn []gear.Descriptor
		for j := 0; j < 1+rng.Intn(3); j++ {
			drawn = append(drawn, gear.Descriptor{Bias: gear.Bias{
				Armour: channel(), Damage: channel(), Strength: channel(), Agility: channel(), Intelligence: channel(),
			}})
		}
		if engine.AccumulateBias(drawn).Total() == 0 {
			continue
		}
		points := 1 + rng.Intn(5000)

		stats, err := engine.Normalize(drawn, points)
		require.NoError(t, err)

		for _, v := range []int{stats.Armour, stats.Damage, stats.Strength, stats.Agility, stats.Intelligence} {
			assert.GreaterOrEqual(t, v, 0)
		}
		assert.InDelta(t, points, stats.Sum(), 5)
	}
}
