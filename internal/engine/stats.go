package engine

import (
	"math"

	"github.com/KirkDiggler/dungeon-runner/internal/entities/gear"
	"github.com/KirkDiggler/dungeon-runner/internal/errors"
)

// AccumulateBias sums the bias of every drawn descriptor
func AccumulateBias(drawn []gear.Descriptor) gear.Bias {
	var total gear.Bias
	for _, d := range drawn {
		total = total.Add(d.Bias)
	}
	return total
}

// Normalize spreads points over the five channels in proportion to the
// accumulated bias. Each channel is rounded on its own, so the stat sum
// may drift from points by up to one per channel.
func Normalize(drawn []gear.Descriptor, points int) (gear.Stats, error) {
	if points < 0 {
		return gear.Stats{}, errors.InvalidArgumentf("points must not be negative, got %d", points)
	}

	bias := AccumulateBias(drawn)
	total := bias.Total()
	if total <= 0 {
		texts := make([]string, len(drawn))
		for i, d := range drawn {
			texts[i] = d.Text
		}
		return gear.Stats{}, errors.DegenerateBias(texts)
	}

	share := func(channel int) int {
		return int(math.Round(float64(points) * float64(channel) / float64(total)))
	}

	return gear.Stats{
		Armour:       share(bias.Armour),
		Damage:       share(bias.Damage),
		Strength:     share(bias.Strength),
		Agility:      share(bias.Agility),
		Intelligence: share(bias.Intelligence),
	}, nil
}
