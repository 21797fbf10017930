package testutils

import (
	"fmt"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// ScriptedRoller replays a fixed sequence of die results and records the
// die sizes it was asked for.
type ScriptedRoller struct {
	mu    sync.Mutex
	rolls []int
	pos   int
	sizes []int
}

var _ dice.Roller = (*ScriptedRoller)(nil)

// NewScriptedRoller creates a roller that returns rolls in order
func NewScriptedRoller(rolls ...int) *ScriptedRoller {
	return &ScriptedRoller{rolls: rolls}
}

// Roll returns the next scripted value. It fails when the script runs
// out or the value does not fit the die.
func (r *ScriptedRoller) Roll(size int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sizes = append(r.sizes, size)
	if r.pos >= len(r.rolls) {
		return 0, fmt.Errorf("scripted roller exhausted after %d rolls", len(r.rolls))
	}
	v := r.rolls[r.pos]
	r.pos++
	if v < 1 || v > size {
		return 0, fmt.Errorf("scripted roll %d does not fit d%d", v, size)
	}
	return v, nil
}

// RollN rolls count scripted values
func (r *ScriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, 0, count)
	for i := 0; i < count; i++ {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Sizes returns the die sizes requested so far
func (r *ScriptedRoller) Sizes() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, len(r.sizes))
	copy(out, r.sizes)
	return out
}

// Remaining returns how many scripted rolls are unused
func (r *ScriptedRoller) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rolls) - r.pos
}

// MinRoller always rolls a one
type MinRoller struct{}

// Roll implements dice.Roller
func (MinRoller) Roll(_ int) (int, error) { return 1, nil }

// RollN implements dice.Roller
func (MinRoller) RollN(count, _ int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i] = 1
	}
	return out, nil
}

// MaxRoller always rolls the highest face
type MaxRoller struct{}

// Roll implements dice.Roller
func (MaxRoller) Roll(size int) (int, error) { return size, nil }

// RollN implements dice.Roller
func (MaxRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i] = size
	}
	return out, nil
}
