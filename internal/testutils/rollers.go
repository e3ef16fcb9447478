package testutils

import (
	"fmt"
	"sync"
)

// FixedRoller always rolls Value, capped at the die size. A Value of 1
// gives minimum draws and makes every chance succeed; a huge Value gives
// maximum draws and makes every chance fail.
type FixedRoller struct {
	Value int
}

// Roll returns min(Value, size)
func (r *FixedRoller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, fmt.Errorf("invalid die size %d", size)
	}
	return clampRoll(r.Value, size), nil
}

// RollN rolls count dice
func (r *FixedRoller) RollN(count, size int) ([]int, error) {
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

// MaxRoll is a FixedRoller value larger than any die in the game
const MaxRoll = 1 << 30

// ScriptedRoller replays Values in order, each clamped to the die size.
// Once the script runs out it rolls Fallback, or fails when Fallback is 0.
type ScriptedRoller struct {
	mu       sync.Mutex
	Values   []int
	Fallback int
	// Sizes records the die size of every roll
	Sizes []int
}

// NewScriptedRoller creates a roller that replays values
func NewScriptedRoller(values ...int) *ScriptedRoller {
	return &ScriptedRoller{Values: values}
}

// Roll returns the next scripted value
func (r *ScriptedRoller) Roll(size int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if size <= 0 {
		return 0, fmt.Errorf("invalid die size %d", size)
	}
	r.Sizes = append(r.Sizes, size)

	if len(r.Values) == 0 {
		if r.Fallback == 0 {
			return 0, fmt.Errorf("scripted roller exhausted at roll %d (d%d)", len(r.Sizes), size)
		}
		return clampRoll(r.Fallback, size), nil
	}

	v := r.Values[0]
	r.Values = r.Values[1:]
	return clampRoll(v, size), nil
}

// RollN rolls count dice
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

// Remaining returns how many scripted values are left
func (r *ScriptedRoller) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Values)
}

func clampRoll(v, size int) int {
	if v < 1 {
		return 1
	}
	if v > size {
		return size
	}
	return v
}
