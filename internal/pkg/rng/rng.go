// Package rng turns rpg-toolkit dice rolls into the ranged integers, chances
// and variance multipliers the game engine needs.
package rng

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/legends-of-revenue/internal/errors"
)

const (
	chanceResolution = 1_000_000
	floatResolution  = 10_000
)

// Source draws random values from a dice roller
type Source struct {
	roller dice.Roller
}

// New wraps roller; a nil roller falls back to the toolkit's crypto roller
func New(roller dice.Roller) *Source {
	if roller == nil {
		roller = dice.DefaultRoller
	}
	return &Source{roller: roller}
}

// Between returns a uniform integer in [minValue, maxValue]
func (s *Source) Between(minValue, maxValue int) (int, error) {
	if maxValue < minValue {
		return 0, errors.InvalidArgumentf("invalid range %d..%d", minValue, maxValue)
	}
	if maxValue == minValue {
		return minValue, nil
	}

	roll, err := s.roller.Roll(maxValue - minValue + 1)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll range")
	}
	return minValue + roll - 1, nil
}

// Index returns a uniform integer in [0, n)
func (s *Source) Index(n int) (int, error) {
	if n <= 0 {
		return 0, errors.InvalidArgumentf("cannot pick from %d elements", n)
	}
	return s.Between(0, n-1)
}

// Chance reports true with probability p. Probabilities at or outside the
// [0, 1] bounds resolve without consuming a roll.
func (s *Source) Chance(p float64) (bool, error) {
	if p <= 0 {
		return false, nil
	}
	if p >= 1 {
		return true, nil
	}

	roll, err := s.roller.Roll(chanceResolution)
	if err != nil {
		return false, errors.Wrap(err, "failed to roll chance")
	}
	return float64(roll-1) < p*chanceResolution, nil
}

// Float returns a value in [lo, hi] at 1/10000 granularity
func (s *Source) Float(lo, hi float64) (float64, error) {
	if hi < lo {
		return 0, errors.InvalidArgumentf("invalid range %v..%v", lo, hi)
	}
	roll, err := s.roller.Roll(floatResolution + 1)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll float")
	}
	return lo + (hi-lo)*float64(roll-1)/floatResolution, nil
}

// Shuffle permutes n elements in place through swap (Fisher-Yates)
func (s *Source) Shuffle(n int, swap func(i, j int)) error {
	for i := n - 1; i > 0; i-- {
		j, err := s.Between(0, i)
		if err != nil {
			return err
		}
		swap(i, j)
	}
	return nil
}
