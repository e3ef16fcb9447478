// Package enemystats rolls concrete enemy stats from a template's ranges
// and derives the reward multiplier from how strong the roll came out.
package enemystats

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/legends-of-revenue/internal/entities"
	"github.com/KirkDiggler/legends-of-revenue/internal/errors"
	"github.com/KirkDiggler/legends-of-revenue/internal/pkg/rng"
)

// Reward multiplier bounds
const (
	MinRewardMultiplier = 0.8
	MaxRewardMultiplier = 1.3
)

// Generate draws hp, max hp, attack and defense independently from the
// template ranges. hp and max hp are two separate draws from the hp range,
// so an enemy may start below or above its own cap.
func Generate(roller dice.Roller, template *entities.EnemyTemplate) (*entities.EnemyStats, float64, error) {
	if template == nil {
		return nil, 0, errors.InvalidArgument("template cannot be nil")
	}
	if err := validateRanges(template); err != nil {
		return nil, 0, err
	}

	src := rng.New(roller)
	ranges := template.StatRanges

	hp, err := src.Between(ranges.HP.Min, ranges.HP.Max)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to roll hp")
	}
	maxHP, err := src.Between(ranges.HP.Min, ranges.HP.Max)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to roll max hp")
	}
	attack, err := src.Between(ranges.Attack.Min, ranges.Attack.Max)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to roll attack")
	}
	defense, err := src.Between(ranges.Defense.Min, ranges.Defense.Max)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to roll defense")
	}

	stats := &entities.EnemyStats{
		HP:      hp,
		MaxHP:   maxHP,
		Attack:  attack,
		Defense: defense,
	}

	return stats, RewardMultiplier(stats, ranges), nil
}

// RewardMultiplier weighs how high each stat rolled within its range:
// 0.8 + 0.5*(0.4*hp + 0.4*attack + 0.2*defense). The hp term uses max hp.
func RewardMultiplier(stats *entities.EnemyStats, ranges entities.StatRanges) float64 {
	hpPct := percentile(stats.MaxHP, ranges.HP)
	atkPct := percentile(stats.Attack, ranges.Attack)
	defPct := percentile(stats.Defense, ranges.Defense)

	return MinRewardMultiplier + 0.5*(0.4*hpPct+0.4*atkPct+0.2*defPct)
}

func percentile(value int, r entities.StatRange) float64 {
	if r.Max == r.Min {
		return 0.5
	}
	return float64(value-r.Min) / float64(r.Max-r.Min)
}

func validateRanges(template *entities.EnemyTemplate) error {
	vb := errors.NewValidationBuilder()
	check := func(name string, r entities.StatRange) {
		if r.Min > r.Max {
			vb.Fieldf(name, "min %d exceeds max %d", r.Min, r.Max)
		}
	}
	check("hp", template.StatRanges.HP)
	check("attack", template.StatRanges.Attack)
	check("defense", template.StatRanges.Defense)
	return vb.Build()
}
