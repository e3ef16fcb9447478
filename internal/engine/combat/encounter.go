package combat

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/legends-of-revenue/internal/engine/inventory"
	"github.com/KirkDiggler/legends-of-revenue/internal/entities"
)

// Encounter is the state of one fight. Encounters live in memory only and
// are never resumed after a reload.
type Encounter struct {
	ID               string                 `json:"id"`
	Enemy            entities.EnemyInstance `json:"enemy"`
	RewardMultiplier float64                `json:"reward_multiplier"`
	Phase            Phase                  `json:"phase"`
	Turn             int                    `json:"turn"`
	EnemyBuffs       EnemyBuffs             `json:"enemy_buffs"`
	// EnemyDebuff is subtracted from the enemy's next attack only
	EnemyDebuff int `json:"enemy_debuff"`
	// DefenseBuff is added to player defense until the encounter ends
	DefenseBuff    int                `json:"defense_buff"`
	FiredAbilities []string           `json:"fired_abilities,omitempty"`
	Tally          Tally              `json:"tally"`
	Log            []string           `json:"log"`
	Question       *PresentedQuestion `json:"question,omitempty"`

	pending *pendingQuestion
}

var _ inventory.EffectTarget = (*Encounter)(nil)

func (e *Encounter) snapshot() *Encounter {
	out := *e
	out.Enemy.Abilities = append([]entities.EnemyAbility(nil), e.Enemy.Abilities...)
	out.Enemy.Rewards.Items = append([]entities.LootEntry(nil), e.Enemy.Rewards.Items...)
	out.FiredAbilities = append([]string(nil), e.FiredAbilities...)
	out.Log = append([]string(nil), e.Log...)
	if e.pending != nil {
		out.Question = e.pending.present()
	}
	out.pending = nil
	return &out
}

func (e *Encounter) logf(format string, args ...interface{}) {
	e.Log = append(e.Log, fmt.Sprintf(format, args...))
}

func (e *Encounter) enemyDead() bool {
	return e.Enemy.Stats.HP <= 0
}

func (e *Encounter) hasFired(id string) bool {
	for _, fired := range e.FiredAbilities {
		if fired == id {
			return true
		}
	}
	return false
}

func (e *Encounter) fire(ability entities.EnemyAbility) {
	e.FiredAbilities = append(e.FiredAbilities, ability.ID)

	stats := &e.Enemy.Stats
	switch ability.Effect.Type {
	case entities.AbilityDamageBoost:
		e.EnemyBuffs.DamageBoost += ability.Effect.Value
		e.logf("%s uses %s! Attack increased by %d.", e.Enemy.Name, ability.Name, ability.Effect.Value)
	case entities.AbilityDefenseBoost:
		e.EnemyBuffs.DefenseBoost += ability.Effect.Value
		e.logf("%s uses %s! Defense increased by %d.", e.Enemy.Name, ability.Name, ability.Effect.Value)
	case entities.AbilityHeal:
		before := stats.HP
		stats.HP = min(stats.MaxHP, stats.HP+ability.Effect.Value)
		e.logf("%s uses %s and recovers %d HP!", e.Enemy.Name, ability.Name, max(0, stats.HP-before))
	}
}

func (e *Encounter) fireCombatStart() {
	for _, ability := range e.Enemy.Abilities {
		if ability.Trigger == entities.TriggerCombatStart && !e.hasFired(ability.ID) {
			e.fire(ability)
		}
	}
}

// checkThresholds fires every unfired hp trigger the enemy is now at or
// under. A killing blow fires nothing.
func (e *Encounter) checkThresholds() {
	stats := e.Enemy.Stats
	if stats.HP <= 0 {
		return
	}
	for _, ability := range e.Enemy.Abilities {
		pct, ok := ability.Trigger.Threshold()
		if !ok || e.hasFired(ability.ID) {
			continue
		}
		if float64(stats.HP) <= float64(stats.MaxHP)*float64(pct)/100 {
			e.fire(ability)
		}
	}
}

// hitEnemy applies player attack damage after the enemy's ability defense
// boost, floored at 1. Returns the damage dealt.
func (e *Encounter) hitEnemy(damage int) int {
	dealt := max(1, damage-e.EnemyBuffs.DefenseBoost)
	e.Enemy.Stats.HP = max(0, e.Enemy.Stats.HP-dealt)
	e.checkThresholds()
	return dealt
}

// DamageEnemy applies item damage directly, ignoring enemy defense
func (e *Encounter) DamageEnemy(_ context.Context, amount int) int {
	if amount <= 0 {
		return 0
	}
	e.Enemy.Stats.HP = max(0, e.Enemy.Stats.HP-amount)
	e.logf("You deal %d damage to %s!", amount, e.Enemy.Name)
	e.checkThresholds()
	return amount
}

// DebuffEnemy sets the reduction applied to the enemy's next attack
func (e *Encounter) DebuffEnemy(_ context.Context, amount int) {
	e.EnemyDebuff = amount
	e.logf("%s is weakened! Next attack reduced by %d.", e.Enemy.Name, amount)
}

// BuffDefense raises player defense for the rest of the encounter
func (e *Encounter) BuffDefense(_ context.Context, amount int) {
	e.DefenseBuff += amount
	e.logf("Your defense rises by %d for this battle.", amount)
}
