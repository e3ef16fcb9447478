package entities

import (
	"github.com/KirkDiggler/legends-of-revenue/internal/errors"
)

// EffectKind names an effect variant on the wire
type EffectKind string

// Effect kinds
const (
	EffectHeal   EffectKind = "heal"
	EffectDamage EffectKind = "damage"
	EffectDebuff EffectKind = "debuff"
	EffectBuff   EffectKind = "buff"
)

// Effect is the secondary effect of a consumable or special attack.
// The variants are HealEffect, DamageEffect, DebuffEffect and BuffEffect;
// callers dispatch with a type switch.
type Effect interface {
	Kind() EffectKind
	Amount() int
	isEffect()
}

// HealEffect restores hp to the player, capped at max hp
type HealEffect struct{ Value int }

// DamageEffect deals direct damage to the current enemy
type DamageEffect struct{ Value int }

// DebuffEffect reduces the enemy's next attack
type DebuffEffect struct{ Value int }

// BuffEffect raises player defense for the rest of the encounter
type BuffEffect struct{ Value int }

func (HealEffect) Kind() EffectKind   { return EffectHeal }
func (DamageEffect) Kind() EffectKind { return EffectDamage }
func (DebuffEffect) Kind() EffectKind { return EffectDebuff }
func (BuffEffect) Kind() EffectKind   { return EffectBuff }

func (e HealEffect) Amount() int   { return e.Value }
func (e DamageEffect) Amount() int { return e.Value }
func (e DebuffEffect) Amount() int { return e.Value }
func (e BuffEffect) Amount() int   { return e.Value }

func (HealEffect) isEffect()   {}
func (DamageEffect) isEffect() {}
func (DebuffEffect) isEffect() {}
func (BuffEffect) isEffect()   {}

// EffectSpec is the serialized form of an Effect
type EffectSpec struct {
	Type  EffectKind `json:"type"`
	Value int        `json:"value"`
}

// ParseEffect builds the variant for kind. Unknown kinds and negative
// values are rejected.
func ParseEffect(kind EffectKind, value int) (Effect, error) {
	if value < 0 {
		return nil, errors.InvalidArgumentf("effect %s has negative value %d", kind, value)
	}

	switch kind {
	case EffectHeal:
		return HealEffect{Value: value}, nil
	case EffectDamage:
		return DamageEffect{Value: value}, nil
	case EffectDebuff:
		return DebuffEffect{Value: value}, nil
	case EffectBuff:
		return BuffEffect{Value: value}, nil
	default:
		return nil, errors.InvalidArgumentf("unknown effect type %q", kind)
	}
}

// SpecOf converts an effect back to its serialized form; nil stays nil
func SpecOf(e Effect) *EffectSpec {
	if e == nil {
		return nil
	}
	return &EffectSpec{Type: e.Kind(), Value: e.Amount()}
}

func (s *EffectSpec) toEffect() (Effect, error) {
	if s == nil {
		return nil, nil
	}
	return ParseEffect(s.Type, s.Value)
}
