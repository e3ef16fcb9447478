package entities

// StatRange is an inclusive [Min, Max] draw range
type StatRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// StatRanges holds the draw ranges of an enemy template
type StatRanges struct {
	HP      StatRange `json:"hp"`
	Attack  StatRange `json:"attack"`
	Defense StatRange `json:"defense"`
}

// LootEntry is one independent loot roll; a nil Chance means always
type LootEntry struct {
	ID     string   `json:"id"`
	Chance *float64 `json:"chance,omitempty"`
}

// DropChance returns the effective chance of the entry
func (l LootEntry) DropChance() float64 {
	if l.Chance == nil {
		return 1.0
	}
	return *l.Chance
}

// Rewards are granted on defeating an enemy, scaled by the reward multiplier
type Rewards struct {
	XP    int         `json:"xp"`
	Gold  int         `json:"gold"`
	Items []LootEntry `json:"items"`
}

// AbilityTrigger is when an enemy ability fires
type AbilityTrigger string

// Ability triggers
const (
	TriggerCombatStart AbilityTrigger = "combat-start"
	TriggerHPBelow75   AbilityTrigger = "hp-below-75"
	TriggerHPBelow50   AbilityTrigger = "hp-below-50"
	TriggerHPBelow30   AbilityTrigger = "hp-below-30"
)

// Threshold returns the hp percentage for threshold triggers
func (t AbilityTrigger) Threshold() (int, bool) {
	switch t {
	case TriggerHPBelow75:
		return 75, true
	case TriggerHPBelow50:
		return 50, true
	case TriggerHPBelow30:
		return 30, true
	}
	return 0, false
}

// Valid reports whether t is a known trigger
func (t AbilityTrigger) Valid() bool {
	if t == TriggerCombatStart {
		return true
	}
	_, ok := t.Threshold()
	return ok
}

// AbilityEffectType is what an enemy ability does when it fires
type AbilityEffectType string

// Ability effect types
const (
	AbilityDamageBoost  AbilityEffectType = "damage-boost"
	AbilityDefenseBoost AbilityEffectType = "defense-boost"
	AbilityHeal         AbilityEffectType = "heal"
)

// Valid reports whether t is a known ability effect
func (t AbilityEffectType) Valid() bool {
	switch t {
	case AbilityDamageBoost, AbilityDefenseBoost, AbilityHeal:
		return true
	}
	return false
}

// AbilityEffect is the payload of an enemy ability
type AbilityEffect struct {
	Type  AbilityEffectType `json:"type"`
	Value int               `json:"value"`
}

// EnemyAbility fires at most once per encounter
type EnemyAbility struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Trigger AbilityTrigger `json:"trigger"`
	Effect  AbilityEffect  `json:"effect"`
}

// EnemyTemplate is a static enemy definition
type EnemyTemplate struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	StatRanges  StatRanges     `json:"stat_ranges"`
	Rewards     Rewards        `json:"rewards"`
	Abilities   []EnemyAbility `json:"abilities,omitempty"`
}

// EnemyStats are the concrete stats of a spawned enemy
type EnemyStats struct {
	HP      int `json:"hp"`
	MaxHP   int `json:"max_hp"`
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
}

// EnemyInstance is a spawned enemy bound to one encounter
type EnemyInstance struct {
	ID          string         `json:"id"`
	TemplateID  string         `json:"template_id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Stats       EnemyStats     `json:"stats"`
	StatRanges  StatRanges     `json:"stat_ranges"`
	Rewards     Rewards        `json:"rewards"`
	Abilities   []EnemyAbility `json:"abilities,omitempty"`
}

// GetID returns the instance id
func (e *EnemyInstance) GetID() string {
	return e.ID
}

// GetType returns the entity type
func (e *EnemyInstance) GetType() string {
	return "enemy"
}
