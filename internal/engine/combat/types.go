package combat

import (
	"github.com/KirkDiggler/legends-of-revenue/internal/engine/quiz"
	"github.com/KirkDiggler/legends-of-revenue/internal/entities"
)

// Phase is the state of an encounter
type Phase string

// Encounter phases
const (
	PhaseSelectAttack   Phase = "select-attack"
	PhaseAnswerQuestion Phase = "answer-question"
	PhaseDefendQuestion Phase = "defend-question"
	PhaseVictory        Phase = "victory"
	PhaseBossVictory    Phase = "boss-victory"
	PhaseDefeat         Phase = "defeat"
	PhaseFled           Phase = "fled"
)

// Terminal reports whether the encounter is over
func (p Phase) Terminal() bool {
	switch p {
	case PhaseVictory, PhaseBossVictory, PhaseDefeat, PhaseFled:
		return true
	}
	return false
}

// Combat tuning
const (
	BasicAttackID     = "basic-attack"
	BasicAttackMin    = 10
	BasicAttackMax    = 20
	VarianceLow       = 0.9
	VarianceHigh      = 1.1
	CritMultiplier    = 2
	FleeChance        = 0.6
	DefaultFinalBoss  = "arim"
	basicAttackName   = "Basic Attack"
	basicAttackDetail = "A plain strike for 10-20 damage. No question asked."
)

// Attack is one entry of the attack menu
type Attack struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Damage      int                  `json:"damage"`
	Category    string               `json:"category,omitempty"`
	Difficulty  entities.Difficulty  `json:"difficulty,omitempty"`
	Effect      *entities.EffectSpec `json:"effect,omitempty"`
	// Available is false once the category has no unanswered question
	Available bool `json:"available"`
}

// EnemyBuffs accumulate from enemy abilities for the rest of the encounter
type EnemyBuffs struct {
	DamageBoost  int `json:"damage_boost"`
	DefenseBoost int `json:"defense_boost"`
}

// Tally counts the questions of one encounter
type Tally struct {
	Asked   int `json:"asked"`
	Correct int `json:"correct"`
	Wrong   int `json:"wrong"`
}

// PresentedQuestion is a pending question as shown to the player
type PresentedQuestion struct {
	ID        string   `json:"id"`
	Category  string   `json:"category"`
	Text      string   `json:"question"`
	Answers   []string `json:"answers"`
	Points    int      `json:"points"`
	BonusTime int      `json:"bonus_time,omitempty"`
	// Defense is set for questions asked to dodge an enemy attack
	Defense  bool   `json:"defense"`
	AttackID string `json:"attack_id,omitempty"`
}

type pendingQuestion struct {
	question *entities.Question
	answers  []entities.Answer
	attack   *entities.SpecialAttack
	defense  bool
}

func (p *pendingQuestion) present() *PresentedQuestion {
	texts := make([]string, len(p.answers))
	for i, a := range p.answers {
		texts[i] = a.Text
	}

	out := &PresentedQuestion{
		ID:        p.question.ID,
		Category:  p.question.Category,
		Text:      p.question.Text,
		Answers:   texts,
		Points:    p.question.Points,
		BonusTime: p.question.BonusTime,
		Defense:   p.defense,
	}
	if p.attack != nil {
		out.AttackID = p.attack.ID
	}
	return out
}

// LootDrop is one item dropped on victory
type LootDrop struct {
	ItemID string          `json:"item_id"`
	Name   string          `json:"name"`
	Rarity entities.Rarity `json:"rarity"`
}

// Outcome summarizes a finished encounter
type Outcome struct {
	Result       Phase      `json:"result"`
	EnemyID      string     `json:"enemy_id"`
	EnemyName    string     `json:"enemy_name"`
	XPGained     int        `json:"xp_gained"`
	GoldGained   int        `json:"gold_gained"`
	LevelsGained int        `json:"levels_gained"`
	HPRestored   int        `json:"hp_restored"`
	Loot         []LootDrop `json:"loot,omitempty"`
	XPLost       int        `json:"xp_lost"`
	// Aborted is set when the player navigated away mid-encounter
	Aborted bool  `json:"aborted"`
	Turns   int   `json:"turns"`
	Tally   Tally `json:"tally"`
}

// TurnResult is what one player action produced
type TurnResult struct {
	Encounter *Encounter         `json:"encounter"`
	Question  *PresentedQuestion `json:"question,omitempty"`
	Answer    *quiz.AnswerResult `json:"answer,omitempty"`
	// DamageDealt is the damage the player did to the enemy
	DamageDealt int  `json:"damage_dealt"`
	Critical    bool `json:"critical"`
	// DamageTaken is the damage the enemy did to the player
	DamageTaken int      `json:"damage_taken"`
	Dodged      bool     `json:"dodged"`
	Log         []string `json:"log"`
	Outcome     *Outcome `json:"outcome,omitempty"`
	Warnings    []string `json:"warnings,omitempty"`
}
