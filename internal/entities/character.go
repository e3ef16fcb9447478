// Package entities holds the game data model shared by the engine,
// the orchestrator and the snapshot repositories.
package entities

import (
	"time"
)

// Character defaults and limits
const (
	MaxLevel          = 10
	StartingXPToNext  = 100
	StartingHP        = 300
	StartingAttack    = 5
	StartingDefense   = 3
	StartingGold      = 50
	HomeLocation      = "guild-hall"
	StarterItemID     = "health-potion"
	StarterItemAmount = 2
	ExploredSteps     = 10
)

// CharacterStats are the progression numbers of a character
type CharacterStats struct {
	Level    int `json:"level"`
	XP       int `json:"xp"`
	XPToNext int `json:"xp_to_next"`
	HP       int `json:"hp"`
	MaxHP    int `json:"max_hp"`
	Attack   int `json:"attack"`
	Defense  int `json:"defense"`
	Gold     int `json:"gold"`
}

// WorldState tracks map exploration
type WorldState struct {
	LocationProgress  map[string]int `json:"location_progress"`
	UnlockedLocations []string       `json:"unlocked_locations"`
}

// IsUnlocked reports whether a location may be entered
func (w *WorldState) IsUnlocked(id string) bool {
	return containsString(w.UnlockedLocations, id)
}

// Unlock adds id to the unlocked locations
func (w *WorldState) Unlock(id string) bool {
	if w.IsUnlocked(id) {
		return false
	}
	w.UnlockedLocations = append(w.UnlockedLocations, id)
	return true
}

// Record is the persisted player record shown on leaderboards
type Record struct {
	TotalGamesPlayed int        `json:"total_games_played"`
	HighestScore     int        `json:"highest_score"`
	WonPrize         bool       `json:"won_prize"`
	LastPlayed       *time.Time `json:"last_played,omitempty"`
}

// Character is the persisted aggregate for one player
type Character struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Stats              CharacterStats     `json:"stats"`
	Equipment          Equipment          `json:"equipment"`
	Inventory          []InventorySlot    `json:"inventory"`
	QuestionHistory    QuestionHistory    `json:"question_history"`
	Achievements       []AchievementState `json:"achievements"`
	EnemiesKilled      int                `json:"enemies_killed"`
	DefeatedEnemyTypes []string           `json:"defeated_enemy_types"`
	Location           string             `json:"location"`
	LocationsVisited   []string           `json:"locations_visited"`
	World              WorldState         `json:"world"`
	Record             Record             `json:"record"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// NewCharacter returns a level 1 character with starting gear and map state
func NewCharacter(id, name string, now time.Time) *Character {
	return &Character{
		ID:   id,
		Name: name,
		Stats: CharacterStats{
			Level:    1,
			XP:       0,
			XPToNext: StartingXPToNext,
			HP:       StartingHP,
			MaxHP:    StartingHP,
			Attack:   StartingAttack,
			Defense:  StartingDefense,
			Gold:     StartingGold,
		},
		Inventory: []InventorySlot{
			{ItemID: StarterItemID, Quantity: StarterItemAmount},
		},
		QuestionHistory:    QuestionHistory{AnsweredQuestionIDs: []string{}},
		Achievements:       NewAchievementStates(),
		DefeatedEnemyTypes: []string{},
		Location:           HomeLocation,
		LocationsVisited:   []string{HomeLocation},
		World:              NewWorldState(),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// NewWorldState returns the starting map state
func NewWorldState() WorldState {
	return WorldState{
		LocationProgress:  map[string]int{HomeLocation: ExploredSteps},
		UnlockedLocations: []string{HomeLocation, "merchants-row", "city-gates"},
	}
}

// GetID returns the character id
func (c *Character) GetID() string {
	return c.ID
}

// GetType returns the entity type
func (c *Character) GetType() string {
	return "character"
}

// QuantityOf returns the stacked quantity of id
func (c *Character) QuantityOf(id string) int {
	for _, slot := range c.Inventory {
		if slot.ItemID == id {
			return slot.Quantity
		}
	}
	return 0
}

// HasDefeated reports whether an enemy type was beaten before
func (c *Character) HasDefeated(enemyID string) bool {
	return containsString(c.DefeatedEnemyTypes, enemyID)
}

// HasVisited reports whether a location was entered before
func (c *Character) HasVisited(id string) bool {
	return containsString(c.LocationsVisited, id)
}

// Clone returns a deep copy so a snapshot cannot alias live state
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}

	out := *c
	out.Inventory = append([]InventorySlot(nil), c.Inventory...)
	out.QuestionHistory.AnsweredQuestionIDs = append([]string(nil), c.QuestionHistory.AnsweredQuestionIDs...)
	out.DefeatedEnemyTypes = append([]string(nil), c.DefeatedEnemyTypes...)
	out.LocationsVisited = append([]string(nil), c.LocationsVisited...)
	out.World.UnlockedLocations = append([]string(nil), c.World.UnlockedLocations...)
	out.World.LocationProgress = make(map[string]int, len(c.World.LocationProgress))
	for k, v := range c.World.LocationProgress {
		out.World.LocationProgress[k] = v
	}

	out.Achievements = make([]AchievementState, len(c.Achievements))
	for i, a := range c.Achievements {
		out.Achievements[i] = a
		if a.UnlockedAt != nil {
			t := *a.UnlockedAt
			out.Achievements[i].UnlockedAt = &t
		}
	}

	if c.Record.LastPlayed != nil {
		t := *c.Record.LastPlayed
		out.Record.LastPlayed = &t
	}

	return &out
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
