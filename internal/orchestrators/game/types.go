package game

import (
	"github.com/KirkDiggler/legends-of-revenue/internal/engine/combat"
	"github.com/KirkDiggler/legends-of-revenue/internal/engine/inventory"
	"github.com/KirkDiggler/legends-of-revenue/internal/engine/market"
	"github.com/KirkDiggler/legends-of-revenue/internal/engine/world"
	"github.com/KirkDiggler/legends-of-revenue/internal/entities"
	"github.com/KirkDiggler/legends-of-revenue/internal/repositories/snapshot"
)

// CharacterState is a detached view of a session's character
type CharacterState struct {
	Character    *entities.Character        `json:"character"`
	Bonuses      inventory.Bonuses          `json:"bonuses"`
	RecentUnlock *entities.AchievementState `json:"recent_unlock,omitempty"`
	InCombat     bool                       `json:"in_combat"`
}

// Statistics summarizes one character's play
type Statistics struct {
	QuestionsAnswered    int             `json:"questions_answered"`
	CorrectAnswers       int             `json:"correct_answers"`
	WrongAnswers         int             `json:"wrong_answers"`
	Accuracy             float64         `json:"accuracy"`
	TotalPoints          int             `json:"total_points"`
	Score                int             `json:"score"`
	EnemiesKilled        int             `json:"enemies_killed"`
	EnemiesDiscovered    int             `json:"enemies_discovered"`
	EnemiesTotal         int             `json:"enemies_total"`
	LocationsVisited     int             `json:"locations_visited"`
	LocationsExplored    int             `json:"locations_explored"`
	LocationsTotal       int             `json:"locations_total"`
	AchievementsUnlocked int             `json:"achievements_unlocked"`
	AchievementsTotal    int             `json:"achievements_total"`
	Record               entities.Record `json:"record"`
}

// CreateCharacterInput defines the input for creating a character
type CreateCharacterInput struct {
	Name string
}

// CreateCharacterOutput defines the output for creating a character
type CreateCharacterOutput struct {
	Character *CharacterState
	Warnings  []string
}

// LoadCharacterInput defines the input for loading a character from storage
type LoadCharacterInput struct {
	CharacterID string
}

// LoadCharacterOutput defines the output for loading a character
type LoadCharacterOutput struct {
	Character *CharacterState
}

// GetCharacterInput defines the input for reading a character
type GetCharacterInput struct {
	CharacterID string
}

// GetCharacterOutput defines the output for reading a character
type GetCharacterOutput struct {
	Character *CharacterState
}

// ResetCharacterInput defines the input for resetting a character
type ResetCharacterInput struct {
	CharacterID string
}

// ResetCharacterOutput defines the output for resetting a character
type ResetCharacterOutput struct {
	Character *CharacterState
	Warnings  []string
}

// DeleteCharacterInput defines the input for deleting a character
type DeleteCharacterInput struct {
	CharacterID string
}

// DeleteCharacterOutput defines the output for deleting a character
type DeleteCharacterOutput struct{}

// EndSessionInput defines the input for ending a play session
type EndSessionInput struct {
	CharacterID string
}

// EndSessionOutput defines the output for ending a play session
type EndSessionOutput struct {
	Record   entities.Record
	Warnings []string
}

// StartEncounterInput defines the input for starting an encounter
type StartEncounterInput struct {
	CharacterID string
	EnemyID     string
}

// StartEncounterOutput defines the output for starting an encounter
type StartEncounterOutput struct {
	Encounter *combat.Encounter
}

// GetEncounterInput defines the input for reading the active encounter
type GetEncounterInput struct {
	CharacterID string
}

// GetEncounterOutput defines the output for reading the active encounter.
// Encounter is nil when the character is not fighting.
type GetEncounterOutput struct {
	Encounter *combat.Encounter
}

// ListAttacksInput defines the input for listing attack options
type ListAttacksInput struct {
	CharacterID string
}

// ListAttacksOutput defines the output for listing attack options
type ListAttacksOutput struct {
	Attacks []combat.Attack
}

// BasicAttackInput defines the input for a basic attack
type BasicAttackInput struct {
	CharacterID string
}

// BasicAttackOutput defines the output for a basic attack
type BasicAttackOutput struct {
	Turn      *combat.TurnResult
	Character *CharacterState
	Warnings  []string
}

// SpecialAttackInput defines the input for choosing a special attack
type SpecialAttackInput struct {
	CharacterID string
	AttackID    string
}

// SpecialAttackOutput defines the output for choosing a special attack
type SpecialAttackOutput struct {
	Turn *combat.TurnResult
}

// SubmitAnswerInput defines the input for answering the pending question
type SubmitAnswerInput struct {
	CharacterID string
	AnswerIndex int
}

// SubmitAnswerOutput defines the output for answering the pending question
type SubmitAnswerOutput struct {
	Turn      *combat.TurnResult
	Character *CharacterState
	Warnings  []string
}

// FleeInput defines the input for fleeing
type FleeInput struct {
	CharacterID string
}

// FleeOutput defines the output for fleeing
type FleeOutput struct {
	Turn      *combat.TurnResult
	Character *CharacterState
	Warnings  []string
}

// UseItemInput defines the input for using a consumable
type UseItemInput struct {
	CharacterID string
	ItemID      string
}

// UseItemOutput defines the output for using a consumable. Turn is set when
// the item was used in combat.
type UseItemOutput struct {
	Used      bool
	Amount    int
	Turn      *combat.TurnResult
	Character *CharacterState
	Warnings  []string
}

// EquipItemInput defines the input for equipping an item
type EquipItemInput struct {
	CharacterID string
	ItemID      string
	Slot        entities.EquipSlot
}

// EquipItemOutput defines the output for equipping an item
type EquipItemOutput struct {
	Equipped  bool
	Character *CharacterState
	Warnings  []string
}

// UnequipItemInput defines the input for emptying a slot
type UnequipItemInput struct {
	CharacterID string
	Slot        entities.EquipSlot
}

// UnequipItemOutput defines the output for emptying a slot
type UnequipItemOutput struct {
	Character *CharacterState
	Warnings  []string
}

// ListMarketInput defines the input for listing the market
type ListMarketInput struct {
	CharacterID string
}

// ListMarketOutput defines the output for listing the market
type ListMarketOutput struct {
	Listings []market.Listing
	Gold     int
}

// BuyItemInput defines the input for buying an item
type BuyItemInput struct {
	CharacterID string
	ItemID      string
}

// BuyItemOutput defines the output for buying an item
type BuyItemOutput struct {
	Trade    *market.TradeResult
	Warnings []string
}

// SellItemInput defines the input for selling an item
type SellItemInput struct {
	CharacterID string
	ItemID      string
}

// SellItemOutput defines the output for selling an item
type SellItemOutput struct {
	Trade    *market.TradeResult
	Warnings []string
}

// GetMapInput defines the input for reading the map
type GetMapInput struct {
	CharacterID string
}

// GetMapOutput defines the output for reading the map
type GetMapOutput struct {
	Tiles []world.TileView
}

// MoveToInput defines the input for travelling
type MoveToInput struct {
	CharacterID string
	TileID      string
}

// MoveToOutput defines the output for travelling. Aborted is set when an
// encounter was abandoned by leaving.
type MoveToOutput struct {
	Tile     *entities.MapTile
	Aborted  *combat.Outcome
	Warnings []string
}

// TakeStepInput defines the input for exploring
type TakeStepInput struct {
	CharacterID string
}

// TakeStepOutput defines the output for exploring. Encounter is set when
// the step started a fight.
type TakeStepOutput struct {
	Step      *world.StepResult
	Encounter *combat.Encounter
	Warnings  []string
}

// DismissAchievementInput defines the input for dismissing an unlock banner
type DismissAchievementInput struct {
	CharacterID string
}

// DismissAchievementOutput defines the output for dismissing an unlock banner
type DismissAchievementOutput struct{}

// ListLeaderboardInput defines the input for ranking characters
type ListLeaderboardInput struct {
	SortBy snapshot.Metric
	Limit  int
}

// ListLeaderboardOutput defines the output for ranking characters
type ListLeaderboardOutput struct {
	Entries []*snapshot.LeaderboardEntry
}

// GetStatisticsInput defines the input for reading play statistics
type GetStatisticsInput struct {
	CharacterID string
}

// GetStatisticsOutput defines the output for reading play statistics
type GetStatisticsOutput struct {
	Statistics *Statistics
}
