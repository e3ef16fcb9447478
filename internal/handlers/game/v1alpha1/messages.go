package v1alpha1

import (
	"github.com/KirkDiggler/legends-of-revenue/internal/engine/combat"
	"github.com/KirkDiggler/legends-of-revenue/internal/engine/market"
	"github.com/KirkDiggler/legends-of-revenue/internal/engine/world"
	"github.com/KirkDiggler/legends-of-revenue/internal/entities"
	"github.com/KirkDiggler/legends-of-revenue/internal/orchestrators/game"
	"github.com/KirkDiggler/legends-of-revenue/internal/repositories/snapshot"
)

// Character lifecycle

type CreateCharacterRequest struct {
	Name string `json:"name"`
}

type CreateCharacterResponse struct {
	Character *game.CharacterState `json:"character"`
	Warnings  []string             `json:"warnings,omitempty"`
}

type LoadCharacterRequest struct {
	CharacterId string `json:"character_id"`
}

type LoadCharacterResponse struct {
	Character *game.CharacterState `json:"character"`
}

type GetCharacterRequest struct {
	CharacterId string `json:"character_id"`
}

type GetCharacterResponse struct {
	Character *game.CharacterState `json:"character"`
}

type ResetCharacterRequest struct {
	CharacterId string `json:"character_id"`
}

type ResetCharacterResponse struct {
	Character *game.CharacterState `json:"character"`
	Warnings  []string             `json:"warnings,omitempty"`
}

type DeleteCharacterRequest struct {
	CharacterId string `json:"character_id"`
}

type DeleteCharacterResponse struct{}

type EndSessionRequest struct {
	CharacterId string `json:"character_id"`
}

type EndSessionResponse struct {
	Record   entities.Record `json:"record"`
	Warnings []string        `json:"warnings,omitempty"`
}

// Combat

type StartEncounterRequest struct {
	CharacterId string `json:"character_id"`
	EnemyId     string `json:"enemy_id"`
}

type StartEncounterResponse struct {
	Encounter *combat.Encounter `json:"encounter"`
}

type GetEncounterRequest struct {
	CharacterId string `json:"character_id"`
}

type GetEncounterResponse struct {
	Encounter *combat.Encounter `json:"encounter,omitempty"`
}

type ListAttacksRequest struct {
	CharacterId string `json:"character_id"`
}

type ListAttacksResponse struct {
	Attacks []combat.Attack `json:"attacks"`
}

type BasicAttackRequest struct {
	CharacterId string `json:"character_id"`
}

type BasicAttackResponse struct {
	Turn      *combat.TurnResult   `json:"turn"`
	Character *game.CharacterState `json:"character"`
	Warnings  []string             `json:"warnings,omitempty"`
}

type SpecialAttackRequest struct {
	CharacterId string `json:"character_id"`
	AttackId    string `json:"attack_id"`
}

type SpecialAttackResponse struct {
	Turn *combat.TurnResult `json:"turn"`
}

type SubmitAnswerRequest struct {
	CharacterId string `json:"character_id"`
	AnswerIndex int    `json:"answer_index"`
}

type SubmitAnswerResponse struct {
	Turn      *combat.TurnResult   `json:"turn"`
	Character *game.CharacterState `json:"character"`
	Warnings  []string             `json:"warnings,omitempty"`
}

type FleeRequest struct {
	CharacterId string `json:"character_id"`
}

type FleeResponse struct {
	Turn      *combat.TurnResult   `json:"turn"`
	Character *game.CharacterState `json:"character"`
	Warnings  []string             `json:"warnings,omitempty"`
}

// Items and market

type UseItemRequest struct {
	CharacterId string `json:"character_id"`
	ItemId      string `json:"item_id"`
}

type UseItemResponse struct {
	Used      bool                 `json:"used"`
	Amount    int                  `json:"amount"`
	Turn      *combat.TurnResult   `json:"turn,omitempty"`
	Character *game.CharacterState `json:"character"`
	Warnings  []string             `json:"warnings,omitempty"`
}

type EquipItemRequest struct {
	CharacterId string `json:"character_id"`
	ItemId      string `json:"item_id"`
	Slot        string `json:"slot"`
}

type EquipItemResponse struct {
	Equipped  bool                 `json:"equipped"`
	Character *game.CharacterState `json:"character"`
	Warnings  []string             `json:"warnings,omitempty"`
}

type UnequipItemRequest struct {
	CharacterId string `json:"character_id"`
	Slot        string `json:"slot"`
}

type UnequipItemResponse struct {
	Character *game.CharacterState `json:"character"`
	Warnings  []string             `json:"warnings,omitempty"`
}

type ListMarketRequest struct {
	CharacterId string `json:"character_id"`
}

type ListMarketResponse struct {
	Listings []market.Listing `json:"listings"`
	Gold     int              `json:"gold"`
}

type BuyItemRequest struct {
	CharacterId string `json:"character_id"`
	ItemId      string `json:"item_id"`
}

type BuyItemResponse struct {
	Trade    *market.TradeResult `json:"trade"`
	Warnings []string            `json:"warnings,omitempty"`
}

type SellItemRequest struct {
	CharacterId string `json:"character_id"`
	ItemId      string `json:"item_id"`
}

type SellItemResponse struct {
	Trade    *market.TradeResult `json:"trade"`
	Warnings []string            `json:"warnings,omitempty"`
}

// World

type GetMapRequest struct {
	CharacterId string `json:"character_id"`
}

type GetMapResponse struct {
	Tiles []world.TileView `json:"tiles"`
}

type MoveToRequest struct {
	CharacterId string `json:"character_id"`
	TileId      string `json:"tile_id"`
}

type MoveToResponse struct {
	Tile     *entities.MapTile `json:"tile"`
	Aborted  *combat.Outcome   `json:"aborted,omitempty"`
	Warnings []string          `json:"warnings,omitempty"`
}

type TakeStepRequest struct {
	CharacterId string `json:"character_id"`
}

type TakeStepResponse struct {
	Step      *world.StepResult `json:"step"`
	Encounter *combat.Encounter `json:"encounter,omitempty"`
	Warnings  []string          `json:"warnings,omitempty"`
}

// Achievements and rankings

type DismissAchievementRequest struct {
	CharacterId string `json:"character_id"`
}

type DismissAchievementResponse struct{}

type ListLeaderboardRequest struct {
	SortBy string `json:"sort_by"`
	Limit  int32  `json:"limit"`
}

type ListLeaderboardResponse struct {
	Entries []*snapshot.LeaderboardEntry `json:"entries"`
}

type GetStatisticsRequest struct {
	CharacterId string `json:"character_id"`
}

type GetStatisticsResponse struct {
	Statistics *game.Statistics `json:"statistics"`
}
