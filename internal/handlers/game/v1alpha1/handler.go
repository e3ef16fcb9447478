// Package v1alpha1 handles the game gRPC service interface
package v1alpha1

import (
	"context"

	"github.com/KirkDiggler/legends-of-revenue/internal/entities"
	"github.com/KirkDiggler/legends-of-revenue/internal/errors"
	"github.com/KirkDiggler/legends-of-revenue/internal/orchestrators/game"
	"github.com/KirkDiggler/legends-of-revenue/internal/repositories/snapshot"
)

// HandlerConfig holds dependencies for the game handler
type HandlerConfig struct {
	GameService game.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.GameService == nil {
		return errors.InvalidArgument("game service is required")
	}
	return nil
}

// Handler implements the game gRPC service
type Handler struct {
	UnimplementedGameServiceServer
	gameService game.Service
}

var _ GameServiceServer = (*Handler)(nil)

// NewHandler creates a new game handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		gameService: cfg.GameService,
	}, nil
}

func requireCharacterID(id string) error {
	if id == "" {
		return errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}
	return nil
}

// CreateCharacter starts a new character and opens its session
func (h *Handler) CreateCharacter(
	ctx context.Context,
	req *CreateCharacterRequest,
) (*CreateCharacterResponse, error) {
	if req.Name == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("name is required"))
	}

	output, err := h.gameService.CreateCharacter(ctx, &game.CreateCharacterInput{
		Name: req.Name,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &CreateCharacterResponse{
		Character: output.Character,
		Warnings:  output.Warnings,
	}, nil
}

// LoadCharacter reopens a stored character
func (h *Handler) LoadCharacter(
	ctx context.Context,
	req *LoadCharacterRequest,
) (*LoadCharacterResponse, error) {
	if err := requireCharacterID(req.CharacterId); err != nil {
		return nil, err
	}

	output, err := h.gameService.LoadCharacter(ctx, &game.LoadCharacterInput{
		CharacterID: req.CharacterId,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &LoadCharacterResponse{Character: output.Character}, nil
}

// GetCharacter returns the character's current state
func (h *Handler) GetCharacter(
	ctx context.Context,
	req *GetCharacterRequest,
) (*GetCharacterResponse, error) {
	if err := requireCharacterID(req.CharacterId); err != nil {
		return nil, err
	}

	output, err := h.gameService.GetCharacter(ctx, &game.GetCharacterInput{
		CharacterID: req.CharacterId,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetCharacterResponse{Character: output.Character}, nil
}

// ResetCharacter returns the character to starting values
func (h *Handler) ResetCharacter(
	ctx context.Context,
	req *ResetCharacterRequest,
) (*ResetCharacterResponse, error) {
	if err := requireCharacterID(req.CharacterId); err != nil {
		return nil, err
	}

	output, err := h.gameService.ResetCharacter(ctx, &game.ResetCharacterInput{
		CharacterID: req.CharacterId,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ResetCharacterResponse{
		Character: output.Character,
		Warnings:  output.Warnings,
	}, nil
}

// DeleteCharacter removes the character and its saved state
func (h *Handler) DeleteCharacter(
	ctx context.Context,
	req *DeleteCharacterRequest,
) (*DeleteCharacterResponse, error) {
	if err := requireCharacterID(req.CharacterId); err != nil {
		return nil, err
	}

	if _, err := h.gameService.DeleteCharacter(ctx, &game.DeleteCharacterInput{
		CharacterID: req.CharacterId,
	}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &DeleteCharacterResponse{}, nil
}

// EndSession records the finished game
func (h *Handler) EndSession(
	ctx context.Context,
	req *EndSessionRequest,
) (*EndSessionResponse, error) {
	if err := requireCharacterID(req.CharacterId); err != nil {
		return nil, err
	}

	output, err := h.gameService.EndSession(ctx, &game.EndSessionInput{
		CharacterID: req.CharacterId,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &EndSessionResponse{
		Record:   output.Record,
		Warnings: output.Warnings,
	}, nil
}

// StartEncounter begins a fight with the given enemy
func (h *Handler) StartEncounter(
	ctx context.Context,
	req *StartEncounterRequest,
) (*StartEncounterResponse, error) {
	if err := requireCharacterID(req.CharacterId); err != nil {
		return nil, err
	}
	if req.EnemyId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("enemy_id is required"))
	}

	output, err := h.gameService.StartEncounter(ctx, &game.StartEncounterInput{
		CharacterID: req.CharacterId,
		EnemyID:     req.EnemyId,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &StartEncounterResponse{Encounter: output.Encounter}, nil
}

// GetEncounter returns the active encounter, if any
func (h *Handler) GetEncounter(
	ctx context.Context,
	req *GetEncounterRequest,
) (*GetEncounterResponse, error) {
	if err := requireCharacterID(req.CharacterId); err != nil {
		return nil, err
	}

	output, err := h.gameService.GetEncounter(ctx, &game.GetEncounterInput{
		CharacterID: req.CharacterId,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetEncounterResponse{Encounter: output.Encounter}, nil
}

// ListAttacks returns the basic attack and every special attack with its lock state
func (h *Handler) ListAttacks(
	ctx context.Context,
	req *ListAttacksRequest,
) (*ListAttacksResponse, error) {
	if err := requireCharacterID(req.CharacterId); err != nil {
		return nil, err
	}

	output, err := h.gameService.ListAttacks(ctx, &game.ListAttacksInput{
		CharacterID: req.CharacterId,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ListAttacksResponse{Attacks: output.Attacks}, nil
}

// BasicAttack resolves one exchange of blows
func (h *Handler) BasicAttack(
	ctx context.Context,
	req *BasicAttackRequest,
) (*BasicAttackResponse, error) {
	if err := requireCharacterID(req.CharacterId); err != nil {
		return nil, err
	}

	output, err := h.gameService.BasicAttack(ctx, &game.BasicAttackInput{
		CharacterID: req.CharacterId,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &BasicAttackResponse{
		Turn:      output.Turn,
		Character: output.Character,
		Warnings:  output.Warnings,
	}, nil
}

// SpecialAttack selects a special attack and presents its question
func (h *Handler) SpecialAttack(
	ctx context.Context,
	req *SpecialAttackRequest,
) (*SpecialAttackResponse, error) {
	if err := requireCharacterID(req.CharacterId); err != nil {
		return nil, err
	}
	if req.AttackId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("attack_id is required"))
	}

	output, err := h.gameService.SpecialAttack(ctx, &game.SpecialAttackInput{
		CharacterID: req.CharacterId,
		AttackID:    req.AttackId,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &SpecialAttackResponse{Turn: output.Turn}, nil
}

// SubmitAnswer answers the pending question
func (h *Handler) SubmitAnswer(
	ctx context.Context,
	req *SubmitAnswerRequest,
) (*SubmitAnswerResponse, error) {
	if err := requireCharacterID(req.CharacterId); err != nil {
		return nil, err
	}
	if req.AnswerIndex < 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("answer_index cannot be negative"))
	}

	output, err := h.gameService.SubmitAnswer(ctx, &game.SubmitAnswerInput{
		CharacterID: req.CharacterId,
		AnswerIndex: req.AnswerIndex,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &SubmitAnswerResponse{
		Turn:      output.Turn,
		Character: output.Character,
		Warnings:  output.Warnings,
	}, nil
}

// Flee attempts to escape the encounter
func (h *Handler) Flee(
	ctx context.Context,
	req *FleeRequest,
) (*FleeResponse, error) {
	if err := requireCharacterID(req.CharacterId); err != nil {
		return nil, err
	}

	output, err := h.gameService.Flee(ctx, &game.FleeInput{
		CharacterID: req.CharacterId,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &FleeResponse{
		Turn:      output.Turn,
		Character: output.Character,
		Warnings:  output.Warnings,
	}, nil
}

// UseItem consumes one item from the inventory
func (h *Handler) UseItem(
	ctx context.Context,
	req *UseItemRequest,
) (*UseItemResponse, error) {
	if err := requireCharacterID(req.CharacterId); err != nil {
		return nil, err
	}
	if req.ItemId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("item_id is required"))
	}

	output, err := h.gameService.UseItem(ctx, &game.UseItemInput{
		CharacterID: req.CharacterId,
		ItemID:      req.ItemId,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &UseItemResponse{
		Used:      output.Used,
		Amount:    output.Amount,
		Turn:      output.Turn,
		Character: output.Character,
		Warnings:  output.Warnings,
	}, nil
}

// EquipItem places an owned item into a slot
func (h *Handler) EquipItem(
	ctx context.Context,
	req *EquipItemRequest,
) (*EquipItemResponse, error) {
	if err := requireCharacterID(req.CharacterId); err != nil {
		return nil, err
	}
	if req.ItemId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("item_id is required"))
	}
	if req.Slot == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("slot is required"))
	}

	output, err := h.gameService.EquipItem(ctx, &game.EquipItemInput{
		CharacterID: req.CharacterId,
		ItemID:      req.ItemId,
		Slot:        entities.EquipSlot(req.Slot),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &EquipItemResponse{
		Equipped:  output.Equipped,
		Character: output.Character,
		Warnings:  output.Warnings,
	}, nil
}

// UnequipItem empties a slot
func (h *Handler) UnequipItem(
	ctx context.Context,
	req *UnequipItemRequest,
) (*UnequipItemResponse, error) {
	if err := requireCharacterID(req.CharacterId); err != nil {
		return nil, err
	}
	if req.Slot == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("slot is required"))
	}

	output, err := h.gameService.UnequipItem(ctx, &game.UnequipItemInput{
		CharacterID: req.CharacterId,
		Slot:        entities.EquipSlot(req.Slot),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &UnequipItemResponse{
		Character: output.Character,
		Warnings:  output.Warnings,
	}, nil
}

// ListMarket returns the shop listings priced for the character
func (h *Handler) ListMarket(
	ctx context.Context,
	req *ListMarketRequest,
) (*ListMarketResponse, error) {
	if err := requireCharacterID(req.CharacterId); err != nil {
		return nil, err
	}

	output, err := h.gameService.ListMarket(ctx, &game.ListMarketInput{
		CharacterID: req.CharacterId,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ListMarketResponse{
		Listings: output.Listings,
		Gold:     output.Gold,
	}, nil
}

// BuyItem purchases one item
func (h *Handler) BuyItem(
	ctx context.Context,
	req *BuyItemRequest,
) (*BuyItemResponse, error) {
	if err := requireCharacterID(req.CharacterId); err != nil {
		return nil, err
	}
	if req.ItemId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("item_id is required"))
	}

	output, err := h.gameService.BuyItem(ctx, &game.BuyItemInput{
		CharacterID: req.CharacterId,
		ItemID:      req.ItemId,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &BuyItemResponse{
		Trade:    output.Trade,
		Warnings: output.Warnings,
	}, nil
}

// SellItem sells one item back to the shop
func (h *Handler) SellItem(
	ctx context.Context,
	req *SellItemRequest,
) (*SellItemResponse, error) {
	if err := requireCharacterID(req.CharacterId); err != nil {
		return nil, err
	}
	if req.ItemId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("item_id is required"))
	}

	output, err := h.gameService.SellItem(ctx, &game.SellItemInput{
		CharacterID: req.CharacterId,
		ItemID:      req.ItemId,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &SellItemResponse{
		Trade:    output.Trade,
		Warnings: output.Warnings,
	}, nil
}

// GetMap returns every tile with the character's progress on it
func (h *Handler) GetMap(
	ctx context.Context,
	req *GetMapRequest,
) (*GetMapResponse, error) {
	if err := requireCharacterID(req.CharacterId); err != nil {
		return nil, err
	}

	output, err := h.gameService.GetMap(ctx, &game.GetMapInput{
		CharacterID: req.CharacterId,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetMapResponse{Tiles: output.Tiles}, nil
}

// MoveTo travels to an unlocked tile
func (h *Handler) MoveTo(
	ctx context.Context,
	req *MoveToRequest,
) (*MoveToResponse, error) {
	if err := requireCharacterID(req.CharacterId); err != nil {
		return nil, err
	}
	if req.TileId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("tile_id is required"))
	}

	output, err := h.gameService.MoveTo(ctx, &game.MoveToInput{
		CharacterID: req.CharacterId,
		TileID:      req.TileId,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &MoveToResponse{
		Tile:     output.Tile,
		Aborted:  output.Aborted,
		Warnings: output.Warnings,
	}, nil
}

// TakeStep explores the current tile
func (h *Handler) TakeStep(
	ctx context.Context,
	req *TakeStepRequest,
) (*TakeStepResponse, error) {
	if err := requireCharacterID(req.CharacterId); err != nil {
		return nil, err
	}

	output, err := h.gameService.TakeStep(ctx, &game.TakeStepInput{
		CharacterID: req.CharacterId,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &TakeStepResponse{
		Step:      output.Step,
		Encounter: output.Encounter,
		Warnings:  output.Warnings,
	}, nil
}

// DismissAchievement clears the unlock banner
func (h *Handler) DismissAchievement(
	ctx context.Context,
	req *DismissAchievementRequest,
) (*DismissAchievementResponse, error) {
	if err := requireCharacterID(req.CharacterId); err != nil {
		return nil, err
	}

	if _, err := h.gameService.DismissAchievement(ctx, &game.DismissAchievementInput{
		CharacterID: req.CharacterId,
	}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &DismissAchievementResponse{}, nil
}

// ListLeaderboard ranks stored characters by a metric
func (h *Handler) ListLeaderboard(
	ctx context.Context,
	req *ListLeaderboardRequest,
) (*ListLeaderboardResponse, error) {
	if req.Limit < 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("limit cannot be negative"))
	}

	output, err := h.gameService.ListLeaderboard(ctx, &game.ListLeaderboardInput{
		SortBy: snapshot.Metric(req.SortBy),
		Limit:  int(req.Limit),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ListLeaderboardResponse{Entries: output.Entries}, nil
}

// GetStatistics summarizes the character's play
func (h *Handler) GetStatistics(
	ctx context.Context,
	req *GetStatisticsRequest,
) (*GetStatisticsResponse, error) {
	if err := requireCharacterID(req.CharacterId); err != nil {
		return nil, err
	}

	output, err := h.gameService.GetStatistics(ctx, &game.GetStatisticsInput{
		CharacterID: req.CharacterId,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetStatisticsResponse{Statistics: output.Statistics}, nil
}
