package v1alpha1_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/legends-of-revenue/internal/engine/combat"
	"github.com/KirkDiggler/legends-of-revenue/internal/engine/market"
	"github.com/KirkDiggler/legends-of-revenue/internal/entities"
	"github.com/KirkDiggler/legends-of-revenue/internal/errors"
	"github.com/KirkDiggler/legends-of-revenue/internal/handlers/game/v1alpha1"
	"github.com/KirkDiggler/legends-of-revenue/internal/orchestrators/game"
	gamemock "github.com/KirkDiggler/legends-of-revenue/internal/orchestrators/game/mock"
	"github.com/KirkDiggler/legends-of-revenue/internal/repositories/snapshot"
	"github.com/KirkDiggler/legends-of-revenue/internal/testutils"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockGameService *gamemock.MockService
	handler         *v1alpha1.Handler
	ctx             context.Context

	testCharacterID string
	expectedState   *game.CharacterState
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockGameService = gamemock.NewMockService(s.ctrl)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		GameService: s.mockGameService,
	})
	s.Require().NoError(err)
	s.handler = handler

	s.ctx = context.Background()
	s.testCharacterID = "char_1"
	s.expectedState = &game.CharacterState{
		Character: testutils.NewTestCharacter(s.testCharacterID),
	}
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) requireCode(err error, code codes.Code) {
	s.Require().Error(err)
	st, ok := status.FromError(err)
	s.Require().True(ok)
	s.Equal(code, st.Code())
}

func (s *HandlerTestSuite) TestNewHandler() {
	_, err := v1alpha1.NewHandler(nil)
	s.Error(err)

	_, err = v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestCreateCharacter() {
	s.Run("success", func() {
		s.mockGameService.EXPECT().
			CreateCharacter(s.ctx, &game.CreateCharacterInput{Name: testutils.TestCharacterName}).
			Return(&game.CreateCharacterOutput{
				Character: s.expectedState,
				Warnings:  []string{"save failed: redis down"},
			}, nil)

		resp, err := s.handler.CreateCharacter(s.ctx, &v1alpha1.CreateCharacterRequest{
			Name: testutils.TestCharacterName,
		})
		s.Require().NoError(err)
		s.Equal(s.expectedState, resp.Character)
		s.Equal([]string{"save failed: redis down"}, resp.Warnings)
	})

	s.Run("missing name", func() {
		_, err := s.handler.CreateCharacter(s.ctx, &v1alpha1.CreateCharacterRequest{})
		s.requireCode(err, codes.InvalidArgument)
	})

	s.Run("service validation error", func() {
		s.mockGameService.EXPECT().
			CreateCharacter(s.ctx, gomock.Any()).
			Return(nil, errors.InvalidArgument("name must be at least 3 characters"))

		_, err := s.handler.CreateCharacter(s.ctx, &v1alpha1.CreateCharacterRequest{Name: "Al"})
		s.requireCode(err, codes.InvalidArgument)
	})
}

func (s *HandlerTestSuite) TestCharacterIDRequired() {
	testCases := []struct {
		name string
		call func() error
	}{
		{name: "load", call: func() error {
			_, err := s.handler.LoadCharacter(s.ctx, &v1alpha1.LoadCharacterRequest{})
			return err
		}},
		{name: "get", call: func() error {
			_, err := s.handler.GetCharacter(s.ctx, &v1alpha1.GetCharacterRequest{})
			return err
		}},
		{name: "reset", call: func() error {
			_, err := s.handler.ResetCharacter(s.ctx, &v1alpha1.ResetCharacterRequest{})
			return err
		}},
		{name: "delete", call: func() error {
			_, err := s.handler.DeleteCharacter(s.ctx, &v1alpha1.DeleteCharacterRequest{})
			return err
		}},
		{name: "end session", call: func() error {
			_, err := s.handler.EndSession(s.ctx, &v1alpha1.EndSessionRequest{})
			return err
		}},
		{name: "basic attack", call: func() error {
			_, err := s.handler.BasicAttack(s.ctx, &v1alpha1.BasicAttackRequest{})
			return err
		}},
		{name: "flee", call: func() error {
			_, err := s.handler.Flee(s.ctx, &v1alpha1.FleeRequest{})
			return err
		}},
		{name: "take step", call: func() error {
			_, err := s.handler.TakeStep(s.ctx, &v1alpha1.TakeStepRequest{})
			return err
		}},
		{name: "statistics", call: func() error {
			_, err := s.handler.GetStatistics(s.ctx, &v1alpha1.GetStatisticsRequest{})
			return err
		}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.requireCode(tc.call(), codes.InvalidArgument)
		})
	}
}

func (s *HandlerTestSuite) TestSecondaryFieldsRequired() {
	_, err := s.handler.StartEncounter(s.ctx, &v1alpha1.StartEncounterRequest{CharacterId: s.testCharacterID})
	s.requireCode(err, codes.InvalidArgument)

	_, err = s.handler.SpecialAttack(s.ctx, &v1alpha1.SpecialAttackRequest{CharacterId: s.testCharacterID})
	s.requireCode(err, codes.InvalidArgument)

	_, err = s.handler.SubmitAnswer(s.ctx, &v1alpha1.SubmitAnswerRequest{
		CharacterId: s.testCharacterID,
		AnswerIndex: -1,
	})
	s.requireCode(err, codes.InvalidArgument)

	_, err = s.handler.EquipItem(s.ctx, &v1alpha1.EquipItemRequest{
		CharacterId: s.testCharacterID,
		ItemId:      "wooden-ruler",
	})
	s.requireCode(err, codes.InvalidArgument)

	_, err = s.handler.BuyItem(s.ctx, &v1alpha1.BuyItemRequest{CharacterId: s.testCharacterID})
	s.requireCode(err, codes.InvalidArgument)

	_, err = s.handler.MoveTo(s.ctx, &v1alpha1.MoveToRequest{CharacterId: s.testCharacterID})
	s.requireCode(err, codes.InvalidArgument)

	_, err = s.handler.ListLeaderboard(s.ctx, &v1alpha1.ListLeaderboardRequest{Limit: -1})
	s.requireCode(err, codes.InvalidArgument)
}

func (s *HandlerTestSuite) TestGetCharacterNotFound() {
	s.mockGameService.EXPECT().
		GetCharacter(s.ctx, &game.GetCharacterInput{CharacterID: "missing"}).
		Return(nil, errors.NotFound("character not found"))

	_, err := s.handler.GetCharacter(s.ctx, &v1alpha1.GetCharacterRequest{CharacterId: "missing"})
	s.requireCode(err, codes.NotFound)
}

func (s *HandlerTestSuite) TestBasicAttackOutsideCombat() {
	s.mockGameService.EXPECT().
		BasicAttack(s.ctx, &game.BasicAttackInput{CharacterID: s.testCharacterID}).
		Return(nil, errors.FailedPrecondition("no active encounter"))

	_, err := s.handler.BasicAttack(s.ctx, &v1alpha1.BasicAttackRequest{CharacterId: s.testCharacterID})
	s.requireCode(err, codes.FailedPrecondition)
}

func (s *HandlerTestSuite) TestSubmitAnswer() {
	turn := &combat.TurnResult{DamageDealt: 49, Outcome: &combat.Outcome{Result: combat.PhaseVictory}}
	s.mockGameService.EXPECT().
		SubmitAnswer(s.ctx, &game.SubmitAnswerInput{CharacterID: s.testCharacterID, AnswerIndex: 2}).
		Return(&game.SubmitAnswerOutput{Turn: turn, Character: s.expectedState}, nil)

	resp, err := s.handler.SubmitAnswer(s.ctx, &v1alpha1.SubmitAnswerRequest{
		CharacterId: s.testCharacterID,
		AnswerIndex: 2,
	})
	s.Require().NoError(err)
	s.Equal(turn, resp.Turn)
	s.Equal(s.expectedState, resp.Character)
	s.Empty(resp.Warnings)
}

func (s *HandlerTestSuite) TestEquipItemPassesSlot() {
	s.mockGameService.EXPECT().
		EquipItem(s.ctx, &game.EquipItemInput{
			CharacterID: s.testCharacterID,
			ItemID:      "wooden-ruler",
			Slot:        entities.SlotWeapon,
		}).
		Return(&game.EquipItemOutput{Equipped: true, Character: s.expectedState}, nil)

	resp, err := s.handler.EquipItem(s.ctx, &v1alpha1.EquipItemRequest{
		CharacterId: s.testCharacterID,
		ItemId:      "wooden-ruler",
		Slot:        "weapon",
	})
	s.Require().NoError(err)
	s.True(resp.Equipped)
}

func (s *HandlerTestSuite) TestBuyItem() {
	trade := &market.TradeResult{ItemID: "health-potion", OK: true, Gold: 0, Quantity: 3, Amount: 50}
	s.mockGameService.EXPECT().
		BuyItem(s.ctx, &game.BuyItemInput{CharacterID: s.testCharacterID, ItemID: "health-potion"}).
		Return(&game.BuyItemOutput{Trade: trade}, nil)

	resp, err := s.handler.BuyItem(s.ctx, &v1alpha1.BuyItemRequest{
		CharacterId: s.testCharacterID,
		ItemId:      "health-potion",
	})
	s.Require().NoError(err)
	s.Equal(trade, resp.Trade)
}

func (s *HandlerTestSuite) TestListLeaderboard() {
	entries := []*snapshot.LeaderboardEntry{{Rank: 1, CharacterID: "char_2", Name: "Omar", Gold: 120}}
	s.mockGameService.EXPECT().
		ListLeaderboard(s.ctx, &game.ListLeaderboardInput{SortBy: snapshot.MetricGold, Limit: 5}).
		Return(&game.ListLeaderboardOutput{Entries: entries}, nil)

	resp, err := s.handler.ListLeaderboard(s.ctx, &v1alpha1.ListLeaderboardRequest{SortBy: "gold", Limit: 5})
	s.Require().NoError(err)
	s.Equal(entries, resp.Entries)
}

func (s *HandlerTestSuite) TestDeleteCharacterUnavailable() {
	s.mockGameService.EXPECT().
		DeleteCharacter(s.ctx, &game.DeleteCharacterInput{CharacterID: s.testCharacterID}).
		Return(nil, errors.Unavailable("redis down"))

	_, err := s.handler.DeleteCharacter(s.ctx, &v1alpha1.DeleteCharacterRequest{CharacterId: s.testCharacterID})
	s.requireCode(err, codes.Unavailable)
}
