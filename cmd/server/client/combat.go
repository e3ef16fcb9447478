package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/legends-of-revenue/internal/handlers/game/v1alpha1"
)

var fightCmd = &cobra.Command{
	Use:   "fight [enemy-id]",
	Short: "Start an encounter with an enemy",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		if err := requireCharacter(); err != nil {
			return err
		}
		return call(func(ctx context.Context, c v1alpha1.GameServiceClient) (*v1alpha1.StartEncounterResponse, error) {
			return c.StartEncounter(ctx, &v1alpha1.StartEncounterRequest{
				CharacterId: characterID,
				EnemyId:     args[0],
			})
		})
	},
}

var encounterCmd = &cobra.Command{
	Use:   "encounter",
	Short: "Show the active encounter",
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := requireCharacter(); err != nil {
			return err
		}
		return call(func(ctx context.Context, c v1alpha1.GameServiceClient) (*v1alpha1.GetEncounterResponse, error) {
			return c.GetEncounter(ctx, &v1alpha1.GetEncounterRequest{CharacterId: characterID})
		})
	},
}

var attacksCmd = &cobra.Command{
	Use:   "attacks",
	Short: "List attack options",
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := requireCharacter(); err != nil {
			return err
		}
		return call(func(ctx context.Context, c v1alpha1.GameServiceClient) (*v1alpha1.ListAttacksResponse, error) {
			return c.ListAttacks(ctx, &v1alpha1.ListAttacksRequest{CharacterId: characterID})
		})
	},
}

var attackCmd = &cobra.Command{
	Use:   "attack",
	Short: "Make a basic attack",
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := requireCharacter(); err != nil {
			return err
		}
		return call(func(ctx context.Context, c v1alpha1.GameServiceClient) (*v1alpha1.BasicAttackResponse, error) {
			return c.BasicAttack(ctx, &v1alpha1.BasicAttackRequest{CharacterId: characterID})
		})
	},
}

var specialCmd = &cobra.Command{
	Use:   "special [attack-id]",
	Short: "Choose a special attack and receive its question",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		if err := requireCharacter(); err != nil {
			return err
		}
		return call(func(ctx context.Context, c v1alpha1.GameServiceClient) (*v1alpha1.SpecialAttackResponse, error) {
			return c.SpecialAttack(ctx, &v1alpha1.SpecialAttackRequest{
				CharacterId: characterID,
				AttackId:    args[0],
			})
		})
	},
}

var answerCmd = &cobra.Command{
	Use:   "answer [index]",
	Short: "Answer the pending question by option index",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		if err := requireCharacter(); err != nil {
			return err
		}
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid answer index %q: %w", args[0], err)
		}
		return call(func(ctx context.Context, c v1alpha1.GameServiceClient) (*v1alpha1.SubmitAnswerResponse, error) {
			return c.SubmitAnswer(ctx, &v1alpha1.SubmitAnswerRequest{
				CharacterId: characterID,
				AnswerIndex: index,
			})
		})
	},
}

var fleeCmd = &cobra.Command{
	Use:   "flee",
	Short: "Try to escape the encounter",
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := requireCharacter(); err != nil {
			return err
		}
		return call(func(ctx context.Context, c v1alpha1.GameServiceClient) (*v1alpha1.FleeResponse, error) {
			return c.Flee(ctx, &v1alpha1.FleeRequest{CharacterId: characterID})
		})
	},
}
