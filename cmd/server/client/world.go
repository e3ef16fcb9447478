package client

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/legends-of-revenue/internal/handlers/game/v1alpha1"
)

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Show the map with exploration progress",
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := requireCharacter(); err != nil {
			return err
		}
		return call(func(ctx context.Context, c v1alpha1.GameServiceClient) (*v1alpha1.GetMapResponse, error) {
			return c.GetMap(ctx, &v1alpha1.GetMapRequest{CharacterId: characterID})
		})
	},
}

var moveCmd = &cobra.Command{
	Use:   "move [tile-id]",
	Short: "Travel to an unlocked tile",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		if err := requireCharacter(); err != nil {
			return err
		}
		return call(func(ctx context.Context, c v1alpha1.GameServiceClient) (*v1alpha1.MoveToResponse, error) {
			return c.MoveTo(ctx, &v1alpha1.MoveToRequest{CharacterId: characterID, TileId: args[0]})
		})
	},
}

var stepCmd = &cobra.Command{
	Use:   "step",
	Short: "Explore the current tile",
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := requireCharacter(); err != nil {
			return err
		}
		return call(func(ctx context.Context, c v1alpha1.GameServiceClient) (*v1alpha1.TakeStepResponse, error) {
			return c.TakeStep(ctx, &v1alpha1.TakeStepRequest{CharacterId: characterID})
		})
	},
}
