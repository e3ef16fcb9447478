package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/legends-of-revenue/internal/handlers/game/v1alpha1"
)

var (
	leaderboardSort  string
	leaderboardLimit int32
)

var createCharacterCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new character",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return call(func(ctx context.Context, c v1alpha1.GameServiceClient) (*v1alpha1.CreateCharacterResponse, error) {
			resp, err := c.CreateCharacter(ctx, &v1alpha1.CreateCharacterRequest{Name: args[0]})
			if err != nil {
				return nil, fmt.Errorf("failed to create character: %w", err)
			}
			return resp, nil
		})
	},
}

var loadCharacterCmd = &cobra.Command{
	Use:   "load",
	Short: "Reopen a stored character",
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := requireCharacter(); err != nil {
			return err
		}
		return call(func(ctx context.Context, c v1alpha1.GameServiceClient) (*v1alpha1.LoadCharacterResponse, error) {
			return c.LoadCharacter(ctx, &v1alpha1.LoadCharacterRequest{CharacterId: characterID})
		})
	},
}

var getCharacterCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the character",
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := requireCharacter(); err != nil {
			return err
		}
		return call(func(ctx context.Context, c v1alpha1.GameServiceClient) (*v1alpha1.GetCharacterResponse, error) {
			return c.GetCharacter(ctx, &v1alpha1.GetCharacterRequest{CharacterId: characterID})
		})
	},
}

var resetCharacterCmd = &cobra.Command{
	Use:   "reset",
	Short: "Return the character to starting values",
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := requireCharacter(); err != nil {
			return err
		}
		return call(func(ctx context.Context, c v1alpha1.GameServiceClient) (*v1alpha1.ResetCharacterResponse, error) {
			return c.ResetCharacter(ctx, &v1alpha1.ResetCharacterRequest{CharacterId: characterID})
		})
	},
}

var deleteCharacterCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the character and its save",
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := requireCharacter(); err != nil {
			return err
		}
		return call(func(ctx context.Context, c v1alpha1.GameServiceClient) (*v1alpha1.DeleteCharacterResponse, error) {
			return c.DeleteCharacter(ctx, &v1alpha1.DeleteCharacterRequest{CharacterId: characterID})
		})
	},
}

var endSessionCmd = &cobra.Command{
	Use:   "end",
	Short: "Finish the game and record it",
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := requireCharacter(); err != nil {
			return err
		}
		return call(func(ctx context.Context, c v1alpha1.GameServiceClient) (*v1alpha1.EndSessionResponse, error) {
			return c.EndSession(ctx, &v1alpha1.EndSessionRequest{CharacterId: characterID})
		})
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show play statistics",
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := requireCharacter(); err != nil {
			return err
		}
		return call(func(ctx context.Context, c v1alpha1.GameServiceClient) (*v1alpha1.GetStatisticsResponse, error) {
			return c.GetStatistics(ctx, &v1alpha1.GetStatisticsRequest{CharacterId: characterID})
		})
	},
}

var dismissCmd = &cobra.Command{
	Use:   "dismiss",
	Short: "Dismiss the achievement banner",
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := requireCharacter(); err != nil {
			return err
		}
		return call(func(ctx context.Context, c v1alpha1.GameServiceClient) (*v1alpha1.DismissAchievementResponse, error) {
			return c.DismissAchievement(ctx, &v1alpha1.DismissAchievementRequest{CharacterId: characterID})
		})
	},
}

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Rank stored characters",
	Long:  `Rank stored characters by gold, level, score, games or kills.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		return call(func(ctx context.Context, c v1alpha1.GameServiceClient) (*v1alpha1.ListLeaderboardResponse, error) {
			return c.ListLeaderboard(ctx, &v1alpha1.ListLeaderboardRequest{
				SortBy: leaderboardSort,
				Limit:  leaderboardLimit,
			})
		})
	},
}

func init() {
	leaderboardCmd.Flags().StringVar(&leaderboardSort, "sort-by", "score", "Metric to rank by")
	leaderboardCmd.Flags().Int32Var(&leaderboardLimit, "limit", 10, "Number of entries")
}
