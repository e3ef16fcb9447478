package client

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/legends-of-revenue/internal/handlers/game/v1alpha1"
)

var useCmd = &cobra.Command{
	Use:   "use [item-id]",
	Short: "Use a consumable",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		if err := requireCharacter(); err != nil {
			return err
		}
		return call(func(ctx context.Context, c v1alpha1.GameServiceClient) (*v1alpha1.UseItemResponse, error) {
			return c.UseItem(ctx, &v1alpha1.UseItemRequest{CharacterId: characterID, ItemId: args[0]})
		})
	},
}

var equipCmd = &cobra.Command{
	Use:   "equip [item-id] [slot]",
	Short: "Equip an owned item into weapon, armor or accessory",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		if err := requireCharacter(); err != nil {
			return err
		}
		return call(func(ctx context.Context, c v1alpha1.GameServiceClient) (*v1alpha1.EquipItemResponse, error) {
			return c.EquipItem(ctx, &v1alpha1.EquipItemRequest{
				CharacterId: characterID,
				ItemId:      args[0],
				Slot:        args[1],
			})
		})
	},
}

var unequipCmd = &cobra.Command{
	Use:   "unequip [slot]",
	Short: "Empty an equipment slot",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		if err := requireCharacter(); err != nil {
			return err
		}
		return call(func(ctx context.Context, c v1alpha1.GameServiceClient) (*v1alpha1.UnequipItemResponse, error) {
			return c.UnequipItem(ctx, &v1alpha1.UnequipItemRequest{CharacterId: characterID, Slot: args[0]})
		})
	},
}

var marketCmd = &cobra.Command{
	Use:   "market",
	Short: "List the shop",
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := requireCharacter(); err != nil {
			return err
		}
		return call(func(ctx context.Context, c v1alpha1.GameServiceClient) (*v1alpha1.ListMarketResponse, error) {
			return c.ListMarket(ctx, &v1alpha1.ListMarketRequest{CharacterId: characterID})
		})
	},
}

var buyCmd = &cobra.Command{
	Use:   "buy [item-id]",
	Short: "Buy one item",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		if err := requireCharacter(); err != nil {
			return err
		}
		return call(func(ctx context.Context, c v1alpha1.GameServiceClient) (*v1alpha1.BuyItemResponse, error) {
			return c.BuyItem(ctx, &v1alpha1.BuyItemRequest{CharacterId: characterID, ItemId: args[0]})
		})
	},
}

var sellCmd = &cobra.Command{
	Use:   "sell [item-id]",
	Short: "Sell one item back to the shop",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		if err := requireCharacter(); err != nil {
			return err
		}
		return call(func(ctx context.Context, c v1alpha1.GameServiceClient) (*v1alpha1.SellItemResponse, error) {
			return c.SellItem(ctx, &v1alpha1.SellItemRequest{CharacterId: characterID, ItemId: args[0]})
		})
	},
}
