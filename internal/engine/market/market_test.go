package market_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/legends-of-revenue/internal/content"
	"github.com/KirkDiggler/legends-of-revenue/internal/engine/inventory"
	"github.com/KirkDiggler/legends-of-revenue/internal/engine/market"
	"github.com/KirkDiggler/legends-of-revenue/internal/engine/progression"
	"github.com/KirkDiggler/legends-of-revenue/internal/entities"
	"github.com/KirkDiggler/legends-of-revenue/internal/errors"
	"github.com/KirkDiggler/legends-of-revenue/internal/testutils"
)

type MarketTestSuite struct {
	suite.Suite
	ctx       context.Context
	catalog   *content.Catalog
	character *entities.Character
	inventory inventory.Manager
	market    market.Market
}

func TestMarketTestSuite(t *testing.T) {
	suite.Run(t, new(MarketTestSuite))
}

func (s *MarketTestSuite) SetupSuite() {
	s.catalog = testutils.LoadCatalog(s.T())
}

func (s *MarketTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.character = testutils.NewTestCharacter("char_1")

	ledger, err := progression.New(&progression.Config{Character: s.character})
	s.Require().NoError(err)

	s.inventory, err = inventory.New(&inventory.Config{
		Character: s.character,
		Catalog:   s.catalog,
		Ledger:    ledger,
	})
	s.Require().NoError(err)

	s.market, err = market.New(&market.Config{
		Catalog:   s.catalog,
		Ledger:    ledger,
		Inventory: s.inventory,
	})
	s.Require().NoError(err)
}

func (s *MarketTestSuite) item(id string) *entities.ItemDefinition {
	item, ok := s.catalog.Item(id)
	s.Require().True(ok, id)
	return item
}

func (s *MarketTestSuite) TestPrice() {
	testCases := []struct {
		id       string
		price    int
		sellBack int
	}{
		{id: "health-potion", price: 50, sellBack: 25},
		{id: "wooden-ruler", price: 90, sellBack: 45},
		{id: "steel-ledger-blade", price: 200, sellBack: 100},
		{id: "auditors-rapier", price: 411, sellBack: 205},
		{id: "plate-armor", price: 1200, sellBack: 600},
		{id: "lucky-receipt", price: 250, sellBack: 125},
	}

	for _, tc := range testCases {
		s.Run(tc.id, func() {
			item := s.item(tc.id)
			s.Equal(tc.price, market.Price(item))
			s.Equal(tc.sellBack, market.SellPrice(item))
		})
	}

	s.Equal(0, market.Price(nil))
}

func (s *MarketTestSuite) TestPriceWithoutStats() {
	item := &entities.ItemDefinition{
		ID:       "audit-scroll",
		Category: entities.CategoryConsumable,
		Rarity:   entities.RarityEpic,
	}

	s.NotPanics(func() {
		s.Equal(500, market.Price(item))
		s.Equal(250, market.SellPrice(item))
	})
}

func (s *MarketTestSuite) TestBuy() {
	res, err := s.market.Buy(s.ctx, "health-potion")
	s.Require().NoError(err)

	s.True(res.OK)
	s.Equal(0, res.Gold)
	s.Equal(entities.StarterItemAmount+1, res.Quantity)
}

func (s *MarketTestSuite) TestBuyInsufficientGold() {
	res, err := s.market.Buy(s.ctx, "chain-mail")
	s.Require().NoError(err)

	s.False(res.OK)
	s.Equal(entities.StartingGold, res.Gold)
	s.Equal(0, res.Quantity)
}

func (s *MarketTestSuite) TestBuyNotForSale() {
	s.character.Stats.Gold = 5000

	_, err := s.market.Buy(s.ctx, "plate-armor")
	s.True(errors.IsNotFound(err))

	_, err = s.market.Buy(s.ctx, "golden-ledger")
	s.True(errors.IsNotFound(err))
	s.Equal(5000, s.character.Stats.Gold)
}

func (s *MarketTestSuite) TestSell() {
	res, err := s.market.Sell(s.ctx, "health-potion")
	s.Require().NoError(err)

	s.True(res.OK)
	s.Equal(entities.StartingGold+25, res.Gold)
	s.Equal(entities.StarterItemAmount-1, res.Quantity)
}

func (s *MarketTestSuite) TestSellLootItem() {
	s.inventory.AddItem(s.ctx, "plate-armor", 1)

	res, err := s.market.Sell(s.ctx, "plate-armor")
	s.Require().NoError(err)
	s.True(res.OK)
	s.Equal(entities.StartingGold+600, res.Gold)
}

func (s *MarketTestSuite) TestSellNotOwned() {
	res, err := s.market.Sell(s.ctx, "tax-bomb")
	s.Require().NoError(err)
	s.False(res.OK)
	s.Equal(entities.StartingGold, res.Gold)

	_, err = s.market.Sell(s.ctx, "golden-ledger")
	s.True(errors.IsNotFound(err))
}

func (s *MarketTestSuite) TestList() {
	listings := s.market.List()
	s.Len(listings, len(s.catalog.ShopItems()))

	for i := 1; i < len(listings); i++ {
		s.LessOrEqual(listings[i-1].Price, listings[i].Price)
	}
	for _, l := range listings {
		s.True(l.Item.Shop)
		if l.Item.ID == entities.StarterItemID {
			s.Equal(entities.StarterItemAmount, l.Owned)
		}
	}
}
