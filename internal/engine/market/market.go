// Package market prices items and trades them for gold.
package market

import (
	"context"
	"log/slog"
	"math"
	"sort"

	"github.com/KirkDiggler/legends-of-revenue/internal/engine/inventory"
	"github.com/KirkDiggler/legends-of-revenue/internal/engine/progression"
	"github.com/KirkDiggler/legends-of-revenue/internal/entities"
	"github.com/KirkDiggler/legends-of-revenue/internal/errors"
)

// Pricing
const (
	StatPrice     = 20
	CritPrice     = 10
	SellBackRatio = 0.5
)

var rarityBase = map[entities.Rarity]int{
	entities.RarityLegendary: 1000,
	entities.RarityEpic:      500,
	entities.RarityRare:      250,
	entities.RarityUncommon:  100,
	entities.RarityCommon:    50,
}

// Price is the buy price of an item
func Price(item *entities.ItemDefinition) int {
	if item == nil {
		return 0
	}
	base, ok := rarityBase[item.Rarity]
	if !ok {
		base = rarityBase[entities.RarityCommon]
	}
	return base +
		item.AttackBonus()*StatPrice +
		item.DefenseBonus()*StatPrice +
		int(math.Floor(item.Crit()*CritPrice))
}

// SellPrice is what the market pays for an item
func SellPrice(item *entities.ItemDefinition) int {
	return int(math.Floor(float64(Price(item)) * SellBackRatio))
}

// Catalog lists the items for sale
type Catalog interface {
	Item(id string) (*entities.ItemDefinition, bool)
	ShopItems() []*entities.ItemDefinition
}

// Listing is one item on sale
type Listing struct {
	Item      *entities.ItemDefinition `json:"item"`
	Price     int                      `json:"price"`
	SellPrice int                      `json:"sell_price"`
	Owned     int                      `json:"owned"`
}

// TradeResult is the outcome of a buy or sell
type TradeResult struct {
	ItemID string `json:"item_id"`
	// OK is false when gold or stock was short; nothing changed then
	OK       bool `json:"ok"`
	Gold     int  `json:"gold"`
	Quantity int  `json:"quantity"`
	Amount   int  `json:"amount"`
}

// Market trades for one character
type Market interface {
	List() []Listing
	Buy(ctx context.Context, itemID string) (*TradeResult, error)
	Sell(ctx context.Context, itemID string) (*TradeResult, error)
}

// Config configures a market
type Config struct {
	Catalog   Catalog
	Ledger    progression.Ledger
	Inventory inventory.Manager
}

// Validate checks the config
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Ledger == nil {
		vb.RequiredField("Ledger")
	}
	if c.Inventory == nil {
		vb.RequiredField("Inventory")
	}

	return vb.Build()
}

type market struct {
	catalog   Catalog
	ledger    progression.Ledger
	inventory inventory.Manager
}

// New creates a market
func New(cfg *Config) (Market, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &market{
		catalog:   cfg.Catalog,
		ledger:    cfg.Ledger,
		inventory: cfg.Inventory,
	}, nil
}

func (m *market) List() []Listing {
	items := m.catalog.ShopItems()
	listings := make([]Listing, 0, len(items))
	for _, item := range items {
		listings = append(listings, Listing{
			Item:      item,
			Price:     Price(item),
			SellPrice: SellPrice(item),
			Owned:     m.inventory.Quantity(item.ID),
		})
	}
	sort.SliceStable(listings, func(i, j int) bool {
		return listings[i].Price < listings[j].Price
	})
	return listings
}

func (m *market) Buy(ctx context.Context, itemID string) (*TradeResult, error) {
	item, ok := m.catalog.Item(itemID)
	if !ok || !item.Shop {
		return nil, errors.NotFoundf("item %s is not for sale", itemID)
	}

	price := Price(item)
	result := &TradeResult{ItemID: itemID, Amount: price}

	if m.ledger.SpendGold(ctx, price) {
		m.inventory.AddItem(ctx, itemID, 1)
		result.OK = true
		slog.Debug("Item bought", "item_id", itemID, "price", price)
	}

	result.Gold = m.ledger.Stats().Gold
	result.Quantity = m.inventory.Quantity(itemID)
	return result, nil
}

func (m *market) Sell(ctx context.Context, itemID string) (*TradeResult, error) {
	item, ok := m.catalog.Item(itemID)
	if !ok {
		return nil, errors.NotFoundf("item %s not found", itemID)
	}

	price := SellPrice(item)
	result := &TradeResult{ItemID: itemID, Amount: price}

	if m.inventory.Quantity(itemID) > 0 {
		m.inventory.RemoveItem(ctx, itemID, 1)
		m.ledger.AddGold(ctx, price)
		result.OK = true
		slog.Debug("Item sold", "item_id", itemID, "price", price)
	}

	result.Gold = m.ledger.Stats().Gold
	result.Quantity = m.inventory.Quantity(itemID)
	return result, nil
}
