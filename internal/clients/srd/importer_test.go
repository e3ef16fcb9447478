package srd

import (
	"context"
	"errors"
	"testing"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	apientities "github.com/fadedpez/dnd5e-api/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/legends-of-revenue/internal/entities"
)

// mockSource is a mock implementation of Source for testing
type mockSource struct {
	mock.Mock
}

func (m *mockSource) GetEquipmentCategory(key string) (*apientities.EquipmentCategory, error) {
	args := m.Called(key)
	return args.Get(0).(*apientities.EquipmentCategory), args.Error(1)
}

func (m *mockSource) GetEquipment(key string) (dnd5e.EquipmentInterface, error) {
	args := m.Called(key)
	return args.Get(0).(dnd5e.EquipmentInterface), args.Error(1)
}

func rapier() *apientities.Weapon {
	return &apientities.Weapon{
		Key:            "rapier",
		Name:           "Rapier",
		WeaponCategory: "Martial",
		WeaponRange:    "Melee",
		Cost:           &apientities.Cost{Quantity: 25, Unit: "gp"},
		Damage:         &apientities.Damage{DamageDice: "1d8", DamageType: &apientities.ReferenceItem{Name: "Piercing"}},
		Properties:     []*apientities.ReferenceItem{{Key: "finesse", Name: "Finesse"}},
	}
}

func chainMail() *apientities.Armor {
	return &apientities.Armor{
		Key:           "chain-mail",
		Name:          "Chain Mail",
		ArmorCategory: "Heavy",
		Cost:          &apientities.Cost{Quantity: 75, Unit: "gp"},
		ArmorClass:    &apientities.ArmorClass{Base: 16},
	}
}

func TestConvertEquipment(t *testing.T) {
	t.Run("finesse weapon", func(t *testing.T) {
		item, ok := ConvertEquipment(rapier())
		require.True(t, ok)
		assert.Equal(t, "srd-rapier", item.ID)
		assert.Equal(t, "Rapier", item.Name)
		assert.Equal(t, entities.CategoryWeapon, item.Category)
		assert.Equal(t, entities.RarityUncommon, item.Rarity)
		assert.Equal(t, 4, item.Stats.Attack)
		assert.Equal(t, FinesseCritChance, item.Stats.CritChance)
		assert.True(t, item.Shop)
		assert.Equal(t, "Martial Melee weapon, 1d8 piercing", item.Description)
	})

	t.Run("multi die weapon without finesse", func(t *testing.T) {
		greatsword := &apientities.Weapon{
			Key:    "greatsword",
			Name:   "Greatsword",
			Cost:   &apientities.Cost{Quantity: 50, Unit: "gp"},
			Damage: &apientities.Damage{DamageDice: "2d6"},
		}
		item, ok := ConvertEquipment(greatsword)
		require.True(t, ok)
		assert.Equal(t, 6, item.Stats.Attack)
		assert.Zero(t, item.Stats.CritChance)
		assert.Equal(t, entities.RarityRare, item.Rarity)
	})

	t.Run("armor", func(t *testing.T) {
		item, ok := ConvertEquipment(chainMail())
		require.True(t, ok)
		assert.Equal(t, "srd-chain-mail", item.ID)
		assert.Equal(t, entities.CategoryArmor, item.Category)
		assert.Equal(t, 6, item.Stats.Defense)
		assert.Equal(t, entities.RarityRare, item.Rarity)
	})

	t.Run("light armor keeps one defense", func(t *testing.T) {
		padded := &apientities.Armor{
			Key:        "padded-armor",
			Name:       "Padded Armor",
			Cost:       &apientities.Cost{Quantity: 5, Unit: "gp"},
			ArmorClass: &apientities.ArmorClass{Base: 11, DexBonus: true},
		}
		item, ok := ConvertEquipment(padded)
		require.True(t, ok)
		assert.Equal(t, 1, item.Stats.Defense)
		assert.Equal(t, entities.RarityCommon, item.Rarity)
	})

	t.Run("weapon without damage", func(t *testing.T) {
		net := &apientities.Weapon{Key: "net", Name: "Net"}
		_, ok := ConvertEquipment(net)
		assert.False(t, ok)
	})

	t.Run("plain equipment", func(t *testing.T) {
		_, ok := ConvertEquipment(&apientities.Equipment{Key: "rope", Name: "Rope"})
		assert.False(t, ok)
	})
}

func TestRarityFor(t *testing.T) {
	testCases := []struct {
		name     string
		cost     *apientities.Cost
		expected entities.Rarity
	}{
		{name: "no cost", cost: nil, expected: entities.RarityCommon},
		{name: "silver", cost: &apientities.Cost{Quantity: 5, Unit: "sp"}, expected: entities.RarityCommon},
		{name: "ten gold", cost: &apientities.Cost{Quantity: 10, Unit: "gp"}, expected: entities.RarityUncommon},
		{name: "fifty gold", cost: &apientities.Cost{Quantity: 50, Unit: "gp"}, expected: entities.RarityRare},
		{name: "plate", cost: &apientities.Cost{Quantity: 1500, Unit: "gp"}, expected: entities.RarityEpic},
		{name: "platinum", cost: &apientities.Cost{Quantity: 60, Unit: "pp"}, expected: entities.RarityEpic},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, rarityFor(tc.cost))
		})
	}
}

func TestImport(t *testing.T) {
	t.Run("imports categories in order and skips duplicates", func(t *testing.T) {
		source := new(mockSource)
		imp, err := New(&Config{
			Source:     source,
			Categories: []string{"martial-weapons", "heavy-armor", "finesse-weapons"},
		})
		require.NoError(t, err)

		source.On("GetEquipmentCategory", "martial-weapons").Return(&apientities.EquipmentCategory{
			Index: "martial-weapons",
			Equipment: []*apientities.ReferenceItem{
				{Key: "rapier", Name: "Rapier"},
				{Key: "net", Name: "Net"},
			},
		}, nil)
		source.On("GetEquipmentCategory", "heavy-armor").Return(&apientities.EquipmentCategory{
			Index:     "heavy-armor",
			Equipment: []*apientities.ReferenceItem{{Key: "chain-mail", Name: "Chain Mail"}},
		}, nil)
		source.On("GetEquipmentCategory", "finesse-weapons").Return(&apientities.EquipmentCategory{
			Index:     "finesse-weapons",
			Equipment: []*apientities.ReferenceItem{{Key: "rapier", Name: "Rapier"}},
		}, nil)
		source.On("GetEquipment", "rapier").Return(rapier(), nil).Once()
		source.On("GetEquipment", "net").Return(&apientities.Weapon{Key: "net", Name: "Net"}, nil)
		source.On("GetEquipment", "chain-mail").Return(chainMail(), nil)

		out, err := imp.Import(context.Background())
		require.NoError(t, err)

		ids := make([]string, 0, len(out.Items))
		for _, item := range out.Items {
			ids = append(ids, item.ID)
		}
		assert.Equal(t, []string{"srd-rapier", "srd-chain-mail"}, ids)
		assert.Equal(t, []string{"net"}, out.Skipped)
		source.AssertExpectations(t)
	})

	t.Run("category failure", func(t *testing.T) {
		source := new(mockSource)
		imp, err := New(&Config{Source: source, Categories: []string{"simple-weapons"}})
		require.NoError(t, err)

		source.On("GetEquipmentCategory", "simple-weapons").Return(
			(*apientities.EquipmentCategory)(nil), errors.New("api down"))

		_, err = imp.Import(context.Background())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "api down")
	})

	t.Run("equipment failure", func(t *testing.T) {
		source := new(mockSource)
		imp, err := New(&Config{Source: source, Categories: []string{"heavy-armor"}})
		require.NoError(t, err)

		source.On("GetEquipmentCategory", "heavy-armor").Return(&apientities.EquipmentCategory{
			Equipment: []*apientities.ReferenceItem{{Key: "plate-armor", Name: "Plate Armor"}},
		}, nil)
		source.On("GetEquipment", "plate-armor").Return(
			(*apientities.Armor)(nil), errors.New("not found"))

		_, err = imp.Import(context.Background())
		assert.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		source := new(mockSource)
		imp, err := New(&Config{Source: source})
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = imp.Import(ctx)
		assert.Error(t, err)
		source.AssertNotCalled(t, "GetEquipmentCategory", mock.Anything)
	})
}

func TestConfigDefaults(t *testing.T) {
	cfg := &Config{Source: new(mockSource)}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultCategories, cfg.Categories)
	assert.Equal(t, "https://www.dnd5eapi.co/api/2014/", cfg.BaseURL)

	_, err := New(nil)
	assert.Error(t, err)
}
