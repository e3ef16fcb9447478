// Package inventory manages a character's item stacks and equipment slots
// and computes the combat bonuses of what is equipped.
package inventory

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/legends-of-revenue/internal/engine"
	"github.com/KirkDiggler/legends-of-revenue/internal/engine/progression"
	"github.com/KirkDiggler/legends-of-revenue/internal/entities"
	"github.com/KirkDiggler/legends-of-revenue/internal/errors"
)

// ItemCatalog resolves item definitions
type ItemCatalog interface {
	Item(id string) (*entities.ItemDefinition, bool)
}

// EffectTarget receives item effects aimed at the current enemy. The
// active encounter implements it; outside combat there is no target.
type EffectTarget interface {
	// DamageEnemy applies direct damage and returns the amount dealt
	DamageEnemy(ctx context.Context, amount int) int
	// DebuffEnemy reduces the enemy's next attack
	DebuffEnemy(ctx context.Context, amount int)
	// BuffDefense raises player defense for the rest of the encounter
	BuffDefense(ctx context.Context, amount int)
}

// Bonuses are the combat numbers after equipment
type Bonuses struct {
	TotalAttack  int     `json:"total_attack"`
	TotalDefense int     `json:"total_defense"`
	CritChance   float64 `json:"crit_chance"`
}

// Manager owns one character's inventory and equipment
type Manager interface {
	AddItem(ctx context.Context, id string, qty int)
	RemoveItem(ctx context.Context, id string, qty int)
	// UseItem applies a consumable. Returns the amount applied and whether
	// the item was used; nothing changes when it was not.
	UseItem(ctx context.Context, id string, target EffectTarget) (int, bool)
	// EquipItem moves the whole stack of id into slot, returning any
	// displaced item to the inventory
	EquipItem(ctx context.Context, id string, slot entities.EquipSlot) bool
	UnequipItem(ctx context.Context, slot entities.EquipSlot)
	Quantity(id string) int
	Bonuses() Bonuses
}

// Config configures a manager
type Config struct {
	Character *entities.Character
	Catalog   ItemCatalog
	Ledger    progression.Ledger
	EventBus  events.EventBus
}

// Validate checks the config
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Character == nil {
		vb.RequiredField("Character")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Ledger == nil {
		vb.RequiredField("Ledger")
	}

	return vb.Build()
}

type manager struct {
	character *entities.Character
	catalog   ItemCatalog
	ledger    progression.Ledger
	bus       events.EventBus
}

// New creates a manager over cfg.Character
func New(cfg *Config) (Manager, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &manager{
		character: cfg.Character,
		catalog:   cfg.Catalog,
		ledger:    cfg.Ledger,
		bus:       cfg.EventBus,
	}, nil
}

func (m *manager) AddItem(ctx context.Context, id string, qty int) {
	if id == "" || qty <= 0 {
		return
	}

	m.addItem(id, qty)
	m.publish(ctx, engine.EventInventoryChanged)
}

func (m *manager) addItem(id string, qty int) {
	for i := range m.character.Inventory {
		if m.character.Inventory[i].ItemID == id {
			m.character.Inventory[i].Quantity += qty
			return
		}
	}
	m.character.Inventory = append(m.character.Inventory, entities.InventorySlot{ItemID: id, Quantity: qty})
}

func (m *manager) RemoveItem(ctx context.Context, id string, qty int) {
	if qty <= 0 {
		return
	}
	if m.removeItem(id, qty) {
		m.publish(ctx, engine.EventInventoryChanged)
	}
}

func (m *manager) removeItem(id string, qty int) bool {
	for i := range m.character.Inventory {
		if m.character.Inventory[i].ItemID != id {
			continue
		}
		if m.character.Inventory[i].Quantity-qty <= 0 {
			m.character.Inventory = append(m.character.Inventory[:i], m.character.Inventory[i+1:]...)
		} else {
			m.character.Inventory[i].Quantity -= qty
		}
		return true
	}
	return false
}

func (m *manager) UseItem(ctx context.Context, id string, target EffectTarget) (int, bool) {
	if m.Quantity(id) <= 0 {
		return 0, false
	}

	item, ok := m.catalog.Item(id)
	if !ok || item.Category != entities.CategoryConsumable || item.Effect == nil {
		return 0, false
	}

	var applied int
	switch effect := item.Effect.(type) {
	case entities.HealEffect:
		stats := m.ledger.Stats()
		if stats.HP >= stats.MaxHP {
			return 0, false
		}
		applied = m.ledger.Heal(ctx, effect.Value)
	case entities.DamageEffect:
		if target == nil {
			return 0, false
		}
		applied = target.DamageEnemy(ctx, effect.Value)
	case entities.DebuffEffect:
		if target == nil {
			return 0, false
		}
		target.DebuffEnemy(ctx, effect.Value)
		applied = effect.Value
	case entities.BuffEffect:
		if target == nil {
			return 0, false
		}
		target.BuffDefense(ctx, effect.Value)
		applied = effect.Value
	default:
		slog.Warn("Unhandled item effect", "item_id", id, "effect", item.Effect.Kind())
		return 0, false
	}

	m.removeItem(id, 1)
	m.publish(ctx, engine.EventInventoryChanged)

	slog.Debug("Item used",
		"character_id", m.character.ID,
		"item_id", id,
		"amount", applied)

	return applied, true
}

func (m *manager) EquipItem(ctx context.Context, id string, slot entities.EquipSlot) bool {
	if !slot.Valid() || m.Quantity(id) <= 0 {
		return false
	}

	if displaced := m.character.Equipment.Get(slot); displaced != "" {
		m.addItem(displaced, 1)
	}

	m.removeItem(id, m.Quantity(id))
	m.character.Equipment.Set(slot, id)

	m.publish(ctx, engine.EventEquipmentChanged)
	m.publish(ctx, engine.EventInventoryChanged)
	return true
}

func (m *manager) UnequipItem(ctx context.Context, slot entities.EquipSlot) {
	id := m.character.Equipment.Get(slot)
	if id == "" {
		return
	}

	m.character.Equipment.Set(slot, "")
	m.addItem(id, 1)

	m.publish(ctx, engine.EventEquipmentChanged)
	m.publish(ctx, engine.EventInventoryChanged)
}

func (m *manager) Quantity(id string) int {
	return m.character.QuantityOf(id)
}

func (m *manager) Bonuses() Bonuses {
	stats := m.character.Stats
	weapon := m.lookup(m.character.Equipment.Weapon)
	armor := m.lookup(m.character.Equipment.Armor)

	return Bonuses{
		TotalAttack:  stats.Attack + weapon.AttackBonus(),
		TotalDefense: stats.Defense + armor.DefenseBonus(),
		CritChance:   weapon.Crit(),
	}
}

func (m *manager) lookup(id string) *entities.ItemDefinition {
	if id == "" {
		return nil
	}
	item, ok := m.catalog.Item(id)
	if !ok {
		slog.Warn("Equipped item missing from catalog", "character_id", m.character.ID, "item_id", id)
		return nil
	}
	return item
}

func (m *manager) publish(ctx context.Context, eventType string) {
	engine.Publish(ctx, m.bus, eventType, m.character, nil)
}
