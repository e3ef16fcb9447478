package entities

import (
	"encoding/json"

	"github.com/KirkDiggler/legends-of-revenue/internal/errors"
)

// ItemCategory groups item definitions
type ItemCategory string

// Item categories
const (
	CategoryWeapon     ItemCategory = "weapon"
	CategoryArmor      ItemCategory = "armor"
	CategoryAccessory  ItemCategory = "accessory"
	CategoryConsumable ItemCategory = "consumable"
)

// Rarity drives market prices and loot flavour text
type Rarity string

// Rarities
const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// EquipSlot is one of the three equipment slots
type EquipSlot string

// Equipment slots
const (
	SlotWeapon    EquipSlot = "weapon"
	SlotArmor     EquipSlot = "armor"
	SlotAccessory EquipSlot = "accessory"
)

// Valid reports whether s names a known slot
func (s EquipSlot) Valid() bool {
	switch s {
	case SlotWeapon, SlotArmor, SlotAccessory:
		return true
	}
	return false
}

// ItemStats are the combat bonuses an equipped item grants
type ItemStats struct {
	Attack     int     `json:"attack,omitempty"`
	Defense    int     `json:"defense,omitempty"`
	CritChance float64 `json:"crit_chance,omitempty"`
}

// ItemDefinition is a static catalog entry
type ItemDefinition struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Category    ItemCategory `json:"category"`
	Rarity      Rarity       `json:"rarity"`
	Stats       *ItemStats   `json:"stats,omitempty"`
	Effect      Effect       `json:"-"`
	Shop        bool         `json:"shop,omitempty"`
	Description string       `json:"description,omitempty"`
}

type itemDefinitionJSON struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Category    ItemCategory `json:"category"`
	Rarity      Rarity       `json:"rarity"`
	Stats       *ItemStats   `json:"stats,omitempty"`
	Effect      *EffectSpec  `json:"effect,omitempty"`
	Shop        bool         `json:"shop,omitempty"`
	Description string       `json:"description,omitempty"`
}

// MarshalJSON writes the effect as {type, value}
func (d ItemDefinition) MarshalJSON() ([]byte, error) {
	return json.Marshal(itemDefinitionJSON{
		ID:          d.ID,
		Name:        d.Name,
		Category:    d.Category,
		Rarity:      d.Rarity,
		Stats:       d.Stats,
		Effect:      SpecOf(d.Effect),
		Shop:        d.Shop,
		Description: d.Description,
	})
}

// UnmarshalJSON parses the effect into its variant
func (d *ItemDefinition) UnmarshalJSON(data []byte) error {
	var raw itemDefinitionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	effect, err := raw.Effect.toEffect()
	if err != nil {
		return errors.Wrapf(err, "item %s", raw.ID)
	}

	*d = ItemDefinition{
		ID:          raw.ID,
		Name:        raw.Name,
		Category:    raw.Category,
		Rarity:      raw.Rarity,
		Stats:       raw.Stats,
		Effect:      effect,
		Shop:        raw.Shop,
		Description: raw.Description,
	}
	return nil
}

// AttackBonus returns the item's attack stat or 0
func (d *ItemDefinition) AttackBonus() int {
	if d == nil || d.Stats == nil {
		return 0
	}
	return d.Stats.Attack
}

// DefenseBonus returns the item's defense stat or 0
func (d *ItemDefinition) DefenseBonus() int {
	if d == nil || d.Stats == nil {
		return 0
	}
	return d.Stats.Defense
}

// Crit returns the item's crit chance or 0
func (d *ItemDefinition) Crit() float64 {
	if d == nil || d.Stats == nil {
		return 0
	}
	return d.Stats.CritChance
}

// Equipment holds the equipped item id per slot; "" is empty
type Equipment struct {
	Weapon    string `json:"weapon"`
	Armor     string `json:"armor"`
	Accessory string `json:"accessory"`
}

// Get returns the item in slot
func (e *Equipment) Get(slot EquipSlot) string {
	switch slot {
	case SlotWeapon:
		return e.Weapon
	case SlotArmor:
		return e.Armor
	case SlotAccessory:
		return e.Accessory
	}
	return ""
}

// Set places id in slot
func (e *Equipment) Set(slot EquipSlot, id string) {
	switch slot {
	case SlotWeapon:
		e.Weapon = id
	case SlotArmor:
		e.Armor = id
	case SlotAccessory:
		e.Accessory = id
	}
}

// Holds reports whether id is equipped in any slot
func (e *Equipment) Holds(id string) bool {
	return id != "" && (e.Weapon == id || e.Armor == id || e.Accessory == id)
}

// InventorySlot is one stack of a single item id
type InventorySlot struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}
