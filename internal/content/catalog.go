// Package content loads the static game catalogs: items, enemies, quiz
// questions, special attacks and the world map.
package content

import (
	"sort"
	"sync"

	"github.com/KirkDiggler/legends-of-revenue/internal/entities"
	"github.com/KirkDiggler/legends-of-revenue/internal/errors"
)

// Data is the raw material of a catalog
type Data struct {
	Items          []*entities.ItemDefinition
	Enemies        []*entities.EnemyTemplate
	Questions      []*entities.Question
	SpecialAttacks []*entities.SpecialAttack
	Tiles          []*entities.MapTile
}

// Catalog is the read-mostly lookup over static content. Only the item
// table grows after construction, through AddItems.
type Catalog struct {
	mu        sync.RWMutex
	items     map[string]*entities.ItemDefinition
	itemOrder []string

	enemies    map[string]*entities.EnemyTemplate
	enemyOrder []string

	questions  map[string]*entities.Question
	byCategory map[string][]*entities.Question
	categories []string

	attacks     map[string]*entities.SpecialAttack
	attackOrder []*entities.SpecialAttack

	tiles     map[string]*entities.MapTile
	tileOrder []string
}

// New validates data and indexes it
func New(data *Data) (*Catalog, error) {
	if data == nil {
		return nil, errors.InvalidArgument("data cannot be nil")
	}

	c := &Catalog{
		items:      make(map[string]*entities.ItemDefinition),
		enemies:    make(map[string]*entities.EnemyTemplate),
		questions:  make(map[string]*entities.Question),
		byCategory: make(map[string][]*entities.Question),
		attacks:    make(map[string]*entities.SpecialAttack),
		tiles:      make(map[string]*entities.MapTile),
	}

	if err := c.addItems(data.Items); err != nil {
		return nil, err
	}

	for _, q := range data.Questions {
		if err := validateQuestion(q); err != nil {
			return nil, err
		}
		if _, dup := c.questions[q.ID]; dup {
			return nil, errors.AlreadyExistsf("duplicate question %s", q.ID)
		}
		c.questions[q.ID] = q
		if _, seen := c.byCategory[q.Category]; !seen {
			c.categories = append(c.categories, q.Category)
		}
		c.byCategory[q.Category] = append(c.byCategory[q.Category], q)
	}
	sort.Strings(c.categories)

	for _, e := range data.Enemies {
		if err := c.validateEnemy(e); err != nil {
			return nil, err
		}
		if _, dup := c.enemies[e.ID]; dup {
			return nil, errors.AlreadyExistsf("duplicate enemy %s", e.ID)
		}
		c.enemies[e.ID] = e
		c.enemyOrder = append(c.enemyOrder, e.ID)
	}

	for _, a := range data.SpecialAttacks {
		if a == nil || a.ID == "" {
			return nil, errors.InvalidArgument("special attack id is required")
		}
		if _, ok := c.byCategory[a.Category]; !ok {
			return nil, errors.InvalidArgumentf("special attack %s uses unknown category %q", a.ID, a.Category)
		}
		if _, dup := c.attacks[a.ID]; dup {
			return nil, errors.AlreadyExistsf("duplicate special attack %s", a.ID)
		}
		c.attacks[a.ID] = a
		c.attackOrder = append(c.attackOrder, a)
	}

	for _, t := range data.Tiles {
		if t == nil || t.ID == "" {
			return nil, errors.InvalidArgument("tile id is required")
		}
		if _, dup := c.tiles[t.ID]; dup {
			return nil, errors.AlreadyExistsf("duplicate tile %s", t.ID)
		}
		c.tiles[t.ID] = t
		c.tileOrder = append(c.tileOrder, t.ID)
	}
	if err := c.validateTiles(); err != nil {
		return nil, err
	}

	return c, nil
}

func validateQuestion(q *entities.Question) error {
	if q == nil || q.ID == "" {
		return errors.InvalidArgument("question id is required")
	}
	if q.Category == "" {
		return errors.InvalidArgumentf("question %s has no category", q.ID)
	}
	if q.Points < 0 {
		return errors.InvalidArgumentf("question %s has negative points", q.ID)
	}

	correct := 0
	for _, a := range q.Answers {
		if a.Correct {
			correct++
		}
	}
	if correct != 1 {
		return errors.InvalidArgumentf("question %s must have exactly one correct answer, has %d", q.ID, correct)
	}
	return nil
}

func (c *Catalog) validateEnemy(e *entities.EnemyTemplate) error {
	if e == nil || e.ID == "" {
		return errors.InvalidArgument("enemy id is required")
	}

	ranges := map[string]entities.StatRange{
		"hp":      e.StatRanges.HP,
		"attack":  e.StatRanges.Attack,
		"defense": e.StatRanges.Defense,
	}
	for name, r := range ranges {
		if r.Min > r.Max {
			return errors.InvalidArgumentf("enemy %s has %s range %d..%d", e.ID, name, r.Min, r.Max)
		}
	}
	if e.StatRanges.HP.Min <= 0 {
		return errors.InvalidArgumentf("enemy %s must have positive hp", e.ID)
	}

	for _, loot := range e.Rewards.Items {
		if _, ok := c.items[loot.ID]; !ok {
			return errors.InvalidArgumentf("enemy %s drops unknown item %s", e.ID, loot.ID)
		}
	}

	for _, ab := range e.Abilities {
		if !ab.Trigger.Valid() {
			return errors.InvalidArgumentf("enemy %s ability %s has unknown trigger %q", e.ID, ab.ID, ab.Trigger)
		}
		if !ab.Effect.Type.Valid() {
			return errors.InvalidArgumentf("enemy %s ability %s has unknown effect %q", e.ID, ab.ID, ab.Effect.Type)
		}
	}
	return nil
}

func (c *Catalog) validateTiles() error {
	for _, id := range c.tileOrder {
		t := c.tiles[id]
		for _, n := range t.Neighbors {
			if _, ok := c.tiles[n]; !ok {
				return errors.InvalidArgumentf("tile %s has unknown neighbor %s", t.ID, n)
			}
		}
		for _, entry := range t.EncounterTable {
			if _, ok := c.enemies[entry.EnemyID]; !ok {
				return errors.InvalidArgumentf("tile %s spawns unknown enemy %s", t.ID, entry.EnemyID)
			}
			if entry.Weight <= 0 {
				return errors.InvalidArgumentf("tile %s has non-positive weight for %s", t.ID, entry.EnemyID)
			}
		}
		if t.EncounterRate < 0 || t.EncounterRate > 1 {
			return errors.InvalidArgumentf("tile %s encounter rate %v outside [0,1]", t.ID, t.EncounterRate)
		}
	}
	return nil
}

func (c *Catalog) addItems(items []*entities.ItemDefinition) error {
	for _, item := range items {
		if item == nil || item.ID == "" {
			return errors.InvalidArgument("item id is required")
		}
		if _, dup := c.items[item.ID]; dup {
			return errors.AlreadyExistsf("duplicate item %s", item.ID)
		}
		if item.Category == entities.CategoryConsumable && item.Effect == nil {
			return errors.InvalidArgumentf("consumable %s has no effect", item.ID)
		}
		c.items[item.ID] = item
		c.itemOrder = append(c.itemOrder, item.ID)
	}
	return nil
}

// AddItems merges imported items. Nothing is added if any id collides.
func (c *Catalog) AddItems(items ...*entities.ItemDefinition) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if item == nil {
			return errors.InvalidArgument("item cannot be nil")
		}
		if _, dup := c.items[item.ID]; dup || seen[item.ID] {
			return errors.AlreadyExistsf("duplicate item %s", item.ID)
		}
		seen[item.ID] = true
	}

	return c.addItems(items)
}

// Item looks up an item definition
func (c *Catalog) Item(id string) (*entities.ItemDefinition, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	item, ok := c.items[id]
	return item, ok
}

// Items returns every item in load order
func (c *Catalog) Items() []*entities.ItemDefinition {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*entities.ItemDefinition, 0, len(c.itemOrder))
	for _, id := range c.itemOrder {
		out = append(out, c.items[id])
	}
	return out
}

// ShopItems returns the items the market sells
func (c *Catalog) ShopItems() []*entities.ItemDefinition {
	var out []*entities.ItemDefinition
	for _, item := range c.Items() {
		if item.Shop {
			out = append(out, item)
		}
	}
	return out
}

// Enemy looks up an enemy template
func (c *Catalog) Enemy(id string) (*entities.EnemyTemplate, bool) {
	e, ok := c.enemies[id]
	return e, ok
}

// Enemies returns every enemy template in load order
func (c *Catalog) Enemies() []*entities.EnemyTemplate {
	out := make([]*entities.EnemyTemplate, 0, len(c.enemyOrder))
	for _, id := range c.enemyOrder {
		out = append(out, c.enemies[id])
	}
	return out
}

// Categories returns the quiz categories sorted by name
func (c *Catalog) Categories() []string {
	return append([]string(nil), c.categories...)
}

// QuestionsIn returns the questions of a category in load order
func (c *Catalog) QuestionsIn(category string) []*entities.Question {
	return c.byCategory[category]
}

// Question looks up a question by id
func (c *Catalog) Question(id string) (*entities.Question, bool) {
	q, ok := c.questions[id]
	return q, ok
}

// SpecialAttacks returns the special attacks in load order
func (c *Catalog) SpecialAttacks() []*entities.SpecialAttack {
	return append([]*entities.SpecialAttack(nil), c.attackOrder...)
}

// SpecialAttack looks up a special attack
func (c *Catalog) SpecialAttack(id string) (*entities.SpecialAttack, bool) {
	a, ok := c.attacks[id]
	return a, ok
}

// Tile looks up a map tile
func (c *Catalog) Tile(id string) (*entities.MapTile, bool) {
	t, ok := c.tiles[id]
	return t, ok
}

// Tiles returns the map in load order
func (c *Catalog) Tiles() []*entities.MapTile {
	out := make([]*entities.MapTile, 0, len(c.tileOrder))
	for _, id := range c.tileOrder {
		out = append(out, c.tiles[id])
	}
	return out
}
