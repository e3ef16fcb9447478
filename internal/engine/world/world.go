// Package world moves a character around the map, tracks exploration
// progress and rolls random encounters.
package world

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/legends-of-revenue/internal/engine"
	"github.com/KirkDiggler/legends-of-revenue/internal/entities"
	"github.com/KirkDiggler/legends-of-revenue/internal/errors"
	"github.com/KirkDiggler/legends-of-revenue/internal/pkg/rng"
)

// TileCatalog resolves map tiles
type TileCatalog interface {
	Tile(id string) (*entities.MapTile, bool)
	Tiles() []*entities.MapTile
}

// StepResult is the outcome of one exploration step
type StepResult struct {
	Location string `json:"location"`
	Progress int    `json:"progress"`
	Explored bool   `json:"explored"`
	// Unlocked lists neighbors opened by this step
	Unlocked []string `json:"unlocked,omitempty"`
	// EnemyID is set when the step triggered an encounter
	EnemyID string `json:"enemy_id,omitempty"`
}

// TileView is a map tile with the character's exploration state
type TileView struct {
	Tile     *entities.MapTile `json:"tile"`
	Unlocked bool              `json:"unlocked"`
	Visited  bool              `json:"visited"`
	Progress int               `json:"progress"`
	Current  bool              `json:"current"`
}

// World navigates one character
type World interface {
	Current() (*entities.MapTile, error)
	// MoveTo enters an unlocked tile
	MoveTo(ctx context.Context, tileID string) (*entities.MapTile, error)
	// TakeStep explores the current tile and may roll an encounter
	TakeStep(ctx context.Context) (*StepResult, error)
	Map() []TileView
}

// Config configures a world
type Config struct {
	Character *entities.Character
	Catalog   TileCatalog
	Roller    dice.Roller
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

	return vb.Build()
}

type world struct {
	character *entities.Character
	catalog   TileCatalog
	rng       *rng.Source
	bus       events.EventBus
}

// New creates a world over cfg.Character
func New(cfg *Config) (World, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	if cfg.Character.World.LocationProgress == nil {
		cfg.Character.World.LocationProgress = make(map[string]int)
	}

	return &world{
		character: cfg.Character,
		catalog:   cfg.Catalog,
		rng:       rng.New(cfg.Roller),
		bus:       cfg.EventBus,
	}, nil
}

func (w *world) Current() (*entities.MapTile, error) {
	tile, ok := w.catalog.Tile(w.character.Location)
	if !ok {
		return nil, errors.NotFoundf("current location %s not found", w.character.Location)
	}
	return tile, nil
}

func (w *world) MoveTo(ctx context.Context, tileID string) (*entities.MapTile, error) {
	tile, ok := w.catalog.Tile(tileID)
	if !ok {
		return nil, errors.NotFoundf("location %s not found", tileID)
	}
	if !w.character.World.IsUnlocked(tileID) {
		return nil, errors.FailedPreconditionf("location %s is locked", tileID).
			WithMeta("location", tileID)
	}

	w.character.Location = tileID
	if !w.character.HasVisited(tileID) {
		w.character.LocationsVisited = append(w.character.LocationsVisited, tileID)
	}

	slog.Debug("Character moved",
		"character_id", w.character.ID,
		"location", tileID)

	engine.Publish(ctx, w.bus, engine.EventLocationChanged, w.character, nil)
	return tile, nil
}

func (w *world) TakeStep(ctx context.Context) (*StepResult, error) {
	tile, err := w.Current()
	if err != nil {
		return nil, err
	}

	state := &w.character.World
	progress := min(entities.ExploredSteps, state.LocationProgress[tile.ID]+1)
	state.LocationProgress[tile.ID] = progress

	result := &StepResult{
		Location: tile.ID,
		Progress: progress,
		Explored: progress >= entities.ExploredSteps,
	}

	if result.Explored {
		for _, neighbor := range tile.Neighbors {
			if state.Unlock(neighbor) {
				result.Unlocked = append(result.Unlocked, neighbor)
			}
		}
		if len(result.Unlocked) > 0 {
			slog.Info("Locations unlocked",
				"character_id", w.character.ID,
				"from", tile.ID,
				"unlocked", result.Unlocked)
			engine.Publish(ctx, w.bus, engine.EventLocationsUnlocked, w.character, nil)
		}
	}

	encounter, err := w.rng.Chance(tile.EncounterRate)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll encounter")
	}
	if encounter && len(tile.EncounterTable) > 0 {
		enemyID, err := w.pickEnemy(tile.EncounterTable)
		if err != nil {
			return nil, err
		}
		result.EnemyID = enemyID
	}

	return result, nil
}

// pickEnemy draws from the table proportionally to weight
func (w *world) pickEnemy(table []entities.EncounterEntry) (string, error) {
	total := 0
	for _, entry := range table {
		total += max(0, entry.Weight)
	}
	if total == 0 {
		return "", nil
	}

	roll, err := w.rng.Between(1, total)
	if err != nil {
		return "", errors.Wrap(err, "failed to pick enemy")
	}
	for _, entry := range table {
		roll -= max(0, entry.Weight)
		if roll <= 0 {
			return entry.EnemyID, nil
		}
	}
	return table[len(table)-1].EnemyID, nil
}

func (w *world) Map() []TileView {
	tiles := w.catalog.Tiles()
	views := make([]TileView, 0, len(tiles))
	for _, t := range tiles {
		views = append(views, TileView{
			Tile:     t,
			Unlocked: w.character.World.IsUnlocked(t.ID),
			Visited:  w.character.HasVisited(t.ID),
			Progress: w.character.World.LocationProgress[t.ID],
			Current:  w.character.Location == t.ID,
		})
	}
	return views
}
