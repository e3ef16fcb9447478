// Package achievements unlocks one-way achievement flags from character
// state, re-evaluating whenever the session bus reports a state change.
package achievements

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/legends-of-revenue/internal/engine"
	"github.com/KirkDiggler/legends-of-revenue/internal/entities"
	"github.com/KirkDiggler/legends-of-revenue/internal/errors"
	"github.com/KirkDiggler/legends-of-revenue/internal/pkg/clock"
)

// NotificationWindow is how long an unlock stays recent
const NotificationWindow = 5 * time.Second

// Unlock thresholds
const (
	FirstBloodKills    = 1
	TaxRebelLevel      = 5
	RevenueMasterLevel = 10
	WealthyEvaderGold  = 1000
	TaxSlayerKills     = 50
	ExplorerLocations  = 10
)

// LegendaryItems are the ids that count for the collector achievement
var LegendaryItems = []string{"plate-armor", "assassins-dagger"}

type rule func(c *entities.Character) bool

var rules = map[string]rule{
	entities.AchievementFirstBlood: func(c *entities.Character) bool {
		return c.EnemiesKilled >= FirstBloodKills
	},
	entities.AchievementTaxRebel: func(c *entities.Character) bool {
		return c.Stats.Level >= TaxRebelLevel
	},
	entities.AchievementRevenueMaster: func(c *entities.Character) bool {
		return c.Stats.Level >= RevenueMasterLevel
	},
	entities.AchievementWealthyEvader: func(c *entities.Character) bool {
		return c.Stats.Gold >= WealthyEvaderGold
	},
	entities.AchievementTaxSlayer: func(c *entities.Character) bool {
		return c.EnemiesKilled >= TaxSlayerKills
	},
	entities.AchievementLegendaryCollector: func(c *entities.Character) bool {
		for _, id := range LegendaryItems {
			if c.QuantityOf(id) > 0 || c.Equipment.Holds(id) {
				return true
			}
		}
		return false
	},
	entities.AchievementExplorer: func(c *entities.Character) bool {
		return len(c.LocationsVisited) >= ExplorerLocations
	},
	entities.AchievementFullyEquipped: func(c *entities.Character) bool {
		return c.Equipment.Weapon != "" && c.Equipment.Armor != ""
	},
}

// Evaluator tracks the achievements of one character
type Evaluator interface {
	// Evaluate unlocks every achievement whose condition now holds and
	// returns the new unlocks
	Evaluate(ctx context.Context) []entities.AchievementState
	// RecentUnlock returns the latest unlock while it is still fresh
	RecentUnlock() (*entities.AchievementState, bool)
	Dismiss()
	// Reset relocks everything. Only a character reset calls it.
	Reset()
	States() []entities.AchievementState
	// Close detaches the evaluator from the bus
	Close()
}

// Config configures an evaluator
type Config struct {
	Character *entities.Character
	EventBus  events.EventBus
	Clock     clock.Clock
}

// Validate checks the config
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Character == nil {
		vb.RequiredField("Character")
	}

	return vb.Build()
}

type evaluator struct {
	character     *entities.Character
	bus           events.EventBus
	clock         clock.Clock
	subscriptions []string

	recent   *entities.AchievementState
	recentAt time.Time
}

// New creates an evaluator and subscribes it to the state events of the
// session bus when one is given
func New(cfg *Config) (Evaluator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	e := &evaluator{
		character: cfg.Character,
		bus:       cfg.EventBus,
		clock:     clk,
	}
	e.ensureStates()

	if e.bus != nil {
		for _, eventType := range engine.StateEvents {
			id := e.bus.SubscribeFunc(eventType, 0, func(ctx context.Context, _ events.Event) error {
				e.Evaluate(ctx)
				return nil
			})
			e.subscriptions = append(e.subscriptions, id)
		}
	}

	return e, nil
}

// ensureStates adds any achievement missing from an older snapshot
func (e *evaluator) ensureStates() {
	for _, def := range entities.AchievementDefinitions {
		if e.find(def.ID) == nil {
			e.character.Achievements = append(e.character.Achievements, entities.AchievementState{ID: def.ID})
		}
	}
}

func (e *evaluator) find(id string) *entities.AchievementState {
	for i := range e.character.Achievements {
		if e.character.Achievements[i].ID == id {
			return &e.character.Achievements[i]
		}
	}
	return nil
}

func (e *evaluator) Evaluate(_ context.Context) []entities.AchievementState {
	var unlocked []entities.AchievementState

	for _, def := range entities.AchievementDefinitions {
		state := e.find(def.ID)
		if state == nil || state.Unlocked {
			continue
		}
		if !rules[def.ID](e.character) {
			continue
		}

		now := e.clock.Now()
		state.Unlocked = true
		state.UnlockedAt = &now
		unlocked = append(unlocked, *state)

		latest := *state
		e.recent = &latest
		e.recentAt = now

		slog.Info("Achievement unlocked",
			"character_id", e.character.ID,
			"achievement_id", def.ID)
	}

	return unlocked
}

func (e *evaluator) RecentUnlock() (*entities.AchievementState, bool) {
	if e.recent == nil {
		return nil, false
	}
	if e.clock.Now().Sub(e.recentAt) >= NotificationWindow {
		e.recent = nil
		return nil, false
	}
	out := *e.recent
	return &out, true
}

func (e *evaluator) Dismiss() {
	e.recent = nil
}

func (e *evaluator) Reset() {
	e.character.Achievements = entities.NewAchievementStates()
	e.recent = nil
}

func (e *evaluator) States() []entities.AchievementState {
	return append([]entities.AchievementState(nil), e.character.Achievements...)
}

func (e *evaluator) Close() {
	if e.bus == nil {
		return
	}
	for _, id := range e.subscriptions {
		if err := e.bus.Unsubscribe(id); err != nil {
			slog.Warn("Failed to unsubscribe achievement evaluator",
				"character_id", e.character.ID,
				"subscription_id", id,
				"error", err)
		}
	}
	e.subscriptions = nil
}
