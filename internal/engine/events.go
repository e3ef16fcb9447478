// Package engine holds what the game engine packages share: the event
// names published on a session's rpg-toolkit event bus and the helper
// used to publish them.
package engine

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"
)

// Event types published on the session bus
const (
	EventStatsChanged      = "legends.character.stats_changed"
	EventLevelUp           = "legends.character.level_up"
	EventDeath             = "legends.character.death"
	EventInventoryChanged  = "legends.inventory.changed"
	EventEquipmentChanged  = "legends.equipment.changed"
	EventEnemyDefeated     = "legends.combat.enemy_defeated"
	EventEncounterStarted  = "legends.combat.encounter_started"
	EventEncounterEnded    = "legends.combat.encounter_ended"
	EventQuestionAnswered  = "legends.quiz.question_answered"
	EventLocationChanged   = "legends.world.location_changed"
	EventLocationsUnlocked = "legends.world.locations_unlocked"
)

// StateEvents are the events after which derived state such as
// achievements must be re-evaluated
var StateEvents = []string{
	EventStatsChanged,
	EventLevelUp,
	EventInventoryChanged,
	EventEquipmentChanged,
	EventEnemyDefeated,
	EventLocationChanged,
}

// NewBus returns a fresh synchronous event bus for one session
func NewBus() events.EventBus {
	return events.NewBus()
}

// Publish emits an event of the given type. A nil bus is allowed. Failures
// are logged and swallowed since listeners never gate game state.
func Publish(ctx context.Context, bus events.EventBus, eventType string, source, target core.Entity) {
	if bus == nil {
		return
	}

	if err := bus.Publish(ctx, events.NewGameEvent(eventType, source, target)); err != nil {
		slog.Warn("Failed to publish event",
			"event_type", eventType,
			"source_id", entityID(source),
			"error", err)
	}
}

func entityID(e core.Entity) string {
	if e == nil {
		return ""
	}
	return e.GetID()
}
