package engine_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/legends-of-revenue/internal/engine"
	"github.com/KirkDiggler/legends-of-revenue/internal/testutils"
)

func TestPublishDeliversToSubscribers(t *testing.T) {
	bus := engine.NewBus()
	character := testutils.NewTestCharacter("char_1")

	var received []string
	bus.SubscribeFunc(engine.EventStatsChanged, 0, func(_ context.Context, e events.Event) error {
		received = append(received, e.Type())
		return nil
	})

	engine.Publish(context.Background(), bus, engine.EventStatsChanged, character, nil)
	engine.Publish(context.Background(), bus, engine.EventInventoryChanged, character, nil)

	assert.Equal(t, []string{engine.EventStatsChanged}, received)
}

func TestPublishNilBus(t *testing.T) {
	assert.NotPanics(t, func() {
		engine.Publish(context.Background(), nil, engine.EventStatsChanged, nil, nil)
	})
}
