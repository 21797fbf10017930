package metrics

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/dungeon-runner/internal/entities/dungeon"
	"github.com/KirkDiggler/dungeon-runner/internal/entities/gear"
	"github.com/KirkDiggler/dungeon-runner/internal/errors"
)

// EventCollector turns domain events into metrics
type EventCollector struct {
	subscriptions []string
}

// NewEventCollector creates a collector
func NewEventCollector() *EventCollector {
	return &EventCollector{}
}

// Register subscribes to the events the collector records
func (c *EventCollector) Register(bus events.EventBus) {
	for _, eventType := range []string{dungeon.EventRunCompleted, gear.EventItemForged} {
		id := bus.SubscribeFunc(eventType, 0, c.HandleEvent)
		c.subscriptions = append(c.subscriptions, id)
	}
}

// Unregister drops the collector's subscriptions
func (c *EventCollector) Unregister(bus events.EventBus) {
	for _, id := range c.subscriptions {
		_ = bus.Unsubscribe(id)
	}
	c.subscriptions = nil
}

// HandleEvent records one event
func (c *EventCollector) HandleEvent(_ context.Context, e events.Event) error {
	switch e.Type() {
	case dungeon.EventRunCompleted:
		record, ok := e.Source().(*dungeon.Record)
		if !ok {
			return c.fail(e, "run completed event without a record")
		}
		RunsCompleted.WithLabelValues(record.LevelID, string(record.Outcome)).Inc()
		RewardPoints.Observe(float64(record.RewardPoints))
		WeatherStatus.WithLabelValues(string(record.Weather)).Inc()

	case gear.EventItemForged:
		item, ok := e.Target().(*gear.Item)
		if !ok {
			return c.fail(e, "item forged event without an item")
		}
		ItemsForged.WithLabelValues(string(item.Slot)).Inc()
	}

	slog.Debug("metrics recorded", "type", e.Type())
	return nil
}

func (c *EventCollector) fail(e events.Event, msg string) error {
	EventHandlerErrors.WithLabelValues(e.Type()).Inc()
	slog.Warn("metrics event dropped", "type", e.Type(), "reason", msg)
	return errors.Internal(msg)
}
