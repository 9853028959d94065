package metrics

import (
	"context"

	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/event"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.RoundSettled,
		event.SessionExpired,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.RoundSettled:
		payload, err := event.DecodePayload[event.RoundSettledPayloadV1](evt.Payload)
		if err != nil {
			EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
			return nil
		}
		result := payload.Result
		game := result.Game.String()

		RoundsPlayed.WithLabelValues(game).Inc()
		BetAmount.WithLabelValues(game).Add(result.BetAmount)
		PayoutAmount.WithLabelValues(game).Add(result.Payout)
		if result.Won {
			RoundsWon.WithLabelValues(game).Inc()
		}
		if result.CheatApplied {
			CheatsApplied.WithLabelValues(game).Inc()
		}

	case event.SessionExpired:
		SessionsExpired.Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
