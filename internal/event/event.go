package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Common event types
const (
	// RoundSettled fires once per settled game round; the scoring
	// pipeline consumes it to persist results and update leaderboards.
	RoundSettled Type = "round.settled"

	// SessionExpired fires when the cleanup worker evicts an abandoned round.
	SessionExpired Type = "session.expired"
)

// Typed event payloads for type safety

// RoundSettledPayloadV1 is the typed payload for settled rounds
type RoundSettledPayloadV1 struct {
	Result    domain.RoundResult `json:"result"`
	Timestamp int64              `json:"timestamp"`
}

// SessionExpiredPayloadV1 is the typed payload for expired session events
type SessionExpiredPayloadV1 struct {
	PlayerID  string `json:"player_id"`
	Game      string `json:"game"`
	Timestamp int64  `json:"timestamp"`
}

// Type-safe event constructors

// NewRoundSettledEvent creates a new round settled event with type-safe payload
func NewRoundSettledEvent(result domain.RoundResult) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RoundSettled,
		Payload: RoundSettledPayloadV1{
			Result:    result,
			Timestamp: time.Now().Unix(),
		},
		Metadata: map[string]interface{}{
			"game": result.Game.String(),
		},
	}
}

// NewSessionExpiredEvent creates a new session expired event
func NewSessionExpiredEvent(playerID string, game domain.Game) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SessionExpired,
		Payload: SessionExpiredPayloadV1{
			PlayerID:  playerID,
			Game:      game.String(),
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	// Handlers run synchronously; callers wanting fire-and-forget wrap
	// the bus in a ResilientPublisher.
	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
