package event

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockBus is a test double for event.Bus
type mockBus struct {
	mu         sync.Mutex
	calls      []Event
	shouldFail func(attempt int) bool
}

func (m *mockBus) Publish(ctx context.Context, event Event) error {
	m.mu.Lock()
	m.calls = append(m.calls, event)
	callCount := len(m.calls)
	m.mu.Unlock()

	if m.shouldFail != nil && m.shouldFail(callCount) {
		return errors.New("mock publish error")
	}
	return nil
}

func (m *mockBus) Subscribe(eventType Type, handler Handler) {
	// Not used in these tests
}

func (m *mockBus) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func newTestPublisher(t *testing.T, bus Bus, maxRetries int) (*ResilientPublisher, string) {
	t.Helper()
	path := t.TempDir() + "/deadletter.jsonl"
	dlw, err := NewDeadLetterWriter(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = dlw.Close() })

	rp := NewResilientPublisher(bus, ResilientConfig{
		MaxRetries: maxRetries,
		RetryDelay: 10 * time.Millisecond,
		DeadLetter: dlw,
	})
	return rp, path
}

func TestResilientPublisher_SuccessfulPublish(t *testing.T) {
	bus := &mockBus{}
	rp, path := newTestPublisher(t, bus, 3)

	err := rp.Publish(context.Background(), Event{Type: Type("test_event")})
	require.NoError(t, err)
	require.NoError(t, rp.Shutdown(context.Background()))

	assert.Equal(t, 1, bus.CallCount(), "Event should be published once")

	content, _ := os.ReadFile(path)
	assert.Empty(t, content, "No dead-letter entries expected")
}

func TestResilientPublisher_RetrySuccess(t *testing.T) {
	// Bus fails on first attempt, succeeds on second
	bus := &mockBus{
		shouldFail: func(attempt int) bool {
			return attempt == 1
		},
	}
	rp, path := newTestPublisher(t, bus, 3)

	err := rp.Publish(context.Background(), Event{Type: Type("test_event")})
	require.NoError(t, err, "Publish should not surface the transient failure")

	require.NoError(t, rp.Shutdown(context.Background()))

	assert.Equal(t, 2, bus.CallCount(), "One initial attempt plus one retry")

	content, _ := os.ReadFile(path)
	assert.Empty(t, content, "Recovered events must not be dead-lettered")
}

func TestResilientPublisher_ExhaustedRetriesDeadLetter(t *testing.T) {
	bus := &mockBus{
		shouldFail: func(attempt int) bool { return true },
	}
	rp, path := newTestPublisher(t, bus, 2)

	evt := Event{Version: "1.0", Type: Type("doomed_event"), Payload: map[string]interface{}{"k": "v"}}
	err := rp.Publish(context.Background(), evt)
	require.NoError(t, err)

	require.NoError(t, rp.Shutdown(context.Background()))

	assert.Equal(t, 3, bus.CallCount(), "One initial attempt plus two retries")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, content, "Exhausted event must be dead-lettered")

	var entry DeadLetterEntry
	require.NoError(t, json.Unmarshal(content, &entry))
	assert.Equal(t, DeadLetterSchemaVersion, entry.SchemaVersion)
	assert.Equal(t, Type("doomed_event"), entry.Event.Type)
	assert.Equal(t, 2, entry.Attempts)
	assert.Contains(t, entry.LastError, "mock publish error")
}

// blockingBus holds every Publish until released, standing in for a
// slow persistence pipeline behind the bus.
type blockingBus struct {
	mu      sync.Mutex
	calls   int
	release chan struct{}
}

func (b *blockingBus) Publish(ctx context.Context, event Event) error {
	<-b.release
	b.mu.Lock()
	b.calls++
	b.mu.Unlock()
	return nil
}

func (b *blockingBus) Subscribe(eventType Type, handler Handler) {}

func (b *blockingBus) CallCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls
}

func TestResilientPublisher_PublishReturnsBeforeDelivery(t *testing.T) {
	bus := &blockingBus{release: make(chan struct{})}
	rp := NewResilientPublisher(bus, ResilientConfig{
		MaxRetries: 1,
		RetryDelay: time.Millisecond,
	})

	returned := make(chan struct{})
	go func() {
		assert.NoError(t, rp.Publish(context.Background(), Event{Type: Type("slow_event")}))
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a slow bus")
	}

	assert.Equal(t, 0, bus.CallCount(), "Delivery must still be pending when Publish returns")

	close(bus.release)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, rp.Shutdown(ctx))
	assert.Equal(t, 1, bus.CallCount())
}

func TestResilientPublisher_ShutdownTimeout(t *testing.T) {
	bus := &mockBus{
		shouldFail: func(attempt int) bool { return true },
	}

	rp := NewResilientPublisher(bus, ResilientConfig{
		MaxRetries: 5,
		RetryDelay: 200 * time.Millisecond,
	})

	require.NoError(t, rp.Publish(context.Background(), Event{Type: Type("slow_event")}))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := rp.Shutdown(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
