package event

import (
	"context"
	"sync"
	"time"

	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/logger"
)

// ResilientConfig configures the ResilientPublisher
type ResilientConfig struct {
	MaxRetries int
	RetryDelay time.Duration
	DeadLetter *DeadLetterWriter // optional; exhausted events are dropped with a log when nil
}

// ResilientPublisher wraps an Event Bus to add retry logic and dead-letter queuing.
// Game services publish settled rounds through it: a slow or failing
// persistence pipeline never delays the HTTP response.
type ResilientPublisher struct {
	inner  Bus
	config ResilientConfig
	wg     sync.WaitGroup
}

// NewResilientPublisher creates a new ResilientPublisher
func NewResilientPublisher(inner Bus, config ResilientConfig) *ResilientPublisher {
	if config.MaxRetries <= 0 {
		config.MaxRetries = RetryMaxAttempts
	}
	if config.RetryDelay <= 0 {
		config.RetryDelay = RetryInitialDelay
	}
	return &ResilientPublisher{
		inner:  inner,
		config: config,
	}
}

// Publish accepts the event and returns immediately; delivery runs on a
// background goroutine, so callers never wait on the bus or its
// subscribers. Failed deliveries are retried with backoff and
// dead-lettered once retries are exhausted.
func (p *ResilientPublisher) Publish(_ context.Context, event Event) error {
	p.wg.Add(1)
	go p.deliver(event)
	return nil
}

func (p *ResilientPublisher) deliver(event Event) {
	defer p.wg.Done()

	// Detached context: the originating request context may already be
	// cancelled by the time delivery runs.
	ctx := context.Background()

	firstErr := p.inner.Publish(ctx, event)
	if firstErr == nil {
		return
	}

	logger.Warn(LogMsgEventPublishFailed,
		"event_type", event.Type,
		"error", firstErr,
		"retries", p.config.MaxRetries)

	lastErr := firstErr
	for attempt := 1; attempt <= p.config.MaxRetries; attempt++ {
		time.Sleep(CalculateRetryDelay(p.config.RetryDelay, attempt))

		err := p.inner.Publish(ctx, event)
		if err == nil {
			logger.Info(LogMsgEventRetrySucceeded,
				"event_type", event.Type,
				"attempt", attempt)
			return
		}

		lastErr = err
		logger.Warn(LogMsgEventRetryFailed,
			"event_type", event.Type,
			"attempt", attempt,
			"error", err)
	}

	logger.Error(LogMsgEventRetryExhausted,
		"event_type", event.Type,
		"attempts", p.config.MaxRetries,
		"error", lastErr)

	if p.config.DeadLetter != nil {
		if err := p.config.DeadLetter.Write(event, p.config.MaxRetries, lastErr); err != nil {
			logger.Error("Failed to write to dead letter file", "error", err)
		}
	}
}

// Shutdown waits for in-flight deliveries to finish or the context to expire.
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		logger.Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}
