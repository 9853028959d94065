package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/config"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/event"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/metrics"
)

// InitializeEventSystem creates the in-process event bus and the resilient
// publisher game services emit settled rounds through. Exhausted retries land
// in the dead-letter file so no round result is silently lost. The metrics
// collector is subscribed here so every published event is counted.
// Returns the bus, the publisher, and the dead-letter writer (caller closes).
func InitializeEventSystem(cfg *config.Config) (event.Bus, *event.ResilientPublisher, *event.DeadLetterWriter, error) {
	eventBus := event.NewMemoryBus()

	if err := os.MkdirAll(filepath.Dir(cfg.DeadLetterPath), DirPermission); err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDeadLetterDir, err)
	}

	deadLetter, err := event.NewDeadLetterWriter(cfg.DeadLetterPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDeadLetterWriter, err)
	}

	publisher := event.NewResilientPublisher(eventBus, event.ResilientConfig{
		MaxRetries: cfg.EventMaxRetries,
		RetryDelay: cfg.EventRetryDelay,
		DeadLetter: deadLetter,
	})

	collector := metrics.NewEventMetricsCollector()
	if err := collector.Register(eventBus); err != nil {
		deadLetter.Close()
		return nil, nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetricsCollector, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", cfg.EventMaxRetries,
		"retry_delay", cfg.EventRetryDelay,
		"deadletter_path", cfg.DeadLetterPath)

	return eventBus, publisher, deadLetter, nil
}
