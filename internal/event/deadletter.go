package event

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/logger"
)

// DeadLetterSchemaVersion is bumped when DeadLetterEntry changes shape,
// so replay tooling can tell old lines from new ones.
const DeadLetterSchemaVersion = "1.0"

// DeadLetterEntry is one JSONL line: an event that exhausted its
// publish retries, with enough context to replay it by hand.
type DeadLetterEntry struct {
	SchemaVersion string    `json:"schema_version"`
	Timestamp     time.Time `json:"timestamp"`
	Event         Event     `json:"event"`
	Attempts      int       `json:"attempts"`
	LastError     string    `json:"last_error,omitempty"`
}

// DeadLetterWriter appends exhausted events to a JSONL file. Settled
// rounds that could not reach the scoring pipeline land here instead of
// vanishing.
type DeadLetterWriter struct {
	mu   sync.Mutex
	file *os.File
}

// NewDeadLetterWriter opens (or creates) the dead-letter file for append.
func NewDeadLetterWriter(path string) (*DeadLetterWriter, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, DeadLetterFilePermissions)
	if err != nil {
		return nil, fmt.Errorf("open dead-letter file %s: %w", path, err)
	}
	return &DeadLetterWriter{file: f}, nil
}

// Write records one exhausted event as a JSONL line.
func (w *DeadLetterWriter) Write(evt Event, attempts int, lastError error) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	entry := DeadLetterEntry{
		SchemaVersion: DeadLetterSchemaVersion,
		Timestamp:     time.Now(),
		Event:         evt,
		Attempts:      attempts,
	}
	if lastError != nil {
		entry.LastError = lastError.Error()
	}

	logger.Warn("event_dead_lettered",
		"event_type", evt.Type,
		"attempts", attempts,
		"error", entry.LastError)

	line, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal dead-letter entry: %w", err)
	}
	_, err = w.file.Write(append(line, '\n'))
	return err
}

// Close closes the underlying file.
func (w *DeadLetterWriter) Close() error {
	return w.file.Close()
}
