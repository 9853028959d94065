package session

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/domain"
)

// storedEntry wraps a session with version metadata for invalidation
type storedEntry struct {
	Version  string                `json:"version"`
	Session  *domain.PlayerSession `json:"session"`
	StoredAt time.Time             `json:"stored_at"`
}

// MemoryStore keeps sessions in an in-process LRU with time-based
// expiration. Abandoned blackjack rounds age out after the TTL instead
// of pinning memory forever.
type MemoryStore struct {
	lru *expirable.LRU[string, *storedEntry]
}

// NewMemoryStore creates a memory-backed session store.
// size: maximum number of concurrent sessions
// ttl: time-to-live for abandoned sessions
func NewMemoryStore(size int, ttl time.Duration) *MemoryStore {
	if size <= 0 {
		size = DefaultMaxSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		lru: expirable.NewLRU[string, *storedEntry](size, nil, ttl),
	}
}

// Get retrieves a player's session.
// Returns (nil, nil) if absent, expired, or stored under an old schema version.
func (s *MemoryStore) Get(_ context.Context, playerID string) (*domain.PlayerSession, error) {
	entry, found := s.lru.Get(playerID)
	if !found {
		return nil, nil
	}

	// Auto-invalidate on version mismatch
	if entry.Version != SchemaVersion {
		s.lru.Remove(playerID)
		return nil, nil
	}

	return entry.Session, nil
}

// Put stores a session, resetting its TTL.
func (s *MemoryStore) Put(_ context.Context, session *domain.PlayerSession) error {
	entry := &storedEntry{
		Version:  SchemaVersion,
		Session:  session,
		StoredAt: time.Now(),
	}
	s.lru.Add(session.PlayerID, entry)
	return nil
}

// Delete removes a player's session.
func (s *MemoryStore) Delete(_ context.Context, playerID string) error {
	s.lru.Remove(playerID)
	return nil
}

// Len returns the number of live sessions. Used by the cleanup worker
// for gauge reporting.
func (s *MemoryStore) Len() int {
	return s.lru.Len()
}

// Sessions returns a snapshot of live sessions for the cleanup sweep.
func (s *MemoryStore) Sessions() []*domain.PlayerSession {
	entries := s.lru.Values()
	out := make([]*domain.PlayerSession, 0, len(entries))
	for _, entry := range entries {
		if entry.Version == SchemaVersion {
			out = append(out, entry.Session)
		}
	}
	return out
}
