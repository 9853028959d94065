package session

import (
	"context"

	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/domain"
)

// Store persists in-flight round sessions keyed by player ID.
// A player holds at most one session at a time. Get returns (nil, nil)
// when no session exists; expired sessions are treated as absent.
type Store interface {
	Get(ctx context.Context, playerID string) (*domain.PlayerSession, error)
	Put(ctx context.Context, session *domain.PlayerSession) error
	Delete(ctx context.Context, playerID string) error
}
