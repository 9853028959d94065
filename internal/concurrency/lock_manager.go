package concurrency

import (
	"fmt"
	"sync"
)

// LockManager handles named locks. Game services use it to serialize
// rounds per (player, game): concurrent requests for the same pair run
// one at a time, different pairs proceed independently.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns a mutex for the given key
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// WithLock runs fn while holding the lock for key.
func (lm *LockManager) WithLock(key string, fn func() error) error {
	lock := lm.GetLock(key)
	lock.Lock()
	defer lock.Unlock()
	return fn()
}

// RoundKey builds the lock key serializing one player's rounds of one game.
func RoundKey(playerID, game string) string {
	return fmt.Sprintf("round:%s:%s", playerID, game)
}

// ScoreKey builds the lock key serializing best-score updates for one
// player's game. Kept distinct from RoundKey so score recording never
// queues behind an open round.
func ScoreKey(playerID, game string) string {
	return fmt.Sprintf("score:%s:%s", playerID, game)
}
