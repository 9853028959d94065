package worker

import (
	"context"
	"sync"
	"time"

	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/concurrency"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/domain"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/event"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/logger"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/metrics"
)

// SessionSource is the slice of the session store the cleanup worker
// needs: enumeration, point lookup, deletion and a live count.
type SessionSource interface {
	Sessions() []*domain.PlayerSession
	Get(ctx context.Context, playerID string) (*domain.PlayerSession, error)
	Delete(ctx context.Context, playerID string) error
	Len() int
}

// SessionCleanup periodically sweeps abandoned rounds out of the session
// store. The store's own TTL already evicts silently; the sweep exists so
// expiry is observable, emitting a SessionExpired event per abandoned
// round and keeping the active-sessions gauge current.
type SessionCleanup struct {
	sessions  SessionSource
	publisher *event.ResilientPublisher
	locks     *concurrency.LockManager
	pool      *Pool
	interval  time.Duration
	maxIdle   time.Duration

	quit chan struct{}
	wg   sync.WaitGroup
}

// NewSessionCleanup creates a cleanup worker. locks must be the same
// manager the game services serialize their actions with, so a sweep
// never races an in-flight action on the round it expires. interval is
// the sweep period; maxIdle is how long a round may sit untouched
// before it is treated as abandoned.
func NewSessionCleanup(sessions SessionSource, publisher *event.ResilientPublisher, locks *concurrency.LockManager, interval, maxIdle time.Duration) *SessionCleanup {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	if maxIdle <= 0 {
		maxIdle = DefaultMaxIdle
	}
	return &SessionCleanup{
		sessions:  sessions,
		publisher: publisher,
		locks:     locks,
		pool:      NewPool(1, DefaultQueueSize),
		interval:  interval,
		maxIdle:   maxIdle,
		quit:      make(chan struct{}),
	}
}

// Start begins the periodic sweep
func (c *SessionCleanup) Start() {
	c.pool.Start()
	c.wg.Add(1)
	go c.run()
}

func (c *SessionCleanup) run() {
	defer c.wg.Done()

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.Sweep(context.Background())
		case <-c.quit:
			return
		}
	}
}

// Sweep expires every session idle past maxIdle. Exported so tests and
// shutdown paths can force a pass.
func (c *SessionCleanup) Sweep(ctx context.Context) {
	log := logger.FromContext(ctx)
	now := time.Now()

	sessions := c.sessions.Sessions()
	log.Debug(LogMsgSessionSweepStarted, "live_sessions", len(sessions))

	for _, sess := range sessions {
		if now.Sub(sess.UpdatedAt) < c.maxIdle {
			continue
		}
		c.expire(ctx, sess.PlayerID, sess.Game, now)
	}

	metrics.ActiveSessions.Set(float64(c.sessions.Len()))
}

// expire deletes one candidate under the same per-key lock the game
// actions hold. The session is re-read inside the lock: an action that
// touched the round after enumeration, or already settled it, wins and
// the sweep backs off.
func (c *SessionCleanup) expire(ctx context.Context, playerID string, game domain.Game, now time.Time) {
	log := logger.FromContext(ctx)

	// Expiry failures are logged, never propagated
	_ = c.locks.WithLock(concurrency.RoundKey(playerID, game.String()), func() error {
		sess, err := c.sessions.Get(ctx, playerID)
		if err != nil {
			log.Error(LogMsgSessionDeleteFailed, "player_id", playerID, "error", err)
			return nil
		}
		if sess == nil || now.Sub(sess.UpdatedAt) < c.maxIdle {
			return nil
		}

		if err := c.sessions.Delete(ctx, playerID); err != nil {
			log.Error(LogMsgSessionDeleteFailed, "player_id", playerID, "error", err)
			return nil
		}

		log.Info(LogMsgSessionExpired,
			"player_id", playerID,
			"game", game,
			"idle", now.Sub(sess.UpdatedAt))

		// Publishing happens off the sweep loop so a slow handler
		// cannot stall expiry of the remaining sessions
		c.pool.Enqueue(expiredSessionJob{
			publisher: c.publisher,
			playerID:  playerID,
			game:      game,
		})
		return nil
	})
}

// Stop halts the sweep loop and drains in-flight expiry notifications
func (c *SessionCleanup) Stop(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCleanupShutdown)

	close(c.quit)

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		c.pool.Stop()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgCleanupShutdownDone)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgCleanupShutdownSlow)
		return ctx.Err()
	}
}

// expiredSessionJob publishes the expiry of one abandoned round
type expiredSessionJob struct {
	publisher *event.ResilientPublisher
	playerID  string
	game      domain.Game
}

func (j expiredSessionJob) Process(ctx context.Context) error {
	return j.publisher.Publish(ctx, event.NewSessionExpiredEvent(j.playerID, j.game))
}
