package worker

import "time"

// Pool defaults
const (
	DefaultWorkers   = 2
	DefaultQueueSize = 64
)

// Session cleanup defaults
const (
	DefaultSweepInterval = 15 * time.Second
	DefaultMaxIdle       = 60 * time.Second
)

// Log messages
const (
	LogMsgWorkerJobFailed      = "Worker job failed"
	LogMsgSessionSweepStarted  = "Session cleanup sweep started"
	LogMsgSessionExpired       = "Expired abandoned session"
	LogMsgSessionDeleteFailed  = "Failed to delete expired session"
	LogMsgCleanupShutdown      = "Session cleanup worker shutting down"
	LogMsgCleanupShutdownDone  = "Session cleanup worker shutdown complete"
	LogMsgCleanupShutdownSlow  = "Session cleanup worker shutdown timeout"
)
