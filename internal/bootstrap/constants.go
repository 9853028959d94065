package bootstrap

import "time"

// File system permissions
const (
	DirPermission     = 0755
	LogFilePermission = 0666
)

// Logger configuration
const (
	// DefaultLogDir is where session log files are written
	DefaultLogDir = "logs"

	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionLimit is the maximum number of log files to keep
	LogFileRetentionLimit = 10

	// LogFileRetentionCount is the number of log files to retain after cleanup
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting casino service"
	LogMsgConfigurationLoaded = "Configuration loaded"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// Database pool tuning
const (
	// DBMaxConnIdleTime is how long an idle connection is kept before being closed
	DBMaxConnIdleTime = 5 * time.Minute

	// DBMaxConnLifetime is the maximum lifetime of a pooled connection
	DBMaxConnLifetime = 30 * time.Minute
)

// Log messages for repository and event system initialization
const (
	LogMsgRepositoriesInitialized        = "Repositories initialized"
	LogMsgEventSystemInitialized         = "Event system initialized"
	LogMsgMetricsCollectorRegistered     = "Metrics collector registered"
	LogMsgSessionStoreInitialized        = "Session store initialized"
	ErrMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	ErrMsgFailedCreateDeadLetterWriter   = "failed to open dead-letter file"
	ErrMsgFailedRegisterMetricsCollector = "failed to register metrics collector"
	ErrMsgFailedPingRedis                = "failed to ping redis"
	ErrMsgUnknownSessionBackend          = "unknown session backend"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgCleanupWorkerStopFailed    = "Session cleanup worker shutdown failed"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
	LogMsgRedisCloseFailed           = "Redis client close failed"
)
