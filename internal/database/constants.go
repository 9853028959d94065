package database

const (
	// DefaultMinConnections is kept warm in the pool so the first spin
	// after an idle period does not pay connection setup latency.
	DefaultMinConnections = 2
)

// Error messages
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
)

// Log messages
const (
	LogMsgConnectedToDatabase = "Connected to database"
)
