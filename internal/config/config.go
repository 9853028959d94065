package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string // "text" or "json"
	Environment string // "dev" or "prod"

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	DBMaxConns int

	APIKey         string // API key for authentication
	TrustedProxies []string

	// Session store
	SessionBackend       string // "memory" or "redis"
	RedisAddr            string
	SessionTTL           time.Duration
	SessionSweepInterval time.Duration

	// Event pipeline
	EventMaxRetries int
	EventRetryDelay time.Duration
	DeadLetterPath  string

	// Game behavior
	DiceUnknownBetPolicy string // "fallback" or "reject"
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),

		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", "casino"),

		APIKey: getEnv("API_KEY", ""),

		SessionBackend: getEnv("SESSION_BACKEND", SessionBackendMemory),
		RedisAddr:      getEnv("REDIS_ADDR", DefaultRedisAddr),

		DeadLetterPath: getEnv("DEAD_LETTER_PATH", DefaultDeadLetterPath),

		DiceUnknownBetPolicy: getEnv("DICE_UNKNOWN_BET_POLICY", DicePolicyFallback),
	}

	var err error
	if cfg.Port, err = getEnvInt("PORT", DefaultPort); err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	if cfg.DBMaxConns, err = getEnvInt("DB_MAX_CONNS", DefaultDBMaxConns); err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS value: %w", err)
	}
	if cfg.EventMaxRetries, err = getEnvInt("EVENT_MAX_RETRIES", DefaultEventRetries); err != nil {
		return nil, fmt.Errorf("invalid EVENT_MAX_RETRIES value: %w", err)
	}
	if cfg.SessionTTL, err = getEnvDuration("SESSION_TTL", DefaultSessionTTL); err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL value: %w", err)
	}
	if cfg.SessionSweepInterval, err = getEnvDuration("SESSION_SWEEP_INTERVAL", DefaultSweepInterval); err != nil {
		return nil, fmt.Errorf("invalid SESSION_SWEEP_INTERVAL value: %w", err)
	}
	if cfg.EventRetryDelay, err = getEnvDuration("EVENT_RETRY_DELAY", DefaultEventRetryBase); err != nil {
		return nil, fmt.Errorf("invalid EVENT_RETRY_DELAY value: %w", err)
	}

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	switch cfg.SessionBackend {
	case SessionBackendMemory, SessionBackendRedis:
	default:
		return nil, fmt.Errorf("invalid SESSION_BACKEND value %q", cfg.SessionBackend)
	}

	switch cfg.DiceUnknownBetPolicy {
	case DicePolicyFallback, DicePolicyReject:
	default:
		return nil, fmt.Errorf("invalid DICE_UNKNOWN_BET_POLICY value %q", cfg.DiceUnknownBetPolicy)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	return strconv.Atoi(value)
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	return time.ParseDuration(value)
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
