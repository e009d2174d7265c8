package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Sheet    SheetConfig
	Sync     SyncConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// SheetConfig locates the production-tracking workbook.
type SheetConfig struct {
	Path      string
	TabName   string
	HeaderRow int
}

// SyncConfig tunes the synchronization engine.
type SyncConfig struct {
	// FetchTimeout bounds the sheet read, the only unbounded external call.
	FetchTimeout time.Duration
	// ChunkSize is how many jobs share one upsert transaction.
	ChunkSize int
	// RuleSetPath optionally overrides the built-in decision table with a
	// versioned JSON rule set.
	RuleSetPath string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Sheet: SheetConfig{
			Path:      getEnv("SHEET_PATH", ""),
			TabName:   getEnv("SHEET_TAB", "DIBIAA"),
			HeaderRow: getEnvAsInt("SHEET_HEADER_ROW", 1),
		},
		Sync: SyncConfig{
			FetchTimeout: getEnvAsDuration("SYNC_FETCH_TIMEOUT", 2*time.Minute),
			ChunkSize:    getEnvAsInt("SYNC_CHUNK_SIZE", 50),
			RuleSetPath:  getEnv("SYNC_RULESET_PATH", ""),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Sheet.Path == "" {
		return NewAppError("CONFIG_ERROR", "SHEET_PATH is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Sync.ChunkSize < 1 {
		return NewAppError("CONFIG_ERROR", "SYNC_CHUNK_SIZE must be positive", ErrInvalidInput)
	}
	return nil
}
