// Package store persists small named blobs such as the preferences record.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/apimgr/searchconv/src/database"
)

// Backend names accepted in configuration.
const (
	BackendMemory = "memory"
	BackendSQL    = "sql"
	BackendRedis  = "redis"
)

// Store is the interface for blob store implementations
type Store interface {
	// Get returns the value for key, or model.ErrNotFound
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores a value, replacing any previous one
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes a value; deleting a missing key is not an error
	Delete(ctx context.Context, key string) error
	// Ping checks backend connectivity
	Ping(ctx context.Context) error
	// Close releases the backend connection
	Close() error
	// Backend returns the backend name
	Backend() string
}

// Config holds store configuration
type Config struct {
	Backend string      `yaml:"backend" mapstructure:"backend"` // memory, sql, redis
	Redis   RedisConfig `yaml:"redis" mapstructure:"redis"`
}

// DefaultConfig returns default store configuration
func DefaultConfig() *Config {
	return &Config{
		Backend: BackendSQL,
		Redis:   *DefaultRedisConfig(),
	}
}

// New creates a store based on configuration. db is required for the sql
// backend and ignored otherwise.
func New(ctx context.Context, cfg *Config, db *database.DB) (Store, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	switch cfg.Backend {
	case BackendMemory, "":
		return NewMemoryStore(), nil
	case BackendSQL:
		if db == nil {
			return nil, fmt.Errorf("sql store requires a database")
		}
		return NewSQLStore(db), nil
	case BackendRedis:
		return NewRedisStore(ctx, &cfg.Redis)
	default:
		return nil, fmt.Errorf("unsupported store backend: %s (supported: memory, sql, redis)", cfg.Backend)
	}
}

// GetJSON retrieves and unmarshals a JSON value
func GetJSON(ctx context.Context, s Store, key string, v any) error {
	data, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// SetJSON marshals and stores a JSON value
func SetJSON(ctx context.Context, s Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, data)
}
