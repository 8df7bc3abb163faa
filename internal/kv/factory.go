package kv

import (
	"fmt"
	"sync"
	"time"
)

// Backend represents the storage backend type
type Backend string

const (
	// BackendMemory uses the in-memory store
	BackendMemory Backend = "memory"
	// BackendRedis uses Redis as the backend
	BackendRedis Backend = "redis"
)

// Config holds configuration for creating a Store instance
type Config struct {
	Backend Backend

	// RedisURL is required when Backend is "redis".
	// Format: redis://localhost:6379/0 or redis://:password@localhost:6379/1
	RedisURL string

	// JanitorInterval controls how often the in-memory store evicts expired keys.
	// Default: 30 seconds
	JanitorInterval time.Duration
}

// StoreFactory defines a function that creates a Store instance
type StoreFactory func(cfg Config) (Store, error)

var (
	factoriesMu sync.RWMutex
	factories   = make(map[Backend]StoreFactory)
)

// RegisterBackend registers a store factory for a given backend
func RegisterBackend(backend Backend, factory StoreFactory) {
	factoriesMu.Lock()
	defer factoriesMu.Unlock()
	factories[backend] = factory
}

// NewStoreFromConfig creates a new Store instance based on the provided configuration.
// The backend package must be imported for its factory to be registered.
func NewStoreFromConfig(cfg Config) (Store, error) {
	if cfg.JanitorInterval == 0 {
		cfg.JanitorInterval = 30 * time.Second
	}

	factoriesMu.RLock()
	factory, ok := factories[cfg.Backend]
	factoriesMu.RUnlock()
	if !ok {
		switch cfg.Backend {
		case BackendMemory, BackendRedis:
			return nil, fmt.Errorf("%s backend not registered", cfg.Backend)
		default:
			return nil, fmt.Errorf("unsupported backend: %s (supported: %s, %s)",
				cfg.Backend, BackendMemory, BackendRedis)
		}
	}
	return factory(cfg)
}
