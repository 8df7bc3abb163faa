// Package kv is a small key-value abstraction used to persist browser
// sessions. Backends register themselves from their own packages.
package kv

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a key does not exist or has expired.
var ErrNotFound = errors.New("not found")

// ErrBackendUnavailable is returned when the backend storage is unavailable.
var ErrBackendUnavailable = errors.New("backend unavailable")

// Store defines the operations session persistence needs.
type Store interface {
	Set(ctx context.Context, key string, value []byte, ttl ...time.Duration) error
	Get(ctx context.Context, key string) ([]byte, error)
	Del(ctx context.Context, keys ...string) (int64, error)
	Expire(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// Health check
	Ping(ctx context.Context) error

	// Cleanup
	Close() error
}
