// Package kvtest provides conformance tests for kv.Store implementations
package kvtest

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"blog-backend/internal/kv"
)

// StoreFactory creates a fresh Store instance for testing
type StoreFactory func(t *testing.T) kv.Store

// RunConformanceTests runs all conformance tests against a Store implementation
func RunConformanceTests(t *testing.T, factory StoreFactory) {
	tests := []struct {
		name string
		test func(t *testing.T, store kv.Store)
	}{
		{"SetGet", testSetGet},
		{"GetNonExistent", testGetNonExistent},
		{"Overwrite", testOverwrite},
		{"Del", testDel},
		{"TTLExpiry", testTTLExpiry},
		{"Expire", testExpire},
		{"Ping", testPing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := factory(t)
			defer store.Close()
			tt.test(t, store)
		})
	}
}

func testSetGet(t *testing.T, store kv.Store) {
	ctx := context.Background()
	if err := store.Set(ctx, "test:setget", []byte("value")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, err := store.Get(ctx, "test:setget")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !bytes.Equal(got, []byte("value")) {
		t.Errorf("Get = %q, want %q", got, "value")
	}
}

func testGetNonExistent(t *testing.T, store kv.Store) {
	_, err := store.Get(context.Background(), "test:missing")
	if !errors.Is(err, kv.ErrNotFound) {
		t.Errorf("Get missing key error = %v, want ErrNotFound", err)
	}
}

func testOverwrite(t *testing.T, store kv.Store) {
	ctx := context.Background()
	_ = store.Set(ctx, "test:overwrite", []byte("one"))
	_ = store.Set(ctx, "test:overwrite", []byte("two"))
	got, err := store.Get(ctx, "test:overwrite")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != "two" {
		t.Errorf("Get = %q, want two", got)
	}
}

func testDel(t *testing.T, store kv.Store) {
	ctx := context.Background()
	_ = store.Set(ctx, "test:del:a", []byte("a"))
	_ = store.Set(ctx, "test:del:b", []byte("b"))

	n, err := store.Del(ctx, "test:del:a", "test:del:b", "test:del:c")
	if err != nil {
		t.Fatalf("Del failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Del = %d, want 2", n)
	}
	if _, err := store.Get(ctx, "test:del:a"); !errors.Is(err, kv.ErrNotFound) {
		t.Errorf("deleted key still readable: %v", err)
	}
}

func testTTLExpiry(t *testing.T, store kv.Store) {
	ctx := context.Background()
	if err := store.Set(ctx, "test:ttl", []byte("v"), 50*time.Millisecond); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, err := store.Get(ctx, "test:ttl"); err != nil {
		t.Fatalf("key should exist before expiry: %v", err)
	}
	time.Sleep(1100 * time.Millisecond)
	if _, err := store.Get(ctx, "test:ttl"); !errors.Is(err, kv.ErrNotFound) {
		t.Errorf("expired key error = %v, want ErrNotFound", err)
	}
}

func testExpire(t *testing.T, store kv.Store) {
	ctx := context.Background()
	ok, err := store.Expire(ctx, "test:expire:missing", time.Minute)
	if err != nil {
		t.Fatalf("Expire failed: %v", err)
	}
	if ok {
		t.Error("Expire on missing key should report false")
	}

	_ = store.Set(ctx, "test:expire", []byte("v"))
	ok, err = store.Expire(ctx, "test:expire", time.Minute)
	if err != nil || !ok {
		t.Errorf("Expire = %v, %v; want true, nil", ok, err)
	}
}

func testPing(t *testing.T, store kv.Store) {
	if err := store.Ping(context.Background()); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
}
