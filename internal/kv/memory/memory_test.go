package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/goleak"

	"blog-backend/internal/kv"
	"blog-backend/internal/kv/kvtest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestMemoryStore(t *testing.T) {
	factory := func(t *testing.T) kv.Store {
		return New(0)
	}

	kvtest.RunConformanceTests(t, factory)
}

func TestMemoryStoreWithJanitor(t *testing.T) {
	store := New(10 * time.Millisecond)
	defer store.Close()

	ctx := context.Background()
	if err := store.Set(ctx, "test:janitor", []byte("v"), 20*time.Millisecond); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	time.Sleep(60 * time.Millisecond)

	store.mu.RLock()
	_, present := store.entries["test:janitor"]
	store.mu.RUnlock()
	if present {
		t.Fatal("expected janitor to evict expired key")
	}
}

func TestMemoryStore_ValuesAreCopied(t *testing.T) {
	store := New(0)
	defer store.Close()

	ctx := context.Background()
	buf := []byte("abc")
	_ = store.Set(ctx, "k", buf)
	buf[0] = 'x'

	got, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != "abc" {
		t.Errorf("Get = %q, stored value must not alias the caller's slice", got)
	}
}

func TestNewStoreFromConfig(t *testing.T) {
	store, err := kv.NewStoreFromConfig(kv.Config{Backend: kv.BackendMemory, JanitorInterval: time.Hour})
	if err != nil {
		t.Fatalf("NewStoreFromConfig failed: %v", err)
	}
	defer store.Close()

	if _, ok := store.(*Store); !ok {
		t.Errorf("store type = %T, want *memory.Store", store)
	}

	_, err = kv.NewStoreFromConfig(kv.Config{Backend: "etcd"})
	if err == nil {
		t.Error("unsupported backend should fail")
	}
	if errors.Is(err, kv.ErrNotFound) {
		t.Error("unexpected sentinel")
	}
}

func TestClose_Idempotent(t *testing.T) {
	store := New(time.Millisecond)
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}
}
