package session

import (
	"sync"
	"time"

	"blog-backend/internal/gateway"
	"blog-backend/internal/kv"
	"blog-backend/internal/metrics"
)

const keyPrefix = "session:"

// RegistryOptions configures a Registry.
type RegistryOptions struct {
	// TTL is how long a gateway session is persisted after its last save.
	TTL time.Duration
	// IdleTimeout closes stores not used for this long. Their sessions stay
	// persisted and are picked up again on the next request. Zero disables
	// eviction.
	IdleTimeout time.Duration
}

type entry struct {
	store    *Store
	lastUsed time.Time
}

// Registry hands out one Store per browser session id. Gateway sessions are
// persisted in a kv.Store so a Store can be rebuilt after eviction or a
// restart.
type Registry struct {
	connector gateway.Connector
	kv        kv.Store
	deps      Deps
	opts      RegistryOptions
	now       func() time.Time

	mu      sync.Mutex
	stores  map[string]*entry
	closed  bool
	stop    chan struct{}
	stopped chan struct{}
}

// NewRegistry creates a Registry and starts idle eviction when enabled.
func NewRegistry(connector gateway.Connector, store kv.Store, deps Deps, opts RegistryOptions) *Registry {
	r := &Registry{
		connector: connector,
		kv:        store,
		deps:      deps,
		opts:      opts,
		now:       time.Now,
		stores:    make(map[string]*entry),
		stop:      make(chan struct{}),
		stopped:   make(chan struct{}),
	}
	if opts.IdleTimeout > 0 {
		go r.evictLoop()
	} else {
		close(r.stopped)
	}
	return r
}

// Get returns the Store of sessionID, creating it on first use. It returns
// nil after Close.
func (r *Registry) Get(sessionID string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}

	if e, ok := r.stores[sessionID]; ok {
		e.lastUsed = r.now()
		return e.store
	}

	persistence := gateway.NewKVPersistence(r.kv, keyPrefix+sessionID, r.opts.TTL)
	s := NewStore(r.connector.Connect(persistence), r.deps)
	r.stores[sessionID] = &entry{store: s, lastUsed: r.now()}
	metrics.ActiveSessions.Set(float64(len(r.stores)))
	return s
}

// Drop closes and forgets the Store of sessionID.
func (r *Registry) Drop(sessionID string) {
	r.mu.Lock()
	e, ok := r.stores[sessionID]
	delete(r.stores, sessionID)
	metrics.ActiveSessions.Set(float64(len(r.stores)))
	r.mu.Unlock()
	if ok {
		_ = e.store.Close()
	}
}

// Len reports how many stores are open.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.stores)
}

func (r *Registry) evictLoop() {
	defer close(r.stopped)
	interval := r.opts.IdleTimeout / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.evictIdle(r.now())
		case <-r.stop:
			return
		}
	}
}

// evictIdle closes the stores unused since before now minus IdleTimeout.
func (r *Registry) evictIdle(now time.Time) int {
	var idle []*Store
	r.mu.Lock()
	for id, e := range r.stores {
		if now.Sub(e.lastUsed) > r.opts.IdleTimeout {
			idle = append(idle, e.store)
			delete(r.stores, id)
		}
	}
	metrics.ActiveSessions.Set(float64(len(r.stores)))
	r.mu.Unlock()

	for _, s := range idle {
		_ = s.Close()
	}
	return len(idle)
}

// Close stops eviction and closes every store.
func (r *Registry) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	stores := r.stores
	r.stores = make(map[string]*entry)
	r.mu.Unlock()

	close(r.stop)
	<-r.stopped
	for _, e := range stores {
		_ = e.store.Close()
	}
	metrics.ActiveSessions.Set(0)
}
