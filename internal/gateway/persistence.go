package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"blog-backend/internal/domain"
	"blog-backend/internal/kv"
)

// KVPersistence stores one browser's session as JSON under a kv key.
type KVPersistence struct {
	store kv.Store
	key   string
	ttl   time.Duration
}

// NewKVPersistence persists the session under key, expiring after ttl.
func NewKVPersistence(store kv.Store, key string, ttl time.Duration) *KVPersistence {
	return &KVPersistence{store: store, key: key, ttl: ttl}
}

func (p *KVPersistence) Load(ctx context.Context) (*domain.Session, error) {
	raw, err := p.store.Get(ctx, p.key)
	if errors.Is(err, kv.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var s domain.Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &s, nil
}

func (p *KVPersistence) Save(ctx context.Context, session *domain.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return p.store.Set(ctx, p.key, raw, p.ttl)
}

func (p *KVPersistence) Clear(ctx context.Context) error {
	_, err := p.store.Del(ctx, p.key)
	return err
}

// MemoryPersistence keeps a session in process memory.
type MemoryPersistence struct {
	mu      sync.Mutex
	session *domain.Session
}

func (p *MemoryPersistence) Load(ctx context.Context) (*domain.Session, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.session == nil {
		return nil, nil
	}
	s := *p.session
	return &s, nil
}

func (p *MemoryPersistence) Save(ctx context.Context, session *domain.Session) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	s := *session
	p.session = &s
	return nil
}

func (p *MemoryPersistence) Clear(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.session = nil
	return nil
}
