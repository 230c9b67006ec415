package kvstore

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"hotel-portal/internal/infra"
	"hotel-portal/internal/pkg/clock"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryStore is a process-local Store. Expired entries are dropped lazily.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	clock   clock.Clock
	ns      string
	logger  *slog.Logger
}

func NewMemoryStore(clk clock.Clock, namespace string, logger *slog.Logger) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		clock:   clk,
		ns:      namespace,
		logger:  logger,
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	k := namespaced(s.ns, key)
	s.mu.RLock()
	e, ok := s.entries[k]
	s.mu.RUnlock()
	if !ok {
		return nil, infra.WrapStoreErr(s.logger, infra.KindNotFound, "key not found", nil)
	}
	if !e.expiresAt.IsZero() && !s.clock.Now().Before(e.expiresAt) {
		s.mu.Lock()
		if cur, ok := s.entries[k]; ok && cur.expiresAt.Equal(e.expiresAt) {
			delete(s.entries, k)
		}
		s.mu.Unlock()
		return nil, infra.WrapStoreErr(s.logger, infra.KindNotFound, "key expired", nil)
	}
	out := make([]byte, len(e.value))
	copy(out, e.value)
	return out, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	e := memoryEntry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		e.expiresAt = s.clock.Now().Add(ttl)
	}
	s.mu.Lock()
	s.entries[namespaced(s.ns, key)] = e
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.entries, namespaced(s.ns, key))
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
