package kvstore

import (
	"context"
	"encoding/json"
	"sync"
)

// Store is a session-scoped key-value store with JSON values. Get reports
// whether the key was present; absent keys are not an error.
type Store interface {
	Get(ctx context.Context, scope, key string, dest any) (bool, error)
	Set(ctx context.Context, scope, key string, value any) error
	Remove(ctx context.Context, scope, key string) error
}

// MemoryStore keeps values in process memory. It backs tests and is the
// fallback when the database is unreachable, in which case nothing survives
// a restart.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]json.RawMessage
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]json.RawMessage)}
}

func memKey(scope, key string) string {
	return scope + "\x00" + key
}

func (s *MemoryStore) Get(ctx context.Context, scope, key string, dest any) (bool, error) {
	s.mu.RLock()
	raw, ok := s.data[memKey(scope, key)]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (s *MemoryStore) Set(ctx context.Context, scope, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data[memKey(scope, key)] = raw
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Remove(ctx context.Context, scope, key string) error {
	s.mu.Lock()
	delete(s.data, memKey(scope, key))
	s.mu.Unlock()
	return nil
}
