package cache

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/Calebyte11/Boqbox-landing/internal/usecase"
)

// MemorySessionStore is the in-process store used by tests and local
// runs without Redis. Sessions round-trip through JSON so it exercises
// the same encoding the Redis store does.
type MemorySessionStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{data: map[string][]byte{}}
}

func (s *MemorySessionStore) Get(_ context.Context, id string) (*usecase.FlowSession, error) {
	s.mu.RLock()
	raw, ok := s.data[id]
	s.mu.RUnlock()
	if !ok {
		return nil, usecase.ErrSessionNotFound
	}
	var sess usecase.FlowSession
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *MemorySessionStore) Put(_ context.Context, sess *usecase.FlowSession) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data[sess.ID] = raw
	s.mu.Unlock()
	return nil
}

func (s *MemorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.data, id)
	s.mu.Unlock()
	return nil
}

var _ usecase.SessionStore = (*MemorySessionStore)(nil)
