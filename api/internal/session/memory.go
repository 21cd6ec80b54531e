package session

import (
	"context"
	"sync"

	"slider-bot/api/internal/flow"
)

type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[int64]*flow.Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[int64]*flow.Session)}
}

func (m *MemoryStore) Get(ctx context.Context, chatID int64) (*flow.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[chatID], nil
}

func (m *MemoryStore) Put(ctx context.Context, chatID int64, s *flow.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[chatID] = s
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, chatID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, chatID)
	return nil
}
