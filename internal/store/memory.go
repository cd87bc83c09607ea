package store

import (
	"context"
	"sync"

	"github.com/mtorelli/linknest/internal/models"
)

// MemoryStore is the default store: a guarded map. The lock only protects the
// map itself; each session is touched by one request at a time.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*models.SessionState
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*models.SessionState)}
}

func (m *MemoryStore) Get(_ context.Context, sessionID string) (*models.SessionState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

func (m *MemoryStore) Put(_ context.Context, s *models.SessionState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.SessionID] = s
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
	return nil
}
