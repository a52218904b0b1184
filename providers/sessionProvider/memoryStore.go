package sessionprovider

import (
	"assetconsole/models"
	"context"
	"sync"
)

// MemoryStore keeps the session for the lifetime of the process.
type MemoryStore struct {
	mu      sync.RWMutex
	session models.Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) CurrentToken(ctx context.Context) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session.Token, m.session.Token != "", nil
}

func (m *MemoryStore) CurrentUser(ctx context.Context) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.session.User == nil {
		return nil, nil
	}
	u := *m.session.User
	return &u, nil
}

func (m *MemoryStore) Save(ctx context.Context, session models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if session.User != nil {
		u := *session.User
		session.User = &u
	}
	m.session = session
	return nil
}

func (m *MemoryStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = models.Session{}
	return nil
}
