package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"transport-management-service/internal/domain"
	"transport-management-service/internal/ports"
)

// MemorySessionStore keeps sessions in process memory.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]entry
	clock    func() time.Time
}

type entry struct {
	session  domain.Session
	deadline time.Time
}

var _ ports.SessionStore = (*MemorySessionStore)(nil)

func NewMemorySessionStore(clock func() time.Time) *MemorySessionStore {
	if clock == nil {
		clock = time.Now
	}
	return &MemorySessionStore{sessions: make(map[string]entry), clock: clock}
}

func (m *MemorySessionStore) Save(ctx context.Context, s domain.Session, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.Token == "" {
		return fmt.Errorf("save session: empty token")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.Token] = entry{session: s, deadline: m.clock().Add(ttl)}
	return nil
}

func (m *MemorySessionStore) Get(ctx context.Context, token string) (domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return domain.Session{}, err
	}

	m.mu.RLock()
	e, ok := m.sessions[token]
	m.mu.RUnlock()

	if !ok {
		return domain.Session{}, domain.ErrSessionNotFound
	}
	if !m.clock().Before(e.deadline) {
		m.mu.Lock()
		delete(m.sessions, token)
		m.mu.Unlock()
		return domain.Session{}, domain.ErrSessionNotFound
	}
	return e.session, nil
}

func (m *MemorySessionStore) Delete(ctx context.Context, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
	return nil
}
