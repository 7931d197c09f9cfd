package journal

import (
	"context"
	"sync"

	"transport-management-service/internal/domain"
	"transport-management-service/internal/ports"
)

// MemoryJournal keeps transitions for the life of the process.
type MemoryJournal struct {
	mu      sync.RWMutex
	entries map[string][]domain.Transition
}

var _ ports.TransitionJournal = (*MemoryJournal)(nil)

func NewMemoryJournal() *MemoryJournal {
	return &MemoryJournal{entries: make(map[string][]domain.Transition)}
}

func key(res domain.Resource, id string) string { return string(res) + "/" + id }

func (m *MemoryJournal) RecordTransition(ctx context.Context, t domain.Transition) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	k := key(t.Resource, t.DocumentID)
	m.entries[k] = append(m.entries[k], t)
	return nil
}

func (m *MemoryJournal) History(ctx context.Context, res domain.Resource, documentID string) ([]domain.Transition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	src := m.entries[key(res, documentID)]
	out := make([]domain.Transition, len(src))
	copy(out, src)
	return out, nil
}
