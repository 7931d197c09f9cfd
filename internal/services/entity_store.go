package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"transport-management-service/internal/domain"
	"transport-management-service/internal/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StoreConfig parameterizes one in-memory document store.
type StoreConfig struct {
	Resource  domain.Resource
	Lifecycle domain.Lifecycle
	// Optional; nil discards transitions.
	Recorder ports.TransitionRecorder
	Logger   *zap.Logger
	Clock    func() time.Time
	NewID    func() string
}

// Store is the in-memory collection behind one resource. Every document kind shares
// this implementation; lifecycle rules come from the configuration.
type Store[T domain.Document[T]] struct {
	cfg StoreConfig

	mu    sync.RWMutex
	items map[string]T
	order []string // newest first

	// recMu is taken before mu is released, so transitions reach the recorder
	// in the order the store applied them.
	recMu sync.Mutex
}

func NewStore[T domain.Document[T]](cfg StoreConfig) *Store[T] {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.NewID == nil {
		cfg.NewID = uuid.NewString
	}

	return &Store[T]{
		cfg:   cfg,
		items: make(map[string]T),
	}
}

func (s *Store[T]) Resource() domain.Resource { return s.cfg.Resource }

func (s *Store[T]) Lifecycle() domain.Lifecycle { return s.cfg.Lifecycle }

// Create validates a draft, assigns identity and the initial status, and inserts it
// at the head of the collection.
func (s *Store[T]) Create(ctx context.Context, draft T) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	if err := draft.Validate(); err != nil {
		return zero, fmt.Errorf("create %s: %w", s.cfg.Resource, err)
	}

	now := s.cfg.Clock()

	s.mu.Lock()
	doc := draft.Assign(domain.Identity{
		ID:        s.cfg.NewID(),
		Sequence:  len(s.order) + 1,
		CreatedAt: now,
		Status:    s.cfg.Lifecycle.Initial(),
	})
	s.items[doc.DocumentID()] = doc
	s.order = append([]string{doc.DocumentID()}, s.order...)
	s.recMu.Lock()
	s.mu.Unlock()

	s.record(ctx, domain.Transition{
		Resource:   s.cfg.Resource,
		DocumentID: doc.DocumentID(),
		To:         doc.DocumentStatus(),
		At:         now,
	})
	s.recMu.Unlock()

	return doc, nil
}

// Seed appends ready-made documents in the given order, keeping their status.
// Documents without an id or status get one; a status outside the lifecycle
// rejects the whole batch.
func (s *Store[T]) Seed(ctx context.Context, docs ...T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	batch := make([]T, 0, len(docs))
	seen := make(map[string]struct{}, len(docs))
	for _, doc := range docs {
		id, status := doc.DocumentID(), doc.DocumentStatus()
		if id == "" || status == "" {
			if id == "" {
				id = s.cfg.NewID()
			}
			if status == "" {
				status = s.cfg.Lifecycle.Initial()
			}
			doc = doc.Assign(domain.Identity{
				ID:        id,
				Sequence:  len(s.order) + len(batch) + 1,
				CreatedAt: s.cfg.Clock(),
				Status:    status,
			})
		}

		if st := doc.DocumentStatus(); !s.cfg.Lifecycle.Has(st) {
			return fmt.Errorf("seed %s %q: unknown status %q", s.cfg.Resource, id, st)
		}
		if _, ok := s.items[id]; ok {
			return fmt.Errorf("seed %s: duplicate id %q", s.cfg.Resource, id)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("seed %s: duplicate id %q", s.cfg.Resource, id)
		}
		seen[id] = struct{}{}
		batch = append(batch, doc)
	}

	for _, doc := range batch {
		s.items[doc.DocumentID()] = doc
		s.order = append(s.order, doc.DocumentID())
	}
	return nil
}

func (s *Store[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.items[id]
	if !ok {
		return zero, fmt.Errorf("get %s %q: %w", s.cfg.Resource, id, domain.ErrNotFound)
	}
	return doc, nil
}

// ChangeStatus applies a caller-requested status after the lifecycle guard passes.
func (s *Store[T]) ChangeStatus(ctx context.Context, id string, target domain.Status) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	now := s.cfg.Clock()

	s.mu.Lock()
	doc, ok := s.items[id]
	if !ok {
		s.mu.Unlock()
		return zero, fmt.Errorf("change %s status %q: %w", s.cfg.Resource, id, domain.ErrNotFound)
	}

	from := doc.DocumentStatus()
	if err := s.cfg.Lifecycle.Check(from, target); err != nil {
		s.mu.Unlock()
		return zero, fmt.Errorf("change %s status %q: %w", s.cfg.Resource, id, err)
	}

	doc = doc.Transition(target, now)
	s.items[id] = doc
	s.recMu.Lock()
	s.mu.Unlock()

	s.record(ctx, domain.Transition{
		Resource:   s.cfg.Resource,
		DocumentID: id,
		From:       from,
		To:         doc.DocumentStatus(),
		At:         now,
	})
	s.recMu.Unlock()

	return doc, nil
}

// Update replaces a document with the result of fn. Status changes made by fn are
// recorded but not guarded; fn owns any rule it applies.
func (s *Store[T]) Update(ctx context.Context, id string, fn func(T, time.Time) (T, error)) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	now := s.cfg.Clock()

	s.mu.Lock()
	doc, ok := s.items[id]
	if !ok {
		s.mu.Unlock()
		return zero, fmt.Errorf("update %s %q: %w", s.cfg.Resource, id, domain.ErrNotFound)
	}

	updated, err := fn(doc, now)
	if err != nil {
		s.mu.Unlock()
		return zero, fmt.Errorf("update %s %q: %w", s.cfg.Resource, id, err)
	}
	if updated.DocumentID() != id {
		s.mu.Unlock()
		return zero, fmt.Errorf("update %s %q: document id changed to %q", s.cfg.Resource, id, updated.DocumentID())
	}
	s.items[id] = updated

	from, to := doc.DocumentStatus(), updated.DocumentStatus()
	if from == to {
		s.mu.Unlock()
		return updated, nil
	}

	s.recMu.Lock()
	s.mu.Unlock()

	s.record(ctx, domain.Transition{
		Resource:   s.cfg.Resource,
		DocumentID: id,
		From:       from,
		To:         to,
		At:         now,
	})
	s.recMu.Unlock()

	return updated, nil
}

// List returns documents matching search and status, newest first.
func (s *Store[T]) List(ctx context.Context, search, status string) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.order))
	for _, id := range s.order {
		doc := s.items[id]
		if !domain.MatchesStatus(status, doc.DocumentStatus()) {
			continue
		}
		if !domain.MatchesSearch(search, doc.SearchFields()...) {
			continue
		}
		out = append(out, doc)
	}
	return out, nil
}

// Snapshot returns every document, newest first.
func (s *Store[T]) Snapshot(ctx context.Context) ([]T, error) {
	return s.List(ctx, "", domain.StatusAll)
}

func (s *Store[T]) CountByStatus(ctx context.Context) (map[domain.Status]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[domain.Status]int, len(s.cfg.Lifecycle.Statuses()))
	for _, st := range s.cfg.Lifecycle.Statuses() {
		counts[st] = 0
	}
	for _, doc := range s.items {
		counts[doc.DocumentStatus()]++
	}
	return counts, nil
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Recorder failures are logged; the in-memory mutation already happened.
func (s *Store[T]) record(ctx context.Context, t domain.Transition) {
	if s.cfg.Recorder == nil {
		return
	}
	if err := s.cfg.Recorder.RecordTransition(ctx, t); err != nil {
		s.cfg.Logger.Warn("record transition failed",
			zap.String("resource", string(t.Resource)),
			zap.String("document_id", t.DocumentID),
			zap.String("from", string(t.From)),
			zap.String("to", string(t.To)),
			zap.Error(err),
		)
	}
}
