package ports

import (
	"context"
	"transport-management-service/internal/domain"
)

// Receives every document creation and status change made by a store.
type TransitionRecorder interface {
	RecordTransition(ctx context.Context, t domain.Transition) error
}

// A recorder that can also replay a document's history, oldest first.
type TransitionJournal interface {
	TransitionRecorder
	History(ctx context.Context, resource domain.Resource, documentID string) ([]domain.Transition, error)
}
