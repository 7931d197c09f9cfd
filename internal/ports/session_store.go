package ports

import (
	"context"
	"time"

	"transport-management-service/internal/domain"
)

// Port: a boundary for keeping authenticated sessions between requests.
type SessionStore interface {
	Save(ctx context.Context, s domain.Session, ttl time.Duration) error
	// Return domain.ErrSessionNotFound for unknown or expired tokens.
	Get(ctx context.Context, token string) (domain.Session, error)
	Delete(ctx context.Context, token string) error
}
