package ports

import (
	"context"
	"transport-management-service/internal/domain"
)

// Contract for checking login credentials. Implementations return
// domain.ErrAuthFailure on any mismatch.
type CredentialVerifier interface {
	Verify(ctx context.Context, email, password string) (domain.Principal, error)
}
