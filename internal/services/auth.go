package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"transport-management-service/internal/domain"
	"transport-management-service/internal/ports"

	"github.com/google/uuid"
)

const DefaultSessionTTL = 12 * time.Hour

// Authenticator turns verified credentials into sessions. Staff and portal
// customers are checked against separate verifiers.
type Authenticator struct {
	Staff     ports.CredentialVerifier
	Customers ports.CredentialVerifier
	Sessions  ports.SessionStore
	TTL       time.Duration
	Clock     func() time.Time
	NewToken  func() string
}

func (a *Authenticator) LoginStaff(ctx context.Context, email, password string) (domain.Session, error) {
	return a.login(ctx, a.Staff, email, password)
}

func (a *Authenticator) LoginCustomer(ctx context.Context, email, password string) (domain.Session, error) {
	return a.login(ctx, a.Customers, email, password)
}

func (a *Authenticator) login(ctx context.Context, v ports.CredentialVerifier, email, password string) (domain.Session, error) {
	if v == nil {
		return domain.Session{}, errors.New("login: no credential verifier configured")
	}
	if strings.TrimSpace(email) == "" || password == "" {
		return domain.Session{}, domain.ErrAuthFailure
	}

	principal, err := v.Verify(ctx, email, password)
	if err != nil {
		if errors.Is(err, domain.ErrAuthFailure) {
			return domain.Session{}, domain.ErrAuthFailure
		}
		return domain.Session{}, fmt.Errorf("login: verify credentials: %w", err)
	}

	ttl := a.ttl()
	s := domain.Session{
		Token:     a.newToken(),
		Principal: principal,
		ExpiresAt: a.now().Add(ttl),
	}
	if err := a.Sessions.Save(ctx, s, ttl); err != nil {
		return domain.Session{}, fmt.Errorf("login: save session: %w", err)
	}

	return s, nil
}

// Resolve returns the live session for token.
func (a *Authenticator) Resolve(ctx context.Context, token string) (domain.Session, error) {
	if strings.TrimSpace(token) == "" {
		return domain.Session{}, domain.ErrSessionNotFound
	}

	s, err := a.Sessions.Get(ctx, token)
	if err != nil {
		return domain.Session{}, fmt.Errorf("resolve session: %w", err)
	}
	if s.Expired(a.now()) {
		_ = a.Sessions.Delete(ctx, token)
		return domain.Session{}, fmt.Errorf("resolve session: %w", domain.ErrSessionNotFound)
	}
	return s, nil
}

func (a *Authenticator) Logout(ctx context.Context, token string) error {
	if err := a.Sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

func (a *Authenticator) ttl() time.Duration {
	if a.TTL <= 0 {
		return DefaultSessionTTL
	}
	return a.TTL
}

func (a *Authenticator) now() time.Time {
	if a.Clock == nil {
		return time.Now()
	}
	return a.Clock()
}

func (a *Authenticator) newToken() string {
	if a.NewToken == nil {
		return uuid.NewString()
	}
	return a.NewToken()
}
