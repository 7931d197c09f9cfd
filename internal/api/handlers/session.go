package handlers

import (
	"context"
	"net/http"
	"strings"

	"transport-management-service/internal/domain"
	"transport-management-service/internal/services"

	"go.uber.org/zap"
)

type sessionKey struct{}

func WithSession(ctx context.Context, s domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

func SessionFrom(ctx context.Context) (domain.Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(domain.Session)
	return s, ok
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// SessionGuard resolves the bearer token and admits only the given principal kind.
type SessionGuard struct {
	Auth   *services.Authenticator
	Logger *zap.Logger
}

func (g *SessionGuard) Staff(next http.Handler) http.Handler {
	return g.require(domain.PrincipalStaff, next)
}

func (g *SessionGuard) Customer(next http.Handler) http.Handler {
	return g.require(domain.PrincipalCustomer, next)
}

func (g *SessionGuard) require(kind domain.PrincipalKind, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, err := g.Auth.Resolve(r.Context(), bearerToken(r))
		if err != nil {
			writeDomainError(w, r, g.Logger, "resolve session", err)
			return
		}
		if s.Principal.Kind != kind {
			writeError(w, r, http.StatusForbidden, "forbidden")
			return
		}
		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), s)))
	})
}
