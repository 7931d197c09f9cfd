package session

import (
	"time"

	"transport-management-service/internal/domain"
)

// record is the serialized form of a session.
type record struct {
	Token     string    `json:"token"`
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role,omitempty"`
	Company   string    `json:"company,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}

func toRecord(s domain.Session) record {
	return record{
		Token:     s.Token,
		ID:        s.Principal.ID,
		Kind:      string(s.Principal.Kind),
		Email:     s.Principal.Email,
		Name:      s.Principal.Name,
		Role:      string(s.Principal.Role),
		Company:   s.Principal.Company,
		ExpiresAt: s.ExpiresAt,
	}
}

func (r record) session() domain.Session {
	return domain.Session{
		Token: r.Token,
		Principal: domain.Principal{
			ID:      r.ID,
			Kind:    domain.PrincipalKind(r.Kind),
			Email:   r.Email,
			Name:    r.Name,
			Role:    domain.Role(r.Role),
			Company: r.Company,
		},
		ExpiresAt: r.ExpiresAt,
	}
}
