package domain

import "time"

type PrincipalKind string

const (
	PrincipalStaff    PrincipalKind = "staff"
	PrincipalCustomer PrincipalKind = "customer"
)

// Principal is an authenticated identity. Staff carry a Role; portal customers
// carry the consigner name their shipments are booked under.
type Principal struct {
	ID      string
	Kind    PrincipalKind
	Email   string
	Name    string
	Role    Role
	Company string
}

// Session binds an opaque token to a principal until ExpiresAt.
type Session struct {
	Token     string
	Principal Principal
	ExpiresAt time.Time
}

func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
