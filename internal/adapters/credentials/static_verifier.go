package credentials

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"transport-management-service/internal/domain"
	"transport-management-service/internal/ports"

	"golang.org/x/crypto/bcrypt"
)

// Account is one entry of a fixed credential list.
type Account struct {
	Principal domain.Principal
	Password  string
}

type hashedAccount struct {
	principal domain.Principal
	hash      []byte
}

// StaticVerifier checks credentials against a list fixed at construction.
// Passwords are kept only as bcrypt hashes.
type StaticVerifier struct {
	byEmail map[string]hashedAccount
}

var _ ports.CredentialVerifier = (*StaticVerifier)(nil)

func NewStaticVerifier(accounts []Account, cost int) (*StaticVerifier, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	byEmail := make(map[string]hashedAccount, len(accounts))
	for _, a := range accounts {
		email := strings.TrimSpace(a.Principal.Email)
		if email == "" || a.Password == "" {
			return nil, fmt.Errorf("static verifier: account %q: email and password are required", a.Principal.ID)
		}
		if _, ok := byEmail[email]; ok {
			return nil, fmt.Errorf("static verifier: duplicate email %q", email)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(a.Password), cost)
		if err != nil {
			return nil, fmt.Errorf("static verifier: hash password for %q: %w", email, err)
		}
		byEmail[email] = hashedAccount{principal: a.Principal, hash: hash}
	}

	return &StaticVerifier{byEmail: byEmail}, nil
}

// Verify requires an exact email match and the matching password.
func (v *StaticVerifier) Verify(ctx context.Context, email, password string) (domain.Principal, error) {
	if err := ctx.Err(); err != nil {
		return domain.Principal{}, err
	}

	acct, ok := v.byEmail[email]
	if !ok {
		return domain.Principal{}, domain.ErrAuthFailure
	}

	err := bcrypt.CompareHashAndPassword(acct.hash, []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return domain.Principal{}, domain.ErrAuthFailure
	}
	if err != nil {
		return domain.Principal{}, fmt.Errorf("verify %q: %w", email, err)
	}

	return acct.principal, nil
}
