package credentials

import (
	"context"
	"testing"

	"transport-management-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newVerifier(t *testing.T) *StaticVerifier {
	t.Helper()
	v, err := NewStaticVerifier([]Account{
		{
			Principal: domain.Principal{ID: "1", Kind: domain.PrincipalStaff, Email: "admin@tms.com", Name: "Admin User", Role: domain.RoleAdmin},
			Password:  "admin123",
		},
		{
			Principal: domain.Principal{ID: "2", Kind: domain.PrincipalStaff, Email: "ops@tms.com", Name: "Operations Manager", Role: domain.RoleOperations},
			Password:  "ops123",
		},
	}, bcrypt.MinCost)
	require.NoError(t, err)
	return v
}

func TestStaticVerifierMatches(t *testing.T) {
	v := newVerifier(t)

	p, err := v.Verify(context.Background(), "ops@tms.com", "ops123")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleOperations, p.Role)
	assert.Equal(t, "Operations Manager", p.Name)
}

func TestStaticVerifierRejects(t *testing.T) {
	v := newVerifier(t)
	ctx := context.Background()

	_, err := v.Verify(ctx, "ops@tms.com", "admin123")
	assert.ErrorIs(t, err, domain.ErrAuthFailure)

	_, err = v.Verify(ctx, "nobody@tms.com", "ops123")
	assert.ErrorIs(t, err, domain.ErrAuthFailure)

	_, err = v.Verify(ctx, "OPS@tms.com", "ops123")
	assert.ErrorIs(t, err, domain.ErrAuthFailure)
}

func TestNewStaticVerifierRejectsDuplicates(t *testing.T) {
	acct := Account{Principal: domain.Principal{Email: "a@tms.com"}, Password: "x"}
	_, err := NewStaticVerifier([]Account{acct, acct}, bcrypt.MinCost)
	assert.Error(t, err)
}
