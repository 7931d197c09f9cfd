package seed

import (
	"context"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"transport-management-service/internal/domain"
	"transport-management-service/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func repoSeedPath(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok)
	return filepath.Join(filepath.Dir(file), "..", "..", "..", "data", "seeds", "tms.yaml")
}

func TestLoadFileBundledFixtures(t *testing.T) {
	f, err := LoadFile(repoSeedPath(t))
	require.NoError(t, err)

	staff, err := f.StaffAccounts()
	require.NoError(t, err)
	require.Len(t, staff, 4)
	assert.Equal(t, domain.RoleAdmin, staff[0].Principal.Role)

	customers, err := f.CustomerAccounts()
	require.NoError(t, err)
	require.Len(t, customers, 3)
	assert.Equal(t, "ABC Traders", customers[0].Principal.Company)
	assert.Equal(t, domain.PrincipalCustomer, customers[0].Principal.Kind)

	fx, err := f.Fixtures()
	require.NoError(t, err)
	assert.Len(t, fx.LorryReceipts, 3)
	assert.Len(t, fx.Challans, 2)
	assert.Len(t, fx.Vehicles, 3)
	assert.Len(t, fx.Drivers, 3)
	assert.Len(t, fx.Routes, 4)
	assert.Len(t, fx.Customers, 3)
	assert.Len(t, fx.Invoices, 2)
	assert.Len(t, fx.Payments, 4)

	lr := fx.LorryReceipts[2]
	assert.Equal(t, "LR-2024-003", lr.LRNumber)
	assert.True(t, decimal.NewFromInt(25920).Equal(lr.TotalValue()))

	ch := fx.Challans[1]
	require.NotNil(t, ch.ActualArrival)
	assert.Equal(t, time.Date(2024, 12, 20, 15, 30, 0, 0, time.UTC), *ch.ActualArrival)
	delay, ok := ch.DelayHours()
	assert.True(t, ok)
	assert.Equal(t, 0, delay)
}

func TestFixturesDerivePaymentStatus(t *testing.T) {
	f, err := Parse([]byte(`
payments:
  - id: p1
    invoice_number: INV-1
    invoice_amount: 75000
    paid_amount: 45000
`))
	require.NoError(t, err)

	fx, err := f.Fixtures()
	require.NoError(t, err)
	require.Len(t, fx.Payments, 1)
	assert.Equal(t, domain.StatusPartial, fx.Payments[0].Status)
	assert.True(t, decimal.NewFromInt(30000).Equal(fx.Payments[0].RemainingBalance))
}

func TestFixturesReportBadDates(t *testing.T) {
	f, err := Parse([]byte(`
vehicles:
  - id: v1
    vehicle_number: MH-01
    type: truck
    insurance_expiry: next year
drivers:
  - id: d1
    name: A
    license_number: L
    license_expiry: 31/12/2025
`))
	require.NoError(t, err)

	_, err = f.Fixtures()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vehicle v1 insurance_expiry")
	assert.Contains(t, err.Error(), "driver d1 license_expiry")
}

func TestFixturesRejectUnknownPaymentMode(t *testing.T) {
	f, err := Parse([]byte(`
payments:
  - id: p1
    invoice_number: INV-2024-001
    invoice_amount: 100
    paid_amount: 50
    payment_mode: crypto
  - id: p2
    invoice_number: INV-2024-002
    invoice_amount: 100
    paid_amount: 100
`))
	require.NoError(t, err)

	_, err = f.Fixtures()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `payment p1: unknown payment_mode "crypto"`)
	assert.NotContains(t, err.Error(), "payment p2")
}

func TestStaffAccountsRejectUnknownRole(t *testing.T) {
	f := &File{Staff: []StaffAccount{{ID: "9", Email: "x@tms.com", Password: "x", Role: "owner"}}}

	_, err := f.StaffAccounts()
	assert.Error(t, err)
}

func TestBundledFixturesSeedRegistry(t *testing.T) {
	f, err := LoadFile(repoSeedPath(t))
	require.NoError(t, err)
	fx, err := f.Fixtures()
	require.NoError(t, err)

	reg := services.NewRegistry(services.RegistryOptions{})
	require.NoError(t, reg.Seed(context.Background(), fx))

	lr, err := reg.LorryReceipts.Get(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInTransit, lr.Status)
}
