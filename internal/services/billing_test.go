package services

import (
	"context"
	"testing"

	"transport-management-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordInvoicePayment(t *testing.T) {
	rec := &captureRecorder{}
	reg := newTestRegistry(rec)
	billing := &Billing{Registry: reg}
	ctx := context.Background()

	require.NoError(t, reg.Invoices.Seed(ctx, domain.Invoice{
		ID: "1", InvoiceNumber: "INV-2024-001", LRNumber: "LR-2024-001", Consigner: "ABC Traders",
		Amount: dec(5000), PaidAmount: dec(0), GST: dec(900), Status: domain.StatusIssued,
	}))

	inv, err := billing.RecordInvoicePayment(ctx, "1", dec(2000))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusIssued, inv.Status)
	assert.True(t, inv.Remaining().Equal(dec(3000)))
	assert.Empty(t, rec.transitions(), "partial payment keeps status")

	inv, err = billing.RecordInvoicePayment(ctx, "1", dec(3000))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaid, inv.Status)
	assert.True(t, inv.Remaining().IsZero())

	ts := rec.transitions()
	require.Len(t, ts, 1)
	assert.Equal(t, domain.StatusIssued, ts[0].From)
	assert.Equal(t, domain.StatusPaid, ts[0].To)

	_, err = billing.RecordInvoicePayment(ctx, "1", dec(10))
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestRecordInvoicePaymentRejectsNonPositive(t *testing.T) {
	reg := newTestRegistry(nil)
	billing := &Billing{Registry: reg}
	ctx := context.Background()
	require.NoError(t, reg.Invoices.Seed(ctx, domain.Invoice{ID: "1", Amount: dec(100), Status: domain.StatusDraft}))

	_, err := billing.RecordInvoicePayment(ctx, "1", dec(0))
	assert.ErrorIs(t, err, domain.ErrValidationMissing)

	_, err = billing.RecordInvoicePayment(ctx, "missing", dec(1))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordPaymentInstallment(t *testing.T) {
	rec := &captureRecorder{}
	reg := newTestRegistry(rec)
	billing := &Billing{Registry: reg}
	ctx := context.Background()

	p, err := reg.Payments.Create(ctx, domain.Payment{InvoiceNumber: "INV-2024-003", InvoiceAmount: dec(38000), PaidAmount: dec(8000)})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPartial, p.Status)

	p, err = billing.RecordPaymentInstallment(ctx, p.ID, dec(30000))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaid, p.Status)
	assert.True(t, p.RemainingBalance.IsZero())
	assert.Equal(t, 100.0, p.Summary().Utilization)

	ts := rec.transitions()
	require.Len(t, ts, 2)
	assert.Equal(t, domain.StatusPartial, ts[1].From)
	assert.Equal(t, domain.StatusPaid, ts[1].To)
}
