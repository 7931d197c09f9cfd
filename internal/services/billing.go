package services

import (
	"context"
	"fmt"
	"time"

	"transport-management-service/internal/domain"

	"github.com/shopspring/decimal"
)

// Billing records money received against invoices and payments.
type Billing struct {
	Registry *Registry
}

// RecordInvoicePayment adds amount to an invoice; the invoice settles when nothing remains.
func (b *Billing) RecordInvoicePayment(ctx context.Context, invoiceID string, amount decimal.Decimal) (domain.Invoice, error) {
	inv, err := b.Registry.Invoices.Update(ctx, invoiceID, func(inv domain.Invoice, _ time.Time) (domain.Invoice, error) {
		return inv.ApplyPayment(amount)
	})
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("record invoice payment: %w", err)
	}
	return inv, nil
}

// RecordPaymentInstallment adds amount to a payment and re-derives its status.
func (b *Billing) RecordPaymentInstallment(ctx context.Context, paymentID string, amount decimal.Decimal) (domain.Payment, error) {
	p, err := b.Registry.Payments.Update(ctx, paymentID, func(p domain.Payment, at time.Time) (domain.Payment, error) {
		return p.ApplyInstallment(amount, at)
	})
	if err != nil {
		return domain.Payment{}, fmt.Errorf("record payment installment: %w", err)
	}
	return p, nil
}
