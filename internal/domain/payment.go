package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const paymentTermDays = 15

type PaymentMode string

const (
	PaymentModeCash   PaymentMode = "cash"
	PaymentModeBank   PaymentMode = "bank"
	PaymentModeUPI    PaymentMode = "upi"
	PaymentModeCheque PaymentMode = "cheque"
)

func (m PaymentMode) Valid() bool {
	switch m {
	case PaymentModeCash, PaymentModeBank, PaymentModeUPI, PaymentModeCheque:
		return true
	}
	return false
}

// Payment tracks collection against one invoice. Status and RemainingBalance are
// always derived from the amounts.
type Payment struct {
	ID               string
	InvoiceNumber    string
	Consigner        string
	InvoiceAmount    decimal.Decimal
	PaidAmount       decimal.Decimal
	PaymentDate      time.Time
	Mode             PaymentMode
	TransactionRef   string
	Status           Status
	DueDate          time.Time
	RemainingBalance decimal.Decimal
	ReceivedBy       string
}

func (p Payment) DocumentID() string     { return p.ID }
func (p Payment) DocumentStatus() Status { return p.Status }

func (p Payment) SearchFields() []string {
	return []string{p.InvoiceNumber, p.Consigner, p.TransactionRef}
}

func (p Payment) Validate() error {
	return checkRequired("payment",
		field("invoice_number", p.InvoiceNumber),
		positive("paid_amount", p.PaidAmount),
	)
}

func (p Payment) Assign(id Identity) Payment {
	p.ID = id.ID
	if p.Mode == "" {
		p.Mode = PaymentModeBank
	}
	if p.PaymentDate.IsZero() {
		p.PaymentDate = dayOf(id.CreatedAt)
	}
	if p.DueDate.IsZero() {
		p.DueDate = dayOf(id.CreatedAt).AddDate(0, 0, paymentTermDays)
	}
	return p.derive()
}

// Transition ignores target: a payment's status only follows its amounts.
func (p Payment) Transition(_ Status, _ time.Time) Payment {
	return p.derive()
}

// ApplyInstallment records a further amount received on the same invoice.
func (p Payment) ApplyInstallment(amount decimal.Decimal, at time.Time) (Payment, error) {
	if err := checkRequired("payment installment", positive("amount", amount)); err != nil {
		return p, err
	}
	p.PaidAmount = p.PaidAmount.Add(amount)
	p.PaymentDate = dayOf(at)
	return p.derive(), nil
}

func (p Payment) Summary() PaymentSummary {
	return PaymentState(p.InvoiceAmount, p.PaidAmount)
}

func (p Payment) derive() Payment {
	s := p.Summary()
	p.Status = s.Status
	p.RemainingBalance = s.Remaining
	return p
}
