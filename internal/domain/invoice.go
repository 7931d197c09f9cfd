package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const invoiceTermDays = 7

type Invoice struct {
	ID            string
	InvoiceNumber string
	LRNumber      string
	ChallanNumber string
	Consigner     string
	Consignee     string
	InvoiceDate   time.Time
	DueDate       time.Time
	Amount        decimal.Decimal
	PaidAmount    decimal.Decimal
	GST           decimal.Decimal
	Status        Status
	Notes         string
}

func (inv Invoice) DocumentID() string     { return inv.ID }
func (inv Invoice) DocumentStatus() Status { return inv.Status }

func (inv Invoice) SearchFields() []string {
	return []string{inv.InvoiceNumber, inv.LRNumber, inv.Consigner}
}

func (inv Invoice) Validate() error {
	return checkRequired("invoice",
		field("lr_number", inv.LRNumber),
		field("consigner", inv.Consigner),
		positive("amount", inv.Amount),
	)
}

func (inv Invoice) Assign(id Identity) Invoice {
	inv.ID = id.ID
	inv.Status = id.Status
	if inv.InvoiceNumber == "" {
		inv.InvoiceNumber = documentNumber("INV", id.CreatedAt, id.Sequence)
	}
	if inv.InvoiceDate.IsZero() {
		inv.InvoiceDate = dayOf(id.CreatedAt)
	}
	if inv.DueDate.IsZero() {
		inv.DueDate = inv.InvoiceDate.AddDate(0, 0, invoiceTermDays)
	}
	if inv.GST.IsZero() {
		inv.GST = GST(inv.Amount, DefaultGSTRate)
	}
	return inv
}

// Transition to paid settles whatever is still owed.
func (inv Invoice) Transition(target Status, at time.Time) Invoice {
	inv.Status = target
	if target == StatusPaid && inv.PaidAmount.LessThan(inv.Amount) {
		inv.PaidAmount = inv.Amount
	}
	return inv
}

func (inv Invoice) TotalWithGST() decimal.Decimal { return TotalWithGST(inv.Amount, inv.GST) }

func (inv Invoice) Remaining() decimal.Decimal { return inv.Amount.Sub(inv.PaidAmount) }

// ApplyPayment adds a received amount. A balance that reaches zero settles the invoice.
func (inv Invoice) ApplyPayment(amount decimal.Decimal) (Invoice, error) {
	if err := checkRequired("invoice payment", positive("amount", amount)); err != nil {
		return inv, err
	}
	if inv.Status == StatusPaid {
		return inv, &TransitionError{
			Lifecycle: InvoiceLifecycle.Name(),
			From:      inv.Status,
			To:        StatusPaid,
			Reason:    "invoice is already settled",
		}
	}

	inv.PaidAmount = inv.PaidAmount.Add(amount)
	if inv.Remaining().Sign() <= 0 {
		inv.Status = StatusPaid
	}
	return inv, nil
}

func positive(name string, d decimal.Decimal) requiredField {
	return requiredField{name: name, present: d.Sign() > 0}
}
