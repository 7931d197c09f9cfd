package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LorryReceipt is the primary shipment document linking consigner, consignee,
// route, weight and rate.
type LorryReceipt struct {
	ID          string
	LRNumber    string
	Consigner   string
	Consignee   string
	Origin      string
	Destination string
	WeightKg    float64
	Rate        decimal.Decimal // per 1000 kg
	Status      Status
	Date        time.Time
	DeliveredAt *time.Time
}

func (lr LorryReceipt) DocumentID() string     { return lr.ID }
func (lr LorryReceipt) DocumentStatus() Status { return lr.Status }

func (lr LorryReceipt) SearchFields() []string {
	return []string{lr.LRNumber, lr.Consigner, lr.Consignee}
}

func (lr LorryReceipt) Validate() error {
	return checkRequired("lorry receipt",
		field("consigner", lr.Consigner),
		field("destination", lr.Destination),
	)
}

func (lr LorryReceipt) Assign(id Identity) LorryReceipt {
	lr.ID = id.ID
	lr.Status = id.Status
	if lr.LRNumber == "" {
		lr.LRNumber = documentNumber("LR", id.CreatedAt, id.Sequence)
	}
	if lr.Date.IsZero() {
		lr.Date = dayOf(id.CreatedAt)
	}
	return lr
}

func (lr LorryReceipt) Transition(target Status, at time.Time) LorryReceipt {
	lr.Status = target
	if target == StatusDelivered && lr.DeliveredAt == nil {
		lr.DeliveredAt = &at
	}
	return lr
}

func (lr LorryReceipt) TotalValue() decimal.Decimal {
	return FreightValue(lr.WeightKg, lr.Rate)
}
