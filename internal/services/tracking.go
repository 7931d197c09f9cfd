package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"transport-management-service/internal/domain"
)

// Shipment is the consigner's view of one lorry receipt and its delivery run.
type Shipment struct {
	LRNumber         string
	Origin           string
	Destination      string
	WeightKg         float64
	Status           domain.Status
	ShipDate         time.Time
	ExpectedDelivery *time.Time
	DeliveredAt      *time.Time
	VehicleNumber    string
	DriverName       string
	DelayHours       *int
}

// Tracker serves the customer portal. It only ever returns documents booked
// under the consigner it is asked about.
type Tracker struct {
	Registry *Registry
}

func (t *Tracker) Shipments(ctx context.Context, consigner, search, status string) ([]Shipment, error) {
	lrs, err := t.Registry.LorryReceipts.List(ctx, "", status)
	if err != nil {
		return nil, fmt.Errorf("track shipments: %w", err)
	}

	challans, err := t.Registry.Challans.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("track shipments: %w", err)
	}
	// Snapshot is newest first; keep the latest run per LR.
	runs := make(map[string]domain.Challan, len(challans))
	for _, ch := range challans {
		if _, ok := runs[ch.LRNumber]; !ok {
			runs[ch.LRNumber] = ch
		}
	}

	out := []Shipment{}
	for _, lr := range lrs {
		if !sameParty(lr.Consigner, consigner) {
			continue
		}
		if !domain.MatchesSearch(search, lr.LRNumber, lr.Destination) {
			continue
		}

		s := Shipment{
			LRNumber:    lr.LRNumber,
			Origin:      lr.Origin,
			Destination: lr.Destination,
			WeightKg:    lr.WeightKg,
			Status:      lr.Status,
			ShipDate:    lr.Date,
			DeliveredAt: lr.DeliveredAt,
		}
		if ch, ok := runs[lr.LRNumber]; ok {
			s.VehicleNumber = ch.VehicleNumber
			s.DriverName = ch.DriverName
			if !ch.ExpectedArrival.IsZero() {
				expected := ch.ExpectedArrival
				s.ExpectedDelivery = &expected
			}
			if delay, ok := ch.DelayHours(); ok {
				s.DelayHours = &delay
			}
		}
		out = append(out, s)
	}

	return out, nil
}

func (t *Tracker) Invoices(ctx context.Context, consigner, search, status string) ([]domain.Invoice, error) {
	invoices, err := t.Registry.Invoices.List(ctx, "", status)
	if err != nil {
		return nil, fmt.Errorf("track invoices: %w", err)
	}

	out := []domain.Invoice{}
	for _, inv := range invoices {
		if !sameParty(inv.Consigner, consigner) {
			continue
		}
		// The consigner is implied, so it is not searchable here.
		if domain.MatchesSearch(search, inv.InvoiceNumber, inv.LRNumber) {
			out = append(out, inv)
		}
	}
	return out, nil
}

func sameParty(a, b string) bool {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	return a != "" && strings.EqualFold(a, b)
}
