package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"transport-management-service/internal/domain"
	"transport-management-service/internal/ports"

	"go.uber.org/zap"
)

// Registry holds one store per resource. It is the only owner of document state.
type Registry struct {
	LorryReceipts *Store[domain.LorryReceipt]
	Challans      *Store[domain.Challan]
	Vehicles      *Store[domain.Vehicle]
	Drivers       *Store[domain.Driver]
	Routes        *Store[domain.Route]
	Customers     *Store[domain.Customer]
	Invoices      *Store[domain.Invoice]
	Payments      *Store[domain.Payment]
}

type RegistryOptions struct {
	Recorder ports.TransitionRecorder
	Logger   *zap.Logger
	Clock    func() time.Time
	NewID    func() string
}

func NewRegistry(opts RegistryOptions) *Registry {
	cfg := func(res domain.Resource, l domain.Lifecycle) StoreConfig {
		return StoreConfig{
			Resource:  res,
			Lifecycle: l,
			Recorder:  opts.Recorder,
			Logger:    opts.Logger,
			Clock:     opts.Clock,
			NewID:     opts.NewID,
		}
	}

	return &Registry{
		LorryReceipts: NewStore[domain.LorryReceipt](cfg(domain.ResourceLR, domain.LorryReceiptLifecycle)),
		Challans:      NewStore[domain.Challan](cfg(domain.ResourceChallan, domain.ChallanLifecycle)),
		Vehicles:      NewStore[domain.Vehicle](cfg(domain.ResourceVehicles, domain.VehicleLifecycle)),
		Drivers:       NewStore[domain.Driver](cfg(domain.ResourceDrivers, domain.DriverLifecycle)),
		Routes:        NewStore[domain.Route](cfg(domain.ResourceRoutes, domain.RouteLifecycle)),
		Customers:     NewStore[domain.Customer](cfg(domain.ResourceCustomers, domain.CustomerLifecycle)),
		Invoices:      NewStore[domain.Invoice](cfg(domain.ResourceInvoice, domain.InvoiceLifecycle)),
		Payments:      NewStore[domain.Payment](cfg(domain.ResourcePayments, domain.PaymentLifecycle)),
	}
}

// Fixtures is the initial mock data loaded into a registry.
type Fixtures struct {
	LorryReceipts []domain.LorryReceipt
	Challans      []domain.Challan
	Vehicles      []domain.Vehicle
	Drivers       []domain.Driver
	Routes        []domain.Route
	Customers     []domain.Customer
	Invoices      []domain.Invoice
	Payments      []domain.Payment
}

func (r *Registry) Seed(ctx context.Context, f Fixtures) error {
	err := errors.Join(
		r.LorryReceipts.Seed(ctx, f.LorryReceipts...),
		r.Challans.Seed(ctx, f.Challans...),
		r.Vehicles.Seed(ctx, f.Vehicles...),
		r.Drivers.Seed(ctx, f.Drivers...),
		r.Routes.Seed(ctx, f.Routes...),
		r.Customers.Seed(ctx, f.Customers...),
		r.Invoices.Seed(ctx, f.Invoices...),
		r.Payments.Seed(ctx, f.Payments...),
	)
	if err != nil {
		return fmt.Errorf("seed registry: %w", err)
	}
	return nil
}

// Recorders fans one transition out to several recorders and joins their errors.
type Recorders []ports.TransitionRecorder

func (rs Recorders) RecordTransition(ctx context.Context, t domain.Transition) error {
	var errs []error
	for _, r := range rs {
		if r == nil {
			continue
		}
		if err := r.RecordTransition(ctx, t); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

var _ ports.TransitionRecorder = Recorders(nil)
