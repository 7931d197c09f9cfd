package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"transport-management-service/internal/domain"

	"github.com/shopspring/decimal"
)

const dsoPeriodDays = 30

type StatusCounts struct {
	Resource domain.Resource
	Total    int
	ByStatus map[domain.Status]int
}

type InvoiceTotals struct {
	Total   decimal.Decimal
	Paid    decimal.Decimal
	Pending decimal.Decimal
	GST     decimal.Decimal
}

type CollectionTotals struct {
	Collected      decimal.Decimal
	Outstanding    decimal.Decimal
	CollectionRate float64
	DSO            float64
	Overdue        int
}

type DeliveryTotals struct {
	Delivered  int
	OnTime     int
	Late       int
	OnTimeRate float64
}

// ComplianceAlert flags a certificate that has expired or expires soon.
type ComplianceAlert struct {
	Resource    domain.Resource
	DocumentID  string
	Label       string
	Certificate string
	Expiry      time.Time
	Class       domain.ExpiryClass
}

// Summary is the role-scoped dashboard. Blocks for resources the role cannot open are nil.
type Summary struct {
	Role        domain.Role
	Resources   []StatusCounts
	Invoices    *InvoiceTotals
	Collections *CollectionTotals
	Deliveries  *DeliveryTotals
	Alerts      []ComplianceAlert
}

type Dashboard struct {
	Registry *Registry
	Policy   domain.AccessPolicy
}

func (d *Dashboard) Summarize(ctx context.Context, role domain.Role, now time.Time) (Summary, error) {
	sum := Summary{Role: role, Resources: []StatusCounts{}, Alerts: []ComplianceAlert{}}

	for _, res := range d.Policy.ResourcesFor(role) {
		counts, err := d.countsFor(ctx, res)
		if err != nil {
			return Summary{}, fmt.Errorf("summarize: %w", err)
		}
		total := 0
		for _, n := range counts {
			total += n
		}
		sum.Resources = append(sum.Resources, StatusCounts{Resource: res, Total: total, ByStatus: counts})
	}

	if d.Policy.IsAllowed(role, domain.ResourceInvoice) {
		invoices, err := d.Registry.Invoices.Snapshot(ctx)
		if err != nil {
			return Summary{}, fmt.Errorf("summarize invoices: %w", err)
		}
		totals := SummarizeInvoices(invoices)
		sum.Invoices = &totals
	}

	if d.Policy.IsAllowed(role, domain.ResourcePayments) {
		payments, err := d.Registry.Payments.Snapshot(ctx)
		if err != nil {
			return Summary{}, fmt.Errorf("summarize payments: %w", err)
		}
		totals := SummarizeCollections(payments, now)
		sum.Collections = &totals
	}

	if d.Policy.IsAllowed(role, domain.ResourceChallan) {
		challans, err := d.Registry.Challans.Snapshot(ctx)
		if err != nil {
			return Summary{}, fmt.Errorf("summarize deliveries: %w", err)
		}
		totals := SummarizeDeliveries(challans)
		sum.Deliveries = &totals
	}

	if d.Policy.IsAllowed(role, domain.ResourceVehicles) {
		vehicles, err := d.Registry.Vehicles.Snapshot(ctx)
		if err != nil {
			return Summary{}, fmt.Errorf("summarize vehicles: %w", err)
		}
		sum.Alerts = append(sum.Alerts, VehicleAlerts(vehicles, now)...)
	}

	if d.Policy.IsAllowed(role, domain.ResourceDrivers) {
		drivers, err := d.Registry.Drivers.Snapshot(ctx)
		if err != nil {
			return Summary{}, fmt.Errorf("summarize drivers: %w", err)
		}
		sum.Alerts = append(sum.Alerts, DriverAlerts(drivers, now)...)
	}

	sort.SliceStable(sum.Alerts, func(i, j int) bool {
		return sum.Alerts[i].Expiry.Before(sum.Alerts[j].Expiry)
	})

	return sum, nil
}

func (d *Dashboard) countsFor(ctx context.Context, res domain.Resource) (map[domain.Status]int, error) {
	switch res {
	case domain.ResourceLR:
		return d.Registry.LorryReceipts.CountByStatus(ctx)
	case domain.ResourceChallan:
		return d.Registry.Challans.CountByStatus(ctx)
	case domain.ResourceVehicles:
		return d.Registry.Vehicles.CountByStatus(ctx)
	case domain.ResourceDrivers:
		return d.Registry.Drivers.CountByStatus(ctx)
	case domain.ResourceRoutes:
		return d.Registry.Routes.CountByStatus(ctx)
	case domain.ResourceCustomers:
		return d.Registry.Customers.CountByStatus(ctx)
	case domain.ResourceInvoice:
		return d.Registry.Invoices.CountByStatus(ctx)
	case domain.ResourcePayments:
		return d.Registry.Payments.CountByStatus(ctx)
	}
	return nil, fmt.Errorf("count %q: %w", res, domain.ErrNotFound)
}

func SummarizeInvoices(invoices []domain.Invoice) InvoiceTotals {
	t := InvoiceTotals{Total: decimal.Zero, Paid: decimal.Zero, Pending: decimal.Zero, GST: decimal.Zero}
	for _, inv := range invoices {
		t.Total = t.Total.Add(inv.Amount)
		t.GST = t.GST.Add(inv.GST)
		if inv.Status == domain.StatusPaid {
			t.Paid = t.Paid.Add(inv.Amount)
		} else {
			t.Pending = t.Pending.Add(inv.Remaining())
		}
	}
	return t
}

func SummarizeCollections(payments []domain.Payment, now time.Time) CollectionTotals {
	t := CollectionTotals{Collected: decimal.Zero, Outstanding: decimal.Zero}
	for _, p := range payments {
		t.Collected = t.Collected.Add(p.PaidAmount)
		t.Outstanding = t.Outstanding.Add(p.RemainingBalance)
		if p.Status != domain.StatusPaid && p.DueDate.Before(now) {
			t.Overdue++
		}
	}
	t.CollectionRate = domain.CollectionRate(t.Collected, t.Outstanding)
	t.DSO = domain.DaysSalesOutstanding(t.Outstanding, t.Collected.Add(t.Outstanding), dsoPeriodDays)
	return t
}

func SummarizeDeliveries(challans []domain.Challan) DeliveryTotals {
	var t DeliveryTotals
	for _, ch := range challans {
		delay, ok := ch.DelayHours()
		if ch.Status != domain.StatusDelivered || !ok {
			continue
		}
		t.Delivered++
		if delay > 0 {
			t.Late++
		} else {
			t.OnTime++
		}
	}
	t.OnTimeRate = domain.OnTimeRate(t.OnTime, t.Delivered)
	return t
}

func VehicleAlerts(vehicles []domain.Vehicle, now time.Time) []ComplianceAlert {
	var out []ComplianceAlert
	for _, v := range vehicles {
		out = appendAlert(out, domain.ResourceVehicles, v.ID, v.VehicleNumber, "insurance", v.InsuranceExpiry, now)
		out = appendAlert(out, domain.ResourceVehicles, v.ID, v.VehicleNumber, "pollution_certificate", v.PollutionCertExpiry, now)
	}
	return out
}

func DriverAlerts(drivers []domain.Driver, now time.Time) []ComplianceAlert {
	var out []ComplianceAlert
	for _, d := range drivers {
		out = appendAlert(out, domain.ResourceDrivers, d.ID, d.Name, "license", d.LicenseExpiry, now)
	}
	return out
}

func appendAlert(out []ComplianceAlert, res domain.Resource, id, label, cert string, expiry, now time.Time) []ComplianceAlert {
	if expiry.IsZero() {
		return out
	}
	class := domain.ClassifyExpiry(expiry, now, domain.DefaultExpiryWindowDays)
	if class == domain.ExpiryValid {
		return out
	}
	return append(out, ComplianceAlert{
		Resource:    res,
		DocumentID:  id,
		Label:       label,
		Certificate: cert,
		Expiry:      expiry,
		Class:       class,
	})
}
