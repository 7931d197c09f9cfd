package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Route is a served origin-destination lane and its tariff.
type Route struct {
	ID                 string
	RouteName          string
	Origin             string
	Destination        string
	DistanceKm         int
	EstimatedDays      int
	RatePerTon         decimal.Decimal
	RatePerKg          decimal.Decimal
	MinimumFreight     decimal.Decimal
	ActiveChallans     int
	CompletedShipments int
	AvgLoadPercentage  float64
	Status             Status
	CreatedDate        time.Time
}

func (r Route) DocumentID() string     { return r.ID }
func (r Route) DocumentStatus() Status { return r.Status }

func (r Route) SearchFields() []string {
	return []string{r.RouteName, r.Origin, r.Destination}
}

func (r Route) Validate() error {
	return checkRequired("route",
		field("route_name", r.RouteName),
		field("origin", r.Origin),
		field("destination", r.Destination),
	)
}

func (r Route) Assign(id Identity) Route {
	r.ID = id.ID
	r.Status = id.Status
	if r.CreatedDate.IsZero() {
		r.CreatedDate = dayOf(id.CreatedAt)
	}
	return r
}

func (r Route) Transition(target Status, _ time.Time) Route {
	r.Status = target
	return r
}

func (r Route) EstimatedRevenue() decimal.Decimal {
	return EstimatedRevenue(r.CompletedShipments, r.RatePerTon)
}
