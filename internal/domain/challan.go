package domain

import "time"

// Challan is a delivery run assigning a vehicle and driver to a lorry receipt.
type Challan struct {
	ID              string
	ChallanNumber   string
	LRNumber        string
	VehicleNumber   string
	DriverName      string
	DriverContact   string
	Route           string
	Departure       time.Time
	ExpectedArrival time.Time
	ActualArrival   *time.Time
	Status          Status
	Date            time.Time
}

func (c Challan) DocumentID() string     { return c.ID }
func (c Challan) DocumentStatus() Status { return c.Status }

func (c Challan) SearchFields() []string {
	return []string{c.ChallanNumber, c.LRNumber, c.VehicleNumber, c.DriverName}
}

func (c Challan) Validate() error {
	return checkRequired("challan",
		field("lr_number", c.LRNumber),
		field("vehicle_number", c.VehicleNumber),
	)
}

func (c Challan) Assign(id Identity) Challan {
	c.ID = id.ID
	c.Status = id.Status
	if c.ChallanNumber == "" {
		c.ChallanNumber = documentNumber("CH", id.CreatedAt, id.Sequence)
	}
	if c.Route == "" {
		c.Route = "TBD"
	}
	if c.Departure.IsZero() {
		c.Departure = id.CreatedAt.Truncate(time.Minute)
	}
	if c.Date.IsZero() {
		c.Date = dayOf(id.CreatedAt)
	}
	return c
}

func (c Challan) Transition(target Status, at time.Time) Challan {
	c.Status = target
	if target == StatusDelivered && c.ActualArrival == nil {
		arrived := at.Truncate(time.Minute)
		c.ActualArrival = &arrived
	}
	return c
}

// DelayHours reports the arrival delay once the run has an actual arrival.
func (c Challan) DelayHours() (int, bool) {
	if c.ActualArrival == nil || c.ExpectedArrival.IsZero() {
		return 0, false
	}
	return DelayHours(c.ExpectedArrival, *c.ActualArrival), true
}
