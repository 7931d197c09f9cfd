package domain

import "time"

type Driver struct {
	ID               string
	Name             string
	LicenseNumber    string
	Phone            string
	Email            string
	LicenseExpiry    time.Time
	AadharNumber     string
	Address          string
	Status           Status
	TotalTrips       int
	AvgRating        float64
	OnTimePercentage float64
	JoiningDate      time.Time
}

func (d Driver) DocumentID() string     { return d.ID }
func (d Driver) DocumentStatus() Status { return d.Status }

func (d Driver) SearchFields() []string {
	return []string{d.Name, d.LicenseNumber, d.Phone}
}

func (d Driver) Validate() error {
	return checkRequired("driver",
		field("name", d.Name),
		field("license_number", d.LicenseNumber),
	)
}

func (d Driver) Assign(id Identity) Driver {
	d.ID = id.ID
	d.Status = id.Status
	if d.JoiningDate.IsZero() {
		d.JoiningDate = dayOf(id.CreatedAt)
	}
	return d
}

func (d Driver) Transition(target Status, _ time.Time) Driver {
	d.Status = target
	return d
}

func (d Driver) LicenseClass(now time.Time) ExpiryClass {
	return ClassifyExpiry(d.LicenseExpiry, now, DefaultExpiryWindowDays)
}
