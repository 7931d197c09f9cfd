package domain

import "time"

type Vehicle struct {
	ID                  string
	VehicleNumber       string
	Type                string
	CapacityKg          int
	Owner               string
	RegistrationDate    time.Time
	InsuranceExpiry     time.Time
	PollutionCertExpiry time.Time
	Status              Status
	TotalTrips          int
	AvgLoadKg           int
	LastMaintenance     time.Time
}

func (v Vehicle) DocumentID() string     { return v.ID }
func (v Vehicle) DocumentStatus() Status { return v.Status }

func (v Vehicle) SearchFields() []string {
	return []string{v.VehicleNumber, v.Owner, v.Type}
}

func (v Vehicle) Validate() error {
	return checkRequired("vehicle",
		field("vehicle_number", v.VehicleNumber),
		field("type", v.Type),
	)
}

func (v Vehicle) Assign(id Identity) Vehicle {
	v.ID = id.ID
	v.Status = id.Status
	if v.LastMaintenance.IsZero() {
		v.LastMaintenance = dayOf(id.CreatedAt)
	}
	return v
}

func (v Vehicle) Transition(target Status, _ time.Time) Vehicle {
	v.Status = target
	return v
}

func (v Vehicle) InsuranceClass(now time.Time) ExpiryClass {
	return ClassifyExpiry(v.InsuranceExpiry, now, DefaultExpiryWindowDays)
}

func (v Vehicle) PollutionCertClass(now time.Time) ExpiryClass {
	return ClassifyExpiry(v.PollutionCertExpiry, now, DefaultExpiryWindowDays)
}
