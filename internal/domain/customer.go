package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	ID                 string
	CompanyName        string
	ContactPerson      string
	Phone              string
	Email              string
	Address            string
	City               string
	State              string
	GSTNumber          string
	PANNumber          string
	Status             Status
	TotalShipments     int
	TotalRevenue       decimal.Decimal
	OutstandingBalance decimal.Decimal
	RegistrationDate   time.Time
}

func (c Customer) DocumentID() string     { return c.ID }
func (c Customer) DocumentStatus() Status { return c.Status }

func (c Customer) SearchFields() []string {
	return []string{c.CompanyName, c.ContactPerson, c.GSTNumber}
}

func (c Customer) Validate() error {
	return checkRequired("customer",
		field("company_name", c.CompanyName),
		field("gst_number", c.GSTNumber),
	)
}

func (c Customer) Assign(id Identity) Customer {
	c.ID = id.ID
	c.Status = id.Status
	if c.RegistrationDate.IsZero() {
		c.RegistrationDate = dayOf(id.CreatedAt)
	}
	return c
}

func (c Customer) Transition(target Status, _ time.Time) Customer {
	c.Status = target
	return c
}

func (c Customer) CreditUtilization() float64 {
	return CreditUtilization(c.OutstandingBalance, c.TotalRevenue)
}
