package seed

import (
	"errors"
	"fmt"
	"os"
	"time"

	"transport-management-service/internal/adapters/credentials"
	"transport-management-service/internal/domain"
	"transport-management-service/internal/services"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// File is the on-disk fixture set: staff and portal accounts plus the initial
// documents of every store. Dates are strings in any shape domain.ParseTimestamp accepts.
type File struct {
	Staff         []StaffAccount    `yaml:"staff"`
	Customers     []CustomerAccount `yaml:"customer_accounts"`
	LorryReceipts []LorryReceipt    `yaml:"lorry_receipts"`
	Challans      []Challan         `yaml:"challans"`
	Vehicles      []Vehicle         `yaml:"vehicles"`
	Drivers       []Driver          `yaml:"drivers"`
	Routes        []Route           `yaml:"routes"`
	Companies     []Customer        `yaml:"customers"`
	Invoices      []Invoice         `yaml:"invoices"`
	Payments      []Payment         `yaml:"payments"`
}

type StaffAccount struct {
	ID       string `yaml:"id"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	Role     string `yaml:"role"`
}

// CustomerAccount is a portal login. Consigner must match the consigner name on
// the customer's lorry receipts and invoices.
type CustomerAccount struct {
	ID        string `yaml:"id"`
	Email     string `yaml:"email"`
	Password  string `yaml:"password"`
	Name      string `yaml:"name"`
	Consigner string `yaml:"consigner"`
}

type LorryReceipt struct {
	ID          string  `yaml:"id"`
	LRNumber    string  `yaml:"lr_number"`
	Consigner   string  `yaml:"consigner"`
	Consignee   string  `yaml:"consignee"`
	Origin      string  `yaml:"origin"`
	Destination string  `yaml:"destination"`
	Weight      float64 `yaml:"weight"`
	Rate        float64 `yaml:"rate"`
	Status      string  `yaml:"status"`
	Date        string  `yaml:"date"`
	DeliveredAt string  `yaml:"delivered_at"`
}

type Challan struct {
	ID              string `yaml:"id"`
	ChallanNumber   string `yaml:"challan_number"`
	LRNumber        string `yaml:"lr_number"`
	VehicleNumber   string `yaml:"vehicle_number"`
	DriverName      string `yaml:"driver_name"`
	DriverContact   string `yaml:"driver_contact"`
	Route           string `yaml:"route"`
	Departure       string `yaml:"departure"`
	ExpectedArrival string `yaml:"expected_arrival"`
	ActualArrival   string `yaml:"actual_arrival"`
	Status          string `yaml:"status"`
	Date            string `yaml:"date"`
}

type Vehicle struct {
	ID                  string `yaml:"id"`
	VehicleNumber       string `yaml:"vehicle_number"`
	Type                string `yaml:"type"`
	Capacity            int    `yaml:"capacity"`
	Owner               string `yaml:"owner"`
	RegistrationDate    string `yaml:"registration_date"`
	InsuranceExpiry     string `yaml:"insurance_expiry"`
	PollutionCertExpiry string `yaml:"pollution_cert_expiry"`
	Status              string `yaml:"status"`
	TotalTrips          int    `yaml:"total_trips"`
	AvgLoad             int    `yaml:"avg_load"`
	LastMaintenance     string `yaml:"last_maintenance"`
}

type Driver struct {
	ID               string  `yaml:"id"`
	Name             string  `yaml:"name"`
	LicenseNumber    string  `yaml:"license_number"`
	Phone            string  `yaml:"phone"`
	Email            string  `yaml:"email"`
	LicenseExpiry    string  `yaml:"license_expiry"`
	AadharNumber     string  `yaml:"aadhar_number"`
	Address          string  `yaml:"address"`
	Status           string  `yaml:"status"`
	TotalTrips       int     `yaml:"total_trips"`
	AvgRating        float64 `yaml:"avg_rating"`
	OnTimePercentage float64 `yaml:"on_time_percentage"`
	JoiningDate      string  `yaml:"joining_date"`
}

type Route struct {
	ID                 string  `yaml:"id"`
	RouteName          string  `yaml:"route_name"`
	Origin             string  `yaml:"origin"`
	Destination        string  `yaml:"destination"`
	Distance           int     `yaml:"distance"`
	EstimatedDays      int     `yaml:"estimated_days"`
	RatePerTon         float64 `yaml:"rate_per_ton"`
	RatePerKg          float64 `yaml:"rate_per_kg"`
	MinimumFreight     float64 `yaml:"minimum_freight"`
	ActiveChallans     int     `yaml:"active_challans"`
	CompletedShipments int     `yaml:"completed_shipments"`
	AvgLoadPercentage  float64 `yaml:"avg_load_percentage"`
	Status             string  `yaml:"status"`
	CreatedDate        string  `yaml:"created_date"`
}

type Customer struct {
	ID                 string  `yaml:"id"`
	CompanyName        string  `yaml:"company_name"`
	ContactPerson      string  `yaml:"contact_person"`
	Phone              string  `yaml:"phone"`
	Email              string  `yaml:"email"`
	Address            string  `yaml:"address"`
	City               string  `yaml:"city"`
	State              string  `yaml:"state"`
	GSTNumber          string  `yaml:"gst_number"`
	PANNumber          string  `yaml:"pan_number"`
	Status             string  `yaml:"status"`
	TotalShipments     int     `yaml:"total_shipments"`
	TotalRevenue       float64 `yaml:"total_revenue"`
	OutstandingBalance float64 `yaml:"outstanding_balance"`
	RegistrationDate   string  `yaml:"registration_date"`
}

type Invoice struct {
	ID            string  `yaml:"id"`
	InvoiceNumber string  `yaml:"invoice_number"`
	LRNumber      string  `yaml:"lr_number"`
	ChallanNumber string  `yaml:"challan_number"`
	Consigner     string  `yaml:"consigner"`
	Consignee     string  `yaml:"consignee"`
	InvoiceDate   string  `yaml:"invoice_date"`
	DueDate       string  `yaml:"due_date"`
	Amount        float64 `yaml:"amount"`
	PaidAmount    float64 `yaml:"paid_amount"`
	GST           float64 `yaml:"gst"`
	Status        string  `yaml:"status"`
	Notes         string  `yaml:"notes"`
}

// Payment omits status and remaining balance; both are derived from the amounts.
type Payment struct {
	ID             string  `yaml:"id"`
	InvoiceNumber  string  `yaml:"invoice_number"`
	Consigner      string  `yaml:"consigner"`
	InvoiceAmount  float64 `yaml:"invoice_amount"`
	PaidAmount     float64 `yaml:"paid_amount"`
	PaymentDate    string  `yaml:"payment_date"`
	PaymentMode    string  `yaml:"payment_mode"`
	TransactionRef string  `yaml:"transaction_ref"`
	DueDate        string  `yaml:"due_date"`
	ReceivedBy     string  `yaml:"received_by"`
}

// LoadFile reads and parses a YAML fixture file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load seed: read %q: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("load seed: parse yaml: %w", err)
	}
	return &f, nil
}

func (f *File) StaffAccounts() ([]credentials.Account, error) {
	out := make([]credentials.Account, 0, len(f.Staff))
	for i, s := range f.Staff {
		role := domain.Role(s.Role)
		if !role.Valid() {
			return nil, fmt.Errorf("seed staff #%d (%s): unknown role %q", i+1, s.Email, s.Role)
		}
		out = append(out, credentials.Account{
			Principal: domain.Principal{
				ID:    s.ID,
				Kind:  domain.PrincipalStaff,
				Email: s.Email,
				Name:  s.Name,
				Role:  role,
			},
			Password: s.Password,
		})
	}
	return out, nil
}

func (f *File) CustomerAccounts() ([]credentials.Account, error) {
	out := make([]credentials.Account, 0, len(f.Customers))
	for i, c := range f.Customers {
		if c.Consigner == "" {
			return nil, fmt.Errorf("seed customer account #%d (%s): consigner is required", i+1, c.Email)
		}
		out = append(out, credentials.Account{
			Principal: domain.Principal{
				ID:      c.ID,
				Kind:    domain.PrincipalCustomer,
				Email:   c.Email,
				Name:    c.Name,
				Company: c.Consigner,
			},
			Password: c.Password,
		})
	}
	return out, nil
}

// Fixtures converts the document sections into store-ready values.
// Every malformed date is reported, not just the first.
func (f *File) Fixtures() (services.Fixtures, error) {
	p := &fixtureParser{}
	var out services.Fixtures

	for _, s := range f.LorryReceipts {
		out.LorryReceipts = append(out.LorryReceipts, domain.LorryReceipt{
			ID:          s.ID,
			LRNumber:    s.LRNumber,
			Consigner:   s.Consigner,
			Consignee:   s.Consignee,
			Origin:      s.Origin,
			Destination: s.Destination,
			WeightKg:    s.Weight,
			Rate:        decimal.NewFromFloat(s.Rate),
			Status:      domain.Status(s.Status),
			Date:        p.date("lr "+s.ID+" date", s.Date),
			DeliveredAt: p.optional("lr "+s.ID+" delivered_at", s.DeliveredAt),
		})
	}

	for _, s := range f.Challans {
		out.Challans = append(out.Challans, domain.Challan{
			ID:              s.ID,
			ChallanNumber:   s.ChallanNumber,
			LRNumber:        s.LRNumber,
			VehicleNumber:   s.VehicleNumber,
			DriverName:      s.DriverName,
			DriverContact:   s.DriverContact,
			Route:           s.Route,
			Departure:       p.date("challan "+s.ID+" departure", s.Departure),
			ExpectedArrival: p.date("challan "+s.ID+" expected_arrival", s.ExpectedArrival),
			ActualArrival:   p.optional("challan "+s.ID+" actual_arrival", s.ActualArrival),
			Status:          domain.Status(s.Status),
			Date:            p.date("challan "+s.ID+" date", s.Date),
		})
	}

	for _, s := range f.Vehicles {
		out.Vehicles = append(out.Vehicles, domain.Vehicle{
			ID:                  s.ID,
			VehicleNumber:       s.VehicleNumber,
			Type:                s.Type,
			CapacityKg:          s.Capacity,
			Owner:               s.Owner,
			RegistrationDate:    p.date("vehicle "+s.ID+" registration_date", s.RegistrationDate),
			InsuranceExpiry:     p.date("vehicle "+s.ID+" insurance_expiry", s.InsuranceExpiry),
			PollutionCertExpiry: p.date("vehicle "+s.ID+" pollution_cert_expiry", s.PollutionCertExpiry),
			Status:              domain.Status(s.Status),
			TotalTrips:          s.TotalTrips,
			AvgLoadKg:           s.AvgLoad,
			LastMaintenance:     p.date("vehicle "+s.ID+" last_maintenance", s.LastMaintenance),
		})
	}

	for _, s := range f.Drivers {
		out.Drivers = append(out.Drivers, domain.Driver{
			ID:               s.ID,
			Name:             s.Name,
			LicenseNumber:    s.LicenseNumber,
			Phone:            s.Phone,
			Email:            s.Email,
			LicenseExpiry:    p.date("driver "+s.ID+" license_expiry", s.LicenseExpiry),
			AadharNumber:     s.AadharNumber,
			Address:          s.Address,
			Status:           domain.Status(s.Status),
			TotalTrips:       s.TotalTrips,
			AvgRating:        s.AvgRating,
			OnTimePercentage: s.OnTimePercentage,
			JoiningDate:      p.date("driver "+s.ID+" joining_date", s.JoiningDate),
		})
	}

	for _, s := range f.Routes {
		out.Routes = append(out.Routes, domain.Route{
			ID:                 s.ID,
			RouteName:          s.RouteName,
			Origin:             s.Origin,
			Destination:        s.Destination,
			DistanceKm:         s.Distance,
			EstimatedDays:      s.EstimatedDays,
			RatePerTon:         decimal.NewFromFloat(s.RatePerTon),
			RatePerKg:          decimal.NewFromFloat(s.RatePerKg),
			MinimumFreight:     decimal.NewFromFloat(s.MinimumFreight),
			ActiveChallans:     s.ActiveChallans,
			CompletedShipments: s.CompletedShipments,
			AvgLoadPercentage:  s.AvgLoadPercentage,
			Status:             domain.Status(s.Status),
			CreatedDate:        p.date("route "+s.ID+" created_date", s.CreatedDate),
		})
	}

	for _, s := range f.Companies {
		out.Customers = append(out.Customers, domain.Customer{
			ID:                 s.ID,
			CompanyName:        s.CompanyName,
			ContactPerson:      s.ContactPerson,
			Phone:              s.Phone,
			Email:              s.Email,
			Address:            s.Address,
			City:               s.City,
			State:              s.State,
			GSTNumber:          s.GSTNumber,
			PANNumber:          s.PANNumber,
			Status:             domain.Status(s.Status),
			TotalShipments:     s.TotalShipments,
			TotalRevenue:       decimal.NewFromFloat(s.TotalRevenue),
			OutstandingBalance: decimal.NewFromFloat(s.OutstandingBalance),
			RegistrationDate:   p.date("customer "+s.ID+" registration_date", s.RegistrationDate),
		})
	}

	for _, s := range f.Invoices {
		out.Invoices = append(out.Invoices, domain.Invoice{
			ID:            s.ID,
			InvoiceNumber: s.InvoiceNumber,
			LRNumber:      s.LRNumber,
			ChallanNumber: s.ChallanNumber,
			Consigner:     s.Consigner,
			Consignee:     s.Consignee,
			InvoiceDate:   p.date("invoice "+s.ID+" invoice_date", s.InvoiceDate),
			DueDate:       p.date("invoice "+s.ID+" due_date", s.DueDate),
			Amount:        decimal.NewFromFloat(s.Amount),
			PaidAmount:    decimal.NewFromFloat(s.PaidAmount),
			GST:           decimal.NewFromFloat(s.GST),
			Status:        domain.Status(s.Status),
			Notes:         s.Notes,
		})
	}

	for _, s := range f.Payments {
		mode := domain.PaymentMode(s.PaymentMode)
		if mode == "" {
			mode = domain.PaymentModeBank
		}
		if !mode.Valid() {
			p.errs = append(p.errs, fmt.Errorf("payment %s: unknown payment_mode %q", s.ID, s.PaymentMode))
		}
		pay := domain.Payment{
			ID:             s.ID,
			InvoiceNumber:  s.InvoiceNumber,
			Consigner:      s.Consigner,
			InvoiceAmount:  decimal.NewFromFloat(s.InvoiceAmount),
			PaidAmount:     decimal.NewFromFloat(s.PaidAmount),
			PaymentDate:    p.date("payment "+s.ID+" payment_date", s.PaymentDate),
			Mode:           mode,
			TransactionRef: s.TransactionRef,
			DueDate:        p.date("payment "+s.ID+" due_date", s.DueDate),
			ReceivedBy:     s.ReceivedBy,
		}
		// Transition only re-derives status and balance.
		out.Payments = append(out.Payments, pay.Transition("", time.Time{}))
	}

	if err := errors.Join(p.errs...); err != nil {
		return services.Fixtures{}, fmt.Errorf("seed fixtures: %w", err)
	}
	return out, nil
}

type fixtureParser struct {
	errs []error
}

func (p *fixtureParser) date(what, s string) time.Time {
	t, err := domain.ParseOptionalTimestamp(s)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %w", what, err))
	}
	return t
}

func (p *fixtureParser) optional(what, s string) *time.Time {
	t := p.date(what, s)
	if t.IsZero() {
		return nil
	}
	return &t
}
