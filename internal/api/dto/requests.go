package dto

import (
	"fmt"
	"strings"
	"time"

	"transport-management-service/internal/domain"

	"github.com/shopspring/decimal"
)

// Draft is a create request that converts into a domain document.
// Identity, status and defaulted fields are assigned by the store.
type Draft[T any] interface {
	ToDocument() (T, error)
}

type StatusChangeRequest struct {
	Status string `json:"status"`
}

// AmountRequest records money received. Amount accepts a JSON number or string.
type AmountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type LorryReceiptRequest struct {
	Consigner   string          `json:"consigner"`
	Consignee   string          `json:"consignee"`
	Origin      string          `json:"origin"`
	Destination string          `json:"destination"`
	Weight      float64         `json:"weight"`
	Rate        decimal.Decimal `json:"rate"`
	Date        string          `json:"date"`
}

func (r LorryReceiptRequest) ToDocument() (domain.LorryReceipt, error) {
	var p dates
	lr := domain.LorryReceipt{
		Consigner:   strings.TrimSpace(r.Consigner),
		Consignee:   strings.TrimSpace(r.Consignee),
		Origin:      strings.TrimSpace(r.Origin),
		Destination: strings.TrimSpace(r.Destination),
		WeightKg:    r.Weight,
		Rate:        r.Rate,
		Date:        p.parse("date", r.Date),
	}
	return lr, p.err
}

type ChallanRequest struct {
	LRNumber        string `json:"lr_number"`
	VehicleNumber   string `json:"vehicle_number"`
	DriverName      string `json:"driver_name"`
	DriverContact   string `json:"driver_contact"`
	Route           string `json:"route"`
	Departure       string `json:"departure"`
	ExpectedArrival string `json:"expected_arrival"`
	Date            string `json:"date"`
}

func (r ChallanRequest) ToDocument() (domain.Challan, error) {
	var p dates
	ch := domain.Challan{
		LRNumber:        strings.TrimSpace(r.LRNumber),
		VehicleNumber:   strings.TrimSpace(r.VehicleNumber),
		DriverName:      strings.TrimSpace(r.DriverName),
		DriverContact:   strings.TrimSpace(r.DriverContact),
		Route:           strings.TrimSpace(r.Route),
		Departure:       p.parse("departure", r.Departure),
		ExpectedArrival: p.parse("expected_arrival", r.ExpectedArrival),
		Date:            p.parse("date", r.Date),
	}
	return ch, p.err
}

type VehicleRequest struct {
	VehicleNumber       string `json:"vehicle_number"`
	Type                string `json:"type"`
	Capacity            int    `json:"capacity"`
	Owner               string `json:"owner"`
	RegistrationDate    string `json:"registration_date"`
	InsuranceExpiry     string `json:"insurance_expiry"`
	PollutionCertExpiry string `json:"pollution_cert_expiry"`
}

func (r VehicleRequest) ToDocument() (domain.Vehicle, error) {
	var p dates
	v := domain.Vehicle{
		VehicleNumber:       strings.TrimSpace(r.VehicleNumber),
		Type:                strings.TrimSpace(r.Type),
		CapacityKg:          r.Capacity,
		Owner:               strings.TrimSpace(r.Owner),
		RegistrationDate:    p.parse("registration_date", r.RegistrationDate),
		InsuranceExpiry:     p.parse("insurance_expiry", r.InsuranceExpiry),
		PollutionCertExpiry: p.parse("pollution_cert_expiry", r.PollutionCertExpiry),
	}
	return v, p.err
}

type DriverRequest struct {
	Name          string `json:"name"`
	LicenseNumber string `json:"license_number"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	LicenseExpiry string `json:"license_expiry"`
	AadharNumber  string `json:"aadhar_number"`
	Address       string `json:"address"`
}

func (r DriverRequest) ToDocument() (domain.Driver, error) {
	var p dates
	d := domain.Driver{
		Name:          strings.TrimSpace(r.Name),
		LicenseNumber: strings.TrimSpace(r.LicenseNumber),
		Phone:         strings.TrimSpace(r.Phone),
		Email:         strings.TrimSpace(r.Email),
		LicenseExpiry: p.parse("license_expiry", r.LicenseExpiry),
		AadharNumber:  strings.TrimSpace(r.AadharNumber),
		Address:       strings.TrimSpace(r.Address),
	}
	return d, p.err
}

type RouteRequest struct {
	RouteName      string          `json:"route_name"`
	Origin         string          `json:"origin"`
	Destination    string          `json:"destination"`
	Distance       int             `json:"distance"`
	EstimatedDays  int             `json:"estimated_days"`
	RatePerTon     decimal.Decimal `json:"rate_per_ton"`
	RatePerKg      decimal.Decimal `json:"rate_per_kg"`
	MinimumFreight decimal.Decimal `json:"minimum_freight"`
}

func (r RouteRequest) ToDocument() (domain.Route, error) {
	return domain.Route{
		RouteName:      strings.TrimSpace(r.RouteName),
		Origin:         strings.TrimSpace(r.Origin),
		Destination:    strings.TrimSpace(r.Destination),
		DistanceKm:     r.Distance,
		EstimatedDays:  r.EstimatedDays,
		RatePerTon:     r.RatePerTon,
		RatePerKg:      r.RatePerKg,
		MinimumFreight: r.MinimumFreight,
	}, nil
}

type CustomerRequest struct {
	CompanyName   string `json:"company_name"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	GSTNumber     string `json:"gst_number"`
	PANNumber     string `json:"pan_number"`
}

func (r CustomerRequest) ToDocument() (domain.Customer, error) {
	return domain.Customer{
		CompanyName:   strings.TrimSpace(r.CompanyName),
		ContactPerson: strings.TrimSpace(r.ContactPerson),
		Phone:         strings.TrimSpace(r.Phone),
		Email:         strings.TrimSpace(r.Email),
		Address:       strings.TrimSpace(r.Address),
		City:          strings.TrimSpace(r.City),
		State:         strings.TrimSpace(r.State),
		GSTNumber:     strings.ToUpper(strings.TrimSpace(r.GSTNumber)),
		PANNumber:     strings.ToUpper(strings.TrimSpace(r.PANNumber)),
	}, nil
}

type InvoiceRequest struct {
	LRNumber      string          `json:"lr_number"`
	ChallanNumber string          `json:"challan_number"`
	Consigner     string          `json:"consigner"`
	Consignee     string          `json:"consignee"`
	InvoiceDate   string          `json:"invoice_date"`
	DueDate       string          `json:"due_date"`
	Amount        decimal.Decimal `json:"amount"`
	GST           decimal.Decimal `json:"gst"`
	Notes         string          `json:"notes"`
}

func (r InvoiceRequest) ToDocument() (domain.Invoice, error) {
	var p dates
	inv := domain.Invoice{
		LRNumber:      strings.TrimSpace(r.LRNumber),
		ChallanNumber: strings.TrimSpace(r.ChallanNumber),
		Consigner:     strings.TrimSpace(r.Consigner),
		Consignee:     strings.TrimSpace(r.Consignee),
		InvoiceDate:   p.parse("invoice_date", r.InvoiceDate),
		DueDate:       p.parse("due_date", r.DueDate),
		Amount:        r.Amount,
		GST:           r.GST,
		Notes:         strings.TrimSpace(r.Notes),
	}
	return inv, p.err
}

type PaymentRequest struct {
	InvoiceNumber  string          `json:"invoice_number"`
	Consigner      string          `json:"consigner"`
	InvoiceAmount  decimal.Decimal `json:"invoice_amount"`
	PaidAmount     decimal.Decimal `json:"paid_amount"`
	PaymentDate    string          `json:"payment_date"`
	PaymentMode    string          `json:"payment_mode"`
	TransactionRef string          `json:"transaction_ref"`
	DueDate        string          `json:"due_date"`
	ReceivedBy     string          `json:"received_by"`
}

func (r PaymentRequest) ToDocument() (domain.Payment, error) {
	mode := domain.PaymentMode(strings.ToLower(strings.TrimSpace(r.PaymentMode)))
	if mode != "" && !mode.Valid() {
		return domain.Payment{}, fmt.Errorf("payment_mode: unknown mode %q", r.PaymentMode)
	}

	var p dates
	pay := domain.Payment{
		InvoiceNumber:  strings.TrimSpace(r.InvoiceNumber),
		Consigner:      strings.TrimSpace(r.Consigner),
		InvoiceAmount:  r.InvoiceAmount,
		PaidAmount:     r.PaidAmount,
		PaymentDate:    p.parse("payment_date", r.PaymentDate),
		Mode:           mode,
		TransactionRef: strings.TrimSpace(r.TransactionRef),
		DueDate:        p.parse("due_date", r.DueDate),
		ReceivedBy:     strings.TrimSpace(r.ReceivedBy),
	}
	return pay, p.err
}

// dates keeps the first parse failure so a request reports one clear error.
type dates struct {
	err error
}

func (d *dates) parse(name, s string) time.Time {
	t, err := domain.ParseOptionalTimestamp(s)
	if err != nil && d.err == nil {
		d.err = fmt.Errorf("%s: %w", name, err)
	}
	return t
}
