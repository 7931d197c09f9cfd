package dto

import (
	"time"

	"transport-management-service/internal/domain"

	"github.com/shopspring/decimal"
)

// DocumentResponse wraps a single document with the statuses it may move to next.
type DocumentResponse[V any] struct {
	Document     V               `json:"document"`
	NextStatuses []domain.Status `json:"next_statuses"`
}

type ListResponse[V any] struct {
	Items []V `json:"items"`
	Count int `json:"count"`
}

type TransitionResponse struct {
	From string    `json:"from,omitempty"`
	To   string    `json:"to"`
	At   time.Time `json:"at"`
}

type HistoryResponse struct {
	Resource   string               `json:"resource"`
	DocumentID string               `json:"document_id"`
	History    []TransitionResponse `json:"history"`
}

func NewHistoryResponse(res domain.Resource, id string, ts []domain.Transition) HistoryResponse {
	out := HistoryResponse{Resource: string(res), DocumentID: id, History: make([]TransitionResponse, 0, len(ts))}
	for _, t := range ts {
		out.History = append(out.History, TransitionResponse{From: string(t.From), To: string(t.To), At: t.At})
	}
	return out
}

type LorryReceiptResponse struct {
	ID          string          `json:"id"`
	LRNumber    string          `json:"lr_number"`
	Consigner   string          `json:"consigner"`
	Consignee   string          `json:"consignee"`
	Origin      string          `json:"origin"`
	Destination string          `json:"destination"`
	Weight      float64         `json:"weight"`
	Rate        decimal.Decimal `json:"rate"`
	TotalValue  decimal.Decimal `json:"total_value"`
	Status      domain.Status   `json:"status"`
	Date        time.Time       `json:"date"`
	DeliveredAt *time.Time      `json:"delivered_at,omitempty"`
}

func NewLorryReceiptResponse(lr domain.LorryReceipt, _ time.Time) LorryReceiptResponse {
	return LorryReceiptResponse{
		ID:          lr.ID,
		LRNumber:    lr.LRNumber,
		Consigner:   lr.Consigner,
		Consignee:   lr.Consignee,
		Origin:      lr.Origin,
		Destination: lr.Destination,
		Weight:      lr.WeightKg,
		Rate:        lr.Rate,
		TotalValue:  lr.TotalValue(),
		Status:      lr.Status,
		Date:        lr.Date,
		DeliveredAt: lr.DeliveredAt,
	}
}

type ChallanResponse struct {
	ID              string        `json:"id"`
	ChallanNumber   string        `json:"challan_number"`
	LRNumber        string        `json:"lr_number"`
	VehicleNumber   string        `json:"vehicle_number"`
	DriverName      string        `json:"driver_name"`
	DriverContact   string        `json:"driver_contact"`
	Route           string        `json:"route"`
	Departure       time.Time     `json:"departure"`
	ExpectedArrival *time.Time    `json:"expected_arrival,omitempty"`
	ActualArrival   *time.Time    `json:"actual_arrival,omitempty"`
	DelayHours      *int          `json:"delay_hours,omitempty"`
	Status          domain.Status `json:"status"`
	Date            time.Time     `json:"date"`
}

func NewChallanResponse(ch domain.Challan, _ time.Time) ChallanResponse {
	res := ChallanResponse{
		ID:              ch.ID,
		ChallanNumber:   ch.ChallanNumber,
		LRNumber:        ch.LRNumber,
		VehicleNumber:   ch.VehicleNumber,
		DriverName:      ch.DriverName,
		DriverContact:   ch.DriverContact,
		Route:           ch.Route,
		Departure:       ch.Departure,
		ExpectedArrival: optionalTime(ch.ExpectedArrival),
		ActualArrival:   ch.ActualArrival,
		Status:          ch.Status,
		Date:            ch.Date,
	}
	if delay, ok := ch.DelayHours(); ok {
		res.DelayHours = &delay
	}
	return res
}

type VehicleResponse struct {
	ID                  string             `json:"id"`
	VehicleNumber       string             `json:"vehicle_number"`
	Type                string             `json:"type"`
	Capacity            int                `json:"capacity"`
	Owner               string             `json:"owner"`
	RegistrationDate    *time.Time         `json:"registration_date,omitempty"`
	InsuranceExpiry     *time.Time         `json:"insurance_expiry,omitempty"`
	InsuranceStatus     domain.ExpiryClass `json:"insurance_status,omitempty"`
	PollutionCertExpiry *time.Time         `json:"pollution_cert_expiry,omitempty"`
	PollutionCertStatus domain.ExpiryClass `json:"pollution_cert_status,omitempty"`
	Status              domain.Status      `json:"status"`
	TotalTrips          int                `json:"total_trips"`
	AvgLoad             int                `json:"avg_load"`
	LastMaintenance     *time.Time         `json:"last_maintenance,omitempty"`
}

func NewVehicleResponse(v domain.Vehicle, now time.Time) VehicleResponse {
	res := VehicleResponse{
		ID:                  v.ID,
		VehicleNumber:       v.VehicleNumber,
		Type:                v.Type,
		Capacity:            v.CapacityKg,
		Owner:               v.Owner,
		RegistrationDate:    optionalTime(v.RegistrationDate),
		InsuranceExpiry:     optionalTime(v.InsuranceExpiry),
		PollutionCertExpiry: optionalTime(v.PollutionCertExpiry),
		Status:              v.Status,
		TotalTrips:          v.TotalTrips,
		AvgLoad:             v.AvgLoadKg,
		LastMaintenance:     optionalTime(v.LastMaintenance),
	}
	if !v.InsuranceExpiry.IsZero() {
		res.InsuranceStatus = v.InsuranceClass(now)
	}
	if !v.PollutionCertExpiry.IsZero() {
		res.PollutionCertStatus = v.PollutionCertClass(now)
	}
	return res
}

type DriverResponse struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	LicenseNumber    string             `json:"license_number"`
	Phone            string             `json:"phone"`
	Email            string             `json:"email"`
	LicenseExpiry    *time.Time         `json:"license_expiry,omitempty"`
	LicenseStatus    domain.ExpiryClass `json:"license_status,omitempty"`
	AadharNumber     string             `json:"aadhar_number"`
	Address          string             `json:"address"`
	Status           domain.Status      `json:"status"`
	TotalTrips       int                `json:"total_trips"`
	AvgRating        float64            `json:"avg_rating"`
	OnTimePercentage float64            `json:"on_time_percentage"`
	JoiningDate      *time.Time         `json:"joining_date,omitempty"`
}

func NewDriverResponse(d domain.Driver, now time.Time) DriverResponse {
	res := DriverResponse{
		ID:               d.ID,
		Name:             d.Name,
		LicenseNumber:    d.LicenseNumber,
		Phone:            d.Phone,
		Email:            d.Email,
		LicenseExpiry:    optionalTime(d.LicenseExpiry),
		AadharNumber:     d.AadharNumber,
		Address:          d.Address,
		Status:           d.Status,
		TotalTrips:       d.TotalTrips,
		AvgRating:        d.AvgRating,
		OnTimePercentage: d.OnTimePercentage,
		JoiningDate:      optionalTime(d.JoiningDate),
	}
	if !d.LicenseExpiry.IsZero() {
		res.LicenseStatus = d.LicenseClass(now)
	}
	return res
}

type RouteResponse struct {
	ID                 string          `json:"id"`
	RouteName          string          `json:"route_name"`
	Origin             string          `json:"origin"`
	Destination        string          `json:"destination"`
	Distance           int             `json:"distance"`
	EstimatedDays      int             `json:"estimated_days"`
	RatePerTon         decimal.Decimal `json:"rate_per_ton"`
	RatePerKg          decimal.Decimal `json:"rate_per_kg"`
	MinimumFreight     decimal.Decimal `json:"minimum_freight"`
	ActiveChallans     int             `json:"active_challans"`
	CompletedShipments int             `json:"completed_shipments"`
	AvgLoadPercentage  float64         `json:"avg_load_percentage"`
	EstimatedRevenue   decimal.Decimal `json:"estimated_revenue"`
	Status             domain.Status   `json:"status"`
	CreatedDate        *time.Time      `json:"created_date,omitempty"`
}

func NewRouteResponse(r domain.Route, _ time.Time) RouteResponse {
	return RouteResponse{
		ID:                 r.ID,
		RouteName:          r.RouteName,
		Origin:             r.Origin,
		Destination:        r.Destination,
		Distance:           r.DistanceKm,
		EstimatedDays:      r.EstimatedDays,
		RatePerTon:         r.RatePerTon,
		RatePerKg:          r.RatePerKg,
		MinimumFreight:     r.MinimumFreight,
		ActiveChallans:     r.ActiveChallans,
		CompletedShipments: r.CompletedShipments,
		AvgLoadPercentage:  r.AvgLoadPercentage,
		EstimatedRevenue:   r.EstimatedRevenue(),
		Status:             r.Status,
		CreatedDate:        optionalTime(r.CreatedDate),
	}
}

type CustomerResponse struct {
	ID                 string          `json:"id"`
	CompanyName        string          `json:"company_name"`
	ContactPerson      string          `json:"contact_person"`
	Phone              string          `json:"phone"`
	Email              string          `json:"email"`
	Address            string          `json:"address"`
	City               string          `json:"city"`
	State              string          `json:"state"`
	GSTNumber          string          `json:"gst_number"`
	PANNumber          string          `json:"pan_number"`
	Status             domain.Status   `json:"status"`
	TotalShipments     int             `json:"total_shipments"`
	TotalRevenue       decimal.Decimal `json:"total_revenue"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
	CreditUtilization  float64         `json:"credit_utilization"`
	RegistrationDate   *time.Time      `json:"registration_date,omitempty"`
}

func NewCustomerResponse(c domain.Customer, _ time.Time) CustomerResponse {
	return CustomerResponse{
		ID:                 c.ID,
		CompanyName:        c.CompanyName,
		ContactPerson:      c.ContactPerson,
		Phone:              c.Phone,
		Email:              c.Email,
		Address:            c.Address,
		City:               c.City,
		State:              c.State,
		GSTNumber:          c.GSTNumber,
		PANNumber:          c.PANNumber,
		Status:             c.Status,
		TotalShipments:     c.TotalShipments,
		TotalRevenue:       c.TotalRevenue,
		OutstandingBalance: c.OutstandingBalance,
		CreditUtilization:  c.CreditUtilization(),
		RegistrationDate:   optionalTime(c.RegistrationDate),
	}
}

type InvoiceResponse struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	LRNumber      string          `json:"lr_number"`
	ChallanNumber string          `json:"challan_number"`
	Consigner     string          `json:"consigner"`
	Consignee     string          `json:"consignee"`
	InvoiceDate   time.Time       `json:"invoice_date"`
	DueDate       time.Time       `json:"due_date"`
	DaysUntilDue  int             `json:"days_until_due"`
	Amount        decimal.Decimal `json:"amount"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	Remaining     decimal.Decimal `json:"remaining"`
	GST           decimal.Decimal `json:"gst"`
	TotalWithGST  decimal.Decimal `json:"total_with_gst"`
	Status        domain.Status   `json:"status"`
	Notes         string          `json:"notes,omitempty"`
}

func NewInvoiceResponse(inv domain.Invoice, now time.Time) InvoiceResponse {
	return InvoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		LRNumber:      inv.LRNumber,
		ChallanNumber: inv.ChallanNumber,
		Consigner:     inv.Consigner,
		Consignee:     inv.Consignee,
		InvoiceDate:   inv.InvoiceDate,
		DueDate:       inv.DueDate,
		DaysUntilDue:  domain.DaysUntilDue(inv.DueDate, now),
		Amount:        inv.Amount,
		PaidAmount:    inv.PaidAmount,
		Remaining:     inv.Remaining(),
		GST:           inv.GST,
		TotalWithGST:  inv.TotalWithGST(),
		Status:        inv.Status,
		Notes:         inv.Notes,
	}
}

type PaymentResponse struct {
	ID               string             `json:"id"`
	InvoiceNumber    string             `json:"invoice_number"`
	Consigner        string             `json:"consigner"`
	InvoiceAmount    decimal.Decimal    `json:"invoice_amount"`
	PaidAmount       decimal.Decimal    `json:"paid_amount"`
	RemainingBalance decimal.Decimal    `json:"remaining_balance"`
	Utilization      float64            `json:"utilization"`
	PaymentDate      *time.Time         `json:"payment_date,omitempty"`
	PaymentMode      domain.PaymentMode `json:"payment_mode"`
	TransactionRef   string             `json:"transaction_ref,omitempty"`
	Status           domain.Status      `json:"status"`
	DueDate          time.Time          `json:"due_date"`
	DaysUntilDue     int                `json:"days_until_due"`
	ReceivedBy       string             `json:"received_by,omitempty"`
}

func NewPaymentResponse(p domain.Payment, now time.Time) PaymentResponse {
	return PaymentResponse{
		ID:               p.ID,
		InvoiceNumber:    p.InvoiceNumber,
		Consigner:        p.Consigner,
		InvoiceAmount:    p.InvoiceAmount,
		PaidAmount:       p.PaidAmount,
		RemainingBalance: p.RemainingBalance,
		Utilization:      p.Summary().Utilization,
		PaymentDate:      optionalTime(p.PaymentDate),
		PaymentMode:      p.Mode,
		TransactionRef:   p.TransactionRef,
		Status:           p.Status,
		DueDate:          p.DueDate,
		DaysUntilDue:     domain.DaysUntilDue(p.DueDate, now),
		ReceivedBy:       p.ReceivedBy,
	}
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
