package dto

import (
	"time"

	"transport-management-service/internal/domain"
	"transport-management-service/internal/services"

	"github.com/shopspring/decimal"
)

type StatusCountsResponse struct {
	Resource string         `json:"resource"`
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status"`
}

type InvoiceTotalsResponse struct {
	Total   decimal.Decimal `json:"total"`
	Paid    decimal.Decimal `json:"paid"`
	Pending decimal.Decimal `json:"pending"`
	GST     decimal.Decimal `json:"gst"`
}

type CollectionTotalsResponse struct {
	Collected      decimal.Decimal `json:"collected"`
	Outstanding    decimal.Decimal `json:"outstanding"`
	CollectionRate float64         `json:"collection_rate"`
	DSO            float64         `json:"dso"`
	Overdue        int             `json:"overdue"`
}

type DeliveryTotalsResponse struct {
	Delivered  int     `json:"delivered"`
	OnTime     int     `json:"on_time"`
	Late       int     `json:"late"`
	OnTimeRate float64 `json:"on_time_rate"`
}

type ComplianceAlertResponse struct {
	Resource    string             `json:"resource"`
	DocumentID  string             `json:"document_id"`
	Label       string             `json:"label"`
	Certificate string             `json:"certificate"`
	Expiry      time.Time          `json:"expiry"`
	Class       domain.ExpiryClass `json:"class"`
}

type DashboardResponse struct {
	Role        string                    `json:"role"`
	Resources   []StatusCountsResponse    `json:"resources"`
	Invoices    *InvoiceTotalsResponse    `json:"invoices,omitempty"`
	Collections *CollectionTotalsResponse `json:"collections,omitempty"`
	Deliveries  *DeliveryTotalsResponse   `json:"deliveries,omitempty"`
	Alerts      []ComplianceAlertResponse `json:"alerts"`
}

func NewDashboardResponse(s services.Summary) DashboardResponse {
	res := DashboardResponse{
		Role:      string(s.Role),
		Resources: make([]StatusCountsResponse, 0, len(s.Resources)),
		Alerts:    make([]ComplianceAlertResponse, 0, len(s.Alerts)),
	}

	for _, c := range s.Resources {
		by := make(map[string]int, len(c.ByStatus))
		for st, n := range c.ByStatus {
			by[string(st)] = n
		}
		res.Resources = append(res.Resources, StatusCountsResponse{Resource: string(c.Resource), Total: c.Total, ByStatus: by})
	}

	if s.Invoices != nil {
		res.Invoices = &InvoiceTotalsResponse{
			Total:   s.Invoices.Total,
			Paid:    s.Invoices.Paid,
			Pending: s.Invoices.Pending,
			GST:     s.Invoices.GST,
		}
	}
	if s.Collections != nil {
		res.Collections = &CollectionTotalsResponse{
			Collected:      s.Collections.Collected,
			Outstanding:    s.Collections.Outstanding,
			CollectionRate: s.Collections.CollectionRate,
			DSO:            s.Collections.DSO,
			Overdue:        s.Collections.Overdue,
		}
	}
	if s.Deliveries != nil {
		res.Deliveries = &DeliveryTotalsResponse{
			Delivered:  s.Deliveries.Delivered,
			OnTime:     s.Deliveries.OnTime,
			Late:       s.Deliveries.Late,
			OnTimeRate: s.Deliveries.OnTimeRate,
		}
	}

	for _, a := range s.Alerts {
		res.Alerts = append(res.Alerts, ComplianceAlertResponse{
			Resource:    string(a.Resource),
			DocumentID:  a.DocumentID,
			Label:       a.Label,
			Certificate: a.Certificate,
			Expiry:      a.Expiry,
			Class:       a.Class,
		})
	}

	return res
}
