package dto

import (
	"time"

	"transport-management-service/internal/domain"
	"transport-management-service/internal/services"
)

type ShipmentResponse struct {
	LRNumber         string        `json:"lr_number"`
	Origin           string        `json:"origin"`
	Destination      string        `json:"destination"`
	Weight           float64       `json:"weight"`
	Status           domain.Status `json:"status"`
	ShipDate         time.Time     `json:"ship_date"`
	ExpectedDelivery *time.Time    `json:"expected_delivery,omitempty"`
	DeliveredAt      *time.Time    `json:"delivered_at,omitempty"`
	VehicleNumber    string        `json:"vehicle_number,omitempty"`
	DriverName       string        `json:"driver_name,omitempty"`
	DelayHours       *int          `json:"delay_hours,omitempty"`
}

func NewShipmentResponse(s services.Shipment) ShipmentResponse {
	return ShipmentResponse{
		LRNumber:         s.LRNumber,
		Origin:           s.Origin,
		Destination:      s.Destination,
		Weight:           s.WeightKg,
		Status:           s.Status,
		ShipDate:         s.ShipDate,
		ExpectedDelivery: s.ExpectedDelivery,
		DeliveredAt:      s.DeliveredAt,
		VehicleNumber:    s.VehicleNumber,
		DriverName:       s.DriverName,
		DelayHours:       s.DelayHours,
	}
}
