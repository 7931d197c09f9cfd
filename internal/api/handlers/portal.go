package handlers

import (
	"net/http"
	"time"

	"transport-management-service/internal/api/dto"
	"transport-management-service/internal/services"

	"go.uber.org/zap"
)

// PortalHandler serves signed-in consigners their own shipments and invoices.
type PortalHandler struct {
	Tracker *services.Tracker
	Logger  *zap.Logger
	Clock   func() time.Time
}

func (h *PortalHandler) Shipments(w http.ResponseWriter, r *http.Request) {
	s, ok := SessionFrom(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "unauthorized")
		return
	}

	q := r.URL.Query()
	shipments, err := h.Tracker.Shipments(r.Context(), s.Principal.Company, q.Get("search"), q.Get("status"))
	if err != nil {
		writeDomainError(w, r, h.Logger, "portal shipments", err)
		return
	}

	res := dto.ListResponse[dto.ShipmentResponse]{
		Items: make([]dto.ShipmentResponse, 0, len(shipments)),
		Count: len(shipments),
	}
	for _, sh := range shipments {
		res.Items = append(res.Items, dto.NewShipmentResponse(sh))
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *PortalHandler) Invoices(w http.ResponseWriter, r *http.Request) {
	s, ok := SessionFrom(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "unauthorized")
		return
	}

	q := r.URL.Query()
	invoices, err := h.Tracker.Invoices(r.Context(), s.Principal.Company, q.Get("search"), q.Get("status"))
	if err != nil {
		writeDomainError(w, r, h.Logger, "portal invoices", err)
		return
	}

	now := time.Now()
	if h.Clock != nil {
		now = h.Clock()
	}
	res := dto.ListResponse[dto.InvoiceResponse]{
		Items: make([]dto.InvoiceResponse, 0, len(invoices)),
		Count: len(invoices),
	}
	for _, inv := range invoices {
		res.Items = append(res.Items, dto.NewInvoiceResponse(inv, now))
	}
	writeJSON(w, r, http.StatusOK, res)
}
