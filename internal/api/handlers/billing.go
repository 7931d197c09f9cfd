package handlers

import (
	"net/http"
	"time"

	"transport-management-service/internal/api/dto"
	"transport-management-service/internal/domain"
	"transport-management-service/internal/services"

	"go.uber.org/zap"
)

type BillingHandler struct {
	Billing *services.Billing
	Policy  domain.AccessPolicy
	Logger  *zap.Logger
	Clock   func() time.Time
}

func (h *BillingHandler) InvoicePayment(w http.ResponseWriter, r *http.Request) {
	if !authorize(w, r, h.Policy, domain.ResourceInvoice, domain.ActionRecordPayment) {
		return
	}

	var req dto.AmountRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	inv, err := h.Billing.RecordInvoicePayment(r.Context(), r.PathValue("id"), req.Amount)
	if err != nil {
		writeDomainError(w, r, h.Logger, "record invoice payment", err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.NewInvoiceResponse(inv, h.now()))
}

func (h *BillingHandler) PaymentInstallment(w http.ResponseWriter, r *http.Request) {
	if !authorize(w, r, h.Policy, domain.ResourcePayments, domain.ActionRecordPayment) {
		return
	}

	var req dto.AmountRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.Billing.RecordPaymentInstallment(r.Context(), r.PathValue("id"), req.Amount)
	if err != nil {
		writeDomainError(w, r, h.Logger, "record payment installment", err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.NewPaymentResponse(p, h.now()))
}

func (h *BillingHandler) now() time.Time {
	if h.Clock == nil {
		return time.Now()
	}
	return h.Clock()
}
