package handlers

import (
	"net/http"
	"time"

	"transport-management-service/internal/api/dto"
	"transport-management-service/internal/services"

	"go.uber.org/zap"
)

type DashboardHandler struct {
	Dashboard *services.Dashboard
	Logger    *zap.Logger
	Clock     func() time.Time
}

// Summary returns the dashboard for the caller's role; blocks the role cannot see are omitted.
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	s, ok := SessionFrom(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "unauthorized")
		return
	}

	now := time.Now()
	if h.Clock != nil {
		now = h.Clock()
	}

	sum, err := h.Dashboard.Summarize(r.Context(), s.Principal.Role, now)
	if err != nil {
		writeDomainError(w, r, h.Logger, "dashboard", err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.NewDashboardResponse(sum))
}
