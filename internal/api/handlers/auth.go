package handlers

import (
	"errors"
	"net/http"

	"transport-management-service/internal/api/dto"
	"transport-management-service/internal/domain"
	"transport-management-service/internal/platform/obs"
	"transport-management-service/internal/services"

	"go.uber.org/zap"
)

const invalidCredentials = "Invalid email or password"

// AuthHandler serves staff and portal login. The two credential lists never mix.
type AuthHandler struct {
	Auth   *services.Authenticator
	Policy domain.AccessPolicy
	Logger *zap.Logger
}

type loginFunc func(r *http.Request, email, password string) (domain.Session, error)

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, func(r *http.Request, email, password string) (domain.Session, error) {
		return h.Auth.LoginStaff(r.Context(), email, password)
	})
}

func (h *AuthHandler) PortalLogin(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, func(r *http.Request, email, password string) (domain.Session, error) {
		return h.Auth.LoginCustomer(r.Context(), email, password)
	})
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request, fn loginFunc) {
	var req dto.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	s, err := fn(r, req.Email, req.Password)
	if errors.Is(err, domain.ErrAuthFailure) {
		writeError(w, r, http.StatusUnauthorized, invalidCredentials)
		return
	}
	if err != nil {
		h.Logger.Error("login failed",
			zap.String("req_id", obs.RequestID(r.Context())),
			zap.Error(err),
		)
		writeError(w, r, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.Logger.Info("login",
		zap.String("principal_id", s.Principal.ID),
		zap.String("kind", string(s.Principal.Kind)),
		zap.String("role", string(s.Principal.Role)),
	)
	writeJSON(w, r, http.StatusOK, dto.NewLoginResponse(s))
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		writeError(w, r, http.StatusUnauthorized, "unauthorized")
		return
	}
	if err := h.Auth.Logout(r.Context(), token); err != nil {
		writeDomainError(w, r, h.Logger, "logout", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Resources lists the dashboard tabs the signed-in staff member may open.
func (h *AuthHandler) Resources(w http.ResponseWriter, r *http.Request) {
	s, ok := SessionFrom(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "unauthorized")
		return
	}

	allowed := h.Policy.ResourcesFor(s.Principal.Role)
	res := dto.ResourcesResponse{Role: string(s.Principal.Role), Resources: make([]string, 0, len(allowed))}
	for _, a := range allowed {
		res.Resources = append(res.Resources, string(a))
	}
	writeJSON(w, r, http.StatusOK, res)
}
