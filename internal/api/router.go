package api

import (
	"net/http"
	"time"

	"transport-management-service/internal/api/dto"
	"transport-management-service/internal/api/handlers"
	"transport-management-service/internal/domain"
	"transport-management-service/internal/platform/metrics"
	"transport-management-service/internal/ports"
	"transport-management-service/internal/services"

	"go.uber.org/zap"
)

// Deps are the services the HTTP layer is built from.
type Deps struct {
	Registry *services.Registry
	Auth     *services.Authenticator
	Policy   domain.AccessPolicy
	Journal  ports.TransitionJournal
	Metrics  *metrics.Metrics
	Checks   map[string]handlers.Check
	Logger   *zap.Logger
	Clock    func() time.Time
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(d Deps) http.Handler {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Clock == nil {
		d.Clock = time.Now
	}

	mux := http.NewServeMux()
	guard := &handlers.SessionGuard{Auth: d.Auth, Logger: d.Logger}
	staff := func(h http.HandlerFunc) http.Handler { return guard.Staff(h) }
	customer := func(h http.HandlerFunc) http.Handler { return guard.Customer(h) }

	authHandler := &handlers.AuthHandler{Auth: d.Auth, Policy: d.Policy, Logger: d.Logger}
	billingHandler := &handlers.BillingHandler{
		Billing: &services.Billing{Registry: d.Registry},
		Policy:  d.Policy,
		Logger:  d.Logger,
		Clock:   d.Clock,
	}
	portalHandler := &handlers.PortalHandler{
		Tracker: &services.Tracker{Registry: d.Registry},
		Logger:  d.Logger,
		Clock:   d.Clock,
	}
	dashboardHandler := &handlers.DashboardHandler{
		Dashboard: &services.Dashboard{Registry: d.Registry, Policy: d.Policy},
		Logger:    d.Logger,
		Clock:     d.Clock,
	}

	healthHandler := &handlers.HealthHandler{Checks: d.Checks}

	mux.HandleFunc("/health", healthHandler.Health)
	if d.Metrics != nil {
		mux.Handle("GET /metrics", d.Metrics.Handler())
	}

	mux.HandleFunc("POST /auth/login", authHandler.Login)
	mux.HandleFunc("POST /auth/logout", authHandler.Logout)
	mux.Handle("GET /me/resources", staff(authHandler.Resources))
	mux.Handle("GET /dashboard", staff(dashboardHandler.Summary))

	mux.HandleFunc("POST /portal/login", authHandler.PortalLogin)
	mux.HandleFunc("POST /portal/logout", authHandler.Logout)
	mux.Handle("GET /portal/shipments", customer(portalHandler.Shipments))
	mux.Handle("GET /portal/invoices", customer(portalHandler.Invoices))

	reg := d.Registry
	mount(mux, staff, "/lrs", &handlers.DocumentHandler[domain.LorryReceipt, dto.LorryReceiptRequest, dto.LorryReceiptResponse]{
		Resource: domain.ResourceLR, Store: reg.LorryReceipts, Render: dto.NewLorryReceiptResponse,
		Journal: d.Journal, Policy: d.Policy, Logger: d.Logger, Clock: d.Clock,
	})
	mount(mux, staff, "/challans", &handlers.DocumentHandler[domain.Challan, dto.ChallanRequest, dto.ChallanResponse]{
		Resource: domain.ResourceChallan, Store: reg.Challans, Render: dto.NewChallanResponse,
		Journal: d.Journal, Policy: d.Policy, Logger: d.Logger, Clock: d.Clock,
	})
	mount(mux, staff, "/vehicles", &handlers.DocumentHandler[domain.Vehicle, dto.VehicleRequest, dto.VehicleResponse]{
		Resource: domain.ResourceVehicles, Store: reg.Vehicles, Render: dto.NewVehicleResponse,
		Journal: d.Journal, Policy: d.Policy, Logger: d.Logger, Clock: d.Clock,
	})
	mount(mux, staff, "/drivers", &handlers.DocumentHandler[domain.Driver, dto.DriverRequest, dto.DriverResponse]{
		Resource: domain.ResourceDrivers, Store: reg.Drivers, Render: dto.NewDriverResponse,
		Journal: d.Journal, Policy: d.Policy, Logger: d.Logger, Clock: d.Clock,
	})
	mount(mux, staff, "/routes", &handlers.DocumentHandler[domain.Route, dto.RouteRequest, dto.RouteResponse]{
		Resource: domain.ResourceRoutes, Store: reg.Routes, Render: dto.NewRouteResponse,
		Journal: d.Journal, Policy: d.Policy, Logger: d.Logger, Clock: d.Clock,
	})
	mount(mux, staff, "/customers", &handlers.DocumentHandler[domain.Customer, dto.CustomerRequest, dto.CustomerResponse]{
		Resource: domain.ResourceCustomers, Store: reg.Customers, Render: dto.NewCustomerResponse,
		Journal: d.Journal, Policy: d.Policy, Logger: d.Logger, Clock: d.Clock,
	})
	mount(mux, staff, "/invoices", &handlers.DocumentHandler[domain.Invoice, dto.InvoiceRequest, dto.InvoiceResponse]{
		Resource: domain.ResourceInvoice, Store: reg.Invoices, Render: dto.NewInvoiceResponse,
		Journal: d.Journal, Policy: d.Policy, Logger: d.Logger, Clock: d.Clock,
	})
	mount(mux, staff, "/payments", &handlers.DocumentHandler[domain.Payment, dto.PaymentRequest, dto.PaymentResponse]{
		Resource: domain.ResourcePayments, Store: reg.Payments, Render: dto.NewPaymentResponse,
		Journal: d.Journal, Policy: d.Policy, Logger: d.Logger, Clock: d.Clock,
	})

	mux.Handle("POST /invoices/{id}/payments", staff(billingHandler.InvoicePayment))
	mux.Handle("POST /payments/{id}/installments", staff(billingHandler.PaymentInstallment))

	return requestIDMiddleware(loggingMiddleware(d.Logger, d.Metrics, mux))
}

// documentRoutes is what mount needs from a DocumentHandler of any type.
type documentRoutes interface {
	List(http.ResponseWriter, *http.Request)
	Create(http.ResponseWriter, *http.Request)
	Get(http.ResponseWriter, *http.Request)
	ChangeStatus(http.ResponseWriter, *http.Request)
	History(http.ResponseWriter, *http.Request)
}

func mount(mux *http.ServeMux, wrap func(http.HandlerFunc) http.Handler, prefix string, h documentRoutes) {
	mux.Handle("GET "+prefix, wrap(h.List))
	mux.Handle("POST "+prefix, wrap(h.Create))
	mux.Handle("GET "+prefix+"/{id}", wrap(h.Get))
	mux.Handle("POST "+prefix+"/{id}/status", wrap(h.ChangeStatus))
	mux.Handle("GET "+prefix+"/{id}/history", wrap(h.History))
}
