package http

import (
	"net/http"

	"mediconnect/internal/delivery/http/handler"
	"mediconnect/internal/delivery/http/middleware"
	"mediconnect/pkg/metrics"

	"github.com/gorilla/mux"
)

type Router struct {
	router                *mux.Router
	authHandler           *handler.AuthHandler
	doctorHandler         *handler.DoctorHandler
	bookingSessionHandler *handler.BookingSessionHandler
	bookingHandler        *handler.BookingHandler
	auditLogHandler       *handler.AuditLogHandler
	siteHandler           *handler.SiteHandler
	authMiddleware        *middleware.AuthMiddleware
	corsMiddleware        *middleware.CORSMiddleware
	loggingMiddleware     *middleware.LoggingMiddleware
	metrics               *metrics.Collector
}

func NewRouter(
	authHandler *handler.AuthHandler,
	doctorHandler *handler.DoctorHandler,
	bookingSessionHandler *handler.BookingSessionHandler,
	bookingHandler *handler.BookingHandler,
	auditLogHandler *handler.AuditLogHandler,
	siteHandler *handler.SiteHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
	collector *metrics.Collector,
) *Router {
	return &Router{
		router:                mux.NewRouter(),
		authHandler:           authHandler,
		doctorHandler:         doctorHandler,
		bookingSessionHandler: bookingSessionHandler,
		bookingHandler:        bookingHandler,
		auditLogHandler:       auditLogHandler,
		siteHandler:           siteHandler,
		authMiddleware:        authMiddleware,
		corsMiddleware:        corsMiddleware,
		loggingMiddleware:     loggingMiddleware,
		metrics:               collector,
	}
}

func (r *Router) Setup() *mux.Router {
	r.router.Handle("/metrics", r.metrics.Handler()).Methods(http.MethodGet)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)
	api.HandleFunc("/site", r.siteHandler.GetSite).Methods(http.MethodGet)

	// Doctor directory (public)
	api.HandleFunc("/doctors", r.doctorHandler.ListDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}/related", r.doctorHandler.GetRelatedDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}/slots", r.doctorHandler.GetDoctorSlots).Methods(http.MethodGet)

	// Appointment page (public)
	sessions := api.PathPrefix("/booking-sessions").Subrouter()
	sessions.HandleFunc("", r.bookingSessionHandler.StartSession).Methods(http.MethodPost)
	sessions.HandleFunc("/{id}", r.bookingSessionHandler.GetSession).Methods(http.MethodGet)
	sessions.HandleFunc("/{id}/doctor", r.bookingSessionHandler.ChangeDoctor).Methods(http.MethodPut)
	sessions.HandleFunc("/{id}/day", r.bookingSessionHandler.SelectDay).Methods(http.MethodPut)
	sessions.HandleFunc("/{id}/slot", r.bookingSessionHandler.SelectSlot).Methods(http.MethodPut)
	sessions.HandleFunc("/{id}/submit", r.bookingSessionHandler.Submit).Methods(http.MethodPost)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentAdmin).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	admin.HandleFunc("/doctors", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	admin.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.DeleteDoctor).Methods(http.MethodDelete)
	admin.HandleFunc("/doctors/{id}/image", r.doctorHandler.UploadDoctorImage).Methods(http.MethodPost)

	admin.HandleFunc("/bookings", r.bookingHandler.GetAllBookings).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{id}", r.bookingHandler.GetBooking).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{id}/cancel", r.bookingHandler.CancelBooking).Methods(http.MethodPost)

	admin.HandleFunc("/audit-logs", r.auditLogHandler.ListAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.metrics.HTTPMiddleware)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
