package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/hackgods/hospital-triage/internal/scheduling"
)

type RouterConfig struct {
	Service         *scheduling.Service
	Logger          zerolog.Logger
	DefaultQueueCap int
	Env             string
	Version         string
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Apply middleware
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware(cfg.Logger))

	// Health endpoints
	health := NewHealthHandler(cfg.Service, cfg.Env, cfg.Version)
	r.Get("/health/live", health.Liveness)
	r.Get("/health/ready", health.Readiness)

	// Patient registry
	r.Post("/patients", registerPatientHandler(cfg.Service))
	r.Get("/patients/{id}", getPatientHandler(cfg.Service))

	// Providers and slots
	r.Post("/providers", addProviderHandler(cfg.Service, cfg.DefaultQueueCap))
	r.Get("/providers/{id}/slots", listSlotsHandler(cfg.Service))
	r.Post("/providers/{id}/slots", addSlotHandler(cfg.Service))
	r.Delete("/providers/{id}/slots/{slotID}", cancelSlotHandler(cfg.Service))
	r.Get("/providers/{id}/summary", providerSummaryHandler(cfg.Service))
	r.Post("/providers/{id}/serve", serveNextHandler(cfg.Service))

	// Token lifecycle
	r.Post("/bookings", bookRoutineHandler(cfg.Service))
	r.Post("/triage", triageInsertHandler(cfg.Service))
	r.Post("/undo", undoHandler(cfg.Service))

	// Reports
	r.Get("/reports/totals", totalsHandler(cfg.Service))
	r.Get("/reports/frequent", topFrequentHandler(cfg.Service))

	return r
}
