package api

import (
	"net/http"

	"github.com/hackgods/hospital-triage/internal/scheduling"
)

type HealthHandler struct {
	svc     *scheduling.Service
	env     string
	version string
}

func NewHealthHandler(svc *scheduling.Service, env, version string) *HealthHandler {
	return &HealthHandler{
		svc:     svc,
		env:     env,
		version: version,
	}
}

type LivenessResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	Env     string `json:"env,omitempty"`
}

type ReadinessResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	Env     string `json:"env,omitempty"`
	Served  int    `json:"served"`
	Pending int    `json:"pending"`
}

func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	resp := LivenessResponse{
		Status:  "ok",
		Version: h.version,
		Env:     h.env,
	}
	writeJSON(w, http.StatusOK, resp)
}

// Readiness has no external dependencies to ping; it reports the
// counters so operators can see the system is live and consistent.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	served, pending := h.svc.Totals()
	resp := ReadinessResponse{
		Status:  "ok",
		Version: h.version,
		Env:     h.env,
		Served:  served,
		Pending: pending,
	}
	writeJSON(w, http.StatusOK, resp)
}
