package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hackgods/hospital-triage/internal/scheduling"
)

func registerPatientHandler(svc *scheduling.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterPatientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
			return
		}

		svc.RegisterPatient(scheduling.Patient{
			ID:      req.ID,
			Name:    req.Name,
			Age:     req.Age,
			History: req.History,
		})

		p, err := svc.GetPatient(req.ID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}

		writeJSON(w, http.StatusCreated, p)
	}
}

func getPatientHandler(svc *scheduling.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlInt(w, r, "id", "patient id")
		if !ok {
			return
		}

		p, err := svc.GetPatient(id)
		if err != nil {
			handleSchedulingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, p)
	}
}

func addProviderHandler(svc *scheduling.Service, defaultCap int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddProviderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
			return
		}

		capacity := req.Capacity
		if capacity <= 0 {
			capacity = defaultCap
		}

		if err := svc.AddProvider(req.ID, req.Name, req.Specialty, capacity); err != nil {
			handleSchedulingError(w, err)
			return
		}

		rep, err := svc.ProviderSummary(req.ID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}

		writeJSON(w, http.StatusCreated, rep)
	}
}

func addSlotHandler(svc *scheduling.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		providerID, ok := urlInt(w, r, "id", "provider id")
		if !ok {
			return
		}

		var req AddSlotRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
			return
		}

		if err := svc.AddSlot(providerID, req.ID, req.Start, req.End); err != nil {
			handleSchedulingError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, map[string]int{"slot_id": req.ID})
	}
}

func cancelSlotHandler(svc *scheduling.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		providerID, ok := urlInt(w, r, "id", "provider id")
		if !ok {
			return
		}
		slotID, ok := urlInt(w, r, "slotID", "slot id")
		if !ok {
			return
		}

		if err := svc.CancelSlot(providerID, slotID); err != nil {
			handleSchedulingError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func listSlotsHandler(svc *scheduling.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		providerID, ok := urlInt(w, r, "id", "provider id")
		if !ok {
			return
		}

		slots, err := svc.ListSlots(providerID)
		if err != nil {
			handleSchedulingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, slots)
	}
}

func providerSummaryHandler(svc *scheduling.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		providerID, ok := urlInt(w, r, "id", "provider id")
		if !ok {
			return
		}

		rep, err := svc.ProviderSummary(providerID)
		if err != nil {
			handleSchedulingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, rep)
	}
}

func bookRoutineHandler(svc *scheduling.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BookRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
			return
		}

		slotID := scheduling.Unassigned
		if req.SlotID != nil {
			slotID = *req.SlotID
		}

		tk, err := svc.BookRoutine(req.PatientID, req.ProviderID, slotID)
		if err != nil {
			handleSchedulingError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, TokenResponse{Token: tk})
	}
}

func triageInsertHandler(svc *scheduling.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TriageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
			return
		}

		tk, err := svc.TriageInsert(req.PatientID, req.Severity)
		if err != nil {
			handleSchedulingError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, TokenResponse{Token: tk})
	}
}

func serveNextHandler(svc *scheduling.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		providerID, ok := urlInt(w, r, "id", "provider id")
		if !ok {
			return
		}

		tk, err := svc.ServeNext(providerID)
		if err != nil {
			handleSchedulingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, TokenResponse{Token: tk})
	}
}

func undoHandler(svc *scheduling.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Undo(); err != nil {
			handleSchedulingError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "undone"})
	}
}

func totalsHandler(svc *scheduling.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		served, pending := svc.Totals()
		writeJSON(w, http.StatusOK, TotalsResponse{Served: served, Pending: pending})
	}
}

func topFrequentHandler(svc *scheduling.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		k := 5
		if raw := r.URL.Query().Get("k"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n <= 0 {
				writeError(w, http.StatusBadRequest, "invalid_k", "k must be a positive integer")
				return
			}
			k = n
		}

		writeJSON(w, http.StatusOK, svc.TopFrequent(k))
	}
}

func urlInt(w http.ResponseWriter, r *http.Request, param, what string) (int, bool) {
	n, err := strconv.Atoi(chi.URLParam(r, param))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_"+param, what+" must be an integer")
		return 0, false
	}
	return n, true
}

func handleSchedulingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, scheduling.ErrPatientNotFound):
		writeError(w, http.StatusNotFound, "patient_not_found", err.Error())
	case errors.Is(err, scheduling.ErrProviderNotFound):
		writeError(w, http.StatusNotFound, "provider_not_found", err.Error())
	case errors.Is(err, scheduling.ErrSlotNotFound):
		writeError(w, http.StatusNotFound, "slot_not_found", err.Error())
	case errors.Is(err, scheduling.ErrProviderExists):
		writeError(w, http.StatusConflict, "provider_already_exists", err.Error())
	case errors.Is(err, scheduling.ErrSlotTaken):
		writeError(w, http.StatusConflict, "slot_already_taken", err.Error())
	case errors.Is(err, scheduling.ErrQueueFull):
		writeError(w, http.StatusConflict, "queue_full", err.Error())
	case errors.Is(err, scheduling.ErrNothingToServe):
		writeError(w, http.StatusConflict, "nothing_to_serve", err.Error())
	case errors.Is(err, scheduling.ErrNothingToUndo):
		writeError(w, http.StatusConflict, "nothing_to_undo", err.Error())
	case errors.Is(err, scheduling.ErrUndoStateDiverged):
		writeError(w, http.StatusConflict, "undo_state_diverged", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
	}
}
