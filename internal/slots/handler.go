package slots

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/neillbeauty/neill-beauty-api/internal/observability/metrics"
	"github.com/neillbeauty/neill-beauty-api/pkg/logging"
)

// Handler handles HTTP requests for time slots.
type Handler struct {
	repo    *Repository
	metrics *metrics.BookingMetrics
	logger  *logging.Logger
}

// NewHandler creates a new slots handler. metrics may be nil.
func NewHandler(repo *Repository, m *metrics.BookingMetrics, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{repo: repo, metrics: m, logger: logger}
}

// Available handles GET /available-slots?date=YYYY-MM-DD&service_type=...
func (h *Handler) Available(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	serviceType := r.URL.Query().Get("service_type")

	h.metrics.ObserveAvailabilityQuery()
	out, err := h.repo.Available(r.Context(), date, serviceType)
	if err != nil {
		if errors.Is(err, ErrDateRequired) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("failed to load available slots", "error", err, "date", date)
		writeError(w, http.StatusInternalServerError, "failed to load available slots")
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// List handles GET /admin/time-slots with an optional date filter.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	out, err := h.repo.List(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Error("failed to list slots", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list slots")
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// Create handles POST /admin/time-slots.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	slot, err := h.repo.Create(r.Context(), &req)
	switch {
	case errors.Is(err, ErrInvalidSlot):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrDuplicateSlot):
		writeError(w, http.StatusConflict, err.Error())
	case err != nil:
		h.logger.Error("failed to create slot", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create slot")
	default:
		writeJSON(w, http.StatusCreated, slot)
	}
}

// Update handles PUT /admin/time-slots.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ID == 0 {
		writeError(w, http.StatusBadRequest, "slot id is required")
		return
	}

	slot, err := h.repo.Update(r.Context(), &req)
	switch {
	case errors.Is(err, ErrSlotNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case err != nil:
		h.logger.Error("failed to update slot", "error", err, "id", req.ID)
		writeError(w, http.StatusInternalServerError, "failed to update slot")
	default:
		writeJSON(w, http.StatusOK, slot)
	}
}

// Delete handles DELETE /admin/time-slots?id=N.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "slot id is required")
		return
	}

	switch err := h.repo.Delete(r.Context(), id); {
	case errors.Is(err, ErrSlotNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case err != nil:
		h.logger.Error("failed to delete slot", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "failed to delete slot")
	default:
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
