package reservations

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/neillbeauty/neill-beauty-api/pkg/logging"
)

// Handler handles HTTP requests for reservations.
type Handler struct {
	svc    *Service
	repo   *Repository
	logger *logging.Logger
}

// NewHandler creates a new reservations handler.
func NewHandler(svc *Service, repo *Repository, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{svc: svc, repo: repo, logger: logger}
}

// CreateResponse is the public booking success body.
type CreateResponse struct {
	Success bool   `json:"success"`
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// Create handles POST /reservations, the public booking flow.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rv, err := h.svc.Create(r.Context(), &req)
	if err != nil {
		h.writeCreateError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, CreateResponse{
		Success: true,
		ID:      rv.ID,
		Message: "reservation created",
	})
}

func (h *Handler) writeCreateError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrMissingFields),
		errors.Is(err, ErrInvalidEmail),
		errors.Is(err, ErrInvalidDate),
		errors.Is(err, ErrInvalidTime),
		errors.Is(err, ErrIncompleteSchedule),
		errors.Is(err, ErrInvalidStatus):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrSlotUnavailable), errors.Is(err, ErrSlotConflict):
		writeError(w, http.StatusConflict, err.Error())
	default:
		h.logger.Error("failed to create reservation", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create reservation")
	}
}

// List handles GET /admin/reservations.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	out, err := h.repo.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list reservations", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list reservations")
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /admin/reservations/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid reservation id")
		return
	}

	rv, err := h.repo.Get(r.Context(), id)
	switch {
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case err != nil:
		h.logger.Error("failed to load reservation", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "failed to load reservation")
	default:
		writeJSON(w, http.StatusOK, rv)
	}
}

// adminCreateRequest extends the booking body with an explicit status for
// back-office entries.
type adminCreateRequest struct {
	CreateReservationRequest
	Status Status `json:"status"`
}

// AdminCreate handles POST /admin/reservations.
func (h *Handler) AdminCreate(w http.ResponseWriter, r *http.Request) {
	var req adminCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rv, err := h.repo.CreateManual(r.Context(), &req.CreateReservationRequest, req.Status)
	if err != nil {
		h.writeCreateError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rv)
}

// UpdateStatus handles PUT /admin/reservations.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ID == 0 {
		writeError(w, http.StatusBadRequest, "reservation id is required")
		return
	}

	rv, err := h.svc.UpdateStatus(r.Context(), req.ID, req.Status)
	switch {
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrInvalidTransition):
		writeError(w, http.StatusBadRequest, err.Error())
	case err != nil:
		h.logger.Error("failed to update reservation status", "error", err, "id", req.ID)
		writeError(w, http.StatusInternalServerError, "failed to update reservation")
	default:
		writeJSON(w, http.StatusOK, rv)
	}
}

// Delete handles DELETE /admin/reservations?id=N.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "reservation id is required")
		return
	}

	switch err := h.repo.Delete(r.Context(), id); {
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case err != nil:
		h.logger.Error("failed to delete reservation", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "failed to delete reservation")
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
