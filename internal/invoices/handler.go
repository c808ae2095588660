package invoices

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/neillbeauty/neill-beauty-api/pkg/logging"
)

// Handler handles admin HTTP requests for invoices.
type Handler struct {
	repo   *Repository
	logger *logging.Logger
}

// NewHandler creates a new invoices handler.
func NewHandler(repo *Repository, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{repo: repo, logger: logger}
}

// Create handles POST /admin/invoices.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	inv, err := h.repo.Create(r.Context(), &req)
	switch {
	case errors.Is(err, ErrMissingFields), errors.Is(err, ErrInvalidAmount):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrDuplicateNumber):
		writeError(w, http.StatusConflict, err.Error())
	case err != nil:
		h.logger.Error("failed to create invoice", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create invoice")
	default:
		writeJSON(w, http.StatusCreated, inv)
	}
}

// List handles GET /admin/invoices?status=pending.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	status := Status(r.URL.Query().Get("status"))
	out, err := h.repo.List(r.Context(), status)
	if err != nil {
		h.logger.Error("failed to list invoices", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list invoices")
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /admin/invoices/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid invoice id")
		return
	}
	inv, err := h.repo.Get(r.Context(), id)
	switch {
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case err != nil:
		h.logger.Error("failed to load invoice", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load invoice")
	default:
		writeJSON(w, http.StatusOK, inv)
	}
}

// RecordPayment handles POST /admin/invoices/{id}/payments.
func (h *Handler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid invoice id")
		return
	}
	var req PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	inv, err := h.repo.RecordPayment(r.Context(), id, &req)
	switch {
	case errors.Is(err, ErrInvalidPayment), errors.Is(err, ErrOverpayment),
		errors.Is(err, ErrCancelled):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case err != nil:
		h.logger.Error("failed to record payment", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to record payment")
	default:
		writeJSON(w, http.StatusOK, inv)
	}
}

// Cancel handles POST /admin/invoices/{id}/cancel.
func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid invoice id")
		return
	}
	inv, err := h.repo.Cancel(r.Context(), id)
	switch {
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrNotCancellable):
		writeError(w, http.StatusConflict, err.Error())
	case err != nil:
		h.logger.Error("failed to cancel invoice", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to cancel invoice")
	default:
		writeJSON(w, http.StatusOK, inv)
	}
}

// Delete handles DELETE /admin/invoices/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid invoice id")
		return
	}
	err = h.repo.Delete(r.Context(), id)
	switch {
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case err != nil:
		h.logger.Error("failed to delete invoice", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete invoice")
	default:
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
	}
}

func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
