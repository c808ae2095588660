package contact

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/neillbeauty/neill-beauty-api/internal/notify"
	"github.com/neillbeauty/neill-beauty-api/pkg/logging"
)

// ParameterSource resolves site parameters such as the inbox address
// contact notifications are delivered to.
type ParameterSource interface {
	Value(ctx context.Context, key string) (string, error)
}

// Handler handles HTTP requests for contact messages.
type Handler struct {
	repo   *Repository
	sender notify.EmailSender
	params ParameterSource
	logger *logging.Logger
}

// NewHandler creates a new contact handler.
func NewHandler(repo *Repository, sender notify.EmailSender, params ParameterSource, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{repo: repo, sender: sender, params: params, logger: logger}
}

// Create handles POST /contact. The message is stored first; the
// notification and confirmation emails are best-effort and never fail
// the request once the message is persisted.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	msg, err := h.repo.Create(r.Context(), &req)
	if err != nil {
		h.logger.Error("failed to store contact message", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to store message")
		return
	}

	h.sendEmails(r, msg)

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"id":      msg.ID,
		"message": "Thank you for your message. We will get back to you shortly.",
	})
}

func (h *Handler) sendEmails(r *http.Request, msg *Message) {
	if h.sender == nil {
		return
	}
	details := notify.ContactDetails{
		Name:    msg.Name,
		Email:   msg.Email,
		Phone:   msg.Phone,
		Subject: msg.Subject,
		Message: msg.Message,
	}

	inbox := ""
	if h.params != nil {
		v, err := h.params.Value(r.Context(), "contact_email")
		if err != nil {
			h.logger.Warn("contact_email parameter lookup failed", "error", err)
		} else {
			inbox = v
		}
	}
	if inbox != "" {
		if err := h.sender.Send(r.Context(), notify.NewContactNotification(inbox, details)); err != nil {
			h.logger.Error("failed to send contact notification", "message_id", msg.ID, "error", err)
		}
	}
	if err := h.sender.Send(r.Context(), notify.NewContactConfirmation(details)); err != nil {
		h.logger.Error("failed to send contact confirmation", "message_id", msg.ID, "error", err)
	}
}

// List handles GET /admin/contact-messages?status=new.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	status := Status(r.URL.Query().Get("status"))
	messages, err := h.repo.List(r.Context(), status)
	switch {
	case errors.Is(err, ErrInvalidStatus):
		writeError(w, http.StatusBadRequest, err.Error())
	case err != nil:
		h.logger.Error("failed to list contact messages", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list messages")
	default:
		writeJSON(w, http.StatusOK, messages)
	}
}

// Get handles GET /admin/contact-messages/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid message id")
		return
	}
	msg, err := h.repo.Get(r.Context(), id)
	switch {
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case err != nil:
		h.logger.Error("failed to load contact message", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load message")
	default:
		writeJSON(w, http.StatusOK, msg)
	}
}

// UpdateStatus handles PATCH /admin/contact-messages/{id}/status.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid message id")
		return
	}
	var body struct {
		Status Status `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	msg, err := h.repo.UpdateStatus(r.Context(), id, body.Status)
	switch {
	case errors.Is(err, ErrInvalidStatus):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case err != nil:
		h.logger.Error("failed to update contact message", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update message")
	default:
		writeJSON(w, http.StatusOK, msg)
	}
}

// Reply handles POST /admin/contact-messages/{id}/reply. The reply is
// stored and emailed to the original sender.
func (h *Handler) Reply(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid message id")
		return
	}
	var body struct {
		Reply     string `json:"reply"`
		RepliedBy string `json:"replied_by"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Reply == "" {
		writeError(w, http.StatusBadRequest, "reply text is required")
		return
	}
	if body.RepliedBy == "" {
		body.RepliedBy = "admin"
	}

	msg, err := h.repo.Reply(r.Context(), &ReplyRequest{ID: id, Reply: body.Reply, RepliedBy: body.RepliedBy})
	switch {
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
		return
	case err != nil:
		h.logger.Error("failed to store reply", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to store reply")
		return
	}

	if h.sender != nil {
		details := notify.ContactDetails{
			Name:    msg.Name,
			Email:   msg.Email,
			Subject: msg.Subject,
			Message: msg.Message,
		}
		if err := h.sender.Send(r.Context(), notify.NewContactReply(details, msg.AdminReply)); err != nil {
			h.logger.Error("failed to send reply email", "id", id, "error", err)
		}
	}

	writeJSON(w, http.StatusOK, msg)
}

// Delete handles DELETE /admin/contact-messages/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid message id")
		return
	}
	err = h.repo.Delete(r.Context(), id)
	switch {
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case err != nil:
		h.logger.Error("failed to delete contact message", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete message")
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
