package content

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/neillbeauty/neill-beauty-api/pkg/logging"
)

// Handler handles HTTP requests for the content collections.
type Handler struct {
	repo   *Repository
	params *ParameterRepository
	logger *logging.Logger
}

// NewHandler creates a new content handler.
func NewHandler(repo *Repository, params *ParameterRepository, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{repo: repo, params: params, logger: logger}
}

func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func decode(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// respond maps repository errors onto HTTP responses, writing v on
// success.
func (h *Handler) respond(w http.ResponseWriter, status int, v any, err error, what string) {
	switch {
	case err == nil:
		writeJSON(w, status, v)
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrDuplicateSlug):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrMissingFields), errors.Is(err, ErrInvalidRating),
		errors.Is(err, ErrUnknownParameter):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("content request failed", "what", what, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to "+what)
	}
}

// --- services ---

func (h *Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	out, err := h.repo.ListServices(r.Context())
	h.respond(w, http.StatusOK, out, err, "list services")
}

func (h *Handler) CreateService(w http.ResponseWriter, r *http.Request) {
	var in ServiceInput
	if err := decode(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	out, err := h.repo.CreateService(r.Context(), &in)
	h.respond(w, http.StatusCreated, out, err, "create service")
}

func (h *Handler) UpdateService(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var in ServiceInput
	if err := decode(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	out, err := h.repo.UpdateService(r.Context(), id, &in)
	h.respond(w, http.StatusOK, out, err, "update service")
}

func (h *Handler) DeleteService(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	err = h.repo.DeleteService(r.Context(), id)
	h.respond(w, http.StatusOK, map[string]any{"success": true}, err, "delete service")
}

// --- formations ---

func (h *Handler) ListFormations(w http.ResponseWriter, r *http.Request) {
	out, err := h.repo.ListFormations(r.Context())
	h.respond(w, http.StatusOK, out, err, "list formations")
}

func (h *Handler) CreateFormation(w http.ResponseWriter, r *http.Request) {
	var in FormationInput
	if err := decode(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	out, err := h.repo.CreateFormation(r.Context(), &in)
	h.respond(w, http.StatusCreated, out, err, "create formation")
}

func (h *Handler) UpdateFormation(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var in FormationInput
	if err := decode(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	out, err := h.repo.UpdateFormation(r.Context(), id, &in)
	h.respond(w, http.StatusOK, out, err, "update formation")
}

func (h *Handler) DeleteFormation(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	err = h.repo.DeleteFormation(r.Context(), id)
	h.respond(w, http.StatusOK, map[string]any{"success": true}, err, "delete formation")
}

// --- team members ---

func (h *Handler) ListTeamMembers(w http.ResponseWriter, r *http.Request) {
	out, err := h.repo.ListTeamMembers(r.Context())
	h.respond(w, http.StatusOK, out, err, "list team members")
}

func (h *Handler) CreateTeamMember(w http.ResponseWriter, r *http.Request) {
	var in TeamMemberInput
	if err := decode(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	out, err := h.repo.CreateTeamMember(r.Context(), &in)
	h.respond(w, http.StatusCreated, out, err, "create team member")
}

func (h *Handler) UpdateTeamMember(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var in TeamMemberInput
	if err := decode(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	out, err := h.repo.UpdateTeamMember(r.Context(), id, &in)
	h.respond(w, http.StatusOK, out, err, "update team member")
}

func (h *Handler) DeleteTeamMember(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	err = h.repo.DeleteTeamMember(r.Context(), id)
	h.respond(w, http.StatusOK, map[string]any{"success": true}, err, "delete team member")
}

// --- testimonials ---

func (h *Handler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	out, err := h.repo.ListTestimonials(r.Context())
	h.respond(w, http.StatusOK, out, err, "list testimonials")
}

func (h *Handler) CreateTestimonial(w http.ResponseWriter, r *http.Request) {
	var in TestimonialInput
	if err := decode(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	out, err := h.repo.CreateTestimonial(r.Context(), &in)
	h.respond(w, http.StatusCreated, out, err, "create testimonial")
}

func (h *Handler) UpdateTestimonial(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var in TestimonialInput
	if err := decode(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	out, err := h.repo.UpdateTestimonial(r.Context(), id, &in)
	h.respond(w, http.StatusOK, out, err, "update testimonial")
}

func (h *Handler) DeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	err = h.repo.DeleteTestimonial(r.Context(), id)
	h.respond(w, http.StatusOK, map[string]any{"success": true}, err, "delete testimonial")
}

// --- faqs ---

func (h *Handler) ListFAQs(w http.ResponseWriter, r *http.Request) {
	out, err := h.repo.ListFAQs(r.Context())
	h.respond(w, http.StatusOK, out, err, "list faqs")
}

func (h *Handler) CreateFAQ(w http.ResponseWriter, r *http.Request) {
	var in FAQInput
	if err := decode(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	out, err := h.repo.CreateFAQ(r.Context(), &in)
	h.respond(w, http.StatusCreated, out, err, "create faq")
}

func (h *Handler) UpdateFAQ(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var in FAQInput
	if err := decode(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	out, err := h.repo.UpdateFAQ(r.Context(), id, &in)
	h.respond(w, http.StatusOK, out, err, "update faq")
}

func (h *Handler) DeleteFAQ(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	err = h.repo.DeleteFAQ(r.Context(), id)
	h.respond(w, http.StatusOK, map[string]any{"success": true}, err, "delete faq")
}

// --- gallery ---

func (h *Handler) ListGalleryItems(w http.ResponseWriter, r *http.Request) {
	out, err := h.repo.ListGalleryItems(r.Context())
	h.respond(w, http.StatusOK, out, err, "list gallery items")
}

func (h *Handler) CreateGalleryItem(w http.ResponseWriter, r *http.Request) {
	var in GalleryItemInput
	if err := decode(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	out, err := h.repo.CreateGalleryItem(r.Context(), &in)
	h.respond(w, http.StatusCreated, out, err, "create gallery item")
}

func (h *Handler) UpdateGalleryItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var in GalleryItemInput
	if err := decode(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	out, err := h.repo.UpdateGalleryItem(r.Context(), id, &in)
	h.respond(w, http.StatusOK, out, err, "update gallery item")
}

func (h *Handler) DeleteGalleryItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	err = h.repo.DeleteGalleryItem(r.Context(), id)
	h.respond(w, http.StatusOK, map[string]any{"success": true}, err, "delete gallery item")
}

// --- parameters ---

func (h *Handler) ListParameters(w http.ResponseWriter, r *http.Request) {
	out, err := h.params.List(r.Context())
	h.respond(w, http.StatusOK, out, err, "list parameters")
}

func (h *Handler) SetParameter(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	var body struct {
		Value string `json:"value"`
	}
	if err := decode(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	out, err := h.params.Set(r.Context(), key, body.Value)
	h.respond(w, http.StatusOK, out, err, "set parameter")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
