package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/neillbeauty/neill-beauty-api/pkg/logging"
)

// SessionCookie is the cookie carrying the admin session token.
const SessionCookie = "admin_session"

// Handler handles admin login and logout.
type Handler struct {
	repo         *Repository
	issuer       *TokenIssuer
	secureCookie bool
	logger       *logging.Logger
}

// NewHandler creates a new auth handler. secureCookie should be true
// whenever the API is served over HTTPS.
func NewHandler(repo *Repository, issuer *TokenIssuer, secureCookie bool, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{repo: repo, issuer: issuer, secureCookie: secureCookie, logger: logger}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Username  string    `json:"username"`
}

// Login handles POST /admin/login. On success the token is returned in
// the body and also set as an HttpOnly cookie for browser clients.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.repo.Authenticate(r.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		h.logger.Warn("failed admin login", "username", req.Username)
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	case err != nil:
		h.logger.Error("admin login failed", "error", err)
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}

	token, expiresAt, err := h.issuer.Issue(user.Username)
	if err != nil {
		h.logger.Error("failed to issue session token", "error", err)
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	h.logger.Info("admin logged in", "username", user.Username)
	writeJSON(w, http.StatusOK, loginResponse{Token: token, ExpiresAt: expiresAt, Username: user.Username})
}

// Logout handles DELETE /admin/login by expiring the session cookie.
// The token itself stays valid until its expiry; there is no server
// side session store to revoke.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
