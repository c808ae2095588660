package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/neillbeauty/neill-beauty-api/internal/auth"
	"github.com/neillbeauty/neill-beauty-api/pkg/logging"
)

const adminUserKey contextKey = "admin_user"

// AdminUser returns the authenticated admin username stored in the
// context by AdminAuth.
func AdminUser(ctx context.Context) string {
	u, _ := ctx.Value(adminUserKey).(string)
	return u
}

// TokenVerifier checks a session token and returns the username it was
// issued for.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// AdminAuth guards the admin API. The token is read from the
// Authorization bearer header or, for browser clients, the session
// cookie set at login.
func AdminAuth(verifier TokenVerifier, logger *logging.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				if c, err := r.Cookie(auth.SessionCookie); err == nil {
					token = c.Value
				}
			}
			if token == "" {
				unauthorized(w, "authentication required")
				return
			}

			username, err := verifier.Verify(token)
			if err != nil {
				logger.Warn("rejected admin token", "path", r.URL.Path, "error", err)
				unauthorized(w, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), adminUserKey, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if len(h) > 7 && strings.EqualFold(h[:7], "Bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
