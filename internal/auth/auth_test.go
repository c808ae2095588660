package auth

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neillbeauty/neill-beauty-api/internal/store"
	"github.com/neillbeauty/neill-beauty-api/pkg/logging"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := store.Open(context.Background(), filepath.Join(t.TempDir(), "test.sqlite"), "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
		CREATE TABLE admin_users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`)
	require.NoError(t, err)
	return db
}

func TestAuthenticate(t *testing.T) {
	repo := NewRepository(openTestDB(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, "neill", "correct-horse-battery")
	require.NoError(t, err)

	user, err := repo.Authenticate(ctx, "neill", "correct-horse-battery")
	require.NoError(t, err)
	assert.Equal(t, "neill", user.Username)

	_, err = repo.Authenticate(ctx, "neill", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = repo.Authenticate(ctx, "nobody", "correct-horse-battery")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCreateRejectsShortPassword(t *testing.T) {
	repo := NewRepository(openTestDB(t))

	_, err := repo.Create(context.Background(), "neill", "short")
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestCreateDuplicateUsername(t *testing.T) {
	repo := NewRepository(openTestDB(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, "neill", "correct-horse-battery")
	require.NoError(t, err)

	_, err = repo.Create(ctx, "neill", "another-password")
	assert.ErrorIs(t, err, ErrDuplicateUsername)
}

func TestTokenRoundTrip(t *testing.T) {
	issuer, err := NewTokenIssuer("test-secret", time.Hour)
	require.NoError(t, err)

	token, expiresAt, err := issuer.Issue("neill")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	username, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "neill", username)
}

func TestTokenExpiry(t *testing.T) {
	issuer, err := NewTokenIssuer("test-secret", time.Hour)
	require.NoError(t, err)

	issued := time.Now()
	issuer.now = func() time.Time { return issued }
	token, _, err := issuer.Issue("neill")
	require.NoError(t, err)

	issuer.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = issuer.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenWrongSecret(t *testing.T) {
	issuer, err := NewTokenIssuer("secret-one", time.Hour)
	require.NoError(t, err)
	other, err := NewTokenIssuer("secret-two", time.Hour)
	require.NoError(t, err)

	token, _, err := issuer.Issue("neill")
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLoginHandler(t *testing.T) {
	repo := NewRepository(openTestDB(t))
	_, err := repo.Create(context.Background(), "neill", "correct-horse-battery")
	require.NoError(t, err)

	issuer, err := NewTokenIssuer("test-secret", time.Hour)
	require.NoError(t, err)
	h := NewHandler(repo, issuer, false, logging.Default())

	body, _ := json.Marshal(loginRequest{Username: "neill", Password: "correct-horse-battery"})
	req := httptest.NewRequest(http.MethodPost, "/admin/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp loginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "neill", resp.Username)
	assert.NotEmpty(t, resp.Token)

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookie {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, resp.Token, cookie.Value)
}

func TestLoginHandlerBadPassword(t *testing.T) {
	repo := NewRepository(openTestDB(t))
	_, err := repo.Create(context.Background(), "neill", "correct-horse-battery")
	require.NoError(t, err)

	issuer, err := NewTokenIssuer("test-secret", time.Hour)
	require.NoError(t, err)
	h := NewHandler(repo, issuer, false, logging.Default())

	body, _ := json.Marshal(loginRequest{Username: "neill", Password: "wrong"})
	req := httptest.NewRequest(http.MethodPost, "/admin/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogoutClearsCookie(t *testing.T) {
	issuer, err := NewTokenIssuer("test-secret", time.Hour)
	require.NoError(t, err)
	h := NewHandler(NewRepository(openTestDB(t)), issuer, false, logging.Default())

	req := httptest.NewRequest(http.MethodDelete, "/admin/login", nil)
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, SessionCookie, cookies[0].Name)
	assert.Less(t, cookies[0].MaxAge, 0)
}
