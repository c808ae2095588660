package router

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neillbeauty/neill-beauty-api/internal/auth"
	"github.com/neillbeauty/neill-beauty-api/internal/contact"
	"github.com/neillbeauty/neill-beauty-api/internal/content"
	"github.com/neillbeauty/neill-beauty-api/internal/invoices"
	"github.com/neillbeauty/neill-beauty-api/internal/notify"
	"github.com/neillbeauty/neill-beauty-api/internal/observability/metrics"
	"github.com/neillbeauty/neill-beauty-api/internal/reservations"
	"github.com/neillbeauty/neill-beauty-api/internal/slots"
	"github.com/neillbeauty/neill-beauty-api/internal/store"
	"github.com/neillbeauty/neill-beauty-api/migrations"
	"github.com/neillbeauty/neill-beauty-api/pkg/logging"
)

// applyMigrations runs the embedded up migrations directly; the test
// exercises the same SQL the migrate command ships.
func applyMigrations(t *testing.T, db *sql.DB) {
	t.Helper()

	entries, err := migrations.FS.ReadDir(".")
	require.NoError(t, err)

	names := []string{}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".sql" && len(e.Name()) > 7 && e.Name()[len(e.Name())-7:] == ".up.sql" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	require.NotEmpty(t, names)

	for _, name := range names {
		sqlBytes, err := migrations.FS.ReadFile(name)
		require.NoError(t, err)
		_, err = db.Exec(string(sqlBytes))
		require.NoError(t, err, "migration %s", name)
	}
}

func newTestRouter(t *testing.T) (http.Handler, *sql.DB, *auth.TokenIssuer) {
	t.Helper()

	db, err := store.Open(context.Background(), filepath.Join(t.TempDir(), "test.sqlite"), "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	applyMigrations(t, db)

	logger := logging.Default()
	issuer, err := auth.NewTokenIssuer("test-secret", time.Hour)
	require.NoError(t, err)

	sender := notify.NewStubEmailSender(logger)
	bookingMetrics := metrics.NewBookingMetrics(prometheus.NewRegistry())
	slotRepo := slots.NewRepository(db)
	resvRepo := reservations.NewRepository(db)
	resvSvc := reservations.NewService(resvRepo, bookingMetrics, logger)
	contactRepo := contact.NewRepository(db)
	contentRepo := content.NewRepository(db)
	paramRepo := content.NewParameterRepository(db)

	h := New(Deps{
		DB:           db,
		Logger:       logger,
		Verifier:     issuer,
		Auth:         auth.NewHandler(auth.NewRepository(db), issuer, false, logger),
		Slots:        slots.NewHandler(slotRepo, bookingMetrics, logger),
		Reservations: reservations.NewHandler(resvSvc, resvRepo, logger),
		Contact:      contact.NewHandler(contactRepo, sender, paramRepo, logger),
		Content:      content.NewHandler(contentRepo, paramRepo, logger),
		Invoices:     invoices.NewHandler(invoices.NewRepository(db), logger),
	})
	return h, db, issuer
}

func TestHealthEndpoint(t *testing.T) {
	h, _, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPublicRoutesNeedNoAuth(t *testing.T) {
	h, _, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/services", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/available-slots?date=2030-01-06", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	h, _, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/reservations/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/invoices/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginThenAdminAccess(t *testing.T) {
	h, db, _ := newTestRouter(t)

	_, err := auth.NewRepository(db).Create(context.Background(), "neill", "correct-horse-battery")
	require.NoError(t, err)

	body, _ := json.Marshal(map[string]string{"username": "neill", "password": "correct-horse-battery"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/login", bytes.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotEmpty(t, resp.Token)

	req := httptest.NewRequest(http.MethodGet, "/admin/reservations/", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBookingFlowThroughRouter(t *testing.T) {
	h, db, _ := newTestRouter(t)

	_, err := db.Exec(`INSERT INTO time_slots (date, start_time, end_time, is_available)
		VALUES ('2030-06-03', '10:00', '10:30', 1)`)
	require.NoError(t, err)

	payload := map[string]string{
		"name":           "Ada",
		"email":          "ada@example.com",
		"service_type":   "coiffure",
		"preferred_date": "2030-06-03",
		"preferred_time": "10:00",
	}
	body, _ := json.Marshal(payload)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/reservations", bytes.NewReader(body)))
	assert.Equal(t, http.StatusCreated, rec.Code)

	// the slot is now claimed, a second booking must conflict
	body, _ = json.Marshal(payload)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/reservations", bytes.NewReader(body)))
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/available-slots?date=2030-06-03", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var free []slots.TimeSlot
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&free))
	assert.Empty(t, free)
}

func TestMetricsEndpoint(t *testing.T) {
	h, _, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
