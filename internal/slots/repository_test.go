package slots

import (
	"context"
	"database/sql"
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
		CREATE TABLE time_slots (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			date TEXT NOT NULL,
			start_time TEXT NOT NULL,
			end_time TEXT NOT NULL,
			is_available BOOLEAN DEFAULT 1,
			service_type TEXT,
			reserved_by INTEGER,
			notes TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(date, start_time)
		);
		CREATE TABLE reservations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT,
			service_type TEXT NOT NULL,
			service_name TEXT,
			preferred_date TEXT,
			preferred_time TEXT,
			message TEXT,
			status TEXT DEFAULT 'pending',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`)
	require.NoError(t, err)
	return db
}

func TestGeneratorRunIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	gen := NewGenerator(repo, logging.Default())
	ctx := context.Background()

	opts := DefaultGeneratorOptions()
	opts.HorizonDays = 1
	from := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	inserted, err := gen.Run(ctx, from, opts)
	require.NoError(t, err)
	assert.Equal(t, 16, inserted)

	// Re-running the same horizon inserts nothing and duplicates nothing.
	inserted, err = gen.Run(ctx, from, opts)
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM time_slots`).Scan(&count))
	assert.Equal(t, 16, count)
}

func TestGeneratorLeavesClaimedSlotsAlone(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	gen := NewGenerator(repo, logging.Default())
	ctx := context.Background()

	opts := DefaultGeneratorOptions()
	opts.HorizonDays = 1
	from := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	_, err := gen.Run(ctx, from, opts)
	require.NoError(t, err)

	_, err = db.Exec(
		`UPDATE time_slots SET is_available = 0, reserved_by = 7 WHERE date = ? AND start_time = ?`,
		"2024-06-03", "09:00")
	require.NoError(t, err)

	_, err = gen.Run(ctx, from, opts)
	require.NoError(t, err)

	var available bool
	require.NoError(t, db.QueryRow(
		`SELECT is_available FROM time_slots WHERE date = ? AND start_time = ?`,
		"2024-06-03", "09:00").Scan(&available))
	assert.False(t, available, "regeneration must not resurrect a claimed slot")
}

func TestAvailableOrdersAndFilters(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	makeup := "maquillage-professionnel"
	_, err := db.Exec(`
		INSERT INTO time_slots (date, start_time, end_time, is_available, service_type) VALUES
			('2024-06-03', '10:00', '10:30', 1, NULL),
			('2024-06-03', '09:00', '09:30', 1, 'maquillage-professionnel'),
			('2024-06-03', '09:30', '10:00', 0, NULL),
			('2024-06-03', '11:00', '11:30', 1, 'formations-beaute'),
			('2024-06-04', '09:00', '09:30', 1, NULL)
	`)
	require.NoError(t, err)

	out, err := repo.Available(ctx, "2024-06-03", "")
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "09:00", out[0].StartTime)
	assert.Equal(t, "10:00", out[1].StartTime)
	assert.Equal(t, "11:00", out[2].StartTime)

	// Service filter keeps untyped slots plus exact matches.
	out, err = repo.Available(ctx, "2024-06-03", makeup)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "09:00", out[0].StartTime)
	assert.Equal(t, "10:00", out[1].StartTime)
}

func TestAvailableRequiresDate(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)

	_, err := repo.Available(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrDateRequired)
}

func TestAvailableExcludesDesyncedSlot(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	// A slot left flagged available even though a live reservation holds
	// its time. The availability query must not offer it.
	_, err := db.Exec(`
		INSERT INTO time_slots (date, start_time, end_time, is_available) VALUES
			('2024-06-03', '09:00', '09:30', 1),
			('2024-06-03', '09:30', '10:00', 1);
		INSERT INTO reservations (name, email, service_type, preferred_date, preferred_time, status)
			VALUES ('Sophie Laurent', 'sophie@example.com', 'maquillage-professionnel', '2024-06-03', '09:00', 'pending');
	`)
	require.NoError(t, err)

	out, err := repo.Available(ctx, "2024-06-03", "")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "09:30", out[0].StartTime)
}

func TestAvailableCountsCancelledAsFree(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	_, err := db.Exec(`
		INSERT INTO time_slots (date, start_time, end_time, is_available) VALUES
			('2024-06-03', '09:00', '09:30', 1);
		INSERT INTO reservations (name, email, service_type, preferred_date, preferred_time, status)
			VALUES ('Sophie Laurent', 'sophie@example.com', 'maquillage-professionnel', '2024-06-03', '09:00', 'cancelled');
	`)
	require.NoError(t, err)

	out, err := repo.Available(ctx, "2024-06-03", "")
	require.NoError(t, err)
	require.Len(t, out, 1)
}

func TestCreateDuplicateSlot(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	req := &CreateSlotRequest{Date: "2024-06-03", StartTime: "09:00", EndTime: "09:30"}
	_, err := repo.Create(ctx, req)
	require.NoError(t, err)

	_, err = repo.Create(ctx, req)
	assert.ErrorIs(t, err, ErrDuplicateSlot)
}

func TestUpdateAndDeleteUnknownSlot(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	_, err := repo.Update(ctx, &UpdateSlotRequest{ID: 404})
	assert.ErrorIs(t, err, ErrSlotNotFound)

	err = repo.Delete(ctx, 404)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}
