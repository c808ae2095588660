package slots

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Repository provides persistence for time slots.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repository backed by database/sql.
func NewRepository(db *sql.DB) *Repository {
	if db == nil {
		panic("slots: db required")
	}
	return &Repository{db: db}
}

const slotColumns = `id, date, start_time, end_time, is_available, service_type, reserved_by, notes, created_at, updated_at`

func scanSlot(row interface{ Scan(...any) error }) (*TimeSlot, error) {
	var s TimeSlot
	err := row.Scan(&s.ID, &s.Date, &s.StartTime, &s.EndTime, &s.IsAvailable,
		&s.ServiceType, &s.ReservedBy, &s.Notes, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Available returns the bookable slots for a date, ordered by start time.
// A slot counts as bookable when it is flagged available AND no non-cancelled
// reservation already occupies its start time. The second check re-derives
// availability from the reservations table in case the flag has drifted
// (a cancelled reservation that never restored its slot, or a write path
// that skipped the slot update).
func (r *Repository) Available(ctx context.Context, date, serviceType string) ([]TimeSlot, error) {
	if date == "" {
		return nil, ErrDateRequired
	}

	query := `SELECT ` + slotColumns + ` FROM time_slots WHERE date = ? AND is_available = 1`
	args := []any{date}
	if serviceType != "" {
		query += ` AND (service_type IS NULL OR service_type = ?)`
		args = append(args, serviceType)
	}
	query += ` ORDER BY start_time`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("slots: query available: %w", err)
	}
	defer rows.Close()

	var open []TimeSlot
	for rows.Next() {
		s, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("slots: scan: %w", err)
		}
		open = append(open, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("slots: iterate: %w", err)
	}

	booked, err := r.bookedTimes(ctx, date)
	if err != nil {
		return nil, err
	}

	out := make([]TimeSlot, 0, len(open))
	for _, s := range open {
		if _, taken := booked[s.StartTime]; !taken {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *Repository) bookedTimes(ctx context.Context, date string) (map[string]struct{}, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT preferred_time FROM reservations WHERE preferred_date = ? AND status != 'cancelled'`, date)
	if err != nil {
		return nil, fmt.Errorf("slots: query reservations: %w", err)
	}
	defer rows.Close()

	booked := make(map[string]struct{})
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("slots: scan reservation time: %w", err)
		}
		booked[t] = struct{}{}
	}
	return booked, rows.Err()
}

// List returns all slots, optionally restricted to one date.
func (r *Repository) List(ctx context.Context, date string) ([]TimeSlot, error) {
	query := `SELECT ` + slotColumns + ` FROM time_slots ORDER BY date, start_time`
	args := []any{}
	if date != "" {
		query = `SELECT ` + slotColumns + ` FROM time_slots WHERE date = ? ORDER BY start_time`
		args = append(args, date)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("slots: list: %w", err)
	}
	defer rows.Close()

	out := []TimeSlot{}
	for rows.Next() {
		s, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("slots: scan: %w", err)
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

// Get loads a single slot by id.
func (r *Repository) Get(ctx context.Context, id int64) (*TimeSlot, error) {
	s, err := scanSlot(r.db.QueryRowContext(ctx,
		`SELECT `+slotColumns+` FROM time_slots WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("slots: get: %w", err)
	}
	return s, nil
}

// Create inserts a new slot flagged available. The (date, start_time) unique
// constraint turns a duplicate into ErrDuplicateSlot.
func (r *Repository) Create(ctx context.Context, req *CreateSlotRequest) (*TimeSlot, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO time_slots (date, start_time, end_time, service_type, notes, is_available)
		 VALUES (?, ?, ?, ?, ?, 1)`,
		req.Date, req.StartTime, req.EndTime, req.ServiceType, req.Notes)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateSlot
		}
		return nil, fmt.Errorf("slots: insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("slots: last insert id: %w", err)
	}
	return r.Get(ctx, id)
}

// Update applies admin edits to a slot.
func (r *Repository) Update(ctx context.Context, req *UpdateSlotRequest) (*TimeSlot, error) {
	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE time_slots
		 SET is_available = ?, service_type = ?, notes = ?, reserved_by = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		available, req.ServiceType, req.Notes, req.ReservedBy, req.ID)
	if err != nil {
		return nil, fmt.Errorf("slots: update: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("slots: rows affected: %w", err)
	}
	if n == 0 {
		return nil, ErrSlotNotFound
	}
	return r.Get(ctx, req.ID)
}

// Delete removes a slot by id.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM time_slots WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("slots: delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("slots: rows affected: %w", err)
	}
	if n == 0 {
		return ErrSlotNotFound
	}
	return nil
}

// insertIfAbsent backs the idempotent generator: re-running a horizon must
// not duplicate rows. Returns true when a row was actually inserted.
func (r *Repository) insertIfAbsent(ctx context.Context, date, startTime, endTime string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO time_slots (date, start_time, end_time, is_available)
		 VALUES (?, ?, ?, 1)`,
		date, startTime, endTime)
	if err != nil {
		return false, fmt.Errorf("slots: insert slot %s %s: %w", date, startTime, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("slots: rows affected: %w", err)
	}
	return n > 0, nil
}

// Both sqlite3 and libsql surface constraint failures as plain errors; the
// message text is the only stable discriminator shared by the two drivers.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
