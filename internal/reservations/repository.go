package reservations

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository provides persistence for reservations and owns the slot-claim
// transaction that keeps the booking invariant: for any (date, time) at most
// one non-cancelled reservation, and the matching time slot flagged
// unavailable and pointing back at it.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repository backed by database/sql.
func NewRepository(db *sql.DB) *Repository {
	if db == nil {
		panic("reservations: db required")
	}
	return &Repository{db: db}
}

const reservationColumns = `id, name, email, phone, service_type, service_name,
	preferred_date, preferred_time, message, status, created_at, updated_at`

func scanReservation(row interface{ Scan(...any) error }) (*Reservation, error) {
	var rv Reservation
	var phone, serviceName, date, timeOfDay, message sql.NullString
	err := row.Scan(&rv.ID, &rv.Name, &rv.Email, &phone, &rv.ServiceType, &serviceName,
		&date, &timeOfDay, &message, &rv.Status, &rv.CreatedAt, &rv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	rv.Phone = phone.String
	rv.ServiceName = serviceName.String
	rv.PreferredDate = date.String
	rv.PreferredTime = timeOfDay.String
	rv.Message = message.String
	return &rv, nil
}

// Create records a booking request. When a slot is requested the claim, the
// conflict re-check, the reservation insert and the slot link run inside one
// transaction; two concurrent requests for the same slot serialize on the
// conditional update and the loser gets ErrSlotUnavailable.
func (r *Repository) Create(ctx context.Context, req *CreateReservationRequest) (*Reservation, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if !req.Scheduled() {
		id, err := r.insert(ctx, r.db, req, StatusPending)
		if err != nil {
			return nil, err
		}
		return r.Get(ctx, id)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("reservations: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Claim the slot with a conditional update. Zero rows means the slot is
	// missing or already taken; either way the caller retries another slot.
	res, err := tx.ExecContext(ctx,
		`UPDATE time_slots
		 SET is_available = 0, updated_at = CURRENT_TIMESTAMP
		 WHERE date = ? AND start_time = ? AND is_available = 1`,
		req.PreferredDate, req.PreferredTime)
	if err != nil {
		return nil, fmt.Errorf("reservations: claim slot: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("reservations: rows affected: %w", err)
	}
	if n == 0 {
		return nil, ErrSlotUnavailable
	}

	// The slot flag can drift out of sync with the reservations table, so
	// re-check for an occupying reservation before writing.
	var occupied int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM reservations
		 WHERE preferred_date = ? AND preferred_time = ? AND status != 'cancelled'`,
		req.PreferredDate, req.PreferredTime).Scan(&occupied)
	if err != nil {
		return nil, fmt.Errorf("reservations: conflict check: %w", err)
	}
	if occupied > 0 {
		return nil, ErrSlotConflict
	}

	id, err := r.insert(ctx, tx, req, StatusPending)
	if err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE time_slots SET reserved_by = ? WHERE date = ? AND start_time = ?`,
		id, req.PreferredDate, req.PreferredTime); err != nil {
		return nil, fmt.Errorf("reservations: link slot: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("reservations: commit: %w", err)
	}
	return r.Get(ctx, id)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (r *Repository) insert(ctx context.Context, db execer, req *CreateReservationRequest, status Status) (int64, error) {
	res, err := db.ExecContext(ctx,
		`INSERT INTO reservations (name, email, phone, service_type, service_name,
		     preferred_date, preferred_time, message, status)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		req.Name, req.Email, req.Phone, req.ServiceType, req.ServiceName,
		req.PreferredDate, req.PreferredTime, req.Message, status)
	if err != nil {
		return 0, fmt.Errorf("reservations: insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reservations: last insert id: %w", err)
	}
	return id, nil
}

// CreateManual inserts a back-office reservation with an explicit status and
// no slot interaction; administrators manage the slot table directly.
func (r *Repository) CreateManual(ctx context.Context, req *CreateReservationRequest, status Status) (*Reservation, error) {
	if status == "" {
		status = StatusPending
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	id, err := r.insert(ctx, r.db, req, status)
	if err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

// Get loads one reservation by id.
func (r *Repository) Get(ctx context.Context, id int64) (*Reservation, error) {
	rv, err := scanReservation(r.db.QueryRowContext(ctx,
		`SELECT `+reservationColumns+` FROM reservations WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reservations: get: %w", err)
	}
	return rv, nil
}

// List returns all reservations, newest first.
func (r *Repository) List(ctx context.Context) ([]Reservation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+reservationColumns+` FROM reservations ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("reservations: list: %w", err)
	}
	defer rows.Close()

	out := []Reservation{}
	for rows.Next() {
		rv, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("reservations: scan: %w", err)
		}
		out = append(out, *rv)
	}
	return out, rows.Err()
}

// UpdateStatus applies an administrative lifecycle transition. Cancelling a
// scheduled reservation releases its slot in the same transaction, so the
// interval becomes bookable again immediately.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, next Status) (*Reservation, error) {
	if !next.Valid() {
		return nil, ErrInvalidStatus
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("reservations: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var current Status
	var date, timeOfDay sql.NullString
	err = tx.QueryRowContext(ctx,
		`SELECT status, preferred_date, preferred_time FROM reservations WHERE id = ?`, id).
		Scan(&current, &date, &timeOfDay)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reservations: load status: %w", err)
	}

	if !current.CanTransitionTo(next) {
		return nil, ErrInvalidTransition
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE reservations SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		next, id); err != nil {
		return nil, fmt.Errorf("reservations: update status: %w", err)
	}

	if next == StatusCancelled && date.String != "" && timeOfDay.String != "" {
		if _, err := tx.ExecContext(ctx,
			`UPDATE time_slots
			 SET is_available = 1, reserved_by = NULL, updated_at = CURRENT_TIMESTAMP
			 WHERE date = ? AND start_time = ? AND reserved_by = ?`,
			date.String, timeOfDay.String, id); err != nil {
			return nil, fmt.Errorf("reservations: release slot: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("reservations: commit: %w", err)
	}
	return r.Get(ctx, id)
}

// Delete removes a reservation outright (admin only). A claimed slot is
// released first so the interval does not stay orphaned.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("reservations: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`UPDATE time_slots
		 SET is_available = 1, reserved_by = NULL, updated_at = CURRENT_TIMESTAMP
		 WHERE reserved_by = ?`, id); err != nil {
		return fmt.Errorf("reservations: release slot: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM reservations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("reservations: delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reservations: rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return tx.Commit()
}
