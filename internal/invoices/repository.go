package invoices

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// Repository provides persistence for invoices.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repository backed by database/sql.
func NewRepository(db *sql.DB) *Repository {
	if db == nil {
		panic("invoices: db required")
	}
	return &Repository{db: db}
}

const invoiceColumns = `id, reservation_id, invoice_number, customer_name, customer_email,
	service_name, amount, paid_amount, status, payment_method, due_date, issued_date,
	notes, created_at, updated_at`

func scanInvoice(row interface{ Scan(...any) error }) (*Invoice, error) {
	var inv Invoice
	var reservationID sql.NullInt64
	var method, dueDate, issuedDate, notes sql.NullString
	err := row.Scan(&inv.ID, &reservationID, &inv.InvoiceNumber, &inv.CustomerName,
		&inv.CustomerEmail, &inv.ServiceName, &inv.Amount, &inv.PaidAmount, &inv.Status,
		&method, &dueDate, &issuedDate, &notes, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if reservationID.Valid {
		inv.ReservationID = &reservationID.Int64
	}
	inv.PaymentMethod = method.String
	inv.DueDate = dueDate.String
	inv.IssuedDate = issuedDate.String
	inv.Notes = notes.String
	return &inv, nil
}

// Create raises a new invoice in pending status. An empty invoice
// number is assigned the next number in the NB-<year>-<seq> sequence.
func (r *Repository) Create(ctx context.Context, req *CreateInvoiceRequest) (*Invoice, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	number := req.InvoiceNumber
	if number == "" {
		n, err := r.nextNumber(ctx)
		if err != nil {
			return nil, err
		}
		number = n
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO invoices (reservation_id, invoice_number, customer_name, customer_email,
		 service_name, amount, due_date, notes)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		req.ReservationID, number, req.CustomerName, req.CustomerEmail,
		req.ServiceName, req.Amount, req.DueDate, req.Notes)
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return nil, ErrDuplicateNumber
	}
	if err != nil {
		return nil, fmt.Errorf("invoices: insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("invoices: last insert id: %w", err)
	}
	return r.Get(ctx, id)
}

func (r *Repository) nextNumber(ctx context.Context) (string, error) {
	year := time.Now().Format("2006")
	prefix := "NB-" + year + "-"

	var last sql.NullString
	err := r.db.QueryRowContext(ctx,
		`SELECT invoice_number FROM invoices WHERE invoice_number LIKE ?
		 ORDER BY invoice_number DESC LIMIT 1`, prefix+"%").Scan(&last)
	if err != nil && err != sql.ErrNoRows {
		return "", fmt.Errorf("invoices: next number: %w", err)
	}

	seq := 1
	if last.Valid {
		fmt.Sscanf(strings.TrimPrefix(last.String, prefix), "%d", &seq)
		seq++
	}
	return fmt.Sprintf("%s%04d", prefix, seq), nil
}

// Get loads one invoice by id.
func (r *Repository) Get(ctx context.Context, id int64) (*Invoice, error) {
	inv, err := scanInvoice(r.db.QueryRowContext(ctx,
		`SELECT `+invoiceColumns+` FROM invoices WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("invoices: get: %w", err)
	}
	return inv, nil
}

// List returns invoices newest first, optionally filtered by status.
func (r *Repository) List(ctx context.Context, status Status) ([]Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices ORDER BY created_at DESC, id DESC`
	args := []any{}
	if status != "" {
		query = `SELECT ` + invoiceColumns + ` FROM invoices WHERE status = ? ORDER BY created_at DESC, id DESC`
		args = append(args, status)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("invoices: list: %w", err)
	}
	defer rows.Close()

	out := []Invoice{}
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("invoices: scan: %w", err)
		}
		out = append(out, *inv)
	}
	return out, rows.Err()
}

// RecordPayment adds a payment to an invoice and derives the new
// status from the running total. The read and update run in one
// transaction so concurrent payments cannot overshoot the amount due.
func (r *Repository) RecordPayment(ctx context.Context, id int64, req *PaymentRequest) (*Invoice, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("invoices: begin tx: %w", err)
	}
	defer tx.Rollback()

	inv, err := scanInvoice(tx.QueryRowContext(ctx,
		`SELECT `+invoiceColumns+` FROM invoices WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("invoices: load for payment: %w", err)
	}

	if inv.Status == StatusCancelled {
		return nil, ErrCancelled
	}
	paid := inv.PaidAmount + req.Amount
	// small float tolerance so a card payment of exactly the balance settles
	if paid > inv.Amount+0.005 {
		return nil, ErrOverpayment
	}

	status := StatusPartiallyPaid
	if paid >= inv.Amount-0.005 {
		status = StatusPaid
		paid = inv.Amount
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE invoices SET paid_amount = ?, status = ?, payment_method = ?,
		 updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		paid, status, req.PaymentMethod, id)
	if err != nil {
		return nil, fmt.Errorf("invoices: record payment: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("invoices: commit: %w", err)
	}
	return r.Get(ctx, id)
}

// Cancel marks an invoice cancelled. Paid invoices cannot be cancelled.
func (r *Repository) Cancel(ctx context.Context, id int64) (*Invoice, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE invoices SET status = 'cancelled', updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND status IN ('pending', 'partially_paid')`, id)
	if err != nil {
		return nil, fmt.Errorf("invoices: cancel: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("invoices: rows affected: %w", err)
	}
	if n == 0 {
		// distinguish missing from already settled
		if _, err := r.Get(ctx, id); err != nil {
			return nil, err
		}
		return nil, ErrNotCancellable
	}
	return r.Get(ctx, id)
}

// Delete removes an invoice by id.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM invoices WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("invoices: delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("invoices: rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
