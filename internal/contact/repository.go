package contact

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository provides persistence for contact messages.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repository backed by database/sql.
func NewRepository(db *sql.DB) *Repository {
	if db == nil {
		panic("contact: db required")
	}
	return &Repository{db: db}
}

const messageColumns = `id, name, email, phone, subject, message, status,
	admin_reply, replied_at, replied_by, created_at, updated_at`

func scanMessage(row interface{ Scan(...any) error }) (*Message, error) {
	var m Message
	var phone, subject, reply, repliedBy sql.NullString
	var repliedAt sql.NullTime
	err := row.Scan(&m.ID, &m.Name, &m.Email, &phone, &subject, &m.Message, &m.Status,
		&reply, &repliedAt, &repliedBy, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	m.Phone = phone.String
	m.Subject = subject.String
	m.AdminReply = reply.String
	m.RepliedBy = repliedBy.String
	if repliedAt.Valid {
		m.RepliedAt = &repliedAt.Time
	}
	return &m, nil
}

// Create inserts a new message in "new" status.
func (r *Repository) Create(ctx context.Context, req *CreateMessageRequest) (*Message, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO contact_messages (name, email, phone, subject, message, status)
		 VALUES (?, ?, ?, ?, ?, 'new')`,
		req.Name, req.Email, req.Phone, req.Subject, req.Message)
	if err != nil {
		return nil, fmt.Errorf("contact: insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("contact: last insert id: %w", err)
	}
	return r.Get(ctx, id)
}

// Get loads one message by id.
func (r *Repository) Get(ctx context.Context, id int64) (*Message, error) {
	m, err := scanMessage(r.db.QueryRowContext(ctx,
		`SELECT `+messageColumns+` FROM contact_messages WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("contact: get: %w", err)
	}
	return m, nil
}

// List returns messages newest first, optionally filtered by status.
func (r *Repository) List(ctx context.Context, status Status) ([]Message, error) {
	query := `SELECT ` + messageColumns + ` FROM contact_messages ORDER BY created_at DESC`
	args := []any{}
	if status != "" {
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
		query = `SELECT ` + messageColumns + ` FROM contact_messages WHERE status = ? ORDER BY created_at DESC`
		args = append(args, status)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("contact: list: %w", err)
	}
	defer rows.Close()

	out := []Message{}
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("contact: scan: %w", err)
		}
		out = append(out, *m)
	}
	return out, rows.Err()
}

// UpdateStatus moves a message between triage states.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status Status) (*Message, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE contact_messages SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		status, id)
	if err != nil {
		return nil, fmt.Errorf("contact: update status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("contact: rows affected: %w", err)
	}
	if n == 0 {
		return nil, ErrNotFound
	}
	return r.Get(ctx, id)
}

// Reply stores the admin reply and stamps the message replied.
func (r *Repository) Reply(ctx context.Context, req *ReplyRequest) (*Message, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE contact_messages
		 SET status = 'replied', admin_reply = ?, replied_at = CURRENT_TIMESTAMP,
		     replied_by = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		req.Reply, req.RepliedBy, req.ID)
	if err != nil {
		return nil, fmt.Errorf("contact: reply: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("contact: rows affected: %w", err)
	}
	if n == 0 {
		return nil, ErrNotFound
	}
	return r.Get(ctx, req.ID)
}

// Delete removes a message by id.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM contact_messages WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("contact: delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("contact: rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
