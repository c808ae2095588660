package auth

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// AdminUser is an account allowed into the admin API.
type AdminUser struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Repository provides persistence for admin users.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repository backed by database/sql.
func NewRepository(db *sql.DB) *Repository {
	if db == nil {
		panic("auth: db required")
	}
	return &Repository{db: db}
}

// Create stores a new admin user with a bcrypt password hash.
func (r *Repository) Create(ctx context.Context, username, password string) (*AdminUser, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	if len(password) < 8 {
		return nil, ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("auth: hash password: %w", err)
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO admin_users (username, password_hash) VALUES (?, ?)`,
		username, string(hash))
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return nil, ErrDuplicateUsername
	}
	if err != nil {
		return nil, fmt.Errorf("auth: insert admin user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("auth: last insert id: %w", err)
	}
	return r.get(ctx, id)
}

func (r *Repository) get(ctx context.Context, id int64) (*AdminUser, error) {
	var u AdminUser
	err := r.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash, created_at, updated_at
		 FROM admin_users WHERE id = ?`, id).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("auth: get admin user: %w", err)
	}
	return &u, nil
}

// Authenticate checks a username/password pair and returns the user on
// success. Both unknown users and wrong passwords report
// ErrInvalidCredentials.
func (r *Repository) Authenticate(ctx context.Context, username, password string) (*AdminUser, error) {
	var u AdminUser
	err := r.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash, created_at, updated_at
		 FROM admin_users WHERE username = ?`, username).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		// burn a comparison anyway so timing does not reveal user existence
		_ = bcrypt.CompareHashAndPassword([]byte("$2a$10$0000000000000000000000000000000000000000000000000000"), []byte(password))
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("auth: lookup admin user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &u, nil
}

// SetPassword replaces the password of an existing user.
func (r *Repository) SetPassword(ctx context.Context, username, password string) error {
	if len(password) < 8 {
		return ErrWeakPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("auth: hash password: %w", err)
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE admin_users SET password_hash = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE username = ?`, string(hash), username)
	if err != nil {
		return fmt.Errorf("auth: set password: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("auth: rows affected: %w", err)
	}
	if n == 0 {
		return ErrInvalidCredentials
	}
	return nil
}
