package content

import (
	"context"
	"database/sql"
	"fmt"
)

// ParameterRepository provides access to the keyed site settings.
type ParameterRepository struct {
	db *sql.DB
}

// NewParameterRepository creates a parameter repository.
func NewParameterRepository(db *sql.DB) *ParameterRepository {
	if db == nil {
		panic("content: db required")
	}
	return &ParameterRepository{db: db}
}

const parameterColumns = `id, key, value, description, category, created_at, updated_at`

func scanParameter(row interface{ Scan(...any) error }) (*Parameter, error) {
	var p Parameter
	var value, description sql.NullString
	err := row.Scan(&p.ID, &p.Key, &value, &description, &p.Category, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.Value = value.String
	p.Description = description.String
	return &p, nil
}

// List returns all parameters grouped by category.
func (r *ParameterRepository) List(ctx context.Context) ([]Parameter, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+parameterColumns+` FROM parameters ORDER BY category, key`)
	if err != nil {
		return nil, fmt.Errorf("content: list parameters: %w", err)
	}
	defer rows.Close()

	out := []Parameter{}
	for rows.Next() {
		p, err := scanParameter(rows)
		if err != nil {
			return nil, fmt.Errorf("content: scan parameter: %w", err)
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// Value returns the value for one parameter key.
func (r *ParameterRepository) Value(ctx context.Context, key string) (string, error) {
	var value sql.NullString
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM parameters WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", ErrUnknownParameter
	}
	if err != nil {
		return "", fmt.Errorf("content: parameter %s: %w", key, err)
	}
	return value.String, nil
}

// Set updates the value of an existing parameter. New keys are only
// introduced through migrations, so an unknown key is an error.
func (r *ParameterRepository) Set(ctx context.Context, key, value string) (*Parameter, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE parameters SET value = ?, updated_at = CURRENT_TIMESTAMP WHERE key = ?`,
		value, key)
	if err != nil {
		return nil, fmt.Errorf("content: set parameter: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("content: rows affected: %w", err)
	}
	if n == 0 {
		return nil, ErrUnknownParameter
	}

	p, err := scanParameter(r.db.QueryRowContext(ctx,
		`SELECT `+parameterColumns+` FROM parameters WHERE key = ?`, key))
	if err != nil {
		return nil, fmt.Errorf("content: get parameter: %w", err)
	}
	return p, nil
}
