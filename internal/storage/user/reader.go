package user

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
)

type Reader struct {
	exec executor
}

func NewReader(exec executor) *Reader {
	return &Reader{exec: exec}
}

const selectColumns = "id, email, first_name, last_name, password_hash, created_at"

// FindByEmail retrieves a user by email, nil when absent.
func (r *Reader) FindByEmail(ctx context.Context, email string) (*User, error) {
	row := r.exec.QueryRowContext(ctx,
		"SELECT "+selectColumns+" FROM users WHERE email = $1 LIMIT 1",
		email)
	return scanOne(row)
}

// FindByID retrieves a user by id, nil when absent.
func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	row := r.exec.QueryRowContext(ctx,
		"SELECT "+selectColumns+" FROM users WHERE id = $1",
		id)
	return scanOne(row)
}

func scanOne(row *sql.Row) (*User, error) {
	var user User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
