package user

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofrs/uuid/v5"
)

// User represents a user record. The core never authenticates; it only
// stores the hash the auth boundary verifies against.
type User struct {
	ID           uuid.UUID
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	CreatedAt    time.Time
}

// Create is the input for creating a new user.
type Create struct {
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
}

// executor is the subset of database/sql shared by *sql.DB and *sql.Tx.
type executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
