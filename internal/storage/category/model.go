package category

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Type is the closed two-value category type enum.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Valid reports whether t is one of the two known types.
func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// System category names. These are regular rows distinguished only by
// their reserved names; they are created lazily the first time an
// operation needs them.
const (
	SystemInitialBalance = "Initial balance"
	SystemAdjustment     = "Balance adjustment"
	SystemTransferIn     = "Transfer in"
	SystemTransferOut    = "Transfer out"
)

// Category represents a category record.
type Category struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Type        Type
	Description string
	CreatedAt   time.Time
}

// Create is the input for creating a new category.
type Create struct {
	UserID      uuid.UUID
	Name        string
	Type        Type
	Description string
}

// executor is the subset of database/sql shared by *sql.DB and *sql.Tx.
type executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
