package account

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/walletty/wallet-server/internal/currency"
)

// Account represents an account record. Accounts carry no balance
// column: balances are always derived from the transaction ledger.
type Account struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Currency  currency.Code
	CreatedAt time.Time
}

// Create is the input for creating a new account.
type Create struct {
	UserID   uuid.UUID
	Name     string
	Currency currency.Code
}

// executor is the subset of database/sql shared by *sql.DB and *sql.Tx.
type executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
