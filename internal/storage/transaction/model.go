package transaction

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/walletty/wallet-server/internal/storage/category"
)

// Transaction represents a transaction record joined with its
// category's name and type. Amounts are always positive; the category
// type carries the direction.
type Transaction struct {
	ID           uuid.UUID
	AccountID    uuid.UUID
	CategoryID   uuid.UUID
	Amount       decimal.Decimal
	Date         time.Time
	Description  string
	CategoryName string
	CategoryType category.Type
}

// Create is the input for creating a new transaction.
type Create struct {
	AccountID   uuid.UUID
	CategoryID  uuid.UUID
	Amount      decimal.Decimal
	Date        time.Time
	Description string
}

// Filter narrows ListByAccount. Date bounds compare calendar dates,
// inclusive on both ends.
type Filter struct {
	CategoryID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}

// Summary holds derived totals for one account.
type Summary struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

// StatRow is one transaction reduced to what statistics aggregation
// needs: its amount, calendar day, and category name/type.
type StatRow struct {
	Amount       decimal.Decimal
	Day          time.Time
	CategoryName string
	CategoryType category.Type
}

// executor is the subset of database/sql shared by *sql.DB and *sql.Tx.
type executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
