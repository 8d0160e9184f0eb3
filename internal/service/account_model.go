package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/walletty/wallet-server/internal/currency"
	"github.com/walletty/wallet-server/internal/storage/account"
)

// Account represents an account in the service layer.
type Account struct {
	ID        uuid.UUID
	Name      string
	Currency  currency.Code
	CreatedAt time.Time
}

// Summary holds the derived balance figures of a single account.
// Balance is always Income minus Expense, computed from the
// transaction rows at read time.
type Summary struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

func accountFromStorage(row *account.Account) *Account {
	return &Account{
		ID:        row.ID,
		Name:      row.Name,
		Currency:  row.Currency,
		CreatedAt: row.CreatedAt,
	}
}
