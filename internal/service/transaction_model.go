package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/walletty/wallet-server/internal/storage/transaction"
)

// Transaction represents a transaction in the service layer, joined
// with its category's name and type.
type Transaction struct {
	ID           uuid.UUID
	AccountID    uuid.UUID
	CategoryID   uuid.UUID
	Amount       decimal.Decimal
	Date         time.Time
	Description  string
	CategoryName string
	CategoryType string
}

// TransactionFilter narrows a transaction listing. Date bounds are
// inclusive and compare calendar dates.
type TransactionFilter struct {
	CategoryID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}

func transactionFromStorage(row *transaction.Transaction) *Transaction {
	return &Transaction{
		ID:           row.ID,
		AccountID:    row.AccountID,
		CategoryID:   row.CategoryID,
		Amount:       row.Amount,
		Date:         row.Date,
		Description:  row.Description,
		CategoryName: row.CategoryName,
		CategoryType: string(row.CategoryType),
	}
}

func transactionsFromStorage(rows []*transaction.Transaction) []Transaction {
	converted := make([]Transaction, len(rows))
	for i, row := range rows {
		converted[i] = *transactionFromStorage(row)
	}
	return converted
}
