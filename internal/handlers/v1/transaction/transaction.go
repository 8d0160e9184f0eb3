package transaction

import (
	"time"

	"github.com/walletty/wallet-server/internal/service"
)

// Transaction is the API response model for a transaction.
type Transaction struct {
	ID           string `json:"id" doc:"Transaction UUID"`
	AccountID    string `json:"accountID" doc:"Account UUID"`
	CategoryID   string `json:"categoryID" doc:"Category UUID"`
	Amount       string `json:"amount" doc:"Positive decimal amount"`
	Date         string `json:"date" doc:"RFC3339 transaction time"`
	Description  string `json:"description" doc:"Free-form description"`
	CategoryName string `json:"categoryName" doc:"Category name"`
	CategoryType string `json:"categoryType" doc:"income or expense"`
}

func fromService(tx service.Transaction) Transaction {
	return Transaction{
		ID:           tx.ID.String(),
		AccountID:    tx.AccountID.String(),
		CategoryID:   tx.CategoryID.String(),
		Amount:       tx.Amount.String(),
		Date:         tx.Date.Format(time.RFC3339),
		Description:  tx.Description,
		CategoryName: tx.CategoryName,
		CategoryType: tx.CategoryType,
	}
}
