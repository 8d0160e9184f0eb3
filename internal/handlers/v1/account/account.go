package account

import (
	"time"

	"github.com/walletty/wallet-server/internal/service"
)

// Account is the API response model for an account.
type Account struct {
	ID        string `json:"id" doc:"Account UUID"`
	Name      string `json:"name" doc:"Account name"`
	Currency  string `json:"currency" doc:"ISO-4217 currency code"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromService(a service.Account) Account {
	return Account{
		ID:        a.ID.String(),
		Name:      a.Name,
		Currency:  string(a.Currency),
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}
