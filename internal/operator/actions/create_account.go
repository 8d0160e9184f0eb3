package actions

import (
	"context"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/walletty/wallet-server/internal/currency"
	"github.com/walletty/wallet-server/internal/service"
	"github.com/walletty/wallet-server/internal/storage"
	"github.com/walletty/wallet-server/internal/storage/account"
	"github.com/walletty/wallet-server/internal/storage/transaction"
)

// CreateAccount creates an account and, when InitialBalance is
// positive, records the opening amount as an income transaction in the
// system "Initial balance" category. Both writes share one
// transaction.
type CreateAccount struct {
	UserID         uuid.UUID
	Name           string
	Currency       string
	InitialBalance decimal.Decimal

	// AccountID is set after a successful Perform.
	AccountID uuid.UUID
	IAction
}

func (a *CreateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	name := strings.TrimSpace(a.Name)
	if name == "" {
		return service.NewValidationError("name", "must not be empty")
	}
	if !currency.IsAllowed(a.Currency) {
		return service.NewValidationError("currency", "is not an allowed currency code")
	}
	if a.InitialBalance.IsNegative() {
		return service.NewValidationError("initial_balance", "must not be negative")
	}

	accountID, err := writer.Accounts.Insert(ctx, &account.Create{
		UserID:   a.UserID,
		Name:     name,
		Currency: currency.Code(a.Currency),
	})
	if err != nil {
		return err
	}

	if a.InitialBalance.IsPositive() {
		categoryID, err := writer.Categories.GetOrCreateInitialBalance(ctx, a.UserID)
		if err != nil {
			return err
		}
		_, err = writer.Transactions.Insert(ctx, &transaction.Create{
			AccountID:   accountID,
			CategoryID:  categoryID,
			Amount:      a.InitialBalance,
			Date:        time.Now().UTC(),
			Description: "Initial balance",
		})
		if err != nil {
			return err
		}
	}

	a.AccountID = accountID
	return nil
}
