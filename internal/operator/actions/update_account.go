package actions

import (
	"context"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/walletty/wallet-server/internal/currency"
	"github.com/walletty/wallet-server/internal/service"
	"github.com/walletty/wallet-server/internal/storage"
)

// UpdateAccount renames an account or changes its currency. A currency
// change never converts past transactions.
type UpdateAccount struct {
	UserID    uuid.UUID
	AccountID uuid.UUID
	Name      string
	Currency  string
	IAction
}

func (a *UpdateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	name := strings.TrimSpace(a.Name)
	if name == "" {
		return service.NewValidationError("name", "must not be empty")
	}
	if !currency.IsAllowed(a.Currency) {
		return service.NewValidationError("currency", "is not an allowed currency code")
	}

	updated, err := writer.Accounts.Update(ctx, a.AccountID, a.UserID, name, currency.Code(a.Currency))
	if err != nil {
		return err
	}
	if !updated {
		return service.ErrNotFound
	}
	return nil
}
