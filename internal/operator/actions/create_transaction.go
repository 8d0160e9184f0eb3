package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/walletty/wallet-server/internal/service"
	"github.com/walletty/wallet-server/internal/storage"
	"github.com/walletty/wallet-server/internal/storage/transaction"
)

// CreateTransaction records one income or expense row. The direction
// comes from the referenced category's type and is never stored on the
// transaction itself. Both the account and the category must belong to
// the acting user; a foreign reference reads as not found.
type CreateTransaction struct {
	UserID      uuid.UUID
	AccountID   uuid.UUID
	CategoryID  uuid.UUID
	Amount      decimal.Decimal
	Date        time.Time
	Description string

	// TransactionID is set after a successful Perform.
	TransactionID uuid.UUID
	IAction
}

func (t *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if !t.Amount.IsPositive() {
		return service.NewValidationError("amount", "must be greater than zero")
	}

	accountRow, err := writer.Accounts.FindByIDAndUser(ctx, t.AccountID, t.UserID)
	if err != nil {
		return err
	}
	if accountRow == nil {
		return service.ErrNotFound
	}

	categoryRow, err := writer.Categories.FindByIDAndUser(ctx, t.CategoryID, t.UserID)
	if err != nil {
		return err
	}
	if categoryRow == nil {
		return service.ErrNotFound
	}

	date := t.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	transactionID, err := writer.Transactions.Insert(ctx, &transaction.Create{
		AccountID:   t.AccountID,
		CategoryID:  t.CategoryID,
		Amount:      t.Amount,
		Date:        date,
		Description: t.Description,
	})
	if err != nil {
		return err
	}

	t.TransactionID = transactionID
	return nil
}
