package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/walletty/wallet-server/internal/service"
	"github.com/walletty/wallet-server/internal/storage"
)

// DeleteAccount removes an account and every transaction belonging to
// it. The transactions go first inside the same storage transaction,
// so the foreign key never observes an orphan and a failure leaves
// everything in place.
type DeleteAccount struct {
	UserID    uuid.UUID
	AccountID uuid.UUID
	IAction
}

func (a *DeleteAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Accounts.FindByIDAndUser(ctx, a.AccountID, a.UserID)
	if err != nil {
		return err
	}
	if row == nil {
		return service.ErrNotFound
	}

	if err := writer.Transactions.DeleteByAccount(ctx, a.AccountID); err != nil {
		return err
	}

	deleted, err := writer.Accounts.Delete(ctx, a.AccountID, a.UserID)
	if err != nil {
		return err
	}
	if !deleted {
		return service.ErrNotFound
	}
	return nil
}
