package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/walletty/wallet-server/internal/service"
	"github.com/walletty/wallet-server/internal/storage"
)

// DeleteTransaction removes one of the user's transactions. Ownership
// is resolved through the account join.
type DeleteTransaction struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
	IAction
}

func (t *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	deleted, err := writer.Transactions.Delete(ctx, t.TransactionID, t.UserID)
	if err != nil {
		return err
	}
	if !deleted {
		return service.ErrNotFound
	}
	return nil
}
