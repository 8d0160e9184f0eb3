package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/walletty/wallet-server/internal/service"
	"github.com/walletty/wallet-server/internal/storage"
)

// DeleteCategory removes a category, refusing while any transaction
// still references it. The guard and the delete run as a single
// statement; when nothing was deleted a followup read distinguishes
// "in use" from "does not exist".
type DeleteCategory struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
	IAction
}

func (c *DeleteCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	deleted, err := writer.Categories.DeleteUnreferenced(ctx, c.CategoryID, c.UserID)
	if err != nil {
		return err
	}
	if deleted {
		return nil
	}

	row, err := writer.Categories.FindByIDAndUser(ctx, c.CategoryID, c.UserID)
	if err != nil {
		return err
	}
	if row == nil {
		return service.ErrNotFound
	}
	return service.ErrCategoryInUse
}
