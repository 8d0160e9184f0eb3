package actions

import (
	"context"
	"errors"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/walletty/wallet-server/internal/service"
	"github.com/walletty/wallet-server/internal/storage"
	"github.com/walletty/wallet-server/internal/storage/category"
)

// UpdateCategory edits a category's name, type, and description.
// Changing the type flips the direction of every transaction already
// recorded against the category; that is the documented behavior, not
// an oversight.
type UpdateCategory struct {
	UserID      uuid.UUID
	CategoryID  uuid.UUID
	Name        string
	Type        string
	Description string
	IAction
}

func (c *UpdateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return service.NewValidationError("name", "must not be empty")
	}
	categoryType := category.Type(c.Type)
	if !categoryType.Valid() {
		return service.NewValidationError("type", "must be income or expense")
	}

	updated, err := writer.Categories.Update(ctx, c.CategoryID, c.UserID, name, categoryType, c.Description)
	if err != nil {
		if errors.Is(err, category.ErrDuplicate) {
			return service.NewValidationError("name", "already exists for this type")
		}
		return err
	}
	if !updated {
		return service.ErrNotFound
	}
	return nil
}
