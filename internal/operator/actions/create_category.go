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

// CreateCategory adds a user-defined category.
type CreateCategory struct {
	UserID      uuid.UUID
	Name        string
	Type        string
	Description string

	// CategoryID is set after a successful Perform.
	CategoryID uuid.UUID
	IAction
}

func (c *CreateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return service.NewValidationError("name", "must not be empty")
	}
	categoryType := category.Type(c.Type)
	if !categoryType.Valid() {
		return service.NewValidationError("type", "must be income or expense")
	}

	categoryID, err := writer.Categories.Insert(ctx, &category.Create{
		UserID:      c.UserID,
		Name:        name,
		Type:        categoryType,
		Description: c.Description,
	})
	if err != nil {
		if errors.Is(err, category.ErrDuplicate) {
			return service.NewValidationError("name", "already exists for this type")
		}
		return err
	}

	c.CategoryID = categoryID
	return nil
}
