package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/walletty/wallet-server/internal/storage/category"
)

type categoryReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*category.Category, error)
	ListByUserAndType(ctx context.Context, userID uuid.UUID, categoryType category.Type) ([]*category.Category, error)
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*category.Category, error)
}

// CategoryService handles category queries.
type CategoryService struct {
	categories categoryReader
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categories categoryReader) *CategoryService {
	return &CategoryService{categories: categories}
}

// ListCategories returns the user's categories ordered by type then
// name. A non-empty categoryType narrows the listing to "income" or
// "expense"; any other value is rejected.
func (s *CategoryService) ListCategories(ctx context.Context, userID uuid.UUID, categoryType string) ([]Category, error) {
	var rows []*category.Category
	var err error

	if categoryType == "" {
		rows, err = s.categories.ListByUser(ctx, userID)
	} else {
		typed := category.Type(categoryType)
		if !typed.Valid() {
			return nil, NewValidationError("type", "must be income or expense")
		}
		rows, err = s.categories.ListByUserAndType(ctx, userID, typed)
	}
	if err != nil {
		return nil, err
	}

	converted := make([]Category, len(rows))
	for i, row := range rows {
		converted[i] = *categoryFromStorage(row)
	}
	return converted, nil
}

// GetCategory retrieves one of the user's categories. Categories of
// other users are reported as ErrNotFound.
func (s *CategoryService) GetCategory(ctx context.Context, id, userID uuid.UUID) (*Category, error) {
	row, err := s.categories.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}
	return categoryFromStorage(row), nil
}
