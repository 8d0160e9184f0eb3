package service

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/walletty/wallet-server/internal/storage/category"
)

// Category represents a category in the service layer. Type is either
// "income" or "expense".
type Category struct {
	ID          uuid.UUID
	Name        string
	Type        string
	Description string
	CreatedAt   time.Time
}

func categoryFromStorage(row *category.Category) *Category {
	return &Category{
		ID:          row.ID,
		Name:        row.Name,
		Type:        string(row.Type),
		Description: row.Description,
		CreatedAt:   row.CreatedAt,
	}
}
