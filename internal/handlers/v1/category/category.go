package category

import (
	"time"

	"github.com/walletty/wallet-server/internal/service"
)

// Category is the API response model for a category.
type Category struct {
	ID          string `json:"id" doc:"Category UUID"`
	Name        string `json:"name" doc:"Category name"`
	Type        string `json:"type" doc:"income or expense"`
	Description string `json:"description" doc:"Free-form description"`
	CreatedAt   string `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromService(c service.Category) Category {
	return Category{
		ID:          c.ID.String(),
		Name:        c.Name,
		Type:        c.Type,
		Description: c.Description,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
	}
}
