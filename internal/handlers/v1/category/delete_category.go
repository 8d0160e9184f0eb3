package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/walletty/wallet-server/internal/handlers/v1/common"
	"github.com/walletty/wallet-server/internal/operator"
	"github.com/walletty/wallet-server/internal/operator/actions"
)

// DeleteCategoryInput is the Huma input for deleting a category.
type DeleteCategoryInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Acting user UUID"`
	ID     string `path:"id" doc:"Category UUID"`
}

// DeleteCategoryOutput is the Huma output for deleting a category.
type DeleteCategoryOutput struct {
	Status int `json:"status" doc:"HTTP status"`
}

// DeleteCategoryHandler handles DELETE /v1/categories/{id}.
type DeleteCategoryHandler struct {
	Operator *operator.OperatorDelegator
}

// NewDeleteCategoryHandler creates a new DeleteCategoryHandler.
func NewDeleteCategoryHandler(op *operator.OperatorDelegator) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{Operator: op}
}

// Register registers the delete category endpoint with the Huma API.
func (h *DeleteCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-category",
		Method:      http.MethodDelete,
		Path:        "/v1/categories/{id}",
		Summary:     "Delete category",
		Description: "Deletes a category unless transactions still reference it.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *DeleteCategoryHandler) handle(ctx context.Context, input *DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	userID, err := common.ParseUserID(input.UserID)
	if err != nil {
		return nil, err
	}
	categoryID, err := common.ParseID("id", input.ID)
	if err != nil {
		return nil, err
	}

	action := &actions.DeleteCategory{
		UserID:     userID,
		CategoryID: categoryID,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, common.MapError(err, "failed to delete category")
	}

	return &DeleteCategoryOutput{Status: http.StatusOK}, nil
}
