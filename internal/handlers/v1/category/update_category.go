package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/walletty/wallet-server/internal/handlers/v1/common"
	"github.com/walletty/wallet-server/internal/operator"
	"github.com/walletty/wallet-server/internal/operator/actions"
)

// UpdateCategoryBody is the request body for editing a category.
type UpdateCategoryBody struct {
	Name        string `json:"name" required:"true" doc:"Category name, unique per type"`
	Type        string `json:"type" required:"true" enum:"income,expense" doc:"Category type; changing it flips the direction of existing transactions"`
	Description string `json:"description,omitempty" doc:"Free-form description"`
}

// UpdateCategoryInput is the Huma input for editing a category.
type UpdateCategoryInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Acting user UUID"`
	ID     string `path:"id" doc:"Category UUID"`
	Body   UpdateCategoryBody
}

// UpdateCategoryOutput is the Huma output for editing a category.
type UpdateCategoryOutput struct {
	Status int `json:"status" doc:"HTTP status"`
}

// UpdateCategoryHandler handles PUT /v1/categories/{id}.
type UpdateCategoryHandler struct {
	Operator *operator.OperatorDelegator
}

// NewUpdateCategoryHandler creates a new UpdateCategoryHandler.
func NewUpdateCategoryHandler(op *operator.OperatorDelegator) *UpdateCategoryHandler {
	return &UpdateCategoryHandler{Operator: op}
}

// Register registers the update category endpoint with the Huma API.
func (h *UpdateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-category",
		Method:      http.MethodPut,
		Path:        "/v1/categories/{id}",
		Summary:     "Update category",
		Description: "Edits a category's name, type, and description.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *UpdateCategoryHandler) handle(ctx context.Context, input *UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	userID, err := common.ParseUserID(input.UserID)
	if err != nil {
		return nil, err
	}
	categoryID, err := common.ParseID("id", input.ID)
	if err != nil {
		return nil, err
	}

	action := &actions.UpdateCategory{
		UserID:      userID,
		CategoryID:  categoryID,
		Name:        input.Body.Name,
		Type:        input.Body.Type,
		Description: input.Body.Description,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, common.MapError(err, "failed to update category")
	}

	return &UpdateCategoryOutput{Status: http.StatusOK}, nil
}
