package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/walletty/wallet-server/internal/handlers/v1/common"
	"github.com/walletty/wallet-server/internal/operator"
	"github.com/walletty/wallet-server/internal/operator/actions"
)

// CreateCategoryBody is the request body for creating a category.
type CreateCategoryBody struct {
	Name        string `json:"name" required:"true" doc:"Category name, unique per type"`
	Type        string `json:"type" required:"true" enum:"income,expense" doc:"Category type"`
	Description string `json:"description,omitempty" doc:"Free-form description"`
}

// CreateCategoryInput is the Huma input for creating a category.
type CreateCategoryInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Acting user UUID"`
	Body   CreateCategoryBody
}

// CreateCategoryOutput is the Huma output for creating a category.
type CreateCategoryOutput struct {
	Status int `json:"status" doc:"HTTP status"`
	Body   struct {
		ID string `json:"id" doc:"New category UUID"`
	}
}

// CreateCategoryHandler handles POST /v1/categories.
type CreateCategoryHandler struct {
	Operator *operator.OperatorDelegator
}

// NewCreateCategoryHandler creates a new CreateCategoryHandler.
func NewCreateCategoryHandler(op *operator.OperatorDelegator) *CreateCategoryHandler {
	return &CreateCategoryHandler{Operator: op}
}

// Register registers the create category endpoint with the Huma API.
func (h *CreateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-category",
		Method:      http.MethodPost,
		Path:        "/v1/categories",
		Summary:     "Create category",
		Description: "Creates a user-defined category.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *CreateCategoryHandler) handle(ctx context.Context, input *CreateCategoryInput) (*CreateCategoryOutput, error) {
	userID, err := common.ParseUserID(input.UserID)
	if err != nil {
		return nil, err
	}

	action := &actions.CreateCategory{
		UserID:      userID,
		Name:        input.Body.Name,
		Type:        input.Body.Type,
		Description: input.Body.Description,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, common.MapError(err, "failed to create category")
	}

	out := &CreateCategoryOutput{Status: http.StatusCreated}
	out.Body.ID = action.CategoryID.String()
	return out, nil
}
