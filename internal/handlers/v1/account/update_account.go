package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/walletty/wallet-server/internal/handlers/v1/common"
	"github.com/walletty/wallet-server/internal/operator"
	"github.com/walletty/wallet-server/internal/operator/actions"
)

// UpdateAccountBody is the request body for editing an account.
type UpdateAccountBody struct {
	Name     string `json:"name" required:"true" doc:"Account name"`
	Currency string `json:"currency" required:"true" doc:"ISO-4217 currency code; changing it does not convert past transactions"`
}

// UpdateAccountInput is the Huma input for editing an account.
type UpdateAccountInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Acting user UUID"`
	ID     string `path:"id" doc:"Account UUID"`
	Body   UpdateAccountBody
}

// UpdateAccountOutput is the Huma output for editing an account.
type UpdateAccountOutput struct {
	Status int `json:"status" doc:"HTTP status"`
}

// UpdateAccountHandler handles PUT /v1/accounts/{id}.
type UpdateAccountHandler struct {
	Operator *operator.OperatorDelegator
}

// NewUpdateAccountHandler creates a new UpdateAccountHandler.
func NewUpdateAccountHandler(op *operator.OperatorDelegator) *UpdateAccountHandler {
	return &UpdateAccountHandler{Operator: op}
}

// Register registers the update account endpoint with the Huma API.
func (h *UpdateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-account",
		Method:      http.MethodPut,
		Path:        "/v1/accounts/{id}",
		Summary:     "Update account",
		Description: "Renames an account or changes its currency.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *UpdateAccountHandler) handle(ctx context.Context, input *UpdateAccountInput) (*UpdateAccountOutput, error) {
	userID, err := common.ParseUserID(input.UserID)
	if err != nil {
		return nil, err
	}
	accountID, err := common.ParseID("id", input.ID)
	if err != nil {
		return nil, err
	}

	action := &actions.UpdateAccount{
		UserID:    userID,
		AccountID: accountID,
		Name:      input.Body.Name,
		Currency:  input.Body.Currency,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, common.MapError(err, "failed to update account")
	}

	return &UpdateAccountOutput{Status: http.StatusOK}, nil
}
