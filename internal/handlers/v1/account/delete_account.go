package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/walletty/wallet-server/internal/handlers/v1/common"
	"github.com/walletty/wallet-server/internal/operator"
	"github.com/walletty/wallet-server/internal/operator/actions"
)

// DeleteAccountInput is the Huma input for deleting an account.
type DeleteAccountInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Acting user UUID"`
	ID     string `path:"id" doc:"Account UUID"`
}

// DeleteAccountOutput is the Huma output for deleting an account.
type DeleteAccountOutput struct {
	Status int `json:"status" doc:"HTTP status"`
}

// DeleteAccountHandler handles DELETE /v1/accounts/{id}.
type DeleteAccountHandler struct {
	Operator *operator.OperatorDelegator
}

// NewDeleteAccountHandler creates a new DeleteAccountHandler.
func NewDeleteAccountHandler(op *operator.OperatorDelegator) *DeleteAccountHandler {
	return &DeleteAccountHandler{Operator: op}
}

// Register registers the delete account endpoint with the Huma API.
func (h *DeleteAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-account",
		Method:      http.MethodDelete,
		Path:        "/v1/accounts/{id}",
		Summary:     "Delete account",
		Description: "Deletes an account and all of its transactions.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *DeleteAccountHandler) handle(ctx context.Context, input *DeleteAccountInput) (*DeleteAccountOutput, error) {
	userID, err := common.ParseUserID(input.UserID)
	if err != nil {
		return nil, err
	}
	accountID, err := common.ParseID("id", input.ID)
	if err != nil {
		return nil, err
	}

	action := &actions.DeleteAccount{
		UserID:    userID,
		AccountID: accountID,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, common.MapError(err, "failed to delete account")
	}

	return &DeleteAccountOutput{Status: http.StatusOK}, nil
}
