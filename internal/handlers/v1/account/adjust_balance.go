package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/walletty/wallet-server/internal/handlers/v1/common"
	"github.com/walletty/wallet-server/internal/operator"
	"github.com/walletty/wallet-server/internal/operator/actions"
)

// AdjustBalanceBody is the request body for a balance adjustment.
type AdjustBalanceBody struct {
	Amount string `json:"amount" required:"true" doc:"Signed decimal; positive becomes income, negative expense"`
	Note   string `json:"note,omitempty" doc:"Optional note appended to the description"`
}

// AdjustBalanceInput is the Huma input for a balance adjustment.
type AdjustBalanceInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Acting user UUID"`
	ID     string `path:"id" doc:"Account UUID"`
	Body   AdjustBalanceBody
}

// AdjustBalanceOutput is the Huma output for a balance adjustment.
type AdjustBalanceOutput struct {
	Status int `json:"status" doc:"HTTP status"`
	Body   struct {
		TransactionID string `json:"transactionID" doc:"The recorded adjustment transaction"`
	}
}

// AdjustBalanceHandler handles POST /v1/accounts/{id}/adjust.
type AdjustBalanceHandler struct {
	Operator *operator.OperatorDelegator
}

// NewAdjustBalanceHandler creates a new AdjustBalanceHandler.
func NewAdjustBalanceHandler(op *operator.OperatorDelegator) *AdjustBalanceHandler {
	return &AdjustBalanceHandler{Operator: op}
}

// Register registers the adjust balance endpoint with the Huma API.
func (h *AdjustBalanceHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "adjust-balance",
		Method:      http.MethodPost,
		Path:        "/v1/accounts/{id}/adjust",
		Summary:     "Adjust balance",
		Description: "Records a correcting transaction against the account.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *AdjustBalanceHandler) handle(ctx context.Context, input *AdjustBalanceInput) (*AdjustBalanceOutput, error) {
	userID, err := common.ParseUserID(input.UserID)
	if err != nil {
		return nil, err
	}
	accountID, err := common.ParseID("id", input.ID)
	if err != nil {
		return nil, err
	}
	amount, err := common.ParseDecimal("amount", input.Body.Amount)
	if err != nil {
		return nil, err
	}

	action := &actions.AdjustBalance{
		UserID:    userID,
		AccountID: accountID,
		Amount:    amount,
		Note:      input.Body.Note,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, common.MapError(err, "failed to adjust balance")
	}

	out := &AdjustBalanceOutput{Status: http.StatusCreated}
	out.Body.TransactionID = action.TransactionID.String()
	return out, nil
}
