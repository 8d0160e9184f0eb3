package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/walletty/wallet-server/internal/handlers/v1/common"
	"github.com/walletty/wallet-server/internal/operator"
	"github.com/walletty/wallet-server/internal/operator/actions"
)

// TransferBody is the request body for a transfer.
type TransferBody struct {
	FromAccountID string `json:"fromAccountID" required:"true" doc:"Source account UUID"`
	ToAccountID   string `json:"toAccountID" required:"true" doc:"Destination account UUID"`
	Amount        string `json:"amount" required:"true" doc:"Positive decimal amount, debited from the source"`
	ExchangeRate  string `json:"exchangeRate,omitempty" doc:"Required when the account currencies differ; ignored otherwise"`
	Note          string `json:"note,omitempty" doc:"Optional note recorded on both sides"`
}

// TransferInput is the Huma input for a transfer.
type TransferInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Acting user UUID"`
	Body   TransferBody
}

// TransferOutput is the Huma output for a transfer.
type TransferOutput struct {
	Status int `json:"status" doc:"HTTP status"`
	Body   struct {
		DebitID  string `json:"debitID" doc:"Expense transaction on the source account"`
		CreditID string `json:"creditID" doc:"Income transaction on the destination account"`
	}
}

// TransferHandler handles POST /v1/transfers.
type TransferHandler struct {
	Operator *operator.OperatorDelegator
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(op *operator.OperatorDelegator) *TransferHandler {
	return &TransferHandler{Operator: op}
}

// Register registers the transfer endpoint with the Huma API.
func (h *TransferHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transfer",
		Method:      http.MethodPost,
		Path:        "/v1/transfers",
		Summary:     "Transfer funds",
		Description: "Moves funds between two accounts as a single atomic unit.",
		Tags:        []string{"Transfers"},
	}, h.handle)
}

func (h *TransferHandler) handle(ctx context.Context, input *TransferInput) (*TransferOutput, error) {
	userID, err := common.ParseUserID(input.UserID)
	if err != nil {
		return nil, err
	}
	fromAccountID, err := common.ParseID("fromAccountID", input.Body.FromAccountID)
	if err != nil {
		return nil, err
	}
	toAccountID, err := common.ParseID("toAccountID", input.Body.ToAccountID)
	if err != nil {
		return nil, err
	}
	amount, err := common.ParseDecimal("amount", input.Body.Amount)
	if err != nil {
		return nil, err
	}

	var exchangeRate *decimal.Decimal
	if input.Body.ExchangeRate != "" {
		rate, err := common.ParseDecimal("exchangeRate", input.Body.ExchangeRate)
		if err != nil {
			return nil, err
		}
		exchangeRate = &rate
	}

	action := &actions.Transfer{
		UserID:        userID,
		FromAccountID: fromAccountID,
		ToAccountID:   toAccountID,
		Amount:        amount,
		ExchangeRate:  exchangeRate,
		Note:          input.Body.Note,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, common.MapError(err, "failed to transfer")
	}

	out := &TransferOutput{Status: http.StatusCreated}
	out.Body.DebitID = action.DebitID.String()
	out.Body.CreditID = action.CreditID.String()
	return out, nil
}
