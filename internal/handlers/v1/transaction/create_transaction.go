package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/walletty/wallet-server/internal/dates"
	"github.com/walletty/wallet-server/internal/handlers/v1/common"
	"github.com/walletty/wallet-server/internal/operator"
	"github.com/walletty/wallet-server/internal/operator/actions"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	AccountID   string `json:"accountID" required:"true" doc:"Account UUID"`
	CategoryID  string `json:"categoryID" required:"true" doc:"Category UUID; its type decides the direction"`
	Amount      string `json:"amount" required:"true" doc:"Positive decimal amount, comma separator accepted"`
	Date        string `json:"date,omitempty" doc:"Transaction time, defaults to now"`
	Description string `json:"description,omitempty" doc:"Free-form description"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Acting user UUID"`
	Body   CreateTransactionBody
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int `json:"status" doc:"HTTP status"`
	Body   struct {
		ID string `json:"id" doc:"New transaction UUID"`
	}
}

// CreateTransactionHandler handles POST /v1/transactions.
type CreateTransactionHandler struct {
	Operator *operator.OperatorDelegator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(op *operator.OperatorDelegator) *CreateTransactionHandler {
	return &CreateTransactionHandler{Operator: op}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transaction",
		Method:      http.MethodPost,
		Path:        "/v1/transactions",
		Summary:     "Create transaction",
		Description: "Records one income or expense transaction.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseCreateTransactionInput parses and validates the API input.
func parseCreateTransactionInput(input *CreateTransactionInput) (accountID, categoryID uuid.UUID, amount decimal.Decimal, date time.Time, err error) {
	accountID, err = common.ParseID("accountID", input.Body.AccountID)
	if err != nil {
		return
	}
	categoryID, err = common.ParseID("categoryID", input.Body.CategoryID)
	if err != nil {
		return
	}
	amount, err = common.ParseDecimal("amount", input.Body.Amount)
	if err != nil {
		return
	}

	if input.Body.Date != "" {
		date, err = dates.ParseTimestamp(input.Body.Date)
		if err != nil {
			err = huma.NewError(http.StatusBadRequest, "invalid date", err)
			return
		}
	}
	return
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	userID, err := common.ParseUserID(input.UserID)
	if err != nil {
		return nil, err
	}

	accountID, categoryID, amount, date, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	action := &actions.CreateTransaction{
		UserID:      userID,
		AccountID:   accountID,
		CategoryID:  categoryID,
		Amount:      amount,
		Date:        date,
		Description: input.Body.Description,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, common.MapError(err, "failed to create transaction")
	}

	out := &CreateTransactionOutput{Status: http.StatusCreated}
	out.Body.ID = action.TransactionID.String()
	return out, nil
}
