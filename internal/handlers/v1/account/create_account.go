package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/walletty/wallet-server/internal/handlers/v1/common"
	"github.com/walletty/wallet-server/internal/operator"
	"github.com/walletty/wallet-server/internal/operator/actions"
)

// CreateAccountBody is the request body for creating an account.
type CreateAccountBody struct {
	Name           string `json:"name" required:"true" doc:"Account name"`
	Currency       string `json:"currency" required:"true" doc:"ISO-4217 currency code from the allow-list"`
	InitialBalance string `json:"initialBalance,omitempty" doc:"Optional opening balance, recorded as an income transaction"`
}

// CreateAccountInput is the Huma input for creating an account.
type CreateAccountInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Acting user UUID"`
	Body   CreateAccountBody
}

// CreateAccountOutput is the Huma output for creating an account.
type CreateAccountOutput struct {
	Status int `json:"status" doc:"HTTP status"`
	Body   struct {
		ID string `json:"id" doc:"New account UUID"`
	}
}

// CreateAccountHandler handles POST /v1/accounts.
type CreateAccountHandler struct {
	Operator *operator.OperatorDelegator
}

// NewCreateAccountHandler creates a new CreateAccountHandler.
func NewCreateAccountHandler(op *operator.OperatorDelegator) *CreateAccountHandler {
	return &CreateAccountHandler{Operator: op}
}

// Register registers the create account endpoint with the Huma API.
func (h *CreateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-account",
		Method:      http.MethodPost,
		Path:        "/v1/accounts",
		Summary:     "Create account",
		Description: "Creates an account, optionally recording an opening balance.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *CreateAccountHandler) handle(ctx context.Context, input *CreateAccountInput) (*CreateAccountOutput, error) {
	userID, err := common.ParseUserID(input.UserID)
	if err != nil {
		return nil, err
	}

	initialBalance := decimal.Zero
	if input.Body.InitialBalance != "" {
		initialBalance, err = common.ParseDecimal("initialBalance", input.Body.InitialBalance)
		if err != nil {
			return nil, err
		}
	}

	action := &actions.CreateAccount{
		UserID:         userID,
		Name:           input.Body.Name,
		Currency:       input.Body.Currency,
		InitialBalance: initialBalance,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, common.MapError(err, "failed to create account")
	}

	out := &CreateAccountOutput{Status: http.StatusCreated}
	out.Body.ID = action.AccountID.String()
	return out, nil
}
