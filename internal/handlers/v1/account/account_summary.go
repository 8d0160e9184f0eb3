package account

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/walletty/wallet-server/internal/handlers/v1/common"
	"github.com/walletty/wallet-server/internal/logging"
	"github.com/walletty/wallet-server/internal/service"
)

// SummaryTransaction is the API model for a recent transaction shown
// with the summary.
type SummaryTransaction struct {
	ID           string `json:"id" doc:"Transaction UUID"`
	Amount       string `json:"amount" doc:"Positive decimal amount"`
	Date         string `json:"date" doc:"RFC3339 transaction time"`
	Description  string `json:"description" doc:"Free-form description"`
	CategoryName string `json:"categoryName" doc:"Category name"`
	CategoryType string `json:"categoryType" doc:"income or expense"`
}

// AccountSummaryInput is the Huma input for an account summary.
type AccountSummaryInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Acting user UUID"`
	ID     string `path:"id" doc:"Account UUID"`
	Recent int    `query:"recent" minimum:"0" maximum:"50" doc:"Number of recent transactions to include, default 5"`
}

// AccountSummaryResponseBody is the response body for an account summary.
type AccountSummaryResponseBody struct {
	Account Account              `json:"account" doc:"The account"`
	Income  string               `json:"income" doc:"Sum of income transactions"`
	Expense string               `json:"expense" doc:"Sum of expense transactions"`
	Balance string               `json:"balance" doc:"Income minus expense"`
	Recent  []SummaryTransaction `json:"recent" doc:"Newest transactions"`
}

// AccountSummaryOutput is the Huma output for an account summary.
type AccountSummaryOutput struct {
	Body AccountSummaryResponseBody
}

// accountSummarizer is the interface for reading an account with its
// derived totals and recent transactions.
type accountSummarizer interface {
	GetAccount(ctx context.Context, id, userID uuid.UUID) (*service.Account, error)
	GetSummary(ctx context.Context, accountID, userID uuid.UUID) (*service.Summary, error)
	RecentTransactions(ctx context.Context, accountID, userID uuid.UUID, limit int) ([]service.Transaction, error)
}

// AccountSummaryHandler handles GET /v1/accounts/{id}/summary.
type AccountSummaryHandler struct {
	AccountService accountSummarizer
}

// NewAccountSummaryHandler creates a new AccountSummaryHandler.
func NewAccountSummaryHandler(svc accountSummarizer) *AccountSummaryHandler {
	return &AccountSummaryHandler{AccountService: svc}
}

// Register registers the account summary endpoint with the Huma API.
func (h *AccountSummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "account-summary",
		Method:      http.MethodGet,
		Path:        "/v1/accounts/{id}/summary",
		Summary:     "Account summary",
		Description: "Returns the account with derived totals and its newest transactions.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *AccountSummaryHandler) handle(ctx context.Context, input *AccountSummaryInput) (*AccountSummaryOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := common.ParseUserID(input.UserID)
	if err != nil {
		return nil, err
	}
	accountID, err := common.ParseID("id", input.ID)
	if err != nil {
		return nil, err
	}

	account, err := h.AccountService.GetAccount(ctx, accountID, userID)
	if err != nil {
		return nil, common.MapError(err, "failed to load account")
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("summaryMs")
	}
	summary, err := h.AccountService.GetSummary(ctx, accountID, userID)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, common.MapError(err, "failed to compute summary")
	}

	recent, err := h.AccountService.RecentTransactions(ctx, accountID, userID, input.Recent)
	if err != nil {
		return nil, common.MapError(err, "failed to load recent transactions")
	}

	resp := AccountSummaryResponseBody{
		Account: fromService(*account),
		Income:  summary.Income.String(),
		Expense: summary.Expense.String(),
		Balance: summary.Balance.String(),
		Recent:  make([]SummaryTransaction, len(recent)),
	}
	for i, tx := range recent {
		resp.Recent[i] = SummaryTransaction{
			ID:           tx.ID.String(),
			Amount:       tx.Amount.String(),
			Date:         tx.Date.Format(time.RFC3339),
			Description:  tx.Description,
			CategoryName: tx.CategoryName,
			CategoryType: tx.CategoryType,
		}
	}
	return &AccountSummaryOutput{Body: resp}, nil
}
