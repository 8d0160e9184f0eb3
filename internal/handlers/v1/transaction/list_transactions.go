package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/walletty/wallet-server/internal/dates"
	"github.com/walletty/wallet-server/internal/handlers/v1/common"
	"github.com/walletty/wallet-server/internal/logging"
	"github.com/walletty/wallet-server/internal/service"
)

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	UserID     string `header:"X-User-ID" required:"true" doc:"Acting user UUID"`
	AccountID  string `query:"accountID" required:"true" doc:"Account UUID"`
	CategoryID string `query:"categoryID" doc:"Optional category filter"`
	StartDate  string `query:"startDate" doc:"Inclusive lower calendar-date bound (2006-01-02)"`
	EndDate    string `query:"endDate" doc:"Inclusive upper calendar-date bound (2006-01-02)"`
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction `json:"transactions" doc:"Transactions, newest first"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context, accountID, userID uuid.UUID, filter *service.TransactionFilter) ([]service.Transaction, error)
}

// ListTransactionsHandler handles GET /v1/transactions.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transactions",
		Summary:     "List transactions",
		Description: "Returns an account's transactions, optionally filtered by category and date range.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseListTransactionsInput parses the optional filter parameters.
func parseListTransactionsInput(input *ListTransactionsInput) (*service.TransactionFilter, error) {
	if input.CategoryID == "" && input.StartDate == "" && input.EndDate == "" {
		return nil, nil
	}

	filter := &service.TransactionFilter{}
	if input.CategoryID != "" {
		categoryID, err := common.ParseID("categoryID", input.CategoryID)
		if err != nil {
			return nil, err
		}
		filter.CategoryID = &categoryID
	}
	if input.StartDate != "" {
		start, err := dates.ParseDay(input.StartDate)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid startDate", err)
		}
		filter.StartDate = &start
	}
	if input.EndDate != "" {
		end, err := dates.ParseDay(input.EndDate)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid endDate", err)
		}
		filter.EndDate = &end
	}
	return filter, nil
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := common.ParseUserID(input.UserID)
	if err != nil {
		return nil, err
	}
	accountID, err := common.ParseID("accountID", input.AccountID)
	if err != nil {
		return nil, err
	}
	filter, err := parseListTransactionsInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	transactions, err := h.TransactionService.ListTransactions(ctx, accountID, userID, filter)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, common.MapError(err, "failed to list transactions")
	}

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	resp := ListTransactionsResponseBody{Transactions: make([]Transaction, len(transactions))}
	for i, tx := range transactions {
		resp.Transactions[i] = fromService(tx)
	}
	return &ListTransactionsOutput{Body: resp}, nil
}
