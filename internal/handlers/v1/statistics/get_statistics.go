package statistics

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/walletty/wallet-server/internal/dates"
	"github.com/walletty/wallet-server/internal/handlers/v1/common"
	"github.com/walletty/wallet-server/internal/logging"
	"github.com/walletty/wallet-server/internal/service"
)

// DailyBucket is the API model for one day's totals.
type DailyBucket struct {
	Date    string `json:"date" doc:"Calendar day (2006-01-02)"`
	Income  string `json:"income" doc:"Income total for the day"`
	Expense string `json:"expense" doc:"Expense total for the day"`
}

// CategoryBucket is the API model for one category's total.
type CategoryBucket struct {
	Name  string `json:"name" doc:"Category name"`
	Total string `json:"total" doc:"Total for the range"`
}

// GetStatisticsInput is the Huma input for statistics.
type GetStatisticsInput struct {
	UserID    string `header:"X-User-ID" required:"true" doc:"Acting user UUID"`
	AccountID string `query:"accountID" required:"true" doc:"Account UUID"`
	StartDate string `query:"startDate" doc:"Inclusive range start (2006-01-02), defaults to the first of the current month"`
	EndDate   string `query:"endDate" doc:"Inclusive range end (2006-01-02), defaults to the last day of the current month"`
}

// GetStatisticsResponseBody is the response body for statistics.
type GetStatisticsResponseBody struct {
	StartDate         string           `json:"startDate" doc:"Effective range start"`
	EndDate           string           `json:"endDate" doc:"Effective range end"`
	Income            string           `json:"income" doc:"Income total"`
	Expense           string           `json:"expense" doc:"Expense total"`
	Balance           string           `json:"balance" doc:"Income minus expense"`
	Daily             []DailyBucket    `json:"daily" doc:"Per-day totals, ascending by date; days without activity are absent"`
	IncomeCategories  []CategoryBucket `json:"incomeCategories" doc:"Income by category, descending by total"`
	ExpenseCategories []CategoryBucket `json:"expenseCategories" doc:"Expense by category, descending by total"`
}

// GetStatisticsOutput is the Huma output for statistics.
type GetStatisticsOutput struct {
	Body GetStatisticsResponseBody
}

// statisticsGetter is the interface for computing statistics.
type statisticsGetter interface {
	GetStatistics(ctx context.Context, accountID, userID uuid.UUID, start, end time.Time) (*service.Statistics, error)
}

// Handler handles GET /v1/statistics.
type Handler struct {
	StatisticsService statisticsGetter
}

// NewHandler creates a new statistics Handler.
func NewHandler(svc statisticsGetter) *Handler {
	return &Handler{StatisticsService: svc}
}

// Register registers the statistics endpoint with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-statistics",
		Method:      http.MethodGet,
		Path:        "/v1/statistics",
		Summary:     "Account statistics",
		Description: "Aggregates an account's transactions over a date range, defaulting to the current month.",
		Tags:        []string{"Statistics"},
	}, h.handle)
}

// parseRange resolves the requested date range, falling back to the
// current calendar month.
func parseRange(startDate, endDate string) (start, end time.Time, err error) {
	now := time.Now().UTC()
	start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, -1)

	if startDate != "" {
		start, err = dates.ParseDay(startDate)
		if err != nil {
			return start, end, huma.NewError(http.StatusBadRequest, "invalid startDate", err)
		}
	}
	if endDate != "" {
		end, err = dates.ParseDay(endDate)
		if err != nil {
			return start, end, huma.NewError(http.StatusBadRequest, "invalid endDate", err)
		}
	}
	if start.After(end) {
		return start, end, huma.NewError(http.StatusBadRequest, "startDate must not be after endDate")
	}
	return start, end, nil
}

func (h *Handler) handle(ctx context.Context, input *GetStatisticsInput) (*GetStatisticsOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := common.ParseUserID(input.UserID)
	if err != nil {
		return nil, err
	}
	accountID, err := common.ParseID("accountID", input.AccountID)
	if err != nil {
		return nil, err
	}
	start, end, err := parseRange(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("statisticsMs")
	}
	stats, err := h.StatisticsService.GetStatistics(ctx, accountID, userID, start, end)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, common.MapError(err, "failed to compute statistics")
	}

	resp := GetStatisticsResponseBody{
		StartDate:         dates.Day(start),
		EndDate:           dates.Day(end),
		Income:            stats.Income.String(),
		Expense:           stats.Expense.String(),
		Balance:           stats.Balance.String(),
		Daily:             make([]DailyBucket, len(stats.Daily)),
		IncomeCategories:  make([]CategoryBucket, len(stats.IncomeCategories)),
		ExpenseCategories: make([]CategoryBucket, len(stats.ExpenseCategories)),
	}
	for i, bucket := range stats.Daily {
		resp.Daily[i] = DailyBucket{
			Date:    dates.Day(bucket.Day),
			Income:  bucket.Income.String(),
			Expense: bucket.Expense.String(),
		}
	}
	for i, bucket := range stats.IncomeCategories {
		resp.IncomeCategories[i] = CategoryBucket{Name: bucket.Name, Total: bucket.Total.String()}
	}
	for i, bucket := range stats.ExpenseCategories {
		resp.ExpenseCategories[i] = CategoryBucket{Name: bucket.Name, Total: bucket.Total.String()}
	}
	return &GetStatisticsOutput{Body: resp}, nil
}
