package service

import (
	"context"
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/walletty/wallet-server/internal/dates"
	"github.com/walletty/wallet-server/internal/storage/account"
	"github.com/walletty/wallet-server/internal/storage/category"
	"github.com/walletty/wallet-server/internal/storage/transaction"
)

type statisticsReader interface {
	StatisticsRows(ctx context.Context, accountID, userID uuid.UUID, start, end time.Time) ([]*transaction.StatRow, error)
}

type statisticsAccountReader interface {
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*account.Account, error)
}

// StatisticsService aggregates transactions into period statistics.
type StatisticsService struct {
	transactions statisticsReader
	accounts     statisticsAccountReader
}

// NewStatisticsService creates a new StatisticsService.
func NewStatisticsService(transactions statisticsReader, accounts statisticsAccountReader) *StatisticsService {
	return &StatisticsService{transactions: transactions, accounts: accounts}
}

// GetStatistics builds the statistics of one of the user's accounts
// over an inclusive calendar date range. Aggregation happens in one
// pass over the raw rows so totals, daily buckets, and category
// buckets always agree with each other.
func (s *StatisticsService) GetStatistics(ctx context.Context, accountID, userID uuid.UUID, start, end time.Time) (*Statistics, error) {
	if start.After(end) {
		return nil, NewValidationError("start_date", "must not be after end_date")
	}

	row, err := s.accounts.FindByIDAndUser(ctx, accountID, userID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}

	rows, err := s.transactions.StatisticsRows(ctx, accountID, userID, start, end)
	if err != nil {
		return nil, err
	}

	stats := &Statistics{
		Income:  decimal.Zero,
		Expense: decimal.Zero,
		Balance: decimal.Zero,
	}

	daily := make(map[string]*DailyBucket)
	incomeByCategory := make(map[string]decimal.Decimal)
	expenseByCategory := make(map[string]decimal.Decimal)

	for _, r := range rows {
		key := dates.Day(r.Day)
		bucket, ok := daily[key]
		if !ok {
			bucket = &DailyBucket{
				Day:     r.Day,
				Income:  decimal.Zero,
				Expense: decimal.Zero,
			}
			daily[key] = bucket
		}

		switch r.CategoryType {
		case category.TypeIncome:
			stats.Income = stats.Income.Add(r.Amount)
			bucket.Income = bucket.Income.Add(r.Amount)
			incomeByCategory[r.CategoryName] = incomeByCategory[r.CategoryName].Add(r.Amount)
		case category.TypeExpense:
			stats.Expense = stats.Expense.Add(r.Amount)
			bucket.Expense = bucket.Expense.Add(r.Amount)
			expenseByCategory[r.CategoryName] = expenseByCategory[r.CategoryName].Add(r.Amount)
		}
	}

	stats.Balance = stats.Income.Sub(stats.Expense)
	stats.Daily = sortedDaily(daily)
	stats.IncomeCategories = sortedCategories(incomeByCategory)
	stats.ExpenseCategories = sortedCategories(expenseByCategory)

	return stats, nil
}

func sortedDaily(daily map[string]*DailyBucket) []DailyBucket {
	buckets := make([]DailyBucket, 0, len(daily))
	for _, bucket := range daily {
		buckets = append(buckets, *bucket)
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Day.Before(buckets[j].Day)
	})
	return buckets
}

func sortedCategories(totals map[string]decimal.Decimal) []CategoryBucket {
	buckets := make([]CategoryBucket, 0, len(totals))
	for name, total := range totals {
		buckets = append(buckets, CategoryBucket{Name: name, Total: total})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if !buckets[i].Total.Equal(buckets[j].Total) {
			return buckets[i].Total.GreaterThan(buckets[j].Total)
		}
		return buckets[i].Name < buckets[j].Name
	})
	return buckets
}
