package service

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyBucket is the combined income and expense totals of one
// calendar day within the requested range.
type DailyBucket struct {
	Day     time.Time
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// CategoryBucket is the total recorded against one category within the
// requested range.
type CategoryBucket struct {
	Name  string
	Total decimal.Decimal
}

// Statistics aggregates an account's transactions over a date range.
// Daily buckets are ordered by day ascending; category buckets by
// total descending, name ascending on ties. Days and categories with
// no transactions are absent.
type Statistics struct {
	Income            decimal.Decimal
	Expense           decimal.Decimal
	Balance           decimal.Decimal
	Daily             []DailyBucket
	IncomeCategories  []CategoryBucket
	ExpenseCategories []CategoryBucket
}
