package dashboard

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidPeriod = errors.New("invalid period")

type Stats struct {
	SalesLast30Days    decimal.Decimal
	PendingReceivables decimal.Decimal
	PendingPayables    decimal.Decimal
	LowStockCount      int
}

type Period string

const (
	Period7Days     Period = "7d"
	Period30Days    Period = "30d"
	PeriodThisMonth Period = "this_month"
)

// Window returns the first and last day covered by the period, relative to now.
func (p Period) Window(now time.Time) (time.Time, time.Time, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch p {
	case Period7Days:
		return today.AddDate(0, 0, -6), today, nil
	case Period30Days:
		return today.AddDate(0, 0, -29), today, nil
	case PeriodThisMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), today, nil
	default:
		return time.Time{}, time.Time{}, ErrInvalidPeriod
	}
}

type DailySales struct {
	Day   time.Time
	Total decimal.Decimal
}

type ProductRank struct {
	RecipeID uuid.UUID
	Name     string
	Quantity decimal.Decimal
	Revenue  decimal.Decimal
}

type CustomerRank struct {
	CustomerID uuid.UUID
	Name       string
	SaleCount  int
	Total      decimal.Decimal
}
