package view

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

const dbTimeout = 5 * time.Second

// FormatMoney formats an amount in reais with two decimal places.
func FormatMoney(d decimal.Decimal) string {
	return "R$ " + d.StringFixed(2)
}

// FormatQuantity trims trailing zeros, so 2.500 renders as 2.5.
func FormatQuantity(d decimal.Decimal) string {
	return d.String()
}

// FormatDate formats a time.Time into DD/MM/YYYY.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// DbCtx returns a context with a standard timeout for database operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}
