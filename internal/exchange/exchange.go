package exchange

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound      = errors.New("exchange not found")
	ErrInvalidStatus = errors.New("exchange is not pending")
	ErrInvalidRefund = errors.New("refund must not be negative")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusProcessed Status = "processed"
)

// Exchange is a return of products by a customer, optionally tied to the
// sale they came from.
type Exchange struct {
	ID             uuid.UUID
	CustomerID     *uuid.UUID
	CustomerName   string // Loaded via JOIN
	OriginalSaleID *uuid.UUID
	ExchangeDate   time.Time
	Reason         string
	Notes          string
	Status         Status
	TotalRefund    decimal.Decimal
	Items          []*Item
	CreatedAt      time.Time
}

type Item struct {
	ID         uuid.UUID
	ExchangeID uuid.UUID
	RecipeID   uuid.UUID
	RecipeName string // Loaded via JOIN
	Quantity   decimal.Decimal
	Reason     string
}
