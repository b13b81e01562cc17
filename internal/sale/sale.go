package sale

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound      = errors.New("sale not found")
	ErrNoItems       = errors.New("sale has no items")
	ErrInvalidItem   = errors.New("item quantity must be positive and price not negative")
	ErrInvalidStatus = errors.New("sale is not completed")
)

type Status string

const (
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

type Sale struct {
	ID           uuid.UUID
	CustomerID   *uuid.UUID
	CustomerName string // Loaded via JOIN
	SaleDate     time.Time
	TotalAmount  decimal.Decimal
	Status       Status
	Notes        string
	Items        []*Item
	CreatedAt    time.Time
}

type Item struct {
	ID         uuid.UUID
	SaleID     uuid.UUID
	RecipeID   uuid.UUID
	RecipeName string // Loaded via JOIN
	Quantity   decimal.Decimal
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
}
