package purchase

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound      = errors.New("purchase not found")
	ErrInvalidStatus = errors.New("purchase is not pending")
	ErrNoItems       = errors.New("purchase has no items")
)

// Status is the lifecycle state of a purchase. Only pending purchases can
// be confirmed or cancelled.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

type Purchase struct {
	ID           uuid.UUID
	SupplierID   uuid.UUID
	SupplierName string // Loaded via JOIN
	PurchaseDate time.Time
	TotalAmount  decimal.Decimal
	Status       Status
	NFeNumber    string
	Notes        string
	Items        []*Item
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Item struct {
	ID             uuid.UUID
	PurchaseID     uuid.UUID
	IngredientID   uuid.UUID
	IngredientName string // Loaded via JOIN
	Quantity       decimal.Decimal
	UnitPrice      decimal.Decimal
	TotalPrice     decimal.Decimal
}

// AverageCost blends the current unit cost with a received batch, weighting
// by quantity. Negative stock counts as zero.
func AverageCost(stock, cost, quantity, unitPrice decimal.Decimal) decimal.Decimal {
	if stock.IsNegative() {
		stock = decimal.Zero
	}

	total := stock.Add(quantity)
	if !total.IsPositive() {
		return cost
	}

	return stock.Mul(cost).Add(quantity.Mul(unitPrice)).Div(total).Round(4)
}
