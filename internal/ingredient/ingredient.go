package ingredient

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound            = errors.New("ingredient not found")
	ErrNameRequired        = errors.New("ingredient name is required")
	ErrInvalidMovementType = errors.New("invalid movement type")
	ErrInvalidQuantity     = errors.New("quantity must be positive")
)

// MovementType classifies a change of stock.
type MovementType string

const (
	MovementIn         MovementType = "in"
	MovementOut        MovementType = "out"
	MovementAdjustment MovementType = "adjustment"
)

func (t MovementType) Valid() bool {
	switch t {
	case MovementIn, MovementOut, MovementAdjustment:
		return true
	}

	return false
}

type Ingredient struct {
	ID           uuid.UUID
	Name         string
	Unit         string
	CostPerUnit  decimal.Decimal
	CurrentStock decimal.Decimal
	MinStock     decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// LowStock reports whether the stock reached the configured minimum.
func (i *Ingredient) LowStock() bool {
	return i.CurrentStock.LessThanOrEqual(i.MinStock)
}

// StockMovement is an append-only record of a stock change. Quantity is
// always positive for in/out and signed for adjustments.
type StockMovement struct {
	ID           uuid.UUID
	IngredientID uuid.UUID
	Type         MovementType
	Quantity     decimal.Decimal
	Reason       string
	ProductionID *uuid.UUID
	PurchaseID   *uuid.UUID
	CreatedAt    time.Time
}

// Delta is the signed change the movement applies to the stock.
func (m *StockMovement) Delta() decimal.Decimal {
	if m.Type == MovementOut {
		return m.Quantity.Neg()
	}

	return m.Quantity
}
