package recipe

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound       = errors.New("recipe not found")
	ErrNameRequired   = errors.New("recipe name is required")
	ErrInvalidYield   = errors.New("yield quantity must not be negative")
	ErrInvalidLine    = errors.New("ingredient quantity must be positive")
	ErrDuplicateLines = errors.New("ingredient listed more than once")
)

type Recipe struct {
	ID            uuid.UUID
	Name          string
	Description   string
	YieldQuantity decimal.Decimal
	YieldUnit     string
	Ingredients   []*Line
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Line is one ingredient of a recipe. Name, unit and cost are loaded from
// the ingredient.
type Line struct {
	ID             uuid.UUID
	RecipeID       uuid.UUID
	IngredientID   uuid.UUID
	IngredientName string
	Unit           string
	CostPerUnit    decimal.Decimal
	Quantity       decimal.Decimal
}

func (l *Line) Cost() decimal.Decimal {
	return l.Quantity.Mul(l.CostPerUnit)
}

// Cost of one batch at current ingredient prices.
func (r *Recipe) Cost() decimal.Decimal {
	total := decimal.Zero
	for _, l := range r.Ingredients {
		total = total.Add(l.Cost())
	}

	return total
}

// CostPerUnit is the batch cost divided by the yield, or zero when the
// recipe has no yield.
func (r *Recipe) CostPerUnit() decimal.Decimal {
	if !r.YieldQuantity.IsPositive() {
		return decimal.Zero
	}

	return r.Cost().Div(r.YieldQuantity).Round(4)
}
