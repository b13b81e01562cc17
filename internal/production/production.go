package production

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fornada/fornada/internal/ingredient"
	"github.com/fornada/fornada/internal/recipe"
)

var ErrInvalidQuantity = errors.New("quantity produced must be positive")

type Production struct {
	ID               uuid.UUID
	RecipeID         uuid.UUID
	RecipeName       string // Loaded via JOIN
	YieldUnit        string // Loaded via JOIN
	QuantityProduced decimal.Decimal
	ProductionDate   time.Time
	Notes            string
	CreatedAt        time.Time
	Consumed         []*ingredient.StockMovement
}

// Consumption returns the stock each recipe line uses to produce quantity.
// A recipe without yield is treated as yielding one unit per batch.
func Consumption(r *recipe.Recipe, quantity decimal.Decimal) []*ingredient.StockMovement {
	yield := r.YieldQuantity
	if !yield.IsPositive() {
		yield = decimal.NewFromInt(1)
	}

	movements := make([]*ingredient.StockMovement, 0, len(r.Ingredients))
	for _, l := range r.Ingredients {
		movements = append(movements, &ingredient.StockMovement{
			IngredientID: l.IngredientID,
			Type:         ingredient.MovementOut,
			Quantity:     l.Quantity.Mul(quantity).Div(yield).Round(3),
			Reason:       "production",
		})
	}

	return movements
}
