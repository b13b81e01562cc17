package recipe

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fornada/fornada/internal/recipe"
)

type lineResponse struct {
	IngredientID   uuid.UUID       `json:"ingredient_id"`
	IngredientName string          `json:"ingredient_name"`
	Unit           string          `json:"unit"`
	Quantity       decimal.Decimal `json:"quantity"`
	Cost           decimal.Decimal `json:"cost"`
}

type recipeResponse struct {
	ID              uuid.UUID        `json:"id"`
	Name            string           `json:"name"`
	Description     string           `json:"description,omitempty"`
	YieldQuantity   decimal.Decimal  `json:"yield_quantity"`
	YieldUnit       string           `json:"yield_unit"`
	Ingredients     []lineResponse   `json:"ingredients"`
	Cost            decimal.Decimal  `json:"cost"`
	CostPerUnit     decimal.Decimal  `json:"cost_per_unit"`
	SalesLast30Days *decimal.Decimal `json:"sales_last_30_days,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

func toResponse(r *recipe.Recipe) recipeResponse {
	resp := recipeResponse{
		ID:            r.ID,
		Name:          r.Name,
		Description:   r.Description,
		YieldQuantity: r.YieldQuantity,
		YieldUnit:     r.YieldUnit,
		Ingredients:   make([]lineResponse, len(r.Ingredients)),
		Cost:          r.Cost(),
		CostPerUnit:   r.CostPerUnit(),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}

	for i, l := range r.Ingredients {
		resp.Ingredients[i] = lineResponse{
			IngredientID:   l.IngredientID,
			IngredientName: l.IngredientName,
			Unit:           l.Unit,
			Quantity:       l.Quantity,
			Cost:           l.Cost(),
		}
	}

	return resp
}

func toResponseList(recipes []*recipe.Recipe) []recipeResponse {
	resp := make([]recipeResponse, len(recipes))
	for i, r := range recipes {
		resp[i] = toResponse(r)
	}

	return resp
}
