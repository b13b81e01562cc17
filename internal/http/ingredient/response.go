package ingredient

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fornada/fornada/internal/ingredient"
)

type ingredientResponse struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Unit         string          `json:"unit"`
	CostPerUnit  decimal.Decimal `json:"cost_per_unit"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	MinStock     decimal.Decimal `json:"min_stock"`
	LowStock     bool            `json:"low_stock"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type movementResponse struct {
	ID           uuid.UUID               `json:"id"`
	IngredientID uuid.UUID               `json:"ingredient_id"`
	Type         ingredient.MovementType `json:"movement_type"`
	Quantity     decimal.Decimal         `json:"quantity"`
	Reason       string                  `json:"reason,omitempty"`
	ProductionID *uuid.UUID              `json:"production_id,omitempty"`
	PurchaseID   *uuid.UUID              `json:"purchase_id,omitempty"`
	CreatedAt    time.Time               `json:"created_at"`
}

func toResponse(i *ingredient.Ingredient) ingredientResponse {
	return ingredientResponse{
		ID:           i.ID,
		Name:         i.Name,
		Unit:         i.Unit,
		CostPerUnit:  i.CostPerUnit,
		CurrentStock: i.CurrentStock,
		MinStock:     i.MinStock,
		LowStock:     i.LowStock(),
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}

func toResponseList(ingredients []*ingredient.Ingredient) []ingredientResponse {
	resp := make([]ingredientResponse, len(ingredients))
	for i, ing := range ingredients {
		resp[i] = toResponse(ing)
	}

	return resp
}

func toMovementResponse(m *ingredient.StockMovement) movementResponse {
	return movementResponse{
		ID:           m.ID,
		IngredientID: m.IngredientID,
		Type:         m.Type,
		Quantity:     m.Quantity,
		Reason:       m.Reason,
		ProductionID: m.ProductionID,
		PurchaseID:   m.PurchaseID,
		CreatedAt:    m.CreatedAt,
	}
}
