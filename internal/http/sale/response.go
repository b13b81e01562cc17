package sale

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fornada/fornada/internal/sale"
)

type itemResponse struct {
	ID         uuid.UUID       `json:"id"`
	RecipeID   uuid.UUID       `json:"recipe_id"`
	RecipeName string          `json:"recipe_name,omitempty"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

type saleResponse struct {
	ID           uuid.UUID       `json:"id"`
	CustomerID   *uuid.UUID      `json:"customer_id,omitempty"`
	CustomerName string          `json:"customer_name,omitempty"`
	SaleDate     time.Time       `json:"sale_date"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Status       sale.Status     `json:"status"`
	Notes        string          `json:"notes,omitempty"`
	Items        []itemResponse  `json:"items,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

func toResponse(s *sale.Sale) saleResponse {
	resp := saleResponse{
		ID:           s.ID,
		CustomerID:   s.CustomerID,
		CustomerName: s.CustomerName,
		SaleDate:     s.SaleDate,
		TotalAmount:  s.TotalAmount,
		Status:       s.Status,
		Notes:        s.Notes,
		CreatedAt:    s.CreatedAt,
	}

	for _, it := range s.Items {
		resp.Items = append(resp.Items, itemResponse{
			ID:         it.ID,
			RecipeID:   it.RecipeID,
			RecipeName: it.RecipeName,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			TotalPrice: it.TotalPrice,
		})
	}

	return resp
}

func toResponseList(sales []*sale.Sale) []saleResponse {
	resp := make([]saleResponse, len(sales))
	for i, s := range sales {
		resp[i] = toResponse(s)
	}

	return resp
}
