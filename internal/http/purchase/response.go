package purchase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fornada/fornada/internal/purchase"
)

type itemResponse struct {
	ID             uuid.UUID       `json:"id"`
	IngredientID   uuid.UUID       `json:"ingredient_id"`
	IngredientName string          `json:"ingredient_name,omitempty"`
	Quantity       decimal.Decimal `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	TotalPrice     decimal.Decimal `json:"total_price"`
}

type purchaseResponse struct {
	ID           uuid.UUID       `json:"id"`
	SupplierID   uuid.UUID       `json:"supplier_id"`
	SupplierName string          `json:"supplier_name,omitempty"`
	PurchaseDate time.Time       `json:"purchase_date"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Status       purchase.Status `json:"status"`
	NFeNumber    string          `json:"nfe_number,omitempty"`
	Notes        string          `json:"notes,omitempty"`
	Items        []itemResponse  `json:"items"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func toResponse(p *purchase.Purchase) purchaseResponse {
	resp := purchaseResponse{
		ID:           p.ID,
		SupplierID:   p.SupplierID,
		SupplierName: p.SupplierName,
		PurchaseDate: p.PurchaseDate,
		TotalAmount:  p.TotalAmount,
		Status:       p.Status,
		NFeNumber:    p.NFeNumber,
		Notes:        p.Notes,
		Items:        make([]itemResponse, len(p.Items)),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}

	for i, it := range p.Items {
		resp.Items[i] = itemResponse{
			ID:             it.ID,
			IngredientID:   it.IngredientID,
			IngredientName: it.IngredientName,
			Quantity:       it.Quantity,
			UnitPrice:      it.UnitPrice,
			TotalPrice:     it.TotalPrice,
		}
	}

	return resp
}

func toResponseList(purchases []*purchase.Purchase) []purchaseResponse {
	resp := make([]purchaseResponse, len(purchases))
	for i, p := range purchases {
		resp[i] = toResponse(p)
	}

	return resp
}
