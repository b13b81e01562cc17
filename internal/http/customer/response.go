package customer

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fornada/fornada/internal/customer"
	"github.com/fornada/fornada/internal/finance"
	"github.com/fornada/fornada/internal/sale"
)

type customerResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type saleItemResponse struct {
	RecipeID   uuid.UUID       `json:"recipe_id"`
	RecipeName string          `json:"recipe_name"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

type saleResponse struct {
	ID          uuid.UUID          `json:"id"`
	SaleDate    time.Time          `json:"sale_date"`
	TotalAmount decimal.Decimal    `json:"total_amount"`
	Status      sale.Status        `json:"status"`
	Items       []saleItemResponse `json:"items"`
}

type receivableResponse struct {
	ID            uuid.UUID                `json:"id"`
	Description   string                   `json:"description"`
	Amount        decimal.Decimal          `json:"amount"`
	DueDate       time.Time                `json:"due_date"`
	ReceivedDate  *time.Time               `json:"received_date,omitempty"`
	PaymentMethod finance.PaymentMethod    `json:"payment_method,omitempty"`
	Status        finance.ReceivableStatus `json:"status"`
	Overdue       bool                     `json:"overdue"`
}

type detailsResponse struct {
	customerResponse
	Sales       []saleResponse       `json:"sales"`
	Receivables []receivableResponse `json:"receivables"`
}

func toResponse(c *customer.Customer) customerResponse {
	return customerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toDetailsResponse(d *customer.Details, now time.Time) detailsResponse {
	resp := detailsResponse{
		customerResponse: toResponse(d.Customer),
		Sales:            make([]saleResponse, len(d.Sales)),
		Receivables:      make([]receivableResponse, len(d.Receivables)),
	}

	for i, s := range d.Sales {
		sr := saleResponse{
			ID:          s.ID,
			SaleDate:    s.SaleDate,
			TotalAmount: s.TotalAmount,
			Status:      s.Status,
			Items:       make([]saleItemResponse, len(s.Items)),
		}

		for j, it := range s.Items {
			sr.Items[j] = saleItemResponse{
				RecipeID:   it.RecipeID,
				RecipeName: it.RecipeName,
				Quantity:   it.Quantity,
				UnitPrice:  it.UnitPrice,
				TotalPrice: it.TotalPrice,
			}
		}

		resp.Sales[i] = sr
	}

	for i, r := range d.Receivables {
		resp.Receivables[i] = receivableResponse{
			ID:            r.ID,
			Description:   r.Description,
			Amount:        r.Amount,
			DueDate:       r.DueDate,
			ReceivedDate:  r.ReceivedDate,
			PaymentMethod: r.PaymentMethod,
			Status:        r.Status,
			Overdue:       r.Overdue(now),
		}
	}

	return resp
}
