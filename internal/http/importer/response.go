package importer

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fornada/fornada/internal/importer"
	"github.com/fornada/fornada/internal/ingredient"
	"github.com/fornada/fornada/internal/invoice"
	"github.com/fornada/fornada/internal/matching"
	"github.com/fornada/fornada/internal/purchase"
	"github.com/fornada/fornada/internal/supplier"
)

type entityRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type matchResponse struct {
	Status     matching.Kind `json:"status"`
	Score      float64       `json:"score,omitempty"`
	Match      *entityRef    `json:"match,omitempty"`
	Candidates []entityRef   `json:"candidates,omitempty"`
}

type lineResponse struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	Ingredient  matchResponse   `json:"ingredient"`
}

type draftResponse struct {
	Source        invoice.Kind    `json:"source"`
	SupplierName  string          `json:"supplier_name,omitempty"`
	SupplierTaxID string          `json:"supplier_tax_id,omitempty"`
	Supplier      matchResponse   `json:"supplier"`
	NFeNumber     string          `json:"nfe_number,omitempty"`
	RawText       string          `json:"raw_text,omitempty"`
	Lines         []lineResponse  `json:"lines"`
	Total         decimal.Decimal `json:"total"`
}

func toMatchResponse[T any](r matching.Result[T], ref func(T) entityRef) matchResponse {
	resp := matchResponse{Status: r.Kind(), Score: r.Score()}

	if item, ok := r.Resolved(); ok {
		resp.Match = new(ref(item))
	}

	for _, c := range r.Candidates() {
		resp.Candidates = append(resp.Candidates, ref(c))
	}

	return resp
}

func supplierRef(s *supplier.Supplier) entityRef {
	return entityRef{ID: s.ID, Name: s.Name}
}

func ingredientRef(i *ingredient.Ingredient) entityRef {
	return entityRef{ID: i.ID, Name: i.Name}
}

func toDraftResponse(d *importer.Draft) draftResponse {
	resp := draftResponse{
		Source:        d.Source,
		SupplierName:  d.SupplierName,
		SupplierTaxID: d.SupplierTaxID,
		Supplier:      toMatchResponse(d.Supplier, supplierRef),
		NFeNumber:     d.Number,
		RawText:       d.RawText,
		Lines:         make([]lineResponse, 0, len(d.Lines)),
		Total:         d.Total(),
	}

	for _, l := range d.Lines {
		resp.Lines = append(resp.Lines, lineResponse{
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			TotalPrice:  l.TotalPrice,
			Ingredient:  toMatchResponse(l.Ingredient, ingredientRef),
		})
	}

	return resp
}

type purchaseItemResponse struct {
	ID           uuid.UUID       `json:"id"`
	IngredientID uuid.UUID       `json:"ingredient_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	TotalPrice   decimal.Decimal `json:"total_price"`
}

type purchaseResponse struct {
	ID           uuid.UUID              `json:"id"`
	SupplierID   uuid.UUID              `json:"supplier_id"`
	PurchaseDate time.Time              `json:"purchase_date"`
	TotalAmount  decimal.Decimal        `json:"total_amount"`
	Status       purchase.Status        `json:"status"`
	NFeNumber    string                 `json:"nfe_number,omitempty"`
	Notes        string                 `json:"notes,omitempty"`
	Items        []purchaseItemResponse `json:"items"`
}

type confirmResponse struct {
	Purchase        purchaseResponse `json:"purchase"`
	CreatedSupplier *entityRef       `json:"created_supplier,omitempty"`
	Skipped         int              `json:"skipped"`
}

func toConfirmResponse(res *importer.ConfirmResult) confirmResponse {
	p := res.Purchase

	resp := confirmResponse{
		Purchase: purchaseResponse{
			ID:           p.ID,
			SupplierID:   p.SupplierID,
			PurchaseDate: p.PurchaseDate,
			TotalAmount:  p.TotalAmount,
			Status:       p.Status,
			NFeNumber:    p.NFeNumber,
			Notes:        p.Notes,
			Items:        make([]purchaseItemResponse, 0, len(p.Items)),
		},
		Skipped: res.Skipped,
	}

	for _, it := range p.Items {
		resp.Purchase.Items = append(resp.Purchase.Items, purchaseItemResponse{
			ID:           it.ID,
			IngredientID: it.IngredientID,
			Quantity:     it.Quantity,
			UnitPrice:    it.UnitPrice,
			TotalPrice:   it.TotalPrice,
		})
	}

	if res.CreatedSupplier != nil {
		resp.CreatedSupplier = new(supplierRef(res.CreatedSupplier))
	}

	return resp
}
