package importer

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fornada/fornada/internal/ingredient"
	"github.com/fornada/fornada/internal/invoice"
	"github.com/fornada/fornada/internal/matching"
	"github.com/fornada/fornada/internal/supplier"
)

// Draft is an invoice read from a file and matched against existing
// records. It lives only until the user confirms or discards it.
type Draft struct {
	Source        invoice.Kind
	SupplierName  string
	SupplierTaxID string
	Supplier      matching.Result[*supplier.Supplier]
	Number        string
	RawText       string
	Lines         []*DraftLine
}

type DraftLine struct {
	invoice.Line
	Ingredient matching.Result[*ingredient.Ingredient]
}

// IngredientID is set only when the line resolved to a single ingredient.
func (l *DraftLine) IngredientID() *uuid.UUID {
	ing, ok := l.Ingredient.Resolved()
	if !ok {
		return nil
	}

	return &ing.ID
}

// SupplierID is set only when the supplier resolved to a single record.
func (d *Draft) SupplierID() *uuid.UUID {
	s, ok := d.Supplier.Resolved()
	if !ok {
		return nil
	}

	return &s.ID
}

// Total sums every line, mapped or not.
func (d *Draft) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range d.Lines {
		total = total.Add(l.TotalPrice)
	}

	return total
}

// ConfirmParams builds the confirmation request the draft would produce
// without further edits.
func (d *Draft) ConfirmParams() ConfirmParams {
	params := ConfirmParams{
		SupplierID:    d.SupplierID(),
		SupplierName:  d.SupplierName,
		SupplierTaxID: d.SupplierTaxID,
		NFeNumber:     d.Number,
	}

	for _, l := range d.Lines {
		params.Lines = append(params.Lines, ConfirmLine{
			Description:  l.Description,
			IngredientID: l.IngredientID(),
			Quantity:     l.Quantity,
			UnitPrice:    l.UnitPrice,
			TotalPrice:   new(l.TotalPrice),
		})
	}

	return params
}

func blankLine() *DraftLine {
	return &DraftLine{
		Line:       invoice.NewLine("", decimal.Zero, decimal.Zero),
		Ingredient: matching.Unresolved[*ingredient.Ingredient](),
	}
}
