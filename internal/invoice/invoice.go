// Package invoice reads purchase invoices (NF-e XML, PDF, scanned images)
// into a supplier, a document number and line items.
package invoice

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidXML      = errors.New("invalid XML")
	ErrUnsupportedFile = errors.New("unsupported file type")
)

// Document is what could be read from an invoice. Every field is optional.
type Document struct {
	SupplierName  string
	SupplierTaxID string
	Number        string
	Lines         []Line
}

type Line struct {
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
}

// NewLine builds a line whose total is quantity times unit price.
func NewLine(description string, quantity, unitPrice decimal.Decimal) Line {
	return Line{
		Description: description,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		TotalPrice:  quantity.Mul(unitPrice),
	}
}
