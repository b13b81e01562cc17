package matching

import (
	"strings"

	"github.com/fornada/fornada/internal/ingredient"
	"github.com/fornada/fornada/internal/supplier"
)

// Matcher applies the resolution policies used during invoice import.
type Matcher struct {
	threshold float64
}

func NewMatcher(threshold float64) *Matcher {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	return &Matcher{threshold: threshold}
}

func (m *Matcher) Threshold() float64 {
	return m.threshold
}

// ResolveSupplier picks the supplier whose CNPJ equals taxID, ignoring
// punctuation. Only when no CNPJ matches does it fall back to name similarity.
func (m *Matcher) ResolveSupplier(suppliers []*supplier.Supplier, taxID, name string) Result[*supplier.Supplier] {
	if want := supplier.NormalizeTaxID(taxID); want != "" {
		for _, s := range suppliers {
			if supplier.NormalizeTaxID(s.CNPJ) == want {
				return Resolved(s, 1)
			}
		}
	}

	if strings.TrimSpace(name) == "" {
		return Unresolved[*supplier.Supplier]()
	}

	return FindBestMatch(suppliers, func(s *supplier.Supplier) string { return s.Name }, name, m.threshold)
}

// ResolveIngredient matches an invoice line description against ingredient names.
func (m *Matcher) ResolveIngredient(ingredients []*ingredient.Ingredient, description string) Result[*ingredient.Ingredient] {
	if strings.TrimSpace(description) == "" {
		return Unresolved[*ingredient.Ingredient]()
	}

	return FindBestMatch(ingredients, func(i *ingredient.Ingredient) string { return i.Name }, description, m.threshold)
}
