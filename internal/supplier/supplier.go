package supplier

import (
	"errors"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

var (
	ErrNotFound  = errors.New("supplier not found")
	ErrDuplicate = errors.New("supplier with this CNPJ already exists")
)

// DefaultName is used when an invoice does not carry the emitter's name.
const DefaultName = "Fornecedor"

type Supplier struct {
	ID        uuid.UUID
	Name      string
	CNPJ      string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NormalizeTaxID strips every non-digit so "12.345.678/0001-99" and
// "12345678000199" compare equal.
func NormalizeTaxID(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}

		return -1
	}, s)
}
