package customer

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/fornada/fornada/internal/finance"
	"github.com/fornada/fornada/internal/sale"
)

var (
	ErrNotFound     = errors.New("customer not found")
	ErrNameRequired = errors.New("customer name is required")
)

type Customer struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Details is a customer with their purchase history, newest sale first, and
// receivables by due date.
type Details struct {
	*Customer
	Sales       []*sale.Sale
	Receivables []*finance.Receivable
}
