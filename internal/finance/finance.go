// Package finance tracks money owed to suppliers and by customers, the
// accounts it moves through and the reports built from them.
package finance

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound            = errors.New("payable not found")
	ErrReceivableNotFound  = errors.New("receivable not found")
	ErrAccountNotFound     = errors.New("financial account not found")
	ErrInvalidStatus       = errors.New("entry is not pending")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrSameAccount         = errors.New("transfer accounts must differ")
	ErrInvalidFilter       = errors.New("invalid status filter")
	ErrInvalidRange        = errors.New("end date is before start date")
	ErrDescriptionRequired = errors.New("description is required")
	ErrNameRequired        = errors.New("account name is required")
	ErrDueDateRequired     = errors.New("due date is required")
)

// Filter selects entries by settlement state. Overdue means pending with a
// due date before today.
type Filter string

const (
	FilterAll      Filter = "all"
	FilterPending  Filter = "pending"
	FilterOverdue  Filter = "overdue"
	FilterPaid     Filter = "paid"
	FilterReceived Filter = "received"
)

func ParseFilter(s string) (Filter, error) {
	switch f := Filter(s); f {
	case "":
		return FilterAll, nil
	case FilterAll, FilterPending, FilterOverdue, FilterPaid, FilterReceived:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidFilter, s)
	}
}

type PaymentMethod string

const (
	MethodCash     PaymentMethod = "cash"
	MethodPix      PaymentMethod = "pix"
	MethodCard     PaymentMethod = "card"
	MethodTransfer PaymentMethod = "transfer"
	MethodBoleto   PaymentMethod = "boleto"
	MethodOther    PaymentMethod = "other"
)

func (m PaymentMethod) orDefault() PaymentMethod {
	if m == "" {
		return MethodOther
	}

	return m
}

type PayableStatus string

const (
	PayablePending PayableStatus = "pending"
	PayablePaid    PayableStatus = "paid"
)

type Payable struct {
	ID           uuid.UUID
	SupplierID   *uuid.UUID
	SupplierName string // Loaded via JOIN
	PurchaseID   *uuid.UUID
	Description  string
	Amount       decimal.Decimal
	DueDate      time.Time
	PaidDate     *time.Time
	Status       PayableStatus
	CreatedAt    time.Time
}

func (p *Payable) Overdue(now time.Time) bool {
	return p.Status == PayablePending && p.DueDate.Before(startOfDay(now))
}

type ReceivableStatus string

const (
	ReceivablePending  ReceivableStatus = "pending"
	ReceivableReceived ReceivableStatus = "received"
)

type Receivable struct {
	ID            uuid.UUID
	CustomerID    *uuid.UUID
	CustomerName  string // Loaded via JOIN
	SaleID        *uuid.UUID
	Description   string
	Amount        decimal.Decimal
	DueDate       time.Time
	ReceivedDate  *time.Time
	PaymentMethod PaymentMethod
	Status        ReceivableStatus
	CreatedAt     time.Time
}

func (r *Receivable) Overdue(now time.Time) bool {
	return r.Status == ReceivablePending && r.DueDate.Before(startOfDay(now))
}

// ReceivableLog records a change of due date or payment method.
type ReceivableLog struct {
	ID           uuid.UUID
	ReceivableID uuid.UUID
	UserID       string
	OldDueDate   time.Time
	NewDueDate   time.Time
	OldMethod    PaymentMethod
	NewMethod    PaymentMethod
	Notes        string
	CreatedAt    time.Time
}

type Account struct {
	ID        uuid.UUID
	Name      string
	Type      string
	Balance   decimal.Decimal // Computed from transactions and transfers
	CreatedAt time.Time
}

type TxnType string

const (
	Credit TxnType = "credit"
	Debit  TxnType = "debit"
)

type Transaction struct {
	ID            uuid.UUID
	AccountID     uuid.UUID
	Amount        decimal.Decimal
	Type          TxnType
	PaymentMethod PaymentMethod
	Description   string
	PayableID     *uuid.UUID
	ReceivableID  *uuid.UUID
	PurchaseID    *uuid.UUID
	SaleID        *uuid.UUID
	OccurredAt    time.Time
}

type Transfer struct {
	ID            uuid.UUID
	FromAccountID uuid.UUID
	ToAccountID   uuid.UUID
	Amount        decimal.Decimal
	Notes         string
	OccurredAt    time.Time
}

// Report lists what was paid and received in a date window.
type Report struct {
	Start         time.Time
	End           time.Time
	Payments      []*Payable
	Receipts      []*Receivable
	TotalPaid     decimal.Decimal
	TotalReceived decimal.Decimal
}

func (r *Report) Net() decimal.Decimal {
	return r.TotalReceived.Sub(r.TotalPaid)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
