package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fornada/fornada/internal/finance"
)

type payableResponse struct {
	ID           uuid.UUID             `json:"id"`
	SupplierID   *uuid.UUID            `json:"supplier_id,omitempty"`
	SupplierName string                `json:"supplier_name,omitempty"`
	PurchaseID   *uuid.UUID            `json:"purchase_id,omitempty"`
	Description  string                `json:"description"`
	Amount       decimal.Decimal       `json:"amount"`
	DueDate      time.Time             `json:"due_date"`
	PaidDate     *time.Time            `json:"paid_date,omitempty"`
	Status       finance.PayableStatus `json:"status"`
	Overdue      bool                  `json:"overdue"`
	CreatedAt    time.Time             `json:"created_at"`
}

type receivableResponse struct {
	ID            uuid.UUID                `json:"id"`
	CustomerID    *uuid.UUID               `json:"customer_id,omitempty"`
	CustomerName  string                   `json:"customer_name,omitempty"`
	SaleID        *uuid.UUID               `json:"sale_id,omitempty"`
	Description   string                   `json:"description"`
	Amount        decimal.Decimal          `json:"amount"`
	DueDate       time.Time                `json:"due_date"`
	ReceivedDate  *time.Time               `json:"received_date,omitempty"`
	PaymentMethod finance.PaymentMethod    `json:"payment_method,omitempty"`
	Status        finance.ReceivableStatus `json:"status"`
	Overdue       bool                     `json:"overdue"`
	CreatedAt     time.Time                `json:"created_at"`
}

type logResponse struct {
	ID         uuid.UUID             `json:"id"`
	UserID     string                `json:"user_id,omitempty"`
	OldDueDate time.Time             `json:"old_due_date"`
	NewDueDate time.Time             `json:"new_due_date"`
	OldMethod  finance.PaymentMethod `json:"old_method,omitempty"`
	NewMethod  finance.PaymentMethod `json:"new_method,omitempty"`
	Notes      string                `json:"notes,omitempty"`
	CreatedAt  time.Time             `json:"created_at"`
}

type accountResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
}

type transactionResponse struct {
	ID            uuid.UUID             `json:"id"`
	AccountID     uuid.UUID             `json:"account_id"`
	Amount        decimal.Decimal       `json:"amount"`
	Type          finance.TxnType       `json:"txn_type"`
	PaymentMethod finance.PaymentMethod `json:"payment_method"`
	Description   string                `json:"description,omitempty"`
	OccurredAt    time.Time             `json:"occurred_at"`
}

type transferResponse struct {
	ID            uuid.UUID       `json:"id"`
	FromAccountID uuid.UUID       `json:"from_account_id"`
	ToAccountID   uuid.UUID       `json:"to_account_id"`
	Amount        decimal.Decimal `json:"amount"`
	Notes         string          `json:"notes,omitempty"`
	OccurredAt    time.Time       `json:"occurred_at"`
}

type reportResponse struct {
	Start         string               `json:"start"`
	End           string               `json:"end"`
	Payments      []payableResponse    `json:"payments"`
	Receipts      []receivableResponse `json:"receipts"`
	TotalPaid     decimal.Decimal      `json:"total_paid"`
	TotalReceived decimal.Decimal      `json:"total_received"`
	Net           decimal.Decimal      `json:"net"`
}

func toPayableResponse(p *finance.Payable, now time.Time) payableResponse {
	return payableResponse{
		ID:           p.ID,
		SupplierID:   p.SupplierID,
		SupplierName: p.SupplierName,
		PurchaseID:   p.PurchaseID,
		Description:  p.Description,
		Amount:       p.Amount,
		DueDate:      p.DueDate,
		PaidDate:     p.PaidDate,
		Status:       p.Status,
		Overdue:      p.Overdue(now),
		CreatedAt:    p.CreatedAt,
	}
}

func toPayableList(payables []*finance.Payable, now time.Time) []payableResponse {
	resp := make([]payableResponse, len(payables))
	for i, p := range payables {
		resp[i] = toPayableResponse(p, now)
	}

	return resp
}

func toReceivableResponse(r *finance.Receivable, now time.Time) receivableResponse {
	return receivableResponse{
		ID:            r.ID,
		CustomerID:    r.CustomerID,
		CustomerName:  r.CustomerName,
		SaleID:        r.SaleID,
		Description:   r.Description,
		Amount:        r.Amount,
		DueDate:       r.DueDate,
		ReceivedDate:  r.ReceivedDate,
		PaymentMethod: r.PaymentMethod,
		Status:        r.Status,
		Overdue:       r.Overdue(now),
		CreatedAt:     r.CreatedAt,
	}
}

func toReceivableList(receivables []*finance.Receivable, now time.Time) []receivableResponse {
	resp := make([]receivableResponse, len(receivables))
	for i, r := range receivables {
		resp[i] = toReceivableResponse(r, now)
	}

	return resp
}

func toTransactionResponse(t *finance.Transaction) transactionResponse {
	return transactionResponse{
		ID:            t.ID,
		AccountID:     t.AccountID,
		Amount:        t.Amount,
		Type:          t.Type,
		PaymentMethod: t.PaymentMethod,
		Description:   t.Description,
		OccurredAt:    t.OccurredAt,
	}
}

func toReportResponse(r *finance.Report, now time.Time) reportResponse {
	return reportResponse{
		Start:         r.Start.Format(time.DateOnly),
		End:           r.End.Format(time.DateOnly),
		Payments:      toPayableList(r.Payments, now),
		Receipts:      toReceivableList(r.Receipts, now),
		TotalPaid:     r.TotalPaid,
		TotalReceived: r.TotalReceived,
		Net:           r.Net(),
	}
}
