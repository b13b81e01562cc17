package finance

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fornada/fornada/internal/finance"
	"github.com/fornada/fornada/internal/http/auth"
)

type Handler struct {
	svc *finance.Service
	now func() time.Time
}

func NewHandler(svc *finance.Service) *Handler {
	return &Handler{svc: svc, now: time.Now}
}

func (h *Handler) Routes(r chi.Router) {
	r.Route("/payables", func(r chi.Router) {
		r.Get("/", h.listPayables)
		r.Post("/", h.createPayable)
		r.Delete("/{id}", h.deletePayable)
		r.Post("/{id}/pay", h.pay)
	})

	r.Route("/receivables", func(r chi.Router) {
		r.Get("/", h.listReceivables)
		r.Post("/", h.createReceivable)
		r.Delete("/{id}", h.deleteReceivable)
		r.Post("/{id}/receive", h.receive)
		r.Post("/{id}/reschedule", h.reschedule)
		r.Get("/{id}/logs", h.logs)
	})

	r.Get("/accounts", h.accounts)
	r.Post("/accounts", h.createAccount)
	r.Post("/transfers", h.transfer)
	r.Get("/report", h.report)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, finance.ErrNotFound),
		errors.Is(err, finance.ErrReceivableNotFound),
		errors.Is(err, finance.ErrAccountNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, finance.ErrInvalidStatus):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, finance.ErrInvalidAmount),
		errors.Is(err, finance.ErrSameAccount),
		errors.Is(err, finance.ErrInvalidFilter),
		errors.Is(err, finance.ErrInvalidRange),
		errors.Is(err, finance.ErrDescriptionRequired),
		errors.Is(err, finance.ErrNameRequired),
		errors.Is(err, finance.ErrDueDateRequired):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		slog.Error("finance request failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) listPayables(w http.ResponseWriter, r *http.Request) {
	filter, err := finance.ParseFilter(r.URL.Query().Get("status"))
	if err != nil {
		writeError(w, err)
		return
	}

	payables, err := h.svc.ListPayables(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toPayableList(payables, h.now()))
}

type entryRequest struct {
	SupplierID    *uuid.UUID            `json:"supplier_id,omitempty"`
	PurchaseID    *uuid.UUID            `json:"purchase_id,omitempty"`
	CustomerID    *uuid.UUID            `json:"customer_id,omitempty"`
	SaleID        *uuid.UUID            `json:"sale_id,omitempty"`
	Description   string                `json:"description"`
	Amount        decimal.Decimal       `json:"amount"`
	DueDate       string                `json:"due_date"`
	PaymentMethod finance.PaymentMethod `json:"payment_method,omitempty"`
}

// decodeEntry reads an entry body. Due dates are plain YYYY-MM-DD dates.
func decodeEntry(r *http.Request) (entryRequest, time.Time, error) {
	var req entryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, time.Time{}, err
	}

	if req.DueDate == "" {
		return req, time.Time{}, nil
	}

	due, err := time.Parse(time.DateOnly, req.DueDate)

	return req, due, err
}

func (h *Handler) createPayable(w http.ResponseWriter, r *http.Request) {
	req, due, err := decodeEntry(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.CreatePayable(r.Context(), finance.PayableParams{
		SupplierID:  req.SupplierID,
		PurchaseID:  req.PurchaseID,
		Description: req.Description,
		Amount:      req.Amount,
		DueDate:     due,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPayableResponse(p, h.now()))
}

func (h *Handler) deletePayable(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeletePayable(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type settleRequest struct {
	AccountID uuid.UUID             `json:"account_id"`
	Method    finance.PaymentMethod `json:"payment_method"`
}

func (h *Handler) pay(w http.ResponseWriter, r *http.Request) {
	h.settle(w, r, h.svc.Pay)
}

func (h *Handler) receive(w http.ResponseWriter, r *http.Request) {
	h.settle(w, r, h.svc.Receive)
}

func (h *Handler) settle(w http.ResponseWriter, r *http.Request,
	apply func(context.Context, finance.SettleParams) (*finance.Transaction, error),
) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req settleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	txn, err := apply(r.Context(), finance.SettleParams{ID: id, AccountID: req.AccountID, Method: req.Method})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toTransactionResponse(txn))
}

func (h *Handler) listReceivables(w http.ResponseWriter, r *http.Request) {
	filter, err := finance.ParseFilter(r.URL.Query().Get("status"))
	if err != nil {
		writeError(w, err)
		return
	}

	receivables, err := h.svc.ListReceivables(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toReceivableList(receivables, h.now()))
}

func (h *Handler) createReceivable(w http.ResponseWriter, r *http.Request) {
	req, due, err := decodeEntry(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rec, err := h.svc.CreateReceivable(r.Context(), finance.ReceivableParams{
		CustomerID:    req.CustomerID,
		SaleID:        req.SaleID,
		Description:   req.Description,
		Amount:        req.Amount,
		DueDate:       due,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toReceivableResponse(rec, h.now()))
}

func (h *Handler) deleteReceivable(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteReceivable(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type rescheduleRequest struct {
	NewDueDate string                `json:"new_due_date"`
	Method     finance.PaymentMethod `json:"payment_method,omitempty"`
	Notes      string                `json:"notes"`
}

func (h *Handler) reschedule(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req rescheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := finance.RescheduleParams{
		ID:     id,
		Method: req.Method,
		Notes:  req.Notes,
		UserID: auth.UserID(r.Context()),
	}

	if req.NewDueDate != "" {
		due, err := time.Parse(time.DateOnly, req.NewDueDate)
		if err != nil {
			http.Error(w, "invalid new_due_date", http.StatusBadRequest)
			return
		}

		params.NewDueDate = due
	}

	rec, err := h.svc.Reschedule(r.Context(), params)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toReceivableResponse(rec, h.now()))
}

func (h *Handler) logs(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	logs, err := h.svc.Logs(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]logResponse, len(logs))
	for i, l := range logs {
		resp[i] = logResponse{
			ID:         l.ID,
			UserID:     l.UserID,
			OldDueDate: l.OldDueDate,
			NewDueDate: l.NewDueDate,
			OldMethod:  l.OldMethod,
			NewMethod:  l.NewMethod,
			Notes:      l.Notes,
			CreatedAt:  l.CreatedAt,
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) accounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.svc.Accounts(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]accountResponse, len(accounts))
	for i, a := range accounts {
		resp[i] = accountResponse{ID: a.ID, Name: a.Name, Type: a.Type, Balance: a.Balance, CreatedAt: a.CreatedAt}
	}

	writeJSON(w, http.StatusOK, resp)
}

type createAccountRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

func (h *Handler) createAccount(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	a, err := h.svc.CreateAccount(r.Context(), req.Name, req.Type)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, accountResponse{ID: a.ID, Name: a.Name, Type: a.Type, Balance: a.Balance, CreatedAt: a.CreatedAt})
}

type transferRequest struct {
	FromAccountID uuid.UUID       `json:"from_account_id"`
	ToAccountID   uuid.UUID       `json:"to_account_id"`
	Amount        decimal.Decimal `json:"amount"`
	Notes         string          `json:"notes"`
}

func (h *Handler) transfer(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	t, err := h.svc.Transfer(r.Context(), finance.TransferParams{
		FromAccountID: req.FromAccountID,
		ToAccountID:   req.ToAccountID,
		Amount:        req.Amount,
		Notes:         req.Notes,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, transferResponse{
		ID:            t.ID,
		FromAccountID: t.FromAccountID,
		ToAccountID:   t.ToAccountID,
		Amount:        t.Amount,
		Notes:         t.Notes,
		OccurredAt:    t.OccurredAt,
	})
}

func (h *Handler) report(w http.ResponseWriter, r *http.Request) {
	start, err := time.Parse(time.DateOnly, r.URL.Query().Get("start"))
	if err != nil {
		http.Error(w, "invalid start", http.StatusBadRequest)
		return
	}

	end, err := time.Parse(time.DateOnly, r.URL.Query().Get("end"))
	if err != nil {
		http.Error(w, "invalid end", http.StatusBadRequest)
		return
	}

	report, err := h.svc.Report(r.Context(), start, end)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toReportResponse(report, h.now()))
}
