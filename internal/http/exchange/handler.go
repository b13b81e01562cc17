package exchange

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fornada/fornada/internal/exchange"
)

type Handler struct {
	svc *exchange.Service
}

func NewHandler(svc *exchange.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Post("/{id}/process", h.process)
}

type itemResponse struct {
	RecipeID   uuid.UUID       `json:"recipe_id"`
	RecipeName string          `json:"recipe_name,omitempty"`
	Quantity   decimal.Decimal `json:"quantity"`
	Reason     string          `json:"reason,omitempty"`
}

type exchangeResponse struct {
	ID             uuid.UUID       `json:"id"`
	CustomerID     *uuid.UUID      `json:"customer_id,omitempty"`
	CustomerName   string          `json:"customer_name,omitempty"`
	OriginalSaleID *uuid.UUID      `json:"original_sale_id,omitempty"`
	ExchangeDate   time.Time       `json:"exchange_date"`
	Reason         string          `json:"reason,omitempty"`
	Notes          string          `json:"notes,omitempty"`
	Status         exchange.Status `json:"status"`
	TotalRefund    decimal.Decimal `json:"total_refund"`
	Items          []itemResponse  `json:"items"`
	CreatedAt      time.Time       `json:"created_at"`
}

func toResponse(e *exchange.Exchange) exchangeResponse {
	resp := exchangeResponse{
		ID:             e.ID,
		CustomerID:     e.CustomerID,
		CustomerName:   e.CustomerName,
		OriginalSaleID: e.OriginalSaleID,
		ExchangeDate:   e.ExchangeDate,
		Reason:         e.Reason,
		Notes:          e.Notes,
		Status:         e.Status,
		TotalRefund:    e.TotalRefund,
		Items:          make([]itemResponse, len(e.Items)),
		CreatedAt:      e.CreatedAt,
	}

	for i, it := range e.Items {
		resp.Items[i] = itemResponse{
			RecipeID:   it.RecipeID,
			RecipeName: it.RecipeName,
			Quantity:   it.Quantity,
			Reason:     it.Reason,
		}
	}

	return resp
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	exchanges, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]exchangeResponse, len(exchanges))
	for i, e := range exchanges {
		resp[i] = toResponse(e)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type itemRequest struct {
	RecipeID uuid.UUID       `json:"recipe_id"`
	Quantity decimal.Decimal `json:"quantity"`
	Reason   string          `json:"reason"`
}

type createExchangeRequest struct {
	CustomerID     *uuid.UUID      `json:"customer_id,omitempty"`
	OriginalSaleID *uuid.UUID      `json:"original_sale_id,omitempty"`
	ExchangeDate   *time.Time      `json:"exchange_date,omitempty"`
	Reason         string          `json:"reason"`
	Notes          string          `json:"notes"`
	TotalRefund    decimal.Decimal `json:"total_refund"`
	Items          []itemRequest   `json:"items"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createExchangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := exchange.CreateParams{
		CustomerID:     req.CustomerID,
		OriginalSaleID: req.OriginalSaleID,
		Reason:         req.Reason,
		Notes:          req.Notes,
		TotalRefund:    req.TotalRefund,
		Items:          make([]exchange.ItemParams, len(req.Items)),
	}
	if req.ExchangeDate != nil {
		params.ExchangeDate = *req.ExchangeDate
	}

	for i, it := range req.Items {
		params.Items[i] = exchange.ItemParams{RecipeID: it.RecipeID, Quantity: it.Quantity, Reason: it.Reason}
	}

	e, err := h.svc.Create(r.Context(), params)
	if err != nil {
		if errors.Is(err, exchange.ErrInvalidRefund) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(e)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) process(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Process(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, exchange.ErrNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, exchange.ErrInvalidStatus):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
