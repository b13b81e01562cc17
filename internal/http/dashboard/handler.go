package dashboard

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fornada/fornada/internal/dashboard"
)

type Handler struct {
	svc *dashboard.Service
}

func NewHandler(svc *dashboard.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/stats", h.stats)
	r.Get("/sales", h.sales)
	r.Get("/top-products", h.topProducts)
	r.Get("/top-customers", h.topCustomers)
}

type statsResponse struct {
	SalesLast30Days    decimal.Decimal `json:"sales_last_30_days"`
	PendingReceivables decimal.Decimal `json:"pending_receivables"`
	PendingPayables    decimal.Decimal `json:"pending_payables"`
	LowStockCount      int             `json:"low_stock_count"`
}

type dailySalesResponse struct {
	Day   string          `json:"day"`
	Total decimal.Decimal `json:"total"`
}

type productResponse struct {
	RecipeID uuid.UUID       `json:"recipe_id"`
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

type customerResponse struct {
	CustomerID uuid.UUID       `json:"customer_id"`
	Name       string          `json:"name"`
	SaleCount  int             `json:"sale_count"`
	Total      decimal.Decimal `json:"total"`
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// limit reads the optional limit parameter. Invalid values fall back to the
// service default.
func limit(r *http.Request) int {
	n, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		return 0
	}

	return n
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Stats(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, statsResponse{
		SalesLast30Days:    st.SalesLast30Days,
		PendingReceivables: st.PendingReceivables,
		PendingPayables:    st.PendingPayables,
		LowStockCount:      st.LowStockCount,
	})
}

func (h *Handler) sales(w http.ResponseWriter, r *http.Request) {
	period := dashboard.Period(r.URL.Query().Get("period"))
	if period == "" {
		period = dashboard.Period7Days
	}

	days, err := h.svc.SalesByPeriod(r.Context(), period)
	if err != nil {
		if errors.Is(err, dashboard.ErrInvalidPeriod) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	resp := make([]dailySalesResponse, len(days))
	for i, d := range days {
		resp[i] = dailySalesResponse{Day: d.Day.Format(time.DateOnly), Total: d.Total}
	}

	writeJSON(w, resp)
}

func (h *Handler) topProducts(w http.ResponseWriter, r *http.Request) {
	ranks, err := h.svc.TopProducts(r.Context(), limit(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]productResponse, len(ranks))
	for i, p := range ranks {
		resp[i] = productResponse{RecipeID: p.RecipeID, Name: p.Name, Quantity: p.Quantity, Revenue: p.Revenue}
	}

	writeJSON(w, resp)
}

func (h *Handler) topCustomers(w http.ResponseWriter, r *http.Request) {
	ranks, err := h.svc.TopCustomers(r.Context(), limit(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]customerResponse, len(ranks))
	for i, c := range ranks {
		resp[i] = customerResponse{CustomerID: c.CustomerID, Name: c.Name, SaleCount: c.SaleCount, Total: c.Total}
	}

	writeJSON(w, resp)
}
