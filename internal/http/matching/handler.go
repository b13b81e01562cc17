package matching

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/fornada/fornada/internal/ingredient"
	"github.com/fornada/fornada/internal/matching"
	"github.com/fornada/fornada/internal/supplier"
)

type SupplierLister interface {
	List(ctx context.Context) ([]*supplier.Supplier, error)
}

type IngredientLister interface {
	List(ctx context.Context) ([]*ingredient.Ingredient, error)
}

// Handler exposes the matcher so clients can re-run resolution while a
// draft is being edited.
type Handler struct {
	matcher     *matching.Matcher
	suppliers   SupplierLister
	ingredients IngredientLister
}

func NewHandler(matcher *matching.Matcher, suppliers SupplierLister, ingredients IngredientLister) *Handler {
	return &Handler{
		matcher:     matcher,
		suppliers:   suppliers,
		ingredients: ingredients,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/suppliers", h.matchSupplier)
	r.Get("/ingredients", h.matchIngredient)
}

type candidate struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type matchResponse struct {
	Query      string        `json:"query"`
	Status     matching.Kind `json:"status"`
	Score      float64       `json:"score"`
	Match      *candidate    `json:"match,omitempty"`
	Candidates []candidate   `json:"candidates,omitempty"`
}

func toResponse[T any](query string, r matching.Result[T], ref func(T) candidate) matchResponse {
	resp := matchResponse{Query: query, Status: r.Kind(), Score: r.Score()}

	if item, ok := r.Resolved(); ok {
		resp.Match = new(ref(item))
	}

	for _, c := range r.Candidates() {
		resp.Candidates = append(resp.Candidates, ref(c))
	}

	return resp
}

func (h *Handler) matchSupplier(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	taxID := r.URL.Query().Get("tax_id")

	if name == "" && taxID == "" {
		http.Error(w, "name or tax_id query parameter is required", http.StatusBadRequest)
		return
	}

	suppliers, err := h.suppliers.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	result := h.matcher.ResolveSupplier(suppliers, taxID, name)

	writeJSON(w, toResponse(name, result, func(s *supplier.Supplier) candidate {
		return candidate{ID: s.ID, Name: s.Name}
	}))
}

func (h *Handler) matchIngredient(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		http.Error(w, "q query parameter is required", http.StatusBadRequest)
		return
	}

	ingredients, err := h.ingredients.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	result := h.matcher.ResolveIngredient(ingredients, q)

	writeJSON(w, toResponse(q, result, func(i *ingredient.Ingredient) candidate {
		return candidate{ID: i.ID, Name: i.Name}
	}))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
