package production

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fornada/fornada/internal/ingredient"
	"github.com/fornada/fornada/internal/production"
	"github.com/fornada/fornada/internal/recipe"
)

type Handler struct {
	svc *production.Service
}

func NewHandler(svc *production.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
}

type consumedResponse struct {
	IngredientID uuid.UUID       `json:"ingredient_id"`
	Quantity     decimal.Decimal `json:"quantity"`
}

type productionResponse struct {
	ID               uuid.UUID          `json:"id"`
	RecipeID         uuid.UUID          `json:"recipe_id"`
	RecipeName       string             `json:"recipe_name,omitempty"`
	YieldUnit        string             `json:"yield_unit,omitempty"`
	QuantityProduced decimal.Decimal    `json:"quantity_produced"`
	ProductionDate   time.Time          `json:"production_date"`
	Notes            string             `json:"notes,omitempty"`
	Consumed         []consumedResponse `json:"consumed,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
}

func toResponse(p *production.Production) productionResponse {
	resp := productionResponse{
		ID:               p.ID,
		RecipeID:         p.RecipeID,
		RecipeName:       p.RecipeName,
		YieldUnit:        p.YieldUnit,
		QuantityProduced: p.QuantityProduced,
		ProductionDate:   p.ProductionDate,
		Notes:            p.Notes,
		CreatedAt:        p.CreatedAt,
	}

	for _, m := range p.Consumed {
		resp.Consumed = append(resp.Consumed, consumedResponse{IngredientID: m.IngredientID, Quantity: m.Quantity})
	}

	return resp
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	productions, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]productionResponse, len(productions))
	for i, p := range productions {
		resp[i] = toResponse(p)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type createProductionRequest struct {
	RecipeID         uuid.UUID       `json:"recipe_id"`
	QuantityProduced decimal.Decimal `json:"quantity_produced"`
	ProductionDate   *time.Time      `json:"production_date,omitempty"`
	Notes            string          `json:"notes"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createProductionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := production.CreateParams{
		RecipeID:         req.RecipeID,
		QuantityProduced: req.QuantityProduced,
		Notes:            req.Notes,
	}
	if req.ProductionDate != nil {
		params.ProductionDate = *req.ProductionDate
	}

	p, err := h.svc.Create(r.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, production.ErrInvalidQuantity):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, recipe.ErrNotFound), errors.Is(err, ingredient.ErrNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
