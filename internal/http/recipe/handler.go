package recipe

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fornada/fornada/internal/recipe"
)

type Handler struct {
	svc *recipe.Service
}

func NewHandler(svc *recipe.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, recipe.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, recipe.ErrNameRequired),
		errors.Is(err, recipe.ErrInvalidYield),
		errors.Is(err, recipe.ErrInvalidLine),
		errors.Is(err, recipe.ErrDuplicateLines):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		slog.Error("recipe request failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

type lineRequest struct {
	IngredientID uuid.UUID       `json:"ingredient_id"`
	Quantity     decimal.Decimal `json:"quantity"`
}

type recipeRequest struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	YieldQuantity decimal.Decimal `json:"yield_quantity"`
	YieldUnit     string          `json:"yield_unit"`
	Ingredients   []lineRequest   `json:"ingredients"`
}

func (req recipeRequest) params() recipe.Params {
	p := recipe.Params{
		Name:          req.Name,
		Description:   req.Description,
		YieldQuantity: req.YieldQuantity,
		YieldUnit:     req.YieldUnit,
		Ingredients:   make([]recipe.LineParams, len(req.Ingredients)),
	}

	for i, l := range req.Ingredients {
		p.Ingredients[i] = recipe.LineParams{IngredientID: l.IngredientID, Quantity: l.Quantity}
	}

	return p
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(recipes)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	rec, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	sold, err := h.svc.SalesLast30Days(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := toResponse(rec)
	resp.SalesLast30Days = &sold

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req recipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rec, err := h.svc.Create(r.Context(), req.params())
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(rec)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req recipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rec, err := h.svc.Update(r.Context(), id, req.params())
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(rec)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
