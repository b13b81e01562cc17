package ingredient

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fornada/fornada/internal/ingredient"
)

type Handler struct {
	svc *ingredient.Service
}

func NewHandler(svc *ingredient.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/low-stock", h.lowStock)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Get("/{id}/movements", h.movements)
	r.Post("/{id}/movements", h.adjust)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ingredient.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ingredient.ErrNameRequired),
		errors.Is(err, ingredient.ErrInvalidMovementType),
		errors.Is(err, ingredient.ErrInvalidQuantity):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		slog.Error("ingredient request failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	ingredients, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(ingredients)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) lowStock(w http.ResponseWriter, r *http.Request) {
	ingredients, err := h.svc.LowStock(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(ingredients)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	ing, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(ing)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type createIngredientRequest struct {
	Name         string          `json:"name"`
	Unit         string          `json:"unit"`
	CostPerUnit  decimal.Decimal `json:"cost_per_unit"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	MinStock     decimal.Decimal `json:"min_stock"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createIngredientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ing, err := h.svc.Create(r.Context(), ingredient.CreateParams{
		Name:         req.Name,
		Unit:         req.Unit,
		CostPerUnit:  req.CostPerUnit,
		CurrentStock: req.CurrentStock,
		MinStock:     req.MinStock,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(ing)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Stock is changed through movements, never by update.
type updateIngredientRequest struct {
	Name        *string          `json:"name,omitempty"`
	Unit        *string          `json:"unit,omitempty"`
	CostPerUnit *decimal.Decimal `json:"cost_per_unit,omitempty"`
	MinStock    *decimal.Decimal `json:"min_stock,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateIngredientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ing, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	if req.Name != nil && *req.Name != "" {
		ing.Name = *req.Name
	}

	if req.Unit != nil {
		ing.Unit = *req.Unit
	}

	if req.CostPerUnit != nil {
		ing.CostPerUnit = *req.CostPerUnit
	}

	if req.MinStock != nil {
		ing.MinStock = *req.MinStock
	}

	if err := h.svc.Update(r.Context(), ing); err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(ing)); err != nil {
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

func (h *Handler) movements(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	movements, err := h.svc.Movements(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]movementResponse, len(movements))
	for i, m := range movements {
		resp[i] = toMovementResponse(m)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type adjustRequest struct {
	Type     ingredient.MovementType `json:"movement_type"`
	Quantity decimal.Decimal         `json:"quantity"`
	Reason   string                  `json:"reason"`
}

func (h *Handler) adjust(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req adjustRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	m, err := h.svc.AdjustStock(r.Context(), ingredient.MovementParams{
		IngredientID: id,
		Type:         req.Type,
		Quantity:     req.Quantity,
		Reason:       req.Reason,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toMovementResponse(m)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
