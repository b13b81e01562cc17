package importer

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fornada/fornada/internal/importer"
	"github.com/fornada/fornada/internal/invoice"
	"github.com/fornada/fornada/internal/supplier"
)

const maxUploadSize = 10 << 20

type Handler struct {
	svc *importer.Service
}

func NewHandler(svc *importer.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.upload)
	r.With(middleware.AllowContentType("application/json")).Post("/confirm", h.confirm)
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize+1))
	if err != nil {
		http.Error(w, "failed to read file: "+err.Error(), http.StatusBadRequest)
		return
	}

	if len(data) > maxUploadSize {
		http.Error(w, "file too large", http.StatusRequestEntityTooLarge)
		return
	}

	draft, err := h.svc.Parse(r.Context(), header.Filename, data)
	if err != nil {
		switch {
		case errors.Is(err, invoice.ErrUnsupportedFile):
			http.Error(w, err.Error(), http.StatusUnsupportedMediaType)
		case errors.Is(err, invoice.ErrInvalidXML):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		case errors.Is(err, importer.ErrTextExtraction):
			slog.Error("failed to extract invoice text", "file", header.Filename, "error", err)
			http.Error(w, err.Error(), http.StatusBadGateway)
		default:
			slog.Error("failed to parse invoice", "file", header.Filename, "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toDraftResponse(draft)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type confirmLineRequest struct {
	Description  string           `json:"description"`
	IngredientID *uuid.UUID       `json:"ingredient_id"`
	Quantity     decimal.Decimal  `json:"quantity"`
	UnitPrice    decimal.Decimal  `json:"unit_price"`
	TotalPrice   *decimal.Decimal `json:"total_price"`
}

type confirmRequest struct {
	SupplierID    *uuid.UUID           `json:"supplier_id"`
	SupplierName  string               `json:"supplier_name"`
	SupplierTaxID string               `json:"supplier_tax_id"`
	NFeNumber     string               `json:"nfe_number"`
	Notes         string               `json:"notes"`
	Lines         []confirmLineRequest `json:"lines"`
}

func (h *Handler) confirm(w http.ResponseWriter, r *http.Request) {
	var req confirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	params := importer.ConfirmParams{
		SupplierID:    req.SupplierID,
		SupplierName:  req.SupplierName,
		SupplierTaxID: req.SupplierTaxID,
		NFeNumber:     req.NFeNumber,
		Notes:         req.Notes,
		Lines:         make([]importer.ConfirmLine, 0, len(req.Lines)),
	}

	for _, l := range req.Lines {
		params.Lines = append(params.Lines, importer.ConfirmLine{
			Description:  l.Description,
			IngredientID: l.IngredientID,
			Quantity:     l.Quantity,
			UnitPrice:    l.UnitPrice,
			TotalPrice:   l.TotalPrice,
		})
	}

	res, err := h.svc.Confirm(r.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, importer.ErrNothingToImport):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, supplier.ErrDuplicate):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toConfirmResponse(res)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
