package matching_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	matchinghttp "github.com/fornada/fornada/internal/http/matching"
	"github.com/fornada/fornada/internal/ingredient"
	"github.com/fornada/fornada/internal/matching"
	"github.com/fornada/fornada/internal/supplier"
)

type suppliers []*supplier.Supplier

func (s suppliers) List(context.Context) ([]*supplier.Supplier, error) { return s, nil }

type ingredients []*ingredient.Ingredient

func (i ingredients) List(context.Context) ([]*ingredient.Ingredient, error) { return i, nil }

type ref struct {
	ID uuid.UUID `json:"id"`
}

type response struct {
	Status     matching.Kind `json:"status"`
	Score      float64       `json:"score"`
	Match      *ref          `json:"match"`
	Candidates []ref         `json:"candidates"`
}

func newRouter() (http.Handler, *supplier.Supplier, []*ingredient.Ingredient) {
	moinho := &supplier.Supplier{ID: uuid.New(), Name: "Moinho Paulista", CNPJ: "12.345.678/0001-99"}
	ings := []*ingredient.Ingredient{
		{ID: uuid.New(), Name: "Manteiga"},
		{ID: uuid.New(), Name: "Manteiga"},
		{ID: uuid.New(), Name: "Farinha de Trigo"},
	}

	h := matchinghttp.NewHandler(matching.NewMatcher(0), suppliers{moinho}, ingredients(ings))

	r := chi.NewRouter()
	r.Route("/matching", h.Routes)

	return r, moinho, ings
}

func TestHandler(t *testing.T) {
	router, moinho, ings := newRouter()

	tests := []struct {
		name       string
		url        string
		wantCode   int
		wantStatus matching.Kind
		wantMatch  *uuid.UUID
		wantCands  int
	}{
		{
			name:       "SupplierByTaxID",
			url:        "/matching/suppliers?tax_id=12345678000199&name=Outro",
			wantCode:   http.StatusOK,
			wantStatus: matching.KindResolved,
			wantMatch:  &moinho.ID,
		},
		{
			name:       "SupplierUnknownName",
			url:        "/matching/suppliers?name=Distribuidora+Leite",
			wantCode:   http.StatusOK,
			wantStatus: matching.KindUnresolved,
		},
		{
			name:     "SupplierMissingParams",
			url:      "/matching/suppliers",
			wantCode: http.StatusBadRequest,
		},
		{
			name:       "IngredientResolved",
			url:        "/matching/ingredients?q=FARINHA+DE+TRIGO",
			wantCode:   http.StatusOK,
			wantStatus: matching.KindResolved,
			wantMatch:  &ings[2].ID,
		},
		{
			name:       "IngredientAmbiguous",
			url:        "/matching/ingredients?q=manteiga",
			wantCode:   http.StatusOK,
			wantStatus: matching.KindAmbiguous,
			wantCands:  2,
		},
		{
			name:     "IngredientMissingQuery",
			url:      "/matching/ingredients",
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))

			require.Equal(t, tt.wantCode, rec.Code, rec.Body.String())

			if tt.wantCode != http.StatusOK {
				return
			}

			var got response
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))

			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Len(t, got.Candidates, tt.wantCands)

			if tt.wantMatch == nil {
				assert.Nil(t, got.Match)
				return
			}

			require.NotNil(t, got.Match)
			assert.Equal(t, *tt.wantMatch, got.Match.ID)
		})
	}
}
