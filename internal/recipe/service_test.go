package recipe_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fornada/fornada/internal/recipe"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestRecipe_Cost(t *testing.T) {
	tests := []struct {
		name        string
		recipe      recipe.Recipe
		wantCost    string
		wantPerUnit string
	}{
		{
			name: "Bread",
			recipe: recipe.Recipe{
				YieldQuantity: dec("20"),
				Ingredients: []*recipe.Line{
					{Quantity: dec("1"), CostPerUnit: dec("3.60")},
					{Quantity: dec("0.02"), CostPerUnit: dec("72.50")},
				},
			},
			wantCost:    "5.05",
			wantPerUnit: "0.2525",
		},
		{
			name: "ZeroYield",
			recipe: recipe.Recipe{
				Ingredients: []*recipe.Line{{Quantity: dec("2"), CostPerUnit: dec("1.5")}},
			},
			wantCost:    "3",
			wantPerUnit: "0",
		},
		{
			name:        "NoIngredients",
			recipe:      recipe.Recipe{YieldQuantity: dec("10")},
			wantCost:    "0",
			wantPerUnit: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, dec(tt.wantCost).Equal(tt.recipe.Cost()), tt.recipe.Cost().String())
			assert.True(t, dec(tt.wantPerUnit).Equal(tt.recipe.CostPerUnit()), tt.recipe.CostPerUnit().String())
		})
	}
}

func TestService_Create(t *testing.T) {
	flour := uuid.New()

	type testCase struct {
		name      string
		params    recipe.Params
		setupMock func(m *recipe.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			params: recipe.Params{
				Name:          "  Pão Francês ",
				YieldQuantity: dec("20"),
				Ingredients:   []recipe.LineParams{{IngredientID: flour, Quantity: dec("1")}},
			},
			setupMock: func(m *recipe.MockRepository) {
				m.EXPECT().
					CreateRecipe(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, r *recipe.Recipe) error {
						assert.Equal(t, "Pão Francês", r.Name)
						assert.Equal(t, "un", r.YieldUnit)
						require.Len(t, r.Ingredients, 1)
						assert.Equal(t, flour, r.Ingredients[0].IngredientID)
						return nil
					})
			},
		},
		{
			name:    "NameRequired",
			params:  recipe.Params{Name: " "},
			wantErr: recipe.ErrNameRequired,
		},
		{
			name:    "NegativeYield",
			params:  recipe.Params{Name: "Bolo", YieldQuantity: dec("-1")},
			wantErr: recipe.ErrInvalidYield,
		},
		{
			name: "NonPositiveLine",
			params: recipe.Params{
				Name:        "Bolo",
				Ingredients: []recipe.LineParams{{IngredientID: flour, Quantity: decimal.Zero}},
			},
			wantErr: recipe.ErrInvalidLine,
		},
		{
			name: "DuplicateLine",
			params: recipe.Params{
				Name: "Bolo",
				Ingredients: []recipe.LineParams{
					{IngredientID: flour, Quantity: dec("1")},
					{IngredientID: flour, Quantity: dec("2")},
				},
			},
			wantErr: recipe.ErrDuplicateLines,
		},
		{
			name:   "RepoError",
			params: recipe.Params{Name: "Bolo"},
			setupMock: func(m *recipe.MockRepository) {
				m.EXPECT().CreateRecipe(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockRepo := recipe.NewMockRepository(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(mockRepo)
			}

			svc := recipe.NewService(mockRepo)

			got, err := svc.Create(context.Background(), tt.params)
			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.wantErr.Error(), err.Error())

				return
			}

			require.NoError(t, err)
			assert.NotNil(t, got)
		})
	}
}

func TestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := recipe.NewMockRepository(ctrl)
	id := uuid.New()

	mockRepo.EXPECT().
		UpdateRecipe(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *recipe.Recipe) error {
			assert.Equal(t, id, r.ID)
			return recipe.ErrNotFound
		})

	_, err := recipe.NewService(mockRepo).Update(context.Background(), id, recipe.Params{Name: "Bolo"})
	assert.ErrorIs(t, err, recipe.ErrNotFound)
}

func TestService_SalesLast30Days(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := recipe.NewMockRepository(ctrl)
	id := uuid.New()

	mockRepo.EXPECT().
		QuantitySold(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, since time.Time) (decimal.Decimal, error) {
			assert.WithinDuration(t, time.Now().Add(-30*24*time.Hour), since, time.Minute)
			return dec("42"), nil
		})

	got, err := recipe.NewService(mockRepo).SalesLast30Days(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, dec("42").Equal(got))
}
