package production_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fornada/fornada/internal/ingredient"
	"github.com/fornada/fornada/internal/production"
	"github.com/fornada/fornada/internal/recipe"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestConsumption(t *testing.T) {
	flour, butter := uuid.New(), uuid.New()

	tests := []struct {
		name     string
		yield    string
		quantity string
		want     []string
	}{
		{name: "FullBatch", yield: "20", quantity: "20", want: []string{"1", "0.2"}},
		{name: "HalfBatch", yield: "20", quantity: "10", want: []string{"0.5", "0.1"}},
		{name: "ThirdRounded", yield: "3", quantity: "1", want: []string{"0.333", "0.067"}},
		{name: "NoYield", yield: "0", quantity: "2", want: []string{"2", "0.4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recipe.Recipe{
				YieldQuantity: dec(tt.yield),
				Ingredients: []*recipe.Line{
					{IngredientID: flour, Quantity: dec("1")},
					{IngredientID: butter, Quantity: dec("0.2")},
				},
			}

			got := production.Consumption(r, dec(tt.quantity))
			require.Len(t, got, 2)

			for i, m := range got {
				assert.Equal(t, ingredient.MovementOut, m.Type)
				assert.True(t, dec(tt.want[i]).Equal(m.Quantity), "line %d: got %s", i, m.Quantity)
			}

			assert.Equal(t, flour, got[0].IngredientID)
		})
	}
}

func TestService_Create(t *testing.T) {
	recipeID := uuid.New()
	flour := uuid.New()
	bread := &recipe.Recipe{
		ID:            recipeID,
		Name:          "Pão Francês",
		YieldQuantity: dec("20"),
		YieldUnit:     "un",
		Ingredients:   []*recipe.Line{{IngredientID: flour, Quantity: dec("1")}},
	}

	type testCase struct {
		name      string
		params    production.CreateParams
		setupMock func(repo *production.MockRepository, tx *production.MockCreateTx)
		wantErr   error
		wantMsg   string
	}

	tests := []testCase{
		{
			name:   "ConsumesStock",
			params: production.CreateParams{RecipeID: recipeID, QuantityProduced: dec("40")},
			setupMock: func(repo *production.MockRepository, tx *production.MockCreateTx) {
				prodID := uuid.New()

				repo.EXPECT().BeginCreate(gomock.Any()).Return(tx, nil)
				tx.EXPECT().GetRecipe(gomock.Any(), recipeID).Return(bread, nil)
				tx.EXPECT().
					InsertProduction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *production.Production) error {
						assert.False(t, p.ProductionDate.IsZero())
						p.ID = prodID
						return nil
					})
				tx.EXPECT().
					ConsumeStock(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, m *ingredient.StockMovement) error {
						assert.Equal(t, flour, m.IngredientID)
						assert.True(t, dec("2").Equal(m.Quantity))
						require.NotNil(t, m.ProductionID)
						assert.Equal(t, prodID, *m.ProductionID)
						return nil
					})
				tx.EXPECT().Commit().Return(nil)
				tx.EXPECT().Rollback().Return(nil)
			},
		},
		{
			name:    "InvalidQuantity",
			params:  production.CreateParams{RecipeID: recipeID, QuantityProduced: decimal.Zero},
			wantErr: production.ErrInvalidQuantity,
		},
		{
			name:   "RecipeNotFound",
			params: production.CreateParams{RecipeID: recipeID, QuantityProduced: dec("1")},
			setupMock: func(repo *production.MockRepository, tx *production.MockCreateTx) {
				repo.EXPECT().BeginCreate(gomock.Any()).Return(tx, nil)
				tx.EXPECT().GetRecipe(gomock.Any(), recipeID).Return(nil, recipe.ErrNotFound)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantErr: recipe.ErrNotFound,
		},
		{
			name:   "StockFailureRollsBack",
			params: production.CreateParams{RecipeID: recipeID, QuantityProduced: dec("1")},
			setupMock: func(repo *production.MockRepository, tx *production.MockCreateTx) {
				repo.EXPECT().BeginCreate(gomock.Any()).Return(tx, nil)
				tx.EXPECT().GetRecipe(gomock.Any(), recipeID).Return(bread, nil)
				tx.EXPECT().InsertProduction(gomock.Any(), gomock.Any()).Return(nil)
				tx.EXPECT().ConsumeStock(gomock.Any(), gomock.Any()).Return(ingredient.ErrNotFound)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantErr: ingredient.ErrNotFound,
		},
		{
			name:   "BeginError",
			params: production.CreateParams{RecipeID: recipeID, QuantityProduced: dec("1")},
			setupMock: func(repo *production.MockRepository, _ *production.MockCreateTx) {
				repo.EXPECT().BeginCreate(gomock.Any()).Return(nil, errors.New("db down"))
			},
			wantMsg: "begin production: db down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := production.NewMockRepository(ctrl)
			tx := production.NewMockCreateTx(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(repo, tx)
			}

			got, err := production.NewService(repo).Create(context.Background(), tt.params)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantMsg != "":
				assert.EqualError(t, err, tt.wantMsg)
			default:
				require.NoError(t, err)
				assert.Equal(t, "Pão Francês", got.RecipeName)
				assert.Len(t, got.Consumed, 1)
			}
		})
	}
}
