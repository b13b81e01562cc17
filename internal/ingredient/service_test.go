package ingredient_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fornada/fornada/internal/ingredient"
)

func TestService_Create_NameRequired(t *testing.T) {
	_, err := ingredient.NewService(nil).Create(context.Background(), ingredient.CreateParams{Name: "  "})
	assert.ErrorIs(t, err, ingredient.ErrNameRequired)
}

func TestService_AdjustStock(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name     string
		params   ingredient.MovementParams
		wantRepo bool
		wantErr  error
	}{
		{
			name:     "In",
			params:   ingredient.MovementParams{IngredientID: id, Type: ingredient.MovementIn, Quantity: decimal.NewFromInt(25)},
			wantRepo: true,
		},
		{
			name:     "NegativeAdjustment",
			params:   ingredient.MovementParams{IngredientID: id, Type: ingredient.MovementAdjustment, Quantity: decimal.NewFromInt(-3)},
			wantRepo: true,
		},
		{
			name:    "OutZero",
			params:  ingredient.MovementParams{IngredientID: id, Type: ingredient.MovementOut, Quantity: decimal.Zero},
			wantErr: ingredient.ErrInvalidQuantity,
		},
		{
			name:    "InNegative",
			params:  ingredient.MovementParams{IngredientID: id, Type: ingredient.MovementIn, Quantity: decimal.NewFromInt(-1)},
			wantErr: ingredient.ErrInvalidQuantity,
		},
		{
			name:    "UnknownType",
			params:  ingredient.MovementParams{IngredientID: id, Type: "loss", Quantity: decimal.NewFromInt(1)},
			wantErr: ingredient.ErrInvalidMovementType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := ingredient.NewMockRepository(ctrl)

			if tt.wantRepo {
				repo.EXPECT().
					AddMovement(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, mv *ingredient.StockMovement) error {
						assert.Equal(t, id, mv.IngredientID)
						assert.Equal(t, tt.params.Type, mv.Type)
						assert.True(t, tt.params.Quantity.Equal(mv.Quantity))
						return nil
					})
			}

			got, err := ingredient.NewService(repo).AdjustStock(context.Background(), tt.params)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.params.Type, got.Type)
		})
	}
}

func TestIngredient_LowStock(t *testing.T) {
	tests := []struct {
		name  string
		stock int64
		min   int64
		want  bool
	}{
		{name: "Below", stock: 2, min: 5, want: true},
		{name: "AtMinimum", stock: 5, min: 5, want: true},
		{name: "Above", stock: 6, min: 5, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ing := &ingredient.Ingredient{
				CurrentStock: decimal.NewFromInt(tt.stock),
				MinStock:     decimal.NewFromInt(tt.min),
			}
			assert.Equal(t, tt.want, ing.LowStock())
		})
	}
}
