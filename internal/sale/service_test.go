package sale_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fornada/fornada/internal/sale"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestService_Create(t *testing.T) {
	bread, cake := uuid.New(), uuid.New()
	customer := uuid.New()

	type testCase struct {
		name      string
		params    sale.CreateParams
		setupMock func(m *sale.MockRepository)
		wantTotal string
		wantErr   error
	}

	tests := []testCase{
		{
			name: "SumsItems",
			params: sale.CreateParams{
				CustomerID: &customer,
				Items: []sale.ItemParams{
					{RecipeID: bread, Quantity: dec("12"), UnitPrice: dec("0.75")},
					{RecipeID: cake, Quantity: dec("1"), UnitPrice: dec("45"), TotalPrice: new(dec("40"))},
				},
			},
			setupMock: func(m *sale.MockRepository) {
				m.EXPECT().
					CreateSale(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, s *sale.Sale) error {
						assert.Equal(t, sale.StatusCompleted, s.Status)
						assert.Equal(t, &customer, s.CustomerID)
						assert.False(t, s.SaleDate.IsZero())
						require.Len(t, s.Items, 2)
						assert.True(t, dec("9").Equal(s.Items[0].TotalPrice))
						return nil
					})
			},
			wantTotal: "49",
		},
		{
			name:    "NoItems",
			wantErr: sale.ErrNoItems,
		},
		{
			name: "ZeroQuantity",
			params: sale.CreateParams{Items: []sale.ItemParams{
				{RecipeID: bread, Quantity: decimal.Zero, UnitPrice: dec("1")},
			}},
			wantErr: sale.ErrInvalidItem,
		},
		{
			name: "NegativePrice",
			params: sale.CreateParams{Items: []sale.ItemParams{
				{RecipeID: bread, Quantity: dec("1"), UnitPrice: dec("-1")},
			}},
			wantErr: sale.ErrInvalidItem,
		},
		{
			name: "RepoError",
			params: sale.CreateParams{Items: []sale.ItemParams{
				{RecipeID: bread, Quantity: dec("1"), UnitPrice: dec("1")},
			}},
			setupMock: func(m *sale.MockRepository) {
				m.EXPECT().CreateSale(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockRepo := sale.NewMockRepository(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(mockRepo)
			}

			got, err := sale.NewService(mockRepo).Create(context.Background(), tt.params)
			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.wantErr.Error(), err.Error())

				return
			}

			require.NoError(t, err)
			assert.True(t, dec(tt.wantTotal).Equal(got.TotalAmount), got.TotalAmount.String())
		})
	}
}

func TestService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := sale.NewMockRepository(ctrl)
	id := uuid.New()

	mockRepo.EXPECT().
		UpdateStatus(gomock.Any(), id, sale.StatusCompleted, sale.StatusCancelled).
		Return(sale.ErrInvalidStatus)

	err := sale.NewService(mockRepo).Cancel(context.Background(), id)
	assert.ErrorIs(t, err, sale.ErrInvalidStatus)
}
