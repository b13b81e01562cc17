package exchange_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fornada/fornada/internal/exchange"
)

func TestService_Create_DropsInvalidItems(t *testing.T) {
	bread, cake := uuid.New(), uuid.New()

	ctrl := gomock.NewController(t)
	repo := exchange.NewMockRepository(ctrl)

	repo.EXPECT().
		CreateExchange(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *exchange.Exchange) error {
			assert.Equal(t, exchange.StatusPending, e.Status)
			assert.False(t, e.ExchangeDate.IsZero())
			require.Len(t, e.Items, 1)
			assert.Equal(t, bread, e.Items[0].RecipeID)
			return nil
		})

	_, err := exchange.NewService(repo).Create(context.Background(), exchange.CreateParams{
		Reason:      "produto amassado",
		TotalRefund: decimal.NewFromInt(9),
		Items: []exchange.ItemParams{
			{RecipeID: bread, Quantity: decimal.NewFromInt(12)},
			{RecipeID: cake, Quantity: decimal.Zero},
			{RecipeID: uuid.Nil, Quantity: decimal.NewFromInt(1)},
			{RecipeID: cake, Quantity: decimal.NewFromInt(-2)},
		},
	})
	require.NoError(t, err)
}

func TestService_Create_NegativeRefund(t *testing.T) {
	_, err := exchange.NewService(nil).Create(context.Background(), exchange.CreateParams{
		TotalRefund: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, exchange.ErrInvalidRefund)
}

func TestService_Process(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
	}{
		{name: "Pending"},
		{name: "AlreadyProcessed", repoErr: exchange.ErrInvalidStatus},
		{name: "Missing", repoErr: exchange.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := exchange.NewMockRepository(ctrl)
			id := uuid.New()

			repo.EXPECT().UpdateStatus(gomock.Any(), id, exchange.StatusPending, exchange.StatusProcessed).Return(tt.repoErr)

			err := exchange.NewService(repo).Process(context.Background(), id)
			if tt.repoErr != nil {
				assert.ErrorIs(t, err, tt.repoErr)
				return
			}

			require.NoError(t, err)
		})
	}
}
