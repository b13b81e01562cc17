package purchase_test

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

	"github.com/fornada/fornada/internal/purchase"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestService_Create(t *testing.T) {
	supplierID := uuid.New()
	flour := uuid.New()
	yeast := uuid.New()

	type args struct {
		params purchase.CreateParams
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *purchase.MockRepository)
		wantTotal string
		wantErr   error
	}

	tests := []testCase{
		{
			name: "SumsItemTotals",
			args: args{params: purchase.CreateParams{
				SupplierID: supplierID,
				Items: []purchase.ItemParams{
					{IngredientID: flour, Quantity: dec("4"), UnitPrice: dec("89.90")},
					{IngredientID: yeast, Quantity: dec("10"), UnitPrice: dec("7.25"), TotalPrice: new(dec("70.00"))},
				},
			}},
			setupMock: func(m *purchase.MockRepository) {
				m.EXPECT().
					CreatePurchase(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *purchase.Purchase) error {
						assert.Equal(t, purchase.StatusPending, p.Status)
						assert.Len(t, p.Items, 2)
						assert.False(t, p.PurchaseDate.IsZero())
						p.ID = uuid.New()
						return nil
					})
			},
			wantTotal: "429.60",
		},
		{
			name: "ExplicitTotalWins",
			args: args{params: purchase.CreateParams{
				SupplierID:  supplierID,
				Items:       []purchase.ItemParams{{IngredientID: flour, Quantity: dec("1"), UnitPrice: dec("10")}},
				TotalAmount: new(dec("55.00")),
			}},
			setupMock: func(m *purchase.MockRepository) {
				m.EXPECT().CreatePurchase(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantTotal: "55.00",
		},
		{
			name:    "NoItems",
			args:    args{params: purchase.CreateParams{SupplierID: supplierID}},
			wantErr: purchase.ErrNoItems,
		},
		{
			name: "RepoError",
			args: args{params: purchase.CreateParams{
				SupplierID: supplierID,
				Items:      []purchase.ItemParams{{IngredientID: flour, Quantity: dec("1"), UnitPrice: dec("1")}},
			}},
			setupMock: func(m *purchase.MockRepository) {
				m.EXPECT().CreatePurchase(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			repo := purchase.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := purchase.NewService(repo)
			got, err := svc.Create(context.Background(), tt.args.params)

			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.True(t, dec(tt.wantTotal).Equal(got.TotalAmount), "total %s", got.TotalAmount)
		})
	}
}

func TestService_Confirm(t *testing.T) {
	id := uuid.New()

	pending := func() *purchase.Purchase {
		return &purchase.Purchase{
			ID:     id,
			Status: purchase.StatusPending,
			Items: []*purchase.Item{
				{ID: uuid.New(), PurchaseID: id, IngredientID: uuid.New(), Quantity: dec("2"), UnitPrice: dec("5")},
				{ID: uuid.New(), PurchaseID: id, IngredientID: uuid.New(), Quantity: dec("1"), UnitPrice: dec("3")},
			},
		}
	}

	type testCase struct {
		name      string
		setupMock func(m *purchase.MockRepository, tx *purchase.MockUpdateTx)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			setupMock: func(m *purchase.MockRepository, tx *purchase.MockUpdateTx) {
				m.EXPECT().BeginUpdate(gomock.Any()).Return(tx, nil)
				gomock.InOrder(
					tx.EXPECT().GetPurchaseForUpdate(gomock.Any(), id).Return(pending(), nil),
					tx.EXPECT().ReceiveItem(gomock.Any(), gomock.Any()).Return(nil).Times(2),
					tx.EXPECT().SetStatus(gomock.Any(), id, purchase.StatusConfirmed).Return(nil),
					tx.EXPECT().Commit().Return(nil),
				)
				tx.EXPECT().Rollback().Return(nil)
			},
		},
		{
			name: "AlreadyConfirmed",
			setupMock: func(m *purchase.MockRepository, tx *purchase.MockUpdateTx) {
				p := pending()
				p.Status = purchase.StatusConfirmed

				m.EXPECT().BeginUpdate(gomock.Any()).Return(tx, nil)
				tx.EXPECT().GetPurchaseForUpdate(gomock.Any(), id).Return(p, nil)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantErr: purchase.ErrInvalidStatus,
		},
		{
			name: "ItemFailureRollsBack",
			setupMock: func(m *purchase.MockRepository, tx *purchase.MockUpdateTx) {
				m.EXPECT().BeginUpdate(gomock.Any()).Return(tx, nil)
				tx.EXPECT().GetPurchaseForUpdate(gomock.Any(), id).Return(pending(), nil)
				tx.EXPECT().ReceiveItem(gomock.Any(), gomock.Any()).Return(errors.New("stock error"))
				tx.EXPECT().Rollback().Return(nil)
			},
			wantErr: errors.New("stock error"),
		},
		{
			name: "NotFound",
			setupMock: func(m *purchase.MockRepository, tx *purchase.MockUpdateTx) {
				m.EXPECT().BeginUpdate(gomock.Any()).Return(tx, nil)
				tx.EXPECT().GetPurchaseForUpdate(gomock.Any(), id).Return(nil, purchase.ErrNotFound)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantErr: purchase.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			repo := purchase.NewMockRepository(ctrl)
			tx := purchase.NewMockUpdateTx(ctrl)
			tt.setupMock(repo, tx)

			svc := purchase.NewService(repo)
			got, err := svc.Confirm(context.Background(), id)

			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, purchase.ErrInvalidStatus) || errors.Is(tt.wantErr, purchase.ErrNotFound) {
					assert.ErrorIs(t, err, tt.wantErr)
				} else {
					assert.Contains(t, err.Error(), tt.wantErr.Error())
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, purchase.StatusConfirmed, got.Status)
		})
	}
}

func TestService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	id := uuid.New()

	repo := purchase.NewMockRepository(ctrl)
	tx := purchase.NewMockUpdateTx(ctrl)

	repo.EXPECT().BeginUpdate(gomock.Any()).Return(tx, nil)
	tx.EXPECT().GetPurchaseForUpdate(gomock.Any(), id).Return(&purchase.Purchase{ID: id, Status: purchase.StatusPending}, nil)
	tx.EXPECT().SetStatus(gomock.Any(), id, purchase.StatusCancelled).Return(nil)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	got, err := purchase.NewService(repo).Cancel(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, purchase.StatusCancelled, got.Status)
}

func TestAverageCost(t *testing.T) {
	tests := []struct {
		name                        string
		stock, cost, qty, unitPrice string
		want                        string
	}{
		{name: "EmptyStockTakesBatchPrice", stock: "0", cost: "0", qty: "10", unitPrice: "4.50", want: "4.5"},
		{name: "Weighted", stock: "10", cost: "4", qty: "10", unitPrice: "6", want: "5"},
		{name: "NegativeStockIgnored", stock: "-3", cost: "9", qty: "2", unitPrice: "7", want: "7"},
		{name: "ZeroQuantityKeepsCost", stock: "0", cost: "3.2", qty: "0", unitPrice: "99", want: "3.2"},
		{name: "Rounded", stock: "1", cost: "1", qty: "2", unitPrice: "1.5", want: "1.3333"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := purchase.AverageCost(dec(tt.stock), dec(tt.cost), dec(tt.qty), dec(tt.unitPrice))
			assert.True(t, dec(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestService_Build_DefaultsDate(t *testing.T) {
	svc := purchase.NewService(nil)

	p := svc.Build(purchase.CreateParams{PurchaseDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)})
	assert.Equal(t, 2024, p.PurchaseDate.Year())
	assert.True(t, p.TotalAmount.IsZero())
	assert.Empty(t, p.Items)
}
