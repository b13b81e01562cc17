package customer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fornada/fornada/internal/customer"
	"github.com/fornada/fornada/internal/finance"
	"github.com/fornada/fornada/internal/sale"
)

type mocks struct {
	repo        *customer.MockRepository
	sales       *customer.MockSalesLister
	receivables *customer.MockReceivablesLister
}

func newService(t *testing.T) (*customer.Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		repo:        customer.NewMockRepository(ctrl),
		sales:       customer.NewMockSalesLister(ctrl),
		receivables: customer.NewMockReceivablesLister(ctrl),
	}

	return customer.NewService(m.repo, m.sales, m.receivables), m
}

func TestService_List_TrimsSearch(t *testing.T) {
	svc, m := newService(t)
	m.repo.EXPECT().ListCustomers(gomock.Any(), "maria").Return([]*customer.Customer{{Name: "Maria"}}, nil)

	got, err := svc.List(context.Background(), "  maria ")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestService_Create(t *testing.T) {
	tests := []struct {
		name    string
		params  customer.Params
		setup   func(m mocks)
		wantErr error
	}{
		{
			name:   "Success",
			params: customer.Params{Name: " Maria Souza ", Phone: " 11 99999-0000 "},
			setup: func(m mocks) {
				m.repo.EXPECT().
					CreateCustomer(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *customer.Customer) error {
						assert.Equal(t, "Maria Souza", c.Name)
						assert.Equal(t, "11 99999-0000", c.Phone)
						return nil
					})
			},
		},
		{
			name:    "NameRequired",
			params:  customer.Params{Email: "a@b.c"},
			wantErr: customer.ErrNameRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			if tt.setup != nil {
				tt.setup(m)
			}

			_, err := svc.Create(context.Background(), tt.params)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestService_Details(t *testing.T) {
	id := uuid.New()

	t.Run("Success", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().GetCustomer(gomock.Any(), id).Return(&customer.Customer{ID: id, Name: "Maria"}, nil)
		m.sales.EXPECT().
			List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f sale.ListFilter) ([]*sale.Sale, error) {
				require.NotNil(t, f.CustomerID)
				assert.Equal(t, id, *f.CustomerID)
				return []*sale.Sale{{ID: uuid.New()}}, nil
			})
		m.receivables.EXPECT().CustomerReceivables(gomock.Any(), id).Return([]*finance.Receivable{{}, {}}, nil)

		d, err := svc.Details(context.Background(), id)
		require.NoError(t, err)

		assert.Equal(t, "Maria", d.Name)
		assert.Len(t, d.Sales, 1)
		assert.Len(t, d.Receivables, 2)
	})

	t.Run("NotFound", func(t *testing.T) {
		svc, m := newService(t)
		m.repo.EXPECT().GetCustomer(gomock.Any(), id).Return(nil, customer.ErrNotFound)

		_, err := svc.Details(context.Background(), id)
		assert.ErrorIs(t, err, customer.ErrNotFound)
	})

	t.Run("SalesError", func(t *testing.T) {
		svc, m := newService(t)
		m.repo.EXPECT().GetCustomer(gomock.Any(), id).Return(&customer.Customer{ID: id}, nil)
		m.sales.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))

		_, err := svc.Details(context.Background(), id)
		assert.EqualError(t, err, "listing customer sales: db error")
	})
}
