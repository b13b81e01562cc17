package supplier_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fornada/fornada/internal/supplier"
)

func TestService_Create(t *testing.T) {
	tests := []struct {
		name     string
		params   supplier.CreateParams
		repoErr  error
		wantName string
		wantCNPJ string
		wantErr  error
	}{
		{
			name:     "TrimsFields",
			params:   supplier.CreateParams{Name: "  Moinho Paulista ", CNPJ: " 12.345.678/0001-99 "},
			wantName: "Moinho Paulista",
			wantCNPJ: "12.345.678/0001-99",
		},
		{
			name:     "BlankNameFallsBackToDefault",
			params:   supplier.CreateParams{Name: "   "},
			wantName: supplier.DefaultName,
		},
		{
			name:    "DuplicateCNPJ",
			params:  supplier.CreateParams{Name: "Laticínios Serra", CNPJ: "12345678000199"},
			repoErr: supplier.ErrDuplicate,
			wantErr: supplier.ErrDuplicate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := supplier.NewMockRepository(ctrl)

			repo.EXPECT().
				CreateSupplier(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, s *supplier.Supplier) error {
					if tt.wantErr == nil {
						assert.Equal(t, tt.wantName, s.Name)
						assert.Equal(t, tt.wantCNPJ, s.CNPJ)
					}

					return tt.repoErr
				})

			got, err := supplier.NewService(repo).Create(context.Background(), tt.params)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantName, got.Name)
		})
	}
}

func TestNormalizeTaxID(t *testing.T) {
	assert.Equal(t, "12345678000199", supplier.NormalizeTaxID("12.345.678/0001-99"))
	assert.Equal(t, "12345678000199", supplier.NormalizeTaxID("12345678000199"))
	assert.Empty(t, supplier.NormalizeTaxID("sem CNPJ"))
}
