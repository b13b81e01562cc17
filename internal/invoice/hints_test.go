package invoice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fornada/fornada/internal/invoice"
)

func TestExtractHints(t *testing.T) {
	tests := []struct {
		name string
		text string
		want invoice.Hints
	}{
		{
			name: "FormattedCNPJ",
			text: "MOINHO PAULISTA LTDA\nCNPJ: 12.345.678/0001-99\nNFe 000123456 Série 1",
			want: invoice.Hints{TaxID: "12.345.678/0001-99", Number: "000123456"},
		},
		{
			name: "BareDigits",
			text: "cnpj 12345678000199 nfe000987654",
			want: invoice.Hints{TaxID: "12345678000199", Number: "000987654"},
		},
		{
			name: "ShortNumberIgnored",
			text: "NFe 12345",
			want: invoice.Hints{},
		},
		{
			name: "FirstMatchWins",
			text: "11.111.111/0001-11 22.222.222/0002-22 NFe 111111 NFe 222222",
			want: invoice.Hints{TaxID: "11.111.111/0001-11", Number: "111111"},
		},
		{
			name: "Nothing",
			text: "",
			want: invoice.Hints{},
		},
	}

	patterns := invoice.DefaultPatterns()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, invoice.ExtractHints(tt.text, patterns))
		})
	}
}

func TestCompilePatterns(t *testing.T) {
	p, err := invoice.CompilePatterns(`CNPJ:(\d+)`, `Nota (\d+)`)
	require.NoError(t, err)

	got := invoice.ExtractHints("CNPJ:123 Nota 42", p)
	assert.Equal(t, "CNPJ:123", got.TaxID)
	assert.Equal(t, "42", got.Number)

	_, err = invoice.CompilePatterns(`(`, `x`)
	assert.Error(t, err)
}

func TestCompilePatterns_EmptyKeepsDefaults(t *testing.T) {
	p, err := invoice.CompilePatterns("", `Nota (\d+)`)
	require.NoError(t, err)

	got := invoice.ExtractHints("CNPJ 12.345.678/0001-99 Nota 42", p)
	assert.Equal(t, "12.345.678/0001-99", got.TaxID)
	assert.Equal(t, "42", got.Number)
}
