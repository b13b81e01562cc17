package export_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/fornada/fornada/internal/export"
	"github.com/fornada/fornada/internal/finance"
)

type reportFunc func(ctx context.Context, start, end time.Time) (*finance.Report, error)

func (f reportFunc) Report(ctx context.Context, start, end time.Time) (*finance.Report, error) {
	return f(ctx, start, end)
}

func TestService_FinancialReportXLSX(t *testing.T) {
	start := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.May, 31, 0, 0, 0, 0, time.UTC)
	paid := time.Date(2024, time.May, 10, 14, 0, 0, 0, time.UTC)
	received := time.Date(2024, time.May, 12, 9, 0, 0, 0, time.UTC)

	report := &finance.Report{
		Start: start,
		End:   end,
		Payments: []*finance.Payable{{
			SupplierName: "Moinho Dias Branco",
			Description:  "Farinha de trigo",
			Amount:       decimal.RequireFromString("389.60"),
			DueDate:      paid,
			PaidDate:     &paid,
		}},
		Receipts: []*finance.Receivable{{
			CustomerName:  "Café da Esquina",
			Description:   "Pães maio",
			Amount:        decimal.RequireFromString("1200.00"),
			DueDate:       received,
			ReceivedDate:  &received,
			PaymentMethod: finance.MethodPix,
		}},
		TotalPaid:     decimal.RequireFromString("389.60"),
		TotalReceived: decimal.RequireFromString("1200.00"),
	}

	svc := export.NewService(reportFunc(func(_ context.Context, s, e time.Time) (*finance.Report, error) {
		assert.Equal(t, start, s)
		assert.Equal(t, end, e)
		return report, nil
	}))

	var buf bytes.Buffer
	require.NoError(t, svc.FinancialReportXLSX(context.Background(), start, end, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Pagamentos", "Recebimentos", "Resumo"}, f.GetSheetList())

	payments, err := f.GetRows("Pagamentos")
	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, []string{"10/05/2024", "10/05/2024", "Moinho Dias Branco", "Farinha de trigo", "389.6"}, payments[1])

	receipts, err := f.GetRows("Recebimentos")
	require.NoError(t, err)
	require.Len(t, receipts, 2)
	assert.Equal(t, "pix", receipts[1][4])

	net, err := f.GetCellValue("Resumo", "B4")
	require.NoError(t, err)
	assert.Equal(t, "810.4", net)

	period, err := f.GetCellValue("Resumo", "B1")
	require.NoError(t, err)
	assert.Equal(t, "01/05/2024 a 31/05/2024", period)
}

func TestService_FinancialReportXLSX_ReportError(t *testing.T) {
	svc := export.NewService(reportFunc(func(context.Context, time.Time, time.Time) (*finance.Report, error) {
		return nil, finance.ErrInvalidRange
	}))

	var buf bytes.Buffer
	err := svc.FinancialReportXLSX(context.Background(), time.Now(), time.Now().AddDate(0, 0, -1), &buf)
	assert.True(t, errors.Is(err, finance.ErrInvalidRange))
	assert.Zero(t, buf.Len())
}
