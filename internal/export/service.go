package export

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/fornada/fornada/internal/finance"
)

const (
	sheetPayments = "Pagamentos"
	sheetReceipts = "Recebimentos"
	sheetSummary  = "Resumo"

	dateLayout = "02/01/2006"
)

// ReportSource builds the financial report for a date window.
type ReportSource interface {
	Report(ctx context.Context, start, end time.Time) (*finance.Report, error)
}

// Service renders financial reports as spreadsheets.
type Service struct {
	reports ReportSource
}

// NewService creates a new export Service.
func NewService(reports ReportSource) *Service {
	return &Service{reports: reports}
}

// FinancialReportXLSX writes the report for [start, end] to w as an XLSX workbook
// with one sheet for payments, one for receipts and a summary.
func (s *Service) FinancialReportXLSX(ctx context.Context, start, end time.Time, w io.Writer) error {
	report, err := s.reports.Report(ctx, start, end)
	if err != nil {
		return fmt.Errorf("building report: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetPayments); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	for _, name := range []string{sheetReceipts, sheetSummary} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("creating sheet %s: %w", name, err)
		}
	}

	payments := [][]any{{"Data", "Vencimento", "Fornecedor", "Descrição", "Valor"}}
	for _, p := range report.Payments {
		payments = append(payments, []any{
			formatDate(p.PaidDate), p.DueDate.Format(dateLayout), p.SupplierName, p.Description, p.Amount.InexactFloat64(),
		})
	}

	receipts := [][]any{{"Data", "Vencimento", "Cliente", "Descrição", "Forma de pagamento", "Valor"}}
	for _, r := range report.Receipts {
		receipts = append(receipts, []any{
			formatDate(r.ReceivedDate), r.DueDate.Format(dateLayout), r.CustomerName, r.Description,
			string(r.PaymentMethod), r.Amount.InexactFloat64(),
		})
	}

	summary := [][]any{
		{"Período", report.Start.Format(dateLayout) + " a " + report.End.Format(dateLayout)},
		{"Total recebido", report.TotalReceived.InexactFloat64()},
		{"Total pago", report.TotalPaid.InexactFloat64()},
		{"Saldo", report.Net().InexactFloat64()},
	}

	for sheet, rows := range map[string][][]any{
		sheetPayments: payments,
		sheetReceipts: receipts,
		sheetSummary:  summary,
	} {
		if err := writeRows(f, sheet, rows); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}

	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return fmt.Errorf("resolving cell: %w", err)
			}

			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("writing %s!%s: %w", sheet, cell, err)
			}
		}
	}

	return nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}

	return t.Format(dateLayout)
}
