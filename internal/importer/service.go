package importer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fornada/fornada/internal/encoding"
	"github.com/fornada/fornada/internal/ingredient"
	"github.com/fornada/fornada/internal/invoice"
	"github.com/fornada/fornada/internal/matching"
	"github.com/fornada/fornada/internal/purchase"
	"github.com/fornada/fornada/internal/supplier"
)

var (
	ErrNothingToImport = errors.New("invoice has no lines")
	// ErrTextExtraction wraps failures of the OCR service.
	ErrTextExtraction = errors.New("text extraction failed")
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=importer
type Repository interface {
	// BeginConfirm opens a transaction serialised with other confirmations
	// for the same supplier key.
	BeginConfirm(ctx context.Context, supplierKey string) (ConfirmTx, error)
}

type ConfirmTx interface {
	FindSupplierByTaxID(ctx context.Context, taxID string) (*supplier.Supplier, error)
	CreateSupplier(ctx context.Context, s *supplier.Supplier) error
	CreatePurchase(ctx context.Context, p *purchase.Purchase) error
	Commit() error
	Rollback() error
}

type SupplierLister interface {
	List(ctx context.Context) ([]*supplier.Supplier, error)
}

type IngredientLister interface {
	List(ctx context.Context) ([]*ingredient.Ingredient, error)
}

// TextExtractor recognises the text of scanned documents.
type TextExtractor interface {
	Extract(ctx context.Context, filename string, r io.Reader) (string, error)
}

type Service struct {
	repo        Repository
	suppliers   SupplierLister
	ingredients IngredientLister
	purchases   *purchase.Service
	ocr         TextExtractor
	matcher     *matching.Matcher
	patterns    invoice.Patterns
}

func NewService(
	repo Repository,
	suppliers SupplierLister,
	ingredients IngredientLister,
	purchases *purchase.Service,
	ocr TextExtractor,
	matcher *matching.Matcher,
	patterns invoice.Patterns,
) *Service {
	return &Service{
		repo:        repo,
		suppliers:   suppliers,
		ingredients: ingredients,
		purchases:   purchases,
		ocr:         ocr,
		matcher:     matcher,
		patterns:    patterns,
	}
}

// Parse reads an uploaded invoice into a draft. XML invoices carry lines;
// PDFs and images only yield hints and a blank line for manual entry.
func (s *Service) Parse(ctx context.Context, filename string, data []byte) (*Draft, error) {
	kind := invoice.Detect(data, filename)

	var (
		draft *Draft
		err   error
	)

	switch kind {
	case invoice.KindXML:
		draft, err = s.parseXML(data)
	case invoice.KindPDF, invoice.KindImage:
		draft, err = s.parseScan(ctx, kind, filename, data)
	default:
		return nil, invoice.ErrUnsupportedFile
	}

	if err != nil {
		return nil, err
	}

	if err := s.Match(ctx, draft); err != nil {
		return nil, err
	}

	return draft, nil
}

func (s *Service) parseXML(data []byte) (*Draft, error) {
	doc, err := invoice.ParseNFe(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	draft := &Draft{
		Source:        invoice.KindXML,
		SupplierName:  doc.SupplierName,
		SupplierTaxID: doc.SupplierTaxID,
		Number:        doc.Number,
	}

	for _, l := range doc.Lines {
		draft.Lines = append(draft.Lines, &DraftLine{Line: l})
	}

	return draft, nil
}

func (s *Service) parseScan(ctx context.Context, kind invoice.Kind, filename string, data []byte) (*Draft, error) {
	var text string

	if kind == invoice.KindPDF {
		t, err := invoice.PDFText(data)
		if err != nil {
			slog.Warn("pdf text extraction failed, falling back to OCR", "file", filename, "error", err)
		}

		text = t
	}

	if strings.TrimSpace(text) == "" {
		t, err := s.ocr.Extract(ctx, filename, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrTextExtraction, err)
		}

		text = t
	}

	text, err := encoding.DecodeText([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("decoding extracted text: %w", err)
	}

	hints := invoice.ExtractHints(text, s.patterns)

	return &Draft{
		Source:        kind,
		SupplierTaxID: hints.TaxID,
		Number:        hints.Number,
		RawText:       text,
		Lines:         []*DraftLine{blankLine()},
	}, nil
}

// Match resolves the supplier and every line against current records.
// Parse calls it; callers that edit a draft may call it again.
func (s *Service) Match(ctx context.Context, draft *Draft) error {
	suppliers, err := s.suppliers.List(ctx)
	if err != nil {
		return fmt.Errorf("listing suppliers: %w", err)
	}

	ingredients, err := s.ingredients.List(ctx)
	if err != nil {
		return fmt.Errorf("listing ingredients: %w", err)
	}

	draft.Supplier = s.matcher.ResolveSupplier(suppliers, draft.SupplierTaxID, draft.SupplierName)

	if len(draft.Lines) == 0 {
		draft.Lines = []*DraftLine{blankLine()}
	}

	for _, l := range draft.Lines {
		l.Ingredient = s.matcher.ResolveIngredient(ingredients, l.Description)
	}

	return nil
}

type ConfirmLine struct {
	Description  string
	IngredientID *uuid.UUID
	Quantity     decimal.Decimal
	UnitPrice    decimal.Decimal
	// TotalPrice defaults to Quantity * UnitPrice when nil.
	TotalPrice *decimal.Decimal
}

func (l ConfirmLine) total() decimal.Decimal {
	if l.TotalPrice != nil {
		return *l.TotalPrice
	}

	return l.Quantity.Mul(l.UnitPrice)
}

type ConfirmParams struct {
	// SupplierID selects an existing supplier. When nil, a supplier with the
	// same CNPJ is reused, otherwise a new one is created.
	SupplierID    *uuid.UUID
	SupplierName  string
	SupplierTaxID string
	NFeNumber     string
	Notes         string
	Lines         []ConfirmLine
}

type ConfirmResult struct {
	Purchase        *purchase.Purchase
	CreatedSupplier *supplier.Supplier
	// Skipped lines had no ingredient and were left out of the purchase.
	Skipped int
}

// Confirm persists the draft as a pending purchase. The supplier, the
// purchase and its items are written in a single transaction.
func (s *Service) Confirm(ctx context.Context, params ConfirmParams) (*ConfirmResult, error) {
	if len(params.Lines) == 0 {
		return nil, ErrNothingToImport
	}

	taxID := supplier.NormalizeTaxID(params.SupplierTaxID)

	// The lock only matters when ensureSupplier looks the CNPJ up. Without
	// one a new supplier is always created, so there is nothing to serialize.
	var lockKey string
	if params.SupplierID == nil {
		lockKey = taxID
	}

	tx, err := s.repo.BeginConfirm(ctx, lockKey)
	if err != nil {
		return nil, fmt.Errorf("begin confirm: %w", err)
	}
	defer tx.Rollback()

	result := &ConfirmResult{}

	supplierID, err := s.ensureSupplier(ctx, tx, params, taxID, result)
	if err != nil {
		return nil, err
	}

	var (
		items []purchase.ItemParams
		total = decimal.Zero
	)

	for _, l := range params.Lines {
		lineTotal := l.total()
		total = total.Add(lineTotal)

		if l.IngredientID == nil {
			result.Skipped++
			continue
		}

		items = append(items, purchase.ItemParams{
			IngredientID: *l.IngredientID,
			Quantity:     l.Quantity,
			UnitPrice:    l.UnitPrice,
			TotalPrice:   &lineTotal,
		})
	}

	p := s.purchases.Build(purchase.CreateParams{
		SupplierID:  supplierID,
		NFeNumber:   params.NFeNumber,
		Notes:       params.Notes,
		Items:       items,
		TotalAmount: &total,
	})

	if err := tx.CreatePurchase(ctx, p); err != nil {
		return nil, fmt.Errorf("create purchase: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit confirm: %w", err)
	}

	result.Purchase = p

	return result, nil
}

func (s *Service) ensureSupplier(ctx context.Context, tx ConfirmTx, params ConfirmParams, taxID string, result *ConfirmResult) (uuid.UUID, error) {
	if params.SupplierID != nil {
		return *params.SupplierID, nil
	}

	if taxID != "" {
		existing, err := tx.FindSupplierByTaxID(ctx, taxID)
		if err != nil {
			return uuid.Nil, fmt.Errorf("find supplier: %w", err)
		}

		if existing != nil {
			return existing.ID, nil
		}
	}

	name := strings.TrimSpace(params.SupplierName)
	if name == "" {
		name = supplier.DefaultName
	}

	sup := &supplier.Supplier{Name: name, CNPJ: strings.TrimSpace(params.SupplierTaxID)}
	if err := tx.CreateSupplier(ctx, sup); err != nil {
		return uuid.Nil, fmt.Errorf("create supplier: %w", err)
	}

	result.CreatedSupplier = sup

	return sup.ID, nil
}
