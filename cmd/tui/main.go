package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/fornada/fornada/cmd/tui/internal/view"
	"github.com/fornada/fornada/internal/config"
	"github.com/fornada/fornada/internal/database"
	"github.com/fornada/fornada/internal/export"
	"github.com/fornada/fornada/internal/finance"
	financeStore "github.com/fornada/fornada/internal/finance/store"
	"github.com/fornada/fornada/internal/importer"
	importerStore "github.com/fornada/fornada/internal/importer/store"
	"github.com/fornada/fornada/internal/ingredient"
	ingredientStore "github.com/fornada/fornada/internal/ingredient/store"
	"github.com/fornada/fornada/internal/invoice"
	"github.com/fornada/fornada/internal/matching"
	"github.com/fornada/fornada/internal/ocr"
	"github.com/fornada/fornada/internal/purchase"
	purchaseStore "github.com/fornada/fornada/internal/purchase/store"
	"github.com/fornada/fornada/internal/supplier"
	supplierStore "github.com/fornada/fornada/internal/supplier/store"
)

type model struct {
	supplierService   *supplier.Service
	ingredientService *ingredient.Service
	purchaseService   *purchase.Service
	importService     *importer.Service
	exportService     *export.Service

	currentView View

	importView    view.ImportModel
	purchasesView view.PurchasesModel
	stockView     view.StockModel
	exportView    view.ExportModel
}

type View int

const (
	ViewMenu      View = 0
	ViewImport    View = 1
	ViewPurchases View = 2
	ViewStock     View = 3
	ViewExport    View = 4
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString(), cfg.Pool())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	patterns, err := invoice.CompilePatterns(cfg.OCR.TaxIDPattern, cfg.OCR.NFePattern)
	if err != nil {
		slog.Error("failed to compile OCR patterns", "error", err)
		os.Exit(1)
	}

	ocrClient := ocr.NewClient(cfg.OCR.APIKey, cfg.OCR.Timeout,
		ocr.WithURL(cfg.OCR.URL), ocr.WithLanguage(cfg.OCR.Language))

	supSvc := supplier.NewService(supplierStore.New(db))
	ingSvc := ingredient.NewService(ingredientStore.New(db))
	purSvc := purchase.NewService(purchaseStore.New(db))
	impSvc := importer.NewService(importerStore.New(db), supSvc, ingSvc, purSvc,
		ocrClient, matching.NewMatcher(cfg.Match.Threshold), patterns)
	expSvc := export.NewService(finance.NewService(financeStore.New(db)))

	return model{
		supplierService:   supSvc,
		ingredientService: ingSvc,
		purchaseService:   purSvc,
		importService:     impSvc,
		exportService:     expSvc,
		currentView:       ViewMenu,
		importView:        view.NewImportModel(impSvc, supSvc, ingSvc),
		purchasesView:     view.NewPurchasesModel(purSvc),
		stockView:         view.NewStockModel(ingSvc),
		exportView:        view.NewExportModel(expSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewImport
				m.importView = view.NewImportModel(m.importService, m.supplierService, m.ingredientService)

				return m, m.importView.Init()
			case "2":
				m.currentView = ViewPurchases
				m.purchasesView = view.NewPurchasesModel(m.purchaseService)

				return m, m.purchasesView.Init()
			case "3":
				m.currentView = ViewStock
				m.stockView = view.NewStockModel(m.ingredientService)

				return m, m.stockView.Init()
			case "4":
				m.currentView = ViewExport
				m.exportView = view.NewExportModel(m.exportService)

				return m, m.exportView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewImport:
		var newModel tea.Model
		newModel, cmd = m.importView.Update(msg)
		m.importView = newModel.(view.ImportModel)
	case ViewPurchases:
		var newModel tea.Model
		newModel, cmd = m.purchasesView.Update(msg)
		m.purchasesView = newModel.(view.PurchasesModel)
	case ViewStock:
		var newModel tea.Model
		newModel, cmd = m.stockView.Update(msg)
		m.stockView = newModel.(view.StockModel)
	case ViewExport:
		var newModel tea.Model
		newModel, cmd = m.exportView.Update(msg)
		m.exportView = newModel.(view.ExportModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Fornada\n\n" +
				"1. Import Invoice\n" +
				"2. Purchases\n" +
				"3. Stock\n" +
				"4. Export Financial Report\n\n" +
				"q. Quit",
		)
	case ViewImport:
		return m.importView.View()
	case ViewPurchases:
		return m.purchasesView.View()
	case ViewStock:
		return m.stockView.View()
	case ViewExport:
		return m.exportView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
