package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/fornada/fornada/internal/config"
	"github.com/fornada/fornada/internal/customer"
	customerStore "github.com/fornada/fornada/internal/customer/store"
	"github.com/fornada/fornada/internal/dashboard"
	dashboardStore "github.com/fornada/fornada/internal/dashboard/store"
	"github.com/fornada/fornada/internal/database"
	"github.com/fornada/fornada/internal/exchange"
	exchangeStore "github.com/fornada/fornada/internal/exchange/store"
	"github.com/fornada/fornada/internal/export"
	"github.com/fornada/fornada/internal/finance"
	financeStore "github.com/fornada/fornada/internal/finance/store"
	fornadaHttp "github.com/fornada/fornada/internal/http"
	customerHandler "github.com/fornada/fornada/internal/http/customer"
	dashboardHandler "github.com/fornada/fornada/internal/http/dashboard"
	exchangeHandler "github.com/fornada/fornada/internal/http/exchange"
	exportHandler "github.com/fornada/fornada/internal/http/export"
	financeHandler "github.com/fornada/fornada/internal/http/finance"
	importHandler "github.com/fornada/fornada/internal/http/importer"
	ingredientHandler "github.com/fornada/fornada/internal/http/ingredient"
	matchingHandler "github.com/fornada/fornada/internal/http/matching"
	productionHandler "github.com/fornada/fornada/internal/http/production"
	purchaseHandler "github.com/fornada/fornada/internal/http/purchase"
	recipeHandler "github.com/fornada/fornada/internal/http/recipe"
	saleHandler "github.com/fornada/fornada/internal/http/sale"
	supplierHandler "github.com/fornada/fornada/internal/http/supplier"
	"github.com/fornada/fornada/internal/importer"
	importerStore "github.com/fornada/fornada/internal/importer/store"
	"github.com/fornada/fornada/internal/ingredient"
	ingredientStore "github.com/fornada/fornada/internal/ingredient/store"
	"github.com/fornada/fornada/internal/invoice"
	"github.com/fornada/fornada/internal/matching"
	"github.com/fornada/fornada/internal/ocr"
	"github.com/fornada/fornada/internal/production"
	productionStore "github.com/fornada/fornada/internal/production/store"
	"github.com/fornada/fornada/internal/purchase"
	purchaseStore "github.com/fornada/fornada/internal/purchase/store"
	"github.com/fornada/fornada/internal/recipe"
	recipeStore "github.com/fornada/fornada/internal/recipe/store"
	"github.com/fornada/fornada/internal/sale"
	saleStore "github.com/fornada/fornada/internal/sale/store"
	"github.com/fornada/fornada/internal/supplier"
	supplierStore "github.com/fornada/fornada/internal/supplier/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Log.Level})))

	db, err := database.New(cfg.ConnectionString(), cfg.Pool())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if cfg.DB.Migrate {
		if err := database.Migrate(context.Background(), db); err != nil {
			slog.Error("failed to migrate database", "error", err)
			os.Exit(1)
		}
	}

	patterns, err := invoice.CompilePatterns(cfg.OCR.TaxIDPattern, cfg.OCR.NFePattern)
	if err != nil {
		slog.Error("failed to compile OCR patterns", "error", err)
		os.Exit(1)
	}

	if cfg.OCR.APIKey == "" {
		slog.Warn("OCR_SPACE_API_KEY is not set, scanned invoices will fail to import")
	}

	var (
		matcher   = matching.NewMatcher(cfg.Match.Threshold)
		ocrClient = ocr.NewClient(cfg.OCR.APIKey, cfg.OCR.Timeout,
			ocr.WithURL(cfg.OCR.URL), ocr.WithLanguage(cfg.OCR.Language))
	)

	slog.Info("matcher configured", "threshold", matcher.Threshold())

	var (
		supplierService   = supplier.NewService(supplierStore.New(db))
		ingredientService = ingredient.NewService(ingredientStore.New(db))
		recipeService     = recipe.NewService(recipeStore.New(db))
		productionService = production.NewService(productionStore.New(db))
		saleService       = sale.NewService(saleStore.New(db))
		purchaseService   = purchase.NewService(purchaseStore.New(db))
		financeService    = finance.NewService(financeStore.New(db))
		customerService   = customer.NewService(customerStore.New(db), saleService, financeService)
		exchangeService   = exchange.NewService(exchangeStore.New(db))
		dashboardService  = dashboard.NewService(dashboardStore.New(db))
		exportService     = export.NewService(financeService)
		importService     = importer.NewService(importerStore.New(db), supplierService, ingredientService,
			purchaseService, ocrClient, matcher, patterns)
	)

	router := fornadaHttp.New(fornadaHttp.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		JWTSecret:      cfg.Auth.JWTSecret,
		Timeout:        cfg.Server.Timeout,
	}, fornadaHttp.Handlers{
		Suppliers:   supplierHandler.NewHandler(supplierService),
		Ingredients: ingredientHandler.NewHandler(ingredientService),
		Recipes:     recipeHandler.NewHandler(recipeService),
		Production:  productionHandler.NewHandler(productionService),
		Customers:   customerHandler.NewHandler(customerService),
		Sales:       saleHandler.NewHandler(saleService),
		Purchases:   purchaseHandler.NewHandler(purchaseService),
		Exchanges:   exchangeHandler.NewHandler(exchangeService),
		Finance:     financeHandler.NewHandler(financeService),
		Dashboard:   dashboardHandler.NewHandler(dashboardService),
		Import:      importHandler.NewHandler(importService),
		Matching:    matchingHandler.NewHandler(matcher, supplierService, ingredientService),
		Export:      exportHandler.NewHandler(exportService),
	})

	if cfg.Auth.JWTSecret == "" {
		slog.Warn("AUTH_JWT_SECRET is not set, API requests are not authenticated")
	}

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
