package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/fornada/fornada/internal/http/auth"
	"github.com/fornada/fornada/internal/http/customer"
	"github.com/fornada/fornada/internal/http/dashboard"
	"github.com/fornada/fornada/internal/http/exchange"
	"github.com/fornada/fornada/internal/http/export"
	"github.com/fornada/fornada/internal/http/finance"
	"github.com/fornada/fornada/internal/http/importer"
	"github.com/fornada/fornada/internal/http/ingredient"
	"github.com/fornada/fornada/internal/http/matching"
	"github.com/fornada/fornada/internal/http/production"
	"github.com/fornada/fornada/internal/http/purchase"
	"github.com/fornada/fornada/internal/http/recipe"
	"github.com/fornada/fornada/internal/http/sale"
	"github.com/fornada/fornada/internal/http/supplier"
)

type Options struct {
	AllowedOrigins []string
	JWTSecret      string
	Timeout        time.Duration
}

type Handlers struct {
	Suppliers   *supplier.Handler
	Ingredients *ingredient.Handler
	Recipes     *recipe.Handler
	Production  *production.Handler
	Customers   *customer.Handler
	Sales       *sale.Handler
	Purchases   *purchase.Handler
	Exchanges   *exchange.Handler
	Finance     *finance.Handler
	Dashboard   *dashboard.Handler
	Import      *importer.Handler
	Matching    *matching.Handler
	Export      *export.Handler
}

func New(opts Options, h Handlers) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(auth.Middleware(opts.JWTSecret))

		// Uploads go through OCR, which has its own client timeout.
		r.Route("/import", h.Import.Routes)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(opts.Timeout))

			r.Route("/matching", h.Matching.Routes)
			r.Route("/dashboard", h.Dashboard.Routes)
			r.Route("/export", h.Export.Routes)

			r.Group(func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))

				r.Route("/suppliers", h.Suppliers.Routes)
				r.Route("/ingredients", h.Ingredients.Routes)
				r.Route("/recipes", h.Recipes.Routes)
				r.Route("/productions", h.Production.Routes)
				r.Route("/customers", h.Customers.Routes)
				r.Route("/sales", h.Sales.Routes)
				r.Route("/purchases", h.Purchases.Routes)
				r.Route("/exchanges", h.Exchanges.Routes)
				r.Route("/finance", h.Finance.Routes)
			})
		})
	})

	return router
}
