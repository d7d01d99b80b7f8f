package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/bijou-shop/bijou-api/internal/cart"
	"github.com/bijou-shop/bijou-api/internal/catalog"
	"github.com/bijou-shop/bijou-api/internal/contact"
	"github.com/bijou-shop/bijou-api/internal/newsletter"
	"github.com/bijou-shop/bijou-api/internal/observability"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger            *slog.Logger
	Config            *Config
	CatalogHandler    *catalog.Handler
	NewsletterHandler *newsletter.Handler
	ContactHandler    *contact.Handler
	CartHandler       *cart.Handler
	Metrics           *observability.Metrics
}

// NewRouter constructs the chi.Router with Bijou defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger: params.Logger,
		Config: params.Config,
	}) {
		r.Use(mw)
	}

	if params.Metrics != nil {
		r.Use(params.Metrics.Middleware)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/products", params.CatalogHandler.MountProductRoutes)
		r.Route("/categories", params.CatalogHandler.MountCategoryRoutes)
		if params.NewsletterHandler != nil {
			r.Route("/newsletter", params.NewsletterHandler.MountRoutes)
		}
		if params.ContactHandler != nil {
			r.Route("/contact", params.ContactHandler.MountRoutes)
		}
		if params.CartHandler != nil {
			r.Route("/cart", params.CartHandler.MountRoutes)
		}
	})

	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	return r
}
