package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bijou-shop/bijou-api/internal/app"
	"github.com/bijou-shop/bijou-api/internal/cart"
	"github.com/bijou-shop/bijou-api/internal/catalog"
	"github.com/bijou-shop/bijou-api/internal/contact"
	"github.com/bijou-shop/bijou-api/internal/newsletter"
	"github.com/bijou-shop/bijou-api/internal/observability"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	seed, err := catalog.LoadSeed(cfg.PublicBaseURL)
	if err != nil {
		logger.Error("load catalog seed", slog.Any("error", err))
		os.Exit(1)
	}
	catalogRepo, err := catalog.NewMemoryRepository(seed)
	if err != nil {
		logger.Error("build catalog", slog.Any("error", err))
		os.Exit(1)
	}
	catalogService := catalog.NewService(catalogRepo)
	catalogHandler := catalog.NewHandler(logger, catalogService)

	newsletterService := newsletter.NewService()
	newsletterHandler := newsletter.NewHandler(logger, newsletterService)

	contactService := contact.NewService()
	contactHandler := contact.NewHandler(logger, contactService)

	cartService := cart.NewService(catalogService)
	cartHandler := cart.NewHandler(logger, cartService)

	metrics := observability.NewMetrics()

	router := app.NewRouter(app.RouterParams{
		Logger:            logger,
		Config:            cfg,
		CatalogHandler:    catalogHandler,
		NewsletterHandler: newsletterHandler,
		ContactHandler:    contactHandler,
		CartHandler:       cartHandler,
		Metrics:           metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server",
			slog.String("addr", cfg.AppAddr),
			slog.Int("products", len(seed)),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
