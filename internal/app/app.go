package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/fariyk68-sudo/Khan/internal/config"
	"github.com/fariyk68-sudo/Khan/internal/event"
	handler "github.com/fariyk68-sudo/Khan/internal/handler/http"
	"github.com/fariyk68-sudo/Khan/internal/repository/memory"
	"github.com/fariyk68-sudo/Khan/internal/service"
	"github.com/fariyk68-sudo/Khan/pkg/health"
	pkgkafka "github.com/fariyk68-sudo/Khan/pkg/kafka"
	"github.com/fariyk68-sudo/Khan/pkg/middleware"
	"github.com/fariyk68-sudo/Khan/pkg/tracing"
)

// App wires together all dependencies and runs the storefront service.
type App struct {
	cfg            *config.Config
	logger         *slog.Logger
	producer       *pkgkafka.Producer
	checkout       *service.CheckoutService
	httpServer     *http.Server
	tracerShutdown func(context.Context) error
}

// NewApp creates a new application instance, initializing all dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize OpenTelemetry tracing.
	tracerShutdown, err := tracing.InitTracer(ctx, tracing.Config{
		ServiceName:    "storefront",
		ServiceVersion: "0.1.0",
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.OTELEndpoint,
		SampleRate:     cfg.OTELSampleRate,
		Enabled:        cfg.OTELEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	// Initialize Kafka producer.
	kafkaCfg := pkgkafka.DefaultProducerConfig(cfg.KafkaBrokers)
	producer := pkgkafka.NewProducer(kafkaCfg, logger)
	logger.Info("kafka producer initialized", slog.Any("brokers", cfg.KafkaBrokers))

	// Build the dependency graph. All state lives in memory; the catalog
	// repository seeds itself with the fixed product data.
	catalogRepo := memory.NewCatalogRepository()
	cartRepo := memory.NewCartRepository()
	wishlistRepo := memory.NewWishlistRepository()
	selectionRepo := memory.NewSelectionRepository()
	checkoutRepo := memory.NewCheckoutRepository()

	eventProducer := event.NewProducer(producer, logger)

	catalogService := service.NewCatalogService(catalogRepo, eventProducer, logger)
	selectionService := service.NewSelectionService(selectionRepo, catalogRepo, logger)
	cartService := service.NewCartService(cartRepo, catalogRepo, selectionRepo, eventProducer, logger)
	wishlistService := service.NewWishlistService(wishlistRepo, catalogRepo, cartService, eventProducer, logger)
	checkoutService := service.NewCheckoutService(
		checkoutRepo,
		cartRepo,
		catalogRepo,
		selectionRepo,
		cartService,
		eventProducer,
		logger,
		cfg.CheckoutAutoClose,
	)

	// Health checks. Kafka is the only external dependency; the catalog check
	// guards against an empty seed.
	healthHandler := health.NewHandler()
	healthHandler.Register("kafka", func(ctx context.Context) error {
		return producer.Ping(ctx)
	})
	healthHandler.Register("catalog", func(ctx context.Context) error {
		products, err := catalogRepo.ListProducts(ctx)
		if err != nil {
			return err
		}
		if len(products) == 0 {
			return fmt.Errorf("catalog is empty")
		}
		return nil
	})

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = cfg.CORSAllowedOrigins
	corsCfg.Environment = cfg.Environment

	// HTTP router.
	router := handler.NewRouter(handler.RouterConfig{
		Catalog:     catalogService,
		Selection:   selectionService,
		Cart:        cartService,
		Wishlist:    wishlistService,
		Checkout:    checkoutService,
		Health:      healthHandler,
		Logger:      logger,
		CORS:        corsCfg,
		PprofCIDRs:  cfg.PprofAllowedCIDRs,
		CacheMaxAge: cfg.CacheMaxAge,
	})

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &App{
		cfg:            cfg,
		logger:         logger,
		producer:       producer,
		checkout:       checkoutService,
		httpServer:     httpServer,
		tracerShutdown: tracerShutdown,
	}, nil
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops all components in the correct order:
// 1. HTTP server (drain in-flight requests)
// 2. Tracer (flush pending spans from drained requests)
// 3. Checkout auto-close timer
// 4. Kafka producer
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	var errs []error

	// 1. Drain in-flight HTTP requests (5s budget).
	httpCtx, httpCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer httpCancel()
	if err := a.httpServer.Shutdown(httpCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
		errs = append(errs, err)
	}

	// 2. Flush pending spans after HTTP drain so in-flight request spans are captured.
	if a.tracerShutdown != nil {
		tracerCtx, tracerCancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer tracerCancel()
		if err := a.tracerShutdown(tracerCtx); err != nil {
			a.logger.Error("tracer shutdown error", slog.String("error", err.Error()))
			errs = append(errs, err)
		}
	}

	// 3. Stop any pending checkout auto-close timer.
	a.checkout.Close()

	// 4. Close Kafka producer.
	if err := a.producer.Close(); err != nil {
		a.logger.Error("kafka producer close error", slog.String("error", err.Error()))
		errs = append(errs, err)
	}

	a.logger.Info("application shutdown complete")
	return errors.Join(errs...)
}
