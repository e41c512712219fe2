package service

import (
	"io"
	"log/slog"
	"time"

	"github.com/fariyk68-sudo/Khan/internal/event"
	"github.com/fariyk68-sudo/Khan/internal/repository/memory"
	pkgkafka "github.com/fariyk68-sudo/Khan/pkg/kafka"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

// newTestProducer builds an event producer against an unreachable broker.
// Async mode keeps publish calls from blocking; failures are logged and
// ignored by the services.
func newTestProducer(logger *slog.Logger) *event.Producer {
	cfg := pkgkafka.DefaultProducerConfig([]string{"localhost:9092"})
	cfg.Async = true
	return event.NewProducer(pkgkafka.NewProducer(cfg, logger), logger)
}

// fixture wires every service over fresh in-memory repositories.
type fixture struct {
	catalogRepo   *memory.CatalogRepository
	cartRepo      *memory.CartRepository
	wishlistRepo  *memory.WishlistRepository
	selectionRepo *memory.SelectionRepository
	checkoutRepo  *memory.CheckoutRepository

	catalog   *CatalogService
	selection *SelectionService
	cart      *CartService
	wishlist  *WishlistService
	checkout  *CheckoutService
}

func newFixture() *fixture {
	return newFixtureWithAutoClose(DefaultAutoCloseDelay)
}

func newFixtureWithAutoClose(autoClose time.Duration) *fixture {
	logger := newTestLogger()
	producer := newTestProducer(logger)

	f := &fixture{
		catalogRepo:   memory.NewCatalogRepository(),
		cartRepo:      memory.NewCartRepository(),
		wishlistRepo:  memory.NewWishlistRepository(),
		selectionRepo: memory.NewSelectionRepository(),
		checkoutRepo:  memory.NewCheckoutRepository(),
	}

	f.catalog = NewCatalogService(f.catalogRepo, producer, logger)
	f.selection = NewSelectionService(f.selectionRepo, f.catalogRepo, logger)
	f.cart = NewCartService(f.cartRepo, f.catalogRepo, f.selectionRepo, producer, logger)
	f.wishlist = NewWishlistService(f.wishlistRepo, f.catalogRepo, f.cart, producer, logger)
	f.checkout = NewCheckoutService(f.checkoutRepo, f.cartRepo, f.catalogRepo, f.selectionRepo, f.cart, producer, logger, autoClose)

	return f
}
