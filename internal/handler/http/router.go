package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fariyk68-sudo/Khan/internal/service"
	"github.com/fariyk68-sudo/Khan/pkg/health"
	"github.com/fariyk68-sudo/Khan/pkg/middleware"
)

// RouterConfig bundles the services and settings the router needs.
type RouterConfig struct {
	Catalog   *service.CatalogService
	Selection *service.SelectionService
	Cart      *service.CartService
	Wishlist  *service.WishlistService
	Checkout  *service.CheckoutService

	Health *health.Handler
	Logger *slog.Logger

	CORS        middleware.CORSConfig
	PprofCIDRs  []string
	CacheMaxAge int
}

// NewRouter creates a chi router with all storefront routes registered.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(cfg.Logger))
	r.Use(middleware.PrometheusMetrics("storefront"))
	r.Use(middleware.Tracing("storefront"))
	r.Use(middleware.RequestLogger(cfg.Logger))
	r.Use(middleware.CORS(cfg.CORS))

	// Health check endpoints
	r.Get("/health/live", cfg.Health.LivenessHandler())
	r.Get("/health/ready", cfg.Health.ReadinessHandler())
	r.Handle("/metrics", promhttp.Handler())

	// Pprof debug endpoints with IP allowlist.
	middleware.RegisterPprof(r, cfg.PprofCIDRs, cfg.Logger)

	catalogHandler := NewCatalogHandler(cfg.Catalog, cfg.Logger)
	selectionHandler := NewSelectionHandler(cfg.Selection, cfg.Logger)
	cartHandler := NewCartHandler(cfg.Cart, cfg.Logger)
	wishlistHandler := NewWishlistHandler(cfg.Wishlist, cfg.Logger)
	checkoutHandler := NewCheckoutHandler(cfg.Checkout, cfg.Logger)
	contactHandler := NewContactHandler(cfg.Catalog, cfg.Logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		// The catalog is fixed, so browse responses are cacheable.
		r.Group(func(r chi.Router) {
			r.Use(middleware.CacheControl(cfg.CacheMaxAge))

			r.Get("/categories", catalogHandler.ListCategories)
			r.Get("/slides/hero", catalogHandler.ListHeroSlides)
			r.Get("/slides/contact", catalogHandler.ListContactSlides)
			r.Get("/contact", contactHandler.Get)
		})

		r.Post("/contact", contactHandler.SendMessage)

		r.Get("/products", catalogHandler.ListProducts)
		r.Get("/products/{productID}", catalogHandler.GetProduct)
		r.Post("/products/{productID}/reviews", catalogHandler.AddReview)

		r.Route("/selections/{productID}", func(r chi.Router) {
			r.Get("/", selectionHandler.Get)
			r.Put("/quantity", selectionHandler.SetQuantity)
			r.Put("/options", selectionHandler.SelectOption)
			r.Delete("/", selectionHandler.Reset)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.GetCart)
			r.Delete("/", cartHandler.ClearCart)

			r.Post("/items", cartHandler.AddItem)
			r.Put("/items/{productID}", cartHandler.UpdateQuantity)
			r.Delete("/items/{productID}", cartHandler.RemoveItem)

			r.Post("/discount", cartHandler.ApplyDiscount)
		})

		r.Route("/wishlist", func(r chi.Router) {
			r.Get("/", wishlistHandler.List)
			r.Post("/toggle", wishlistHandler.Toggle)
			r.Delete("/{productID}", wishlistHandler.Remove)
			r.Post("/{productID}/move-to-cart", wishlistHandler.MoveToCart)
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Get("/", checkoutHandler.Current)
			r.Post("/", checkoutHandler.Start)
			r.Delete("/", checkoutHandler.Cancel)

			r.Get("/payment-methods", checkoutHandler.PaymentMethods)
			r.Put("/payment-method", checkoutHandler.SetPaymentMethod)
			r.Post("/submit", checkoutHandler.Submit)
		})
	})

	return r
}
