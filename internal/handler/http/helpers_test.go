package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fariyk68-sudo/Khan/internal/event"
	"github.com/fariyk68-sudo/Khan/internal/repository/memory"
	"github.com/fariyk68-sudo/Khan/internal/service"
	"github.com/fariyk68-sudo/Khan/pkg/health"
	"github.com/fariyk68-sudo/Khan/pkg/httputil"
	pkgkafka "github.com/fariyk68-sudo/Khan/pkg/kafka"
	"github.com/fariyk68-sudo/Khan/pkg/middleware"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func testEventProducer() *event.Producer {
	logger := testLogger()
	cfg := pkgkafka.DefaultProducerConfig([]string{"localhost:9092"})
	// Async so publishes never block on a broker that is not there; failed
	// deliveries are logged and dropped.
	cfg.Async = true
	kafkaProducer := pkgkafka.NewProducer(cfg, logger)
	return event.NewProducer(kafkaProducer, logger)
}

// newTestRouter wires the full production route layout against in-memory
// repositories, so handler behavior is tested end-to-end.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := testLogger()
	producer := testEventProducer()

	catalogRepo := memory.NewCatalogRepository()
	cartRepo := memory.NewCartRepository()
	wishlistRepo := memory.NewWishlistRepository()
	selectionRepo := memory.NewSelectionRepository()
	checkoutRepo := memory.NewCheckoutRepository()

	catalogService := service.NewCatalogService(catalogRepo, producer, logger)
	selectionService := service.NewSelectionService(selectionRepo, catalogRepo, logger)
	cartService := service.NewCartService(cartRepo, catalogRepo, selectionRepo, producer, logger)
	wishlistService := service.NewWishlistService(wishlistRepo, catalogRepo, cartService, producer, logger)
	checkoutService := service.NewCheckoutService(
		checkoutRepo, cartRepo, catalogRepo, selectionRepo,
		cartService, producer, logger, 50*time.Millisecond,
	)
	t.Cleanup(checkoutService.Close)

	return NewRouter(RouterConfig{
		Catalog:     catalogService,
		Selection:   selectionService,
		Cart:        cartService,
		Wishlist:    wishlistService,
		Checkout:    checkoutService,
		Health:      health.NewHandler(),
		Logger:      logger,
		CORS:        middleware.DefaultCORSConfig(),
		PprofCIDRs:  []string{"127.0.0.0/8"},
		CacheMaxAge: 300,
	})
}

// doRequest performs a request against the router, JSON-encoding body when set.
func doRequest(t *testing.T, router http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// decodeResponse reads the response body into the standard Response struct.
func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) httputil.Response {
	t.Helper()
	var resp httputil.Response
	err := json.NewDecoder(rec.Body).Decode(&resp)
	require.NoError(t, err)
	return resp
}

// dataMap asserts the response data is a JSON object and returns it.
func dataMap(t *testing.T, resp httputil.Response) map[string]any {
	t.Helper()
	m, ok := resp.Data.(map[string]any)
	require.True(t, ok, "expected object data, got %T", resp.Data)
	return m
}

// dataList asserts the response data is a JSON array and returns it.
func dataList(t *testing.T, resp httputil.Response) []any {
	t.Helper()
	l, ok := resp.Data.([]any)
	require.True(t, ok, "expected array data, got %T", resp.Data)
	return l
}
