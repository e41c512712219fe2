package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fariyk68-sudo/Khan/internal/service"
	"github.com/fariyk68-sudo/Khan/pkg/httputil"
	"github.com/fariyk68-sudo/Khan/pkg/validator"
)

// CatalogHandler handles HTTP requests for browsing and reviews.
type CatalogHandler struct {
	service *service.CatalogService
	logger  *slog.Logger
}

// NewCatalogHandler creates a new catalog HTTP handler.
func NewCatalogHandler(svc *service.CatalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: svc,
		logger:  logger,
	}
}

// AddReviewRequest is the JSON request body for submitting a review.
type AddReviewRequest struct {
	ReviewerName string `json:"reviewer_name" validate:"required,max=100"`
	Rating       int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment      string `json:"comment" validate:"required,max=2000"`
}

// ListProducts handles GET /api/v1/products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	input := service.ListProductsInput{
		Query:    r.URL.Query().Get("query"),
		Category: r.URL.Query().Get("category"),
	}

	products, err := h.service.ListProducts(r.Context(), input)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: products})
}

// GetProduct handles GET /api/v1/products/{productID}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	product, err := h.service.GetProduct(r.Context(), productID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: product})
}

// AddReview handles POST /api/v1/products/{productID}/reviews
func (h *CatalogHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	var req AddReviewRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	review, err := h.service.AddReview(r.Context(), productID, service.AddReviewInput{
		ReviewerName: req.ReviewerName,
		Rating:       req.Rating,
		Comment:      req.Comment,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: review})
}

// ListCategories handles GET /api/v1/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: categories})
}

// ListHeroSlides handles GET /api/v1/slides/hero
func (h *CatalogHandler) ListHeroSlides(w http.ResponseWriter, r *http.Request) {
	slides, err := h.service.ListHeroSlides(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: slides})
}

// ListContactSlides handles GET /api/v1/slides/contact
func (h *CatalogHandler) ListContactSlides(w http.ResponseWriter, r *http.Request) {
	slides, err := h.service.ListContactSlides(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: slides})
}
