package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fariyk68-sudo/Khan/internal/domain"
	"github.com/fariyk68-sudo/Khan/internal/event"
	"github.com/fariyk68-sudo/Khan/internal/repository"
	apperrors "github.com/fariyk68-sudo/Khan/pkg/errors"
)

// CategoryAll is the pseudo-category that matches every product.
const CategoryAll = "All"

// Review input limits.
const (
	MaxReviewerNameLen = 100
	MaxReviewCommentLen = 2000
)

// ListProductsInput holds the browse filters. Both are optional; empty
// values match everything.
type ListProductsInput struct {
	Query    string `json:"query"`
	Category string `json:"category"`
}

// AddReviewInput holds the parameters for submitting a product review.
type AddReviewInput struct {
	ReviewerName string `json:"reviewer_name" validate:"required,max=100"`
	Rating       int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment      string `json:"comment" validate:"required,max=2000"`
}

// CatalogService implements browsing, search, and review submission over
// the fixed product catalog.
type CatalogService struct {
	repo     repository.CatalogRepository
	producer *event.Producer
	logger   *slog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(repo repository.CatalogRepository, producer *event.Producer, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		repo:     repo,
		producer: producer,
		logger:   logger,
	}
}

// ListProducts returns the catalog filtered by search query and category.
// The query matches name or description case-insensitively; the category
// must match exactly, with "All" (or empty) matching every product.
func (s *CatalogService) ListProducts(ctx context.Context, input ListProductsInput) ([]domain.Product, error) {
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	query := strings.ToLower(strings.TrimSpace(input.Query))
	category := strings.TrimSpace(input.Category)

	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if category != "" && category != CategoryAll && p.Category != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		filtered = append(filtered, p)
	}

	return filtered, nil
}

// GetProduct retrieves a single product by ID.
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}

	product, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return product, nil
}

// ListCategories returns all browsable categories.
func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// ListHeroSlides returns the home page carousel slides.
func (s *CatalogService) ListHeroSlides(ctx context.Context) ([]domain.Slide, error) {
	slides, err := s.repo.ListHeroSlides(ctx)
	if err != nil {
		return nil, fmt.Errorf("list hero slides: %w", err)
	}
	return slides, nil
}

// ListContactSlides returns the contact page carousel slides.
func (s *CatalogService) ListContactSlides(ctx context.Context) ([]domain.Slide, error) {
	slides, err := s.repo.ListContactSlides(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contact slides: %w", err)
	}
	return slides, nil
}

// AddReview validates and appends a review to a product, then returns the
// stored review.
func (s *CatalogService) AddReview(ctx context.Context, productID string, input AddReviewInput) (*domain.Review, error) {
	if productID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}
	if strings.TrimSpace(input.ReviewerName) == "" {
		return nil, apperrors.InvalidInput("reviewer name is required")
	}
	if len(input.ReviewerName) > MaxReviewerNameLen {
		return nil, apperrors.InvalidInput(fmt.Sprintf("reviewer name must not exceed %d characters", MaxReviewerNameLen))
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, apperrors.InvalidInput("rating must be between 1 and 5")
	}
	if strings.TrimSpace(input.Comment) == "" {
		return nil, apperrors.InvalidInput("comment is required")
	}
	if len(input.Comment) > MaxReviewCommentLen {
		return nil, apperrors.InvalidInput(fmt.Sprintf("comment must not exceed %d characters", MaxReviewCommentLen))
	}

	review := domain.NewReview(strings.TrimSpace(input.ReviewerName), input.Rating, strings.TrimSpace(input.Comment))

	if err := s.repo.AddReview(ctx, productID, review); err != nil {
		return nil, fmt.Errorf("add review: %w", err)
	}

	if err := s.producer.PublishReviewCreated(ctx, productID, review); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish review.created event",
			slog.String("product_id", productID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "review added",
		slog.String("product_id", productID),
		slog.String("review_id", review.ID),
		slog.Int("rating", review.Rating),
	)

	return &review, nil
}
