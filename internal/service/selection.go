package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fariyk68-sudo/Khan/internal/domain"
	"github.com/fariyk68-sudo/Khan/internal/repository"
	apperrors "github.com/fariyk68-sudo/Khan/pkg/errors"
)

// MaxSelectionQuantity is the upper bound for the product page quantity picker.
const MaxSelectionQuantity = 100

// SelectionService manages the shopper's in-progress choices on product pages.
type SelectionService struct {
	repo    repository.SelectionRepository
	catalog repository.CatalogRepository
	logger  *slog.Logger
}

// NewSelectionService creates a new selection service.
func NewSelectionService(repo repository.SelectionRepository, catalog repository.CatalogRepository, logger *slog.Logger) *SelectionService {
	return &SelectionService{
		repo:    repo,
		catalog: catalog,
		logger:  logger,
	}
}

// selectionFor returns the saved selection for a product, falling back to the
// default (quantity 1, first option of each variation axis) when the shopper
// has not touched the product page yet.
func selectionFor(ctx context.Context, repo repository.SelectionRepository, product *domain.Product) (*domain.Selection, error) {
	selection, err := repo.Get(ctx, product.ID)
	if err != nil {
		return nil, fmt.Errorf("get selection: %w", err)
	}
	if selection == nil {
		d := domain.NewSelection(product)
		selection = &d
	}
	return selection, nil
}

// Get retrieves the selection for a product, validating that the product exists.
func (s *SelectionService) Get(ctx context.Context, productID string) (*domain.Selection, error) {
	if productID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}
	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("get product for selection: %w", err)
	}

	return selectionFor(ctx, s.repo, product)
}

// SetQuantity updates the selection quantity. Values below 1 clamp to 1, so
// the picker can never reach zero.
func (s *SelectionService) SetQuantity(ctx context.Context, productID string, quantity int) (*domain.Selection, error) {
	if quantity > MaxSelectionQuantity {
		return nil, apperrors.InvalidInput(fmt.Sprintf("quantity must not exceed %d", MaxSelectionQuantity))
	}

	selection, err := s.Get(ctx, productID)
	if err != nil {
		return nil, err
	}

	if quantity < 1 {
		quantity = 1
	}
	selection.Quantity = quantity

	if err := s.repo.Save(ctx, selection); err != nil {
		return nil, fmt.Errorf("save selection: %w", err)
	}

	return selection, nil
}

// SelectOption records a choice on one variation axis. The label must be an
// axis of the product and the option one of its allowed values.
func (s *SelectionService) SelectOption(ctx context.Context, productID, label, option string) (*domain.Selection, error) {
	if productID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}
	if label == "" {
		return nil, apperrors.InvalidInput("variation label is required")
	}
	if option == "" {
		return nil, apperrors.InvalidInput("variation option is required")
	}

	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("get product for selection: %w", err)
	}

	if _, ok := product.VariationByLabel(label); !ok {
		return nil, apperrors.InvalidInput(fmt.Sprintf("product has no %q variation", label))
	}
	if !product.HasOption(label, option) {
		return nil, apperrors.InvalidInput(fmt.Sprintf("%q is not a valid option for %q", option, label))
	}

	selection, err := selectionFor(ctx, s.repo, product)
	if err != nil {
		return nil, err
	}

	selection.Options[label] = option

	if err := s.repo.Save(ctx, selection); err != nil {
		return nil, fmt.Errorf("save selection: %w", err)
	}

	s.logger.InfoContext(ctx, "variation selected",
		slog.String("product_id", productID),
		slog.String("label", label),
		slog.String("option", option),
	)

	return selection, nil
}

// Reset restores the default selection for a product.
func (s *SelectionService) Reset(ctx context.Context, productID string) error {
	if productID == "" {
		return apperrors.InvalidInput("product id is required")
	}
	if err := s.repo.Delete(ctx, productID); err != nil {
		return fmt.Errorf("reset selection: %w", err)
	}
	return nil
}
