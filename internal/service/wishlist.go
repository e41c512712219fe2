package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fariyk68-sudo/Khan/internal/domain"
	"github.com/fariyk68-sudo/Khan/internal/event"
	"github.com/fariyk68-sudo/Khan/internal/repository"
	apperrors "github.com/fariyk68-sudo/Khan/pkg/errors"
)

// WishlistService manages the shopper's saved products.
type WishlistService struct {
	repo     repository.WishlistRepository
	catalog  repository.CatalogRepository
	cart     *CartService
	producer *event.Producer
	logger   *slog.Logger
}

// NewWishlistService creates a new wishlist service.
func NewWishlistService(
	repo repository.WishlistRepository,
	catalog repository.CatalogRepository,
	cart *CartService,
	producer *event.Producer,
	logger *slog.Logger,
) *WishlistService {
	return &WishlistService{
		repo:     repo,
		catalog:  catalog,
		cart:     cart,
		producer: producer,
		logger:   logger,
	}
}

// List returns the saved products in the order they were added.
func (s *WishlistService) List(ctx context.Context) ([]domain.Product, error) {
	wishlist, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get wishlist: %w", err)
	}

	products := make([]domain.Product, 0, len(wishlist.ProductIDs))
	for _, id := range wishlist.ProductIDs {
		p, err := s.catalog.GetProduct(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("get wishlist product: %w", err)
		}
		products = append(products, *p)
	}

	return products, nil
}

// Toggle saves the product when absent and removes it when present,
// returning whether the product ended up saved.
func (s *WishlistService) Toggle(ctx context.Context, productID string) (bool, error) {
	if productID == "" {
		return false, apperrors.InvalidInput("product id is required")
	}
	if _, err := s.catalog.GetProduct(ctx, productID); err != nil {
		return false, fmt.Errorf("get product: %w", err)
	}

	wishlist, err := s.repo.Get(ctx)
	if err != nil {
		return false, fmt.Errorf("get wishlist: %w", err)
	}

	saved := wishlist.Toggle(productID)

	if err := s.repo.Save(ctx, wishlist); err != nil {
		return false, fmt.Errorf("save wishlist: %w", err)
	}

	s.publishUpdated(ctx, productID, saved, len(wishlist.ProductIDs))

	s.logger.InfoContext(ctx, "wishlist toggled",
		slog.String("product_id", productID),
		slog.Bool("saved", saved),
	)

	return saved, nil
}

// Remove deletes the product from the wishlist. Removing an absent product
// is a no-op.
func (s *WishlistService) Remove(ctx context.Context, productID string) error {
	if productID == "" {
		return apperrors.InvalidInput("product id is required")
	}

	wishlist, err := s.repo.Get(ctx)
	if err != nil {
		return fmt.Errorf("get wishlist: %w", err)
	}

	if !wishlist.Remove(productID) {
		return nil
	}

	if err := s.repo.Save(ctx, wishlist); err != nil {
		return fmt.Errorf("save wishlist: %w", err)
	}

	s.publishUpdated(ctx, productID, false, len(wishlist.ProductIDs))

	s.logger.InfoContext(ctx, "wishlist item removed",
		slog.String("product_id", productID),
	)

	return nil
}

// MoveToCart adds the saved product to the cart using its current page
// selection (quantity and variation choices), then removes it from the
// wishlist.
func (s *WishlistService) MoveToCart(ctx context.Context, productID string) (*domain.Cart, error) {
	if productID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}

	wishlist, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get wishlist: %w", err)
	}
	if !wishlist.Contains(productID) {
		return nil, apperrors.NotFound("wishlist item", productID)
	}

	cart, err := s.cart.AddFromSelection(ctx, productID)
	if err != nil {
		return nil, err
	}

	wishlist.Remove(productID)
	if err := s.repo.Save(ctx, wishlist); err != nil {
		return nil, fmt.Errorf("save wishlist: %w", err)
	}

	s.publishUpdated(ctx, productID, false, len(wishlist.ProductIDs))

	s.logger.InfoContext(ctx, "wishlist item moved to cart",
		slog.String("product_id", productID),
	)

	return cart, nil
}

func (s *WishlistService) publishUpdated(ctx context.Context, productID string, saved bool, count int) {
	if err := s.producer.PublishWishlistUpdated(ctx, productID, saved, count); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish wishlist.updated event",
			slog.String("product_id", productID),
			slog.String("error", err.Error()),
		)
	}
}
