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

// Cart operation upper-bound limits to prevent abuse.
const (
	// MaxQuantityPerItem is the maximum quantity allowed for a single cart line.
	MaxQuantityPerItem = 100
	// MaxItemsPerCart is the maximum number of distinct lines allowed in the cart.
	MaxItemsPerCart = 50
)

// discountCodes maps accepted promo codes to their percentage off.
var discountCodes = map[string]int{
	"SAVE10": 10,
	"SAVE20": 20,
}

// CartService implements the business logic for cart operations.
type CartService struct {
	repo       repository.CartRepository
	catalog    repository.CatalogRepository
	selections repository.SelectionRepository
	producer   *event.Producer
	logger     *slog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(
	repo repository.CartRepository,
	catalog repository.CatalogRepository,
	selections repository.SelectionRepository,
	producer *event.Producer,
	logger *slog.Logger,
) *CartService {
	return &CartService{
		repo:       repo,
		catalog:    catalog,
		selections: selections,
		producer:   producer,
		logger:     logger,
	}
}

// GetCart retrieves the current cart.
func (s *CartService) GetCart(ctx context.Context) (*domain.Cart, error) {
	cart, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}
	return cart, nil
}

// AddFromSelection adds a product to the cart using its current page
// selection (quantity and variation choices), merging into an existing line
// when the product and choices match. The selection quantity resets to 1
// afterwards; the chosen options stay.
func (s *CartService) AddFromSelection(ctx context.Context, productID string) (*domain.Cart, error) {
	if productID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}

	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}

	selection, err := selectionFor(ctx, s.selections, product)
	if err != nil {
		return nil, err
	}

	cart, err := s.addProduct(ctx, product, selection.Quantity, selection.Options)
	if err != nil {
		return nil, err
	}

	selection.Quantity = 1
	if err := s.selections.Save(ctx, selection); err != nil {
		return nil, fmt.Errorf("reset selection quantity: %w", err)
	}

	s.logger.InfoContext(ctx, "item added to cart",
		slog.String("product_id", productID),
		slog.Int("item_count", cart.ItemCount()),
	)

	return cart, nil
}

func (s *CartService) addProduct(ctx context.Context, product *domain.Product, quantity int, variations map[string]string) (*domain.Cart, error) {
	if quantity > MaxQuantityPerItem {
		return nil, apperrors.InvalidInput(fmt.Sprintf("quantity must not exceed %d", MaxQuantityPerItem))
	}
	for label, option := range variations {
		if !product.HasOption(label, option) {
			return nil, apperrors.InvalidInput(fmt.Sprintf("%q is not a valid option for %q", option, label))
		}
	}

	cart, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}

	item := domain.CartItem{
		ProductID:          product.ID,
		Name:               product.Name,
		Price:              product.Price,
		ImageURL:           product.ImageURL,
		Quantity:           quantity,
		SelectedVariations: variations,
	}

	if idx := cart.FindItemIndex(item.ProductID, item.VariationKey()); idx >= 0 {
		if cart.Items[idx].Quantity+quantity > MaxQuantityPerItem {
			return nil, apperrors.InvalidInput(fmt.Sprintf("combined quantity must not exceed %d", MaxQuantityPerItem))
		}
	} else if len(cart.Items) >= MaxItemsPerCart {
		return nil, apperrors.InvalidInput(fmt.Sprintf("cart must not contain more than %d lines", MaxItemsPerCart))
	}
	cart.AddItem(item)

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}

	s.publishUpdated(ctx, cart)
	return cart, nil
}

// UpdateQuantity sets the quantity of a cart line. Values below 1 clamp to 1;
// updating an absent line leaves the cart unchanged.
func (s *CartService) UpdateQuantity(ctx context.Context, productID, variationKey string, quantity int) (*domain.Cart, error) {
	if productID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}
	if quantity > MaxQuantityPerItem {
		return nil, apperrors.InvalidInput(fmt.Sprintf("quantity must not exceed %d", MaxQuantityPerItem))
	}

	cart, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}

	idx := cart.FindItemIndex(productID, variationKey)
	if idx < 0 {
		return cart, nil
	}

	if quantity < 1 {
		quantity = 1
	}
	cart.Items[idx].Quantity = quantity

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}

	s.publishUpdated(ctx, cart)

	s.logger.InfoContext(ctx, "cart line quantity updated",
		slog.String("product_id", productID),
		slog.Int("quantity", quantity),
	)

	return cart, nil
}

// RemoveItem deletes a cart line. Removing an absent line is a no-op.
func (s *CartService) RemoveItem(ctx context.Context, productID, variationKey string) (*domain.Cart, error) {
	if productID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}

	cart, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}

	if cart.FindItemIndex(productID, variationKey) < 0 {
		return cart, nil
	}
	cart.RemoveItem(productID, variationKey)

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}

	s.publishUpdated(ctx, cart)

	s.logger.InfoContext(ctx, "cart line removed",
		slog.String("product_id", productID),
	)

	return cart, nil
}

// ApplyDiscountCode applies a promo code to the cart. An unrecognized code is
// rejected and any previously applied discount stays in effect.
func (s *CartService) ApplyDiscountCode(ctx context.Context, code string) (*domain.Cart, error) {
	if code == "" {
		return nil, apperrors.InvalidInput("discount code is required")
	}

	percent, ok := discountCodes[code]
	if !ok {
		return nil, apperrors.DiscountRejected(code)
	}

	cart, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}

	cart.DiscountPercent = percent

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}

	s.publishUpdated(ctx, cart)

	s.logger.InfoContext(ctx, "discount applied",
		slog.String("code", code),
		slog.Int("percent", percent),
	)

	return cart, nil
}

// Clear empties the cart. The applied discount survives until the shopper
// enters a different code.
func (s *CartService) Clear(ctx context.Context, reason string) error {
	cart, err := s.repo.Get(ctx)
	if err != nil {
		return fmt.Errorf("get cart: %w", err)
	}

	cart.Clear()

	if err := s.repo.Save(ctx, cart); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}

	if err := s.producer.PublishCartCleared(ctx, reason); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish cart.cleared event",
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "cart cleared",
		slog.String("reason", reason),
	)

	return nil
}

func (s *CartService) publishUpdated(ctx context.Context, cart *domain.Cart) {
	if err := s.producer.PublishCartUpdated(ctx, cart); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish cart.updated event",
			slog.String("error", err.Error()),
		)
	}
}
