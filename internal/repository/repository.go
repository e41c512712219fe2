package repository

import (
	"context"

	"github.com/fariyk68-sudo/Khan/internal/domain"
)

// CatalogRepository defines read access to the product catalog and the
// ability to attach new reviews. The catalog itself is fixed at startup.
type CatalogRepository interface {
	// ListProducts returns all catalog products.
	ListProducts(ctx context.Context) ([]domain.Product, error)

	// GetProduct retrieves a product by its ID.
	GetProduct(ctx context.Context, id string) (*domain.Product, error)

	// ListCategories returns all browsable categories.
	ListCategories(ctx context.Context) ([]domain.Category, error)

	// ListHeroSlides returns the home page carousel slides.
	ListHeroSlides(ctx context.Context) ([]domain.Slide, error)

	// ListContactSlides returns the contact page carousel slides.
	ListContactSlides(ctx context.Context) ([]domain.Slide, error)

	// AddReview appends a review to the given product.
	AddReview(ctx context.Context, productID string, review domain.Review) error
}

// CartRepository defines persistence for the shopper's single cart.
type CartRepository interface {
	// Get retrieves the cart, returning an empty cart if none was saved yet.
	Get(ctx context.Context) (*domain.Cart, error)

	// Save persists the cart, overwriting the previous state.
	Save(ctx context.Context, cart *domain.Cart) error
}

// WishlistRepository defines persistence for the shopper's wishlist.
type WishlistRepository interface {
	// Get retrieves the wishlist, returning an empty one if none was saved yet.
	Get(ctx context.Context) (*domain.Wishlist, error)

	// Save persists the wishlist, overwriting the previous state.
	Save(ctx context.Context, wishlist *domain.Wishlist) error
}

// SelectionRepository defines persistence for per-product page selections.
type SelectionRepository interface {
	// Get retrieves the selection for a product, returning nil if none was
	// saved yet.
	Get(ctx context.Context, productID string) (*domain.Selection, error)

	// Save persists the selection for its product.
	Save(ctx context.Context, selection *domain.Selection) error

	// Delete resets the selection for a product back to the default.
	Delete(ctx context.Context, productID string) error
}

// CheckoutRepository defines persistence for the single checkout session.
type CheckoutRepository interface {
	// Get retrieves the current session, or nil if no checkout is in progress.
	Get(ctx context.Context) (*domain.CheckoutSession, error)

	// Save persists the session, overwriting the previous state.
	Save(ctx context.Context, session *domain.CheckoutSession) error

	// Delete closes the current session. Deleting when no session exists
	// is a no-op.
	Delete(ctx context.Context) error
}
