package memory

import (
	"context"
	"sync"

	"github.com/fariyk68-sudo/Khan/internal/domain"
)

// WishlistRepository holds the single shopper wishlist in memory.
type WishlistRepository struct {
	mu       sync.RWMutex
	wishlist domain.Wishlist
}

// NewWishlistRepository creates an empty in-memory wishlist store.
func NewWishlistRepository() *WishlistRepository {
	return &WishlistRepository{}
}

// Get retrieves a copy of the current wishlist.
func (r *WishlistRepository) Get(ctx context.Context) (*domain.Wishlist, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, len(r.wishlist.ProductIDs))
	copy(ids, r.wishlist.ProductIDs)
	return &domain.Wishlist{ProductIDs: ids}, nil
}

// Save persists the wishlist, overwriting the previous state.
func (r *WishlistRepository) Save(ctx context.Context, wishlist *domain.Wishlist) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]string, len(wishlist.ProductIDs))
	copy(ids, wishlist.ProductIDs)
	r.wishlist = domain.Wishlist{ProductIDs: ids}
	return nil
}
