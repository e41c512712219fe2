package memory

import (
	"context"
	"sync"
	"time"

	"github.com/fariyk68-sudo/Khan/internal/domain"
)

// CartRepository holds the single shopper cart in memory.
type CartRepository struct {
	mu   sync.RWMutex
	cart domain.Cart
}

// NewCartRepository creates an empty in-memory cart store.
func NewCartRepository() *CartRepository {
	return &CartRepository{}
}

// Get retrieves a copy of the current cart.
func (r *CartRepository) Get(ctx context.Context) (*domain.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c := copyCart(&r.cart)
	return &c, nil
}

// Save persists the cart, overwriting the previous state.
func (r *CartRepository) Save(ctx context.Context, cart *domain.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := copyCart(cart)
	c.UpdatedAt = time.Now().UTC()
	r.cart = c
	return nil
}

func copyCart(c *domain.Cart) domain.Cart {
	out := *c
	out.Items = make([]domain.CartItem, len(c.Items))
	for i, item := range c.Items {
		out.Items[i] = copyCartItem(item)
	}
	return out
}

func copyCartItem(item domain.CartItem) domain.CartItem {
	out := item
	if item.SelectedVariations != nil {
		out.SelectedVariations = make(map[string]string, len(item.SelectedVariations))
		for k, v := range item.SelectedVariations {
			out.SelectedVariations[k] = v
		}
	}
	return out
}
