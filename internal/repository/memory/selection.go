package memory

import (
	"context"
	"sync"

	"github.com/fariyk68-sudo/Khan/internal/domain"
)

// SelectionRepository holds per-product page selections in memory.
type SelectionRepository struct {
	mu         sync.RWMutex
	selections map[string]domain.Selection
}

// NewSelectionRepository creates an empty in-memory selection store.
func NewSelectionRepository() *SelectionRepository {
	return &SelectionRepository{
		selections: make(map[string]domain.Selection),
	}
}

// Get retrieves the selection for a product, returning nil if none was
// saved yet. Defaulting needs the product's variations, so it happens in the
// service layer.
func (r *SelectionRepository) Get(ctx context.Context, productID string) (*domain.Selection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.selections[productID]
	if !ok {
		return nil, nil
	}
	c := copySelection(s)
	return &c, nil
}

// Save persists the selection for its product.
func (r *SelectionRepository) Save(ctx context.Context, selection *domain.Selection) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.selections[selection.ProductID] = copySelection(*selection)
	return nil
}

// Delete resets the selection for a product back to the default.
func (r *SelectionRepository) Delete(ctx context.Context, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.selections, productID)
	return nil
}

func copySelection(s domain.Selection) domain.Selection {
	out := s
	out.Options = make(map[string]string, len(s.Options))
	for k, v := range s.Options {
		out.Options[k] = v
	}
	return out
}
