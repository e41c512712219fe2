package memory

import (
	"context"
	"sync"

	"github.com/fariyk68-sudo/Khan/internal/domain"
)

// CheckoutRepository holds at most one checkout session in memory.
type CheckoutRepository struct {
	mu      sync.RWMutex
	session *domain.CheckoutSession
}

// NewCheckoutRepository creates an empty in-memory checkout store.
func NewCheckoutRepository() *CheckoutRepository {
	return &CheckoutRepository{}
}

// Get retrieves the current session, or nil if no checkout is in progress.
func (r *CheckoutRepository) Get(ctx context.Context) (*domain.CheckoutSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.session == nil {
		return nil, nil
	}
	s := copySession(r.session)
	return &s, nil
}

// Save persists the session, overwriting the previous state.
func (r *CheckoutRepository) Save(ctx context.Context, session *domain.CheckoutSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := copySession(session)
	r.session = &s
	return nil
}

// Delete closes the current session.
func (r *CheckoutRepository) Delete(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.session = nil
	return nil
}

func copySession(s *domain.CheckoutSession) domain.CheckoutSession {
	out := *s
	out.Items = make([]domain.CartItem, len(s.Items))
	for i, item := range s.Items {
		out.Items[i] = copyCartItem(item)
	}
	return out
}
