package memory

import (
	"context"
	"sync"

	"github.com/fariyk68-sudo/Khan/internal/domain"
	apperrors "github.com/fariyk68-sudo/Khan/pkg/errors"
)

// CatalogRepository is an in-memory catalog seeded at construction. Reads
// return copies so callers cannot mutate the store through returned values.
type CatalogRepository struct {
	mu            sync.RWMutex
	products      []domain.Product
	index         map[string]int
	categories    []domain.Category
	heroSlides    []domain.Slide
	contactSlides []domain.Slide
}

// NewCatalogRepository creates a catalog repository with the seed data.
func NewCatalogRepository() *CatalogRepository {
	products := seedProducts()
	index := make(map[string]int, len(products))
	for i, p := range products {
		index[p.ID] = i
	}
	return &CatalogRepository{
		products:      products,
		index:         index,
		categories:    seedCategories(),
		heroSlides:    seedHeroSlides(),
		contactSlides: seedContactSlides(),
	}
}

// ListProducts returns all catalog products.
func (r *CatalogRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Product, len(r.products))
	for i := range r.products {
		out[i] = copyProduct(&r.products[i])
	}
	return out, nil
}

// GetProduct retrieves a product by its ID.
func (r *CatalogRepository) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return nil, apperrors.NotFound("product", id)
	}
	p := copyProduct(&r.products[i])
	return &p, nil
}

// ListCategories returns all browsable categories.
func (r *CatalogRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

// ListHeroSlides returns the home page carousel slides.
func (r *CatalogRepository) ListHeroSlides(ctx context.Context) ([]domain.Slide, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Slide, len(r.heroSlides))
	copy(out, r.heroSlides)
	return out, nil
}

// ListContactSlides returns the contact page carousel slides.
func (r *CatalogRepository) ListContactSlides(ctx context.Context) ([]domain.Slide, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Slide, len(r.contactSlides))
	copy(out, r.contactSlides)
	return out, nil
}

// AddReview appends a review to the given product.
func (r *CatalogRepository) AddReview(ctx context.Context, productID string, review domain.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[productID]
	if !ok {
		return apperrors.NotFound("product", productID)
	}
	r.products[i].Reviews = append(r.products[i].Reviews, review)
	return nil
}

func copyProduct(p *domain.Product) domain.Product {
	out := *p

	out.ImageURLs = make([]string, len(p.ImageURLs))
	copy(out.ImageURLs, p.ImageURLs)

	out.Reviews = make([]domain.Review, len(p.Reviews))
	copy(out.Reviews, p.Reviews)

	if p.Variations != nil {
		out.Variations = make([]domain.Variation, len(p.Variations))
		for i, v := range p.Variations {
			opts := make([]string, len(v.Options))
			copy(opts, v.Options)
			out.Variations[i] = domain.Variation{Label: v.Label, Options: opts}
		}
	}
	return out
}
