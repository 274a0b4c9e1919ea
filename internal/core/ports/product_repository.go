package ports

import (
	"context"

	"github.com/threadline/catalog-api/internal/core/domain"
)

// ProductRepository defines persistence operations for products. Each
// operation is individually atomic; no cross-request ordering is assumed.
type ProductRepository interface {
	// List returns all products ordered by createdAt descending.
	List(ctx context.Context) ([]*domain.Product, error)
	// Insert persists a new product and returns it with its generated id.
	Insert(ctx context.Context, p *domain.Product) (*domain.Product, error)
	// FindByID retrieves a product by its hex id.
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	// Update replaces the stored category, subTypes and image of id.
	Update(ctx context.Context, p *domain.Product) (*domain.Product, error)
	// Delete removes the product with the given hex id. Returns
	// domain.ErrProductNotFound when no document matched, so a repeated
	// delete of the same id fails rather than silently succeeding.
	Delete(ctx context.Context, id string) error
}
