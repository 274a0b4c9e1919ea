package ports

import (
	"context"
	"io"

	"github.com/threadline/catalog-api/internal/core/domain"
)

// ImageUpload carries an incoming image file from the transport layer.
// Reader is consumed at most once by the service.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// AddProductInput carries all data needed to create a product. SubTypes
// elements may themselves be comma-separated; the service normalizes them.
type AddProductInput struct {
	Category string
	SubTypes []string
	Image    *ImageUpload
}

// UpdateProductInput carries a partial update. Nil/empty fields are left
// untouched; a non-nil Image replaces the stored reference.
type UpdateProductInput struct {
	Category *string
	SubTypes []string
	Image    *ImageUpload
}

// CatalogService defines the product lifecycle use cases.
type CatalogService interface {
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	AddProduct(ctx context.Context, input AddProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, input UpdateProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	GetImage(ctx context.Context, id string) (*domain.Image, error)
}
