package ports

import (
	"context"
	"io"

	"github.com/threadline/catalog-api/internal/core/domain"
)

// ImageStore is the blob-store boundary: it persists an uploaded image and
// hands back a stable reference URI that resolves via Open.
type ImageStore interface {
	// Save stores the payload and returns its reference URI (/images/<id>).
	Save(ctx context.Context, filename, contentType string, size int64, r io.Reader) (string, error)
	// Open retrieves a stored image by its hex id.
	Open(ctx context.Context, id string) (*domain.Image, error)
	// Delete removes a stored image. Missing ids are not an error.
	Delete(ctx context.Context, id string) error
}
