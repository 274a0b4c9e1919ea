package handler

import (
	"mime/multipart"

	"github.com/threadline/catalog-api/internal/core/domain"
	"github.com/threadline/catalog-api/internal/core/ports"
)

func toProductResponse(p *domain.Product) productResponse {
	return productResponse{
		ID:        p.ID,
		Category:  p.Category,
		SubTypes:  p.SubTypes,
		Image:     p.Image,
		CreatedAt: p.CreatedAt.UTC(),
	}
}

func toProductListResponse(products []*domain.Product) []productResponse {
	out := make([]productResponse, len(products))
	for i, p := range products {
		out[i] = toProductResponse(p)
	}
	return out
}

// toImageUpload opens a multipart file header as a service upload. The
// returned closer must be closed after the service call returns.
func toImageUpload(fh *multipart.FileHeader) (*ports.ImageUpload, multipart.File, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, nil, err
	}
	return &ports.ImageUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Reader:      src,
	}, src, nil
}
