package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/threadline/catalog-api/internal/api/metrics"
	"github.com/threadline/catalog-api/internal/core/domain"
	"github.com/threadline/catalog-api/internal/core/ports"
)

// maxImageSize caps uploaded image payloads at 5 MiB.
const maxImageSize = 5 << 20

// allowedImageTypes lists the accepted upload content types.
var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
}

// CatalogService implements the product lifecycle: list, add, update, delete.
type CatalogService struct {
	repo   ports.ProductRepository
	images ports.ImageStore
	logger zerolog.Logger
}

func NewCatalogService(repo ports.ProductRepository, images ports.ImageStore, logger zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, images: images, logger: logger}
}

// ListProducts returns the full catalog ordered by createdAt descending.
func (s *CatalogService) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.List(ctx)
}

// AddProduct validates and normalizes the input, persists the image via the
// blob store, and inserts the product. All validation runs before any store
// access; a validation failure never leaves a partial write behind.
func (s *CatalogService) AddProduct(ctx context.Context, input ports.AddProductInput) (*domain.Product, error) {
	category := strings.TrimSpace(input.Category)
	if category == "" {
		return nil, domain.NewValidationError("category", "category is required")
	}

	subTypes := NormalizeSubTypes(input.SubTypes)
	if len(subTypes) == 0 {
		return nil, domain.NewValidationError("subTypes", "at least one sub-type is required")
	}

	if err := validateImage(input.Image); err != nil {
		return nil, err
	}

	uri, err := s.images.Save(ctx, input.Image.Filename, input.Image.ContentType, input.Image.Size, input.Image.Reader)
	if err != nil {
		s.logger.Error().Err(err).Msg("image upload failed")
		return nil, err
	}
	if uri == "" {
		return nil, domain.NewValidationError("image", "image reference is empty")
	}
	metrics.ImagesStoredTotal.Inc()

	product := &domain.Product{
		Category:  category,
		SubTypes:  subTypes,
		Image:     uri,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Str("category", category).Msg("product insert failed")
		return nil, err
	}

	metrics.ProductsCreatedTotal.WithLabelValues(category).Inc()
	s.logger.Info().Str("product_id", created.ID).Str("category", category).Msg("product created")
	return created, nil
}

// UpdateProduct merges only the supplied fields into the stored product.
// A supplied field is validated by the same rules as AddProduct; a new
// image replaces the stored reference and the old payload is removed.
func (s *CatalogService) UpdateProduct(ctx context.Context, id string, input ports.UpdateProductInput) (*domain.Product, error) {
	if !domain.IsValidProductID(id) {
		return nil, domain.ErrInvalidProductID
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Category != nil {
		category := strings.TrimSpace(*input.Category)
		if category == "" {
			return nil, domain.NewValidationError("category", "category is required")
		}
		existing.Category = category
	}

	if input.SubTypes != nil {
		subTypes := NormalizeSubTypes(input.SubTypes)
		if len(subTypes) == 0 {
			return nil, domain.NewValidationError("subTypes", "at least one sub-type is required")
		}
		existing.SubTypes = subTypes
	}

	priorImage := ""
	if input.Image != nil {
		if err := validateImage(input.Image); err != nil {
			return nil, err
		}
		uri, err := s.images.Save(ctx, input.Image.Filename, input.Image.ContentType, input.Image.Size, input.Image.Reader)
		if err != nil {
			s.logger.Error().Err(err).Msg("image upload failed")
			return nil, err
		}
		metrics.ImagesStoredTotal.Inc()
		priorImage = existing.Image
		existing.Image = uri
	}

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	if priorImage != "" {
		if imageID, ok := imageIDFromURI(priorImage); ok {
			if err := s.images.Delete(ctx, imageID); err != nil {
				s.logger.Warn().Err(err).Str("image_id", imageID).Msg("stale image cleanup failed")
			}
		}
	}

	s.logger.Info().Str("product_id", id).Msg("product updated")
	return updated, nil
}

// DeleteProduct removes a product once. A second delete of the same id
// observes ErrProductNotFound.
func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	if !domain.IsValidProductID(id) {
		return domain.ErrInvalidProductID
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	metrics.ProductsDeletedTotal.Inc()
	s.logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

// GetImage resolves a stored image payload for /images/:id.
func (s *CatalogService) GetImage(ctx context.Context, id string) (*domain.Image, error) {
	if !domain.IsValidProductID(id) {
		return nil, domain.ErrImageNotFound
	}
	return s.images.Open(ctx, id)
}

// NormalizeSubTypes splits every element on commas, trims each piece, and
// drops empties, preserving order. "Cotton, Denim ,  Silk" becomes
// ["Cotton", "Denim", "Silk"].
func NormalizeSubTypes(in []string) []string {
	out := make([]string, 0, len(in))
	for _, raw := range in {
		for _, piece := range strings.Split(raw, ",") {
			if piece = strings.TrimSpace(piece); piece != "" {
				out = append(out, piece)
			}
		}
	}
	return out
}

func validateImage(img *ports.ImageUpload) error {
	if img == nil || img.Reader == nil {
		return domain.NewValidationError("image", "image file is required")
	}
	if img.Size > maxImageSize {
		return domain.NewValidationError("image", "image exceeds the 5 MiB limit")
	}
	if _, ok := allowedImageTypes[img.ContentType]; !ok {
		return domain.NewValidationError("image", "image must be JPEG, PNG or WebP")
	}
	return nil
}

// imageIDFromURI extracts the hex id from a /images/<id> reference. Foreign
// URIs (anything not produced by the local blob store) are left alone.
func imageIDFromURI(uri string) (string, bool) {
	id, ok := strings.CutPrefix(uri, "/images/")
	if !ok || !domain.IsValidProductID(id) {
		return "", false
	}
	return id, true
}
