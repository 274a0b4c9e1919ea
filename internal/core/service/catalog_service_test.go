package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/threadline/catalog-api/internal/core/domain"
	"github.com/threadline/catalog-api/internal/core/ports"
)

const testID = "64f1b2c3d4e5f60718293a4b"

type stubProductRepo struct {
	products map[string]*domain.Product
	inserts  int
	listed   []*domain.Product
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[string]*domain.Product)}
}

func (r *stubProductRepo) List(context.Context) ([]*domain.Product, error) {
	return r.listed, nil
}

func (r *stubProductRepo) Insert(_ context.Context, p *domain.Product) (*domain.Product, error) {
	r.inserts++
	clone := *p
	clone.ID = testID
	r.products[clone.ID] = &clone
	return &clone, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProductRepo) Update(_ context.Context, p *domain.Product) (*domain.Product, error) {
	if _, ok := r.products[p.ID]; !ok {
		return nil, domain.ErrProductNotFound
	}
	clone := *p
	r.products[p.ID] = &clone
	return p, nil
}

func (r *stubProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

type stubImageStore struct {
	saves   int
	deletes []string
	nextID  string
}

func (s *stubImageStore) Save(_ context.Context, _, _ string, _ int64, r io.Reader) (string, error) {
	s.saves++
	_, _ = io.Copy(io.Discard, r)
	id := s.nextID
	if id == "" {
		id = "aaaaaaaaaaaaaaaaaaaaaaaa"
	}
	return "/images/" + id, nil
}

func (s *stubImageStore) Open(_ context.Context, id string) (*domain.Image, error) {
	return nil, domain.ErrImageNotFound
}

func (s *stubImageStore) Delete(_ context.Context, id string) error {
	s.deletes = append(s.deletes, id)
	return nil
}

func testUpload() *ports.ImageUpload {
	return &ports.ImageUpload{
		Filename:    "shirt.jpg",
		ContentType: "image/jpeg",
		Size:        1024,
		Reader:      strings.NewReader("fake-image-bytes"),
	}
}

func newTestCatalog() (*CatalogService, *stubProductRepo, *stubImageStore) {
	repo := newStubProductRepo()
	images := &stubImageStore{}
	return NewCatalogService(repo, images, zerolog.Nop()), repo, images
}

func TestAddProduct_NormalizesInput(t *testing.T) {
	svc, repo, images := newTestCatalog()

	product, err := svc.AddProduct(context.Background(), ports.AddProductInput{
		Category: "  Shirt ",
		SubTypes: []string{"Cotton, Denim ,  Silk"},
		Image:    testUpload(),
	})
	if err != nil {
		t.Fatalf("AddProduct returned error: %v", err)
	}

	if product.Category != "Shirt" {
		t.Fatalf("expected trimmed category, got %q", product.Category)
	}
	want := []string{"Cotton", "Denim", "Silk"}
	if len(product.SubTypes) != len(want) {
		t.Fatalf("expected %v, got %v", want, product.SubTypes)
	}
	for i, st := range want {
		if product.SubTypes[i] != st {
			t.Fatalf("expected %v, got %v", want, product.SubTypes)
		}
	}
	if product.Image != "/images/aaaaaaaaaaaaaaaaaaaaaaaa" {
		t.Fatalf("unexpected image reference %q", product.Image)
	}
	if product.ID == "" || product.CreatedAt.IsZero() {
		t.Fatalf("expected assigned id and createdAt, got %+v", product)
	}
	if repo.inserts != 1 || images.saves != 1 {
		t.Fatalf("expected one insert and one save, got %d/%d", repo.inserts, images.saves)
	}
}

func TestAddProduct_EmptyCategory(t *testing.T) {
	svc, repo, images := newTestCatalog()

	_, err := svc.AddProduct(context.Background(), ports.AddProductInput{
		Category: "   ",
		SubTypes: []string{"Cotton"},
		Image:    testUpload(),
	})

	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Field != "category" {
		t.Fatalf("expected category validation error, got %v", err)
	}
	if repo.inserts != 0 || images.saves != 0 {
		t.Fatalf("validation failure must not touch the stores")
	}
}

func TestAddProduct_EmptySubTypes(t *testing.T) {
	svc, repo, images := newTestCatalog()

	_, err := svc.AddProduct(context.Background(), ports.AddProductInput{
		Category: "Shirt",
		SubTypes: []string{" , ,  "},
		Image:    testUpload(),
	})

	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Field != "subTypes" {
		t.Fatalf("expected subTypes validation error, got %v", err)
	}
	if repo.inserts != 0 || images.saves != 0 {
		t.Fatalf("validation failure must not touch the stores")
	}
}

func TestAddProduct_MissingImage(t *testing.T) {
	svc, repo, images := newTestCatalog()

	_, err := svc.AddProduct(context.Background(), ports.AddProductInput{
		Category: "Shirt",
		SubTypes: []string{"Cotton"},
	})

	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Field != "image" {
		t.Fatalf("expected image validation error, got %v", err)
	}
	if repo.inserts != 0 || images.saves != 0 {
		t.Fatalf("validation failure must not touch the stores")
	}
}

func TestAddProduct_RejectsContentType(t *testing.T) {
	svc, _, _ := newTestCatalog()

	upload := testUpload()
	upload.ContentType = "application/pdf"
	_, err := svc.AddProduct(context.Background(), ports.AddProductInput{
		Category: "Shirt",
		SubTypes: []string{"Cotton"},
		Image:    upload,
	})

	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Field != "image" {
		t.Fatalf("expected image validation error, got %v", err)
	}
}

func TestDeleteProduct_InvalidID(t *testing.T) {
	svc, _, _ := newTestCatalog()

	if err := svc.DeleteProduct(context.Background(), "zz-not-hex"); !errors.Is(err, domain.ErrInvalidProductID) {
		t.Fatalf("expected ErrInvalidProductID, got %v", err)
	}
}

func TestDeleteProduct_NotFound(t *testing.T) {
	svc, _, _ := newTestCatalog()

	if err := svc.DeleteProduct(context.Background(), testID); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestDeleteProduct_SecondDeleteFails(t *testing.T) {
	svc, _, _ := newTestCatalog()

	if _, err := svc.AddProduct(context.Background(), ports.AddProductInput{
		Category: "Shirt",
		SubTypes: []string{"Cotton"},
		Image:    testUpload(),
	}); err != nil {
		t.Fatalf("seed product: %v", err)
	}

	if err := svc.DeleteProduct(context.Background(), testID); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	if err := svc.DeleteProduct(context.Background(), testID); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound on repeat delete, got %v", err)
	}
}

func TestListProducts_PassesThroughOrder(t *testing.T) {
	svc, repo, _ := newTestCatalog()

	now := time.Now().UTC()
	repo.listed = []*domain.Product{
		{ID: "b", CreatedAt: now},
		{ID: "a", CreatedAt: now.Add(-time.Hour)},
	}

	got, err := svc.ListProducts(context.Background())
	if err != nil {
		t.Fatalf("ListProducts returned error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "b" || got[1].ID != "a" {
		t.Fatalf("expected repository order preserved, got %+v", got)
	}
}

func TestUpdateProduct_MergesSuppliedFields(t *testing.T) {
	svc, _, images := newTestCatalog()

	if _, err := svc.AddProduct(context.Background(), ports.AddProductInput{
		Category: "Shirt",
		SubTypes: []string{"Cotton"},
		Image:    testUpload(),
	}); err != nil {
		t.Fatalf("seed product: %v", err)
	}

	category := " Jacket "
	updated, err := svc.UpdateProduct(context.Background(), testID, ports.UpdateProductInput{
		Category: &category,
	})
	if err != nil {
		t.Fatalf("UpdateProduct returned error: %v", err)
	}
	if updated.Category != "Jacket" {
		t.Fatalf("expected updated category, got %q", updated.Category)
	}
	if len(updated.SubTypes) != 1 || updated.SubTypes[0] != "Cotton" {
		t.Fatalf("subTypes must be untouched, got %v", updated.SubTypes)
	}
	if len(images.deletes) != 0 {
		t.Fatalf("no image was replaced, nothing should be deleted")
	}
}

func TestUpdateProduct_ReplacesImage(t *testing.T) {
	svc, _, images := newTestCatalog()

	if _, err := svc.AddProduct(context.Background(), ports.AddProductInput{
		Category: "Shirt",
		SubTypes: []string{"Cotton"},
		Image:    testUpload(),
	}); err != nil {
		t.Fatalf("seed product: %v", err)
	}

	images.nextID = "bbbbbbbbbbbbbbbbbbbbbbbb"
	updated, err := svc.UpdateProduct(context.Background(), testID, ports.UpdateProductInput{
		Image: testUpload(),
	})
	if err != nil {
		t.Fatalf("UpdateProduct returned error: %v", err)
	}
	if updated.Image != "/images/bbbbbbbbbbbbbbbbbbbbbbbb" {
		t.Fatalf("expected new image reference, got %q", updated.Image)
	}
	if len(images.deletes) != 1 || images.deletes[0] != "aaaaaaaaaaaaaaaaaaaaaaaa" {
		t.Fatalf("expected prior payload removed, got %v", images.deletes)
	}
}

func TestUpdateProduct_NotFound(t *testing.T) {
	svc, _, _ := newTestCatalog()

	category := "Jacket"
	_, err := svc.UpdateProduct(context.Background(), testID, ports.UpdateProductInput{Category: &category})
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestNormalizeSubTypes(t *testing.T) {
	got := NormalizeSubTypes([]string{"Cotton, Denim ,  Silk", "", " Wool "})
	want := []string{"Cotton", "Denim", "Silk", "Wool"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
