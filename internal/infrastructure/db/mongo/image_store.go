package mongo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/threadline/catalog-api/internal/core/domain"
)

const imageCollection = "images"

// maxStoredImageSize bounds how much of an upload Save will read. The
// service validates the declared size first; this guards against lying
// Content-Length headers.
const maxStoredImageSize = 5 << 20

// ImageStore is the blob-store adapter. Payloads live as binary documents
// in the images collection and resolve through /images/<hex id>, which is
// the stable reference URI written into Product.Image.
type ImageStore struct {
	coll *mongo.Collection
}

func NewImageStore(db *mongo.Database) *ImageStore {
	return &ImageStore{coll: db.Collection(imageCollection)}
}

type mongoImage struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Filename    string             `bson:"filename"`
	ContentType string             `bson:"content_type"`
	Size        int64              `bson:"size"`
	Data        primitive.Binary   `bson:"data"`
	CreatedAt   time.Time          `bson:"created_at"`
}

// Save stores the payload and returns its reference URI.
func (s *ImageStore) Save(ctx context.Context, filename, contentType string, size int64, r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxStoredImageSize+1))
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	if len(data) > maxStoredImageSize {
		return "", fmt.Errorf("image payload exceeds %d bytes", maxStoredImageSize)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoImage{
		Filename:    filename,
		ContentType: contentType,
		Size:        int64(len(data)),
		Data:        primitive.Binary{Data: data},
		CreatedAt:   time.Now().UTC(),
	}

	res, err := s.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert image: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert image: unexpected id type %T", res.InsertedID)
	}
	return "/images/" + oid.Hex(), nil
}

// Open retrieves a stored image by its hex id.
func (s *ImageStore) Open(ctx context.Context, id string) (*domain.Image, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrImageNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mi mongoImage
	if err := s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mi); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrImageNotFound
		}
		return nil, fmt.Errorf("find image: %w", err)
	}

	return &domain.Image{
		ID:          mi.ID.Hex(),
		Filename:    mi.Filename,
		ContentType: mi.ContentType,
		Size:        mi.Size,
		Data:        mi.Data.Data,
		CreatedAt:   mi.CreatedAt.UTC(),
	}, nil
}

// Delete removes a stored image. Missing ids are not an error; the caller
// only uses this to clean up replaced references.
func (s *ImageStore) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete image: %w", err)
	}
	return nil
}
