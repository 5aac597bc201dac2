package repository

import (
	"context"

	document "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/document/application/domain"
)

// DocumentRepository defines persistence operations for registration
// documents and gallery images.
type DocumentRepository interface {
	UpsertDocument(ctx context.Context, d document.Document) (document.Document, error)
	ListDocuments(ctx context.Context, userID string) ([]document.Document, error)
	ListDocTypes(ctx context.Context, userID string) ([]string, error)
	AddGalleryImage(ctx context.Context, g document.GalleryImage) (document.GalleryImage, error)
	ListGallery(ctx context.Context, userID string) ([]document.GalleryImage, error)
}
