package adapter

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	document "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/document/application/domain"
)

type PgDocumentRepository struct {
	pool *pgxpool.Pool
}

func NewPgDocumentRepository(pool *pgxpool.Pool) *PgDocumentRepository {
	return &PgDocumentRepository{pool: pool}
}

// UpsertDocument keeps at most one record per (user, doc_type); a re-upload
// replaces the path and refreshes the timestamp.
func (r *PgDocumentRepository) UpsertDocument(ctx context.Context, d document.Document) (document.Document, error) {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO vendor_documents (user_id, doc_type, file_path)
		VALUES ($1::uuid, $2, $3)
		ON CONFLICT (user_id, doc_type) DO UPDATE SET
			file_path = EXCLUDED.file_path,
			uploaded_at = now()
		RETURNING id::text, user_id::text, doc_type, file_path, uploaded_at
	`, d.UserID, d.DocType, d.FilePath).Scan(&d.ID, &d.UserID, &d.DocType, &d.FilePath, &d.UploadedAt)
	return d, err
}

func (r *PgDocumentRepository) ListDocuments(ctx context.Context, userID string) ([]document.Document, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, user_id::text, doc_type, file_path, uploaded_at
		FROM vendor_documents WHERE user_id = $1::uuid
		ORDER BY uploaded_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []document.Document
	for rows.Next() {
		var d document.Document
		if err := rows.Scan(&d.ID, &d.UserID, &d.DocType, &d.FilePath, &d.UploadedAt); err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

func (r *PgDocumentRepository) ListDocTypes(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT doc_type FROM vendor_documents WHERE user_id = $1::uuid
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

func (r *PgDocumentRepository) AddGalleryImage(ctx context.Context, g document.GalleryImage) (document.GalleryImage, error) {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO vendor_gallery (user_id, file_path)
		VALUES ($1::uuid, $2)
		RETURNING id::text, user_id::text, file_path, created_at
	`, g.UserID, g.FilePath).Scan(&g.ID, &g.UserID, &g.FilePath, &g.CreatedAt)
	return g, err
}

func (r *PgDocumentRepository) ListGallery(ctx context.Context, userID string) ([]document.GalleryImage, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, user_id::text, file_path, created_at
		FROM vendor_gallery WHERE user_id = $1::uuid
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []document.GalleryImage
	for rows.Next() {
		var g document.GalleryImage
		if err := rows.Scan(&g.ID, &g.UserID, &g.FilePath, &g.CreatedAt); err != nil {
			return nil, err
		}
		images = append(images, g)
	}
	return images, rows.Err()
}
