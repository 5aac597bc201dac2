package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	document "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/document/application/domain"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/document/persistence/repository/adapter"
	repository "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/document/persistence/repository/port"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/identity/presentation/middleware"
)

// AddGalleryImageController records a portfolio image at a generated
// object path.
type AddGalleryImageController struct {
	Repo repository.DocumentRepository
}

func NewAddGalleryImageController(pool *pgxpool.Pool) *AddGalleryImageController {
	return &AddGalleryImageController{Repo: adapter.NewPgDocumentRepository(pool)}
}

type addGalleryImageRequest struct {
	Ext string `json:"ext" binding:"required"`
}

func (h *AddGalleryImageController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, _ := middleware.GetSession(c)

		var req addGalleryImageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		path, err := document.ObjectPath(sess.UserID, "gallery-"+uuid.NewString(), req.Ext)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		img, err := h.Repo.AddGalleryImage(ctx, document.GalleryImage{UserID: sess.UserID, FilePath: path})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save image"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"id":         img.ID,
			"file_path":  img.FilePath,
			"created_at": img.CreatedAt,
		})
	}
}

// ListGalleryController returns the caller's portfolio images.
type ListGalleryController struct {
	Repo repository.DocumentRepository
}

func NewListGalleryController(pool *pgxpool.Pool) *ListGalleryController {
	return &ListGalleryController{Repo: adapter.NewPgDocumentRepository(pool)}
}

func (h *ListGalleryController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, _ := middleware.GetSession(c)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		images, err := h.Repo.ListGallery(ctx, sess.UserID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load gallery"})
			return
		}

		out := make([]gin.H, 0, len(images))
		for _, g := range images {
			out = append(out, gin.H{
				"id":         g.ID,
				"file_path":  g.FilePath,
				"created_at": g.CreatedAt,
			})
		}
		c.JSON(http.StatusOK, gin.H{"images": out, "count": len(out)})
	}
}
