package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/document/application/usecase"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/document/persistence/repository/adapter"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/identity/presentation/middleware"
)

// ListDocumentsController returns the caller's documents and completeness
// against their role's required set.
type ListDocumentsController struct {
	UC *usecase.ListDocumentsUseCase
}

func NewListDocumentsController(pool *pgxpool.Pool) *ListDocumentsController {
	repo := adapter.NewPgDocumentRepository(pool)
	return &ListDocumentsController{UC: usecase.NewListDocumentsUseCase(repo)}
}

func (h *ListDocumentsController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, _ := middleware.GetSession(c)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		result, err := h.UC.Execute(ctx, usecase.ListDocumentsInput{UserID: sess.UserID, Role: sess.Role})
		if err != nil {
			if errors.Is(err, usecase.ErrPersistence) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load documents"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		docs := make([]gin.H, 0, len(result.Documents))
		for _, d := range result.Documents {
			docs = append(docs, gin.H{
				"id":          d.ID,
				"doc_type":    d.DocType,
				"file_path":   d.FilePath,
				"uploaded_at": d.UploadedAt,
			})
		}

		c.JSON(http.StatusOK, gin.H{
			"documents": docs,
			"required":  result.Required,
			"missing":   result.Missing,
		})
	}
}
