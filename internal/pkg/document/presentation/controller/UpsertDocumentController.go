package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	document "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/document/application/domain"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/document/application/usecase"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/document/persistence/repository/adapter"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/identity/presentation/middleware"
)

// UpsertDocumentController records an uploaded registration document
// (one controller per endpoint). Upload plumbing lives at the object store;
// this endpoint only records the canonical path.
type UpsertDocumentController struct {
	UC *usecase.UpsertDocumentUseCase
}

func NewUpsertDocumentController(pool *pgxpool.Pool) *UpsertDocumentController {
	repo := adapter.NewPgDocumentRepository(pool)
	return &UpsertDocumentController{UC: usecase.NewUpsertDocumentUseCase(repo)}
}

type upsertDocumentRequest struct {
	Ext string `json:"ext" binding:"required"`
}

func (h *UpsertDocumentController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, _ := middleware.GetSession(c)

		var req upsertDocumentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		doc, err := h.UC.Execute(ctx, usecase.UpsertDocumentInput{
			UserID:  sess.UserID,
			DocType: c.Param("docType"),
			Ext:     req.Ext,
		})
		if err != nil {
			switch {
			case errors.Is(err, document.ErrUnknownDocType), errors.Is(err, document.ErrBadFileName):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			case errors.Is(err, usecase.ErrPersistence):
				c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save document"})
			default:
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"id":          doc.ID,
			"doc_type":    doc.DocType,
			"file_path":   doc.FilePath,
			"uploaded_at": doc.UploadedAt,
		})
	}
}
