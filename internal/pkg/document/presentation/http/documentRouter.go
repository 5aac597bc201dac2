package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/document/presentation/controller"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/identity/presentation/middleware"
)

// RegisterRoutes mounts document and gallery endpoints. All routes require
// an authenticated session.
func RegisterRoutes(g *gin.RouterGroup, pool *pgxpool.Pool, auth *middleware.Auth) {
	listCtl := controller.NewListDocumentsController(pool)
	upsertCtl := controller.NewUpsertDocumentController(pool)
	addImageCtl := controller.NewAddGalleryImageController(pool)
	listImagesCtl := controller.NewListGalleryController(pool)

	docs := g.Group("/documents", auth.Require())
	{
		docs.GET("", listCtl.Handle())
		docs.PUT("/:docType", upsertCtl.Handle())
	}

	gallery := g.Group("/gallery", auth.Require())
	{
		gallery.GET("", listImagesCtl.Handle())
		gallery.POST("", addImageCtl.Handle())
	}
}
