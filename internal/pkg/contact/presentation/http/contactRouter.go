package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	queue "github.com/manager-glitch/birdco-vendor-hub/internal/infrastructure/queue/port"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/contact/presentation/controller"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/identity/presentation/middleware"
)

// RegisterRoutes mounts the contact-form endpoint and the admin review
// listing.
func RegisterRoutes(g *gin.RouterGroup, pool *pgxpool.Pool, auth *middleware.Auth, q queue.Client, logger *slog.Logger) {
	sendCtl := controller.NewSendContactEmailController(pool, q, logger)
	listCtl := controller.NewListSubmissionsController(pool)

	g.POST("/functions/send-contact-email", auth.Require(), sendCtl.Handle())
	g.GET("/admin/contact-submissions", auth.Require(), auth.RequireAdmin(), listCtl.Handle())
}
