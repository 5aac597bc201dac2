package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/identity/presentation/middleware"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/profile/presentation/controller"
)

// RegisterRoutes mounts profile and registration-workflow endpoints.
func RegisterRoutes(g *gin.RouterGroup, pool *pgxpool.Pool, auth *middleware.Auth) {
	getCtl := controller.NewGetProfileController(pool)
	updateCtl := controller.NewUpdateProfileController(pool)
	completeCtl := controller.NewCompleteRegistrationController(pool)
	listRegCtl := controller.NewListRegistrationsController(pool)
	reviewCtl := controller.NewReviewRegistrationController(pool)

	p := g.Group("/profile", auth.Require())
	{
		p.GET("", getCtl.Handle())
		p.PUT("", updateCtl.Handle())
		p.POST("/complete-registration", completeCtl.Handle())
	}

	admin := g.Group("/admin/registrations", auth.Require(), auth.RequireAdmin())
	{
		admin.GET("", listRegCtl.Handle())
		admin.PUT("/:userId", reviewCtl.Handle())
	}
}
