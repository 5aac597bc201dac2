package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/identity/presentation/middleware"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/opportunity/application/usecase"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/opportunity/presentation/controller"
)

// RegisterRoutes mounts the opportunity browse/apply endpoints and the
// admin posting management endpoints.
func RegisterRoutes(g *gin.RouterGroup, pool *pgxpool.Pool, auth *middleware.Auth, notifier usecase.DecisionNotifier, bypassApproval bool, logger *slog.Logger) {
	browseCtl := controller.NewBrowseOpportunitiesController(pool, bypassApproval)
	applyCtl := controller.NewApplyToOpportunityController(pool, bypassApproval)
	mineCtl := controller.NewListMyApplicationsController(pool)
	manageCtl := controller.NewManageOpportunityController(pool)
	reviewCtl := controller.NewReviewApplicationsController(pool, notifier, logger)

	o := g.Group("/opportunities", auth.Require())
	{
		o.GET("", browseCtl.Handle())
		o.POST("/:id/apply", applyCtl.Handle())
	}
	g.GET("/applications", auth.Require(), mineCtl.Handle())

	admin := g.Group("/admin/opportunities", auth.Require(), auth.RequireAdmin())
	{
		admin.POST("", manageCtl.HandleCreate())
		admin.PUT("/:id", manageCtl.HandleUpdate())
		admin.GET("/:id/applications", reviewCtl.HandleList())
		admin.PUT("/applications/:applicationId", reviewCtl.HandleDecide())
	}
}
