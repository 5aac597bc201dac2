package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/identity/presentation/middleware"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/referral/presentation/controller"
)

// RegisterRoutes mounts referrals and completed-events endpoints.
func RegisterRoutes(g *gin.RouterGroup, pool *pgxpool.Pool, auth *middleware.Auth) {
	refCtl := controller.NewReferralController(pool)
	eventsCtl := controller.NewCompletedEventsController(pool)

	r := g.Group("/referrals", auth.Require())
	{
		r.GET("", refCtl.HandleList())
		r.POST("", refCtl.HandleCreate())
	}

	e := g.Group("/completed-events", auth.Require())
	{
		e.GET("", eventsCtl.HandleList())
		e.POST("", eventsCtl.HandleCreate())
	}
}
