package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/identity/presentation/middleware"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/notification/application/usecase"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/notification/presentation/controller"
)

// RegisterRoutes mounts the device token registry and the admin push
// dispatch endpoint.
func RegisterRoutes(g *gin.RouterGroup, pool *pgxpool.Pool, auth *middleware.Auth, sender usecase.PushSender) {
	tokenCtl := controller.NewRegisterTokenController(pool)
	dispatchCtl := controller.NewSendPushNotificationController(pool, sender)

	g.POST("/push-tokens", auth.Require(), tokenCtl.Handle())
	g.DELETE("/push-tokens", auth.Require(), tokenCtl.HandleDelete())
	g.POST("/functions/send-push-notification", auth.Require(), auth.RequireAdmin(), dispatchCtl.Handle())
}
