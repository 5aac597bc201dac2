package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/manager-glitch/birdco-vendor-hub/internal/infrastructure/realtime"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/chat/application/usecase"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/chat/presentation/controller"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/identity/presentation/middleware"
)

// RegisterRoutes mounts the messaging endpoints and the realtime socket.
func RegisterRoutes(g *gin.RouterGroup, pool *pgxpool.Pool, auth *middleware.Auth, hub *realtime.Hub, events usecase.MessageEvents, logger *slog.Logger) {
	startCtl := controller.NewStartConversationController(pool)
	listCtl := controller.NewListMessagesController(pool)
	sendCtl := controller.NewSendMessageController(pool, events)
	readCtl := controller.NewMarkMessagesReadController(pool, events)
	inboxCtl := controller.NewListConversationsController(pool)
	socketCtl := controller.NewChatSocketController(pool, hub, events, logger)

	cv := g.Group("/conversations", auth.Require())
	{
		cv.POST("", startCtl.Handle())
		cv.GET("/:id/messages", listCtl.Handle())
		cv.POST("/:id/messages", sendCtl.Handle())
		cv.POST("/:id/read", readCtl.Handle())
	}

	g.GET("/ws", auth.Require(), socketCtl.Handle())
	g.GET("/admin/conversations", auth.Require(), auth.RequireAdmin(), inboxCtl.Handle())
}
