package v1

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	queue "github.com/manager-glitch/birdco-vendor-hub/internal/infrastructure/queue/port"
	"github.com/manager-glitch/birdco-vendor-hub/internal/infrastructure/realtime"
	"github.com/manager-glitch/birdco-vendor-hub/internal/infrastructure/token"
	chatusecase "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/chat/application/usecase"
	chathttp "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/chat/presentation/http"
	contacthttp "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/contact/presentation/http"
	documenthttp "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/document/presentation/http"
	identityhttp "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/identity/presentation/http"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/identity/presentation/middleware"
	notificationusecase "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/notification/application/usecase"
	notificationhttp "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/notification/presentation/http"
	opportunityusecase "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/opportunity/application/usecase"
	opportunityhttp "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/opportunity/presentation/http"
	profilehttp "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/profile/presentation/http"
	referralhttp "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/referral/presentation/http"
)

// Deps are the shared singletons every module hangs off.
type Deps struct {
	Pool             *pgxpool.Pool
	Tokens           *token.Service
	Auth             *middleware.Auth
	Hub              *realtime.Hub
	Queue            queue.Client
	ChatEvents       chatusecase.MessageEvents
	DecisionNotifier opportunityusecase.DecisionNotifier
	PushSender       notificationusecase.PushSender
	BypassApproval   bool
	Logger           *slog.Logger
}

// Register mounts every module under /api/v1.
func Register(engine *gin.Engine, d Deps) {
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	g := engine.Group("/api/v1")

	identityhttp.RegisterRoutes(g, d.Pool, d.Tokens, d.Auth, d.Logger)
	profilehttp.RegisterRoutes(g, d.Pool, d.Auth)
	documenthttp.RegisterRoutes(g, d.Pool, d.Auth)
	opportunityhttp.RegisterRoutes(g, d.Pool, d.Auth, d.DecisionNotifier, d.BypassApproval, d.Logger)
	chathttp.RegisterRoutes(g, d.Pool, d.Auth, d.Hub, d.ChatEvents, d.Logger)
	notificationhttp.RegisterRoutes(g, d.Pool, d.Auth, d.PushSender)
	contacthttp.RegisterRoutes(g, d.Pool, d.Auth, d.Queue, d.Logger)
	referralhttp.RegisterRoutes(g, d.Pool, d.Auth)
}
