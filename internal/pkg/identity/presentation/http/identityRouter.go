package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/manager-glitch/birdco-vendor-hub/internal/infrastructure/token"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/identity/presentation/controller"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/identity/presentation/middleware"
)

// RegisterRoutes mounts auth endpoints under the given router group.
// It constructs per-endpoint controllers and binds them directly to routes.
func RegisterRoutes(g *gin.RouterGroup, pool *pgxpool.Pool, tokens *token.Service, auth *middleware.Auth, logger *slog.Logger) {
	signUpCtl := controller.NewSignUpController(pool, tokens)
	signInCtl := controller.NewSignInController(pool, tokens)
	signOutCtl := controller.NewSignOutController(auth)
	sessionCtl := controller.NewSessionController(pool)
	resetCtl := controller.NewResetPasswordController(pool, logger)

	g.POST("/auth/signup", signUpCtl.Handle())
	g.POST("/auth/signin", signInCtl.Handle())
	g.POST("/auth/reset-password", resetCtl.Handle())

	g.POST("/auth/signout", auth.Require(), signOutCtl.Handle())
	g.GET("/auth/session", auth.Require(), sessionCtl.Handle())
}
