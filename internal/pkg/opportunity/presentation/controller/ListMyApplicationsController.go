package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/identity/presentation/middleware"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/opportunity/persistence/repository/adapter"
	repository "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/opportunity/persistence/repository/port"
)

// ListMyApplicationsController returns the caller's own applications.
type ListMyApplicationsController struct {
	Repo repository.OpportunityRepository
}

func NewListMyApplicationsController(pool *pgxpool.Pool) *ListMyApplicationsController {
	return &ListMyApplicationsController{Repo: adapter.NewPgOpportunityRepository(pool)}
}

func (h *ListMyApplicationsController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, _ := middleware.GetSession(c)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		list, err := h.Repo.ListApplicationsByUser(ctx, sess.UserID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load applications"})
			return
		}

		out := make([]gin.H, 0, len(list))
		for _, a := range list {
			out = append(out, applicationPayload(a))
		}
		c.JSON(http.StatusOK, gin.H{"applications": out})
	}
}
