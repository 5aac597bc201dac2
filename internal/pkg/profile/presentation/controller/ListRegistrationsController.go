package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	profile "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/profile/application/domain"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/profile/persistence/repository/adapter"
	repository "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/profile/persistence/repository/port"
)

// ListRegistrationsController lists completed registrations awaiting
// review (admin only). An explicit ?status= widens the view to approved or
// rejected registrations.
type ListRegistrationsController struct {
	Repo repository.ProfileRepository
}

func NewListRegistrationsController(pool *pgxpool.Pool) *ListRegistrationsController {
	return &ListRegistrationsController{Repo: adapter.NewPgProfileRepository(pool)}
}

func (h *ListRegistrationsController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		status := profile.ApprovalPending
		if v := c.Query("status"); v != "" {
			parsed, err := profile.ParseApprovalStatus(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
				return
			}
			status = parsed
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		profiles, err := h.Repo.ListByApprovalStatus(ctx, status, status == profile.ApprovalPending)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load registrations"})
			return
		}

		out := make([]gin.H, 0, len(profiles))
		for _, p := range profiles {
			out = append(out, profilePayload(p))
		}
		c.JSON(http.StatusOK, gin.H{"registrations": out, "count": len(out)})
	}
}
