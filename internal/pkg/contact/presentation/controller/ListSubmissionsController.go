package controller

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	contact "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/contact/application/domain"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/contact/persistence/repository/adapter"
	repository "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/contact/persistence/repository/port"
)

// ListSubmissionsController lets admins review recent contact-form
// submissions.
type ListSubmissionsController struct {
	Repo repository.ContactRepository
}

func NewListSubmissionsController(pool *pgxpool.Pool) *ListSubmissionsController {
	return &ListSubmissionsController{Repo: adapter.NewPgContactRepository(pool)}
}

func (h *ListSubmissionsController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		subs, err := h.Repo.ListSubmissions(ctx, limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list submissions"})
			return
		}

		out := make([]gin.H, 0, len(subs))
		for _, s := range subs {
			out = append(out, submissionPayload(s))
		}
		c.JSON(http.StatusOK, gin.H{"submissions": out})
	}
}

func submissionPayload(s contact.Submission) gin.H {
	return gin.H{
		"id":         s.ID,
		"user_id":    s.UserID,
		"name":       s.Name,
		"email":      s.Email,
		"message":    s.Message,
		"created_at": s.CreatedAt,
	}
}
