package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/identity/presentation/middleware"
	referral "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/referral/application/domain"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/referral/persistence/repository/adapter"
	repository "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/referral/persistence/repository/port"
)

// CompletedEventsController handles list/create for the caller's past
// engagements.
type CompletedEventsController struct {
	Repo repository.ReferralRepository
}

func NewCompletedEventsController(pool *pgxpool.Pool) *CompletedEventsController {
	return &CompletedEventsController{Repo: adapter.NewPgReferralRepository(pool)}
}

type createCompletedEventRequest struct {
	Title     string    `json:"title" binding:"required"`
	EventDate time.Time `json:"event_date" binding:"required"`
}

func completedEventPayload(e referral.CompletedEvent) gin.H {
	return gin.H{
		"id":         e.ID,
		"title":      e.Title,
		"event_date": e.EventDate,
		"created_at": e.CreatedAt,
	}
}

func (h *CompletedEventsController) HandleCreate() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, _ := middleware.GetSession(c)

		var req createCompletedEventRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		in := referral.CompletedEvent{
			UserID:    sess.UserID,
			Title:     req.Title,
			EventDate: req.EventDate,
		}
		if err := in.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		saved, err := h.Repo.CreateCompletedEvent(ctx, in)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save event"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"completed_event": completedEventPayload(saved)})
	}
}

func (h *CompletedEventsController) HandleList() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, _ := middleware.GetSession(c)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		list, err := h.Repo.ListCompletedEvents(ctx, sess.UserID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load events"})
			return
		}

		out := make([]gin.H, 0, len(list))
		for _, e := range list {
			out = append(out, completedEventPayload(e))
		}
		c.JSON(http.StatusOK, gin.H{"completed_events": out})
	}
}
