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

// ReferralController handles list/create for the caller's referrals.
type ReferralController struct {
	Repo repository.ReferralRepository
}

func NewReferralController(pool *pgxpool.Pool) *ReferralController {
	return &ReferralController{Repo: adapter.NewPgReferralRepository(pool)}
}

type createReferralRequest struct {
	FriendName  string `json:"friend_name" binding:"required"`
	FriendEmail string `json:"friend_email" binding:"required"`
}

func referralPayload(r referral.Referral) gin.H {
	return gin.H{
		"id":           r.ID,
		"friend_name":  r.FriendName,
		"friend_email": r.FriendEmail,
		"created_at":   r.CreatedAt,
	}
}

func (h *ReferralController) HandleCreate() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, _ := middleware.GetSession(c)

		var req createReferralRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		in := referral.Referral{
			ReferrerID:  sess.UserID,
			FriendName:  req.FriendName,
			FriendEmail: req.FriendEmail,
		}
		if err := in.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		saved, err := h.Repo.CreateReferral(ctx, in)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save referral"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"referral": referralPayload(saved)})
	}
}

func (h *ReferralController) HandleList() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, _ := middleware.GetSession(c)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		list, err := h.Repo.ListReferrals(ctx, sess.UserID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load referrals"})
			return
		}

		out := make([]gin.H, 0, len(list))
		for _, r := range list {
			out = append(out, referralPayload(r))
		}
		c.JSON(http.StatusOK, gin.H{"referrals": out})
	}
}
