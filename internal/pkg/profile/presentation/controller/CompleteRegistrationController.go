package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	docadapter "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/document/persistence/repository/adapter"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/identity/presentation/middleware"
	profile "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/profile/application/domain"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/profile/application/usecase"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/profile/persistence/repository/adapter"
)

// CompleteRegistrationController closes the registration step once the
// profile and the role's required documents are all in place.
type CompleteRegistrationController struct {
	UC *usecase.CompleteRegistrationUseCase
}

func NewCompleteRegistrationController(pool *pgxpool.Pool) *CompleteRegistrationController {
	repo := adapter.NewPgProfileRepository(pool)
	docs := docadapter.NewPgDocumentRepository(pool)
	return &CompleteRegistrationController{UC: usecase.NewCompleteRegistrationUseCase(repo, docs)}
}

func (h *CompleteRegistrationController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, _ := middleware.GetSession(c)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		result, err := h.UC.Execute(ctx, usecase.CompleteRegistrationInput{
			UserID: sess.UserID,
			Role:   sess.Role,
		})
		if err != nil {
			switch {
			case errors.Is(err, profile.ErrIncompleteProfile):
				c.JSON(http.StatusBadRequest, gin.H{"error": "profile is incomplete"})
			case errors.Is(err, profile.ErrMissingDocuments):
				c.JSON(http.StatusBadRequest, gin.H{
					"error":   "required documents are missing",
					"missing": result.MissingDocuments,
				})
			case errors.Is(err, usecase.ErrPersistence):
				c.JSON(http.StatusInternalServerError, gin.H{"error": "could not complete registration"})
			default:
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"registration_completed": result.Completed})
	}
}
