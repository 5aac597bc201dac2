package repository

import (
	"context"

	contact "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/contact/application/domain"
)

// ContactRepository stores contact-form submissions.
type ContactRepository interface {
	SaveSubmission(ctx context.Context, s contact.Submission) (contact.Submission, error)
	ListSubmissions(ctx context.Context, limit int) ([]contact.Submission, error)
}
