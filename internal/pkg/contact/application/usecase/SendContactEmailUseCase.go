package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	queue "github.com/manager-glitch/birdco-vendor-hub/internal/infrastructure/queue/port"
	contact "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/contact/application/domain"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/contact/application/task"
	repository "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/contact/persistence/repository/port"
)

var ErrPersistence = errors.New("persistence error")

// SendContactEmailUseCase validates and stores a contact-form submission,
// then hands delivery off to the queue. The caller gets an answer as soon
// as the row is committed; a failed enqueue only logs.
type SendContactEmailUseCase struct {
	Repo   repository.ContactRepository
	Queue  queue.Client
	Logger *slog.Logger
}

func NewSendContactEmailUseCase(repo repository.ContactRepository, q queue.Client, logger *slog.Logger) *SendContactEmailUseCase {
	return &SendContactEmailUseCase{Repo: repo, Queue: q, Logger: logger}
}

func (uc *SendContactEmailUseCase) Execute(ctx context.Context, s contact.Submission) (*contact.Submission, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	saved, err := uc.Repo.SaveSubmission(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if uc.Queue != nil {
		if err := task.EnqueueContactEmail(ctx, uc.Queue, saved); err != nil {
			uc.Logger.Warn("could not enqueue contact email", "submissionId", saved.ID, "error", err)
		}
	}
	return &saved, nil
}
