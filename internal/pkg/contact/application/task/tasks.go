package task

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	queue "github.com/manager-glitch/birdco-vendor-hub/internal/infrastructure/queue/port"
	contact "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/contact/application/domain"
)

// TypeContactEmail forwards a stored submission to the support inbox.
const TypeContactEmail = "contact:email"

// ContactEmailPayload mirrors the stored submission.
type ContactEmailPayload struct {
	SubmissionID string `json:"submission_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Message      string `json:"message"`
}

// EnqueueContactEmail schedules delivery of a submission.
func EnqueueContactEmail(ctx context.Context, q queue.Client, s contact.Submission) error {
	body, err := json.Marshal(ContactEmailPayload{
		SubmissionID: s.ID,
		Name:         s.Name,
		Email:        s.Email,
		Message:      s.Message,
	})
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", TypeContactEmail, err)
	}
	_, err = q.Enqueue(ctx, queue.Task{Type: TypeContactEmail, Payload: body},
		queue.EnqueueOption{Queue: "default", MaxRetry: 3})
	return err
}

// Handlers processes contact tasks. Delivery is log-only: the submission is
// already persisted and the support inbox reads from the table.
type Handlers struct {
	Logger *slog.Logger
}

func NewHandlers(logger *slog.Logger) *Handlers {
	return &Handlers{Logger: logger}
}

func (h *Handlers) Register(s queue.Server) {
	s.Register(TypeContactEmail, h.HandleContactEmail)
}

func (h *Handlers) HandleContactEmail(ctx context.Context, t queue.Task) error {
	var p ContactEmailPayload
	if err := json.Unmarshal(t.Payload, &p); err != nil {
		return fmt.Errorf("decode %s payload: %w", t.Type, err)
	}
	h.Logger.Info("contact email dispatched",
		"submissionId", p.SubmissionID, "from", p.Email, "name", p.Name)
	return nil
}
