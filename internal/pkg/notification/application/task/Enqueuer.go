package task

import (
	"context"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	queue "github.com/manager-glitch/birdco-vendor-hub/internal/infrastructure/queue/port"
	chat "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/chat/application/domain"
	opportunity "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/opportunity/application/domain"
)

const previewLength = 120

// Enqueuer puts notification work on the notify queue. It satisfies the
// decision-notifier port of the opportunity module.
type Enqueuer struct {
	Queue queue.Client
}

func NewEnqueuer(q queue.Client) *Enqueuer {
	return &Enqueuer{Queue: q}
}

func (e *Enqueuer) enqueue(ctx context.Context, taskType string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", taskType, err)
	}
	_, err = e.Queue.Enqueue(ctx, queue.Task{Type: taskType, Payload: body},
		queue.EnqueueOption{Queue: QueueNotify, MaxRetry: 3})
	return err
}

// EnqueueMessagePush schedules the push fan-out for a freshly sent message.
func (e *Enqueuer) EnqueueMessagePush(ctx context.Context, m chat.Message, vendorID string, senderIsAdmin bool) error {
	preview := m.Content
	if utf8.RuneCountInString(preview) > previewLength {
		preview = string([]rune(preview)[:previewLength])
	}
	return e.enqueue(ctx, TypeMessagePush, MessagePushPayload{
		ConversationID: m.ConversationID,
		VendorID:       vendorID,
		SenderID:       m.SenderID,
		SenderIsAdmin:  senderIsAdmin,
		Preview:        preview,
	})
}

// NotifyApplicationDecision schedules the applicant's decision push.
func (e *Enqueuer) NotifyApplicationDecision(ctx context.Context, userID, opportunityTitle string, status opportunity.ApplicationStatus) error {
	return e.enqueue(ctx, TypeApplicationDecision, ApplicationDecisionPayload{
		UserID:           userID,
		OpportunityTitle: opportunityTitle,
		Status:           string(status),
	})
}
