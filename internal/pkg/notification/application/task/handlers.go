package task

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	queue "github.com/manager-glitch/birdco-vendor-hub/internal/infrastructure/queue/port"
	identity "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/identity/application/domain"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/notification/application/usecase"
	opportunity "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/opportunity/application/domain"
)

// Handlers processes notification tasks off the notify queue.
type Handlers struct {
	Dispatch *usecase.DispatchPushUseCase
	Logger   *slog.Logger
}

func NewHandlers(dispatch *usecase.DispatchPushUseCase, logger *slog.Logger) *Handlers {
	return &Handlers{Dispatch: dispatch, Logger: logger}
}

// Register installs the handlers on the worker server.
func (h *Handlers) Register(s queue.Server) {
	s.Register(TypeMessagePush, h.HandleMessagePush)
	s.Register(TypeApplicationDecision, h.HandleApplicationDecision)
}

func (h *Handlers) HandleMessagePush(ctx context.Context, t queue.Task) error {
	var p MessagePushPayload
	if err := json.Unmarshal(t.Payload, &p); err != nil {
		return fmt.Errorf("decode %s payload: %w", t.Type, err)
	}

	in := usecase.DispatchInput{
		Title: "New message",
		Body:  p.Preview,
		Data: map[string]string{
			"type":            "chat_message",
			"conversation_id": p.ConversationID,
		},
	}
	if p.SenderIsAdmin {
		in.UserIDs = []string{p.VendorID}
	} else {
		in.TargetRole = string(identity.RoleAdmin)
	}

	res, err := h.Dispatch.Execute(ctx, in)
	if err != nil {
		return err
	}
	h.Logger.Info("message push dispatched",
		"conversationId", p.ConversationID, "sent", res.Sent, "ios", res.IOSTokens)
	return nil
}

func (h *Handlers) HandleApplicationDecision(ctx context.Context, t queue.Task) error {
	var p ApplicationDecisionPayload
	if err := json.Unmarshal(t.Payload, &p); err != nil {
		return fmt.Errorf("decode %s payload: %w", t.Type, err)
	}

	title := "Application update"
	body := fmt.Sprintf("Your application for %q was %s.", p.OpportunityTitle, p.Status)
	if p.Status == string(opportunity.ApplicationAccepted) {
		title = "Application accepted"
	}

	res, err := h.Dispatch.Execute(ctx, usecase.DispatchInput{
		UserIDs: []string{p.UserID},
		Title:   title,
		Body:    body,
		Data:    map[string]string{"type": "application_decision", "status": p.Status},
	})
	if err != nil {
		return err
	}
	h.Logger.Info("decision push dispatched", "userId", p.UserID, "sent", res.Sent)
	return nil
}
