package task

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	queue "github.com/manager-glitch/birdco-vendor-hub/internal/infrastructure/queue/port"
	chat "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/chat/application/domain"
	opportunity "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/opportunity/application/domain"
)

type fakeQueue struct {
	tasks []queue.Task
	opts  []queue.EnqueueOption
}

func (f *fakeQueue) Enqueue(ctx context.Context, t queue.Task, opts ...queue.EnqueueOption) (string, error) {
	f.tasks = append(f.tasks, t)
	f.opts = append(f.opts, opts...)
	return "task-id", nil
}

func (f *fakeQueue) Close() error { return nil }

func TestEnqueueMessagePush(t *testing.T) {
	q := &fakeQueue{}
	e := NewEnqueuer(q)

	m := chat.Message{
		ID:             "m1",
		ConversationID: "c1",
		SenderID:       "admin-1",
		Content:        strings.Repeat("x", 500),
	}
	require.NoError(t, e.EnqueueMessagePush(context.Background(), m, "vendor-1", true))

	require.Len(t, q.tasks, 1)
	assert.Equal(t, TypeMessagePush, q.tasks[0].Type)
	require.Len(t, q.opts, 1)
	assert.Equal(t, QueueNotify, q.opts[0].Queue)

	var p MessagePushPayload
	require.NoError(t, json.Unmarshal(q.tasks[0].Payload, &p))
	assert.Equal(t, "c1", p.ConversationID)
	assert.Equal(t, "vendor-1", p.VendorID)
	assert.True(t, p.SenderIsAdmin)
	assert.Len(t, p.Preview, previewLength, "long content is truncated")
}

func TestEnqueueMessagePushTruncatesOnRuneBoundary(t *testing.T) {
	q := &fakeQueue{}
	e := NewEnqueuer(q)

	m := chat.Message{
		ID:             "m1",
		ConversationID: "c1",
		SenderID:       "vendor-1",
		Content:        strings.Repeat("é", 500),
	}
	require.NoError(t, e.EnqueueMessagePush(context.Background(), m, "vendor-1", false))

	var p MessagePushPayload
	require.NoError(t, json.Unmarshal(q.tasks[0].Payload, &p))
	assert.True(t, utf8.ValidString(p.Preview), "preview must not split a rune")
	assert.Equal(t, previewLength, utf8.RuneCountInString(p.Preview))
}

func TestNotifyApplicationDecision(t *testing.T) {
	q := &fakeQueue{}
	e := NewEnqueuer(q)

	err := e.NotifyApplicationDecision(context.Background(), "u1", "Summer festival", opportunity.ApplicationAccepted)
	require.NoError(t, err)

	require.Len(t, q.tasks, 1)
	assert.Equal(t, TypeApplicationDecision, q.tasks[0].Type)

	var p ApplicationDecisionPayload
	require.NoError(t, json.Unmarshal(q.tasks[0].Payload, &p))
	assert.Equal(t, "u1", p.UserID)
	assert.Equal(t, "Summer festival", p.OpportunityTitle)
	assert.Equal(t, "accepted", p.Status)
}
