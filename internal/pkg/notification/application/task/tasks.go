package task

// Task type identifiers routed to the notify queue.
const (
	TypeMessagePush         = "notify:message"
	TypeApplicationDecision = "notify:application_decision"
)

// QueueNotify is the asynq queue notification tasks run on.
const QueueNotify = "notify"

// MessagePushPayload carries enough of a chat message to build the push.
// Recipient resolution happens in the handler: vendor messages go to the
// admin team, admin messages go to the vendor.
type MessagePushPayload struct {
	ConversationID string `json:"conversation_id"`
	VendorID       string `json:"vendor_id"`
	SenderID       string `json:"sender_id"`
	SenderIsAdmin  bool   `json:"sender_is_admin"`
	Preview        string `json:"preview"`
}

// ApplicationDecisionPayload notifies an applicant their application was
// decided.
type ApplicationDecisionPayload struct {
	UserID           string `json:"user_id"`
	OpportunityTitle string `json:"opportunity_title"`
	Status           string `json:"status"`
}
