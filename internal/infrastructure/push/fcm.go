package push

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrNoServerKey indicates the gateway client was constructed without a
// server key; delivery is skipped and callers should report tokens as
// counted but not sent.
var ErrNoServerKey = errors.New("push: FCM server key is not configured")

// Notification is the visible part of a push payload.
type Notification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Sound string `json:"sound"`
}

// multicastRequest is the body of the FCM legacy multicast endpoint.
type multicastRequest struct {
	RegistrationIDs []string          `json:"registration_ids"`
	Notification    Notification      `json:"notification"`
	Data            map[string]string `json:"data"`
}

// multicastResponse carries the aggregate counts the gateway reports back.
// Per-token results exist in the response but are not consumed; the caller
// only relays the success count.
type multicastResponse struct {
	Success int `json:"success"`
	Failure int `json:"failure"`
}

// Gateway posts batched notifications to the FCM legacy multicast endpoint
// using a server-held key.
type Gateway struct {
	endpoint  string
	serverKey string
	client    *http.Client
}

// NewGateway constructs a Gateway. endpoint is the multicast URL; an empty
// serverKey produces a gateway whose Send always returns ErrNoServerKey.
func NewGateway(endpoint, serverKey string) *Gateway {
	return &Gateway{
		endpoint:  endpoint,
		serverKey: serverKey,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Send delivers one batched request for the given device tokens and returns
// the gateway's reported success count. data is attached as-is; the sound
// is always "default" to match the mobile clients.
func (g *Gateway) Send(ctx context.Context, tokens []string, title, body string, data map[string]string) (int, error) {
	if len(tokens) == 0 {
		return 0, nil
	}
	if g.serverKey == "" {
		return 0, ErrNoServerKey
	}
	if data == nil {
		data = map[string]string{}
	}

	reqBody := multicastRequest{
		RegistrationIDs: tokens,
		Notification:    Notification{Title: title, Body: body, Sound: "default"},
		Data:            data,
	}
	b, err := json.Marshal(reqBody)
	if err != nil {
		return 0, fmt.Errorf("push: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(b))
	if err != nil {
		return 0, fmt.Errorf("push: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "key="+g.serverKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("push: gateway request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("push: gateway returned status %d", resp.StatusCode)
	}

	var result multicastResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, fmt.Errorf("push: decode response: %w", err)
	}
	return result.Success, nil
}
