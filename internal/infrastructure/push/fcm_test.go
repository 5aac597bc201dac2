package push

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGatewaySendPostsMulticastRequest(t *testing.T) {
	var got multicastRequest
	var auth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(map[string]int{"success": 2, "failure": 1})
	}))
	defer srv.Close()

	g := NewGateway(srv.URL, "test-key")
	sent, err := g.Send(context.Background(), []string{"tok-1", "tok-2", "tok-3"},
		"Hello", "World", map[string]string{"k": "v"})

	require.NoError(t, err)
	assert.Equal(t, 2, sent)
	assert.Equal(t, "key=test-key", auth)
	assert.Equal(t, []string{"tok-1", "tok-2", "tok-3"}, got.RegistrationIDs)
	assert.Equal(t, "Hello", got.Notification.Title)
	assert.Equal(t, "World", got.Notification.Body)
	assert.Equal(t, "default", got.Notification.Sound)
	assert.Equal(t, map[string]string{"k": "v"}, got.Data)
}

func TestGatewaySendNoTokensIsNoop(t *testing.T) {
	g := NewGateway("http://127.0.0.1:0", "test-key")
	sent, err := g.Send(context.Background(), nil, "Hello", "World", nil)
	require.NoError(t, err)
	assert.Zero(t, sent)
}

func TestGatewaySendWithoutKey(t *testing.T) {
	g := NewGateway("http://127.0.0.1:0", "")
	_, err := g.Send(context.Background(), []string{"tok"}, "Hello", "World", nil)
	assert.ErrorIs(t, err, ErrNoServerKey)
}

func TestGatewaySendNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	g := NewGateway(srv.URL, "bad-key")
	_, err := g.Send(context.Background(), []string{"tok"}, "Hello", "World", nil)
	assert.Error(t, err)
}
