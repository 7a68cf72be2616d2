package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatEndpoint(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestChatSend(t *testing.T) {
	var got chatRequest
	srv := newChatEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":" Welcome to the hotel. "}}]}`))
	})

	svc := NewChatService(srv.URL, "test-key", "deepseek-chat", "You are the front desk companion.")
	reply, err := svc.Send(context.Background(), "s1", "hello")
	require.NoError(t, err)
	assert.Equal(t, "Welcome to the hotel.", reply)

	assert.Equal(t, "deepseek-chat", got.Model)
	assert.Equal(t, 0.5, got.Temperature)
	assert.Equal(t, 800, got.MaxTokens)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "user", got.Messages[1].Role)
	assert.Equal(t, "hello", got.Messages[1].Content)
}

func TestChatTranscript(t *testing.T) {
	srv := newChatEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"ok"}}]}`))
	})
	svc := NewChatService(srv.URL, "test-key", "deepseek-chat", "prompt")

	_, err := svc.Send(context.Background(), "s1", "first")
	require.NoError(t, err)
	_, err = svc.Send(context.Background(), "s1", "second")
	require.NoError(t, err)

	history := svc.History("s1")
	require.Len(t, history, 5)
	assert.Equal(t, "first", history[1].Content)
	assert.Equal(t, "ok", history[2].Content)
	assert.Equal(t, "second", history[3].Content)

	// sessions are independent
	assert.Len(t, svc.History("s2"), 1)

	svc.Reset("s1")
	history = svc.History("s1")
	require.Len(t, history, 1)
	assert.Equal(t, "system", history[0].Role)
}

func TestChatErrors(t *testing.T) {
	srv := newChatEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"bad key"}}`))
	})
	svc := NewChatService(srv.URL, "test-key", "deepseek-chat", "")

	_, err := svc.Send(context.Background(), "s1", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad key")

	// the failed exchange is not recorded
	assert.Empty(t, svc.History("s1"))

	_, err = svc.Send(context.Background(), "s1", "   ")
	assert.Error(t, err)

	disabled := NewChatService(srv.URL, "", "deepseek-chat", "")
	assert.False(t, disabled.Enabled())
	_, err = disabled.Send(context.Background(), "s1", "hello")
	assert.ErrorIs(t, err, ErrChatDisabled)
}
