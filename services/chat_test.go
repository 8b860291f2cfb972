package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avanee-labs/guarani_api/dto"
	"github.com/avanee-labs/guarani_api/model"
	"github.com/avanee-labs/guarani_api/shared"
)

func newTestCompletion(baseURL, apiKey string) *CompletionService {
	return &CompletionService{
		apiKey:  apiKey,
		model:   "gpt-3.5-turbo",
		baseURL: baseURL,
		client:  &http.Client{Timeout: 2 * time.Second},
	}
}

func completionReply(text string) string {
	return fmt.Sprintf(`{"choices":[{"message":{"role":"assistant","content":%q}}]}`, text)
}

func TestCompleteWithoutAPIKey(t *testing.T) {
	svc := newTestCompletion("http://localhost:1", "")

	result := svc.Complete(context.Background(), nil)

	assert.Equal(t, FallbackNotConfigured, result.Reply)
	assert.Equal(t, "not_configured", result.FallbackReason)
}

func TestCompleteUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	svc := newTestCompletion(server.URL, "test-key")

	result := svc.Complete(context.Background(), []CompletionMessage{{Role: "user", Content: "hi"}})

	assert.Equal(t, FallbackRequestFailed, result.Reply)
	assert.Equal(t, "request_failed", result.FallbackReason)
}

func TestCompleteSendsSystemPromptFirst(t *testing.T) {
	var captured chatCompletionRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		fmt.Fprint(w, completionReply("Mba'éichapa!"))
	}))
	defer server.Close()

	svc := newTestCompletion(server.URL, "test-key")

	result := svc.Complete(context.Background(), []CompletionMessage{
		{Role: "user", Content: "How do I say hello?"},
	})

	assert.Equal(t, "Mba'éichapa!", result.Reply)
	assert.Empty(t, result.FallbackReason)

	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, TutorSystemPrompt, captured.Messages[0].Content)
	assert.Equal(t, "gpt-3.5-turbo", captured.Model)
	assert.Equal(t, 300, captured.MaxTokens)
}

func TestSendMessageCreatesSessionAndTranscript(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, completionReply("Aguyje for asking!"))
	}))
	defer server.Close()

	store := newTestStore(t)
	svc := &ChatService{db: store, completion: newTestCompletion(server.URL, "test-key")}

	resp, err := svc.SendMessage(context.Background(), "user-1", &dto.ChatRequest{
		Message: "How do I say thank you?",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, "Aguyje for asking!", resp.Response)

	history, err := store.GetChatHistory(resp.SessionID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, shared.ChatRoleUser, history[0].Role)
	assert.Equal(t, "How do I say thank you?", history[0].Message)
	assert.Equal(t, shared.ChatRoleAssistant, history[1].Role)
	assert.Equal(t, "Aguyje for asking!", history[1].Message)
}

func TestSendMessageReusesSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, completionReply("reply"))
	}))
	defer server.Close()

	store := newTestStore(t)
	svc := &ChatService{db: store, completion: newTestCompletion(server.URL, "test-key")}

	first, err := svc.SendMessage(context.Background(), "user-1", &dto.ChatRequest{Message: "one"})
	require.NoError(t, err)

	second, err := svc.SendMessage(context.Background(), "user-1", &dto.ChatRequest{
		Message:   "two",
		SessionID: first.SessionID,
	})
	require.NoError(t, err)

	assert.Equal(t, first.SessionID, second.SessionID)

	history, err := store.GetChatHistory(first.SessionID)
	require.NoError(t, err)
	assert.Len(t, history, 4)
}

func TestSendMessageBoundsTranscriptWindow(t *testing.T) {
	var captured chatCompletionRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		fmt.Fprint(w, completionReply("ok"))
	}))
	defer server.Close()

	store := newTestStore(t)
	svc := &ChatService{db: store, completion: newTestCompletion(server.URL, "test-key")}

	sessionID := "session-long"
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 14; i++ {
		_, err := store.CreateChatMessage(&model.ChatMessage{
			UserID:    "user-1",
			SessionID: sessionID,
			Role:      shared.ChatRoleUser,
			Message:   fmt.Sprintf("message %d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	_, err := svc.SendMessage(context.Background(), "user-1", &dto.ChatRequest{
		Message:   "latest",
		SessionID: sessionID,
	})
	require.NoError(t, err)

	// System prompt plus the last 10 transcript rows.
	require.Len(t, captured.Messages, 11)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "latest", captured.Messages[10].Content)
	// Oldest rows fall outside the window.
	assert.Equal(t, "message 5", captured.Messages[1].Content)
}

func TestSendMessageStoresFallbackReply(t *testing.T) {
	store := newTestStore(t)
	svc := &ChatService{db: store, completion: newTestCompletion("http://localhost:1", "")}

	resp, err := svc.SendMessage(context.Background(), "user-1", &dto.ChatRequest{Message: "hello"})
	require.NoError(t, err)

	assert.Equal(t, FallbackNotConfigured, resp.Response)

	history, err := store.GetChatHistory(resp.SessionID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, FallbackNotConfigured, history[1].Message)
}

func TestGetHistoryOrdersOldestFirst(t *testing.T) {
	store := newTestStore(t)
	svc := &ChatService{db: store}

	sessionID := "session-order"
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		_, err := store.CreateChatMessage(&model.ChatMessage{
			UserID:    "user-1",
			SessionID: sessionID,
			Role:      shared.ChatRoleUser,
			Message:   fmt.Sprintf("message %d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	history, err := svc.GetHistory(sessionID)
	require.NoError(t, err)

	assert.Equal(t, sessionID, history.SessionID)
	require.Len(t, history.Messages, 3)
	assert.Equal(t, "message 0", history.Messages[0].Message)
	assert.Equal(t, "message 2", history.Messages[2].Message)
}
