package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	appContext "github.com/alphabatem/common/context"
	"github.com/bytedance/sonic"
	log "github.com/sirupsen/logrus"
)

// CompletionService talks to an OpenAI-compatible chat completions
// endpoint. When no API key is configured, or the upstream call fails,
// callers receive a canned tutor reply instead of an error so the chat
// surface never breaks.
type CompletionService struct {
	appContext.DefaultService

	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

const COMPLETION_SVC = "completion_svc"

const (
	// Fixed tutor persona prepended to every upstream request.
	TutorSystemPrompt = "You are a helpful and patient Guarani language teacher. You help students learn Guarani, " +
		"an indigenous language of Paraguay. Answer questions about Guarani grammar, vocabulary, " +
		"pronunciation, and culture. Keep responses concise and educational. When teaching words or " +
		"phrases, include pronunciation hints when helpful."

	FallbackNotConfigured = "Mba'éichapa! I'm your Guarani language teacher. I can help you practice Guarani, " +
		"answer questions about grammar, vocabulary, and culture. What would you like to learn today?"

	FallbackRequestFailed = "Mba'éichapa! I'm here to help you learn Guarani. Ask me anything about the language, " +
		"grammar, vocabulary, or culture!"
)

type CompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionResult carries either the model reply or the reason a
// canned fallback was used. Exactly one of the two is meaningful.
type CompletionResult struct {
	Reply          string
	FallbackReason string
}

type chatCompletionRequest struct {
	Model       string              `json:"model"`
	Messages    []CompletionMessage `json:"messages"`
	MaxTokens   int                 `json:"max_tokens"`
	Temperature float64             `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

func (svc CompletionService) Id() string {
	return COMPLETION_SVC
}

func (svc *CompletionService) Configure(ctx *appContext.Context) error {
	svc.apiKey = os.Getenv("OPENAI_API_KEY")

	svc.model = os.Getenv("OPENAI_MODEL")
	if svc.model == "" {
		svc.model = "gpt-3.5-turbo"
	}

	svc.baseURL = os.Getenv("OPENAI_BASE_URL")
	if svc.baseURL == "" {
		svc.baseURL = "https://api.openai.com/v1"
	}

	svc.client = &http.Client{Timeout: 15 * time.Second}

	return svc.DefaultService.Configure(ctx)
}

func (svc *CompletionService) Start() error {
	if svc.apiKey == "" {
		log.Warn("OPENAI_API_KEY not set, chat will use canned replies")
	}
	return nil
}

// Complete sends the transcript to the model. history is oldest-first
// and must not include the system prompt; it is added here.
func (svc *CompletionService) Complete(ctx context.Context, history []CompletionMessage) CompletionResult {
	if svc.apiKey == "" {
		return CompletionResult{Reply: FallbackNotConfigured, FallbackReason: "not_configured"}
	}

	reply, err := svc.request(ctx, history)
	if err != nil {
		log.WithError(err).Warn("Chat completion request failed")
		return CompletionResult{Reply: FallbackRequestFailed, FallbackReason: "request_failed"}
	}

	return CompletionResult{Reply: reply}
}

func (svc *CompletionService) request(ctx context.Context, history []CompletionMessage) (string, error) {
	messages := make([]CompletionMessage, 0, len(history)+1)
	messages = append(messages, CompletionMessage{Role: "system", Content: TutorSystemPrompt})
	messages = append(messages, history...)

	payload := chatCompletionRequest{
		Model:       svc.model,
		Messages:    messages,
		MaxTokens:   300,
		Temperature: 0.7,
	}

	body, err := sonic.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, svc.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+svc.apiKey)

	resp, err := svc.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("upstream returned status %d", resp.StatusCode)
	}

	var parsed chatCompletionResponse
	if err := sonic.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if parsed.Error != nil {
		return "", fmt.Errorf("upstream error: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("upstream returned no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}
