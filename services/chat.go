package services

import (
	"context"

	appContext "github.com/alphabatem/common/context"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/avanee-labs/guarani_api/dto"
	"github.com/avanee-labs/guarani_api/model"
	"github.com/avanee-labs/guarani_api/shared"
)

// ChatService keeps per-session transcripts and proxies the learner's
// messages to the completion backend.
type ChatService struct {
	appContext.DefaultService
	db         *PostgresService
	completion *CompletionService
	monitoring *MonitoringService
}

const CHAT_SVC = "chat_svc"

// transcriptWindow bounds the context sent upstream.
const transcriptWindow = 10

func (svc ChatService) Id() string {
	return CHAT_SVC
}

func (svc *ChatService) Start() error {
	svc.db = svc.Service(POSTGRES_SVC).(*PostgresService)
	svc.completion = svc.Service(COMPLETION_SVC).(*CompletionService)
	if mon, ok := svc.Service(MONITORING_SVC).(*MonitoringService); ok {
		svc.monitoring = mon
	}
	return nil
}

// SendMessage stores the learner's message, gathers the recent
// transcript and returns the tutor's reply. Upstream failures are
// absorbed by the completion layer and still produce a stored reply.
func (svc *ChatService) SendMessage(ctx context.Context, userID string, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	sessionID := req.SessionID
	if sessionID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return nil, shared.NewInternalError(err, "Failed to create chat session")
		}
		sessionID = id.String()
	}

	_, err := svc.db.CreateChatMessage(&model.ChatMessage{
		UserID:    userID,
		SessionID: sessionID,
		Role:      shared.ChatRoleUser,
		Message:   req.Message,
	})
	if err != nil {
		return nil, err
	}

	history, err := svc.db.GetRecentChatMessages(sessionID, transcriptWindow)
	if err != nil {
		return nil, err
	}

	transcript := make([]CompletionMessage, 0, len(history))
	for _, row := range history {
		transcript = append(transcript, CompletionMessage{
			Role:    row.Role,
			Content: row.Message,
		})
	}

	result := svc.completion.Complete(ctx, transcript)
	if result.FallbackReason != "" {
		log.WithFields(log.Fields{
			"session_id": sessionID,
			"reason":     result.FallbackReason,
		}).Info("Chat reply served from fallback")
		if svc.monitoring != nil {
			svc.monitoring.RecordChatFallback(result.FallbackReason)
		}
	}

	_, err = svc.db.CreateChatMessage(&model.ChatMessage{
		UserID:    userID,
		SessionID: sessionID,
		Role:      shared.ChatRoleAssistant,
		Message:   result.Reply,
	})
	if err != nil {
		return nil, err
	}

	return &dto.ChatResponse{
		SessionID: sessionID,
		Response:  result.Reply,
	}, nil
}

// GetHistory returns the full session transcript oldest-first.
func (svc *ChatService) GetHistory(sessionID string) (*dto.ChatHistoryResponse, error) {
	rows, err := svc.db.GetChatHistory(sessionID)
	if err != nil {
		return nil, err
	}

	messages := make([]dto.ChatMessageResponse, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, dto.ChatMessageResponse{
			ID:        row.ID,
			SessionID: row.SessionID,
			Role:      row.Role,
			Message:   row.Message,
			CreatedAt: row.CreatedAt,
		})
	}

	return &dto.ChatHistoryResponse{
		SessionID: sessionID,
		Messages:  messages,
	}, nil
}
