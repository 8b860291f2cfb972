package dto

import "time"

// ==================== CHAT DTOs ====================

type ChatRequest struct {
	Message   string `json:"message" validate:"required" example:"How do I say hello in Guarani?"`
	SessionID string `json:"session_id,omitempty"`
}

func (r ChatRequest) Validate() error {
	return GetValidator().Struct(r)
}

type ChatResponse struct {
	SessionID string `json:"session_id"`
	Response  string `json:"response"`
}

type ChatMessageResponse struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Role      string    `json:"role"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type ChatHistoryResponse struct {
	SessionID string                `json:"session_id"`
	Messages  []ChatMessageResponse `json:"messages"`
}
