package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/avanee-labs/guarani_api/dto"
	"github.com/avanee-labs/guarani_api/shared"
)

type ChatHandler struct {
	chatSvc ChatServiceInterface
}

func NewChatHandler(chatSvc ChatServiceInterface) *ChatHandler {
	return &ChatHandler{
		chatSvc: chatSvc,
	}
}

// @Summary Send Chat Message
// @Description Send a message to the Guarani tutor and receive a reply. Omitting session_id starts a new session.
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param chatRequest body dto.ChatRequest true "Message to send"
// @Success 200 {object} shared.Response{data=dto.ChatResponse}
// @Router /api/v1/chat [post]
func (h *ChatHandler) SendMessage(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		return dto.CreateValidationErrorResponse(c, err)
	}

	userID := c.Locals(shared.UserID).(string)

	resp, err := h.chatSvc.SendMessage(c.UserContext(), userID, &req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", resp)
}

// @Summary Get Chat History
// @Description Get the full transcript of a chat session oldest-first
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Session ID"
// @Success 200 {object} shared.Response{data=dto.ChatHistoryResponse}
// @Router /api/v1/chat/history/{sessionId} [get]
func (h *ChatHandler) GetHistory(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")

	history, err := h.chatSvc.GetHistory(sessionID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", history)
}
