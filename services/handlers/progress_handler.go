package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/avanee-labs/guarani_api/dto"
	"github.com/avanee-labs/guarani_api/shared"
)

type ProgressHandler struct {
	progressSvc ProgressServiceInterface
}

func NewProgressHandler(progressSvc ProgressServiceInterface) *ProgressHandler {
	return &ProgressHandler{
		progressSvc: progressSvc,
	}
}

// @Summary Start Lesson
// @Description Create or resume the caller's progress for a lesson
// @Tags progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param startRequest body dto.StartLessonRequest true "Lesson to start"
// @Success 200 {object} shared.Response{data=dto.ProgressResponse}
// @Router /api/v1/progress/start_lesson [post]
func (h *ProgressHandler) StartLesson(c *fiber.Ctx) error {
	var req dto.StartLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		return dto.CreateValidationErrorResponse(c, err)
	}

	userID := c.Locals(shared.UserID).(string)

	progress, err := h.progressSvc.StartLesson(userID, &req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", progress)
}

// @Summary Complete Lesson
// @Description Mark a started lesson as completed with the achieved score
// @Tags progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param completeRequest body dto.CompleteLessonRequest true "Completion details"
// @Success 200 {object} shared.Response{data=dto.ProgressResponse}
// @Router /api/v1/progress/complete_lesson [post]
func (h *ProgressHandler) CompleteLesson(c *fiber.Ctx) error {
	var req dto.CompleteLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		return dto.CreateValidationErrorResponse(c, err)
	}

	userID := c.Locals(shared.UserID).(string)

	progress, err := h.progressSvc.CompleteLesson(userID, &req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", progress)
}

// @Summary Get Dashboard
// @Description Get the caller's learning dashboard with counts, average score and recent lessons
// @Tags progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} shared.Response{data=dto.DashboardResponse}
// @Router /api/v1/dashboard [get]
func (h *ProgressHandler) GetDashboard(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	dashboard, err := h.progressSvc.GetDashboard(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", dashboard)
}
