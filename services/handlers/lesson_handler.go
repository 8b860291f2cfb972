package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/avanee-labs/guarani_api/dto"
	"github.com/avanee-labs/guarani_api/shared"
)

type LessonHandler struct {
	contentSvc ContentServiceInterface
}

func NewLessonHandler(contentSvc ContentServiceInterface) *LessonHandler {
	return &LessonHandler{
		contentSvc: contentSvc,
	}
}

// @Summary List Lessons
// @Description List published lessons ordered by position, optionally filtered by difficulty
// @Tags lessons
// @Accept json
// @Produce json
// @Param difficulty query string false "Filter by difficulty" Enums(beginner, intermediate, advanced)
// @Success 200 {object} shared.Response{data=dto.LessonCollectionResponse}
// @Router /api/v1/lessons [get]
func (h *LessonHandler) ListLessons(c *fiber.Ctx) error {
	var req dto.LessonListRequest
	if err := c.QueryParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid query parameters")
	}

	if err := req.Validate(); err != nil {
		return dto.CreateValidationErrorResponse(c, err)
	}

	lessons, err := h.contentSvc.ListLessons(&req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", lessons)
}

// @Summary Get Lesson
// @Description Get full lesson detail with ordered content blocks and exercises. Answer keys are not included.
// @Tags lessons
// @Accept json
// @Produce json
// @Param lessonId path string true "Lesson ID"
// @Success 200 {object} shared.Response{data=dto.LessonDetailResponse}
// @Router /api/v1/lessons/{lessonId} [get]
func (h *LessonHandler) GetLesson(c *fiber.Ctx) error {
	lessonID := c.Params("lessonId")

	lesson, err := h.contentSvc.GetLesson(lessonID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", lesson)
}
