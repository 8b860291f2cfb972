package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/avanee-labs/guarani_api/dto"
	"github.com/avanee-labs/guarani_api/shared"
)

// AdminHandler exposes the content authoring endpoints.
type AdminHandler struct {
	contentSvc ContentServiceInterface
}

func NewAdminHandler(contentSvc ContentServiceInterface) *AdminHandler {
	return &AdminHandler{
		contentSvc: contentSvc,
	}
}

// @Summary Create Glossary Term
// @Description Create a new vocabulary entry
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param termRequest body dto.CreateGlossaryTermRequest true "Term to create"
// @Success 201 {object} shared.Response{data=dto.GlossaryTermResponse}
// @Router /api/v1/admin/glossary [post]
func (h *AdminHandler) CreateGlossaryTerm(c *fiber.Ctx) error {
	var req dto.CreateGlossaryTermRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		return dto.CreateValidationErrorResponse(c, err)
	}

	term, err := h.contentSvc.CreateGlossaryTerm(&req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusCreated, "Created", term)
}

// @Summary Update Glossary Term
// @Description Update fields of an existing vocabulary entry
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param termId path string true "Term ID"
// @Param termRequest body dto.UpdateGlossaryTermRequest true "Fields to update"
// @Success 200 {object} shared.Response{data=dto.GlossaryTermResponse}
// @Router /api/v1/admin/glossary/{termId} [put]
func (h *AdminHandler) UpdateGlossaryTerm(c *fiber.Ctx) error {
	termID := c.Params("termId")

	var req dto.UpdateGlossaryTermRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		return dto.CreateValidationErrorResponse(c, err)
	}

	term, err := h.contentSvc.UpdateGlossaryTerm(termID, &req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", term)
}

// @Summary Delete Glossary Term
// @Description Delete a vocabulary entry
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param termId path string true "Term ID"
// @Success 200 {object} shared.Response
// @Router /api/v1/admin/glossary/{termId} [delete]
func (h *AdminHandler) DeleteGlossaryTerm(c *fiber.Ctx) error {
	termID := c.Params("termId")

	if err := h.contentSvc.DeleteGlossaryTerm(termID); err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Deleted", nil)
}

// @Summary Create Lesson
// @Description Create a new lesson
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param lessonRequest body dto.CreateLessonRequest true "Lesson to create"
// @Success 201 {object} shared.Response{data=model.Lesson}
// @Router /api/v1/admin/lessons [post]
func (h *AdminHandler) CreateLesson(c *fiber.Ctx) error {
	var req dto.CreateLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		return dto.CreateValidationErrorResponse(c, err)
	}

	lesson, err := h.contentSvc.CreateLesson(&req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusCreated, "Created", lesson)
}

// @Summary Get Lesson (Admin)
// @Description Get full lesson detail including answer keys
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param lessonId path string true "Lesson ID"
// @Success 200 {object} shared.Response{data=dto.LessonAdminDetailResponse}
// @Router /api/v1/admin/lessons/{lessonId} [get]
func (h *AdminHandler) GetLesson(c *fiber.Ctx) error {
	lessonID := c.Params("lessonId")

	lesson, err := h.contentSvc.GetLessonAdmin(lessonID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", lesson)
}

// @Summary Update Lesson
// @Description Update fields of an existing lesson
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param lessonId path string true "Lesson ID"
// @Param lessonRequest body dto.UpdateLessonRequest true "Fields to update"
// @Success 200 {object} shared.Response{data=model.Lesson}
// @Router /api/v1/admin/lessons/{lessonId} [put]
func (h *AdminHandler) UpdateLesson(c *fiber.Ctx) error {
	lessonID := c.Params("lessonId")

	var req dto.UpdateLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		return dto.CreateValidationErrorResponse(c, err)
	}

	lesson, err := h.contentSvc.UpdateLesson(lessonID, &req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", lesson)
}

// @Summary Delete Lesson
// @Description Delete a lesson
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param lessonId path string true "Lesson ID"
// @Success 200 {object} shared.Response
// @Router /api/v1/admin/lessons/{lessonId} [delete]
func (h *AdminHandler) DeleteLesson(c *fiber.Ctx) error {
	lessonID := c.Params("lessonId")

	if err := h.contentSvc.DeleteLesson(lessonID); err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Deleted", nil)
}

// @Summary Create Content Block
// @Description Add an ordered multimedia block to a lesson
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param lessonId path string true "Lesson ID"
// @Param blockRequest body dto.CreateContentBlockRequest true "Block to create"
// @Success 201 {object} shared.Response{data=dto.ContentBlockResponse}
// @Router /api/v1/admin/lessons/{lessonId}/content [post]
func (h *AdminHandler) CreateContentBlock(c *fiber.Ctx) error {
	lessonID := c.Params("lessonId")

	var req dto.CreateContentBlockRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		return dto.CreateValidationErrorResponse(c, err)
	}

	block, err := h.contentSvc.CreateContentBlock(lessonID, &req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusCreated, "Created", block)
}

// @Summary Delete Content Block
// @Description Delete a content block from its lesson
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param blockId path string true "Content Block ID"
// @Success 200 {object} shared.Response
// @Router /api/v1/admin/content/{blockId} [delete]
func (h *AdminHandler) DeleteContentBlock(c *fiber.Ctx) error {
	blockID := c.Params("blockId")

	if err := h.contentSvc.DeleteContentBlock(blockID); err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Deleted", nil)
}

// @Summary Create Exercise
// @Description Add an exercise to a lesson
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param lessonId path string true "Lesson ID"
// @Param exerciseRequest body dto.CreateExerciseRequest true "Exercise to create"
// @Success 201 {object} shared.Response{data=model.Exercise}
// @Router /api/v1/admin/lessons/{lessonId}/exercises [post]
func (h *AdminHandler) CreateExercise(c *fiber.Ctx) error {
	lessonID := c.Params("lessonId")

	var req dto.CreateExerciseRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		return dto.CreateValidationErrorResponse(c, err)
	}

	exercise, err := h.contentSvc.CreateExercise(lessonID, &req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusCreated, "Created", exercise)
}

// @Summary Create Question
// @Description Add a question with choices to an exercise
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param exerciseId path string true "Exercise ID"
// @Param questionRequest body dto.CreateQuestionRequest true "Question to create"
// @Success 201 {object} shared.Response{data=model.Question}
// @Router /api/v1/admin/exercises/{exerciseId}/questions [post]
func (h *AdminHandler) CreateQuestion(c *fiber.Ctx) error {
	exerciseID := c.Params("exerciseId")

	var req dto.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		return dto.CreateValidationErrorResponse(c, err)
	}

	question, err := h.contentSvc.CreateQuestion(exerciseID, &req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusCreated, "Created", question)
}

// @Summary Delete Question
// @Description Delete a question and its choices
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param questionId path string true "Question ID"
// @Success 200 {object} shared.Response
// @Router /api/v1/admin/questions/{questionId} [delete]
func (h *AdminHandler) DeleteQuestion(c *fiber.Ctx) error {
	questionID := c.Params("questionId")

	if err := h.contentSvc.DeleteQuestion(questionID); err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Deleted", nil)
}

// @Summary Delete Exercise
// @Description Delete an exercise and its questions
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param exerciseId path string true "Exercise ID"
// @Success 200 {object} shared.Response
// @Router /api/v1/admin/exercises/{exerciseId} [delete]
func (h *AdminHandler) DeleteExercise(c *fiber.Ctx) error {
	exerciseID := c.Params("exerciseId")

	if err := h.contentSvc.DeleteExercise(exerciseID); err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Deleted", nil)
}
