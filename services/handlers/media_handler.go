package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/avanee-labs/guarani_api/shared"
)

type MediaHandler struct {
	mediaSvc MediaServiceInterface
}

func NewMediaHandler(mediaSvc MediaServiceInterface) *MediaHandler {
	return &MediaHandler{
		mediaSvc: mediaSvc,
	}
}

// @Summary Upload Glossary Audio
// @Description Upload a pronunciation clip for a glossary term
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param termId path string true "Term ID"
// @Param file formData file true "Audio file"
// @Success 201 {object} shared.Response{data=dto.MediaUploadResponse}
// @Router /api/v1/admin/glossary/{termId}/audio [post]
func (h *MediaHandler) UploadGlossaryAudio(c *fiber.Ctx) error {
	termID := c.Params("termId")

	file, err := c.FormFile("file")
	if err != nil {
		return shared.NewBadRequestError(err, "Missing file upload")
	}

	resp, err := h.mediaSvc.UploadGlossaryAudio(termID, file)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusCreated, "Created", resp)
}

// @Summary Upload Lesson Cover
// @Description Upload a cover image for a lesson
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param lessonId path string true "Lesson ID"
// @Param file formData file true "Image file"
// @Success 201 {object} shared.Response{data=dto.MediaUploadResponse}
// @Router /api/v1/admin/lessons/{lessonId}/cover [post]
func (h *MediaHandler) UploadLessonCover(c *fiber.Ctx) error {
	lessonID := c.Params("lessonId")

	file, err := c.FormFile("file")
	if err != nil {
		return shared.NewBadRequestError(err, "Missing file upload")
	}

	resp, err := h.mediaSvc.UploadLessonCover(lessonID, file)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusCreated, "Created", resp)
}

// @Summary Upload Content Block Media
// @Description Upload audio or an image for a lesson content block
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param blockId path string true "Content Block ID"
// @Param file formData file true "Media file"
// @Success 201 {object} shared.Response{data=dto.MediaUploadResponse}
// @Router /api/v1/admin/content/{blockId}/media [post]
func (h *MediaHandler) UploadContentBlockMedia(c *fiber.Ctx) error {
	blockID := c.Params("blockId")

	file, err := c.FormFile("file")
	if err != nil {
		return shared.NewBadRequestError(err, "Missing file upload")
	}

	resp, err := h.mediaSvc.UploadContentBlockMedia(blockID, file)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusCreated, "Created", resp)
}
