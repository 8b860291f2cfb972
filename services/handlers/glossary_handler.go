package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/avanee-labs/guarani_api/dto"
	"github.com/avanee-labs/guarani_api/shared"
)

type GlossaryHandler struct {
	contentSvc ContentServiceInterface
}

func NewGlossaryHandler(contentSvc ContentServiceInterface) *GlossaryHandler {
	return &GlossaryHandler{
		contentSvc: contentSvc,
	}
}

// @Summary Search Glossary
// @Description Search Guarani vocabulary with optional text, difficulty and category filters
// @Tags glossary
// @Accept json
// @Produce json
// @Param search query string false "Free text search across words and translations"
// @Param difficulty query string false "Filter by difficulty" Enums(beginner, intermediate, advanced)
// @Param category query string false "Filter by category"
// @Param limit query int false "Maximum number of results"
// @Success 200 {object} shared.Response{data=dto.GlossaryCollectionResponse}
// @Router /api/v1/glossary [get]
func (h *GlossaryHandler) SearchGlossary(c *fiber.Ctx) error {
	var req dto.GlossarySearchRequest
	if err := c.QueryParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid query parameters")
	}

	if err := req.Validate(); err != nil {
		return dto.CreateValidationErrorResponse(c, err)
	}

	terms, err := h.contentSvc.SearchGlossary(c.UserContext(), &req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", terms)
}

// @Summary Get Glossary Term
// @Description Get a single vocabulary entry by id
// @Tags glossary
// @Accept json
// @Produce json
// @Param termId path string true "Term ID"
// @Success 200 {object} shared.Response{data=dto.GlossaryTermResponse}
// @Router /api/v1/glossary/{termId} [get]
func (h *GlossaryHandler) GetGlossaryTerm(c *fiber.Ctx) error {
	termID := c.Params("termId")

	term, err := h.contentSvc.GetGlossaryTerm(termID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", term)
}

// @Summary Get Glossary Categories
// @Description Get the distinct vocabulary categories
// @Tags glossary
// @Accept json
// @Produce json
// @Success 200 {object} shared.Response{data=dto.CategoryListResponse}
// @Router /api/v1/glossary/categories [get]
func (h *GlossaryHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.contentSvc.GetGlossaryCategories(c.UserContext())
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", categories)
}
