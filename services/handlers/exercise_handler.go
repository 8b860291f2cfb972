package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/avanee-labs/guarani_api/dto"
	"github.com/avanee-labs/guarani_api/shared"
)

type ExerciseHandler struct {
	exerciseSvc ExerciseServiceInterface
}

func NewExerciseHandler(exerciseSvc ExerciseServiceInterface) *ExerciseHandler {
	return &ExerciseHandler{
		exerciseSvc: exerciseSvc,
	}
}

// @Summary Submit Exercise
// @Description Grade the caller's answers for an exercise and record the attempt
// @Tags exercises
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param exerciseId path string true "Exercise ID"
// @Param submitRequest body dto.SubmitExerciseRequest true "Submitted answers"
// @Success 200 {object} shared.Response{data=dto.SubmitExerciseResponse}
// @Router /api/v1/exercises/{exerciseId}/submit [post]
func (h *ExerciseHandler) SubmitExercise(c *fiber.Ctx) error {
	exerciseID := c.Params("exerciseId")

	var req dto.SubmitExerciseRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		return dto.CreateValidationErrorResponse(c, err)
	}

	userID := c.Locals(shared.UserID).(string)

	result, err := h.exerciseSvc.SubmitExercise(userID, exerciseID, &req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", result)
}
