package dto

// ==================== EXERCISE GRADING DTOs ====================

type AnswerSubmission struct {
	QuestionID string `json:"question_id" validate:"required"`
	Answer     string `json:"answer"`
}

type SubmitExerciseRequest struct {
	Answers []AnswerSubmission `json:"answers" validate:"dive"`
}

func (r SubmitExerciseRequest) Validate() error {
	return GetValidator().Struct(r)
}

// QuestionResult is the per-question feedback shown to the learner
// immediately after submission.
type QuestionResult struct {
	QuestionID    string `json:"question_id"`
	IsCorrect     bool   `json:"is_correct"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation"`
	PointsEarned  int    `json:"points_earned"`
	MaxPoints     int    `json:"max_points"`
}

type SubmitExerciseResponse struct {
	Results      []QuestionResult `json:"results"`
	TotalPoints  int              `json:"total_points"`
	EarnedPoints int              `json:"earned_points"`
	Percentage   float64          `json:"percentage"`
}
