package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avanee-labs/guarani_api/dto"
	"github.com/avanee-labs/guarani_api/shared"
)

func TestAnswerMatches(t *testing.T) {
	assert.True(t, answerMatches("Mba'éichapa", "mba'éichapa"))
	assert.True(t, answerMatches("Che", "  che  "))
	assert.True(t, answerMatches("  true", "TRUE"))
	assert.False(t, answerMatches("Aguyje", "Aguyj"))
	assert.False(t, answerMatches("Che", ""))
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 0.0, percentage(0, 0))
	assert.Equal(t, 100.0, percentage(35, 35))
	assert.Equal(t, 71.43, percentage(25, 35))
	assert.Equal(t, 40.0, percentage(10, 25))
}

func TestSubmitExerciseGradesAnswers(t *testing.T) {
	store := newTestStore(t)
	svc := &ExerciseService{db: store}

	lesson := seedLesson(t, store)
	exercise := seedExercise(t, store, lesson.ID)
	require.Len(t, exercise.Questions, 3)

	resp, err := svc.SubmitExercise("user-1", exercise.ID, &dto.SubmitExerciseRequest{
		Answers: []dto.AnswerSubmission{
			{QuestionID: exercise.Questions[0].ID, Answer: "  mba'éichapa "},
			{QuestionID: exercise.Questions[1].ID, Answer: "nde"},
			{QuestionID: exercise.Questions[2].ID, Answer: "TRUE"},
		},
	})
	require.NoError(t, err)

	require.Len(t, resp.Results, 3)
	assert.True(t, resp.Results[0].IsCorrect)
	assert.Equal(t, 10, resp.Results[0].PointsEarned)
	assert.False(t, resp.Results[1].IsCorrect)
	assert.Equal(t, 0, resp.Results[1].PointsEarned)
	assert.Equal(t, "Che", resp.Results[1].CorrectAnswer)
	assert.True(t, resp.Results[2].IsCorrect)

	assert.Equal(t, 35, resp.TotalPoints)
	assert.Equal(t, 20, resp.EarnedPoints)
	assert.Equal(t, 57.14, resp.Percentage)
}

func TestSubmitExerciseSkipsForeignQuestions(t *testing.T) {
	store := newTestStore(t)
	svc := &ExerciseService{db: store}

	lesson := seedLesson(t, store)
	exercise := seedExercise(t, store, lesson.ID)

	resp, err := svc.SubmitExercise("user-1", exercise.ID, &dto.SubmitExerciseRequest{
		Answers: []dto.AnswerSubmission{
			{QuestionID: exercise.Questions[0].ID, Answer: "Mba'éichapa"},
			{QuestionID: "question-from-another-exercise", Answer: "whatever"},
		},
	})
	require.NoError(t, err)

	// Only the matching question is evaluated and counted.
	require.Len(t, resp.Results, 1)
	assert.Equal(t, 10, resp.TotalPoints)
	assert.Equal(t, 10, resp.EarnedPoints)
	assert.Equal(t, 100.0, resp.Percentage)
}

func TestSubmitExerciseRecordsAttempts(t *testing.T) {
	store := newTestStore(t)
	svc := &ExerciseService{db: store}

	lesson := seedLesson(t, store)
	exercise := seedExercise(t, store, lesson.ID)

	_, err := svc.SubmitExercise("user-1", exercise.ID, &dto.SubmitExerciseRequest{
		Answers: []dto.AnswerSubmission{
			{QuestionID: exercise.Questions[0].ID, Answer: "Aguyje"},
			{QuestionID: exercise.Questions[1].ID, Answer: "Che"},
		},
	})
	require.NoError(t, err)

	attempts, err := store.GetExerciseAttempts("user-1", exercise.ID)
	require.NoError(t, err)
	require.Len(t, attempts, 2)

	for _, attempt := range attempts {
		assert.Equal(t, "user-1", attempt.UserID)
		assert.Equal(t, exercise.ID, attempt.ExerciseID)
		assert.False(t, attempt.AttemptedAt.IsZero())
	}

	// Resubmitting appends new rows instead of replacing old ones.
	_, err = svc.SubmitExercise("user-1", exercise.ID, &dto.SubmitExerciseRequest{
		Answers: []dto.AnswerSubmission{
			{QuestionID: exercise.Questions[0].ID, Answer: "Mba'éichapa"},
		},
	})
	require.NoError(t, err)

	attempts, err = store.GetExerciseAttempts("user-1", exercise.ID)
	require.NoError(t, err)
	assert.Len(t, attempts, 3)
}

func TestSubmitExerciseEmptyAnswers(t *testing.T) {
	store := newTestStore(t)
	svc := &ExerciseService{db: store}

	lesson := seedLesson(t, store)
	exercise := seedExercise(t, store, lesson.ID)

	req := &dto.SubmitExerciseRequest{}
	require.NoError(t, req.Validate())

	resp, err := svc.SubmitExercise("user-1", exercise.ID, req)
	require.NoError(t, err)

	assert.Empty(t, resp.Results)
	assert.Equal(t, 0, resp.TotalPoints)
	assert.Equal(t, 0, resp.EarnedPoints)
	assert.Equal(t, 0.0, resp.Percentage)
}

func TestSubmitExerciseUnknownExercise(t *testing.T) {
	store := newTestStore(t)
	svc := &ExerciseService{db: store}

	_, err := svc.SubmitExercise("user-1", "missing", &dto.SubmitExerciseRequest{
		Answers: []dto.AnswerSubmission{{QuestionID: "q", Answer: "a"}},
	})
	require.Error(t, err)

	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.StatusCode)
}
