package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avanee-labs/guarani_api/dto"
	"github.com/avanee-labs/guarani_api/model"
	"github.com/avanee-labs/guarani_api/shared"
)

func TestStartLessonCreatesProgress(t *testing.T) {
	store := newTestStore(t)
	svc := &ProgressService{db: store}

	lesson := seedLesson(t, store)

	progress, err := svc.StartLesson("user-1", &dto.StartLessonRequest{LessonID: lesson.ID})
	require.NoError(t, err)

	assert.Equal(t, "user-1", progress.UserID)
	assert.Equal(t, lesson.ID, progress.LessonID)
	assert.Equal(t, lesson.Title, progress.LessonTitle)
	assert.False(t, progress.Completed)
	assert.False(t, progress.StartedAt.IsZero())
}

func TestStartLessonIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	svc := &ProgressService{db: store}

	lesson := seedLesson(t, store)

	first, err := svc.StartLesson("user-1", &dto.StartLessonRequest{LessonID: lesson.ID})
	require.NoError(t, err)

	second, err := svc.StartLesson("user-1", &dto.StartLessonRequest{LessonID: lesson.ID})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.False(t, second.LastAccessed.Before(first.LastAccessed))

	var count int64
	require.NoError(t, store.Db().Model(&model.UserProgress{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestStartLessonUnknownLesson(t *testing.T) {
	store := newTestStore(t)
	svc := &ProgressService{db: store}

	_, err := svc.StartLesson("user-1", &dto.StartLessonRequest{LessonID: "missing"})
	require.Error(t, err)

	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.StatusCode)
}

func TestCompleteLessonRequiresStart(t *testing.T) {
	store := newTestStore(t)
	svc := &ProgressService{db: store}

	lesson := seedLesson(t, store)

	_, err := svc.CompleteLesson("user-1", &dto.CompleteLessonRequest{
		LessonID:    lesson.ID,
		Score:       20,
		TotalPoints: 35,
	})
	require.Error(t, err)

	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.StatusCode)
}

func TestCompleteLessonStoresScore(t *testing.T) {
	store := newTestStore(t)
	svc := &ProgressService{db: store}

	lesson := seedLesson(t, store)

	_, err := svc.StartLesson("user-1", &dto.StartLessonRequest{LessonID: lesson.ID})
	require.NoError(t, err)

	progress, err := svc.CompleteLesson("user-1", &dto.CompleteLessonRequest{
		LessonID:    lesson.ID,
		Score:       20,
		TotalPoints: 35,
	})
	require.NoError(t, err)

	assert.True(t, progress.Completed)
	require.NotNil(t, progress.CompletionDate)
	assert.Equal(t, 20, progress.Score)
	assert.Equal(t, 35, progress.TotalPoints)
}

func TestDashboardDefaultsToZero(t *testing.T) {
	store := newTestStore(t)
	svc := &ProgressService{db: store}

	dashboard, err := svc.GetDashboard("user-without-history")
	require.NoError(t, err)

	assert.Equal(t, int64(0), dashboard.TotalLessons)
	assert.Equal(t, int64(0), dashboard.CompletedLessons)
	assert.Equal(t, int64(0), dashboard.LessonsInProgress)
	assert.Equal(t, 0.0, dashboard.AverageScore)
	assert.Equal(t, 0.0, dashboard.CompletionPercentage)
	assert.Empty(t, dashboard.RecentProgress)
}

func TestDashboardAggregates(t *testing.T) {
	store := newTestStore(t)
	svc := &ProgressService{db: store}
	exerciseSvc := &ExerciseService{db: store}

	seedGlossary(t, store)

	first := seedLesson(t, store)
	second, err := store.CreateLesson(&model.Lesson{
		Title:           "Numbers",
		Order:           2,
		DifficultyLevel: "beginner",
		IsPublished:     true,
	})
	require.NoError(t, err)

	exercise := seedExercise(t, store, first.ID)

	_, err = svc.StartLesson("user-1", &dto.StartLessonRequest{LessonID: first.ID})
	require.NoError(t, err)
	_, err = svc.StartLesson("user-1", &dto.StartLessonRequest{LessonID: second.ID})
	require.NoError(t, err)

	_, err = exerciseSvc.SubmitExercise("user-1", exercise.ID, &dto.SubmitExerciseRequest{
		Answers: []dto.AnswerSubmission{
			{QuestionID: exercise.Questions[0].ID, Answer: "Mba'éichapa"},
		},
	})
	require.NoError(t, err)

	_, err = svc.CompleteLesson("user-1", &dto.CompleteLessonRequest{
		LessonID:    first.ID,
		Score:       20,
		TotalPoints: 35,
	})
	require.NoError(t, err)

	dashboard, err := svc.GetDashboard("user-1")
	require.NoError(t, err)

	assert.Equal(t, int64(2), dashboard.TotalLessons)
	assert.Equal(t, int64(1), dashboard.CompletedLessons)
	assert.Equal(t, int64(1), dashboard.LessonsInProgress)
	assert.Equal(t, int64(3), dashboard.TotalVocabulary)
	assert.Equal(t, int64(1), dashboard.ExercisesCompleted)
	assert.Equal(t, 57.14, dashboard.AverageScore)
	assert.Equal(t, 50.0, dashboard.CompletionPercentage)

	require.Len(t, dashboard.RecentProgress, 2)
	// Most recently touched lesson first.
	assert.Equal(t, first.ID, dashboard.RecentProgress[0].LessonID)
}

func TestDashboardIgnoresZeroTotalCompletions(t *testing.T) {
	store := newTestStore(t)
	svc := &ProgressService{db: store}

	lesson := seedLesson(t, store)

	_, err := svc.StartLesson("user-1", &dto.StartLessonRequest{LessonID: lesson.ID})
	require.NoError(t, err)

	_, err = svc.CompleteLesson("user-1", &dto.CompleteLessonRequest{
		LessonID:    lesson.ID,
		Score:       0,
		TotalPoints: 0,
	})
	require.NoError(t, err)

	dashboard, err := svc.GetDashboard("user-1")
	require.NoError(t, err)

	assert.Equal(t, int64(1), dashboard.CompletedLessons)
	assert.Equal(t, 0.0, dashboard.AverageScore)
}
