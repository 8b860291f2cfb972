package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/avanee-labs/guarani_api/shared"
)

func TestHandleErrorMapping(t *testing.T) {
	store := &PostgresService{}

	assert.NoError(t, store.HandleError(nil))

	notFound := store.HandleError(gorm.ErrRecordNotFound)
	appErr, ok := shared.GetAppError(notFound)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.StatusCode)

	conflict := store.HandleError(gorm.ErrDuplicatedKey)
	appErr, ok = shared.GetAppError(conflict)
	require.True(t, ok)
	assert.Equal(t, 409, appErr.StatusCode)

	internal := store.HandleError(errors.New("boom"))
	appErr, ok = shared.GetAppError(internal)
	require.True(t, ok)
	assert.Equal(t, 500, appErr.StatusCode)
}

func TestGetOrCreateUserProgressReusesRow(t *testing.T) {
	store := newTestStore(t)
	lesson := seedLesson(t, store)

	first, err := store.GetOrCreateUserProgress("user-1", lesson.ID)
	require.NoError(t, err)

	second, err := store.GetOrCreateUserProgress("user-1", lesson.ID)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	// Distinct users get distinct rows.
	other, err := store.GetOrCreateUserProgress("user-2", lesson.ID)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)
}

func TestCreateQuestionAssignsChoiceIDs(t *testing.T) {
	store := newTestStore(t)
	lesson := seedLesson(t, store)
	exercise := seedExercise(t, store, lesson.ID)

	require.NotEmpty(t, exercise.Questions[0].Choices)
	for _, choice := range exercise.Questions[0].Choices {
		assert.NotEmpty(t, choice.ID)
		assert.Equal(t, exercise.Questions[0].ID, choice.QuestionID)
	}
}
