package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avanee-labs/guarani_api/dto"
	"github.com/avanee-labs/guarani_api/model"
	"github.com/avanee-labs/guarani_api/shared"
)

func TestSearchGlossaryFilters(t *testing.T) {
	store := newTestStore(t)
	svc := &ContentService{db: store}

	seedGlossary(t, store)

	all, err := svc.SearchGlossary(context.Background(), &dto.GlossarySearchRequest{})
	require.NoError(t, err)
	assert.Equal(t, 3, all.Total)

	byText, err := svc.SearchGlossary(context.Background(), &dto.GlossarySearchRequest{Search: "gracias"})
	require.NoError(t, err)
	require.Equal(t, 1, byText.Total)
	assert.Equal(t, "Aguyje", byText.Terms[0].GuaraniWord)

	byCategory, err := svc.SearchGlossary(context.Background(), &dto.GlossarySearchRequest{Category: "nature"})
	require.NoError(t, err)
	require.Equal(t, 1, byCategory.Total)
	assert.Equal(t, "Kuarahy", byCategory.Terms[0].GuaraniWord)

	byDifficulty, err := svc.SearchGlossary(context.Background(), &dto.GlossarySearchRequest{Difficulty: "intermediate"})
	require.NoError(t, err)
	assert.Equal(t, 1, byDifficulty.Total)

	limited, err := svc.SearchGlossary(context.Background(), &dto.GlossarySearchRequest{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, limited.Total)
}

func TestSearchGlossaryIsCaseInsensitive(t *testing.T) {
	store := newTestStore(t)
	svc := &ContentService{db: store}

	seedGlossary(t, store)

	resp, err := svc.SearchGlossary(context.Background(), &dto.GlossarySearchRequest{Search: "HELLO"})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "Mba'éichapa", resp.Terms[0].GuaraniWord)
}

func TestGetGlossaryCategories(t *testing.T) {
	store := newTestStore(t)
	svc := &ContentService{db: store}

	seedGlossary(t, store)

	resp, err := svc.GetGlossaryCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"greetings", "nature"}, resp.Categories)
}

func TestUpdateGlossaryTermPartial(t *testing.T) {
	store := newTestStore(t)
	svc := &ContentService{db: store}

	created, err := svc.CreateGlossaryTerm(&dto.CreateGlossaryTermRequest{
		GuaraniWord:        "Aguyje",
		SpanishTranslation: "Gracias",
		Category:           "greetings",
	})
	require.NoError(t, err)
	assert.Equal(t, "beginner", created.DifficultyLevel)

	newTranslation := "Thanks"
	updated, err := svc.UpdateGlossaryTerm(created.ID, &dto.UpdateGlossaryTermRequest{
		EnglishTranslation: &newTranslation,
	})
	require.NoError(t, err)

	assert.Equal(t, "Thanks", updated.EnglishTranslation)
	// Untouched fields keep their values.
	assert.Equal(t, "Aguyje", updated.GuaraniWord)
	assert.Equal(t, "Gracias", updated.SpanishTranslation)
}

func TestListLessonsFiltersUnpublished(t *testing.T) {
	store := newTestStore(t)
	svc := &ContentService{db: store}

	seedLesson(t, store)
	_, err := store.CreateLesson(&model.Lesson{
		Title:           "Draft Lesson",
		Order:           2,
		DifficultyLevel: "advanced",
		IsPublished:     false,
	})
	require.NoError(t, err)

	resp, err := svc.ListLessons(&dto.LessonListRequest{})
	require.NoError(t, err)

	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "Greetings and Introductions", resp.Lessons[0].Title)
}

func TestCreateLessonStoresDraftFlag(t *testing.T) {
	store := newTestStore(t)
	svc := &ContentService{db: store}

	published := false
	created, err := svc.CreateLesson(&dto.CreateLessonRequest{
		Title:       "Draft Lesson",
		IsPublished: &published,
	})
	require.NoError(t, err)
	assert.False(t, created.IsPublished)

	// The stored row keeps the draft flag, so learners never see it.
	stored, err := store.GetLesson(created.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsPublished)

	listed, err := svc.ListLessons(&dto.LessonListRequest{})
	require.NoError(t, err)
	assert.Equal(t, 0, listed.Total)
}

func TestGetLessonHidesAnswerKeys(t *testing.T) {
	store := newTestStore(t)
	svc := &ContentService{db: store}

	lesson := seedLesson(t, store)
	seedExercise(t, store, lesson.ID)

	detail, err := svc.GetLesson(lesson.ID)
	require.NoError(t, err)

	require.Len(t, detail.Exercises, 1)
	require.Len(t, detail.Exercises[0].Questions, 3)

	for _, question := range detail.Exercises[0].Questions {
		assert.NotEmpty(t, question.ID)
		assert.NotEmpty(t, question.QuestionText)
	}

	// Questions come back in authored order.
	assert.Equal(t, 1, detail.Exercises[0].Questions[0].Order)
	assert.Equal(t, 3, detail.Exercises[0].Questions[2].Order)
}

func TestGetLessonUnpublishedIsNotFound(t *testing.T) {
	store := newTestStore(t)
	svc := &ContentService{db: store}

	draft, err := store.CreateLesson(&model.Lesson{
		Title:       "Draft",
		IsPublished: false,
	})
	require.NoError(t, err)

	_, err = svc.GetLesson(draft.ID)
	require.Error(t, err)

	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.StatusCode)
}

func TestGetLessonAdminIncludesAnswerKeys(t *testing.T) {
	store := newTestStore(t)
	svc := &ContentService{db: store}

	lesson := seedLesson(t, store)
	seedExercise(t, store, lesson.ID)

	detail, err := svc.GetLessonAdmin(lesson.ID)
	require.NoError(t, err)

	require.Len(t, detail.Exercises, 1)
	require.Len(t, detail.Exercises[0].Questions, 3)
	assert.Equal(t, "Mba'éichapa", detail.Exercises[0].Questions[0].CorrectAnswer)
	assert.NotEmpty(t, detail.Exercises[0].Questions[0].Explanation)
}

func TestCreateContentBlockWithTerms(t *testing.T) {
	store := newTestStore(t)
	svc := &ContentService{db: store}

	seedGlossary(t, store)
	lesson := seedLesson(t, store)

	terms, err := store.SearchGlossaryTerms("", "", "greetings", 0)
	require.NoError(t, err)
	require.Len(t, terms, 2)

	block, err := svc.CreateContentBlock(lesson.ID, &dto.CreateContentBlockRequest{
		ContentType: shared.ContentTypeVocabulary,
		Order:       1,
		Title:       "Key Greetings",
		TermIDs:     []string{terms[0].ID, terms[1].ID},
	})
	require.NoError(t, err)

	assert.Equal(t, lesson.ID, block.LessonID)
	assert.Len(t, block.Terms, 2)

	detail, err := svc.GetLesson(lesson.ID)
	require.NoError(t, err)
	require.Len(t, detail.ContentBlocks, 1)
	assert.Len(t, detail.ContentBlocks[0].Terms, 2)
}

func TestCreateQuestionDefaultsPoints(t *testing.T) {
	store := newTestStore(t)
	svc := &ContentService{db: store}

	lesson := seedLesson(t, store)
	exercise, err := svc.CreateExercise(lesson.ID, &dto.CreateExerciseRequest{Title: "Practice"})
	require.NoError(t, err)

	question, err := svc.CreateQuestion(exercise.ID, &dto.CreateQuestionRequest{
		QuestionType:  shared.QuestionTypeTrueFalse,
		QuestionText:  "Aguyje means thank you",
		CorrectAnswer: "true",
	})
	require.NoError(t, err)

	assert.Equal(t, 10, question.Points)
}

func TestCreateQuestionHonorsZeroPoints(t *testing.T) {
	store := newTestStore(t)
	svc := &ContentService{db: store}

	lesson := seedLesson(t, store)
	exercise, err := svc.CreateExercise(lesson.ID, &dto.CreateExerciseRequest{Title: "Warmup"})
	require.NoError(t, err)

	zero := 0
	question, err := svc.CreateQuestion(exercise.ID, &dto.CreateQuestionRequest{
		QuestionType:  shared.QuestionTypeTrueFalse,
		QuestionText:  "Kuarahy means sun",
		CorrectAnswer: "true",
		Points:        &zero,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, question.Points)

	stored, err := store.GetQuestion(question.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.Points)
}
