package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/avanee-labs/guarani_api/model"
)

// newTestStore opens an isolated in-memory database migrated with the
// full model set.
func newTestStore(t *testing.T) *PostgresService {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(allModels...))

	return &PostgresService{db: db}
}

func seedLesson(t *testing.T, store *PostgresService) *model.Lesson {
	t.Helper()

	lesson, err := store.CreateLesson(&model.Lesson{
		Title:           "Greetings and Introductions",
		Description:     "Learn basic greetings",
		Order:           1,
		DifficultyLevel: "beginner",
		IsPublished:     true,
	})
	require.NoError(t, err)
	return lesson
}

func seedExercise(t *testing.T, store *PostgresService, lessonID string) *model.Exercise {
	t.Helper()

	exercise, err := store.CreateExercise(&model.Exercise{
		LessonID: lessonID,
		Title:    "Greetings Practice",
		Order:    1,
	})
	require.NoError(t, err)

	_, err = store.CreateQuestion(&model.Question{
		ExerciseID:    exercise.ID,
		QuestionType:  "multiple_choice",
		QuestionText:  "How do you say hello?",
		CorrectAnswer: "Mba'éichapa",
		Explanation:   "The standard greeting.",
		Points:        10,
		Order:         1,
		Choices: []model.AnswerChoice{
			{ChoiceText: "Mba'éichapa", Order: 1},
			{ChoiceText: "Aguyje", Order: 2},
		},
	})
	require.NoError(t, err)

	_, err = store.CreateQuestion(&model.Question{
		ExerciseID:    exercise.ID,
		QuestionType:  "fill_blank",
		QuestionText:  "____ réra María",
		CorrectAnswer: "Che",
		Points:        15,
		Order:         2,
	})
	require.NoError(t, err)

	_, err = store.CreateQuestion(&model.Question{
		ExerciseID:    exercise.ID,
		QuestionType:  "true_false",
		QuestionText:  "Aguyje means thank you",
		CorrectAnswer: "true",
		Points:        10,
		Order:         3,
	})
	require.NoError(t, err)

	loaded, err := store.GetExercise(exercise.ID)
	require.NoError(t, err)
	return loaded
}

func seedGlossary(t *testing.T, store *PostgresService) {
	t.Helper()

	terms := []model.GlossaryTerm{
		{GuaraniWord: "Mba'éichapa", SpanishTranslation: "Hola", EnglishTranslation: "Hello", Category: "greetings", DifficultyLevel: "beginner"},
		{GuaraniWord: "Aguyje", SpanishTranslation: "Gracias", EnglishTranslation: "Thank you", Category: "greetings", DifficultyLevel: "beginner"},
		{GuaraniWord: "Kuarahy", SpanishTranslation: "Sol", EnglishTranslation: "Sun", Category: "nature", DifficultyLevel: "intermediate"},
	}
	for i := range terms {
		_, err := store.CreateGlossaryTerm(&terms[i])
		require.NoError(t, err)
	}
}
