// services/postgres.go
package services

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/avanee-labs/guarani_api/model"
	"github.com/avanee-labs/guarani_api/shared"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

type PostgresService struct {
	context.DefaultService
	db *gorm.DB

	database string
}

const POSTGRES_SVC = "postgres_svc"

// allModels is the migration set, shared with the test harness.
var allModels = []interface{}{
	&model.GlossaryTerm{},
	&model.Lesson{},
	&model.LessonContent{},
	&model.Exercise{},
	&model.Question{},
	&model.AnswerChoice{},
	&model.UserProgress{},
	&model.ExerciseAttempt{},
	&model.ChatMessage{},
}

func (ds PostgresService) Id() string {
	return POSTGRES_SVC
}

func (ds PostgresService) Db() *gorm.DB {
	return ds.db
}

func (ds *PostgresService) Configure(ctx *context.Context) error {
	ds.database = os.Getenv("DATABASE_URL")
	if ds.database == "" {
		host := os.Getenv("DB_HOST")
		if host == "" {
			host = "localhost"
		}
		port := os.Getenv("DB_PORT")
		if port == "" {
			port = "5432"
		}
		user := os.Getenv("DB_USER")
		if user == "" {
			user = "postgres"
		}
		password := os.Getenv("DB_PASSWORD")
		if password == "" {
			password = "postgres"
		}
		dbname := os.Getenv("DB_NAME")
		if dbname == "" {
			dbname = "guarani_api"
		}
		sslmode := os.Getenv("DB_SSLMODE")
		if sslmode == "" {
			sslmode = "disable"
		}
		timezone := os.Getenv("DB_TIMEZONE")
		if timezone == "" {
			timezone = "UTC"
		}

		ds.database = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
			host, user, password, dbname, port, sslmode, timezone)
	}

	return ds.DefaultService.Configure(ctx)
}

func (ds *PostgresService) Start() (err error) {
	maxRetries := 10
	retryDelay := time.Second

	for attempt := 1; attempt <= maxRetries; attempt++ {
		log.Printf("Attempting to connect to database (attempt %d/%d)...", attempt, maxRetries)

		ds.db, err = gorm.Open(postgres.Open(ds.database), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Error),
		})

		if err == nil {
			sqlDB, dbErr := ds.db.DB()
			if dbErr == nil {
				pingErr := sqlDB.Ping()
				if pingErr == nil {
					break
				}
				err = pingErr
			} else {
				err = dbErr
			}
		}

		if attempt == maxRetries {
			log.Printf("Failed to connect to database after %d attempts: %v", maxRetries, err)
			return err
		}

		log.Printf("Database connection failed: %v. Retrying in %v...", err, retryDelay)
		time.Sleep(retryDelay)

		retryDelay *= 2
		if retryDelay > 10*time.Second {
			retryDelay = 10 * time.Second
		}
	}

	err = ds.db.AutoMigrate(allModels...)
	if err != nil {
		log.Printf("Failed to migrate database: %v", err)
		return err
	}

	log.Println("Database connected and migrated successfully")
	return nil
}

func (ds *PostgresService) Shutdown() {
	sqlDB, err := ds.db.DB()
	if err == nil {
		sqlDB.Close()
	}
}

func (ds *PostgresService) HandleError(err error) error {
	if err == nil {
		return nil
	}

	var statusCode int
	var errorType string

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		statusCode = http.StatusNotFound
		errorType = "NOT_FOUND"
	case errors.Is(err, gorm.ErrDuplicatedKey):
		statusCode = http.StatusConflict
		errorType = "CONFLICT"
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		statusCode = http.StatusBadRequest
		errorType = "FOREIGN_KEY_VIOLATION"
	default:
		if strings.Contains(err.Error(), "duplicate key value violates unique constraint") {
			statusCode = http.StatusConflict
			errorType = "UNIQUE_CONSTRAINT"
		} else if strings.Contains(err.Error(), "connection refused") {
			statusCode = http.StatusServiceUnavailable
			errorType = "DATABASE_CONNECTION_ERROR"
		} else {
			statusCode = http.StatusInternalServerError
			errorType = "INTERNAL_ERROR"
		}
	}

	logEntry := log.WithFields(log.Fields{
		"status_code": statusCode,
		"error_type":  errorType,
		"error":       err.Error(),
	})

	if statusCode >= 500 {
		logEntry.Error("Database error occurred")
	} else {
		logEntry.Warn("Database operation failed")
	}

	if statusCode == http.StatusNotFound {
		return shared.NewNotFoundError(err, "Not Found")
	}
	return shared.NewAppError(statusCode, err, errorType)
}

func newID() string {
	id, _ := uuid.NewV7()
	return id.String()
}

// ==================== GLOSSARY METHODS ====================

func (ds *PostgresService) CreateGlossaryTerm(term *model.GlossaryTerm) (*model.GlossaryTerm, error) {
	if term.ID == "" {
		term.ID = newID()
	}
	term.CreatedAt = time.Now()
	term.UpdatedAt = time.Now()

	if err := ds.db.Create(term).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return term, nil
}

func (ds *PostgresService) GetGlossaryTerm(id string) (*model.GlossaryTerm, error) {
	var term model.GlossaryTerm
	if err := ds.db.Where("id = ?", id).First(&term).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &term, nil
}

func (ds *PostgresService) GetGlossaryTerms(ids []string) ([]model.GlossaryTerm, error) {
	var terms []model.GlossaryTerm
	if len(ids) == 0 {
		return terms, nil
	}
	if err := ds.db.Where("id IN ?", ids).Find(&terms).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return terms, nil
}

func (ds *PostgresService) UpdateGlossaryTerm(term *model.GlossaryTerm) error {
	term.UpdatedAt = time.Now()
	if err := ds.db.Save(term).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

func (ds *PostgresService) DeleteGlossaryTerm(id string) error {
	if err := ds.db.Where("id = ?", id).Delete(&model.GlossaryTerm{}).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

func (ds *PostgresService) SearchGlossaryTerms(search, difficulty, category string, limit int) ([]model.GlossaryTerm, error) {
	var terms []model.GlossaryTerm
	query := ds.db.Model(&model.GlossaryTerm{})

	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(guarani_word) LIKE ? OR LOWER(spanish_translation) LIKE ? OR LOWER(english_translation) LIKE ? OR LOWER(category) LIKE ?",
			pattern, pattern, pattern, pattern)
	}

	if difficulty != "" {
		query = query.Where("difficulty_level = ?", difficulty)
	}

	if category != "" {
		query = query.Where("LOWER(category) LIKE ?", "%"+strings.ToLower(category)+"%")
	}

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Order("guarani_word ASC").Find(&terms).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return terms, nil
}

func (ds *PostgresService) GetGlossaryCategories() ([]string, error) {
	var categories []string
	if err := ds.db.Model(&model.GlossaryTerm{}).
		Where("category <> ''").
		Distinct().
		Order("category ASC").
		Pluck("category", &categories).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return categories, nil
}

func (ds *PostgresService) CountGlossaryTerms() (int64, error) {
	var count int64
	if err := ds.db.Model(&model.GlossaryTerm{}).Count(&count).Error; err != nil {
		return 0, ds.HandleError(err)
	}
	return count, nil
}

// ==================== LESSON METHODS ====================

func (ds *PostgresService) CreateLesson(lesson *model.Lesson) (*model.Lesson, error) {
	if lesson.ID == "" {
		lesson.ID = newID()
	}
	lesson.CreatedAt = time.Now()
	lesson.UpdatedAt = time.Now()

	if err := ds.db.Create(lesson).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return lesson, nil
}

// GetLesson loads the full aggregate: ordered content blocks with their
// vocabulary terms, and ordered exercises with questions and choices.
func (ds *PostgresService) GetLesson(id string) (*model.Lesson, error) {
	var lesson model.Lesson
	if err := ds.db.
		Preload("ContentBlocks", func(db *gorm.DB) *gorm.DB {
			return db.Order("\"order\" ASC")
		}).
		Preload("ContentBlocks.Terms").
		Preload("Exercises", func(db *gorm.DB) *gorm.DB {
			return db.Order("\"order\" ASC")
		}).
		Preload("Exercises.Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("\"order\" ASC")
		}).
		Preload("Exercises.Questions.Choices", func(db *gorm.DB) *gorm.DB {
			return db.Order("\"order\" ASC")
		}).
		Where("id = ?", id).First(&lesson).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &lesson, nil
}

func (ds *PostgresService) GetPublishedLessons(difficulty string) ([]model.Lesson, error) {
	var lessons []model.Lesson
	query := ds.db.Model(&model.Lesson{}).Where("is_published = ?", true)

	if difficulty != "" {
		query = query.Where("difficulty_level = ?", difficulty)
	}

	if err := query.
		Preload("ContentBlocks").
		Preload("Exercises").
		Order("\"order\" ASC, title ASC").
		Find(&lessons).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return lessons, nil
}

func (ds *PostgresService) UpdateLesson(lesson *model.Lesson) error {
	lesson.UpdatedAt = time.Now()
	if err := ds.db.Save(lesson).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

func (ds *PostgresService) DeleteLesson(id string) error {
	if err := ds.db.Where("id = ?", id).Delete(&model.Lesson{}).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

func (ds *PostgresService) CountPublishedLessons() (int64, error) {
	var count int64
	if err := ds.db.Model(&model.Lesson{}).Where("is_published = ?", true).Count(&count).Error; err != nil {
		return 0, ds.HandleError(err)
	}
	return count, nil
}

// ==================== LESSON CONTENT METHODS ====================

func (ds *PostgresService) CreateLessonContent(block *model.LessonContent, termIDs []string) (*model.LessonContent, error) {
	if block.ID == "" {
		block.ID = newID()
	}

	if err := ds.db.Create(block).Error; err != nil {
		return nil, ds.HandleError(err)
	}

	if len(termIDs) > 0 {
		terms, err := ds.GetGlossaryTerms(termIDs)
		if err != nil {
			return nil, err
		}
		if err := ds.db.Model(block).Association("Terms").Replace(terms); err != nil {
			return nil, ds.HandleError(err)
		}
		block.Terms = terms
	}

	return block, nil
}

func (ds *PostgresService) GetLessonContent(id string) (*model.LessonContent, error) {
	var block model.LessonContent
	if err := ds.db.Preload("Terms").Where("id = ?", id).First(&block).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &block, nil
}

func (ds *PostgresService) UpdateLessonContent(block *model.LessonContent) error {
	if err := ds.db.Save(block).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

func (ds *PostgresService) DeleteLessonContent(id string) error {
	if err := ds.db.Where("id = ?", id).Delete(&model.LessonContent{}).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

// ==================== EXERCISE METHODS ====================

func (ds *PostgresService) CreateExercise(exercise *model.Exercise) (*model.Exercise, error) {
	if exercise.ID == "" {
		exercise.ID = newID()
	}
	exercise.CreatedAt = time.Now()

	if err := ds.db.Create(exercise).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return exercise, nil
}

func (ds *PostgresService) GetExercise(id string) (*model.Exercise, error) {
	var exercise model.Exercise
	if err := ds.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("\"order\" ASC")
		}).
		Preload("Questions.Choices", func(db *gorm.DB) *gorm.DB {
			return db.Order("\"order\" ASC")
		}).
		Where("id = ?", id).First(&exercise).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &exercise, nil
}

func (ds *PostgresService) UpdateExercise(exercise *model.Exercise) error {
	if err := ds.db.Save(exercise).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

func (ds *PostgresService) DeleteExercise(id string) error {
	if err := ds.db.Where("id = ?", id).Delete(&model.Exercise{}).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

// ==================== QUESTION METHODS ====================

func (ds *PostgresService) CreateQuestion(question *model.Question) (*model.Question, error) {
	if question.ID == "" {
		question.ID = newID()
	}
	for i := range question.Choices {
		if question.Choices[i].ID == "" {
			question.Choices[i].ID = newID()
		}
	}

	if err := ds.db.Create(question).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return question, nil
}

func (ds *PostgresService) GetQuestion(id string) (*model.Question, error) {
	var question model.Question
	if err := ds.db.Preload("Choices", func(db *gorm.DB) *gorm.DB {
		return db.Order("\"order\" ASC")
	}).Where("id = ?", id).First(&question).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &question, nil
}

func (ds *PostgresService) DeleteQuestion(id string) error {
	if err := ds.db.Where("question_id = ?", id).Delete(&model.AnswerChoice{}).Error; err != nil {
		return ds.HandleError(err)
	}
	if err := ds.db.Where("id = ?", id).Delete(&model.Question{}).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

// ==================== USER PROGRESS METHODS ====================

// GetOrCreateUserProgress is the atomic insert-or-fetch for the
// (user, lesson) progress row. The insert relies on the unique index
// and ON CONFLICT DO NOTHING so concurrent starts cannot produce
// duplicates.
func (ds *PostgresService) GetOrCreateUserProgress(userID, lessonID string) (*model.UserProgress, error) {
	now := time.Now()
	progress := model.UserProgress{
		ID:           newID(),
		UserID:       userID,
		LessonID:     lessonID,
		StartedAt:    now,
		LastAccessed: now,
	}

	if err := ds.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "lesson_id"}},
		DoNothing: true,
	}).Create(&progress).Error; err != nil {
		return nil, ds.HandleError(err)
	}

	return ds.GetUserProgress(userID, lessonID)
}

func (ds *PostgresService) GetUserProgress(userID, lessonID string) (*model.UserProgress, error) {
	var progress model.UserProgress
	if err := ds.db.Preload("Lesson").
		Where("user_id = ? AND lesson_id = ?", userID, lessonID).
		First(&progress).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &progress, nil
}

func (ds *PostgresService) UpdateUserProgress(progress *model.UserProgress) error {
	if err := ds.db.Save(progress).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

func (ds *PostgresService) GetRecentProgress(userID string, limit int) ([]model.UserProgress, error) {
	var rows []model.UserProgress
	if err := ds.db.Preload("Lesson").
		Where("user_id = ?", userID).
		Order("last_accessed DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return rows, nil
}

func (ds *PostgresService) CountCompletedLessons(userID string) (int64, error) {
	var count int64
	if err := ds.db.Model(&model.UserProgress{}).
		Where("user_id = ? AND completed = ?", userID, true).
		Count(&count).Error; err != nil {
		return 0, ds.HandleError(err)
	}
	return count, nil
}

func (ds *PostgresService) CountInProgressLessons(userID string) (int64, error) {
	var count int64
	if err := ds.db.Model(&model.UserProgress{}).
		Where("user_id = ? AND completed = ?", userID, false).
		Count(&count).Error; err != nil {
		return 0, ds.HandleError(err)
	}
	return count, nil
}

// CompletedProgressTotals sums score and total_points over completed
// rows with a nonzero total. The weighted average is computed by the
// caller.
func (ds *PostgresService) CompletedProgressTotals(userID string) (int64, int64, error) {
	var totals struct {
		ScoreSum int64
		TotalSum int64
	}
	if err := ds.db.Model(&model.UserProgress{}).
		Select("COALESCE(SUM(score), 0) AS score_sum, COALESCE(SUM(total_points), 0) AS total_sum").
		Where("user_id = ? AND completed = ? AND total_points > 0", userID, true).
		Scan(&totals).Error; err != nil {
		return 0, 0, ds.HandleError(err)
	}
	return totals.ScoreSum, totals.TotalSum, nil
}

// ==================== EXERCISE ATTEMPT METHODS ====================

func (ds *PostgresService) CreateExerciseAttempt(attempt *model.ExerciseAttempt) error {
	if attempt.ID == "" {
		attempt.ID = newID()
	}
	if attempt.AttemptedAt.IsZero() {
		attempt.AttemptedAt = time.Now()
	}

	if err := ds.db.Create(attempt).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

func (ds *PostgresService) GetExerciseAttempts(userID, exerciseID string) ([]model.ExerciseAttempt, error) {
	var attempts []model.ExerciseAttempt
	if err := ds.db.Where("user_id = ? AND exercise_id = ?", userID, exerciseID).
		Order("attempted_at DESC").
		Find(&attempts).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return attempts, nil
}

func (ds *PostgresService) CountDistinctExercisesAttempted(userID string) (int64, error) {
	var count int64
	if err := ds.db.Model(&model.ExerciseAttempt{}).
		Where("user_id = ?", userID).
		Distinct("exercise_id").
		Count(&count).Error; err != nil {
		return 0, ds.HandleError(err)
	}
	return count, nil
}

// ==================== CHAT MESSAGE METHODS ====================

func (ds *PostgresService) CreateChatMessage(message *model.ChatMessage) (*model.ChatMessage, error) {
	if message.ID == "" {
		message.ID = newID()
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}

	if err := ds.db.Create(message).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return message, nil
}

func (ds *PostgresService) GetChatHistory(sessionID string) ([]model.ChatMessage, error) {
	var messages []model.ChatMessage
	if err := ds.db.Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&messages).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return messages, nil
}

// GetRecentChatMessages returns the last limit rows for the session,
// oldest first.
func (ds *PostgresService) GetRecentChatMessages(sessionID string, limit int) ([]model.ChatMessage, error) {
	var messages []model.ChatMessage
	if err := ds.db.Where("session_id = ?", sessionID).
		Order("created_at DESC").
		Limit(limit).
		Find(&messages).Error; err != nil {
		return nil, ds.HandleError(err)
	}

	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}
