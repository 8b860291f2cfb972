package services

import (
	"context"
	"fmt"
	"time"

	appContext "github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/avanee-labs/guarani_api/dto"
	"github.com/avanee-labs/guarani_api/model"
	"github.com/avanee-labs/guarani_api/shared"
)

// ContentService serves the learner catalogue (glossary, lessons) and
// the admin authoring operations behind it.
type ContentService struct {
	appContext.DefaultService
	db    *PostgresService
	cache *RedisService
}

const CONTENT_SVC = "content_svc"

const (
	glossaryCacheTTL      = 5 * time.Minute
	glossaryCategoriesKey = "glossary:categories"
)

func (svc ContentService) Id() string {
	return CONTENT_SVC
}

func (svc *ContentService) Start() error {
	svc.db = svc.Service(POSTGRES_SVC).(*PostgresService)
	if redisSvc, ok := svc.Service(REDIS_SVC).(*RedisService); ok {
		svc.cache = redisSvc
	}
	return nil
}

// ==================== GLOSSARY ====================

// SearchGlossary filters the glossary by free-text search, difficulty
// and category. Unfiltered lookups are cached; filtered ones go
// straight to the database.
func (svc *ContentService) SearchGlossary(ctx context.Context, req *dto.GlossarySearchRequest) (*dto.GlossaryCollectionResponse, error) {
	cacheable := req.Search == "" && req.Difficulty == "" && req.Category == "" && req.Limit == 0

	if cacheable && svc.cache != nil {
		var cached dto.GlossaryCollectionResponse
		hit, err := svc.cache.GetJSON(ctx, svc.glossaryListKey(), &cached)
		if err != nil {
			log.WithError(err).Debug("Glossary cache read failed")
		} else if hit {
			return &cached, nil
		}
	}

	terms, err := svc.db.SearchGlossaryTerms(req.Search, req.Difficulty, req.Category, req.Limit)
	if err != nil {
		return nil, err
	}

	resp := &dto.GlossaryCollectionResponse{
		Terms: make([]dto.GlossaryTermResponse, 0, len(terms)),
		Total: len(terms),
	}
	for _, term := range terms {
		resp.Terms = append(resp.Terms, toGlossaryTermResponse(&term))
	}

	if cacheable && svc.cache != nil {
		if err := svc.cache.Set(ctx, svc.glossaryListKey(), resp, glossaryCacheTTL); err != nil {
			log.WithError(err).Debug("Glossary cache write failed")
		}
	}

	return resp, nil
}

func (svc *ContentService) GetGlossaryTerm(id string) (*dto.GlossaryTermResponse, error) {
	term, err := svc.db.GetGlossaryTerm(id)
	if err != nil {
		return nil, err
	}
	resp := toGlossaryTermResponse(term)
	return &resp, nil
}

func (svc *ContentService) GetGlossaryCategories(ctx context.Context) (*dto.CategoryListResponse, error) {
	if svc.cache != nil {
		var cached dto.CategoryListResponse
		hit, err := svc.cache.GetJSON(ctx, glossaryCategoriesKey, &cached)
		if err != nil {
			log.WithError(err).Debug("Category cache read failed")
		} else if hit {
			return &cached, nil
		}
	}

	categories, err := svc.db.GetGlossaryCategories()
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []string{}
	}

	resp := &dto.CategoryListResponse{Categories: categories}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, glossaryCategoriesKey, resp, glossaryCacheTTL); err != nil {
			log.WithError(err).Debug("Category cache write failed")
		}
	}

	return resp, nil
}

func (svc *ContentService) CreateGlossaryTerm(req *dto.CreateGlossaryTermRequest) (*dto.GlossaryTermResponse, error) {
	term := &model.GlossaryTerm{
		GuaraniWord:            req.GuaraniWord,
		SpanishTranslation:     req.SpanishTranslation,
		EnglishTranslation:     req.EnglishTranslation,
		Pronunciation:          req.Pronunciation,
		ExampleSentenceGuarani: req.ExampleSentenceGuarani,
		ExampleSentenceSpanish: req.ExampleSentenceSpanish,
		Category:               req.Category,
		DifficultyLevel:        req.DifficultyLevel,
	}
	if term.DifficultyLevel == "" {
		term.DifficultyLevel = shared.DifficultyBeginner
	}

	created, err := svc.db.CreateGlossaryTerm(term)
	if err != nil {
		return nil, err
	}

	svc.invalidateGlossaryCache()

	resp := toGlossaryTermResponse(created)
	return &resp, nil
}

func (svc *ContentService) UpdateGlossaryTerm(id string, req *dto.UpdateGlossaryTermRequest) (*dto.GlossaryTermResponse, error) {
	term, err := svc.db.GetGlossaryTerm(id)
	if err != nil {
		return nil, err
	}

	if req.GuaraniWord != nil {
		term.GuaraniWord = *req.GuaraniWord
	}
	if req.SpanishTranslation != nil {
		term.SpanishTranslation = *req.SpanishTranslation
	}
	if req.EnglishTranslation != nil {
		term.EnglishTranslation = *req.EnglishTranslation
	}
	if req.Pronunciation != nil {
		term.Pronunciation = *req.Pronunciation
	}
	if req.ExampleSentenceGuarani != nil {
		term.ExampleSentenceGuarani = *req.ExampleSentenceGuarani
	}
	if req.ExampleSentenceSpanish != nil {
		term.ExampleSentenceSpanish = *req.ExampleSentenceSpanish
	}
	if req.Category != nil {
		term.Category = *req.Category
	}
	if req.DifficultyLevel != nil {
		term.DifficultyLevel = *req.DifficultyLevel
	}

	if err := svc.db.UpdateGlossaryTerm(term); err != nil {
		return nil, err
	}

	svc.invalidateGlossaryCache()

	resp := toGlossaryTermResponse(term)
	return &resp, nil
}

func (svc *ContentService) DeleteGlossaryTerm(id string) error {
	if _, err := svc.db.GetGlossaryTerm(id); err != nil {
		return err
	}
	if err := svc.db.DeleteGlossaryTerm(id); err != nil {
		return err
	}
	svc.invalidateGlossaryCache()
	return nil
}

func (svc *ContentService) glossaryListKey() string {
	return "glossary:list:all"
}

func (svc *ContentService) invalidateGlossaryCache() {
	if svc.cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := svc.cache.Delete(ctx, svc.glossaryListKey(), glossaryCategoriesKey); err != nil {
		log.WithError(err).Debug("Glossary cache invalidation failed")
	}
}

// ==================== LESSONS ====================

func (svc *ContentService) ListLessons(req *dto.LessonListRequest) (*dto.LessonCollectionResponse, error) {
	lessons, err := svc.db.GetPublishedLessons(req.Difficulty)
	if err != nil {
		return nil, err
	}

	resp := &dto.LessonCollectionResponse{
		Lessons: make([]dto.LessonSummaryResponse, 0, len(lessons)),
		Total:   len(lessons),
	}
	for _, lesson := range lessons {
		resp.Lessons = append(resp.Lessons, dto.LessonSummaryResponse{
			ID:                lesson.ID,
			Title:             lesson.Title,
			Description:       lesson.Description,
			Order:             lesson.Order,
			DifficultyLevel:   lesson.DifficultyLevel,
			CoverImageURL:     lesson.CoverImageURL,
			EstimatedDuration: lesson.EstimatedDuration,
			ContentBlockCount: len(lesson.ContentBlocks),
			ExerciseCount:     len(lesson.Exercises),
		})
	}

	return resp, nil
}

// GetLesson returns the learner view. Unpublished lessons are hidden
// and question answer keys are stripped.
func (svc *ContentService) GetLesson(id string) (*dto.LessonDetailResponse, error) {
	lesson, err := svc.db.GetLesson(id)
	if err != nil {
		return nil, err
	}
	if !lesson.IsPublished {
		return nil, shared.NewNotFoundError(fmt.Errorf("lesson %s is not published", id), "Not Found")
	}

	resp := &dto.LessonDetailResponse{
		ID:                lesson.ID,
		Title:             lesson.Title,
		Description:       lesson.Description,
		Order:             lesson.Order,
		DifficultyLevel:   lesson.DifficultyLevel,
		CoverImageURL:     lesson.CoverImageURL,
		EstimatedDuration: lesson.EstimatedDuration,
		IsPublished:       lesson.IsPublished,
		CreatedAt:         lesson.CreatedAt,
		ContentBlocks:     make([]dto.ContentBlockResponse, 0, len(lesson.ContentBlocks)),
		Exercises:         make([]dto.ExerciseResponse, 0, len(lesson.Exercises)),
	}

	for _, block := range lesson.ContentBlocks {
		resp.ContentBlocks = append(resp.ContentBlocks, toContentBlockResponse(&block))
	}
	for _, exercise := range lesson.Exercises {
		resp.Exercises = append(resp.Exercises, toExerciseResponse(&exercise))
	}

	return resp, nil
}

// GetLessonAdmin returns the authoring view with answer keys included.
func (svc *ContentService) GetLessonAdmin(id string) (*dto.LessonAdminDetailResponse, error) {
	lesson, err := svc.db.GetLesson(id)
	if err != nil {
		return nil, err
	}

	resp := &dto.LessonAdminDetailResponse{
		ID:                lesson.ID,
		Title:             lesson.Title,
		Description:       lesson.Description,
		Order:             lesson.Order,
		DifficultyLevel:   lesson.DifficultyLevel,
		CoverImageURL:     lesson.CoverImageURL,
		EstimatedDuration: lesson.EstimatedDuration,
		IsPublished:       lesson.IsPublished,
		CreatedAt:         lesson.CreatedAt,
		ContentBlocks:     make([]dto.ContentBlockResponse, 0, len(lesson.ContentBlocks)),
		Exercises:         make([]dto.ExerciseAdminResponse, 0, len(lesson.Exercises)),
	}

	for _, block := range lesson.ContentBlocks {
		resp.ContentBlocks = append(resp.ContentBlocks, toContentBlockResponse(&block))
	}
	for _, exercise := range lesson.Exercises {
		adminExercise := dto.ExerciseAdminResponse{
			ID:           exercise.ID,
			LessonID:     exercise.LessonID,
			Title:        exercise.Title,
			Instructions: exercise.Instructions,
			Order:        exercise.Order,
			Questions:    make([]dto.QuestionAdminResponse, 0, len(exercise.Questions)),
		}
		for _, question := range exercise.Questions {
			adminExercise.Questions = append(adminExercise.Questions, dto.QuestionAdminResponse{
				QuestionResponse: toQuestionResponse(&question),
				CorrectAnswer:    question.CorrectAnswer,
				Explanation:      question.Explanation,
			})
		}
		resp.Exercises = append(resp.Exercises, adminExercise)
	}

	return resp, nil
}

func (svc *ContentService) CreateLesson(req *dto.CreateLessonRequest) (*model.Lesson, error) {
	lesson := &model.Lesson{
		Title:             req.Title,
		Description:       req.Description,
		Order:             req.Order,
		DifficultyLevel:   req.DifficultyLevel,
		CoverImageURL:     req.CoverImageURL,
		EstimatedDuration: req.EstimatedDuration,
		IsPublished:       true,
	}
	if lesson.DifficultyLevel == "" {
		lesson.DifficultyLevel = shared.DifficultyBeginner
	}
	if lesson.EstimatedDuration == 0 {
		lesson.EstimatedDuration = 15
	}
	if req.IsPublished != nil {
		lesson.IsPublished = *req.IsPublished
	}

	return svc.db.CreateLesson(lesson)
}

func (svc *ContentService) UpdateLesson(id string, req *dto.UpdateLessonRequest) (*model.Lesson, error) {
	lesson, err := svc.db.GetLesson(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		lesson.Title = *req.Title
	}
	if req.Description != nil {
		lesson.Description = *req.Description
	}
	if req.Order != nil {
		lesson.Order = *req.Order
	}
	if req.DifficultyLevel != nil {
		lesson.DifficultyLevel = *req.DifficultyLevel
	}
	if req.CoverImageURL != nil {
		lesson.CoverImageURL = *req.CoverImageURL
	}
	if req.EstimatedDuration != nil {
		lesson.EstimatedDuration = *req.EstimatedDuration
	}
	if req.IsPublished != nil {
		lesson.IsPublished = *req.IsPublished
	}

	if err := svc.db.UpdateLesson(lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

func (svc *ContentService) DeleteLesson(id string) error {
	if _, err := svc.db.GetLesson(id); err != nil {
		return err
	}
	return svc.db.DeleteLesson(id)
}

// ==================== CONTENT BLOCKS ====================

func (svc *ContentService) CreateContentBlock(lessonID string, req *dto.CreateContentBlockRequest) (*dto.ContentBlockResponse, error) {
	if _, err := svc.db.GetLesson(lessonID); err != nil {
		return nil, err
	}

	block := &model.LessonContent{
		LessonID:    lessonID,
		Order:       req.Order,
		ContentType: req.ContentType,
		Title:       req.Title,
		TextContent: req.TextContent,
		AudioURL:    req.AudioURL,
		ImageURL:    req.ImageURL,
		VideoURL:    req.VideoURL,
	}

	created, err := svc.db.CreateLessonContent(block, req.TermIDs)
	if err != nil {
		return nil, err
	}

	resp := toContentBlockResponse(created)
	return &resp, nil
}

func (svc *ContentService) DeleteContentBlock(id string) error {
	if _, err := svc.db.GetLessonContent(id); err != nil {
		return err
	}
	return svc.db.DeleteLessonContent(id)
}

// ==================== EXERCISES ====================

func (svc *ContentService) CreateExercise(lessonID string, req *dto.CreateExerciseRequest) (*model.Exercise, error) {
	if _, err := svc.db.GetLesson(lessonID); err != nil {
		return nil, err
	}

	return svc.db.CreateExercise(&model.Exercise{
		LessonID:     lessonID,
		Title:        req.Title,
		Instructions: req.Instructions,
		Order:        req.Order,
	})
}

func (svc *ContentService) CreateQuestion(exerciseID string, req *dto.CreateQuestionRequest) (*model.Question, error) {
	if _, err := svc.db.GetExercise(exerciseID); err != nil {
		return nil, err
	}

	question := &model.Question{
		ExerciseID:    exerciseID,
		QuestionType:  req.QuestionType,
		QuestionText:  req.QuestionText,
		CorrectAnswer: req.CorrectAnswer,
		Explanation:   req.Explanation,
		Points:        10,
		Order:         req.Order,
	}
	if req.Points != nil {
		question.Points = *req.Points
	}

	for _, choice := range req.Choices {
		question.Choices = append(question.Choices, model.AnswerChoice{
			ChoiceText: choice.ChoiceText,
			Order:      choice.Order,
		})
	}

	return svc.db.CreateQuestion(question)
}

func (svc *ContentService) DeleteQuestion(id string) error {
	if _, err := svc.db.GetQuestion(id); err != nil {
		return err
	}
	return svc.db.DeleteQuestion(id)
}

func (svc *ContentService) DeleteExercise(id string) error {
	if _, err := svc.db.GetExercise(id); err != nil {
		return err
	}
	return svc.db.DeleteExercise(id)
}

// ==================== MAPPERS ====================

func toGlossaryTermResponse(term *model.GlossaryTerm) dto.GlossaryTermResponse {
	return dto.GlossaryTermResponse{
		ID:                     term.ID,
		GuaraniWord:            term.GuaraniWord,
		SpanishTranslation:     term.SpanishTranslation,
		EnglishTranslation:     term.EnglishTranslation,
		Pronunciation:          term.Pronunciation,
		AudioURL:               term.AudioURL,
		ExampleSentenceGuarani: term.ExampleSentenceGuarani,
		ExampleSentenceSpanish: term.ExampleSentenceSpanish,
		Category:               term.Category,
		DifficultyLevel:        term.DifficultyLevel,
	}
}

func toContentBlockResponse(block *model.LessonContent) dto.ContentBlockResponse {
	resp := dto.ContentBlockResponse{
		ID:          block.ID,
		LessonID:    block.LessonID,
		Order:       block.Order,
		ContentType: block.ContentType,
		Title:       block.Title,
		TextContent: block.TextContent,
		AudioURL:    block.AudioURL,
		ImageURL:    block.ImageURL,
		VideoURL:    block.VideoURL,
		Terms:       make([]dto.GlossaryTermResponse, 0, len(block.Terms)),
	}
	for _, term := range block.Terms {
		resp.Terms = append(resp.Terms, toGlossaryTermResponse(&term))
	}
	return resp
}

func toQuestionResponse(question *model.Question) dto.QuestionResponse {
	resp := dto.QuestionResponse{
		ID:           question.ID,
		QuestionType: question.QuestionType,
		QuestionText: question.QuestionText,
		AudioURL:     question.AudioURL,
		ImageURL:     question.ImageURL,
		Points:       question.Points,
		Order:        question.Order,
		Choices:      make([]dto.AnswerChoiceResponse, 0, len(question.Choices)),
	}
	for _, choice := range question.Choices {
		resp.Choices = append(resp.Choices, dto.AnswerChoiceResponse{
			ID:         choice.ID,
			ChoiceText: choice.ChoiceText,
			Order:      choice.Order,
		})
	}
	return resp
}

func toExerciseResponse(exercise *model.Exercise) dto.ExerciseResponse {
	resp := dto.ExerciseResponse{
		ID:           exercise.ID,
		LessonID:     exercise.LessonID,
		Title:        exercise.Title,
		Instructions: exercise.Instructions,
		Order:        exercise.Order,
		Questions:    make([]dto.QuestionResponse, 0, len(exercise.Questions)),
	}
	for _, question := range exercise.Questions {
		resp.Questions = append(resp.Questions, toQuestionResponse(&question))
	}
	return resp
}
