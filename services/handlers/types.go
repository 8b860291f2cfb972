package handlers

import (
	"context"
	"mime/multipart"

	"github.com/avanee-labs/guarani_api/dto"
	"github.com/avanee-labs/guarani_api/model"
)

type ContentServiceInterface interface {
	SearchGlossary(ctx context.Context, req *dto.GlossarySearchRequest) (*dto.GlossaryCollectionResponse, error)
	GetGlossaryTerm(id string) (*dto.GlossaryTermResponse, error)
	GetGlossaryCategories(ctx context.Context) (*dto.CategoryListResponse, error)
	CreateGlossaryTerm(req *dto.CreateGlossaryTermRequest) (*dto.GlossaryTermResponse, error)
	UpdateGlossaryTerm(id string, req *dto.UpdateGlossaryTermRequest) (*dto.GlossaryTermResponse, error)
	DeleteGlossaryTerm(id string) error

	ListLessons(req *dto.LessonListRequest) (*dto.LessonCollectionResponse, error)
	GetLesson(id string) (*dto.LessonDetailResponse, error)
	GetLessonAdmin(id string) (*dto.LessonAdminDetailResponse, error)
	CreateLesson(req *dto.CreateLessonRequest) (*model.Lesson, error)
	UpdateLesson(id string, req *dto.UpdateLessonRequest) (*model.Lesson, error)
	DeleteLesson(id string) error

	CreateContentBlock(lessonID string, req *dto.CreateContentBlockRequest) (*dto.ContentBlockResponse, error)
	DeleteContentBlock(id string) error
	CreateExercise(lessonID string, req *dto.CreateExerciseRequest) (*model.Exercise, error)
	CreateQuestion(exerciseID string, req *dto.CreateQuestionRequest) (*model.Question, error)
	DeleteQuestion(id string) error
	DeleteExercise(id string) error
}

type ExerciseServiceInterface interface {
	SubmitExercise(userID, exerciseID string, req *dto.SubmitExerciseRequest) (*dto.SubmitExerciseResponse, error)
}

type ProgressServiceInterface interface {
	StartLesson(userID string, req *dto.StartLessonRequest) (*dto.ProgressResponse, error)
	CompleteLesson(userID string, req *dto.CompleteLessonRequest) (*dto.ProgressResponse, error)
	GetDashboard(userID string) (*dto.DashboardResponse, error)
}

type ChatServiceInterface interface {
	SendMessage(ctx context.Context, userID string, req *dto.ChatRequest) (*dto.ChatResponse, error)
	GetHistory(sessionID string) (*dto.ChatHistoryResponse, error)
}

type MediaServiceInterface interface {
	UploadGlossaryAudio(termID string, file *multipart.FileHeader) (*dto.MediaUploadResponse, error)
	UploadLessonCover(lessonID string, file *multipart.FileHeader) (*dto.MediaUploadResponse, error)
	UploadContentBlockMedia(blockID string, file *multipart.FileHeader) (*dto.MediaUploadResponse, error)
}
