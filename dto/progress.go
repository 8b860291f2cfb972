package dto

import "time"

// ==================== PROGRESS DTOs ====================

type StartLessonRequest struct {
	LessonID string `json:"lesson_id" validate:"required" example:"0190a3b2-..."`
}

func (r StartLessonRequest) Validate() error {
	return GetValidator().Struct(r)
}

type CompleteLessonRequest struct {
	LessonID    string `json:"lesson_id" validate:"required"`
	Score       int    `json:"score" validate:"min=0"`
	TotalPoints int    `json:"total_points" validate:"min=0"`
}

func (r CompleteLessonRequest) Validate() error {
	return GetValidator().Struct(r)
}

type ProgressResponse struct {
	ID             string     `json:"id"`
	UserID         string     `json:"user_id"`
	LessonID       string     `json:"lesson_id"`
	LessonTitle    string     `json:"lesson_title"`
	Completed      bool       `json:"completed"`
	CompletionDate *time.Time `json:"completion_date"`
	Score          int        `json:"score"`
	TotalPoints    int        `json:"total_points"`
	StartedAt      time.Time  `json:"started_at"`
	LastAccessed   time.Time  `json:"last_accessed"`
}

type DashboardResponse struct {
	TotalLessons         int64              `json:"total_lessons"`
	CompletedLessons     int64              `json:"completed_lessons"`
	LessonsInProgress    int64              `json:"lessons_in_progress"`
	TotalVocabulary      int64              `json:"total_vocabulary"`
	ExercisesCompleted   int64              `json:"exercises_completed"`
	AverageScore         float64            `json:"average_score"`
	CompletionPercentage float64            `json:"completion_percentage"`
	RecentProgress       []ProgressResponse `json:"recent_progress"`
}
