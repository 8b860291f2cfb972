// model/progress.go
package model

import (
	"time"
)

// UserProgress tracks one learner's state for one lesson.
// The (user_id, lesson_id) pair is unique; concurrent starts rely on
// the database constraint, not an application-level check.
type UserProgress struct {
	ID             string     `json:"id" gorm:"primaryKey"`
	UserID         string     `json:"user_id" gorm:"not null;uniqueIndex:idx_user_lesson"`
	LessonID       string     `json:"lesson_id" gorm:"not null;uniqueIndex:idx_user_lesson"`
	Completed      bool       `json:"completed" gorm:"default:false"`
	CompletionDate *time.Time `json:"completion_date"`
	Score          int        `json:"score" gorm:"default:0"`
	TotalPoints    int        `json:"total_points" gorm:"default:0"`
	StartedAt      time.Time  `json:"started_at"`
	LastAccessed   time.Time  `json:"last_accessed"`

	// Relationship
	Lesson Lesson `json:"lesson" gorm:"foreignKey:LessonID"`
}

// ExerciseAttempt is an append-only record of one answer to one
// question. Rows are never updated or deleted by the grading path.
type ExerciseAttempt struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	UserID       string    `json:"user_id" gorm:"not null;index"`
	ExerciseID   string    `json:"exercise_id" gorm:"not null;index"`
	QuestionID   string    `json:"question_id" gorm:"not null"`
	UserAnswer   string    `json:"user_answer"`
	IsCorrect    bool      `json:"is_correct" gorm:"default:false"`
	PointsEarned int       `json:"points_earned" gorm:"default:0"`
	AttemptedAt  time.Time `json:"attempted_at"`
}
