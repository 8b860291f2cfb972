package services

import (
	"math"
	"time"

	appContext "github.com/alphabatem/common/context"

	"github.com/avanee-labs/guarani_api/dto"
	"github.com/avanee-labs/guarani_api/model"
)

// ProgressService tracks per-learner lesson state and builds the
// dashboard aggregates.
type ProgressService struct {
	appContext.DefaultService
	db *PostgresService
}

const PROGRESS_SVC = "progress_svc"

const recentProgressLimit = 5

func (svc ProgressService) Id() string {
	return PROGRESS_SVC
}

func (svc *ProgressService) Start() error {
	svc.db = svc.Service(POSTGRES_SVC).(*PostgresService)
	return nil
}

// StartLesson creates the progress row for the (user, lesson) pair or
// returns the existing one. Restarting is idempotent apart from
// refreshing last_accessed.
func (svc *ProgressService) StartLesson(userID string, req *dto.StartLessonRequest) (*dto.ProgressResponse, error) {
	if _, err := svc.db.GetLesson(req.LessonID); err != nil {
		return nil, err
	}

	progress, err := svc.db.GetOrCreateUserProgress(userID, req.LessonID)
	if err != nil {
		return nil, err
	}

	progress.LastAccessed = time.Now()
	if err := svc.db.UpdateUserProgress(progress); err != nil {
		return nil, err
	}

	resp := toProgressResponse(progress)
	return &resp, nil
}

// CompleteLesson marks the lesson done with the reported score. The
// lesson must have been started first.
func (svc *ProgressService) CompleteLesson(userID string, req *dto.CompleteLessonRequest) (*dto.ProgressResponse, error) {
	progress, err := svc.db.GetUserProgress(userID, req.LessonID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	progress.Completed = true
	progress.CompletionDate = &now
	progress.Score = req.Score
	progress.TotalPoints = req.TotalPoints
	progress.LastAccessed = now

	if err := svc.db.UpdateUserProgress(progress); err != nil {
		return nil, err
	}

	resp := toProgressResponse(progress)
	return &resp, nil
}

// GetDashboard assembles the learner's summary: counts, weighted
// average over completed lessons and the five most recently touched
// lessons.
func (svc *ProgressService) GetDashboard(userID string) (*dto.DashboardResponse, error) {
	totalLessons, err := svc.db.CountPublishedLessons()
	if err != nil {
		return nil, err
	}

	completed, err := svc.db.CountCompletedLessons(userID)
	if err != nil {
		return nil, err
	}

	inProgress, err := svc.db.CountInProgressLessons(userID)
	if err != nil {
		return nil, err
	}

	vocabulary, err := svc.db.CountGlossaryTerms()
	if err != nil {
		return nil, err
	}

	exercises, err := svc.db.CountDistinctExercisesAttempted(userID)
	if err != nil {
		return nil, err
	}

	scoreSum, totalSum, err := svc.db.CompletedProgressTotals(userID)
	if err != nil {
		return nil, err
	}

	averageScore := 0.0
	if totalSum > 0 {
		averageScore = round2(float64(scoreSum) / float64(totalSum) * 100)
	}

	completionPercentage := 0.0
	if totalLessons > 0 {
		completionPercentage = round2(float64(completed) / float64(totalLessons) * 100)
	}

	recent, err := svc.db.GetRecentProgress(userID, recentProgressLimit)
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardResponse{
		TotalLessons:         totalLessons,
		CompletedLessons:     completed,
		LessonsInProgress:    inProgress,
		TotalVocabulary:      vocabulary,
		ExercisesCompleted:   exercises,
		AverageScore:         averageScore,
		CompletionPercentage: completionPercentage,
		RecentProgress:       make([]dto.ProgressResponse, 0, len(recent)),
	}
	for _, row := range recent {
		resp.RecentProgress = append(resp.RecentProgress, toProgressResponse(&row))
	}

	return resp, nil
}

func toProgressResponse(progress *model.UserProgress) dto.ProgressResponse {
	return dto.ProgressResponse{
		ID:             progress.ID,
		UserID:         progress.UserID,
		LessonID:       progress.LessonID,
		LessonTitle:    progress.Lesson.Title,
		Completed:      progress.Completed,
		CompletionDate: progress.CompletionDate,
		Score:          progress.Score,
		TotalPoints:    progress.TotalPoints,
		StartedAt:      progress.StartedAt,
		LastAccessed:   progress.LastAccessed,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
