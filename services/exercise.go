package services

import (
	"math"
	"strings"

	appContext "github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/avanee-labs/guarani_api/dto"
	"github.com/avanee-labs/guarani_api/model"
)

// ExerciseService grades answer submissions and records attempts.
type ExerciseService struct {
	appContext.DefaultService
	db         *PostgresService
	monitoring *MonitoringService
}

const EXERCISE_SVC = "exercise_svc"

func (svc ExerciseService) Id() string {
	return EXERCISE_SVC
}

func (svc *ExerciseService) Start() error {
	svc.db = svc.Service(POSTGRES_SVC).(*PostgresService)
	if mon, ok := svc.Service(MONITORING_SVC).(*MonitoringService); ok {
		svc.monitoring = mon
	}
	return nil
}

// SubmitExercise grades the submitted answers against the exercise's
// questions. Submissions for questions outside the exercise are
// skipped; totals cover evaluated questions only. Each graded answer
// is recorded as an independent attempt row.
func (svc *ExerciseService) SubmitExercise(userID, exerciseID string, req *dto.SubmitExerciseRequest) (*dto.SubmitExerciseResponse, error) {
	exercise, err := svc.db.GetExercise(exerciseID)
	if err != nil {
		return nil, err
	}

	questions := make(map[string]*model.Question, len(exercise.Questions))
	for i := range exercise.Questions {
		questions[exercise.Questions[i].ID] = &exercise.Questions[i]
	}

	resp := &dto.SubmitExerciseResponse{
		Results: make([]dto.QuestionResult, 0, len(req.Answers)),
	}

	for _, answer := range req.Answers {
		question, ok := questions[answer.QuestionID]
		if !ok {
			continue
		}

		correct := answerMatches(question.CorrectAnswer, answer.Answer)
		earned := 0
		if correct {
			earned = question.Points
		}

		resp.Results = append(resp.Results, dto.QuestionResult{
			QuestionID:    question.ID,
			IsCorrect:     correct,
			CorrectAnswer: question.CorrectAnswer,
			Explanation:   question.Explanation,
			PointsEarned:  earned,
			MaxPoints:     question.Points,
		})

		resp.TotalPoints += question.Points
		resp.EarnedPoints += earned

		if err := svc.db.CreateExerciseAttempt(&model.ExerciseAttempt{
			UserID:       userID,
			ExerciseID:   exerciseID,
			QuestionID:   question.ID,
			UserAnswer:   answer.Answer,
			IsCorrect:    correct,
			PointsEarned: earned,
		}); err != nil {
			log.WithError(err).WithFields(log.Fields{
				"user_id":     userID,
				"exercise_id": exerciseID,
				"question_id": question.ID,
			}).Error("Failed to record exercise attempt")
		}
	}

	resp.Percentage = percentage(resp.EarnedPoints, resp.TotalPoints)

	if svc.monitoring != nil {
		svc.monitoring.RecordExerciseSubmission()
	}

	return resp, nil
}

// answerMatches compares answers case-insensitively after trimming
// surrounding whitespace.
func answerMatches(correct, submitted string) bool {
	return strings.EqualFold(strings.TrimSpace(correct), strings.TrimSpace(submitted))
}

func percentage(earned, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(earned)/float64(total)*100*100) / 100
}
