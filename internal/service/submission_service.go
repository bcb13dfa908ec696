package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/hqdat/workpulse/internal/apperror"
	"github.com/hqdat/workpulse/internal/dto"
	"github.com/hqdat/workpulse/internal/model"
	"github.com/hqdat/workpulse/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SubmissionService orchestrates one full survey submission: ownership check,
// response upserts, per-response scoring, aggregation and the completion
// transition.
type SubmissionService interface {
	Submit(surveyID uint, actor model.Actor, req dto.SurveySubmitDTO) (*dto.SubmissionResultDTO, error)
}

type submissionService struct {
	questionRepo   repository.QuestionRepository
	assignmentRepo repository.AssignmentRepository
	scorer         ScoringService
	aggregator     AggregationService
	db             *gorm.DB
}

func NewSubmissionService(
	questionRepo repository.QuestionRepository,
	assignmentRepo repository.AssignmentRepository,
	scorer ScoringService,
	aggregator AggregationService,
	db *gorm.DB,
) SubmissionService {
	return &submissionService{
		questionRepo:   questionRepo,
		assignmentRepo: assignmentRepo,
		scorer:         scorer,
		aggregator:     aggregator,
		db:             db,
	}
}

// Submit persists the batch and marks the assignment completed. Steps run in
// one transaction under a per-assignment row lock, so a retried or concurrent
// submission of the same assignment cannot commit a partial batch or a stale
// total. Answers referencing questions outside the survey are skipped, not
// rejected.
func (s *submissionService) Submit(surveyID uint, actor model.Actor, req dto.SurveySubmitDTO) (*dto.SubmissionResultDTO, error) {
	// Resolve the assignment scoped to (id, survey, owning employee). Only the
	// assignee may submit, and only against the survey it was assigned for.
	assignment, err := s.assignmentRepo.FindOwned(req.AssignmentID, surveyID, actor.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("survey assignment not found", err)
		}
		return nil, fmt.Errorf("resolving assignment %d: %w", req.AssignmentID, err)
	}

	questions, err := s.questionRepo.FindBySurveyID(surveyID)
	if err != nil {
		return nil, fmt.Errorf("loading questions for survey %d: %w", surveyID, err)
	}
	questionMap := make(map[uint]model.Question, len(questions))
	for _, q := range questions {
		questionMap[q.ID] = q
	}

	var total float64
	err = s.db.Transaction(func(tx *gorm.DB) error {
		// Re-read the assignment under lock; concurrent submissions for the
		// same assignment serialize here.
		var locked model.SurveyAssignment
		if err := repository.LockForUpdate(tx).First(&locked, assignment.ID).Error; err != nil {
			return fmt.Errorf("locking assignment %d: %w", assignment.ID, err)
		}

		for _, item := range req.Responses {
			question, exists := questionMap[item.QuestionID]
			if !exists {
				log.Warn().
					Uint("question_id", item.QuestionID).
					Uint("survey_id", surveyID).
					Msg("submitted answer references a question outside this survey, skipping")
				continue
			}
			if err := s.upsertResponse(tx, locked.ID, &question, item.Answer); err != nil {
				return err
			}
		}

		// Aggregate over every stored response for the assignment, not just
		// the ones in this batch.
		responses, err := repository.FindResponsesForAggregation(tx, locked.ID)
		if err != nil {
			return fmt.Errorf("loading responses for aggregation: %w", err)
		}
		total = s.aggregator.Total(responses)

		now := time.Now()
		locked.IsCompleted = true
		locked.CompletedAt = &now
		locked.TotalScore = &total
		if err := tx.Save(&locked).Error; err != nil {
			return fmt.Errorf("completing assignment %d: %w", locked.ID, err)
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Uint("assignment_id", req.AssignmentID).Msg("survey submission failed")
		return nil, err
	}

	log.Info().
		Uint("assignment_id", req.AssignmentID).
		Float64("total_score", total).
		Msg("survey submitted")
	return &dto.SubmissionResultDTO{Status: "survey submitted", TotalScore: total}, nil
}

// upsertResponse creates or overwrites the response keyed by
// (assignment, question), then scores it.
func (s *submissionService) upsertResponse(tx *gorm.DB, assignmentID uint, question *model.Question, answer model.AnswerPayload) error {
	var response model.SurveyResponse
	err := tx.
		Where("assignment_id = ? AND question_id = ?", assignmentID, question.ID).
		First(&response).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response = model.SurveyResponse{
			AssignmentID: assignmentID,
			QuestionID:   question.ID,
		}
	case err != nil:
		return fmt.Errorf("looking up response for question %d: %w", question.ID, err)
	}

	response.Answer = answer
	response.Score = s.scorer.Score(question, answer)
	if err := tx.Save(&response).Error; err != nil {
		return fmt.Errorf("saving response for question %d: %w", question.ID, err)
	}
	return nil
}
