package service

import (
	"errors"
	"fmt"

	"github.com/hqdat/workpulse/internal/apperror"
	"github.com/hqdat/workpulse/internal/dto"
	"github.com/hqdat/workpulse/internal/model"
	"github.com/hqdat/workpulse/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// RescoringService applies a manual score override to one response and
// re-aggregates its assignment. It is the only path allowed to mutate a score
// after submission, and it never touches the completion state.
type RescoringService interface {
	Rescore(responseID uint, actor model.Actor, newScore float64) (*dto.RescoreResultDTO, error)
}

type rescoringService struct {
	responseRepo repository.ResponseRepository
	aggregator   AggregationService
	db           *gorm.DB
}

func NewRescoringService(responseRepo repository.ResponseRepository, aggregator AggregationService, db *gorm.DB) RescoringService {
	return &rescoringService{responseRepo: responseRepo, aggregator: aggregator, db: db}
}

func (s *rescoringService) Rescore(responseID uint, actor model.Actor, newScore float64) (*dto.RescoreResultDTO, error) {
	response, err := s.responseRepo.FindByIDWithQuestion(responseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("survey response not found", err)
		}
		return nil, fmt.Errorf("resolving response %d: %w", responseID, err)
	}

	// The bound only applies when the question participates in scoring.
	// Manual scores on non-scored questions pass through unchecked; that
	// looseness is intentional and documented.
	if response.Question.HasScoring {
		if newScore < 0 || newScore > response.Question.ScoringPoints {
			return nil, apperror.NewValidation(
				fmt.Sprintf("score must be between 0 and %g", response.Question.ScoringPoints), nil)
		}
	}

	var total float64
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var locked model.SurveyAssignment
		if err := repository.LockForUpdate(tx).First(&locked, response.AssignmentID).Error; err != nil {
			return fmt.Errorf("locking assignment %d: %w", response.AssignmentID, err)
		}

		response.Score = &newScore
		if err := tx.Save(response).Error; err != nil {
			return fmt.Errorf("saving rescored response %d: %w", responseID, err)
		}

		responses, err := repository.FindResponsesForAggregation(tx, locked.ID)
		if err != nil {
			return fmt.Errorf("loading responses for aggregation: %w", err)
		}
		total = s.aggregator.Total(responses)

		// Only the derived total changes; is_completed and completed_at stay
		// as the submission left them.
		locked.TotalScore = &total
		if err := tx.Save(&locked).Error; err != nil {
			return fmt.Errorf("updating total for assignment %d: %w", locked.ID, err)
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Uint("response_id", responseID).Msg("rescoring failed")
		return nil, err
	}

	log.Info().
		Uint("response_id", responseID).
		Uint("actor_id", actor.UserID).
		Float64("score", newScore).
		Float64("total_score", total).
		Msg("response rescored")
	return &dto.RescoreResultDTO{Status: "score updated", Score: newScore, TotalScore: total}, nil
}
