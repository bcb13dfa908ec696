package service

import (
	"errors"
	"fmt"
	"sort"

	"github.com/hqdat/workpulse/internal/apperror"
	"github.com/hqdat/workpulse/internal/dto"
	"github.com/hqdat/workpulse/internal/model"
	"github.com/hqdat/workpulse/internal/repository"
	"gorm.io/gorm"
)

// ResponseService exposes the read accessors used to render submission
// summaries: per-assignment response detail and the by-survey roll-up.
type ResponseService interface {
	AssignmentResponses(assignmentID uint, actor model.Actor) ([]dto.ResponseDetailDTO, error)
	ResponsesBySurvey(surveyID uint, actor model.Actor) ([]dto.AssignmentSummaryDTO, error)
}

type responseService struct {
	responseRepo   repository.ResponseRepository
	assignmentRepo repository.AssignmentRepository
	db             *gorm.DB
}

func NewResponseService(
	responseRepo repository.ResponseRepository,
	assignmentRepo repository.AssignmentRepository,
	db *gorm.DB,
) ResponseService {
	return &responseService{
		responseRepo:   responseRepo,
		assignmentRepo: assignmentRepo,
		db:             db,
	}
}

func (s *responseService) AssignmentResponses(assignmentID uint, actor model.Actor) ([]dto.ResponseDetailDTO, error) {
	// Hide assignments the actor may not see behind the same not-found the
	// missing case produces.
	var assignment model.SurveyAssignment
	err := repository.ScopeAssignments(s.db.Model(&model.SurveyAssignment{}), actor).
		Where("survey_assignments.id = ?", assignmentID).
		First(&assignment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("survey assignment not found", err)
		}
		return nil, fmt.Errorf("resolving assignment %d: %w", assignmentID, err)
	}

	responses, err := s.responseRepo.FindAllByAssignment(assignmentID)
	if err != nil {
		return nil, fmt.Errorf("loading responses for assignment %d: %w", assignmentID, err)
	}
	sortByQuestionOrder(responses)
	return responsesToDetails(responses), nil
}

func (s *responseService) ResponsesBySurvey(surveyID uint, actor model.Actor) ([]dto.AssignmentSummaryDTO, error) {
	assignments, err := s.assignmentRepo.FindCompletedBySurveyScoped(surveyID, actor)
	if err != nil {
		return nil, fmt.Errorf("loading completed assignments for survey %d: %w", surveyID, err)
	}

	summaries := make([]dto.AssignmentSummaryDTO, 0, len(assignments))
	for i := range assignments {
		assignment := &assignments[i]
		responses := assignment.Responses
		sortByQuestionOrder(responses)

		details := dto.EmployeeDetailsDTO{
			Name:     assignment.Employee.User.FullName(),
			Email:    assignment.Employee.User.Email,
			Position: assignment.Employee.Position,
		}
		if assignment.Employee.User.Department != nil {
			details.Department = assignment.Employee.User.Department.Name
		}

		summaries = append(summaries, dto.AssignmentSummaryDTO{
			ID:              assignment.ID,
			EmployeeDetails: details,
			CompletedAt:     assignment.CompletedAt,
			TotalScore:      assignment.TotalScore,
			Responses:       responsesToDetails(responses),
		})
	}
	return summaries, nil
}

func sortByQuestionOrder(responses []model.SurveyResponse) {
	sort.SliceStable(responses, func(i, j int) bool {
		return responses[i].Question.OrderInSurvey < responses[j].Question.OrderInSurvey
	})
}

func responsesToDetails(responses []model.SurveyResponse) []dto.ResponseDetailDTO {
	details := make([]dto.ResponseDetailDTO, 0, len(responses))
	for i := range responses {
		r := &responses[i]
		details = append(details, dto.ResponseDetailDTO{
			ID:           r.ID,
			QuestionID:   r.QuestionID,
			QuestionText: r.Question.Text,
			Answer:       r.Answer,
			Score:        r.Score,
			MaxPoints:    r.Question.ScoringPoints,
			HasScoring:   r.Question.HasScoring,
		})
	}
	return details
}
