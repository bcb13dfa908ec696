package service

import (
	"errors"
	"fmt"

	"github.com/hqdat/workpulse/internal/apperror"
	"github.com/hqdat/workpulse/internal/dto"
	"github.com/hqdat/workpulse/internal/model"
	"github.com/hqdat/workpulse/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type SurveyService interface {
	Create(actor model.Actor, req dto.SurveyCreateDTO) (*dto.SurveyResponseDTO, error)
	GetAll() ([]dto.SurveySummaryDTO, error)
	GetByID(surveyID uint, actor model.Actor) (*dto.SurveyResponseDTO, error)
	Statistics(surveyID uint) (*dto.SurveyStatisticsDTO, error)
}

type surveyService struct {
	surveyRepo     repository.SurveyRepository
	assignmentRepo repository.AssignmentRepository
	responseRepo   repository.ResponseRepository
}

func NewSurveyService(
	surveyRepo repository.SurveyRepository,
	assignmentRepo repository.AssignmentRepository,
	responseRepo repository.ResponseRepository,
) SurveyService {
	return &surveyService{
		surveyRepo:     surveyRepo,
		assignmentRepo: assignmentRepo,
		responseRepo:   responseRepo,
	}
}

func (s *surveyService) Create(actor model.Actor, req dto.SurveyCreateDTO) (*dto.SurveyResponseDTO, error) {
	questions := make([]model.Question, 0, len(req.Questions))
	for i, qDto := range req.Questions {
		order := qDto.Order
		if order == 0 {
			order = i + 1
		}
		isRequired := true
		if qDto.IsRequired != nil {
			isRequired = *qDto.IsRequired
		}
		questions = append(questions, model.Question{
			Text:          qDto.Text,
			Type:          qDto.Type,
			Options:       model.OptionList(qDto.Options),
			IsRequired:    isRequired,
			OrderInSurvey: order,
			FactorID:      qDto.FactorID,
			HasScoring:    qDto.HasScoring,
			ScoringPoints: qDto.ScoringPoints,
			ScoringGuide:  qDto.ScoringGuide,
		})
	}

	survey := model.Survey{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		CreatedByID: &actor.UserID,
		IsActive:    true,
		Questions:   questions,
	}
	if err := s.surveyRepo.Create(&survey); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("failed to create survey")
		return nil, fmt.Errorf("creating survey: %w", err)
	}

	created, err := s.surveyRepo.FindByIDWithQuestions(survey.ID)
	if err != nil {
		log.Error().Err(err).Uint("survey_id", survey.ID).Msg("failed to reload created survey")
		created = &survey
	}
	return surveyToDTO(created), nil
}

func (s *surveyService) GetAll() ([]dto.SurveySummaryDTO, error) {
	surveys, err := s.surveyRepo.FindAllWithQuestionCount()
	if err != nil {
		return nil, fmt.Errorf("fetching surveys: %w", err)
	}
	dtos := make([]dto.SurveySummaryDTO, 0, len(surveys))
	for _, swc := range surveys {
		dtos = append(dtos, dto.SurveySummaryDTO{
			ID:            swc.Survey.ID,
			Title:         swc.Survey.Title,
			Description:   swc.Survey.Description,
			Category:      swc.Survey.Category,
			IsActive:      swc.Survey.IsActive,
			QuestionCount: swc.QuestionCount,
			CreatedAt:     swc.Survey.CreatedAt,
		})
	}
	return dtos, nil
}

// GetByID returns the survey with its ordered questions. HR and admin see any
// survey; employees only surveys assigned to them.
func (s *surveyService) GetByID(surveyID uint, actor model.Actor) (*dto.SurveyResponseDTO, error) {
	if !actor.IsAdmin() && !actor.IsHR() {
		assigned, err := s.assignmentRepo.UserHasAssignment(surveyID, actor.UserID)
		if err != nil {
			return nil, fmt.Errorf("checking survey visibility: %w", err)
		}
		if !assigned {
			return nil, apperror.NewNotFound("survey not found", nil)
		}
	}

	survey, err := s.surveyRepo.FindByIDWithQuestions(surveyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("survey not found", err)
		}
		return nil, fmt.Errorf("loading survey %d: %w", surveyID, err)
	}
	return surveyToDTO(survey), nil
}

// Statistics computes real aggregates for one survey: completion counts, the
// average assignment total and per-factor response averages.
func (s *surveyService) Statistics(surveyID uint) (*dto.SurveyStatisticsDTO, error) {
	survey, err := s.surveyRepo.FindByID(surveyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("survey not found", err)
		}
		return nil, fmt.Errorf("loading survey %d: %w", surveyID, err)
	}

	total, completed, err := s.assignmentRepo.CountBySurvey(surveyID)
	if err != nil {
		return nil, fmt.Errorf("counting assignments: %w", err)
	}
	completionRate := 0.0
	if total > 0 {
		completionRate = float64(completed) / float64(total) * 100
	}

	avgScore, err := s.assignmentRepo.AverageTotalScore(surveyID)
	if err != nil {
		return nil, fmt.Errorf("averaging total scores: %w", err)
	}

	averages, err := s.responseRepo.FactorAverages(surveyID)
	if err != nil {
		return nil, fmt.Errorf("computing factor averages: %w", err)
	}
	factorStats := make([]dto.FactorStatDTO, 0, len(averages))
	for _, row := range averages {
		factorStats = append(factorStats, dto.FactorStatDTO{
			ID:            row.FactorID,
			Name:          row.FactorName,
			Type:          row.FactorType,
			AvgScore:      row.AvgScore,
			ResponseCount: row.ResponseCount,
		})
	}

	return &dto.SurveyStatisticsDTO{
		SurveyID:             survey.ID,
		Title:                survey.Title,
		TotalAssignments:     total,
		CompletedAssignments: completed,
		CompletionRate:       completionRate,
		AvgScore:             avgScore,
		FactorAnalysis:       factorStats,
	}, nil
}

func surveyToDTO(survey *model.Survey) *dto.SurveyResponseDTO {
	var resp dto.SurveyResponseDTO
	copier.Copy(&resp, survey)
	resp.Questions = make([]dto.QuestionResponseDTO, 0, len(survey.Questions))
	for i := range survey.Questions {
		q := &survey.Questions[i]
		qDto := dto.QuestionResponseDTO{
			ID:            q.ID,
			SurveyID:      q.SurveyID,
			Text:          q.Text,
			Type:          q.Type,
			Options:       q.Options,
			IsRequired:    q.IsRequired,
			Order:         q.OrderInSurvey,
			FactorID:      q.FactorID,
			HasScoring:    q.HasScoring,
			ScoringPoints: q.ScoringPoints,
			ScoringGuide:  q.ScoringGuide,
		}
		if q.Factor != nil {
			qDto.Factor = factorToDTO(q.Factor)
		}
		resp.Questions = append(resp.Questions, qDto)
	}
	return &resp
}
