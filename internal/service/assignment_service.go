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

// AssignmentService handles the assignment workflow: HR hands a survey to an
// employee, employees list their pending work.
type AssignmentService interface {
	Create(actor model.Actor, req dto.AssignmentCreateDTO) (*dto.AssignmentResponseDTO, error)
	GetAllScoped(actor model.Actor, surveyID uint, completed *bool) ([]dto.AssignmentResponseDTO, error)
	MyAssignments(actor model.Actor) ([]dto.AssignmentResponseDTO, error)
}

type assignmentService struct {
	assignmentRepo repository.AssignmentRepository
	surveyRepo     repository.SurveyRepository
	userRepo       repository.UserRepository
}

func NewAssignmentService(
	assignmentRepo repository.AssignmentRepository,
	surveyRepo repository.SurveyRepository,
	userRepo repository.UserRepository,
) AssignmentService {
	return &assignmentService{
		assignmentRepo: assignmentRepo,
		surveyRepo:     surveyRepo,
		userRepo:       userRepo,
	}
}

func (s *assignmentService) Create(actor model.Actor, req dto.AssignmentCreateDTO) (*dto.AssignmentResponseDTO, error) {
	survey, err := s.surveyRepo.FindByID(req.SurveyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("survey not found", err)
		}
		return nil, fmt.Errorf("resolving survey %d: %w", req.SurveyID, err)
	}
	employee, err := s.userRepo.FindEmployeeByID(req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("employee not found", err)
		}
		return nil, fmt.Errorf("resolving employee %d: %w", req.EmployeeID, err)
	}

	// One assignment per (survey, employee). The DB unique index backs this
	// up, but a duplicate should read as a client error, not a storage one.
	if _, err := s.assignmentRepo.FindBySurveyAndEmployee(req.SurveyID, req.EmployeeID); err == nil {
		return nil, apperror.NewValidation("employee is already assigned to this survey", nil)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("checking existing assignment: %w", err)
	}

	assignment := model.SurveyAssignment{
		SurveyID:     req.SurveyID,
		EmployeeID:   req.EmployeeID,
		AssignedByID: &actor.UserID,
		DueDate:      req.DueDate,
	}
	if err := s.assignmentRepo.Create(&assignment); err != nil {
		log.Error().Err(err).Uint("survey_id", req.SurveyID).Uint("employee_id", req.EmployeeID).Msg("failed to create assignment")
		return nil, fmt.Errorf("creating assignment: %w", err)
	}

	resp := assignmentToDTO(&assignment)
	resp.SurveyTitle = survey.Title
	resp.EmployeeName = employee.User.FullName()
	return resp, nil
}

func (s *assignmentService) GetAllScoped(actor model.Actor, surveyID uint, completed *bool) ([]dto.AssignmentResponseDTO, error) {
	assignments, err := s.assignmentRepo.FindAllScoped(actor, surveyID, completed)
	if err != nil {
		return nil, fmt.Errorf("fetching assignments: %w", err)
	}
	return assignmentsToDTOs(assignments), nil
}

func (s *assignmentService) MyAssignments(actor model.Actor) ([]dto.AssignmentResponseDTO, error) {
	assignments, err := s.assignmentRepo.FindPendingByUser(actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("fetching pending assignments: %w", err)
	}
	return assignmentsToDTOs(assignments), nil
}

func assignmentToDTO(assignment *model.SurveyAssignment) *dto.AssignmentResponseDTO {
	resp := &dto.AssignmentResponseDTO{
		ID:          assignment.ID,
		SurveyID:    assignment.SurveyID,
		EmployeeID:  assignment.EmployeeID,
		AssignedAt:  assignment.AssignedAt,
		DueDate:     assignment.DueDate,
		IsCompleted: assignment.IsCompleted,
		CompletedAt: assignment.CompletedAt,
		TotalScore:  assignment.TotalScore,
	}
	if assignment.Survey.ID != 0 {
		resp.SurveyTitle = assignment.Survey.Title
	}
	if assignment.Employee.ID != 0 {
		resp.EmployeeName = assignment.Employee.User.FullName()
	}
	return resp
}

func assignmentsToDTOs(assignments []model.SurveyAssignment) []dto.AssignmentResponseDTO {
	dtos := make([]dto.AssignmentResponseDTO, 0, len(assignments))
	for i := range assignments {
		dtos = append(dtos, *assignmentToDTO(&assignments[i]))
	}
	return dtos
}
