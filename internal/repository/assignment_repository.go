package repository

import (
	"github.com/hqdat/workpulse/internal/model"
	"gorm.io/gorm"
)

type AssignmentRepository interface {
	Create(assignment *model.SurveyAssignment) error
	Update(assignment *model.SurveyAssignment) error
	FindByID(id uint) (*model.SurveyAssignment, error)
	// FindOwned resolves an assignment by id and survey, but only when it
	// belongs to the given user. Enforces that employees submit only their
	// own surveys.
	FindOwned(id, surveyID, userID uint) (*model.SurveyAssignment, error)
	FindBySurveyAndEmployee(surveyID, employeeID uint) (*model.SurveyAssignment, error)
	FindAllScoped(actor model.Actor, surveyID uint, completed *bool) ([]model.SurveyAssignment, error)
	FindPendingByUser(userID uint) ([]model.SurveyAssignment, error)
	FindCompletedBySurveyScoped(surveyID uint, actor model.Actor) ([]model.SurveyAssignment, error)
	CountBySurvey(surveyID uint) (total int64, completed int64, err error)
	AverageTotalScore(surveyID uint) (*float64, error)
	UserHasAssignment(surveyID, userID uint) (bool, error)
}

type assignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

func (r *assignmentRepository) Create(assignment *model.SurveyAssignment) error {
	return r.db.Create(assignment).Error
}

func (r *assignmentRepository) Update(assignment *model.SurveyAssignment) error {
	return r.db.Save(assignment).Error
}

func (r *assignmentRepository) FindByID(id uint) (*model.SurveyAssignment, error) {
	var assignment model.SurveyAssignment
	if err := r.db.First(&assignment, id).Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepository) FindOwned(id, surveyID, userID uint) (*model.SurveyAssignment, error) {
	var assignment model.SurveyAssignment
	err := r.db.
		Joins("JOIN employees ON employees.id = survey_assignments.employee_id").
		Where("survey_assignments.id = ? AND survey_assignments.survey_id = ? AND employees.user_id = ?", id, surveyID, userID).
		First(&assignment).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepository) FindBySurveyAndEmployee(surveyID, employeeID uint) (*model.SurveyAssignment, error) {
	var assignment model.SurveyAssignment
	err := r.db.
		Where("survey_id = ? AND employee_id = ?", surveyID, employeeID).
		First(&assignment).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepository) FindAllScoped(actor model.Actor, surveyID uint, completed *bool) ([]model.SurveyAssignment, error) {
	query := ScopeAssignments(r.db.Model(&model.SurveyAssignment{}), actor).
		Preload("Survey").
		Preload("Employee.User")
	if surveyID != 0 {
		query = query.Where("survey_assignments.survey_id = ?", surveyID)
	}
	if completed != nil {
		query = query.Where("survey_assignments.is_completed = ?", *completed)
	}
	var assignments []model.SurveyAssignment
	err := query.Order("survey_assignments.assigned_at DESC").Find(&assignments).Error
	return assignments, err
}

func (r *assignmentRepository) FindPendingByUser(userID uint) ([]model.SurveyAssignment, error) {
	var assignments []model.SurveyAssignment
	err := r.db.
		Joins("JOIN employees ON employees.id = survey_assignments.employee_id").
		Where("employees.user_id = ? AND survey_assignments.is_completed = ?", userID, false).
		Preload("Survey").
		Order("survey_assignments.assigned_at DESC").
		Find(&assignments).Error
	return assignments, err
}

func (r *assignmentRepository) FindCompletedBySurveyScoped(surveyID uint, actor model.Actor) ([]model.SurveyAssignment, error) {
	var assignments []model.SurveyAssignment
	err := ScopeAssignments(r.db.Model(&model.SurveyAssignment{}), actor).
		Where("survey_assignments.survey_id = ? AND survey_assignments.is_completed = ?", surveyID, true).
		Preload("Employee.User.Department").
		Preload("Responses.Question").
		Order("survey_assignments.completed_at DESC").
		Find(&assignments).Error
	return assignments, err
}

func (r *assignmentRepository) CountBySurvey(surveyID uint) (int64, int64, error) {
	var total, completed int64
	if err := r.db.Model(&model.SurveyAssignment{}).
		Where("survey_id = ?", surveyID).
		Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if err := r.db.Model(&model.SurveyAssignment{}).
		Where("survey_id = ? AND is_completed = ?", surveyID, true).
		Count(&completed).Error; err != nil {
		return 0, 0, err
	}
	return total, completed, nil
}

func (r *assignmentRepository) AverageTotalScore(surveyID uint) (*float64, error) {
	var result struct {
		AvgScore *float64
	}
	err := r.db.Model(&model.SurveyAssignment{}).
		Select("AVG(total_score) as avg_score").
		Where("survey_id = ? AND is_completed = ? AND total_score IS NOT NULL", surveyID, true).
		Scan(&result).Error
	if err != nil {
		return nil, err
	}
	return result.AvgScore, nil
}

func (r *assignmentRepository) UserHasAssignment(surveyID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.SurveyAssignment{}).
		Joins("JOIN employees ON employees.id = survey_assignments.employee_id").
		Where("survey_assignments.survey_id = ? AND employees.user_id = ?", surveyID, userID).
		Count(&count).Error
	return count > 0, err
}
