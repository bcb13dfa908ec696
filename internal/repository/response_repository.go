package repository

import (
	"github.com/hqdat/workpulse/internal/model"
	"gorm.io/gorm"
)

type ResponseRepository interface {
	FindByIDWithQuestion(id uint) (*model.SurveyResponse, error)
	FindAllByAssignment(assignmentID uint) ([]model.SurveyResponse, error)
	Update(response *model.SurveyResponse) error
	FactorAverages(surveyID uint) ([]FactorAverage, error)
}

// FactorAverage is one row of the per-factor statistics projection.
type FactorAverage struct {
	FactorID      uint
	FactorName    string
	FactorType    string
	AvgScore      float64
	ResponseCount int
}

type responseRepository struct {
	db *gorm.DB
}

func NewResponseRepository(db *gorm.DB) ResponseRepository {
	return &responseRepository{db: db}
}

func (r *responseRepository) FindByIDWithQuestion(id uint) (*model.SurveyResponse, error) {
	var response model.SurveyResponse
	err := r.db.
		Preload("Question.Factor").
		Preload("Assignment").
		First(&response, id).Error
	if err != nil {
		return nil, err
	}
	return &response, nil
}

func (r *responseRepository) FindAllByAssignment(assignmentID uint) ([]model.SurveyResponse, error) {
	return FindResponsesForAggregation(r.db, assignmentID)
}

func (r *responseRepository) Update(response *model.SurveyResponse) error {
	return r.db.Save(response).Error
}

func (r *responseRepository) FactorAverages(surveyID uint) ([]FactorAverage, error) {
	var rows []FactorAverage
	err := r.db.Model(&model.SurveyResponse{}).
		Select("factors.id as factor_id, factors.name as factor_name, factors.type as factor_type, AVG(survey_responses.score) as avg_score, COUNT(survey_responses.id) as response_count").
		Joins("JOIN questions ON questions.id = survey_responses.question_id").
		Joins("JOIN factors ON factors.id = questions.factor_id").
		Where("questions.survey_id = ? AND survey_responses.score IS NOT NULL", surveyID).
		Group("factors.id, factors.name, factors.type").
		Scan(&rows).Error
	return rows, err
}

// FindResponsesForAggregation loads the full response set of one assignment
// with the question and factor reference data the aggregation engine needs.
// Takes the handle explicitly so coordinators can call it inside a transaction.
func FindResponsesForAggregation(tx *gorm.DB, assignmentID uint) ([]model.SurveyResponse, error) {
	var responses []model.SurveyResponse
	err := tx.
		Preload("Question.Factor").
		Where("assignment_id = ?", assignmentID).
		Find(&responses).Error
	if err != nil {
		return nil, err
	}
	return responses, nil
}
