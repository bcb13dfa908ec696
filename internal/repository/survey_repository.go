package repository

import (
	"github.com/hqdat/workpulse/internal/model"
	"gorm.io/gorm"
)

type SurveyRepository interface {
	Create(survey *model.Survey) error
	FindByID(id uint) (*model.Survey, error)
	FindByIDWithQuestions(id uint) (*model.Survey, error)
	FindAllWithQuestionCount() ([]SurveyWithQuestionCount, error)
	Update(survey *model.Survey) error
}

// SurveyWithQuestionCount is the listing projection.
type SurveyWithQuestionCount struct {
	model.Survey
	QuestionCount int
}

type surveyRepository struct {
	db *gorm.DB
}

func NewSurveyRepository(db *gorm.DB) SurveyRepository {
	return &surveyRepository{db: db}
}

func (r *surveyRepository) Create(survey *model.Survey) error {
	// Create with associations also persists survey.Questions.
	return r.db.Create(survey).Error
}

func (r *surveyRepository) FindByID(id uint) (*model.Survey, error) {
	var survey model.Survey
	if err := r.db.First(&survey, id).Error; err != nil {
		return nil, err
	}
	return &survey, nil
}

func (r *surveyRepository) FindByIDWithQuestions(id uint) (*model.Survey, error) {
	var survey model.Survey
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.order_in_survey ASC")
		}).
		Preload("Questions.Factor").
		First(&survey, id).Error
	if err != nil {
		return nil, err
	}
	return &survey, nil
}

func (r *surveyRepository) FindAllWithQuestionCount() ([]SurveyWithQuestionCount, error) {
	var results []SurveyWithQuestionCount
	err := r.db.Model(&model.Survey{}).
		Select("surveys.*, (SELECT COUNT(*) FROM questions WHERE questions.survey_id = surveys.id AND questions.deleted_at IS NULL) as question_count").
		Where("surveys.deleted_at IS NULL").
		Order("surveys.created_at DESC").
		Scan(&results).Error
	return results, err
}

func (r *surveyRepository) Update(survey *model.Survey) error {
	return r.db.Save(survey).Error
}
