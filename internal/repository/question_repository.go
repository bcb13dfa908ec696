package repository

import (
	"github.com/hqdat/workpulse/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	FindByID(id uint) (*model.Question, error)
	FindBySurveyID(surveyID uint) ([]model.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.Preload("Factor").First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindBySurveyID(surveyID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.
		Preload("Factor").
		Where("survey_id = ?", surveyID).
		Order("order_in_survey ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}
