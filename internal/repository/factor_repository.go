package repository

import (
	"github.com/hqdat/workpulse/internal/model"
	"gorm.io/gorm"
)

type FactorRepository interface {
	Create(factor *model.Factor) error
	FindByID(id uint) (*model.Factor, error)
	FindAll(factorType string) ([]model.Factor, error)
	Update(factor *model.Factor) error
	Delete(id uint) error
}

type factorRepository struct {
	db *gorm.DB
}

func NewFactorRepository(db *gorm.DB) FactorRepository {
	return &factorRepository{db: db}
}

func (r *factorRepository) Create(factor *model.Factor) error {
	return r.db.Create(factor).Error
}

func (r *factorRepository) FindByID(id uint) (*model.Factor, error) {
	var factor model.Factor
	if err := r.db.First(&factor, id).Error; err != nil {
		return nil, err
	}
	return &factor, nil
}

func (r *factorRepository) FindAll(factorType string) ([]model.Factor, error) {
	var factors []model.Factor
	query := r.db.Order("created_at desc")
	if factorType != "" {
		query = query.Where("type = ?", factorType)
	}
	if err := query.Find(&factors).Error; err != nil {
		return nil, err
	}
	return factors, nil
}

func (r *factorRepository) Update(factor *model.Factor) error {
	return r.db.Save(factor).Error
}

func (r *factorRepository) Delete(id uint) error {
	return r.db.Delete(&model.Factor{}, id).Error
}
