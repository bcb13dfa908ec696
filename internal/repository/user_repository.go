package repository

import (
	"github.com/hqdat/workpulse/internal/model"
	"gorm.io/gorm"
)

// UserRepository reads directory reference data owned by the identity
// collaborator. The core never mutates these tables.
type UserRepository interface {
	FindByID(id uint) (*model.User, error)
	FindEmployeeByID(id uint) (*model.Employee, error)
	FindEmployeeByUserID(userID uint) (*model.Employee, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.Preload("Department").First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindEmployeeByID(id uint) (*model.Employee, error) {
	var employee model.Employee
	if err := r.db.Preload("User").First(&employee, id).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *userRepository) FindEmployeeByUserID(userID uint) (*model.Employee, error) {
	var employee model.Employee
	if err := r.db.Preload("User").Where("user_id = ?", userID).First(&employee).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}
