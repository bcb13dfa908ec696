package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	SurveyCategoryEndContract = "END_CONTRACT"
	SurveyCategoryRenewal     = "RENEWAL"
	SurveyCategoryMidContract = "MID_CONTRACT"
	SurveyCategoryOnboarding  = "ONBOARDING"
)

type Survey struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description,omitempty" gorm:"type:text"`
	Category    string         `json:"category" gorm:"not null"`
	CreatedByID *uint          `json:"created_by,omitempty"`
	IsActive    bool           `json:"is_active" gorm:"default:true"`
	Questions   []Question     `json:"questions,omitempty" gorm:"foreignKey:SurveyID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
