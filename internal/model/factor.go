package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	FactorTypeTurnover    = "TURNOVER"
	FactorTypeNonTurnover = "NON_TURNOVER"

	FactorWeightMin = 0.1
	FactorWeightMax = 10.0
)

// Factor is a named weighting category referenced by questions. Its weight
// multiplies response scores during aggregation.
type Factor struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Name        string         `json:"name" gorm:"not null"`
	Description string         `json:"description,omitempty" gorm:"type:text"`
	Type        string         `json:"type" gorm:"not null;default:'NON_TURNOVER'"`
	Weight      float64        `json:"weight" gorm:"not null;default:1.0"`
	CreatedByID *uint          `json:"created_by,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
