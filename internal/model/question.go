package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	QuestionTypeText     = "TEXT"
	QuestionTypeTextArea = "TEXTAREA"
	QuestionTypeRadio    = "RADIO"
	QuestionTypeCheckbox = "CHECKBOX"
	QuestionTypeDropdown = "DROPDOWN"
	QuestionTypeRating   = "RATING"
)

// Question belongs to exactly one survey. ScoringGuide is only meaningful for
// RADIO, DROPDOWN and CHECKBOX questions; RATING scores directly from the
// answer value and open text is never scored.
type Question struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	SurveyID      uint           `json:"survey_id" gorm:"not null;index"`
	Text          string         `json:"text" gorm:"type:text;not null"`
	Type          string         `json:"type" gorm:"not null"`
	Options       OptionList     `json:"options,omitempty" gorm:"type:jsonb"`
	IsRequired    bool           `json:"is_required" gorm:"default:true"`
	OrderInSurvey int            `json:"order" gorm:"not null;default:0"`
	FactorID      *uint          `json:"factor_id,omitempty" gorm:"index"`
	Factor        *Factor        `json:"factor,omitempty" gorm:"foreignKey:FactorID"`
	HasScoring    bool           `json:"has_scoring" gorm:"default:false"`
	ScoringPoints float64        `json:"scoring_points" gorm:"default:0"`
	ScoringGuide  ScoringGuide   `json:"scoring_guide,omitempty" gorm:"type:jsonb"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
