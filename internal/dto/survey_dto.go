package dto

import (
	"time"

	"github.com/hqdat/workpulse/internal/model"
)

// QuestionCreateDTO is used within SurveyCreateDTO.
type QuestionCreateDTO struct {
	Text          string             `json:"text" binding:"required"`
	Type          string             `json:"type" binding:"required,oneof=TEXT TEXTAREA RADIO CHECKBOX DROPDOWN RATING"`
	Options       []string           `json:"options,omitempty"`
	IsRequired    *bool              `json:"is_required"`
	Order         int                `json:"order"`
	FactorID      *uint              `json:"factor_id"`
	HasScoring    bool               `json:"has_scoring"`
	ScoringPoints float64            `json:"scoring_points" binding:"omitempty,min=0"`
	ScoringGuide  model.ScoringGuide `json:"scoring_guide,omitempty"`
}

type SurveyCreateDTO struct {
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description,omitempty"`
	Category    string              `json:"category" binding:"required,oneof=END_CONTRACT RENEWAL MID_CONTRACT ONBOARDING"`
	Questions   []QuestionCreateDTO `json:"questions" binding:"omitempty,dive"`
}

type QuestionResponseDTO struct {
	ID            uint               `json:"id"`
	SurveyID      uint               `json:"survey_id"`
	Text          string             `json:"text"`
	Type          string             `json:"type"`
	Options       []string           `json:"options,omitempty"`
	IsRequired    bool               `json:"is_required"`
	Order         int                `json:"order"`
	FactorID      *uint              `json:"factor_id,omitempty"`
	Factor        *FactorResponseDTO `json:"factor,omitempty"`
	HasScoring    bool               `json:"has_scoring"`
	ScoringPoints float64            `json:"scoring_points"`
	ScoringGuide  model.ScoringGuide `json:"scoring_guide,omitempty"`
}

type SurveyResponseDTO struct {
	ID          uint                  `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description,omitempty"`
	Category    string                `json:"category"`
	IsActive    bool                  `json:"is_active"`
	Questions   []QuestionResponseDTO `json:"questions,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
}

type SurveySummaryDTO struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	Category      string    `json:"category"`
	IsActive      bool      `json:"is_active"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// FactorStatDTO is one factor's aggregate within survey statistics.
type FactorStatDTO struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	AvgScore      float64 `json:"avg_score"`
	ResponseCount int     `json:"response_count"`
}

type SurveyStatisticsDTO struct {
	SurveyID             uint            `json:"survey_id"`
	Title                string          `json:"title"`
	TotalAssignments     int64           `json:"total_assignments"`
	CompletedAssignments int64           `json:"completed_assignments"`
	CompletionRate       float64         `json:"completion_rate"`
	AvgScore             *float64        `json:"avg_score"`
	FactorAnalysis       []FactorStatDTO `json:"factor_analysis"`
}
