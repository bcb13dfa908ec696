package dto

import (
	"time"

	"github.com/hqdat/workpulse/internal/model"
)

// ResponseSubmitDTO is one raw (question, answer) pair within a submission.
type ResponseSubmitDTO struct {
	QuestionID uint                `json:"question_id" binding:"required"`
	Answer     model.AnswerPayload `json:"answer" binding:"required"`
}

// SurveySubmitDTO is the full submission batch for one assignment.
type SurveySubmitDTO struct {
	AssignmentID uint                `json:"assignment_id" binding:"required"`
	Responses    []ResponseSubmitDTO `json:"responses" binding:"required,dive"`
}

type SubmissionResultDTO struct {
	Status     string  `json:"status"`
	TotalScore float64 `json:"total_score"`
}

// RescoreRequestDTO carries a manual score override.
type RescoreRequestDTO struct {
	Score *float64 `json:"score" binding:"required"`
}

type RescoreResultDTO struct {
	Status     string  `json:"status"`
	Score      float64 `json:"score"`
	TotalScore float64 `json:"total_score"`
}

// ResponseDetailDTO renders one stored response for submission summaries.
type ResponseDetailDTO struct {
	ID           uint                `json:"id"`
	QuestionID   uint                `json:"question_id"`
	QuestionText string              `json:"question_text"`
	Answer       model.AnswerPayload `json:"answer"`
	Score        *float64            `json:"score,omitempty"`
	MaxPoints    float64             `json:"max_points"`
	HasScoring   bool                `json:"has_scoring"`
}

type EmployeeDetailsDTO struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Position   string `json:"position"`
}

// AssignmentSummaryDTO is the by-survey roll-up row for HR reviewers.
type AssignmentSummaryDTO struct {
	ID              uint                `json:"id"`
	EmployeeDetails EmployeeDetailsDTO  `json:"employee_details"`
	CompletedAt     *time.Time          `json:"completed_at,omitempty"`
	TotalScore      *float64            `json:"total_score,omitempty"`
	Responses       []ResponseDetailDTO `json:"responses"`
}
