package dto

import "time"

type AssignmentCreateDTO struct {
	SurveyID   uint       `json:"survey_id" binding:"required"`
	EmployeeID uint       `json:"employee_id" binding:"required"`
	DueDate    *time.Time `json:"due_date"`
}

type AssignmentResponseDTO struct {
	ID           uint       `json:"id"`
	SurveyID     uint       `json:"survey_id"`
	SurveyTitle  string     `json:"survey_title,omitempty"`
	EmployeeID   uint       `json:"employee_id"`
	EmployeeName string     `json:"employee_name,omitempty"`
	AssignedAt   time.Time  `json:"assigned_at"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	IsCompleted  bool       `json:"is_completed"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	TotalScore   *float64   `json:"total_score,omitempty"`
}
