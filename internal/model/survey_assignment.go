package model

import (
	"time"

	"gorm.io/gorm"
)

// SurveyAssignment is one employee's instance of one survey, the unit of
// completion and scoring. At most one assignment exists per (survey, employee).
type SurveyAssignment struct {
	ID           uint             `gorm:"primarykey" json:"id"`
	SurveyID     uint             `json:"survey_id" gorm:"not null;uniqueIndex:idx_assignment_survey_employee"`
	Survey       Survey           `json:"survey,omitempty" gorm:"foreignKey:SurveyID"`
	EmployeeID   uint             `json:"employee_id" gorm:"not null;uniqueIndex:idx_assignment_survey_employee"`
	Employee     Employee         `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
	AssignedByID *uint            `json:"assigned_by,omitempty"`
	AssignedAt   time.Time        `json:"assigned_at" gorm:"autoCreateTime"`
	DueDate      *time.Time       `json:"due_date,omitempty"`
	IsCompleted  bool             `json:"is_completed" gorm:"default:false"`
	CompletedAt  *time.Time       `json:"completed_at,omitempty"`
	TotalScore   *float64         `json:"total_score,omitempty"`
	Responses    []SurveyResponse `json:"responses,omitempty" gorm:"foreignKey:AssignmentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
	DeletedAt    gorm.DeletedAt   `gorm:"index" json:"-"`
}
