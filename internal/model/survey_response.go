package model

import (
	"time"

	"gorm.io/gorm"
)

// SurveyResponse is one answer to one question within one assignment.
// Resubmission overwrites the row; the (assignment, question) pair is unique.
// Score stays nil whenever the scoring engine cannot produce a value.
type SurveyResponse struct {
	ID           uint             `gorm:"primarykey" json:"id"`
	AssignmentID uint             `json:"assignment_id" gorm:"not null;uniqueIndex:idx_response_assignment_question"`
	Assignment   SurveyAssignment `json:"-" gorm:"foreignKey:AssignmentID"`
	QuestionID   uint             `json:"question_id" gorm:"not null;uniqueIndex:idx_response_assignment_question"`
	Question     Question         `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	Answer       AnswerPayload    `json:"answer" gorm:"type:jsonb;not null"`
	Score        *float64         `json:"score,omitempty"`
	SubmittedAt  time.Time        `json:"submitted_at" gorm:"autoCreateTime"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
	DeletedAt    gorm.DeletedAt   `gorm:"index" json:"-"`
}
