package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	RiskLow    = "LOW"
	RiskMedium = "MEDIUM"
	RiskHigh   = "HIGH"
)

// Employee extends a User with HR attributes. Managed by the directory
// collaborator; read-only here.
type Employee struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	UserID       uint           `json:"user_id" gorm:"not null;uniqueIndex"`
	User         User           `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Position     string         `json:"position"`
	HireDate     *time.Time     `json:"hire_date,omitempty"`
	IsActive     bool           `json:"is_active" gorm:"default:true"`
	TurnoverRisk string         `json:"turnover_risk" gorm:"default:'LOW'"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
