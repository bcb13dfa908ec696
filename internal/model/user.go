package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleAdmin    = "ADMIN"
	RoleHR       = "HR"
	RoleEmployee = "EMPLOYEE"
)

// User is directory reference data. Authentication lives in a separate
// service; this table only backs actor resolution and department scoping.
type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	Email        string         `json:"email" gorm:"not null;uniqueIndex"`
	FirstName    string         `json:"first_name"`
	LastName     string         `json:"last_name"`
	Role         string         `json:"role" gorm:"not null;default:'EMPLOYEE'"`
	DepartmentID *uint          `json:"department_id,omitempty" gorm:"index"`
	Department   *Department    `json:"department,omitempty" gorm:"foreignKey:DepartmentID"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// FullName joins first and last name, falling back to the email.
func (u *User) FullName() string {
	name := u.FirstName
	if u.LastName != "" {
		if name != "" {
			name += " "
		}
		name += u.LastName
	}
	if name == "" {
		return u.Email
	}
	return name
}
