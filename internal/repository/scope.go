package repository

import (
	"github.com/hqdat/workpulse/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ScopeAssignments narrows an assignment query to what the actor may see:
// admins see everything, HR officers their own department, employees only
// their own rows. Every assignment-reading query goes through here instead of
// re-deriving the department filter per call site.
func ScopeAssignments(db *gorm.DB, actor model.Actor) *gorm.DB {
	switch {
	case actor.IsAdmin():
		return db
	case actor.IsHR():
		return db.
			Joins("JOIN employees ON employees.id = survey_assignments.employee_id").
			Joins("JOIN users ON users.id = employees.user_id").
			Where("users.department_id = ?", actor.DepartmentID)
	default:
		return db.
			Joins("JOIN employees ON employees.id = survey_assignments.employee_id").
			Where("employees.user_id = ?", actor.UserID)
	}
}

// LockForUpdate takes a per-assignment row lock so concurrent submissions of
// the same assignment serialize their read-modify-write of total_score.
// SQLite (used in tests) serializes writers on its own and rejects the clause.
func LockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}
