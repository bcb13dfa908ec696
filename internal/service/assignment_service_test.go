package service

import (
	"testing"

	"github.com/hqdat/workpulse/internal/apperror"
	"github.com/hqdat/workpulse/internal/dto"
	"github.com/hqdat/workpulse/internal/model"
	"github.com/hqdat/workpulse/internal/repository"
	"gorm.io/gorm"
)

func newAssignmentService(db *gorm.DB) AssignmentService {
	return NewAssignmentService(
		repository.NewAssignmentRepository(db),
		repository.NewSurveyRepository(db),
		repository.NewUserRepository(db),
	)
}

func seedSecondEmployee(t *testing.T, db *gorm.DB, email string) model.Employee {
	t.Helper()
	user := model.User{Email: email, Role: model.RoleEmployee}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seeding user: %v", err)
	}
	employee := model.Employee{UserID: user.ID, Position: "Analyst"}
	if err := db.Create(&employee).Error; err != nil {
		t.Fatalf("seeding employee: %v", err)
	}
	return employee
}

func TestCreateAssignment(t *testing.T) {
	fixture := seedSurveyFixture(t, newTestDB(t))
	svc := newAssignmentService(fixture.db)
	hr := model.Actor{UserID: 42, Role: model.RoleHR}

	employee := seedSecondEmployee(t, fixture.db, "analyst@example.com")
	created, err := svc.Create(hr, dto.AssignmentCreateDTO{
		SurveyID:   fixture.survey.ID,
		EmployeeID: employee.ID,
	})
	if err != nil {
		t.Fatalf("create assignment: %v", err)
	}
	if created.SurveyID != fixture.survey.ID || created.EmployeeID != employee.ID {
		t.Fatalf("unexpected assignment %+v", created)
	}
	if created.IsCompleted {
		t.Fatal("new assignment must start incomplete")
	}
}

func TestCreateAssignmentDuplicate(t *testing.T) {
	fixture := seedSurveyFixture(t, newTestDB(t))
	svc := newAssignmentService(fixture.db)
	hr := model.Actor{UserID: 42, Role: model.RoleHR}

	// The fixture already assigned this survey to this employee.
	_, err := svc.Create(hr, dto.AssignmentCreateDTO{
		SurveyID:   fixture.survey.ID,
		EmployeeID: fixture.employee.ID,
	})
	if !apperror.IsValidation(err) {
		t.Fatalf("expected validation error for duplicate assignment, got %v", err)
	}
}

func TestCreateAssignmentUnknownTargets(t *testing.T) {
	fixture := seedSurveyFixture(t, newTestDB(t))
	svc := newAssignmentService(fixture.db)
	hr := model.Actor{UserID: 42, Role: model.RoleHR}

	_, err := svc.Create(hr, dto.AssignmentCreateDTO{SurveyID: 9999, EmployeeID: fixture.employee.ID})
	if !apperror.IsNotFound(err) {
		t.Fatalf("expected not-found for unknown survey, got %v", err)
	}

	_, err = svc.Create(hr, dto.AssignmentCreateDTO{SurveyID: fixture.survey.ID, EmployeeID: 9999})
	if !apperror.IsNotFound(err) {
		t.Fatalf("expected not-found for unknown employee, got %v", err)
	}
}

func TestMyAssignmentsPendingOnly(t *testing.T) {
	fixture := seedSurveyFixture(t, newTestDB(t))
	svc := newAssignmentService(fixture.db)

	pending, err := svc.MyAssignments(fixture.actor)
	if err != nil {
		t.Fatalf("my assignments: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != fixture.assignment.ID {
		t.Fatalf("expected the one pending assignment, got %+v", pending)
	}

	submitFixture(t, fixture)

	pending, err = svc.MyAssignments(fixture.actor)
	if err != nil {
		t.Fatalf("my assignments after completion: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("completed assignments must disappear from the pending list, got %+v", pending)
	}
}
