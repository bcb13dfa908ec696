package service

import (
	"fmt"
	"testing"

	"github.com/hqdat/workpulse/internal/apperror"
	"github.com/hqdat/workpulse/internal/dto"
	"github.com/hqdat/workpulse/internal/model"
	"github.com/hqdat/workpulse/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&model.Department{},
		&model.User{},
		&model.Employee{},
		&model.Factor{},
		&model.Survey{},
		&model.Question{},
		&model.SurveyAssignment{},
		&model.SurveyResponse{},
	)
	if err != nil {
		t.Fatalf("migrating schema: %v", err)
	}
	return db
}

// surveyFixture seeds one survey with a weighted radio question, an
// unweighted rating question and an unscored free-text question, assigned to
// one employee.
type surveyFixture struct {
	db         *gorm.DB
	survey     model.Survey
	radio      model.Question
	rating     model.Question
	freeText   model.Question
	employee   model.Employee
	actor      model.Actor
	assignment model.SurveyAssignment
}

func seedSurveyFixture(t *testing.T, db *gorm.DB) *surveyFixture {
	t.Helper()

	dept := model.Department{Name: "Engineering"}
	if err := db.Create(&dept).Error; err != nil {
		t.Fatalf("seeding department: %v", err)
	}
	user := model.User{Email: "dev@example.com", FirstName: "Linh", Role: model.RoleEmployee, DepartmentID: &dept.ID}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seeding user: %v", err)
	}
	employee := model.Employee{UserID: user.ID, Position: "Backend Engineer"}
	if err := db.Create(&employee).Error; err != nil {
		t.Fatalf("seeding employee: %v", err)
	}

	factor := model.Factor{Name: "Workload", Type: model.FactorTypeTurnover, Weight: 2.0}
	if err := db.Create(&factor).Error; err != nil {
		t.Fatalf("seeding factor: %v", err)
	}

	survey := model.Survey{Title: "Mid-contract check-in", Category: model.SurveyCategoryMidContract, IsActive: true}
	if err := db.Create(&survey).Error; err != nil {
		t.Fatalf("seeding survey: %v", err)
	}

	radio := model.Question{
		SurveyID:      survey.ID,
		Text:          "How manageable is your workload?",
		Type:          model.QuestionTypeRadio,
		Options:       model.OptionList{"Manageable", "Overloaded"},
		OrderInSurvey: 1,
		FactorID:      &factor.ID,
		HasScoring:    true,
		ScoringPoints: 5,
		ScoringGuide:  model.ScoringGuide{"1": 5, "2": 0},
	}
	rating := model.Question{
		SurveyID:      survey.ID,
		Text:          "Rate your overall satisfaction",
		Type:          model.QuestionTypeRating,
		OrderInSurvey: 2,
		HasScoring:    true,
		ScoringPoints: 10,
	}
	freeText := model.Question{
		SurveyID:      survey.ID,
		Text:          "Anything else?",
		Type:          model.QuestionTypeText,
		OrderInSurvey: 3,
	}
	for _, q := range []*model.Question{&radio, &rating, &freeText} {
		if err := db.Create(q).Error; err != nil {
			t.Fatalf("seeding question: %v", err)
		}
	}

	assignment := model.SurveyAssignment{SurveyID: survey.ID, EmployeeID: employee.ID}
	if err := db.Create(&assignment).Error; err != nil {
		t.Fatalf("seeding assignment: %v", err)
	}

	return &surveyFixture{
		db:         db,
		survey:     survey,
		radio:      radio,
		rating:     rating,
		freeText:   freeText,
		employee:   employee,
		actor:      model.Actor{UserID: user.ID, Role: model.RoleEmployee},
		assignment: assignment,
	}
}

func newSubmissionService(db *gorm.DB) SubmissionService {
	return NewSubmissionService(
		repository.NewQuestionRepository(db),
		repository.NewAssignmentRepository(db),
		NewScoringService(),
		NewAggregationService(),
		db,
	)
}

func (f *surveyFixture) reloadAssignment(t *testing.T) model.SurveyAssignment {
	t.Helper()
	var assignment model.SurveyAssignment
	if err := f.db.First(&assignment, f.assignment.ID).Error; err != nil {
		t.Fatalf("reloading assignment: %v", err)
	}
	return assignment
}

func (f *surveyFixture) responseFor(t *testing.T, questionID uint) model.SurveyResponse {
	t.Helper()
	var response model.SurveyResponse
	err := f.db.
		Where("assignment_id = ? AND question_id = ?", f.assignment.ID, questionID).
		First(&response).Error
	if err != nil {
		t.Fatalf("loading response for question %d: %v", questionID, err)
	}
	return response
}

func TestSubmitScoresAndAggregates(t *testing.T) {
	fixture := seedSurveyFixture(t, newTestDB(t))
	svc := newSubmissionService(fixture.db)

	result, err := svc.Submit(fixture.survey.ID, fixture.actor, dto.SurveySubmitDTO{
		AssignmentID: fixture.assignment.ID,
		Responses: []dto.ResponseSubmitDTO{
			{QuestionID: fixture.radio.ID, Answer: model.AnswerPayload{"value": "1"}},
			{QuestionID: fixture.rating.ID, Answer: model.AnswerPayload{"value": float64(4)}},
			{QuestionID: fixture.freeText.ID, Answer: model.AnswerPayload{"value": "all good"}},
		},
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	// radio 5 * weight 2.0 + rating 4, free text excluded
	if result.TotalScore != 14 {
		t.Fatalf("expected total 14, got %g", result.TotalScore)
	}

	assignment := fixture.reloadAssignment(t)
	if !assignment.IsCompleted || assignment.CompletedAt == nil {
		t.Fatal("assignment should be marked completed")
	}
	if assignment.TotalScore == nil || *assignment.TotalScore != 14 {
		t.Fatalf("expected stored total 14, got %v", assignment.TotalScore)
	}

	if r := fixture.responseFor(t, fixture.radio.ID); r.Score == nil || *r.Score != 5 {
		t.Fatalf("radio response should store unweighted score 5, got %v", r.Score)
	}
	if r := fixture.responseFor(t, fixture.freeText.ID); r.Score != nil {
		t.Fatalf("free text response must stay unscored, got %v", *r.Score)
	}
}

func TestSubmitGuideMissLeavesResponseUnscored(t *testing.T) {
	fixture := seedSurveyFixture(t, newTestDB(t))
	svc := newSubmissionService(fixture.db)

	result, err := svc.Submit(fixture.survey.ID, fixture.actor, dto.SurveySubmitDTO{
		AssignmentID: fixture.assignment.ID,
		Responses: []dto.ResponseSubmitDTO{
			{QuestionID: fixture.radio.ID, Answer: model.AnswerPayload{"value": "99"}},
			{QuestionID: fixture.rating.ID, Answer: model.AnswerPayload{"value": float64(4)}},
		},
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if result.TotalScore != 4 {
		t.Fatalf("unscored radio must not contribute, expected 4, got %g", result.TotalScore)
	}
	if r := fixture.responseFor(t, fixture.radio.ID); r.Score != nil {
		t.Fatalf("guide miss should persist nil score, got %v", *r.Score)
	}
}

func TestSubmitOverwritesOnResubmission(t *testing.T) {
	fixture := seedSurveyFixture(t, newTestDB(t))
	svc := newSubmissionService(fixture.db)

	first := dto.SurveySubmitDTO{
		AssignmentID: fixture.assignment.ID,
		Responses: []dto.ResponseSubmitDTO{
			{QuestionID: fixture.radio.ID, Answer: model.AnswerPayload{"value": "1"}},
			{QuestionID: fixture.rating.ID, Answer: model.AnswerPayload{"value": float64(4)}},
		},
	}
	if _, err := svc.Submit(fixture.survey.ID, fixture.actor, first); err != nil {
		t.Fatalf("first submit: %v", err)
	}

	second := dto.SurveySubmitDTO{
		AssignmentID: fixture.assignment.ID,
		Responses: []dto.ResponseSubmitDTO{
			{QuestionID: fixture.radio.ID, Answer: model.AnswerPayload{"value": "2"}},
		},
	}
	result, err := svc.Submit(fixture.survey.ID, fixture.actor, second)
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}

	// radio now 0 * 2.0; the rating answer from the first batch still counts.
	if result.TotalScore != 4 {
		t.Fatalf("expected recomputed total 4, got %g", result.TotalScore)
	}

	var count int64
	fixture.db.Model(&model.SurveyResponse{}).
		Where("assignment_id = ? AND question_id = ?", fixture.assignment.ID, fixture.radio.ID).
		Count(&count)
	if count != 1 {
		t.Fatalf("resubmission must overwrite, not duplicate: %d rows", count)
	}
}

func TestSubmitSkipsQuestionsOutsideSurvey(t *testing.T) {
	fixture := seedSurveyFixture(t, newTestDB(t))
	svc := newSubmissionService(fixture.db)

	result, err := svc.Submit(fixture.survey.ID, fixture.actor, dto.SurveySubmitDTO{
		AssignmentID: fixture.assignment.ID,
		Responses: []dto.ResponseSubmitDTO{
			{QuestionID: fixture.rating.ID, Answer: model.AnswerPayload{"value": float64(7)}},
			{QuestionID: 9999, Answer: model.AnswerPayload{"value": "1"}},
		},
	})
	if err != nil {
		t.Fatalf("submit should skip foreign questions, not fail: %v", err)
	}
	if result.TotalScore != 7 {
		t.Fatalf("expected total 7, got %g", result.TotalScore)
	}

	var count int64
	fixture.db.Model(&model.SurveyResponse{}).
		Where("assignment_id = ?", fixture.assignment.ID).
		Count(&count)
	if count != 1 {
		t.Fatalf("foreign question must not be stored, got %d rows", count)
	}
}

func TestSubmitRejectsForeignAssignment(t *testing.T) {
	fixture := seedSurveyFixture(t, newTestDB(t))
	svc := newSubmissionService(fixture.db)

	outsider := model.Actor{UserID: fixture.actor.UserID + 100, Role: model.RoleEmployee}
	_, err := svc.Submit(fixture.survey.ID, outsider, dto.SurveySubmitDTO{
		AssignmentID: fixture.assignment.ID,
		Responses: []dto.ResponseSubmitDTO{
			{QuestionID: fixture.rating.ID, Answer: model.AnswerPayload{"value": float64(4)}},
		},
	})
	if !apperror.IsNotFound(err) {
		t.Fatalf("expected not-found for someone else's assignment, got %v", err)
	}
}

func TestSubmitWrongSurveyForAssignment(t *testing.T) {
	fixture := seedSurveyFixture(t, newTestDB(t))
	svc := newSubmissionService(fixture.db)

	other := model.Survey{Title: "Onboarding", Category: model.SurveyCategoryOnboarding, IsActive: true}
	if err := fixture.db.Create(&other).Error; err != nil {
		t.Fatalf("seeding second survey: %v", err)
	}

	_, err := svc.Submit(other.ID, fixture.actor, dto.SurveySubmitDTO{
		AssignmentID: fixture.assignment.ID,
		Responses: []dto.ResponseSubmitDTO{
			{QuestionID: fixture.rating.ID, Answer: model.AnswerPayload{"value": float64(4)}},
		},
	})
	if !apperror.IsNotFound(err) {
		t.Fatalf("assignment must only resolve against its own survey, got %v", err)
	}
}
