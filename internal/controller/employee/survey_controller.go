package employee

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hqdat/workpulse/internal/apperror"
	"github.com/hqdat/workpulse/internal/dto"
	"github.com/hqdat/workpulse/internal/model"
	"github.com/hqdat/workpulse/internal/service"
	"github.com/rs/zerolog/log"
)

type SurveyController struct {
	surveySvc     service.SurveyService
	assignmentSvc service.AssignmentService
	submissionSvc service.SubmissionService
	responseSvc   service.ResponseService
	directory     service.DirectoryService
}

func NewSurveyController(
	surveySvc service.SurveyService,
	assignmentSvc service.AssignmentService,
	submissionSvc service.SubmissionService,
	responseSvc service.ResponseService,
	directory service.DirectoryService,
) *SurveyController {
	return &SurveyController{
		surveySvc:     surveySvc,
		assignmentSvc: assignmentSvc,
		submissionSvc: submissionSvc,
		responseSvc:   responseSvc,
		directory:     directory,
	}
}

// MyAssignments godoc
// @Summary (Employee) List my pending survey assignments
// @Tags Employee - Surveys
// @Produce json
// @Param user_id query int true "Acting user ID"
// @Success 200 {array} dto.AssignmentResponseDTO
// @Router /my-assignments [get]
func (c *SurveyController) MyAssignments(ctx *gin.Context) {
	actor, ok := c.actorFromRequest(ctx)
	if !ok {
		return
	}
	assignments, err := c.assignmentSvc.MyAssignments(actor)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, assignments)
}

// GetSurvey godoc
// @Summary (Employee) Get an assigned survey with its questions
// @Tags Employee - Surveys
// @Produce json
// @Param user_id query int true "Acting user ID"
// @Param survey_id path int true "Survey ID"
// @Success 200 {object} dto.SurveyResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Survey not found or not assigned"
// @Router /surveys/{survey_id} [get]
func (c *SurveyController) GetSurvey(ctx *gin.Context) {
	actor, ok := c.actorFromRequest(ctx)
	if !ok {
		return
	}
	surveyID, ok := pathID(ctx, "survey_id")
	if !ok {
		return
	}
	survey, err := c.surveySvc.GetByID(surveyID, actor)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, survey)
}

// SubmitSurvey godoc
// @Summary (Employee) Submit all answers for an assigned survey
// @Description Upserts each response, scores it, aggregates the total and marks the assignment completed. Answers referencing questions outside the survey are skipped.
// @Tags Employee - Surveys
// @Accept json
// @Produce json
// @Param user_id query int true "Acting user ID"
// @Param survey_id path int true "Survey ID"
// @Param submission body dto.SurveySubmitDTO true "Assignment ID and answer batch"
// @Success 200 {object} dto.SubmissionResultDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Assignment not found or not owned by caller"
// @Router /surveys/{survey_id}/submit [post]
func (c *SurveyController) SubmitSurvey(ctx *gin.Context) {
	actor, ok := c.actorFromRequest(ctx)
	if !ok {
		return
	}
	surveyID, ok := pathID(ctx, "survey_id")
	if !ok {
		return
	}
	var req dto.SurveySubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	log.Info().
		Uint("survey_id", surveyID).
		Uint("assignment_id", req.AssignmentID).
		Int("answer_count", len(req.Responses)).
		Msg("received survey submission")

	result, err := c.submissionSvc.Submit(surveyID, actor, req)
	if err != nil {
		log.Warn().Err(err).Uint("survey_id", surveyID).Msg("SubmitSurvey: service error")
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// AssignmentResponses godoc
// @Summary (Employee) Response detail for one assignment
// @Description Question text, answer, score and max points for each stored response, in question order.
// @Tags Employee - Surveys
// @Produce json
// @Param user_id query int true "Acting user ID"
// @Param assignment_id path int true "Assignment ID"
// @Success 200 {array} dto.ResponseDetailDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /assignments/{assignment_id}/responses [get]
func (c *SurveyController) AssignmentResponses(ctx *gin.Context) {
	actor, ok := c.actorFromRequest(ctx)
	if !ok {
		return
	}
	assignmentID, ok := pathID(ctx, "assignment_id")
	if !ok {
		return
	}
	responses, err := c.responseSvc.AssignmentResponses(assignmentID, actor)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, responses)
}

// actorFromRequest resolves the caller from the user_id query param.
// Temporary until real auth middleware provides the identity.
func (c *SurveyController) actorFromRequest(ctx *gin.Context) (model.Actor, bool) {
	userID, err := strconv.ParseUint(ctx.Query("user_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid or missing user_id"})
		return model.Actor{}, false
	}
	actor, err := c.directory.ResolveActor(uint(userID))
	if err != nil {
		respondError(ctx, err)
		return model.Actor{}, false
	}
	return actor, true
}

func pathID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(id), true
}

func respondError(ctx *gin.Context, err error) {
	switch {
	case apperror.IsNotFound(err):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
	case apperror.IsValidation(err):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error", Details: []string{err.Error()}})
	}
}
