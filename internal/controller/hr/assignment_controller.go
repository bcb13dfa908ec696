package hr

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hqdat/workpulse/internal/dto"
	"github.com/hqdat/workpulse/internal/service"
	"github.com/rs/zerolog/log"
)

type AssignmentController struct {
	assignmentSvc service.AssignmentService
	rescoringSvc  service.RescoringService
	directory     service.DirectoryService
}

func NewAssignmentController(assignmentSvc service.AssignmentService, rescoringSvc service.RescoringService, directory service.DirectoryService) *AssignmentController {
	return &AssignmentController{assignmentSvc: assignmentSvc, rescoringSvc: rescoringSvc, directory: directory}
}

// CreateAssignment godoc
// @Summary (HR) Assign a survey to an employee
// @Description Creates the single assignment allowed per (survey, employee) pair.
// @Tags HR - Assignments
// @Accept json
// @Produce json
// @Param user_id query int true "Acting user ID"
// @Param assignment body dto.AssignmentCreateDTO true "Assignment"
// @Success 201 {object} dto.AssignmentResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Duplicate assignment or bad payload"
// @Failure 404 {object} dto.ErrorResponse "Survey or employee not found"
// @Router /hr/assignments [post]
func (c *AssignmentController) CreateAssignment(ctx *gin.Context) {
	actor, ok := actorFromRequest(ctx, c.directory)
	if !ok {
		return
	}
	var req dto.AssignmentCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	assignment, err := c.assignmentSvc.Create(actor, req)
	if err != nil {
		log.Warn().Err(err).Uint("survey_id", req.SurveyID).Msg("CreateAssignment: service error")
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, assignment)
}

// GetAssignments godoc
// @Summary (HR) List assignments in scope
// @Description Admin sees all assignments, HR their own department.
// @Tags HR - Assignments
// @Produce json
// @Param user_id query int true "Acting user ID"
// @Param survey_id query int false "Filter by survey"
// @Param is_completed query bool false "Filter by completion state"
// @Success 200 {array} dto.AssignmentResponseDTO
// @Router /hr/assignments [get]
func (c *AssignmentController) GetAssignments(ctx *gin.Context) {
	actor, ok := actorFromRequest(ctx, c.directory)
	if !ok {
		return
	}

	var surveyID uint
	if raw := ctx.Query("survey_id"); raw != "" {
		val, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid survey_id format"})
			return
		}
		surveyID = uint(val)
	}
	var completed *bool
	if raw := ctx.Query("is_completed"); raw != "" {
		val, err := strconv.ParseBool(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid is_completed value"})
			return
		}
		completed = &val
	}

	assignments, err := c.assignmentSvc.GetAllScoped(actor, surveyID, completed)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, assignments)
}

// RescoreResponse godoc
// @Summary (HR) Manually override a response score
// @Description Sets a new score on one response and re-aggregates the assignment total. Scores on questions with scoring enabled must lie in [0, scoring_points].
// @Tags HR - Responses
// @Accept json
// @Produce json
// @Param user_id query int true "Acting user ID"
// @Param response_id path int true "Response ID"
// @Param score body dto.RescoreRequestDTO true "New score"
// @Success 200 {object} dto.RescoreResultDTO
// @Failure 400 {object} dto.ErrorResponse "Score out of range"
// @Failure 404 {object} dto.ErrorResponse "Response not found"
// @Router /hr/responses/{response_id}/score [patch]
func (c *AssignmentController) RescoreResponse(ctx *gin.Context) {
	actor, ok := actorFromRequest(ctx, c.directory)
	if !ok {
		return
	}
	responseID, ok := pathID(ctx, "response_id")
	if !ok {
		return
	}
	var req dto.RescoreRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Score is required", Details: []string{err.Error()}})
		return
	}
	result, err := c.rescoringSvc.Rescore(responseID, actor, *req.Score)
	if err != nil {
		log.Warn().Err(err).Uint("response_id", responseID).Msg("RescoreResponse: service error")
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}
