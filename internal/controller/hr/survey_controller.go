package hr

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hqdat/workpulse/internal/dto"
	"github.com/hqdat/workpulse/internal/service"
	"github.com/rs/zerolog/log"
)

type SurveyController struct {
	surveySvc   service.SurveyService
	responseSvc service.ResponseService
	directory   service.DirectoryService
}

func NewSurveyController(surveySvc service.SurveyService, responseSvc service.ResponseService, directory service.DirectoryService) *SurveyController {
	return &SurveyController{surveySvc: surveySvc, responseSvc: responseSvc, directory: directory}
}

// CreateSurvey godoc
// @Summary (HR) Create a survey with its questions
// @Tags HR - Surveys
// @Accept json
// @Produce json
// @Param user_id query int true "Acting user ID"
// @Param survey body dto.SurveyCreateDTO true "Survey definition"
// @Success 201 {object} dto.SurveyResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /hr/surveys [post]
func (c *SurveyController) CreateSurvey(ctx *gin.Context) {
	actor, ok := actorFromRequest(ctx, c.directory)
	if !ok {
		return
	}
	var req dto.SurveyCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	survey, err := c.surveySvc.Create(actor, req)
	if err != nil {
		log.Error().Err(err).Msg("CreateSurvey: service error")
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, survey)
}

// GetSurveys godoc
// @Summary (HR) List surveys with question counts
// @Tags HR - Surveys
// @Produce json
// @Param user_id query int true "Acting user ID"
// @Success 200 {array} dto.SurveySummaryDTO
// @Router /hr/surveys [get]
func (c *SurveyController) GetSurveys(ctx *gin.Context) {
	if _, ok := actorFromRequest(ctx, c.directory); !ok {
		return
	}
	surveys, err := c.surveySvc.GetAll()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, surveys)
}

// GetSurvey godoc
// @Summary (HR) Get a survey with its ordered questions
// @Tags HR - Surveys
// @Produce json
// @Param user_id query int true "Acting user ID"
// @Param survey_id path int true "Survey ID"
// @Success 200 {object} dto.SurveyResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /hr/surveys/{survey_id} [get]
func (c *SurveyController) GetSurvey(ctx *gin.Context) {
	actor, ok := actorFromRequest(ctx, c.directory)
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

// GetSurveyStatistics godoc
// @Summary (HR) Survey statistics
// @Description Completion counts, average total score and per-factor response averages.
// @Tags HR - Surveys
// @Produce json
// @Param user_id query int true "Acting user ID"
// @Param survey_id path int true "Survey ID"
// @Success 200 {object} dto.SurveyStatisticsDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /hr/surveys/{survey_id}/statistics [get]
func (c *SurveyController) GetSurveyStatistics(ctx *gin.Context) {
	if _, ok := actorFromRequest(ctx, c.directory); !ok {
		return
	}
	surveyID, ok := pathID(ctx, "survey_id")
	if !ok {
		return
	}
	stats, err := c.surveySvc.Statistics(surveyID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

// GetSurveyResponses godoc
// @Summary (HR) Completed submissions for a survey
// @Description Roll-up of completed assignments with per-response detail; HR actors see their own department only.
// @Tags HR - Surveys
// @Produce json
// @Param user_id query int true "Acting user ID"
// @Param survey_id path int true "Survey ID"
// @Success 200 {array} dto.AssignmentSummaryDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /hr/surveys/{survey_id}/responses [get]
func (c *SurveyController) GetSurveyResponses(ctx *gin.Context) {
	actor, ok := actorFromRequest(ctx, c.directory)
	if !ok {
		return
	}
	surveyID, ok := pathID(ctx, "survey_id")
	if !ok {
		return
	}
	summaries, err := c.responseSvc.ResponsesBySurvey(surveyID, actor)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, summaries)
}
