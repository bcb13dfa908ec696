package hr

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hqdat/workpulse/internal/dto"
	"github.com/hqdat/workpulse/internal/service"
	"github.com/rs/zerolog/log"
)

type FactorController struct {
	factorSvc service.FactorService
	directory service.DirectoryService
}

func NewFactorController(factorSvc service.FactorService, directory service.DirectoryService) *FactorController {
	return &FactorController{factorSvc: factorSvc, directory: directory}
}

// CreateFactor godoc
// @Summary (HR) Create a weighting factor
// @Description Create a named factor category. Weight must lie in [0.1, 10.0] and defaults to 1.0.
// @Tags HR - Factors
// @Accept json
// @Produce json
// @Param user_id query int true "Acting user ID"
// @Param factor body dto.FactorCreateDTO true "Factor definition"
// @Success 201 {object} dto.FactorResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /hr/factors [post]
func (c *FactorController) CreateFactor(ctx *gin.Context) {
	actor, ok := actorFromRequest(ctx, c.directory)
	if !ok {
		return
	}
	var req dto.FactorCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	factor, err := c.factorSvc.Create(actor, req)
	if err != nil {
		log.Error().Err(err).Msg("CreateFactor: service error")
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, factor)
}

// GetFactors godoc
// @Summary (HR) List factors
// @Tags HR - Factors
// @Produce json
// @Param user_id query int true "Acting user ID"
// @Param type query string false "Filter by factor type (TURNOVER or NON_TURNOVER)"
// @Success 200 {array} dto.FactorResponseDTO
// @Router /hr/factors [get]
func (c *FactorController) GetFactors(ctx *gin.Context) {
	if _, ok := actorFromRequest(ctx, c.directory); !ok {
		return
	}
	factors, err := c.factorSvc.GetAll(ctx.Query("type"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, factors)
}

// UpdateFactor godoc
// @Summary (HR) Update a factor
// @Tags HR - Factors
// @Accept json
// @Produce json
// @Param user_id query int true "Acting user ID"
// @Param factor_id path int true "Factor ID"
// @Param factor body dto.FactorUpdateDTO true "Fields to update"
// @Success 200 {object} dto.FactorResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /hr/factors/{factor_id} [put]
func (c *FactorController) UpdateFactor(ctx *gin.Context) {
	if _, ok := actorFromRequest(ctx, c.directory); !ok {
		return
	}
	factorID, ok := pathID(ctx, "factor_id")
	if !ok {
		return
	}
	var req dto.FactorUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	factor, err := c.factorSvc.Update(factorID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, factor)
}

// DeleteFactor godoc
// @Summary (HR) Delete a factor
// @Tags HR - Factors
// @Produce json
// @Param user_id query int true "Acting user ID"
// @Param factor_id path int true "Factor ID"
// @Success 204 "deleted"
// @Failure 404 {object} dto.ErrorResponse
// @Router /hr/factors/{factor_id} [delete]
func (c *FactorController) DeleteFactor(ctx *gin.Context) {
	if _, ok := actorFromRequest(ctx, c.directory); !ok {
		return
	}
	factorID, ok := pathID(ctx, "factor_id")
	if !ok {
		return
	}
	if err := c.factorSvc.Delete(factorID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
