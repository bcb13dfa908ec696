package hr

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hqdat/workpulse/internal/apperror"
	"github.com/hqdat/workpulse/internal/dto"
	"github.com/hqdat/workpulse/internal/model"
	"github.com/hqdat/workpulse/internal/service"
)

// actorFromRequest resolves the caller from the user_id query param.
// Temporary until real auth middleware provides the identity.
func actorFromRequest(ctx *gin.Context, directory service.DirectoryService) (model.Actor, bool) {
	userIDStr := ctx.Query("user_id")
	userID, err := strconv.ParseUint(userIDStr, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid or missing user_id"})
		return model.Actor{}, false
	}
	actor, err := directory.ResolveActor(uint(userID))
	if err != nil {
		respondError(ctx, err)
		return model.Actor{}, false
	}
	if !actor.IsAdmin() && !actor.IsHR() {
		ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Message: "HR or admin role required"})
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
