package controller

import (
	"errors"
	"strconv"

	"lingua_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// respondError maps service sentinels onto HTTP statuses; anything unknown
// is a 500 and gets logged.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrUserNotFound),
		errors.Is(err, util.ErrTestNotFound),
		errors.Is(err, util.ErrRoadmapNotFound),
		errors.Is(err, util.ErrModuleNotFound),
		errors.Is(err, util.ErrTaskNotFound),
		errors.Is(err, util.ErrScenarioNotFound),
		errors.Is(err, util.ErrSessionNotFound):
		util.NotFound(c)
	case errors.Is(err, util.ErrSessionClosed),
		errors.Is(err, util.ErrTurnLimitReached):
		util.Conflict(c, err.Error())
	case errors.Is(err, util.ErrEmailRegistered):
		util.BadRequest(c, err.Error())
	case errors.Is(err, util.ErrInvalidCredentials):
		util.Unauthorized(c)
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(c)
	default:
		util.LogInternalError(c, err)
	}
}

func paramUint(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		util.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(value), true
}

func currentUserID(c *gin.Context) (uint, bool) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return 0, false
	}
	return claims.UserID, true
}
