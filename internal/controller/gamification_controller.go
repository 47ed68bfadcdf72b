package controller

import (
	"lingua_backend/internal/service"
	"lingua_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type GamificationController struct {
	GamificationService *service.GamificationService
}

func NewGamificationController(gamificationService *service.GamificationService) *GamificationController {
	return &GamificationController{GamificationService: gamificationService}
}

// Profile godoc
// @Summary Get XP totals, history and streaks
// @Tags gamification
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /gamification/profile [get]
func (ctrl *GamificationController) Profile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile, err := ctrl.GamificationService.Profile(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, profile)
}

// CheckIn godoc
// @Summary Record a daily check-in
// @Description Counts as activity for streak purposes without awarding XP.
// @Tags gamification
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /gamification/daily-check-in [post]
func (ctrl *GamificationController) CheckIn(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile, err := ctrl.GamificationService.CheckIn(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, profile)
}
