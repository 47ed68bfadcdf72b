package controller

import (
	"lingua_backend/internal/service"
	"lingua_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// Overview godoc
// @Summary Get the cross-module progress summary
// @Tags progress
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /progress/overview [get]
func (ctrl *ProgressController) Overview(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	overview, err := ctrl.ProgressService.Overview(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, overview)
}

// ModuleProgress godoc
// @Summary Get progress within one module
// @Tags progress
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Module ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /progress/modules/{id} [get]
func (ctrl *ProgressController) ModuleProgress(c *gin.Context) {
	moduleID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	snapshot, err := ctrl.ProgressService.ModuleProgress(userID, moduleID)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, snapshot)
}
