package controller

import (
	"lingua_backend/internal/service"
	"lingua_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type RoadmapController struct {
	RoadmapService *service.RoadmapService
}

func NewRoadmapController(roadmapService *service.RoadmapService) *RoadmapController {
	return &RoadmapController{RoadmapService: roadmapService}
}

type generateRoadmapInput struct {
	Language  string `json:"language" binding:"required"`
	CEFRLevel string `json:"cefrLevel" binding:"required"`
	UseAI     *bool  `json:"useAi"`
}

// Generate godoc
// @Summary Generate and activate a learning roadmap
// @Description Builds a roadmap from the AI generator or the static fallback and deactivates any previous roadmap.
// @Tags roadmaps
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param input body generateRoadmapInput true "Language and level"
// @Success 201 {object} util.Response
// @Router /roadmaps/generate [post]
func (ctrl *RoadmapController) Generate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input generateRoadmapInput
	if err := c.ShouldBindJSON(&input); err != nil {
		util.BadRequest(c, err.Error())
		return
	}
	useAI := true
	if input.UseAI != nil {
		useAI = *input.UseAI
	}

	roadmap, err := ctrl.RoadmapService.Generate(c.Request.Context(), userID, input.Language, input.CEFRLevel, useAI)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Created(c, roadmap)
}

// Current godoc
// @Summary Get the active roadmap
// @Tags roadmaps
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /roadmaps/current [get]
func (ctrl *RoadmapController) Current(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	roadmap, err := ctrl.RoadmapService.Current(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, roadmap)
}

// Modules godoc
// @Summary List a roadmap's modules in order
// @Tags roadmaps
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Roadmap ID"
// @Success 200 {object} util.Response
// @Router /roadmaps/{id}/modules [get]
func (ctrl *RoadmapController) Modules(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	modules, err := ctrl.RoadmapService.Modules(id, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, modules)
}

// ModuleDetail godoc
// @Summary Get one module
// @Tags roadmaps
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Module ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /modules/{id} [get]
func (ctrl *RoadmapController) ModuleDetail(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	module, err := ctrl.RoadmapService.ModuleDetail(id, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, module)
}
