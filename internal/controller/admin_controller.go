package controller

import (
	"lingua_backend/internal/service"
	"lingua_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	AdminService *service.AdminService
}

func NewAdminController(adminService *service.AdminService) *AdminController {
	return &AdminController{AdminService: adminService}
}

// CreatePlacementTest godoc
// @Summary Create a placement test (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param input body service.CreatePlacementTestInput true "Test definition"
// @Success 201 {object} util.Response
// @Router /admin/placement/tests [post]
func (ctrl *AdminController) CreatePlacementTest(c *gin.Context) {
	var input service.CreatePlacementTestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	test, err := ctrl.AdminService.CreatePlacementTest(input)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Created(c, test)
}

// CreateTaskTemplate godoc
// @Summary Create a task template (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param input body service.CreateTaskTemplateInput true "Template definition"
// @Success 201 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /admin/tasks/templates [post]
func (ctrl *AdminController) CreateTaskTemplate(c *gin.Context) {
	var input service.CreateTaskTemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	template, err := ctrl.AdminService.CreateTaskTemplate(input)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Created(c, template)
}

// CreateScenario godoc
// @Summary Create a dialogue scenario (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param input body service.CreateScenarioInput true "Scenario definition"
// @Success 201 {object} util.Response
// @Router /admin/dialogue/scenarios [post]
func (ctrl *AdminController) CreateScenario(c *gin.Context) {
	var input service.CreateScenarioInput
	if err := c.ShouldBindJSON(&input); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	scenario, err := ctrl.AdminService.CreateDialogueScenario(input)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Created(c, scenario)
}
