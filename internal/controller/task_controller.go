package controller

import (
	"strconv"

	"lingua_backend/internal/service"
	"lingua_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TaskController struct {
	TaskService *service.TaskService
}

func NewTaskController(taskService *service.TaskService) *TaskController {
	return &TaskController{TaskService: taskService}
}

// Templates godoc
// @Summary List a module's task templates
// @Tags tasks
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Module ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /modules/{id}/tasks [get]
func (ctrl *TaskController) Templates(c *gin.Context) {
	moduleID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	templates, err := ctrl.TaskService.Templates(moduleID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, templates)
}

type submitAttemptInput struct {
	UserAnswer string `json:"userAnswer" binding:"required"`
}

// SubmitAttempt godoc
// @Summary Submit an answer for a task
// @Description Evaluates the answer, awards XP, updates the streak, refreshes module progress and evaluates the checkpoint, all atomically.
// @Tags tasks
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Task template ID"
// @Param input body submitAttemptInput true "The answer"
// @Success 201 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /tasks/{id}/attempt [post]
func (ctrl *TaskController) SubmitAttempt(c *gin.Context) {
	templateID, ok := paramUint(c, "id")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input submitAttemptInput
	if err := c.ShouldBindJSON(&input); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	result, err := ctrl.TaskService.SubmitAttempt(c.Request.Context(), userID, templateID, input.UserAnswer)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Created(c, result)
}

// Attempts godoc
// @Summary List the user's attempt history
// @Tags tasks
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "Max results" default(50)
// @Success 200 {object} util.Response
// @Router /tasks/attempts [get]
func (ctrl *TaskController) Attempts(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 0 {
		util.BadRequest(c, "invalid limit")
		return
	}

	attempts, err := ctrl.TaskService.Attempts(userID, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, attempts)
}
