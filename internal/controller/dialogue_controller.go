package controller

import (
	"lingua_backend/internal/service"
	"lingua_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DialogueController struct {
	DialogueService *service.DialogueService
}

func NewDialogueController(dialogueService *service.DialogueService) *DialogueController {
	return &DialogueController{DialogueService: dialogueService}
}

// Scenarios godoc
// @Summary List active dialogue scenarios
// @Tags dialogue
// @Produce json
// @Security ApiKeyAuth
// @Param language query string false "Filter by language"
// @Param cefrLevel query string false "Filter by CEFR level"
// @Success 200 {object} util.Response
// @Router /dialogue/scenarios [get]
func (ctrl *DialogueController) Scenarios(c *gin.Context) {
	scenarios, err := ctrl.DialogueService.Scenarios(c.Query("language"), c.Query("cefrLevel"))
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, scenarios)
}

type startSessionInput struct {
	ScenarioID uint `json:"scenarioId" binding:"required"`
}

// StartSession godoc
// @Summary Start a dialogue session
// @Tags dialogue
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param input body startSessionInput true "Scenario to practice"
// @Success 201 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /dialogue/sessions [post]
func (ctrl *DialogueController) StartSession(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input startSessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	session, err := ctrl.DialogueService.StartSession(userID, input.ScenarioID)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Created(c, session)
}

// Sessions godoc
// @Summary List the user's dialogue sessions
// @Tags dialogue
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /dialogue/sessions [get]
func (ctrl *DialogueController) Sessions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	sessions, err := ctrl.DialogueService.Sessions(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, sessions)
}

// GetSession godoc
// @Summary Get a session with its turn history
// @Tags dialogue
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /dialogue/sessions/{id} [get]
func (ctrl *DialogueController) GetSession(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	session, err := ctrl.DialogueService.GetSession(c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, session)
}

type dialogueMessageInput struct {
	Message string `json:"message" binding:"required,max=2000"`
}

// SendMessage godoc
// @Summary Send a message in a session
// @Description Appends a turn with the tutor's reply and corrections. Fails with 409 when the session is closed or full.
// @Tags dialogue
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Param input body dialogueMessageInput true "The message"
// @Success 201 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /dialogue/sessions/{id}/message [post]
func (ctrl *DialogueController) SendMessage(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input dialogueMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	turn, err := ctrl.DialogueService.SendMessage(c.Request.Context(), userID, c.Param("id"), input.Message)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Created(c, turn)
}

// EndSession godoc
// @Summary End an active session
// @Tags dialogue
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Success 200 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /dialogue/sessions/{id}/end [post]
func (ctrl *DialogueController) EndSession(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	session, err := ctrl.DialogueService.EndSession(c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, session)
}
