package controller

import (
	"lingua_backend/internal/service"
	"lingua_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PlacementController struct {
	PlacementService *service.PlacementService
}

func NewPlacementController(placementService *service.PlacementService) *PlacementController {
	return &PlacementController{PlacementService: placementService}
}

// ListTests godoc
// @Summary List active placement tests
// @Tags placement
// @Produce json
// @Security ApiKeyAuth
// @Param language query string false "Filter by language"
// @Success 200 {object} util.Response
// @Router /placement/tests [get]
func (ctrl *PlacementController) ListTests(c *gin.Context) {
	tests, err := ctrl.PlacementService.ListTests(c.Query("language"))
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, tests)
}

// GetTest godoc
// @Summary Get a placement test with its items
// @Tags placement
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Test ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /placement/tests/{id} [get]
func (ctrl *PlacementController) GetTest(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	test, err := ctrl.PlacementService.GetTest(id)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, test)
}

type submitTestInput struct {
	// Answers maps item IDs (as strings) to the submitted raw answers.
	Answers map[string]string `json:"answers" binding:"required"`
}

// SubmitTest godoc
// @Summary Submit placement test answers
// @Description Grades the submission, stores an immutable result and updates the user's CEFR level.
// @Tags placement
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Test ID"
// @Param input body submitTestInput true "Answers keyed by item ID"
// @Success 201 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /placement/tests/{id}/submit [post]
func (ctrl *PlacementController) SubmitTest(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input submitTestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	result, err := ctrl.PlacementService.Submit(userID, id, input.Answers)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Created(c, result)
}

// History godoc
// @Summary List the user's placement results
// @Tags placement
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /placement/results [get]
func (ctrl *PlacementController) History(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	results, err := ctrl.PlacementService.History(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, results)
}
