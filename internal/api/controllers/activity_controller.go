package controllers

import (
	"github.com/gin-gonic/gin"

	"aura/internal/models/request_models"
	"aura/internal/services"
	"aura/pkg/utils"
)

type ActivityController struct {
	activityService services.ActivityServiceInterface
}

func NewActivityController(activityService services.ActivityServiceInterface) *ActivityController {
	return &ActivityController{
		activityService: activityService,
	}
}

// CompleteActivity godoc
// @Summary Log a completed activity
// @Description Appends the activity and awards any badge the caller became eligible for
// @Tags Activities
// @Accept json
// @Produce json
// @Param request body request_models.CompleteActivityRequest true "Completed activity"
// @Success 200 {object} utils.APIResponse{data=response_models.ActivityCompletion}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /activities/complete [post]
func (a *ActivityController) CompleteActivity(c *gin.Context) {
	var req request_models.CompleteActivityRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	res, err := a.activityService.CompleteActivity(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, res, res.Message)
}

// History godoc
// @Summary List completed activities
// @Tags Activities
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response_models.ActivityHistory}
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /activities/history [get]
func (a *ActivityController) History(c *gin.Context) {
	res, err := a.activityService.History(c.Request.Context(), currentUserID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, res, "")
}
