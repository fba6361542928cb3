package controllers

import (
	"github.com/gin-gonic/gin"

	"aura/internal/models/request_models"
	"aura/internal/services"
	"aura/pkg/utils"
)

type CheckInController struct {
	checkInService services.CheckInServiceInterface
}

func NewCheckInController(checkInService services.CheckInServiceInterface) *CheckInController {
	return &CheckInController{
		checkInService: checkInService,
	}
}

// Create godoc
// @Summary Log a check-in
// @Tags Check-in
// @Accept json
// @Produce json
// @Param request body request_models.CreateCheckInRequest true "Mood 1-5, stress 1-10 and an optional journal"
// @Success 201 {object} utils.APIResponse{data=db_models.CheckIn}
// @Failure 400 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Security BearerAuth
// @Router /check-in [post]
func (ch *CheckInController) Create(c *gin.Context) {
	var req request_models.CreateCheckInRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	checkIn, err := ch.checkInService.Create(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, checkIn, "Check-in saved")
}

// History godoc
// @Summary Most recent check-ins, newest first
// @Tags Check-in
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response_models.CheckInHistory}
// @Failure 500 {object} utils.APIResponse
// @Security BearerAuth
// @Router /check-in/history [get]
func (ch *CheckInController) History(c *gin.Context) {
	res, err := ch.checkInService.History(c.Request.Context(), currentUserID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, res, "")
}
