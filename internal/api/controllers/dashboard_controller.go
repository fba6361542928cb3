package controllers

import (
	"github.com/gin-gonic/gin"

	"aura/internal/models/request_models"
	"aura/internal/services"
	"aura/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardService
}

func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetDashboardData godoc
// @Summary Get dashboard data
// @Description Profile with the last 7 days of steps, sleep and mood, rolling averages, check-in totals and recommendations. A first visit creates a placeholder profile.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response_models.DashboardData}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Security BearerAuth
// @Router /dashboard/data [get]
func (d *DashboardController) GetDashboardData(c *gin.Context) {
	data, err := d.dashboardService.GetDashboardData(c.Request.Context(), currentUserID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, data, "Dashboard data fetched successfully")
}

// UpdateHealthData godoc
// @Summary Record today's steps and/or sleep
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param request body request_models.UpdateHealthDataRequest true "At least one of stepCount, sleepDuration"
// @Success 200 {object} utils.APIResponse{data=response_models.HealthDataUpdate}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Security BearerAuth
// @Router /dashboard/update-health-data [post]
func (d *DashboardController) UpdateHealthData(c *gin.Context) {
	var req request_models.UpdateHealthDataRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	res, err := d.dashboardService.UpdateHealthData(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, res, res.Message)
}

// CompleteTask godoc
// @Summary Mark a dashboard task as done
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param request body request_models.CompleteTaskRequest true "Task name"
// @Success 200 {object} utils.APIResponse{data=response_models.ProfileView}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /dashboard/complete-task [post]
func (d *DashboardController) CompleteTask(c *gin.Context) {
	var req request_models.CompleteTaskRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	profile, err := d.dashboardService.CompleteTask(c.Request.Context(), currentUserID(c), req.Task)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Task completed")
}

// ShareBadge godoc
// @Summary Mark a badge as shared on twitter or linkedin
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param request body request_models.ShareBadgeRequest true "Badge id and platform"
// @Success 200 {object} utils.APIResponse{data=response_models.ProfileView}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /dashboard/share-badge [post]
func (d *DashboardController) ShareBadge(c *gin.Context) {
	var req request_models.ShareBadgeRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	profile, err := d.dashboardService.ShareBadge(c.Request.Context(), currentUserID(c), req.BadgeID, req.Platform)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Badge shared")
}

// UpdateMood godoc
// @Summary Record today's mood rating (1-5)
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param request body request_models.UpdateMoodRequest true "Mood rating"
// @Success 200 {object} utils.APIResponse{data=response_models.MoodUpdate}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /dashboard/update-mood [post]
func (d *DashboardController) UpdateMood(c *gin.Context) {
	var req request_models.UpdateMoodRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	res, err := d.dashboardService.UpdateMood(c.Request.Context(), currentUserID(c), *req.Rating)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, res, res.Message)
}
