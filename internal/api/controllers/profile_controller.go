package controllers

import (
	"github.com/gin-gonic/gin"

	"aura/internal/models/request_models"
	"aura/internal/models/response_models"
	"aura/internal/services"
	"aura/pkg/utils"
)

type ProfileController struct {
	profileService services.ProfileServiceInterface
}

func NewProfileController(profileService services.ProfileServiceInterface) *ProfileController {
	return &ProfileController{
		profileService: profileService,
	}
}

// SubmitOnboarding godoc
// @Summary Submit the onboarding intake
// @Description Creates or overwrites the caller's intake and returns personalized recommendations
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body request_models.OnboardingRequest true "Intake form"
// @Success 201 {object} utils.APIResponse{data=response_models.OnboardingResult}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Security BearerAuth
// @Router /profile/onboarding [post]
func (p *ProfileController) SubmitOnboarding(c *gin.Context) {
	var req request_models.OnboardingRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	res, err := p.profileService.SubmitOnboarding(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, res, "Onboarding completed successfully")
}

// OnboardingStatus godoc
// @Summary Has the caller finished onboarding
// @Tags Profile
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response_models.OnboardingStatus}
// @Failure 500 {object} utils.APIResponse
// @Security BearerAuth
// @Router /profile/onboarding-status [get]
func (p *ProfileController) OnboardingStatus(c *gin.Context) {
	done, err := p.profileService.OnboardingStatus(c.Request.Context(), currentUserID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.OnboardingStatus{OnboardingCompleted: done}, "")
}
