package controllers

import (
	"github.com/gin-gonic/gin"

	"aura/internal/models/request_models"
	"aura/internal/models/response_models"
	"aura/internal/services"
	"aura/pkg/utils"
)

type AIController struct {
	aiService   services.AIServiceInterface
	chatService services.ChatServiceInterface
}

func NewAIController(aiService services.AIServiceInterface, chatService services.ChatServiceInterface) *AIController {
	return &AIController{
		aiService:   aiService,
		chatService: chatService,
	}
}

// Analyze godoc
// @Summary Analyze a journal entry
// @Description Sentiment, emotion, suggested activities and a personal reply. Upstream failures fall back per field.
// @Tags AI
// @Accept json
// @Produce json
// @Param request body request_models.AnalyzeRequest true "Journal text"
// @Success 200 {object} utils.APIResponse{data=response_models.AnalysisResult}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /ai/analyze [post]
func (a *AIController) Analyze(c *gin.Context) {
	var req request_models.AnalyzeRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	res, err := a.aiService.Analyze(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, res, "")
}

// Chat godoc
// @Summary Supportive chat reply in the requested language
// @Tags AI
// @Accept json
// @Produce json
// @Param request body request_models.ChatRequest true "Message and language"
// @Success 200 {object} utils.APIResponse{data=response_models.ChatReply}
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /chat [post]
func (a *AIController) Chat(c *gin.Context) {
	var req request_models.ChatRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	reply, err := a.chatService.Reply(c.Request.Context(), req.Message, req.Language)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.ChatReply{Response: reply}, "")
}

// Assist godoc
// @Summary Public assistant chat
// @Description Short empathetic answer; no authentication, rate limited per IP
// @Tags AI
// @Accept json
// @Produce json
// @Param request body request_models.ChatRequest true "Message"
// @Success 200 {object} utils.APIResponse{data=response_models.AssistantReply}
// @Failure 400 {object} utils.APIResponse
// @Router /ai-chat/chat [post]
func (a *AIController) Assist(c *gin.Context) {
	var req request_models.ChatRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	reply, err := a.chatService.Assist(c.Request.Context(), req.Message)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.AssistantReply{Message: reply}, "")
}
