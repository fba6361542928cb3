package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"aura/internal/api/controllers"
	"aura/internal/config"
	"aura/pkg/middleware"
	"aura/pkg/utils"
)

type RouterParams struct {
	fx.In

	Config   config.Config
	Logger   *zap.Logger
	Verifier *utils.TokenVerifier

	Profile   *controllers.ProfileController
	Dashboard *controllers.DashboardController
	Activity  *controllers.ActivityController
	CheckIn   *controllers.CheckInController
	AI        *controllers.AIController
}

func NewTokenVerifier(cfg config.Config, log *zap.Logger) *utils.TokenVerifier {
	if cfg.JWTSecret == "" {
		log.Warn("JWT_SECRET not set, every authenticated route will answer 401")
	}
	return utils.NewTokenVerifier(cfg.JWTSecret)
}

func NewRouter(p RouterParams) *gin.Engine {
	if p.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(p.Logger))
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		utils.LoggerFrom(c).Error("panic recovered", zap.Any("panic", recovered))
		utils.RespondError(c, http.StatusInternalServerError, "Internal server error")
	}))
	r.Use(middleware.CORSMiddleware(p.Config.CORSOrigins))
	r.Use(middleware.RateLimitMiddleware(middleware.NewIPRateLimiter(p.Config.RateLimitMax, p.Config.RateLimitWindow)))

	RegisterRoutes(r, p)

	return r
}

func RegisterRoutes(r *gin.Engine, p RouterParams) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Mental Health Check-in API"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
	})

	apiGroup := r.Group("/api")
	apiGroup.POST("/ai-chat/chat", p.AI.Assist)

	authed := apiGroup.Group("")
	authed.Use(middleware.JWTAuthMiddleware(p.Verifier))

	profileGroup := authed.Group("/profile")
	profileGroup.POST("/onboarding", p.Profile.SubmitOnboarding)
	profileGroup.GET("/onboarding-status", p.Profile.OnboardingStatus)

	dashboardGroup := authed.Group("/dashboard")
	dashboardGroup.GET("/data", p.Dashboard.GetDashboardData)
	dashboardGroup.POST("/update-health-data", p.Dashboard.UpdateHealthData)
	dashboardGroup.POST("/complete-task", p.Dashboard.CompleteTask)
	dashboardGroup.POST("/share-badge", p.Dashboard.ShareBadge)
	dashboardGroup.POST("/update-mood", p.Dashboard.UpdateMood)

	activityGroup := authed.Group("/activities")
	activityGroup.POST("/complete", p.Activity.CompleteActivity)
	activityGroup.GET("/history", p.Activity.History)

	checkInGroup := authed.Group("/check-in")
	checkInGroup.POST("", p.CheckIn.Create)
	checkInGroup.GET("/history", p.CheckIn.History)

	authed.POST("/ai/analyze", p.AI.Analyze)
	authed.POST("/chat", p.AI.Chat)
}
