package controllers_fx

import (
	"go.uber.org/fx"

	"aura/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewProfileController),
	fx.Provide(controllers.NewDashboardController),
	fx.Provide(controllers.NewActivityController),
	fx.Provide(controllers.NewCheckInController),
	fx.Provide(controllers.NewAIController))
