package activity_fx

import (
	"go.uber.org/fx"

	"aura/internal/services"
	"aura/internal/wellness"
)

var Module = fx.Provide(
	provideBadgeEvaluator, provideActivityService,
)

func provideBadgeEvaluator() *wellness.BadgeEvaluator {
	return wellness.NewBadgeEvaluator(wellness.Catalog)
}

func provideActivityService(store services.ProfileStore, badges *wellness.BadgeEvaluator, rt services.Runtime) services.ActivityServiceInterface {
	return services.NewActivityService(store, badges, rt)
}
