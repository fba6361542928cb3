package checkin_fx

import (
	"go.uber.org/fx"

	"aura/internal/repositories"
	"aura/internal/services"
)

var Module = fx.Provide(provideCheckInService)

func provideCheckInService(repo repositories.CheckInRepository, rt services.Runtime) services.CheckInServiceInterface {
	return services.NewCheckInService(repo, rt)
}
