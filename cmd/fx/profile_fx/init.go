package profile_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"aura/internal/config"
	"aura/internal/repositories"
	"aura/internal/services"
	mem "aura/pkg/memcache"
	"aura/pkg/utils"
)

var Module = fx.Provide(
	provideRuntime, provideProfileStore, provideProfileService,
)

func provideRuntime(cfg config.Config, log *zap.Logger) services.Runtime {
	loc := cfg.Location()
	return services.Runtime{
		Clock:     utils.SystemClock(loc),
		Location:  loc,
		Logger:    log,
		AITimeout: cfg.AI.Timeout,
	}
}

func provideProfileStore(repo repositories.ProfileRepository, locks *mem.UserLocks, log *zap.Logger) services.ProfileStore {
	return services.NewProfileStore(repo, locks, log)
}

func provideProfileService(
	store services.ProfileStore,
	gen utils.GenerativeClient,
	recs mem.RecommendationStore,
	rt services.Runtime,
) services.ProfileServiceInterface {
	return services.NewProfileService(store, gen, recs, rt)
}
