package memcache_fx

import (
	"go.uber.org/fx"

	mem "aura/pkg/memcache"
)

var Module = fx.Provide(provideUserLocks, provideRecommendationStore)

func provideUserLocks() *mem.UserLocks {
	return mem.NewUserLocks()
}

func provideRecommendationStore() mem.RecommendationStore {
	return mem.NewRecommendations()
}
