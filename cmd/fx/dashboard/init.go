package dashboard

import (
	"go.uber.org/fx"

	"aura/internal/repositories"
	"aura/internal/services"
	mem "aura/pkg/memcache"
)

var Module = fx.Provide(
	provideDashboardService,
)

func provideDashboardService(
	store services.ProfileStore,
	checkIns repositories.CheckInRepository,
	recs mem.RecommendationStore,
	rt services.Runtime,
) services.DashboardService {
	return services.NewDashboardService(store, checkIns, recs, rt)
}
