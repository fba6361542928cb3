package db_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"aura/internal/config"
	"aura/internal/infra"
	"aura/internal/repositories"
)

var Module = fx.Provide(provideRepositories)

type Repositories struct {
	fx.Out

	Profiles repositories.ProfileRepository
	CheckIns repositories.CheckInRepository
}

// provideRepositories picks the storage backend from DB_DRIVER: mongo uses
// the document repositories, postgres and sqlite go through gorm.
func provideRepositories(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) (Repositories, error) {
	if cfg.DBDriver == "mongo" || cfg.DBDriver == "mongodb" {
		client, db, err := infra.ConnectMongo(context.Background(), cfg, log)
		if err != nil {
			return Repositories{}, err
		}
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return client.Disconnect(ctx)
			},
		})
		return Repositories{
			Profiles: repositories.NewMongoProfileRepository(db),
			CheckIns: repositories.NewMongoCheckInRepository(db),
		}, nil
	}

	db, err := infra.OpenGorm(cfg, log)
	if err != nil {
		return Repositories{}, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			infra.CloseGorm(db, log)
			return nil
		},
	})
	return Repositories{
		Profiles: repositories.NewProfileRepository(db),
		CheckIns: repositories.NewCheckInRepository(db),
	}, nil
}
