package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"aura/cmd/fx/activity_fx"
	"aura/cmd/fx/ai_fx"
	"aura/cmd/fx/checkin_fx"
	"aura/cmd/fx/config_fx"
	"aura/cmd/fx/controllers_fx"
	"aura/cmd/fx/dashboard"
	"aura/cmd/fx/db_fx"
	"aura/cmd/fx/logger_fx"
	"aura/cmd/fx/memcache_fx"
	"aura/cmd/fx/profile_fx"
	"aura/internal/api"
	"aura/internal/config"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	fx.New(AppOptions()).Run()
}

// AppOptions is the whole dependency graph, shared with the graph validation test.
func AppOptions() fx.Option {
	return fx.Options(
		config_fx.Module,
		logger_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		ai_fx.Module,
		profile_fx.Module,
		dashboard.Module,
		activity_fx.Module,
		checkin_fx.Module,
		controllers_fx.Module,

		fx.Provide(api.NewTokenVerifier),
		fx.Provide(api.NewRouter),
		fx.Invoke(StartServer),
	)
}

func StartServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, cfg config.Config, engine *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			go func() {
				log.Info("starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("HTTP server stopped", zap.Error(err))
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
