package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/redis/go-redis/v9"
	zlog "github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/phenrril/enterprises/internal/adapters/httpserver"
	"github.com/phenrril/enterprises/internal/adapters/repo/gormrepo"
	"github.com/phenrril/enterprises/internal/adapters/repo/memory"
	"github.com/phenrril/enterprises/internal/adapters/repo/redisrepo"
	"github.com/phenrril/enterprises/internal/domain"
	"github.com/phenrril/enterprises/internal/usecase"
)

type App struct {
	Config       Config
	Enterprises  domain.EnterpriseRepo
	EnterpriseUC *usecase.EnterpriseUC

	closers []func() error
}

func NewApp(ctx context.Context, cfg Config) (*App, error) {
	a := &App{Config: cfg}
	repo, err := a.openStore(ctx)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	a.Enterprises = repo
	a.EnterpriseUC = usecase.NewEnterpriseUC(repo)
	return a, nil
}

func (a *App) openStore(ctx context.Context) (domain.EnterpriseRepo, error) {
	switch a.Config.StoreDriver {
	case "", "memory":
		return memory.NewEnterpriseRepo(), nil
	case "postgres":
		return a.openGorm(postgres.Open(a.Config.PostgresDSN()))
	case "sqlite":
		return a.openGorm(sqlite.Open(a.Config.SQLitePath))
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     a.Config.RedisAddr,
			Password: a.Config.RedisPassword,
			DB:       a.Config.RedisDB,
		})
		a.closers = append(a.closers, rdb.Close)
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("redis ping %s: %w", a.Config.RedisAddr, err)
		}
		return redisrepo.NewEnterpriseRepo(rdb, a.Config.RedisNamespace), nil
	}
	return nil, fmt.Errorf("unknown STORE_DRIVER %q", a.Config.StoreDriver)
}

func (a *App) openGorm(dialector gorm.Dialector) (domain.EnterpriseRepo, error) {
	gcfg := &gorm.Config{}
	if !a.Config.IsDev() {
		gcfg.Logger = logger.Default.LogMode(logger.Silent)
	}
	db, err := gorm.Open(dialector, gcfg)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", a.Config.StoreDriver, err)
	}
	if sqlDB, err := db.DB(); err == nil {
		a.closers = append(a.closers, sqlDB.Close)
	}
	return gormrepo.NewEnterpriseRepo(db), nil
}

// Migrate solo aplica a stores SQL; memory y redis no tienen esquema.
func (a *App) Migrate() error {
	if repo, ok := a.Enterprises.(interface{ AutoMigrate() error }); ok {
		return repo.AutoMigrate()
	}
	return nil
}

func (a *App) HTTPHandler() http.Handler {
	return httpserver.New(a.EnterpriseUC, httpserver.Options{
		AllowedOrigins: a.Config.CORSAllowedOrigins,
		OpenAPI:        a.Config.IsDev(),
	})
}

func (a *App) Close() error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			zlog.Warn().Err(err).Msg("close store")
			if first == nil {
				first = err
			}
		}
	}
	a.closers = nil
	return first
}
