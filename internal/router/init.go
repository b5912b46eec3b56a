package router

import (
	"context"
	"fmt"

	"github.com/oksasatya/recetario-api/internal/application"
	"github.com/oksasatya/recetario-api/internal/container"
	"github.com/oksasatya/recetario-api/internal/infrastructure/messaging"
	"github.com/oksasatya/recetario-api/internal/infrastructure/search"
	"github.com/oksasatya/recetario-api/internal/infrastructure/storage"
	handlers "github.com/oksasatya/recetario-api/internal/interface/http"
	"github.com/oksasatya/recetario-api/internal/interface/middleware"
	"github.com/oksasatya/recetario-api/internal/router/modules"
	"github.com/oksasatya/recetario-api/pkg/helpers"
)

type Deps struct {
	Accounts *application.AccountService
	Recipes  *application.RecipeService
	Levels   *application.LevelRecalculator
}

// BuildDeps wires the services from the container singletons. Optional
// collaborators are attached only when their client is configured.
func BuildDeps() (Deps, error) {
	users, recipes, err := container.Repositories()
	if err != nil {
		return Deps{}, err
	}
	cfg := container.GetConfig()
	logger := container.GetLogger()

	levels := application.NewLevelRecalculator(users, recipes, logger)
	accounts := application.NewAccountService(users, recipes, helpers.NewPasswordHasher(cfg.BcryptCost), container.GetJWT(), logger)
	recipeSvc := application.NewRecipeService(recipes, users, levels, logger)

	if es := container.GetES(); es != nil {
		idx := search.NewRecipeIndex(es, cfg.ESRecipesIndex)
		accounts.Index = idx
		recipeSvc.Index = idx
	}
	if pub := container.GetRabbitPub(); pub != nil && cfg.MailSendEnabled {
		accounts.Notifier = messaging.NewEmailNotifier(pub, cfg.AppName, cfg.SupportURL)
	}
	if gcs := container.GetGCS(); gcs != nil && cfg.GCSBucket != "" {
		recipeSvc.Images = storage.NewGCSImageStore(gcs, cfg.GCSBucket)
	}

	container.SetLevels(levels)
	return Deps{Accounts: accounts, Recipes: recipeSvc, Levels: levels}, nil
}

func healthChecks() map[string]handlers.Check {
	checks := map[string]handlers.Check{}
	if db := container.GetMongoDB(); db != nil {
		checks["mongo"] = func(ctx context.Context) error { return db.Client().Ping(ctx, nil) }
	}
	if pool := container.GetPGPool(); pool != nil {
		checks["postgres"] = pool.Ping
	}
	if rdb := container.GetRedis(); rdb != nil {
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}
	return checks
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) error {
	deps, err := BuildDeps()
	if err != nil {
		return fmt.Errorf("build deps: %w", err)
	}
	cfg := container.GetConfig()
	logger := container.GetLogger()

	rdb := container.GetRedis()
	if !cfg.RateLimitEnabled {
		rdb = nil
	}
	var allow middleware.AllowFunc
	if cfg.RateLimitBypassPrivate {
		allow = middleware.AllowPrivateIP()
	}
	auth := middleware.BearerAuth(container.GetJWT())

	r.Add(modules.NewHealthModule(handlers.NewHealthHandler(healthChecks())))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(deps.Accounts, logger), auth, rdb, allow))
	r.Add(modules.NewRecipeModule(handlers.NewRecipeHandler(deps.Recipes, logger), auth, rdb, allow))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(rdb))
	}
	return nil
}
