package router

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/foodhub-app/user-service/config"
	"github.com/foodhub-app/user-service/internal/application"
	"github.com/foodhub-app/user-service/internal/auth/google"
	pginfra "github.com/foodhub-app/user-service/internal/infrastructure/postgres"
	handlers "github.com/foodhub-app/user-service/internal/interface/http"
	"github.com/foodhub-app/user-service/internal/router/modules"
	"github.com/foodhub-app/user-service/pkg/helpers"
)

// Deps carries the process-wide collaborators built in main. Every module is
// wired explicitly from these at startup; there is no runtime lookup.
type Deps struct {
	Config *config.Config
	Logger *logrus.Logger
	Pool   *pgxpool.Pool
	Redis  *redis.Client
	JWT    *helpers.JWTManager
}

// InitModules builds the application services from the given dependencies
// and registers all feature modules.
func InitModules(r *Registry, deps Deps) {
	repo := pginfra.NewUserRepository(deps.Pool)
	users := application.NewUserService(repo, deps.Logger)

	validator := google.NewValidator(deps.Config.GoogleAudiences(), deps.Logger)
	auth := application.NewAuthService(validator, users, deps.JWT, deps.Redis, deps.Logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(auth, deps.Logger)))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(users, deps.Logger), deps.JWT))
}
