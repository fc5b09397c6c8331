// Seed inserts a handful of demo users for local development.
//
// With -dry-run the users are created against the in-memory repository and
// printed instead of written to Postgres.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/foodhub-app/user-service/config"
	"github.com/foodhub-app/user-service/internal/application"
	"github.com/foodhub-app/user-service/internal/domain/repository"
	"github.com/foodhub-app/user-service/internal/infrastructure/inmemory"
	pginfra "github.com/foodhub-app/user-service/internal/infrastructure/postgres"
	"github.com/foodhub-app/user-service/pkg/helpers"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "create users in memory and print them instead of writing to postgres")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)
	ctx := context.Background()

	var repo repository.UserRepository
	if *dryRun {
		repo = inmemory.NewUserRepository()
	} else {
		pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
		if err != nil {
			log.Fatalf("failed to connect to postgres: %v", err)
		}
		defer pool.Close()
		repo = pginfra.NewUserRepository(pool)
	}

	svc := application.NewUserService(repo, logger)

	seeds := []application.CreateUserDto{
		{Name: "Alice Example", Email: "alice@example.com", Phone: "+15550100"},
		{Name: "Bob Example", Email: "bob@example.com"},
		{Name: "Carol Example", Email: "carol@example.com", Phone: "+15550102"},
	}

	for _, dto := range seeds {
		id, err := svc.Create(ctx, dto)
		if err != nil {
			logger.WithError(err).WithField("email", dto.Email).Warn("seed user skipped")
			continue
		}
		logger.WithField("user_id", id).WithField("email", dto.Email).Info("seed user created")
	}

	if *dryRun {
		users, err := svc.GetAll(ctx)
		if err != nil {
			log.Fatalf("list seeded users: %v", err)
		}
		for _, u := range users {
			logger.Infof("seeded: %s <%s>", u.Name, u.Email)
		}
	}
}
