// seed populates the database with the demo data set (accounts, one team,
// two projects, a week of sample activity). Safe to run repeatedly.
//
// Usage: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rahmanabdur1/productivity-app/internal/infrastructure/postgres"
	"github.com/rahmanabdur1/productivity-app/internal/seed"
	"github.com/rahmanabdur1/productivity-app/pkg/config"
	"github.com/rahmanabdur1/productivity-app/pkg/logger"
)

func main() {
	root := &cobra.Command{
		Use:          "seed",
		Short:        "Populate the database with demo users, a team, projects and sample activity",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	pool, err := postgres.NewPool(connectCtx, cfg.DB)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection: %w", err)
	}
	defer pool.Close()

	seeder := seed.New(
		postgres.NewUserRepository(pool),
		postgres.NewTeamRepository(pool),
		postgres.NewProjectRepository(pool),
		postgres.NewTimeLogRepository(pool),
		postgres.NewAppUsageRepository(pool),
		postgres.NewActivityMetricRepository(pool),
		log,
	)
	return seeder.Run(ctx)
}
