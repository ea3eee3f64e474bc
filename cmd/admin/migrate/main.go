// Package main applies or reverts the PostgreSQL news schema.
// Usage: news-migrate [up|down]
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"news-portal/internal/config"
	"news-portal/internal/infra/db"
	"news-portal/internal/observability/logging"
)

func main() {
	var force bool
	flag.BoolVar(&force, "force", false, "Required for down: confirms that all stored news is dropped")
	flag.Parse()

	direction := "up"
	if flag.NArg() > 0 {
		direction = flag.Arg(0)
	}
	if direction != "up" && direction != "down" {
		fmt.Fprintf(os.Stderr, "Error: unknown direction %q\n", direction)
		fmt.Fprintln(os.Stderr, "Usage: news-migrate [--force] [up|down]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger := logging.New(os.Stderr, cfg.LogLevel)

	if cfg.Store.Driver != config.DriverPostgres {
		logger.Error("migrations apply to the postgres driver only",
			slog.String("driver", cfg.Store.Driver))
		os.Exit(1)
	}
	if direction == "down" && !force {
		logger.Error("refusing to drop the news schema without --force")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	database, err := db.Open(ctx, cfg.Store.Postgres.URL, cfg.Pool())
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() { _ = database.Close() }()

	migrate := db.MigrateUp
	if direction == "down" {
		migrate = db.MigrateDown
	}
	if err := migrate(ctx, database); err != nil {
		logger.Error("migration failed",
			slog.String("direction", direction),
			slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("migration complete", slog.String("direction", direction))
}
