// Command teamboard-admin runs operational tasks against the Teamboard
// database: applying migrations and provisioning the default admin account.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/teamboard/teamboard/internal/bootstrap"
	"github.com/teamboard/teamboard/internal/data"
	"github.com/teamboard/teamboard/internal/devseed"
)

func main() {
	ctx := context.Background()
	logger := bootstrap.InitLogger()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: teamboard-admin <command>

Commands:
  migrate      apply pending database migrations
  seed-admin   reset admin accounts and create the default admin
  seed-sample  insert sample team members and activities (dev only)`)
}

func run(ctx context.Context, logger *slog.Logger) error {
	flag.Usage = usage
	flag.Parse()

	cmd := flag.Arg(0)
	if cmd == "" {
		usage()
		return fmt.Errorf("missing command")
	}

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}

	// Admin commands control migrations explicitly.
	cfg.Postgres.RunMigrationsOnStart = false
	db, err := bootstrap.ConnectDB(cfg.Postgres, logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			logger.ErrorContext(ctx, "close database failed", "error", cerr)
		}
	}()

	return dispatch(ctx, cmd, db, logger)
}

func dispatch(ctx context.Context, cmd string, db *sql.DB, logger *slog.Logger) error {
	switch cmd {
	case "migrate":
		if err := data.RunMigrations(ctx, db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.InfoContext(ctx, "migrations applied")
		return nil
	case "seed-admin":
		if err := data.RunMigrations(ctx, db); err != nil {
			return fmt.Errorf("migrate before seeding: %w", err)
		}
		return devseed.SeedAdmin(ctx, db, logger)
	case "seed-sample":
		if err := data.RunMigrations(ctx, db); err != nil {
			return fmt.Errorf("migrate before seeding: %w", err)
		}
		if err := devseed.SeedAdmin(ctx, db, logger); err != nil {
			return err
		}
		return devseed.SeedSampleData(ctx, db, logger)
	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}
