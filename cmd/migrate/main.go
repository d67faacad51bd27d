package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"

	"allergo/config"
	"allergo/internal/infra/persistence/migrations"

	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
	pgLib "github.com/slighter12/go-lib/database/postgres"
)

// Supported subcommands:
// - up:      Apply all pending migrations
// - down:    Roll back the latest migration
// - status:  Print the state of every migration
// - version: Print the current schema version

func main() {
	flags := flag.NewFlagSet("migrate", flag.ExitOnError)
	dir := flags.String("dir", ".", "Directory of the embedded migrations")
	flags.Usage = printUsage

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	if err := flags.Parse(os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(context.Background(), command, *dir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, command, dir string) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "load config")
	}
	if cfg.Postgres == nil {
		return errors.New("postgres configuration is missing")
	}

	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.WithStack(err)
	}

	switch command {
	case "up":
		return errors.WithStack(goose.UpContext(ctx, db, dir))
	case "down":
		return errors.WithStack(goose.DownContext(ctx, db, dir))
	case "status":
		return errors.WithStack(goose.StatusContext(ctx, db, dir))
	case "version":
		return errors.WithStack(goose.VersionContext(ctx, db, dir))
	default:
		printUsage()

		return errors.Errorf("unknown command %q", command)
	}
}

// openDB reuses the application's connection settings; goose only needs the *sql.DB.
func openDB(cfg *config.Config) (*sql.DB, error) {
	gormDB, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}

	db, err := gormDB.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	return db, nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: migrate <up|down|status|version> [-dir .]")
}
