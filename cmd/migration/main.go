package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/riskibarqy/fixture-predictor/db"
	"github.com/riskibarqy/fixture-predictor/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/fixture-predictor/internal/platform/logging"
)

type command struct {
	usage string
	run   func(ctx context.Context, env environment, args []string) error
}

type environment struct {
	logger *logging.Logger
	dsn    string
}

var commands = map[string]command{
	"up":      {usage: "up", run: runUp},
	"down":    {usage: "down [steps=1]", run: runDown},
	"version": {usage: "version", run: runVersion},
	"force":   {usage: "force <version>", run: runForce},
	"goto":    {usage: "goto <version>", run: runGoto},
	"seed":    {usage: "seed", run: runSeed},
}

func main() {
	logger := logging.NewJSON(logging.LevelInfo).With("cmd", "migration")
	if err := run(os.Args[1:], logger); err != nil {
		logger.Error("migration command failed", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

func run(args []string, logger *logging.Logger) error {
	if len(args) == 0 {
		printUsage()
		return errors.New("missing command")
	}
	cmd, ok := commands[strings.ToLower(strings.TrimSpace(args[0]))]
	if !ok {
		printUsage()
		return fmt.Errorf("unknown command %q", args[0])
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	raw := strings.TrimSpace(os.Getenv("DB_URL"))
	if raw == "" {
		return errors.New("DB_URL is required")
	}
	target := postgres.ParseTarget(raw, envBool("DB_DISABLE_PREPARED_BINARY_RESULT"))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	return cmd.run(ctx, environment{logger: logger.With("db_name", target.Name), dsn: target.DSN}, args[1:])
}

// withMigrator opens golang-migrate on the embedded migrations, or on
// MIGRATIONS_DIR when set.
func withMigrator(env environment, fn func(*migrate.Migrate) error) error {
	src, origin, err := migrationSource()
	if err != nil {
		return err
	}
	m, err := migrate.NewWithSourceInstance(origin, src, env.dsn)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if err := errors.Join(srcErr, dbErr); err != nil {
			env.logger.Warn("close migrator failed", "error", err)
		}
	}()
	return fn(m)
}

func migrationSource() (source.Driver, string, error) {
	var fsys fs.FS = db.Migrations
	origin, root := "embedded", "migrations"
	if dir := strings.TrimSpace(os.Getenv("MIGRATIONS_DIR")); dir != "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return nil, "", fmt.Errorf("resolve MIGRATIONS_DIR: %w", err)
		}
		fsys, origin, root = os.DirFS(abs), abs, "."
	}
	src, err := iofs.New(fsys, root)
	if err != nil {
		return nil, "", fmt.Errorf("open migrations from %s: %w", origin, err)
	}
	return src, origin, nil
}

func runUp(_ context.Context, env environment, _ []string) error {
	return withMigrator(env, func(m *migrate.Migrate) error {
		return report(env.logger, m.Up(), "migrations applied")
	})
}

func runDown(_ context.Context, env environment, args []string) error {
	steps := 1
	if len(args) > 0 {
		n, err := strconv.Atoi(strings.TrimSpace(args[0]))
		if err != nil || n <= 0 {
			return fmt.Errorf("down steps must be a positive integer, got %q", args[0])
		}
		steps = n
	}
	return withMigrator(env, func(m *migrate.Migrate) error {
		return report(env.logger.With("steps", steps), m.Steps(-steps), "migrations rolled back")
	})
}

func runVersion(_ context.Context, env environment, _ []string) error {
	return withMigrator(env, func(m *migrate.Migrate) error {
		version, dirty, err := m.Version()
		switch {
		case errors.Is(err, migrate.ErrNilVersion):
			fmt.Println("version: none\ndirty: false")
			return nil
		case err != nil:
			return fmt.Errorf("read version: %w", err)
		}
		fmt.Printf("version: %d\ndirty: %t\n", version, dirty)
		return nil
	})
}

func runForce(_ context.Context, env environment, args []string) error {
	version, err := versionArg(args)
	if err != nil {
		return err
	}
	return withMigrator(env, func(m *migrate.Migrate) error {
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("force version %d: %w", version, err)
		}
		env.logger.Info("forced migration version", "version", version)
		return nil
	})
}

func runGoto(_ context.Context, env environment, args []string) error {
	version, err := versionArg(args)
	if err != nil {
		return err
	}
	return withMigrator(env, func(m *migrate.Migrate) error {
		return report(env.logger.With("version", version), m.Migrate(uint(version)), "migrated to version")
	})
}

// runSeed loads the sample teams and head-to-head records.
func runSeed(ctx context.Context, env environment, _ []string) error {
	conn, err := sqlx.ConnectContext(ctx, "postgres", env.dsn)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	defer conn.Close()

	if err := postgres.BootstrapSeed(ctx, conn); err != nil {
		return err
	}
	env.logger.Info("seed data applied")
	return nil
}

func versionArg(args []string) (uint32, error) {
	if len(args) == 0 {
		return 0, errors.New("a version argument is required")
	}
	v, err := strconv.ParseUint(strings.TrimSpace(args[0]), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid version %q: %w", args[0], err)
	}
	return uint32(v), nil
}

func report(logger *logging.Logger, err error, done string) error {
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		logger.Info("no migration changes")
		return nil
	case err != nil:
		return err
	}
	logger.Info(done)
	return nil
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	return err == nil && v
}

func printUsage() {
	name := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "usage: %s <command> [args]\ncommands:\n", name)
	for _, key := range []string{"up", "down", "version", "force", "goto", "seed"} {
		fmt.Fprintf(os.Stderr, "  %s %s\n", name, commands[key].usage)
	}
}
