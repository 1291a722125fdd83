package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/riskibarqy/fixture-predictor/internal/config"
	"github.com/riskibarqy/fixture-predictor/internal/domain/match"
	"github.com/riskibarqy/fixture-predictor/internal/domain/prediction"
	"github.com/riskibarqy/fixture-predictor/internal/domain/team"
	"github.com/riskibarqy/fixture-predictor/internal/inference"
	"github.com/riskibarqy/fixture-predictor/internal/infrastructure/modelstore"
	"github.com/riskibarqy/fixture-predictor/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/fixture-predictor/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fixture-predictor/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/fixture-predictor/internal/infrastructure/stream"
	"github.com/riskibarqy/fixture-predictor/internal/interfaces/httpapi"
	idgen "github.com/riskibarqy/fixture-predictor/internal/platform/id"
	"github.com/riskibarqy/fixture-predictor/internal/platform/logging"
	"github.com/riskibarqy/fixture-predictor/internal/platform/resilience"
	"github.com/riskibarqy/fixture-predictor/internal/usecase"
)

const dependencyPingTimeout = 5 * time.Second

type repositories struct {
	teams       team.Registry
	matches     match.Repository
	predictions prediction.Repository
}

// NewHTTPServer wires repositories, the model bank and the HTTP router.
// The returned cleanup releases every opened dependency.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func(context.Context) error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	var closers []func(context.Context) error
	cleanup := func(ctx context.Context) error {
		var errs []error
		for i := len(closers) - 1; i >= 0; i-- {
			errs = append(errs, closers[i](ctx))
		}
		return errors.Join(errs...)
	}

	repos, closeRepos, err := buildRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	closers = append(closers, closeRepos)

	teams := repos.teams
	if cfg.CacheEnabled {
		teams = cache.NewTeamRegistry(teams, cfg.CacheTTL)
	}

	bank, err := loadModelBank(ctx, cfg, logger)
	if err != nil {
		_ = cleanup(ctx)
		return nil, nil, err
	}

	publisher, closePublisher, err := buildPublisher(ctx, cfg, logger)
	if err != nil {
		_ = cleanup(ctx)
		return nil, nil, err
	}
	closers = append(closers, closePublisher)

	resolver := usecase.NewHistoryResolver(teams, repos.matches, buildHistoryBreaker(cfg, logger))
	predictionSvc := usecase.NewPredictionService(
		resolver,
		bank,
		teams,
		repos.predictions,
		publisher,
		idgen.NewTimeOrderedGenerator(),
		logger,
		cfg.PredictionBatchWorkers,
	)

	handler := httpapi.NewHandler(
		usecase.NewTeamService(teams),
		usecase.NewMatchService(teams, repos.matches),
		predictionSvc,
		usecase.NewStatsService(teams, repos.matches, repos.predictions),
		logger,
	)
	router := httpapi.NewRouter(handler, logger, httpapi.RouterOptions{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		AdminToken:         cfg.AdminToken,
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, cleanup, nil
}

func buildRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, func(context.Context) error, error) {
	if cfg.RepositoryDriver != config.RepositoryPostgres {
		teams := memory.SeedTeams()
		logger.Info("using in-memory repositories", "teams", len(teams))
		return repositories{
			teams:       memory.NewTeamRepository(teams),
			matches:     memory.NewMatchRepository(memory.SeedMatches(time.Now())),
			predictions: memory.NewPredictionRepository(),
		}, func(context.Context) error { return nil }, nil
	}

	db, target, err := openDB(ctx, cfg)
	if err != nil {
		return repositories{}, nil, err
	}
	if cfg.DBSeedOnStart {
		if err := postgres.BootstrapSeed(ctx, db); err != nil {
			_ = db.Close()
			return repositories{}, nil, fmt.Errorf("bootstrap seed: %w", err)
		}
	}
	logger.Info("using postgres repositories", "db_name", target.Name, "db_host", target.Host, "seeded", cfg.DBSeedOnStart)

	repos := repositories{
		teams:       postgres.NewTeamRepository(db),
		matches:     postgres.NewMatchRepository(db),
		predictions: postgres.NewPredictionRepository(db),
	}
	return repos, func(context.Context) error { return db.Close() }, nil
}

func loadModelBank(ctx context.Context, cfg config.Config, logger *logging.Logger) (*inference.Bank, error) {
	manifest, err := modelstore.LoadManifest(cfg.ModelManifestPath)
	if err != nil {
		return nil, fmt.Errorf("load model manifest: %w", err)
	}

	bank, statuses, err := modelstore.Load(ctx, modelstore.Options{
		Dir:      cfg.ModelStoreDir,
		Manifest: manifest,
		Workers:  cfg.ModelLoadWorkers,
		Logger:   logger,
	})
	if err != nil {
		return nil, fmt.Errorf("load model artifacts: %w", err)
	}

	loaded := 0
	for _, status := range statuses {
		if status.Loaded {
			loaded++
		}
	}
	logger.Info("model bank ready",
		"dir", cfg.ModelStoreDir,
		"artifacts_loaded", loaded,
		"artifacts_total", len(statuses),
		"label", bank.Label(),
	)

	return bank, nil
}

// buildPublisher returns a nil publisher when no stream is configured. An
// unreachable Redis is logged; publishing stays best effort.
func buildPublisher(ctx context.Context, cfg config.Config, logger *logging.Logger) (prediction.Publisher, func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }
	if cfg.RedisURL == "" {
		logger.Info("prediction stream disabled", "reason", "REDIS_URL empty")
		return nil, noop, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, dependencyPingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn("redis ping failed, predictions will be published best effort", "addr", opts.Addr, "error", err)
	}

	logger.Info("prediction stream enabled", "stream", cfg.RedisStreamKey, "max_len", cfg.RedisStreamMaxLen)
	return stream.NewPredictionPublisher(client, cfg.RedisStreamKey, cfg.RedisStreamMaxLen), func(context.Context) error {
		return client.Close()
	}, nil
}

func buildHistoryBreaker(cfg config.Config, logger *logging.Logger) *resilience.Breaker {
	breaker := resilience.New("match-history", resilience.Config{
		Enabled:          cfg.HistoryCircuitEnabled,
		FailureThreshold: cfg.HistoryCircuitFailureCount,
		OpenTimeout:      cfg.HistoryCircuitOpenTimeout,
		HalfOpenProbes:   cfg.HistoryCircuitHalfOpenProbes,
	})
	breaker.OnStateChange(func(name string, from, to resilience.State) {
		logger.Warn("circuit breaker state changed", "breaker", name, "from", string(from), "to", string(to))
	})
	return breaker
}
