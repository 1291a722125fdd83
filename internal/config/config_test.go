package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("APP_SERVICE_NAME", "fixture-predictor-api-test")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://localhost:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "fixture-predictor-api-test" {
		t.Fatalf("unexpected pyroscope app name: %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_CORSOriginsDefaultAndParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("default wildcard", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
			t.Fatalf("unexpected default CORS origins: %+v", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("comma separated parsing", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, http://localhost:5173 ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 2 {
			t.Fatalf("unexpected CORS origins length: %d", len(cfg.CORSAllowedOrigins))
		}
		if cfg.CORSAllowedOrigins[0] != "https://a.example.com" {
			t.Fatalf("unexpected first CORS origin: %s", cfg.CORSAllowedOrigins[0])
		}
		if cfg.CORSAllowedOrigins[1] != "http://localhost:5173" {
			t.Fatalf("unexpected second CORS origin: %s", cfg.CORSAllowedOrigins[1])
		}
	})
}

func TestLoad_DBDisablePreparedBinaryResultParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("default true", func(t *testing.T) {
		t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.DBDisablePreparedBinary {
			t.Fatalf("expected DBDisablePreparedBinary=true by default")
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "not-bool")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid DB_DISABLE_PREPARED_BINARY_RESULT")
		}
	})
}

func TestLoad_CacheConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("CACHE_ENABLED", "")
		t.Setenv("CACHE_TTL", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.CacheEnabled {
			t.Fatalf("expected cache enabled by default")
		}
		if cfg.CacheTTL != 60*time.Second {
			t.Fatalf("unexpected default cache ttl: %s", cfg.CacheTTL)
		}
	})

	t.Run("invalid ttl", func(t *testing.T) {
		t.Setenv("CACHE_TTL", "bad")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid CACHE_TTL")
		}
	})
}

func TestLoad_RepositoryDriver(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("memory by default", func(t *testing.T) {
		t.Setenv("REPOSITORY_DRIVER", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.RepositoryDriver != RepositoryMemory {
			t.Fatalf("unexpected repository driver: %q", cfg.RepositoryDriver)
		}
	})

	t.Run("postgres is case insensitive", func(t *testing.T) {
		t.Setenv("REPOSITORY_DRIVER", " Postgres ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.RepositoryDriver != RepositoryPostgres {
			t.Fatalf("unexpected repository driver: %q", cfg.RepositoryDriver)
		}
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("REPOSITORY_DRIVER", "mysql")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for unknown REPOSITORY_DRIVER")
		}
	})
}

func TestLoad_ModelStoreDefaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("manifest defaults inside store dir", func(t *testing.T) {
		t.Setenv("MODEL_STORE_DIR", "/srv/models/")
		t.Setenv("MODEL_MANIFEST", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.ModelManifestPath != "/srv/models/manifest.toml" {
			t.Fatalf("unexpected manifest path: %q", cfg.ModelManifestPath)
		}
		if cfg.ModelLoadWorkers != 4 || cfg.PredictionBatchWorkers != 4 {
			t.Fatalf("unexpected worker defaults: load=%d batch=%d", cfg.ModelLoadWorkers, cfg.PredictionBatchWorkers)
		}
	})

	t.Run("explicit manifest", func(t *testing.T) {
		t.Setenv("MODEL_MANIFEST", "/etc/predictor/models.toml")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.ModelManifestPath != "/etc/predictor/models.toml" {
			t.Fatalf("unexpected manifest path: %q", cfg.ModelManifestPath)
		}
	})

	t.Run("invalid batch workers", func(t *testing.T) {
		t.Setenv("PREDICTION_BATCH_WORKERS", "0")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for PREDICTION_BATCH_WORKERS=0")
		}
	})
}

func TestLoad_HistoryCircuitParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.HistoryCircuitEnabled {
			t.Fatalf("expected history circuit enabled by default")
		}
		if cfg.HistoryCircuitFailureCount != 5 || cfg.HistoryCircuitOpenTimeout != 15*time.Second || cfg.HistoryCircuitHalfOpenProbes != 2 {
			t.Fatalf("unexpected circuit defaults: %+v", cfg)
		}
	})

	t.Run("invalid failure count", func(t *testing.T) {
		t.Setenv("HISTORY_CIRCUIT_FAILURE_COUNT", "0")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for HISTORY_CIRCUIT_FAILURE_COUNT=0")
		}
	})
}

func TestLoad_RedisStream(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("disabled by default", func(t *testing.T) {
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.RedisURL != "" {
			t.Fatalf("expected empty REDIS_URL by default")
		}
		if cfg.RedisStreamKey != "predictions.created" || cfg.RedisStreamMaxLen != 10000 {
			t.Fatalf("unexpected stream defaults: key=%q maxlen=%d", cfg.RedisStreamKey, cfg.RedisStreamMaxLen)
		}
	})

	t.Run("negative maxlen", func(t *testing.T) {
		t.Setenv("REDIS_STREAM_MAXLEN", "-1")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for negative REDIS_STREAM_MAXLEN")
		}
	})
}

func TestLoad_ProdRequiresAdminToken(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("ADMIN_TOKEN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when APP_ENV=prod without ADMIN_TOKEN")
	}

	t.Setenv("ADMIN_TOKEN", "s3cret")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AdminToken != "s3cret" {
		t.Fatalf("unexpected admin token")
	}
}
