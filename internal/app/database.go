package app

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/riskibarqy/fixture-predictor/internal/config"
	"github.com/riskibarqy/fixture-predictor/internal/infrastructure/repository/postgres"
)

const maxTracedQueryLength = 512

func openDB(ctx context.Context, cfg config.Config) (*sqlx.DB, postgres.Target, error) {
	target := postgres.ParseTarget(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Open("postgres", target.DSN,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(target.Name),
		otelsql.WithQueryFormatter(compactQuery),
	)
	if err != nil {
		return nil, target, fmt.Errorf("open db: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, dependencyPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, target, fmt.Errorf("ping db host=%s: %w", target.Host, err)
	}

	return db, target, nil
}

// compactQuery collapses whitespace and truncates long statements on a
// rune boundary so span attributes stay readable.
func compactQuery(query string) string {
	query = strings.Join(strings.Fields(query), " ")
	if len(query) <= maxTracedQueryLength {
		return query
	}

	cut := maxTracedQueryLength
	for cut > 0 && !utf8.RuneStart(query[cut]) {
		cut--
	}
	return query[:cut] + "..."
}
