package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fixture-predictor/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the sample teams and head-to-head records into an
// empty database. It is a no-op once any team exists.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM teams WHERE deleted_at IS NULL`); err != nil {
		return fmt.Errorf("count teams for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// seed ids are positional; map them onto the ids the database assigns.
	ids := make(map[int64]int64)
	for _, t := range memory.SeedTeams() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO teams (code, name, logo_url)
VALUES (:code, :name, :logo_url)
ON CONFLICT (code) WHERE deleted_at IS NULL DO UPDATE SET name = EXCLUDED.name
RETURNING id`, map[string]any{
			"code":     t.Code,
			"name":     t.Name,
			"logo_url": t.LogoURL,
		})
		if err != nil {
			return fmt.Errorf("bind seed team %s query: %w", t.Name, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)

		var id int64
		if err := tx.QueryRowxContext(ctx, sqlQuery, args...).Scan(&id); err != nil {
			return fmt.Errorf("seed team %s: %w", t.Name, err)
		}
		ids[t.ID] = id
	}

	for _, m := range memory.SeedMatches(time.Now()) {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO matches (
    home_team_id, away_team_id, played_at,
    goals_home, goals_away, corners_home, corners_away,
    yellow_home, yellow_away, red_home, red_away, outcome
)
VALUES (
    :home_team_id, :away_team_id, :played_at,
    :goals_home, :goals_away, :corners_home, :corners_away,
    :yellow_home, :yellow_away, :red_home, :red_away, :outcome
)`, map[string]any{
			"home_team_id": ids[m.HomeTeamID],
			"away_team_id": ids[m.AwayTeamID],
			"played_at":    m.PlayedAt,
			"goals_home":   m.GoalsHome,
			"goals_away":   m.GoalsAway,
			"corners_home": m.CornersHome,
			"corners_away": m.CornersAway,
			"yellow_home":  m.YellowHome,
			"yellow_away":  m.YellowAway,
			"red_home":     m.RedHome,
			"red_away":     m.RedAway,
			"outcome":      string(m.Outcome),
		})
		if err != nil {
			return fmt.Errorf("bind seed match %d query: %w", m.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed match %d: %w", m.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}

	return nil
}
