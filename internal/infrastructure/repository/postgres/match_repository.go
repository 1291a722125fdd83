package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fixture-predictor/internal/domain/match"
	qb "github.com/riskibarqy/fixture-predictor/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) FindLatest(ctx context.Context, homeTeamID, awayTeamID int64) (match.Record, bool, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(
			qb.Eq("home_team_id", homeTeamID),
			qb.Eq("away_team_id", awayTeamID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("played_at DESC", "id DESC").
		Limit(1).
		ToSQL()
	if err != nil {
		return match.Record{}, false, fmt.Errorf("build find latest match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Record{}, false, nil
		}
		return match.Record{}, false, fmt.Errorf("find latest match: %w", err)
	}

	return matchFromRow(row), true, nil
}

func (r *MatchRepository) ListRecent(ctx context.Context, limit int) ([]match.Record, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.IsNull("deleted_at")).
		OrderBy("played_at DESC", "id DESC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list recent matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select recent matches: %w", err)
	}

	out := make([]match.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}
	return out, nil
}

func (r *MatchRepository) Create(ctx context.Context, record match.Record) (match.Record, error) {
	query, args, err := qb.InsertModel("matches", matchInsertModel{
		HomeTeamID:  record.HomeTeamID,
		AwayTeamID:  record.AwayTeamID,
		PlayedAt:    record.PlayedAt,
		GoalsHome:   record.GoalsHome,
		GoalsAway:   record.GoalsAway,
		CornersHome: record.CornersHome,
		CornersAway: record.CornersAway,
		YellowHome:  record.YellowHome,
		YellowAway:  record.YellowAway,
		RedHome:     record.RedHome,
		RedAway:     record.RedAway,
		Outcome:     string(record.Outcome),
		CreatedAt:   record.CreatedAt,
	}, "RETURNING id")
	if err != nil {
		return match.Record{}, fmt.Errorf("build insert match query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&record.ID); err != nil {
		return match.Record{}, fmt.Errorf("insert match: %w", err)
	}
	return record, nil
}

func (r *MatchRepository) CountByOutcome(ctx context.Context) (match.OutcomeCounts, error) {
	query, args, err := qb.Select(
		"COUNT(*) AS total",
		qb.CountFilter("with_result", "outcome", string(match.OutcomeHome), string(match.OutcomeDraw), string(match.OutcomeAway)),
		qb.CountFilter("home_wins", "outcome", string(match.OutcomeHome)),
		qb.CountFilter("draws", "outcome", string(match.OutcomeDraw)),
		qb.CountFilter("away_wins", "outcome", string(match.OutcomeAway)),
	).From("matches").
		Where(qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return match.OutcomeCounts{}, fmt.Errorf("build count matches query: %w", err)
	}

	var row outcomeCountsRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return match.OutcomeCounts{}, fmt.Errorf("count matches by outcome: %w", err)
	}

	return match.OutcomeCounts{
		Total:      row.Total,
		WithResult: row.WithResult,
		HomeWins:   row.HomeWins,
		Draws:      row.Draws,
		AwayWins:   row.AwayWins,
	}, nil
}

func matchFromRow(row matchTableModel) match.Record {
	return match.Record{
		ID:          row.ID,
		HomeTeamID:  row.HomeTeamID,
		AwayTeamID:  row.AwayTeamID,
		PlayedAt:    row.PlayedAt,
		GoalsHome:   row.GoalsHome,
		GoalsAway:   row.GoalsAway,
		CornersHome: row.CornersHome,
		CornersAway: row.CornersAway,
		YellowHome:  row.YellowHome,
		YellowAway:  row.YellowAway,
		RedHome:     row.RedHome,
		RedAway:     row.RedAway,
		Outcome:     match.Outcome(row.Outcome),
		CreatedAt:   row.CreatedAt,
	}
}
