package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fixture-predictor/internal/domain/prediction"
	qb "github.com/riskibarqy/fixture-predictor/internal/platform/querybuilder"
)

type PredictionRepository struct {
	db *sqlx.DB
}

func NewPredictionRepository(db *sqlx.DB) *PredictionRepository {
	return &PredictionRepository{db: db}
}

func (r *PredictionRepository) Create(ctx context.Context, record prediction.Record) (prediction.Record, error) {
	res := record.Result
	query, args, err := qb.InsertModel("predictions", predictionInsertModel{
		PublicID:    record.PublicID,
		HomeTeamID:  record.HomeTeamID,
		AwayTeamID:  record.AwayTeamID,
		HomeWinProb: res.HomeWin,
		DrawProb:    res.Draw,
		AwayWinProb: res.AwayWin,
		GoalsHome:   res.Score.Home,
		GoalsAway:   res.Score.Away,
		CornersHome: res.Corners.Home,
		CornersAway: res.Corners.Away,
		YellowHome:  res.YellowCards.Home,
		YellowAway:  res.YellowCards.Away,
		RedHome:     res.RedCards.Home,
		RedAway:     res.RedCards.Away,
		ModelLabel:  record.ModelLabel,
		CreatedAt:   record.CreatedAt,
	}, "RETURNING id")
	if err != nil {
		return prediction.Record{}, fmt.Errorf("build insert prediction query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&record.ID); err != nil {
		return prediction.Record{}, fmt.Errorf("insert prediction: %w", err)
	}
	return record, nil
}

func (r *PredictionRepository) ListRecent(ctx context.Context, limit int) ([]prediction.Record, error) {
	query, args, err := qb.Select("*").From("predictions").
		Where(qb.IsNull("deleted_at")).
		OrderBy("created_at DESC", "id DESC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list recent predictions query: %w", err)
	}

	var rows []predictionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select recent predictions: %w", err)
	}

	out := make([]prediction.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, predictionFromRow(row))
	}
	return out, nil
}

func (r *PredictionRepository) Count(ctx context.Context) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From("predictions").
		Where(qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count predictions query: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, fmt.Errorf("count predictions: %w", err)
	}
	return total, nil
}

func predictionFromRow(row predictionTableModel) prediction.Record {
	return prediction.Record{
		ID:         row.ID,
		PublicID:   row.PublicID,
		HomeTeamID: row.HomeTeamID,
		AwayTeamID: row.AwayTeamID,
		Result: prediction.Result{
			Probabilities: prediction.Probabilities{
				HomeWin: row.HomeWinProb,
				Draw:    row.DrawProb,
				AwayWin: row.AwayWinProb,
			},
			Score:       prediction.Pair{Home: row.GoalsHome, Away: row.GoalsAway},
			Corners:     prediction.Pair{Home: row.CornersHome, Away: row.CornersAway},
			YellowCards: prediction.Pair{Home: row.YellowHome, Away: row.YellowAway},
			RedCards:    prediction.Pair{Home: row.RedHome, Away: row.RedAway},
		},
		ModelLabel: row.ModelLabel,
		CreatedAt:  row.CreatedAt,
	}
}
