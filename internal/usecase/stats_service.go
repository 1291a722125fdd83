package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/fixture-predictor/internal/domain/match"
	"github.com/riskibarqy/fixture-predictor/internal/domain/prediction"
	"github.com/riskibarqy/fixture-predictor/internal/domain/team"
)

type Summary struct {
	Teams       int
	Matches     int
	Predictions int
	WithResult  int
	HomeWins    int
	Draws       int
	AwayWins    int
}

type StatsService struct {
	teams       team.Registry
	matches     match.Repository
	predictions prediction.Repository
}

func NewStatsService(teams team.Registry, matches match.Repository, predictions prediction.Repository) *StatsService {
	return &StatsService{
		teams:       teams,
		matches:     matches,
		predictions: predictions,
	}
}

func (s *StatsService) Summary(ctx context.Context) (Summary, error) {
	ctx, span := startSpan(ctx, "StatsService.Summary")
	defer span.End()

	teams, err := s.teams.List(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("list teams: %w", err)
	}
	counts, err := s.matches.CountByOutcome(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("count matches by outcome: %w", err)
	}
	predictions, err := s.predictions.Count(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("count predictions: %w", err)
	}

	return Summary{
		Teams:       len(teams),
		Matches:     counts.Total,
		Predictions: predictions,
		WithResult:  counts.WithResult,
		HomeWins:    counts.HomeWins,
		Draws:       counts.Draws,
		AwayWins:    counts.AwayWins,
	}, nil
}
