package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/fixture-predictor/internal/domain/match"
	"github.com/riskibarqy/fixture-predictor/internal/domain/team"
	"github.com/riskibarqy/fixture-predictor/internal/inference"
	"github.com/riskibarqy/fixture-predictor/internal/platform/resilience"
)

type ResolutionStatus string

const (
	StatusFound        ResolutionStatus = "found"
	StatusNoHistory    ResolutionStatus = "no_history"
	StatusTeamNotFound ResolutionStatus = "team_not_found"
)

// Resolution is the outcome of looking up a fixture's head-to-head record.
// Context is nil unless Status is StatusFound.
type Resolution struct {
	Status   ResolutionStatus
	HomeCode int
	AwayCode int
	Home     team.Team
	Away     team.Team
	Context  *match.Context
}

// Fixture converts the resolution into the feature assembler input.
func (r Resolution) Fixture() inference.Fixture {
	return inference.Fixture{
		HomeCode: r.HomeCode,
		AwayCode: r.AwayCode,
		HomeID:   r.Home.ID,
		AwayID:   r.Away.ID,
		History:  r.Context,
	}
}

type HistoryResolver struct {
	teams   team.Registry
	matches match.Repository
	breaker *resilience.Breaker
}

// NewHistoryResolver builds a resolver. breaker may be nil.
func NewHistoryResolver(teams team.Registry, matches match.Repository, breaker *resilience.Breaker) *HistoryResolver {
	return &HistoryResolver{
		teams:   teams,
		matches: matches,
		breaker: breaker,
	}
}

// Resolve finds the most recent record between the two teams, preferring
// the requested orientation and inverting a reverse-orientation record.
func (r *HistoryResolver) Resolve(ctx context.Context, homeCode, awayCode int) (Resolution, error) {
	ctx, span := startSpan(ctx, "HistoryResolver.Resolve", pairAttrs(homeCode, awayCode)...)
	defer span.End()

	out := Resolution{HomeCode: homeCode, AwayCode: awayCode}

	home, homeFound, err := r.teams.FindByCode(ctx, homeCode)
	if err != nil {
		return Resolution{}, fmt.Errorf("find home team code=%d: %w", homeCode, err)
	}
	away, awayFound, err := r.teams.FindByCode(ctx, awayCode)
	if err != nil {
		return Resolution{}, fmt.Errorf("find away team code=%d: %w", awayCode, err)
	}
	if !homeFound || !awayFound {
		out.Status = StatusTeamNotFound
		return out, nil
	}
	out.Home, out.Away = home, away

	record, found, err := r.findLatest(ctx, home.ID, away.ID)
	if err != nil {
		return Resolution{}, err
	}
	if found {
		c := record.AsContext()
		out.Status, out.Context = StatusFound, &c
		return out, nil
	}

	record, found, err = r.findLatest(ctx, away.ID, home.ID)
	if err != nil {
		return Resolution{}, err
	}
	if found {
		c := record.Reversed()
		out.Status, out.Context = StatusFound, &c
		return out, nil
	}

	out.Status = StatusNoHistory
	return out, nil
}

func (r *HistoryResolver) findLatest(ctx context.Context, homeID, awayID int64) (match.Record, bool, error) {
	var (
		record match.Record
		found  bool
	)
	err := r.breaker.Execute(ctx, func(ctx context.Context) error {
		var err error
		record, found, err = r.matches.FindLatest(ctx, homeID, awayID)
		return err
	})
	if errors.Is(err, resilience.ErrCircuitOpen) {
		return match.Record{}, false, fmt.Errorf("%w: match history: %v", ErrDependencyUnavailable, err)
	}
	if err != nil {
		return match.Record{}, false, fmt.Errorf("find latest match home=%d away=%d: %w", homeID, awayID, err)
	}

	return record, found, nil
}
