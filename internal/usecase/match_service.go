package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/fixture-predictor/internal/domain/match"
	"github.com/riskibarqy/fixture-predictor/internal/domain/team"
)

const DefaultRecentMatchesLimit = 50

type CreateMatchInput struct {
	HomeCode    int
	AwayCode    int
	PlayedAt    time.Time
	GoalsHome   int
	GoalsAway   int
	CornersHome int
	CornersAway int
	YellowHome  int
	YellowAway  int
	RedHome     int
	RedAway     int
	// Outcome is derived from the goals when empty.
	Outcome string
}

type MatchService struct {
	teams   team.Registry
	matches match.Repository
	now     func() time.Time
}

func NewMatchService(teams team.Registry, matches match.Repository) *MatchService {
	return &MatchService{
		teams:   teams,
		matches: matches,
		now:     time.Now,
	}
}

func (s *MatchService) ListRecent(ctx context.Context, limit int) ([]match.Record, error) {
	ctx, span := startSpan(ctx, "MatchService.ListRecent")
	defer span.End()

	if limit <= 0 || limit > DefaultRecentMatchesLimit {
		limit = DefaultRecentMatchesLimit
	}

	items, err := s.matches.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent matches: %w", err)
	}
	return items, nil
}

// Create stores a finished match between two registered teams.
func (s *MatchService) Create(ctx context.Context, input CreateMatchInput) (match.Record, error) {
	ctx, span := startSpan(ctx, "MatchService.Create")
	defer span.End()

	if input.HomeCode == input.AwayCode {
		return match.Record{}, ErrSameTeam
	}

	home, err := s.teamByCode(ctx, input.HomeCode)
	if err != nil {
		return match.Record{}, err
	}
	away, err := s.teamByCode(ctx, input.AwayCode)
	if err != nil {
		return match.Record{}, err
	}

	outcome := match.OutcomeFromGoals(input.GoalsHome, input.GoalsAway)
	if strings.TrimSpace(input.Outcome) != "" {
		outcome, err = match.ParseOutcome(input.Outcome)
		if err != nil {
			return match.Record{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	playedAt := input.PlayedAt
	if playedAt.IsZero() {
		playedAt = s.now()
	}

	record := match.Record{
		HomeTeamID:  home.ID,
		AwayTeamID:  away.ID,
		PlayedAt:    playedAt.UTC(),
		GoalsHome:   input.GoalsHome,
		GoalsAway:   input.GoalsAway,
		CornersHome: input.CornersHome,
		CornersAway: input.CornersAway,
		YellowHome:  input.YellowHome,
		YellowAway:  input.YellowAway,
		RedHome:     input.RedHome,
		RedAway:     input.RedAway,
		Outcome:     outcome,
		CreatedAt:   s.now().UTC(),
	}
	if err := record.Validate(); err != nil {
		return match.Record{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.matches.Create(ctx, record)
	if err != nil {
		return match.Record{}, fmt.Errorf("create match: %w", err)
	}
	return created, nil
}

func (s *MatchService) teamByCode(ctx context.Context, code int) (team.Team, error) {
	item, found, err := s.teams.FindByCode(ctx, code)
	if err != nil {
		return team.Team{}, fmt.Errorf("find team code=%d: %w", code, err)
	}
	if !found {
		return team.Team{}, fmt.Errorf("%w code=%d", ErrUnknownTeam, code)
	}
	return item, nil
}
