package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/fixture-predictor/internal/domain/match"
	"github.com/riskibarqy/fixture-predictor/internal/domain/team"
	matchmock "github.com/riskibarqy/fixture-predictor/internal/mocks/domain/match"
	teammock "github.com/riskibarqy/fixture-predictor/internal/mocks/domain/team"
	"github.com/riskibarqy/fixture-predictor/internal/platform/resilience"
	"github.com/stretchr/testify/mock"
)

var (
	teamEmelec    = team.Team{ID: 3, Code: 4, Name: "Emelec"}
	teamBarcelona = team.Team{ID: 1, Code: 0, Name: "Barcelona SC"}
)

func expectTeams(registry *teammock.Registry, teams ...team.Team) {
	for _, item := range teams {
		registry.On("FindByCode", mock.Anything, item.Code).Return(item, true, nil).Once()
	}
}

func TestHistoryResolver_Resolve_SameOrientation(t *testing.T) {
	t.Parallel()

	registry := teammock.NewRegistry(t)
	matches := matchmock.NewRepository(t)
	expectTeams(registry, teamEmelec, teamBarcelona)

	stored := match.Record{
		ID: 10, HomeTeamID: 3, AwayTeamID: 1, PlayedAt: time.Now(),
		GoalsHome: 2, GoalsAway: 1, CornersHome: 6, CornersAway: 4,
		YellowHome: 2, YellowAway: 3, RedHome: 0, RedAway: 1,
		Outcome: match.OutcomeHome,
	}
	matches.On("FindLatest", mock.Anything, int64(3), int64(1)).Return(stored, true, nil).Once()

	got, err := NewHistoryResolver(registry, matches, nil).Resolve(t.Context(), 4, 0)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got.Status != StatusFound || got.Context == nil {
		t.Fatalf("unexpected resolution: %+v", got)
	}
	if got.Context.Reversed || got.Context.CornersHome != 6 || got.Context.RedAway != 1 {
		t.Fatalf("context must keep stored orientation, got=%+v", *got.Context)
	}

	fx := got.Fixture()
	if fx.HomeID != 3 || fx.AwayID != 1 || fx.HomeCode != 4 || fx.AwayCode != 0 {
		t.Fatalf("unexpected fixture: %+v", fx)
	}
}

func TestHistoryResolver_Resolve_ReverseOrientation(t *testing.T) {
	t.Parallel()

	registry := teammock.NewRegistry(t)
	matches := matchmock.NewRepository(t)
	expectTeams(registry, teamEmelec, teamBarcelona)

	reverse := match.Record{
		ID: 11, HomeTeamID: 1, AwayTeamID: 3, PlayedAt: time.Now(),
		GoalsHome: 1, GoalsAway: 2, Outcome: match.OutcomeAway,
	}
	matches.On("FindLatest", mock.Anything, int64(3), int64(1)).Return(match.Record{}, false, nil).Once()
	matches.On("FindLatest", mock.Anything, int64(1), int64(3)).Return(reverse, true, nil).Once()

	got, err := NewHistoryResolver(registry, matches, nil).Resolve(t.Context(), 4, 0)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got.Context == nil || !got.Context.Reversed {
		t.Fatalf("expected reversed context, got=%+v", got)
	}
	if got.Context.GoalsHome != 2 || got.Context.GoalsAway != 1 {
		t.Fatalf("unexpected goals: %d-%d", got.Context.GoalsHome, got.Context.GoalsAway)
	}
	if got.Context.Outcome != match.OutcomeHome {
		t.Fatalf("unexpected outcome: %s", got.Context.Outcome)
	}
}

func TestHistoryResolver_Resolve_NoHistory(t *testing.T) {
	t.Parallel()

	registry := teammock.NewRegistry(t)
	matches := matchmock.NewRepository(t)
	expectTeams(registry, teamEmelec, teamBarcelona)
	matches.On("FindLatest", mock.Anything, mock.Anything, mock.Anything).Return(match.Record{}, false, nil).Twice()

	got, err := NewHistoryResolver(registry, matches, nil).Resolve(t.Context(), 4, 0)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got.Status != StatusNoHistory || got.Context != nil {
		t.Fatalf("unexpected resolution: %+v", got)
	}
}

func TestHistoryResolver_Resolve_TeamNotFound(t *testing.T) {
	t.Parallel()

	registry := teammock.NewRegistry(t)
	matches := matchmock.NewRepository(t)
	registry.On("FindByCode", mock.Anything, 98).Return(team.Team{}, false, nil).Once()
	registry.On("FindByCode", mock.Anything, 99).Return(team.Team{}, false, nil).Once()

	got, err := NewHistoryResolver(registry, matches, nil).Resolve(t.Context(), 98, 99)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got.Status != StatusTeamNotFound {
		t.Fatalf("unexpected status: %s", got.Status)
	}
}

func TestHistoryResolver_Resolve_CircuitOpen(t *testing.T) {
	t.Parallel()

	registry := teammock.NewRegistry(t)
	matches := matchmock.NewRepository(t)
	breaker := resilience.New("match-history", resilience.Config{Enabled: true, FailureThreshold: 1, OpenTimeout: time.Minute, HalfOpenProbes: 1})
	resolver := NewHistoryResolver(registry, matches, breaker)

	expectTeams(registry, teamEmelec, teamBarcelona)
	matches.On("FindLatest", mock.Anything, int64(3), int64(1)).Return(match.Record{}, false, errors.New("connection refused")).Once()

	if _, err := resolver.Resolve(t.Context(), 4, 0); err == nil || errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected raw repository error, got %v", err)
	}

	expectTeams(registry, teamEmelec, teamBarcelona)
	if _, err := resolver.Resolve(t.Context(), 4, 0); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}
