package memory

import (
	"testing"
	"time"

	"github.com/riskibarqy/fixture-predictor/internal/domain/match"
	"github.com/riskibarqy/fixture-predictor/internal/domain/prediction"
)

func TestMatchRepository_FindLatest(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	repo := NewMatchRepository(SeedMatches(now))

	got, found, err := repo.FindLatest(t.Context(), 3, 1)
	if err != nil || !found {
		t.Fatalf("find latest: found=%v err=%v", found, err)
	}
	if got.ID != 1 || got.CornersHome != 6 {
		t.Fatalf("unexpected record: %+v", got)
	}

	if _, found, _ := repo.FindLatest(t.Context(), 3, 4); found {
		t.Fatalf("expected no record for unplayed pairing")
	}
}

func TestMatchRepository_FindLatest_TieBreaksOnID(t *testing.T) {
	t.Parallel()

	day := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	repo := NewMatchRepository([]match.Record{
		{ID: 4, HomeTeamID: 1, AwayTeamID: 2, PlayedAt: day, GoalsHome: 1, Outcome: match.OutcomeHome},
		{ID: 9, HomeTeamID: 1, AwayTeamID: 2, PlayedAt: day, GoalsAway: 1, Outcome: match.OutcomeAway},
		{ID: 2, HomeTeamID: 1, AwayTeamID: 2, PlayedAt: day.AddDate(0, 0, -3), Outcome: match.OutcomeDraw},
	})

	got, _, _ := repo.FindLatest(t.Context(), 1, 2)
	if got.ID != 9 {
		t.Fatalf("expected highest id on equal dates, got=%d", got.ID)
	}
}

func TestMatchRepository_CreateAndCount(t *testing.T) {
	t.Parallel()

	repo := NewMatchRepository(SeedMatches(time.Now()))
	created, err := repo.Create(t.Context(), match.Record{HomeTeamID: 1, AwayTeamID: 2, PlayedAt: time.Now(), Outcome: match.OutcomeDraw})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != 7 {
		t.Fatalf("unexpected id: %d", created.ID)
	}

	counts, err := repo.CountByOutcome(t.Context())
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	want := match.OutcomeCounts{Total: 7, WithResult: 7, HomeWins: 2, Draws: 3, AwayWins: 2}
	if counts != want {
		t.Fatalf("unexpected counts: got=%+v want=%+v", counts, want)
	}

	recent, _ := repo.ListRecent(t.Context(), 2)
	if len(recent) != 2 || recent[0].ID != 7 {
		t.Fatalf("unexpected recent matches: %+v", recent)
	}
}

func TestTeamRepository_Lookups(t *testing.T) {
	t.Parallel()

	repo := NewTeamRepository(SeedTeams())

	got, found, _ := repo.FindByCode(t.Context(), 4)
	if !found || got.Name != "Emelec" {
		t.Fatalf("unexpected team for code 4: %+v", got)
	}
	if _, found, _ := repo.FindByCode(t.Context(), 1); found {
		t.Fatalf("code 1 is not registered")
	}

	got, found, _ = repo.FindByName(t.Context(), " barcelona sc ")
	if !found || got.Code != 0 {
		t.Fatalf("unexpected team for name: %+v", got)
	}

	items, _ := repo.List(t.Context())
	if len(items) != 16 {
		t.Fatalf("unexpected team count: %d", len(items))
	}
}

func TestPredictionRepository_NewestFirst(t *testing.T) {
	t.Parallel()

	repo := NewPredictionRepository()
	for _, label := range []string{"a", "b", "c"} {
		if _, err := repo.Create(t.Context(), prediction.Record{ModelLabel: label}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	got, _ := repo.ListRecent(t.Context(), 2)
	if len(got) != 2 || got[0].ModelLabel != "c" || got[1].ModelLabel != "b" {
		t.Fatalf("unexpected order: %+v", got)
	}
	if n, _ := repo.Count(t.Context()); n != 3 {
		t.Fatalf("unexpected count: %d", n)
	}
}
