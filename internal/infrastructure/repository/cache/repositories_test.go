package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/fixture-predictor/internal/domain/team"
	teammock "github.com/riskibarqy/fixture-predictor/internal/mocks/domain/team"
	"github.com/stretchr/testify/mock"
)

func TestTeamRegistry_FindByCode_CachesHitsAndMisses(t *testing.T) {
	t.Parallel()

	next := teammock.NewRegistry(t)
	next.On("FindByCode", mock.Anything, 4).Return(team.Team{ID: 3, Code: 4, Name: "Emelec"}, true, nil).Once()
	next.On("FindByCode", mock.Anything, 99).Return(team.Team{}, false, nil).Once()

	registry := NewTeamRegistry(next, time.Minute)
	for range 3 {
		got, found, err := registry.FindByCode(t.Context(), 4)
		if err != nil || !found || got.ID != 3 {
			t.Fatalf("unexpected lookup: %+v found=%v err=%v", got, found, err)
		}
		if _, found, _ := registry.FindByCode(t.Context(), 99); found {
			t.Fatalf("expected cached miss")
		}
	}
}

func TestTeamRegistry_DoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	next := teammock.NewRegistry(t)
	next.On("FindByName", mock.Anything, "Emelec").Return(team.Team{}, false, errors.New("db down")).Once()
	next.On("FindByName", mock.Anything, "Emelec").Return(team.Team{ID: 3, Name: "Emelec"}, true, nil).Once()

	registry := NewTeamRegistry(next, time.Minute)
	if _, _, err := registry.FindByName(t.Context(), "Emelec"); err == nil {
		t.Fatalf("expected error on first lookup")
	}
	if _, found, err := registry.FindByName(t.Context(), "Emelec"); err != nil || !found {
		t.Fatalf("expected second lookup to hit repository, found=%v err=%v", found, err)
	}
}

func TestTeamRegistry_ListReturnsCopy(t *testing.T) {
	t.Parallel()

	next := teammock.NewRegistry(t)
	next.On("List", mock.Anything).Return([]team.Team{{ID: 1, Name: "Barcelona SC"}}, nil).Once()

	registry := NewTeamRegistry(next, time.Minute)
	first, _ := registry.List(t.Context())
	first[0].Name = "mutated"

	second, _ := registry.List(t.Context())
	if second[0].Name != "Barcelona SC" {
		t.Fatalf("cached list must not be shared, got=%q", second[0].Name)
	}
}
