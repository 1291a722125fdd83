package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/fixture-predictor/internal/domain/team"
)

type TeamService struct {
	teams team.Registry
}

func NewTeamService(teams team.Registry) *TeamService {
	return &TeamService{teams: teams}
}

// List returns every registered team ordered by name.
func (s *TeamService) List(ctx context.Context) ([]team.Team, error) {
	ctx, span := startSpan(ctx, "TeamService.List")
	defer span.End()

	items, err := s.teams.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Name < items[j].Name
	})
	return items, nil
}
