package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/riskibarqy/fixture-predictor/internal/domain/team"
)

type TeamRepository struct {
	mu     sync.RWMutex
	byCode map[int]team.Team
	order  []int
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	r := &TeamRepository{byCode: make(map[int]team.Team, len(teams))}
	for _, item := range teams {
		if _, exists := r.byCode[item.Code]; !exists {
			r.order = append(r.order, item.Code)
		}
		r.byCode[item.Code] = item
	}
	return r
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.order))
	for _, code := range r.order {
		out = append(out, r.byCode[code])
	}
	return out, nil
}

func (r *TeamRepository) FindByCode(_ context.Context, code int) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byCode[code]
	return item, ok, nil
}

func (r *TeamRepository) FindByName(_ context.Context, name string) (team.Team, bool, error) {
	name = strings.TrimSpace(name)

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, code := range r.order {
		item := r.byCode[code]
		if strings.EqualFold(item.Name, name) {
			return item, true, nil
		}
	}
	return team.Team{}, false, nil
}
