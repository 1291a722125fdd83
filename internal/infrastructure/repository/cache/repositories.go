package cache

import (
	"context"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/fixture-predictor/internal/domain/team"
	basecache "github.com/riskibarqy/fixture-predictor/internal/platform/cache"
)

type lookup struct {
	value  team.Team
	exists bool
}

// TeamRegistry caches team lookups, including misses, for ttl.
type TeamRegistry struct {
	next    team.Registry
	lists   *basecache.Store[[]team.Team]
	lookups *basecache.Store[lookup]
}

func NewTeamRegistry(next team.Registry, ttl time.Duration) *TeamRegistry {
	return &TeamRegistry{
		next:    next,
		lists:   basecache.NewStore[[]team.Team](ttl),
		lookups: basecache.NewStore[lookup](ttl),
	}
}

func (r *TeamRegistry) List(ctx context.Context) ([]team.Team, error) {
	items, err := r.lists.GetOrLoad(ctx, "all", r.next.List)
	if err != nil {
		return nil, err
	}
	return slices.Clone(items), nil
}

func (r *TeamRegistry) FindByCode(ctx context.Context, code int) (team.Team, bool, error) {
	return r.find(ctx, "code:"+strconv.Itoa(code), func(ctx context.Context) (team.Team, bool, error) {
		return r.next.FindByCode(ctx, code)
	})
}

func (r *TeamRegistry) FindByName(ctx context.Context, name string) (team.Team, bool, error) {
	return r.find(ctx, "name:"+strings.ToLower(strings.TrimSpace(name)), func(ctx context.Context) (team.Team, bool, error) {
		return r.next.FindByName(ctx, name)
	})
}

func (r *TeamRegistry) find(ctx context.Context, key string, fetch func(context.Context) (team.Team, bool, error)) (team.Team, bool, error) {
	got, err := r.lookups.GetOrLoad(ctx, key, func(ctx context.Context) (lookup, error) {
		item, exists, err := fetch(ctx)
		return lookup{value: item, exists: exists}, err
	})
	if err != nil {
		return team.Team{}, false, err
	}
	return got.value, got.exists, nil
}
