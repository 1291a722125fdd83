package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/fixture-predictor/internal/domain/match"
)

type MatchRepository struct {
	mu      sync.RWMutex
	records []match.Record
	nextID  int64
}

func NewMatchRepository(records []match.Record) *MatchRepository {
	r := &MatchRepository{records: append([]match.Record(nil), records...)}
	for _, item := range records {
		r.nextID = max(r.nextID, item.ID)
	}
	return r
}

func (r *MatchRepository) FindLatest(_ context.Context, homeTeamID, awayTeamID int64) (match.Record, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var (
		latest match.Record
		found  bool
	)
	for _, item := range r.records {
		if item.HomeTeamID != homeTeamID || item.AwayTeamID != awayTeamID {
			continue
		}
		if !found || newerThan(item, latest) {
			latest, found = item, true
		}
	}
	return latest, found, nil
}

func (r *MatchRepository) ListRecent(_ context.Context, limit int) ([]match.Record, error) {
	r.mu.RLock()
	out := append([]match.Record(nil), r.records...)
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return newerThan(out[i], out[j])
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *MatchRepository) Create(_ context.Context, record match.Record) (match.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	record.ID = r.nextID
	r.records = append(r.records, record)
	return record, nil
}

func (r *MatchRepository) CountByOutcome(_ context.Context) (match.OutcomeCounts, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := match.OutcomeCounts{Total: len(r.records)}
	for _, item := range r.records {
		switch item.Outcome {
		case match.OutcomeHome:
			counts.HomeWins++
		case match.OutcomeDraw:
			counts.Draws++
		case match.OutcomeAway:
			counts.AwayWins++
		default:
			continue
		}
		counts.WithResult++
	}
	return counts, nil
}

// newerThan orders by date descending, then by id descending.
func newerThan(a, b match.Record) bool {
	if !a.PlayedAt.Equal(b.PlayedAt) {
		return a.PlayedAt.After(b.PlayedAt)
	}
	return a.ID > b.ID
}
