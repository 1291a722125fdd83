package match

import "context"

// Repository exposes head-to-head storage.
type Repository interface {
	// FindLatest returns the most recent record with exactly this
	// orientation. Records sharing the latest date are ordered by highest id.
	FindLatest(ctx context.Context, homeTeamID, awayTeamID int64) (Record, bool, error)
	ListRecent(ctx context.Context, limit int) ([]Record, error)
	Create(ctx context.Context, record Record) (Record, error)
	CountByOutcome(ctx context.Context) (OutcomeCounts, error)
}
