package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/fixture-predictor/internal/domain/prediction"
)

type PredictionRepository struct {
	mu      sync.RWMutex
	records []prediction.Record
}

func NewPredictionRepository() *PredictionRepository {
	return &PredictionRepository{}
}

func (r *PredictionRepository) Create(_ context.Context, record prediction.Record) (prediction.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record.ID = int64(len(r.records) + 1)
	r.records = append(r.records, record)
	return record, nil
}

// ListRecent returns the newest predictions first.
func (r *PredictionRepository) ListRecent(_ context.Context, limit int) ([]prediction.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := len(r.records)
	if limit > 0 && n > limit {
		n = limit
	}
	out := make([]prediction.Record, 0, n)
	for i := len(r.records) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, r.records[i])
	}
	return out, nil
}

func (r *PredictionRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.records), nil
}
