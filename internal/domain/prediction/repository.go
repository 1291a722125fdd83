package prediction

import "context"

// Repository persists predictions. Inserts are never deduplicated.
type Repository interface {
	Create(ctx context.Context, record Record) (Record, error)
	ListRecent(ctx context.Context, limit int) ([]Record, error)
	Count(ctx context.Context) (int, error)
}

// Publisher hands a stored prediction to downstream consumers.
type Publisher interface {
	PublishPrediction(ctx context.Context, record Record) error
}
