package usecase

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("fixture-predictor/internal/usecase")

// startSpan opens "usecase.<op>" as a child of the caller's span. Without
// a valid parent it returns the context untouched, so background calls
// such as seeding do not create orphan traces.
func startSpan(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if !trace.SpanContextFromContext(ctx).IsValid() {
		return ctx, trace.SpanFromContext(ctx)
	}
	return tracer.Start(ctx, "usecase."+op, trace.WithAttributes(attrs...))
}

func pairAttrs(homeCode, awayCode int) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int("fixture.home_code", homeCode),
		attribute.Int("fixture.away_code", awayCode),
	}
}
