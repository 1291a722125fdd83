package httpapi

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = otel.Tracer("fixture-predictor/internal/interfaces/httpapi")

// startHandlerSpan opens a child span named after the handler method. It
// only nests under an existing server span, so filtered routes such as
// /healthz never produce root spans.
func startHandlerSpan(r *http.Request, op string) (context.Context, trace.Span) {
	ctx := r.Context()
	if !trace.SpanContextFromContext(ctx).IsValid() {
		return ctx, trace.SpanFromContext(ctx)
	}
	return apiTracer.Start(ctx, handlerSpanName(op),
		trace.WithAttributes(attribute.String("http.route", r.Pattern)),
	)
}

func handlerSpanName(op string) string {
	return "httpapi.Handler." + op
}

func recordSpanError(ctx context.Context, err error) {
	span := trace.SpanFromContext(ctx)
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
