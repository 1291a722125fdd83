package observability

import (
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/fixture-predictor/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	otellog "go.opentelemetry.io/otel/log"
)

func TestIsHealthProbe(t *testing.T) {
	assert.True(t, isHealthProbe("http request", []any{"method", "GET", "path", "/healthz"}))
	assert.False(t, isHealthProbe("http request", []any{"path", "/v1/predictions"}))
	assert.False(t, isHealthProbe("publish prediction failed", []any{"path", "/healthz"}))
}

func TestLogAttributes(t *testing.T) {
	attrs := logAttributes([]any{"role", "corners_total", "home_code", 4, "took", 1500 * time.Millisecond, "payload"})

	if assert.Len(t, attrs, 4) {
		assert.Equal(t, "role", attrs[0].Key)
		assert.Equal(t, "corners_total", attrs[0].Value.AsString())
		assert.Equal(t, int64(4), attrs[1].Value.AsInt64())
		assert.Equal(t, "1.5s", attrs[2].Value.AsString())
		assert.Equal(t, "!badkey", attrs[3].Key)
		assert.Equal(t, "payload", attrs[3].Value.AsString())
	}
}

func TestLogValue_Nested(t *testing.T) {
	v := logValue(map[string]any{"corners": []int{5, 4}, "loaded": true}, 0)
	assert.Equal(t, otellog.KindMap, v.Kind())
	assert.Len(t, v.AsMap(), 2)

	s := logValue([]float64{0.3, 0.4, 0.3}, 0)
	assert.Equal(t, otellog.KindSlice, s.Kind())
	assert.Len(t, s.AsSlice(), 3)

	var missing *int
	assert.Equal(t, otellog.KindEmpty, logValue(missing, 0).Kind())
	assert.Equal(t, "boom", logValue(errors.New("boom"), 0).AsString())
}

func TestSeverityOf(t *testing.T) {
	assert.Equal(t, otellog.SeverityDebug, severityOf(logging.LevelDebug))
	assert.Equal(t, otellog.SeverityInfo, severityOf(logging.LevelInfo))
	assert.Equal(t, otellog.SeverityWarn, severityOf(logging.LevelWarn))
	assert.Equal(t, otellog.SeverityError, severityOf(logging.LevelError))
}
