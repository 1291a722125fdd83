package observability

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/riskibarqy/fixture-predictor/internal/platform/logging"
	otellog "go.opentelemetry.io/otel/log"
	otelglobal "go.opentelemetry.io/otel/log/global"
)

const logMirrorScope = "fixture-predictor/internal/platform/logging"

// logMirror forwards logging records to the global OTel logger provider.
type logMirror struct {
	logger otellog.Logger
	now    func() time.Time
}

func newLogMirror(serviceVersion string) *logMirror {
	return &logMirror{
		logger: otelglobal.Logger(logMirrorScope, otellog.WithInstrumentationVersion(serviceVersion)),
		now:    time.Now,
	}
}

func (m *logMirror) emit(ctx context.Context, level logging.Level, msg string, args ...any) {
	if isHealthProbe(msg, args) {
		return
	}

	severity := severityOf(level)
	if !m.logger.Enabled(ctx, otellog.EnabledParameters{Severity: severity, EventName: msg}) {
		return
	}

	var rec otellog.Record
	ts := m.now().UTC()
	rec.SetTimestamp(ts)
	rec.SetObservedTimestamp(ts)
	rec.SetSeverity(severity)
	rec.SetSeverityText(strings.ToUpper(level.String()))
	rec.SetEventName(msg)
	rec.SetBody(otellog.StringValue(msg))
	rec.AddAttributes(logAttributes(args)...)

	m.logger.Emit(ctx, rec)
}

// isHealthProbe reports access-log records for /healthz, which would
// otherwise dominate the exported volume.
func isHealthProbe(msg string, args []any) bool {
	if msg != "http request" {
		return false
	}
	for i := 0; i+1 < len(args); i += 2 {
		if args[i] == "path" {
			return args[i+1] == "/healthz"
		}
	}
	return false
}

func logAttributes(args []any) []otellog.KeyValue {
	attrs := make([]otellog.KeyValue, 0, (len(args)+1)/2)
	for i := 0; i < len(args); i += 2 {
		if i+1 == len(args) {
			attrs = append(attrs, otellog.KeyValue{Key: "!badkey", Value: logValue(args[i], 0)})
			break
		}
		key, _ := args[i].(string)
		if key == "" {
			key = "!badkey"
		}
		attrs = append(attrs, otellog.KeyValue{Key: key, Value: logValue(args[i+1], 0)})
	}
	return attrs
}

func severityOf(level logging.Level) otellog.Severity {
	switch {
	case level < logging.LevelInfo:
		return otellog.SeverityDebug
	case level == logging.LevelInfo:
		return otellog.SeverityInfo
	case level == logging.LevelWarn:
		return otellog.SeverityWarn
	case level == logging.LevelError:
		return otellog.SeverityError
	default:
		return otellog.SeverityFatal
	}
}

// logValue converts the attribute types the service logs. Nested slices
// and string-keyed maps are expanded up to three levels.
func logValue(v any, depth int) otellog.Value {
	switch x := v.(type) {
	case nil:
		return otellog.Value{}
	case string:
		return otellog.StringValue(x)
	case bool:
		return otellog.BoolValue(x)
	case int:
		return otellog.IntValue(x)
	case int64:
		return otellog.Int64Value(x)
	case int32:
		return otellog.Int64Value(int64(x))
	case float64:
		return otellog.Float64Value(x)
	case float32:
		return otellog.Float64Value(float64(x))
	case time.Duration:
		return otellog.StringValue(x.String())
	case time.Time:
		return otellog.StringValue(x.UTC().Format(time.RFC3339Nano))
	case error:
		return otellog.StringValue(x.Error())
	case fmt.Stringer:
		return otellog.StringValue(x.String())
	}

	rv := reflect.ValueOf(v)
	if depth >= 3 {
		return otellog.StringValue(fmt.Sprint(v))
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		items := make([]otellog.Value, rv.Len())
		for i := range items {
			items[i] = logValue(rv.Index(i).Interface(), depth+1)
		}
		return otellog.SliceValue(items...)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		kvs := make([]otellog.KeyValue, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			kvs = append(kvs, otellog.KeyValue{Key: iter.Key().String(), Value: logValue(iter.Value().Interface(), depth+1)})
		}
		return otellog.MapValue(kvs...)
	case reflect.Pointer:
		if rv.IsNil() {
			return otellog.Value{}
		}
		return logValue(rv.Elem().Interface(), depth+1)
	}
	return otellog.StringValue(fmt.Sprint(v))
}
