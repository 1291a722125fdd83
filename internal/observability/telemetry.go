package observability

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/fixture-predictor/internal/config"
	"github.com/riskibarqy/fixture-predictor/internal/platform/logging"
)

// Telemetry holds the started tracing and profiling integrations.
type Telemetry struct {
	stops []func(context.Context) error
}

// Setup starts Uptrace, Pyroscope and the pprof listener as configured.
// On error everything started so far is shut down again.
func Setup(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Telemetry, error) {
	if logger == nil {
		logger = logging.Default()
	}

	t := &Telemetry{}
	steps := []struct {
		name  string
		start func(config.Config, *logging.Logger) (func(context.Context) error, error)
	}{
		{"uptrace", initUptrace},
		{"pyroscope", startPyroscope},
		{"pprof", startPprof},
	}
	for _, step := range steps {
		stop, err := step.start(cfg, logger)
		if err != nil {
			return nil, errors.Join(fmt.Errorf("start %s: %w", step.name, err), t.Shutdown(ctx))
		}
		t.stops = append(t.stops, stop)
	}
	return t, nil
}

// Shutdown stops integrations in reverse start order.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	if t == nil {
		return nil
	}
	var errs []error
	for i := len(t.stops) - 1; i >= 0; i-- {
		errs = append(errs, t.stops[i](ctx))
	}
	t.stops = nil
	return errors.Join(errs...)
}
