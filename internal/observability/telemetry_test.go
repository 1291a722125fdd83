package observability

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/fixture-predictor/internal/config"
	"github.com/riskibarqy/fixture-predictor/internal/platform/logging"
)

func TestSetup_AllDisabled(t *testing.T) {
	cfg := config.Config{ServiceName: "fixture-predictor-api", ServiceVersion: "dev", AppEnv: config.EnvDev}

	tel, err := Setup(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)
	assert.Len(t, tel.stops, 3)
	assert.NoError(t, tel.Shutdown(context.Background()))
	assert.NoError(t, tel.Shutdown(context.Background()))
}

func TestSetup_UptraceWithoutDSNStaysOff(t *testing.T) {
	cfg := config.Config{UptraceEnabled: true, UptraceLogsEnabled: true}

	tel, err := Setup(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)
	assert.NoError(t, tel.Shutdown(context.Background()))
}

func TestSetup_PprofServesAndStops(t *testing.T) {
	cfg := config.Config{PprofEnabled: true, PprofAddr: "127.0.0.1:0"}

	tel, err := Setup(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)
	assert.NoError(t, tel.Shutdown(context.Background()))
}

func TestSetup_PprofBadAddrFails(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	cfg := config.Config{PprofEnabled: true, PprofAddr: ln.Addr().String()}
	_, err = Setup(context.Background(), cfg, logging.NewNop())
	assert.ErrorContains(t, err, "start pprof")
}

func TestTelemetry_NilShutdown(t *testing.T) {
	var tel *Telemetry
	assert.NoError(t, tel.Shutdown(context.Background()))
}
