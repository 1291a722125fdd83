package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/fixture-predictor/internal/platform/logging"
)

func TestVersionArg(t *testing.T) {
	v, err := versionArg([]string{" 1771776200 "})
	require.NoError(t, err)
	assert.Equal(t, uint32(1771776200), v)

	_, err = versionArg(nil)
	assert.Error(t, err)
	_, err = versionArg([]string{"-3"})
	assert.Error(t, err)
}

func TestMigrationSource_Embedded(t *testing.T) {
	t.Setenv("MIGRATIONS_DIR", "")

	src, origin, err := migrationSource()
	require.NoError(t, err)
	defer src.Close()

	assert.Equal(t, "embedded", origin)
	first, err := src.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1771776000), first)
}

func TestMigrationSource_Dir(t *testing.T) {
	t.Setenv("MIGRATIONS_DIR", "../../db/migrations")

	src, _, err := migrationSource()
	require.NoError(t, err)
	defer src.Close()

	next, err := src.Next(1771776000)
	require.NoError(t, err)
	assert.Equal(t, uint(1771776100), next)
}

func TestRun_Errors(t *testing.T) {
	logger := logging.NewNop()

	assert.Error(t, run(nil, logger))
	assert.ErrorContains(t, run([]string{"sideways"}, logger), "unknown command")

	t.Setenv("DB_URL", "")
	assert.ErrorContains(t, run([]string{"up"}, logger), "DB_URL is required")

	t.Setenv("DB_URL", "postgres://app@localhost/fixture_predictor")
	assert.ErrorContains(t, run([]string{"down", "0"}, logger), "positive integer")
}

func TestEnvBool(t *testing.T) {
	t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "true")
	assert.True(t, envBool("DB_DISABLE_PREPARED_BINARY_RESULT"))

	t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "maybe")
	assert.False(t, envBool("DB_DISABLE_PREPARED_BINARY_RESULT"))
}
