package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTarget(t *testing.T) {
	tests := []struct {
		name          string
		raw           string
		disableBinary bool
		wantDSN       string
		wantName      string
		wantHost      string
	}{
		{
			name:          "url gets binary flag",
			raw:           "postgres://app:secret@db:5432/fixture_predictor?sslmode=disable",
			disableBinary: true,
			wantDSN:       "postgres://app:secret@db:5432/fixture_predictor?disable_prepared_binary_result=yes&sslmode=disable",
			wantName:      "fixture_predictor",
			wantHost:      "db:5432",
		},
		{
			name:          "explicit flag kept",
			raw:           "postgres://app@db/fixture_predictor?disable_prepared_binary_result=no",
			disableBinary: true,
			wantDSN:       "postgres://app@db/fixture_predictor?disable_prepared_binary_result=no",
			wantName:      "fixture_predictor",
			wantHost:      "db",
		},
		{
			name:     "url untouched when toggle off",
			raw:      " postgres://app@db/fixture_predictor?sslmode=disable ",
			wantDSN:  "postgres://app@db/fixture_predictor?sslmode=disable",
			wantName: "fixture_predictor",
			wantHost: "db",
		},
		{
			name:          "key value dsn",
			raw:           "host=localhost user=postgres dbname='fixture_predictor' sslmode=disable",
			disableBinary: true,
			wantDSN:       "host=localhost user=postgres dbname='fixture_predictor' sslmode=disable",
			wantName:      "fixture_predictor",
			wantHost:      "localhost",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTarget(tt.raw, tt.disableBinary)
			assert.Equal(t, tt.wantDSN, got.DSN)
			assert.Equal(t, tt.wantName, got.Name)
			assert.Equal(t, tt.wantHost, got.Host)
		})
	}
}
