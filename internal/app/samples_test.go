package app

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Egor213/LogiProbe/internal/domain"
	"github.com/Egor213/LogiProbe/internal/repo"
	"github.com/Egor213/LogiProbe/internal/repo/synth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportSamples(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	gen := synth.New(synth.WithClock(func() time.Time { return now }))
	dir := filepath.Join(t.TempDir(), "out")

	require.NoError(t, ExportSamples(repo.NewRepositories(gen, nil), dir, synth.DegradedIP, 30))

	var servers []domain.ServerDescriptor
	b, err := os.ReadFile(filepath.Join(dir, SamplesServersFile))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(b, &servers))
	assert.Len(t, servers, 5)

	b, err = os.ReadFile(filepath.Join(dir, SamplesNginxFile))
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(b)), "\n"), 110)

	b, err = os.ReadFile(filepath.Join(dir, SamplesMySQLFile))
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(b)), "\n"), 81)

	b, err = os.ReadFile(filepath.Join(dir, SamplesRedisFile))
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(b)), "\n"), 61)

	var snap domain.MetricSnapshot
	b, err = os.ReadFile(filepath.Join(dir, SamplesMetricsFile))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(b, &snap))
	assert.Equal(t, synth.DegradedIP, snap.ServerIP)
	assert.Equal(t, 30, snap.TimeRangeMinutes)
}

func TestWithSSLMode(t *testing.T) {
	assert.Equal(t, "postgres://u:p@db:5432/x?sslmode=disable", withSSLMode("postgres://u:p@db:5432/x"))
	assert.Equal(t, "postgres://db/x?sslmode=require", withSSLMode("postgres://db/x?sslmode=require"))
}
