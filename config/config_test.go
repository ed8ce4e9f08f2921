package config

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/heuristic"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gridpath.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 20, cfg.Grid.Size)
	assert.Equal(t, 0.3, cfg.Grid.Density)
	assert.Equal(t, gridgraph.Cell{Row: 1, Col: 1}, cfg.Search.Start)
	assert.Equal(t, gridgraph.Cell{Row: 18, Col: 18}, cfg.Search.Goal)
	assert.Equal(t, heuristic.KindAdaptive, cfg.Search.Heuristic)
	assert.True(t, cfg.Run.Parallel)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
grid:
  size: 30
  density: 0.25
  seed: 7
search:
  start: {row: 0, col: 0}
  goal: {row: 29, col: 29}
  heuristic: manhattan
  permissive_endpoints: true
run:
  parallel: false
log:
  level: debug
  format: json
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, GridConfig{Size: 30, Density: 0.25, Seed: 7}, cfg.Grid)
	assert.Equal(t, gridgraph.Cell{Row: 29, Col: 29}, cfg.Search.Goal)
	assert.Equal(t, heuristic.KindManhattan, cfg.Search.Heuristic)
	assert.True(t, cfg.Search.PermissiveEndpoints)
	assert.False(t, cfg.Run.Parallel)
	assert.Equal(t, LogConfig{Level: "debug", Format: "json"}, cfg.Log)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeFile(t, "grid:\n  seed: 99\n"))
	require.NoError(t, err)

	want := DefaultConfig()
	want.Grid.Seed = 99
	assert.Equal(t, want, cfg)
}

func TestLoad_EmptyPathAndEmptyFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		valid bool
	}{
		{"UnknownKey", "grid:\n  colour: red\n", false},
		{"BadHeuristic", "search:\n  heuristic: chebyshev\n", false},
		{"NotYAML", "grid: [", false},
		{"SizeTooLarge", "grid:\n  size: 5000\n", true},
		{"DensityTooHigh", "grid:\n  density: 1.5\n", true},
		{"GoalOutside", "grid:\n  size: 10\n", true},
		{"BadLevel", "log:\n  level: loud\n", true},
		{"BadFormat", "log:\n  format: xml\n", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tc.body))
			require.Error(t, err)
			assert.Equal(t, tc.valid, errors.Is(err, ErrInvalid), "err=%v", err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate_ReportsAllViolations(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Grid.Size = 0
	cfg.Grid.Density = -1
	cfg.Search.Heuristic = heuristic.Kind(9)
	cfg.Log.Format = "xml"

	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalid)

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	// Size 0 also puts both endpoints outside the grid.
	assert.ElementsMatch(t, []string{"Size", "Density", "Heuristic", "Format", "Start", "Goal"}, fields)
}

func TestValidate_GridFileSkipsEndpointBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Grid.File = "maze.txt"
	cfg.Search.Goal = gridgraph.Cell{Row: 500, Col: 500}
	assert.NoError(t, cfg.Validate())
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvSize:     "40",
		EnvDensity:  "0.1",
		EnvSeed:     "-3",
		EnvGridFile: "grid.txt",
		EnvLogLevel: "WARN",
	}
	lookup := func(k string) (string, bool) { v, ok := env[k]; return v, ok }

	cfg := DefaultConfig()
	require.NoError(t, applyEnv(&cfg, lookup))
	assert.Equal(t, GridConfig{Size: 40, Density: 0.1, Seed: -3, File: "grid.txt"}, cfg.Grid)
	assert.Equal(t, "warn", cfg.Log.Level)

	for _, key := range []string{EnvSize, EnvDensity, EnvSeed} {
		bad := map[string]string{key: "x"}
		err := applyEnv(&cfg, func(k string) (string, bool) { v, ok := bad[k]; return v, ok })
		assert.ErrorContains(t, err, key)
	}
}

func TestLoad_Env(t *testing.T) {
	t.Setenv(EnvSeed, "123")
	cfg, err := Load(writeFile(t, "grid:\n  seed: 5\n"))
	require.NoError(t, err)
	assert.Equal(t, int64(123), cfg.Grid.Seed)
}

func TestLogConfig_NewLogger(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LogConfig{Level: "debug"}.SlogLevel())
	assert.Equal(t, slog.LevelWarn, LogConfig{Level: "warn"}.SlogLevel())
	assert.Equal(t, slog.LevelError, LogConfig{Level: "error"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, LogConfig{Level: "info"}.SlogLevel())

	var buf bytes.Buffer
	LogConfig{Level: "warn", Format: "json"}.NewLogger(&buf).Info("hidden")
	assert.Empty(t, buf.String())
	LogConfig{Level: "warn", Format: "json"}.NewLogger(&buf).Warn("shown", slog.Int("n", 1))
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	buf.Reset()
	LogConfig{Level: "info", Format: "text"}.NewLogger(&buf).Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}
