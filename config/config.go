// Package config loads and validates gridpath settings.
//
// Settings are resolved in three layers: DefaultConfig, then an optional YAML
// file, then GRIDPATH_* environment variables. Validate reports every
// violation at once.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/heuristic"
)

// ErrInvalid wraps every validation failure returned by Validate and Load.
var ErrInvalid = errors.New("config: invalid configuration")

// Limits on grid dimensions.
const (
	MinGridSize = 1
	MaxGridSize = 4096
)

// Config is the full gridpath configuration.
type Config struct {
	Grid   GridConfig   `yaml:"grid"`
	Search SearchConfig `yaml:"search"`
	Run    RunConfig    `yaml:"run"`
	Log    LogConfig    `yaml:"log"`
}

// GridConfig describes where the grid comes from. When File is set the grid
// is read from that text file and Size, Density and Seed are ignored.
// Seed 0 means "seed from the current time".
type GridConfig struct {
	Size    int     `yaml:"size" validate:"gte=1,lte=4096"`
	Density float64 `yaml:"density" validate:"gte=0,lte=1"`
	Seed    int64   `yaml:"seed"`
	File    string  `yaml:"file"`
}

// SearchConfig holds the endpoints and the adaptive estimate.
type SearchConfig struct {
	Start               gridgraph.Cell `yaml:"start"`
	Goal                gridgraph.Cell `yaml:"goal"`
	Heuristic           heuristic.Kind `yaml:"heuristic" validate:"heuristic_kind"`
	PermissiveEndpoints bool           `yaml:"permissive_endpoints"`
}

// RunConfig controls the coordinator.
type RunConfig struct {
	Parallel bool `yaml:"parallel"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// DefaultConfig returns the settings of the classic 20×20 demo:
// 30% obstacles, start (1,1), goal (18,18), adaptive estimate.
func DefaultConfig() Config {
	return Config{
		Grid: GridConfig{
			Size:    20,
			Density: 0.3,
		},
		Search: SearchConfig{
			Start:     gridgraph.Cell{Row: 1, Col: 1},
			Goal:      gridgraph.Cell{Row: 18, Col: 18},
			Heuristic: heuristic.KindAdaptive,
		},
		Run: RunConfig{Parallel: true},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// Load returns DefaultConfig overlaid by the YAML file at path (skipped when
// path is empty) and by the environment, then validates the result.
// Unknown YAML keys are rejected.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := decode(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// decode strictly unmarshals YAML into cfg. An empty document keeps cfg.
func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Environment variables read by Load.
const (
	EnvSize     = "GRIDPATH_SIZE"
	EnvDensity  = "GRIDPATH_DENSITY"
	EnvSeed     = "GRIDPATH_SEED"
	EnvGridFile = "GRIDPATH_GRID_FILE"
	EnvLogLevel = "GRIDPATH_LOG_LEVEL"
)

// applyEnv overrides cfg from lookup. Malformed numbers are reported rather
// than silently ignored.
func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvSize); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", EnvSize, v, err)
		}
		cfg.Grid.Size = n
	}
	if v, ok := lookup(EnvDensity); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", EnvDensity, v, err)
		}
		cfg.Grid.Density = f
	}
	if v, ok := lookup(EnvSeed); ok {
		s, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", EnvSeed, v, err)
		}
		cfg.Grid.Seed = s
	}
	if v, ok := lookup(EnvGridFile); ok {
		cfg.Grid.File = v
	}
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.Log.Level = strings.ToLower(v)
	}
	return nil
}

// validate is shared by all Validate calls; validator caches struct metadata.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("heuristic_kind", func(fl validator.FieldLevel) bool {
		_, err := heuristic.Kind(fl.Field().Int()).MarshalText()
		return err == nil
	})
	v.RegisterStructValidation(validateEndpoints, Config{})
	return v
}

// validateEndpoints checks that start and goal fit a generated grid. With a
// grid file the size is only known after parsing, so the check is deferred
// to the search itself.
func validateEndpoints(sl validator.StructLevel) {
	cfg := sl.Current().Interface().(Config)
	if cfg.Grid.File != "" {
		return
	}
	inside := func(c gridgraph.Cell) bool {
		return c.Row >= 0 && c.Row < cfg.Grid.Size && c.Col >= 0 && c.Col < cfg.Grid.Size
	}
	if !inside(cfg.Search.Start) {
		sl.ReportError(cfg.Search.Start, "Start", "Start", "inside_grid", strconv.Itoa(cfg.Grid.Size))
	}
	if !inside(cfg.Search.Goal) {
		sl.ReportError(cfg.Search.Goal, "Goal", "Goal", "inside_grid", strconv.Itoa(cfg.Grid.Size))
	}
}

// Validate reports all violations in c, wrapped in ErrInvalid.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// SlogLevel maps Level to a slog.Level; unknown names map to Info.
func (l LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds a text or JSON slog logger writing to w.
func (l LogConfig) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: l.SlogLevel()}
	if strings.EqualFold(l.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
