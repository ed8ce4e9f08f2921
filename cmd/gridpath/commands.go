package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/builder"
	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/heuristic"
	"github.com/katalvlaran/gridpath/runner"
)

// Path overlay glyphs.
const (
	markStart    = 'S'
	markGoal     = 'G'
	markPath     = '*'
	markBasic    = 'o'
	markAdaptive = '*'
)

var errBadCell = errors.New("cell must be written as row,col")

// app carries the state shared by all subcommands of one invocation.
type app struct {
	configPath string
	logLevel   string
	gridFile   string
	size       int
	density    float64
	seed       int64
	start      string
	goal       string
	kind       string
	permissive bool

	cfg    config.Config
	logger *slog.Logger
}

// newRootCmd builds the command tree. Every call returns independent state.
func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "gridpath",
		Short:         "Compare basic and heuristic-guided shortest paths on obstacle grids",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.StringVar(&a.gridFile, "grid-file", "", "read the grid from a text file ('.' free, '#' blocked)")
	pf.IntVar(&a.size, "size", 0, "side length of a generated grid")
	pf.Float64Var(&a.density, "density", 0, "obstacle probability of a generated grid")
	pf.Int64Var(&a.seed, "seed", 0, "random seed of a generated grid (0 = time based)")
	pf.StringVar(&a.start, "start", "", "start cell as row,col")
	pf.StringVar(&a.goal, "goal", "", "goal cell as row,col")
	pf.StringVar(&a.kind, "heuristic", "", "adaptive estimate: manhattan, euclidean or adaptive")
	pf.BoolVar(&a.permissive, "permissive", false, "search from or to blocked endpoints instead of rejecting them")

	root.AddCommand(a.generateCmd(), a.runCmd(), a.compareCmd())

	return root
}

// setup loads the configuration, applies explicitly set flags and builds
// the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil && !errors.Is(err, config.ErrInvalid) {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = strings.ToLower(a.logLevel)
	}
	if flags.Changed("grid-file") {
		cfg.Grid.File = a.gridFile
	}
	if flags.Changed("size") {
		cfg.Grid.Size = a.size
	}
	if flags.Changed("density") {
		cfg.Grid.Density = a.density
	}
	if flags.Changed("seed") {
		cfg.Grid.Seed = a.seed
	}
	if flags.Changed("start") {
		if cfg.Search.Start, err = parseCell(a.start); err != nil {
			return fmt.Errorf("--start: %w", err)
		}
	}
	if flags.Changed("goal") {
		if cfg.Search.Goal, err = parseCell(a.goal); err != nil {
			return fmt.Errorf("--goal: %w", err)
		}
	}
	if flags.Changed("heuristic") {
		if cfg.Search.Heuristic, err = heuristic.ParseKind(a.kind); err != nil {
			return fmt.Errorf("--heuristic: %w", err)
		}
	}
	if flags.Changed("permissive") {
		cfg.Search.PermissiveEndpoints = a.permissive
	}

	// Flags may repair a file that failed validation, so validate once more
	// after the overrides.
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = cfg.Log.NewLogger(cmd.ErrOrStderr())
	return nil
}

// parseCell reads "row,col".
func parseCell(s string) (gridgraph.Cell, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return gridgraph.Cell{}, fmt.Errorf("%w: %q", errBadCell, s)
	}
	r, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return gridgraph.Cell{}, fmt.Errorf("%w: %q", errBadCell, s)
	}
	c, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return gridgraph.Cell{}, fmt.Errorf("%w: %q", errBadCell, s)
	}
	return gridgraph.Cell{Row: r, Col: c}, nil
}

// loadGrid reads the grid file or generates a random grid that keeps both
// endpoints free.
func (a *app) loadGrid(ctx context.Context) (*gridgraph.Grid, error) {
	if a.cfg.Grid.File != "" {
		data, err := os.ReadFile(a.cfg.Grid.File)
		if err != nil {
			return nil, err
		}
		g, err := gridgraph.ParseText(string(data))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", a.cfg.Grid.File, err)
		}
		a.logger.DebugContext(ctx, "grid_loaded",
			slog.String("file", a.cfg.Grid.File),
			slog.Int("size", g.Size()),
			slog.Int("free", g.FreeCount()),
		)
		return g, nil
	}

	seed := a.cfg.Grid.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g, err := builder.RandomGrid(a.cfg.Grid.Size,
		builder.WithSeed(seed),
		builder.WithDensity(a.cfg.Grid.Density),
		builder.WithKeepFree(a.cfg.Search.Start, a.cfg.Search.Goal),
	)
	if err != nil {
		return nil, err
	}
	a.logger.InfoContext(ctx, "grid_generated",
		slog.Int("size", g.Size()),
		slog.Float64("density", a.cfg.Grid.Density),
		slog.Int64("seed", seed),
		slog.Int("free", g.FreeCount()),
	)
	return g, nil
}

// coordinator builds a runner.Coordinator from the configuration.
func (a *app) coordinator() *runner.Coordinator {
	opts := []runner.Option{
		runner.WithLogger(a.logger),
		runner.WithHeuristic(a.cfg.Search.Heuristic),
		runner.WithParallel(a.cfg.Run.Parallel),
	}
	if a.cfg.Search.PermissiveEndpoints {
		opts = append(opts, runner.WithSearchOptions(dijkstra.WithPermissiveEndpoints()))
	}
	return runner.New(opts...)
}

func (a *app) generateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Print a random grid in the text format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGrid(cmd.Context())
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), g.String())
			return err
		},
	}
}

func (a *app) runCmd() *cobra.Command {
	var modeName string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one search and print its statistics and path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mode, err := dijkstra.ParseMode(modeName)
			if err != nil {
				return err
			}
			g, err := a.loadGrid(cmd.Context())
			if err != nil {
				return err
			}
			run, err := a.coordinator().Run(cmd.Context(), g, a.cfg.Search.Start, a.cfg.Search.Goal, mode)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, run.Summary())
			fmt.Fprint(out, g.Render(a.overlay(markPath, run.Result.Path)))
			return nil
		},
	}
	cmd.Flags().StringVar(&modeName, "mode", dijkstra.ModeBasic.String(), "search mode: basic or adaptive")

	return cmd
}

func (a *app) compareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare",
		Short: "Run both modes on the same grid and compare them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGrid(cmd.Context())
			if err != nil {
				return err
			}
			cmp, err := a.coordinator().RunAll(cmd.Context(), g, a.cfg.Search.Start, a.cfg.Search.Goal)
			if err != nil {
				return err
			}

			marks := a.overlay(markBasic, cmp.Basic.Result.Path)
			for c, m := range a.overlay(markAdaptive, cmp.Adaptive.Result.Path) {
				marks[c] = m
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, cmp.Basic.Summary())
			fmt.Fprintln(out, cmp.Adaptive.Summary())
			fmt.Fprint(out, cmp.Report())
			fmt.Fprint(out, g.Render(marks))
			return nil
		},
	}
}

// overlay marks path cells with glyph and the endpoints with S and G.
func (a *app) overlay(glyph rune, path []gridgraph.Cell) map[gridgraph.Cell]rune {
	marks := make(map[gridgraph.Cell]rune, len(path)+2)
	for _, c := range path {
		marks[c] = glyph
	}
	marks[a.cfg.Search.Start] = markStart
	marks[a.cfg.Search.Goal] = markGoal
	return marks
}
