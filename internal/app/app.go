// Package app wires the searchbench command line: commands, map selection,
// interactive input, logging and report output.
package app

import (
	"context"
	"io"
	"time"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/searchbench/builder"
	"github.com/katalvlaran/searchbench/compare"
	"github.com/katalvlaran/searchbench/config"
	"github.com/katalvlaran/searchbench/mapfile"
	"github.com/katalvlaran/searchbench/report"
	"github.com/katalvlaran/searchbench/romania"
	"github.com/katalvlaran/searchbench/search"
)

// Prompts shown when a location is not given on the command line.
const (
	StartPrompt = "Enter the starting location: "
	GoalPrompt  = "Enter the destination location: "
)

// DefaultCommand runs when no command is named.
const DefaultCommand = "compare"

// App is one configured command-line invocation.
type App struct {
	cfg      config.Config
	out      io.Writer
	errOut   io.Writer
	prompter Prompter
	ctx      context.Context
	root     *commander.Command
}

// Option customizes an App.
type Option func(*App)

// WithPrompter replaces the prompter chosen from the input stream.
func WithPrompter(p Prompter) Option {
	return func(a *App) {
		if p != nil {
			a.prompter = p
		}
	}
}

// New builds the command tree. cfg supplies flag defaults.
func New(cfg config.Config, in io.Reader, out, errOut io.Writer, opts ...Option) *App {
	a := &App{
		cfg:    cfg,
		out:    out,
		errOut: errOut,
		ctx:    context.Background(),
	}
	a.prompter = NewPrompter(in, out)
	for _, opt := range opts {
		opt(a)
	}

	a.root = &commander.Command{
		UsageLine: "searchbench",
		Short:     "compare graph-search strategies on a road map",
		Subcommands: []*commander.Command{
			a.compareCmd(),
			a.runCmd(),
			a.citiesCmd(),
		},
	}

	return a
}

// Run dispatches args (without the program name). With no args it runs
// DefaultCommand.
func (a *App) Run(ctx context.Context, args []string) error {
	if ctx != nil {
		a.ctx = ctx
	}
	if len(args) == 0 {
		args = []string{DefaultCommand}
	}

	return a.root.Dispatch(args)
}

// searchFlags are the flags shared by compare and run.
type searchFlags struct {
	from     string
	to       string
	mapFile  string
	grid     string
	maxDepth int
	color    bool
	verbose  bool
}

func (a *App) bindSearchFlags(fs *flag.FlagSet, f *searchFlags) {
	fs.StringVar(&f.from, "from", "", "starting location (prompted when empty)")
	fs.StringVar(&f.to, "to", "", "destination location (prompted when empty)")
	fs.StringVar(&f.mapFile, "map", a.cfg.MapFile, "YAML map file (built-in Romania map when empty)")
	fs.StringVar(&f.grid, "grid", "", "synthetic RxC grid map instead of a named map")
	fs.IntVar(&f.maxDepth, "max-depth", a.cfg.MaxDepth, "iterative deepening bound")
	fs.BoolVar(&f.color, "color", a.cfg.Color, "colorize the report")
	fs.BoolVar(&f.verbose, "v", a.cfg.Verbose, "log every search to stderr")
}

func (a *App) compareCmd() *commander.Command {
	f := &searchFlags{}
	cmd := &commander.Command{
		Run: func(_ *commander.Command, _ []string) error {
			return a.runCompare(f, compare.Strategies())
		},
		UsageLine: "compare [options]",
		Short:     "run every strategy and rank the results by cost",
		Long: `
Runs breadth-first, uniform-cost, greedy best-first and iterative-deepening
search from one location to another and prints the results sorted by cost.

	$ searchbench compare -from Arad -to Bucharest
	$ searchbench compare -grid 4x4 -from 0,0 -to 3,3
`,
		Flag: *flag.NewFlagSet("compare", flag.ContinueOnError),
	}
	a.bindSearchFlags(&cmd.Flag, f)

	return cmd
}

func (a *App) runCmd() *commander.Command {
	f := &searchFlags{}
	var algo string
	cmd := &commander.Command{
		Run: func(_ *commander.Command, _ []string) error {
			s, err := compare.Lookup(algo)
			if err != nil {
				return err
			}
			return a.runCompare(f, []compare.Strategy{s})
		},
		UsageLine: "run -algo <bfs|ucs|greedy|iddfs> [options]",
		Short:     "run a single strategy",
		Long: `
Runs one strategy and prints its result.

	$ searchbench run -algo ucs -from Arad -to Bucharest
`,
		Flag: *flag.NewFlagSet("run", flag.ContinueOnError),
	}
	cmd.Flag.StringVar(&algo, "algo", "ucs", "strategy: bfs, ucs, greedy or iddfs")
	a.bindSearchFlags(&cmd.Flag, f)

	return cmd
}

func (a *App) citiesCmd() *commander.Command {
	var mapFile, grid string
	var asYAML, color bool
	cmd := &commander.Command{
		Run: func(_ *commander.Command, _ []string) error {
			m, err := a.loadMap(mapFile, grid)
			if err != nil {
				return err
			}
			if asYAML {
				return mapfile.Encode(a.out, mapfile.FromGraph(m.Name, m.Graph, m.Heuristic))
			}
			return report.New(a.out, report.WithColor(color)).Cities(m.Graph, m.Heuristic)
		},
		UsageLine: "cities [options]",
		Short:     "list the locations of the map",
		Long: `
Lists every location with its heuristic estimate and outgoing roads,
or writes the whole map as YAML.

	$ searchbench cities
	$ searchbench cities -yaml > romania.yaml
	$ searchbench cities -grid 3x3
`,
		Flag: *flag.NewFlagSet("cities", flag.ContinueOnError),
	}
	cmd.Flag.StringVar(&mapFile, "map", a.cfg.MapFile, "YAML map file (built-in Romania map when empty)")
	cmd.Flag.StringVar(&grid, "grid", "", "synthetic RxC grid map instead of a named map")
	cmd.Flag.BoolVar(&asYAML, "yaml", false, "write the map as YAML")
	cmd.Flag.BoolVar(&color, "color", a.cfg.Color, "colorize the listing")

	return cmd
}

// loadMap returns a synthetic grid when grid is set, the YAML map at path
// when path is set, and the built-in Romania map otherwise.
func (a *App) loadMap(path, grid string) (*mapfile.Map, error) {
	switch {
	case grid != "":
		rows, cols, err := builder.ParseGrid(grid)
		if err != nil {
			return nil, err
		}
		g, h, err := builder.Grid(rows, cols)
		if err != nil {
			return nil, err
		}
		return &mapfile.Map{Name: "grid " + grid, Graph: g, Heuristic: h}, nil
	case path != "":
		return mapfile.Load(path)
	default:
		return &mapfile.Map{Name: "romania", Graph: romania.Graph(), Heuristic: romania.Heuristic()}, nil
	}
}

// endpoints returns the start and goal labels, prompting for missing ones.
func (a *App) endpoints(f *searchFlags, m *mapfile.Map) (string, string, error) {
	labels := m.Graph.Vertices()
	start, goal := f.from, f.to
	var err error
	if start == "" {
		if start, err = a.prompter.Ask(StartPrompt, labels); err != nil {
			return "", "", err
		}
	}
	if goal == "" {
		if goal, err = a.prompter.Ask(GoalPrompt, labels); err != nil {
			return "", "", err
		}
	}

	return start, goal, nil
}

// runCompare runs strategies on the selected map and prints the ranking.
func (a *App) runCompare(f *searchFlags, strategies []compare.Strategy) error {
	if f.maxDepth < 0 {
		return errors.Wrapf(config.ErrInvalidConfig, "max depth cannot be negative (%d)", f.maxDepth)
	}
	log := newLogger(f.verbose, a.errOut)
	defer func() { _ = log.Sync() }()

	m, err := a.loadMap(f.mapFile, f.grid)
	if err != nil {
		return err
	}
	if missing := m.Heuristic.Covers(m.Graph); len(missing) > 0 {
		log.Warn("heuristic does not cover every location",
			zap.String("map", m.Name), zap.Strings("missing", missing))
	}

	start, goal, err := a.endpoints(f, m)
	if err != nil {
		return err
	}
	log.Debug("searching",
		zap.String("map", m.Name), zap.String("start", start), zap.String("goal", goal),
		zap.Int("maxDepth", f.maxDepth))

	ranking, err := compare.RunStrategies(a.ctx, strategies, m.Graph, m.Heuristic, start, goal,
		search.WithMaxDepth(f.maxDepth))
	if err != nil {
		return errors.Wrap(err, "app: compare")
	}
	for _, o := range ranking {
		log.Debug("strategy finished",
			zap.String("strategy", o.Name),
			zap.Bool("found", o.Result.Found()),
			zap.Int("hops", o.Result.Hops()),
			zap.Float64("cost", o.Result.Cost),
			zap.Int("expanded", o.Result.Expanded),
			zap.Duration("elapsed", o.Elapsed.Round(time.Microsecond)),
			zap.Error(o.Err))
	}

	return report.New(a.out, report.WithColor(f.color)).Ranking(ranking)
}
