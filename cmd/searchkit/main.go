// Command searchkit is the command-line runner for the search toolkit:
// solve a single scrambled puzzle, run a batch experiment to CSV, or serve
// the solver over HTTP.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/searchkit/bench"
	"github.com/katalvlaran/searchkit/core"
	"github.com/katalvlaran/searchkit/httpapi"
	"github.com/katalvlaran/searchkit/puzzle"
)

func main() {
	app := &cli.App{
		Name:  "searchkit",
		Usage: "Heuristic state-space search toolkit",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "solve",
				Usage:  "Scramble one puzzle and solve it with a catalog preset",
				Action: solveCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "size",
						Usage: "Board dimension (3 for the 8-puzzle, 4 for the 15-puzzle)",
						Value: 3,
					},
					&cli.IntFlag{
						Name:  "scramble",
						Usage: "Scramble depth (difficulty)",
						Value: 20,
					},
					&cli.Int64Flag{
						Name:  "seed",
						Usage: "Seed for scrambling and stochastic presets",
						Value: 0,
					},
					&cli.StringFlag{
						Name:    "algorithm",
						Aliases: []string{"a"},
						Usage:   "Catalog preset (see 'searchkit presets')",
						Value:   "astar_manhattan",
					},
					&cli.BoolFlag{
						Name:  "show-path",
						Usage: "Print every board along the solution path",
					},
				},
			},
			{
				Name:   "presets",
				Usage:  "List the algorithm presets",
				Action: presetsCommand,
			},
			{
				Name:   "bench",
				Usage:  "Run a batch experiment and write a CSV report",
				Action: benchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "YAML experiment file (defaults apply when omitted)",
					},
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   "CSV output path",
						Value:   "results.csv",
					},
				},
			},
			{
				Name:   "serve",
				Usage:  "Serve the solver over HTTP",
				Action: serveCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "addr",
						Usage: "Listen address",
						Value: ":8080",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// setupLogger installs a text slog handler at the requested level.
func setupLogger(c *cli.Context) error {
	var level slog.Level
	switch strings.ToLower(c.String("log-level")) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("unknown log level: %s", c.String("log-level"))
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))

	return nil
}

func solveCommand(c *cli.Context) error {
	seed := c.Int64("seed")
	rng := rand.New(rand.NewSource(seed))

	problem, err := puzzle.NewScrambled(c.Int("size"), c.Int("scramble"), rng)
	if err != nil {
		return err
	}

	preset := c.String("algorithm")
	algorithm, err := bench.Build(preset, problem, seed)
	if err != nil {
		return err
	}

	agent, err := core.NewAgent[puzzle.State, puzzle.Action](problem, algorithm)
	if err != nil {
		return err
	}

	fmt.Printf("Initial board (%s):\n%s\n\n", preset, problem.Display(problem.InitialState()))

	res, err := agent.Solve()
	if err != nil {
		return err
	}

	if !res.Success {
		fmt.Printf("No solution found: expanded %d nodes in %s (%d iterations)\n",
			res.NodesExpanded, res.Runtime, res.Iterations)

		return nil
	}

	fmt.Printf("Solved in %.0f moves: expanded %d nodes in %s\n",
		res.Cost(), res.NodesExpanded, res.Runtime)

	moves := res.Solution.Actions()
	labels := make([]string, len(moves))
	for i, m := range moves {
		labels[i] = string(m)
	}
	fmt.Printf("Moves: %s\n", strings.Join(labels, " "))

	if c.Bool("show-path") {
		for i, node := range res.Path() {
			fmt.Printf("\nStep %d:\n%s\n", i, problem.Display(node.State))
		}
	}

	return nil
}

func presetsCommand(*cli.Context) error {
	for _, name := range bench.Presets() {
		fmt.Println(name)
	}

	return nil
}

func benchCommand(c *cli.Context) error {
	cfg := bench.DefaultConfig()
	if path := c.String("config"); path != "" {
		var err error
		if cfg, err = bench.LoadConfig(path); err != nil {
			return err
		}
	}

	logger := slog.Default()
	logger.Info("starting batch experiment",
		slog.Int("size", cfg.Size),
		slog.Int("scramble_depth", cfg.ScrambleDepth),
		slog.Int("runs", cfg.Runs),
		slog.Int("workers", cfg.Workers),
		slog.Int("presets", len(cfg.Algorithms)),
	)

	rows, err := bench.Run(cfg, logger)
	if err != nil {
		return err
	}

	out, err := os.Create(c.String("out"))
	if err != nil {
		return err
	}
	defer out.Close()

	if err = bench.WriteCSV(out, rows); err != nil {
		return err
	}

	logger.Info("experiment complete",
		slog.Int("rows", len(rows)),
		slog.String("out", c.String("out")),
	)

	return nil
}

func serveCommand(c *cli.Context) error {
	logger := slog.Default()
	router := httpapi.NewRouter(logger)

	addr := c.String("addr")
	logger.Info("serving solver", slog.String("addr", addr))

	return router.Run(addr)
}
