package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/katalvlaran/searchkit/core"
	"github.com/katalvlaran/searchkit/puzzle"
)

// Row is the outcome of one run: one preset against one scrambled instance.
type Row struct {
	Algorithm     string
	Size          int
	ScrambleDepth int
	Seed          int64
	Success       bool
	Cost          float64 // +Inf when no solution was found
	NodesExpanded int
	Runtime       time.Duration
	Iterations    int
}

// Run executes every (preset, seed) pair of cfg on a worker pool and
// returns the rows in deterministic job order. A nil logger disables
// per-run logging.
//
// Scrambles are seeded by the run index, so the same Config always produces
// the same problem instances.
func Run(cfg Config, logger *slog.Logger) ([]Row, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	type job struct {
		index  int
		preset string
		seed   int64
	}

	jobs := make([]job, 0, len(cfg.Algorithms)*cfg.Runs)
	for _, preset := range cfg.Algorithms {
		for seed := 0; seed < cfg.Runs; seed++ {
			jobs = append(jobs, job{index: len(jobs), preset: preset, seed: int64(seed)})
		}
	}

	pool, err := ants.NewPool(cfg.Workers)
	if err != nil {
		return nil, fmt.Errorf("bench: worker pool: %w", err)
	}
	defer pool.Release()

	rows := make([]Row, len(jobs))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for _, j := range jobs {
		j := j
		wg.Add(1)

		submitErr := pool.Submit(func() {
			defer wg.Done()

			row, runErr := runOne(cfg, j.preset, j.seed)
			if runErr != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = runErr
				}
				mu.Unlock()

				return
			}

			rows[j.index] = row
			logger.Debug("bench run finished",
				slog.String("algorithm", row.Algorithm),
				slog.Int64("seed", row.Seed),
				slog.Bool("success", row.Success),
				slog.Int("nodes_expanded", row.NodesExpanded),
				slog.Duration("runtime", row.Runtime),
			)
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			if firstErr == nil {
				firstErr = fmt.Errorf("bench: submit: %w", submitErr)
			}
			mu.Unlock()
		}
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	return rows, nil
}

// runOne scrambles one instance, builds the preset, and solves it.
func runOne(cfg Config, preset string, seed int64) (Row, error) {
	rng := rand.New(rand.NewSource(seed))
	problem, err := puzzle.NewScrambled(cfg.Size, cfg.ScrambleDepth, rng)
	if err != nil {
		return Row{}, err
	}

	algorithm, err := Build(preset, problem, seed)
	if err != nil {
		return Row{}, err
	}

	agent, err := core.NewAgent[puzzle.State, puzzle.Action](problem, algorithm)
	if err != nil {
		return Row{}, err
	}

	res, err := agent.Solve()
	if err != nil {
		return Row{}, err
	}

	return Row{
		Algorithm:     preset,
		Size:          cfg.Size,
		ScrambleDepth: cfg.ScrambleDepth,
		Seed:          seed,
		Success:       res.Success,
		Cost:          res.Cost(),
		NodesExpanded: res.NodesExpanded,
		Runtime:       res.Runtime,
		Iterations:    res.Iterations,
	}, nil
}

// WriteCSV renders rows with a fixed header. Cost is "inf" when no solution
// was found; runtime is reported in seconds.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)

	header := []string{
		"algorithm", "size", "scramble_depth", "seed",
		"success", "solution_cost", "nodes_expanded", "runtime_seconds", "iterations",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range rows {
		cost := "inf"
		if !math.IsInf(r.Cost, 1) {
			cost = strconv.FormatFloat(r.Cost, 'g', -1, 64)
		}

		success := "0"
		if r.Success {
			success = "1"
		}

		record := []string{
			r.Algorithm,
			strconv.Itoa(r.Size),
			strconv.Itoa(r.ScrambleDepth),
			strconv.FormatInt(r.Seed, 10),
			success,
			cost,
			strconv.Itoa(r.NodesExpanded),
			strconv.FormatFloat(r.Runtime.Seconds(), 'g', -1, 64),
			strconv.Itoa(r.Iterations),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}
